package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/application/service"
	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/presentation/http/dto/response"
)

// ProductHandler handles the inventory screen
type ProductHandler struct {
	products *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved", products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved", product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var product entity.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.products.Create(c.Request.Context(), &product)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Product created", created)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var product entity.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.products.Update(c.Request.Context(), c.Param("id"), &product)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product updated", updated)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// IncrementStock restocks a product by an additive delta
func (h *ProductHandler) IncrementStock(c *gin.Context) {
	var req entity.StockIncrement
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.products.IncrementStock(c.Request.Context(), c.Param("id"), req.AdditionalStock)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock updated", updated)
}
