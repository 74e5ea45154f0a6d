package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/application/service"
	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/presentation/http/dto/response"
)

// CustomerHandler handles the customer screen
type CustomerHandler struct {
	customers *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customers retrieved", customers)
}

// Search performs the POS screen's quick customer lookup
func (h *CustomerHandler) Search(c *gin.Context) {
	customers, err := h.customers.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customers retrieved", customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer retrieved", customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var customer entity.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.customers.Create(c.Request.Context(), &customer)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Customer created", created)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var customer entity.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.customers.Update(c.Request.Context(), c.Param("id"), &customer)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer updated", updated)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
