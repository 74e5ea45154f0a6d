package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/application/service"
	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/enum"
	"github.com/opticore/optipos/internal/presentation/http/dto/response"
)

// CartHandler handles the POS screen: the in-progress cart, hold/recall and
// checkout
type CartHandler struct {
	carts *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// Get returns the session's cart and totals
func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.carts.Get(c.Request.Context(), GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart retrieved", view)
}

type addItemRequest struct {
	ProductID    string                   `json:"product_id" binding:"required"`
	Quantity     int                      `json:"quantity" binding:"required"`
	Prescription *entity.PrescriptionData `json:"prescription_data,omitempty"`
}

// AddItem adds a product line to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Product and quantity are required")
		return
	}

	view, err := h.carts.AddProduct(c.Request.Context(), GetSessionID(c), req.ProductID, req.Quantity, req.Prescription)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added", view)
}

// RemoveItem deletes a cart line by index
func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid item index")
		return
	}

	view, err := h.carts.RemoveItem(c.Request.Context(), GetSessionID(c), index)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed", view)
}

type setCustomerRequest struct {
	CustomerID string `json:"customer_id"`
}

// SetCustomer selects (or clears) the cart's customer
func (h *CartHandler) SetCustomer(c *gin.Context) {
	var req setCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.carts.SetCustomer(c.Request.Context(), GetSessionID(c), req.CustomerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer updated", view)
}

type adjustmentsRequest struct {
	Discount      *string `json:"discount,omitempty"`
	PaidAmount    *string `json:"paid_amount,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	Note          *string `json:"note,omitempty"`
}

// SetAdjustments applies discount, paid amount, payment method and note in
// one call; absent fields are left unchanged
func (h *CartHandler) SetAdjustments(c *gin.Context) {
	var req adjustmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	sessionID := GetSessionID(c)
	var view *service.CartView
	var err error

	if req.Discount != nil {
		if view, err = h.carts.SetDiscount(ctx, sessionID, *req.Discount); err != nil {
			response.Error(c, err)
			return
		}
	}
	if req.PaidAmount != nil {
		if view, err = h.carts.SetPaid(ctx, sessionID, *req.PaidAmount); err != nil {
			response.Error(c, err)
			return
		}
	}
	if req.PaymentMethod != nil {
		if view, err = h.carts.SetPaymentMethod(ctx, sessionID, enum.PaymentMethod(*req.PaymentMethod)); err != nil {
			response.Error(c, err)
			return
		}
	}
	if req.Note != nil {
		if view, err = h.carts.SetNote(ctx, sessionID, *req.Note); err != nil {
			response.Error(c, err)
			return
		}
	}
	if view == nil {
		view, err = h.carts.Get(ctx, sessionID)
		if err != nil {
			response.Error(c, err)
			return
		}
	}
	response.OK(c, "Cart updated", view)
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	view, err := h.carts.Clear(c.Request.Context(), GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart cleared", view)
}

// Hold snapshots the cart for later recall
func (h *CartHandler) Hold(c *gin.Context) {
	held, err := h.carts.Hold(c.Request.Context(), GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Transaction held", held)
}

// ListHeld returns the terminal's held transactions
func (h *CartHandler) ListHeld(c *gin.Context) {
	held, err := h.carts.ListHeld(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Held transactions retrieved", held)
}

// Recall restores a held transaction into the cart
func (h *CartHandler) Recall(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid held transaction ID")
		return
	}

	view, err := h.carts.Recall(c.Request.Context(), GetSessionID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transaction recalled", view)
}

// DeleteHeld discards a held transaction
func (h *CartHandler) DeleteHeld(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid held transaction ID")
		return
	}

	if err := h.carts.DeleteHeld(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Checkout submits the cart as a sale
func (h *CartHandler) Checkout(c *gin.Context) {
	invoice, err := h.carts.Checkout(c.Request.Context(), GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Sale completed", invoice)
}
