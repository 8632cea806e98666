package handler

import (
	"github.com/gin-gonic/gin"
	apptrade "github.com/quantivo/backend/internal/application/trade"
)

// OrderHandler handles order settlement HTTP requests
type OrderHandler struct {
	BaseHandler
	settlementService *apptrade.SettlementService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(settlementService *apptrade.SettlementService) *OrderHandler {
	return &OrderHandler{
		settlementService: settlementService,
	}
}

// Create settles a new order against the caller's catalog
func (h *OrderHandler) Create(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req apptrade.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.settlementService.Settle(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// Get returns one of the caller's orders
func (h *OrderHandler) Get(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, ok := h.parseID(c)
	if !ok {
		return
	}

	order, err := h.settlementService.Get(c.Request.Context(), ownerID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// List returns a page of the caller's orders
func (h *OrderHandler) List(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}

	result, err := h.settlementService.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}
