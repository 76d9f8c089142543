package controller

import (
	"net/http"

	"invitation-studio/app/middleware"
	"invitation-studio/service"
)

// OrderController handles HTTP requests for the order history
type OrderController struct {
	orders *service.OrderService
}

// NewOrderController creates a new OrderController
func NewOrderController(orders *service.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// ListOrders handles GET /api/orders
func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	resp, err := c.orders.List(r.Context(), middleware.ClientIDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
