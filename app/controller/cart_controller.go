package controller

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"invitation-studio/app/middleware"
	"invitation-studio/models"
	"invitation-studio/service"
)

// CartController handles HTTP requests for the cart and checkout
type CartController struct {
	carts    *service.CartService
	checkout *service.CheckoutService
	baseURL  string
}

// NewCartController creates a new CartController
func NewCartController(carts *service.CartService, checkout *service.CheckoutService, baseURL string) *CartController {
	return &CartController{carts: carts, checkout: checkout, baseURL: baseURL}
}

// GetCart handles GET /api/cart
// Example response:
// {"items": [{"template": {...}, "customization": {}, "quantity": 1}], "total": "29.99", "itemCount": 1}
func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := c.carts.Get(r.Context(), middleware.ClientIDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart.Response())
}

// AddItem handles POST /api/cart/items
// Example request: {"templateId": "3"}
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddCartItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.TemplateID) == "" {
		writeError(w, http.StatusBadRequest, "templateId is required")
		return
	}

	cart, err := c.carts.AddItem(r.Context(), middleware.ClientIDFrom(r.Context()), req.TemplateID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart.Response())
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, err := c.carts.RemoveItem(r.Context(), middleware.ClientIDFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart.Response())
}

// UpdateCustomization handles PATCH /api/cart/items/{id}/customization
// Example request: {"eventName": "Ana & Luis", "colors": {"primary": "#E11D48"}}
func (c *CartController) UpdateCustomization(w http.ResponseWriter, r *http.Request) {
	var patch models.CustomizationPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	cart, err := c.carts.UpdateCustomization(r.Context(), middleware.ClientIDFrom(r.Context()), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart.Response())
}

// ClearCart handles DELETE /api/cart
func (c *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := c.carts.Clear(r.Context(), middleware.ClientIDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart.Response())
}

// Checkout handles POST /api/checkout
// Example response:
// {"sessionId": "cs_test_123", "redirectUrl": "https://pay.example.com/checkout?session_id=cs_test_123", "orderId": "...", "message": "Redirecting to payment..."}
func (c *CartController) Checkout(w http.ResponseWriter, r *http.Request) {
	resp, err := c.checkout.Checkout(r.Context(), middleware.ClientIDFrom(r.Context()), c.baseURL)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
