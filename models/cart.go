package models

import "github.com/shopspring/decimal"

// CartItem represents one line of the cart
type CartItem struct {
	Template      Template           `json:"template"`
	Customization CustomizationPatch `json:"customization"`
	Quantity      int                `json:"quantity"`
}

// AddCartItemRequest represents the request body for adding a template to the cart
// Example: {"templateId": "3"}
type AddCartItemRequest struct {
	TemplateID string `json:"templateId"`
}

// CartResponse represents the cart with its derived values
// Example response:
// {
//   "items": [{"template": {"id": "1", "price": 29.99, ...}, "customization": {}, "quantity": 2}],
//   "total": 59.98,
//   "totalLabel": "$59.98",
//   "itemCount": 2
// }
type CartResponse struct {
	Items     []CartItem      `json:"items"`
	Total      decimal.Decimal `json:"total"`
	TotalLabel string          `json:"totalLabel"`
	ItemCount  int             `json:"itemCount"`
}
