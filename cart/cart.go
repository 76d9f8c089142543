// Package cart is the shopping cart state container. Every command returns a
// new Cart; a Cart value is never mutated in place.
package cart

import (
	"github.com/shopspring/decimal"

	"invitation-studio/customization"
	"invitation-studio/models"
	"invitation-studio/utils"
)

// Cart is an ordered list of lines, one per template id
type Cart struct {
	Items []models.CartItem `json:"items"`
}

// New returns an empty cart
func New() Cart {
	return Cart{Items: []models.CartItem{}}
}

// AddItem adds one unit of the template. An existing line has its quantity
// incremented; otherwise a new line is appended with quantity 1.
func (c Cart) AddItem(t models.Template) Cart {
	items := c.clone()
	for i := range items {
		if items[i].Template.ID == t.ID {
			items[i].Quantity++
			return Cart{Items: items}
		}
	}
	return Cart{Items: append(items, models.CartItem{Template: t, Quantity: 1})}
}

// RemoveItem drops the whole line for templateID. Absent ids are a no-op.
func (c Cart) RemoveItem(templateID string) Cart {
	items := make([]models.CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.Template.ID != templateID {
			items = append(items, it)
		}
	}
	return Cart{Items: items}
}

// UpdateCustomization merges patch into the line's customization. Absent ids are a no-op.
func (c Cart) UpdateCustomization(templateID string, patch models.CustomizationPatch) Cart {
	items := c.clone()
	for i := range items {
		if items[i].Template.ID == templateID {
			items[i].Customization = customization.MergePatch(items[i].Customization, patch)
		}
	}
	return Cart{Items: items}
}

// Clear empties the cart
func (c Cart) Clear() Cart {
	return New()
}

// Total is the sum of price × quantity over all lines
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Template.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// ItemCount is the sum of quantities
func (c Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Find returns the line for templateID
func (c Cart) Find(templateID string) (models.CartItem, bool) {
	for _, it := range c.Items {
		if it.Template.ID == templateID {
			return it, true
		}
	}
	return models.CartItem{}, false
}

// Contains reports whether the cart has a line for templateID
func (c Cart) Contains(templateID string) bool {
	_, ok := c.Find(templateID)
	return ok
}

// IsEmpty reports whether the cart has no lines
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Sanitize drops lines that cannot be valid (no template id or quantity < 1).
// Stored carts go through it after load.
func (c Cart) Sanitize() Cart {
	items := make([]models.CartItem, 0, len(c.Items))
	seen := make(map[string]int, len(c.Items))
	for _, it := range c.Items {
		if it.Template.ID == "" || it.Quantity < 1 {
			continue
		}
		if i, dup := seen[it.Template.ID]; dup {
			items[i].Quantity += it.Quantity
			continue
		}
		seen[it.Template.ID] = len(items)
		items = append(items, it)
	}
	return Cart{Items: items}
}

// Response builds the API view of the cart
func (c Cart) Response() models.CartResponse {
	items := c.Items
	if items == nil {
		items = []models.CartItem{}
	}
	total := c.Total()
	return models.CartResponse{
		Items:      items,
		Total:      total,
		TotalLabel: utils.FormatAmount(total),
		ItemCount:  c.ItemCount(),
	}
}

func (c Cart) clone() []models.CartItem {
	return append(make([]models.CartItem, 0, len(c.Items)+1), c.Items...)
}
