package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The storefront reads prices as JSON numbers (29.99), not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Category is the event category a template is designed for
type Category string

const (
	CategoryWedding     Category = "wedding"
	CategoryEngagement  Category = "engagement"
	CategoryBirthday    Category = "birthday"
	CategoryBabyShower  Category = "baby-shower"
	CategoryAnniversary Category = "anniversary"
	CategoryCorporate   Category = "corporate"
	CategoryOther       Category = "other"
)

// Template represents an invitation design in the catalog
type Template struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      Category        `json:"category"`
	Price         decimal.Decimal `json:"price"` // 0 = free
	PriceLabel    string          `json:"priceLabel"`
	IsPremium     bool            `json:"isPremium"`
	Thumbnail     string          `json:"thumbnail"`
	PreviewImages []string        `json:"previewImages"`
	VideoPreview  string          `json:"videoPreview,omitempty"`
	Tags          []string        `json:"tags"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// IsFree reports whether the template costs nothing
func (t Template) IsFree() bool {
	return t.Price.IsZero()
}

// TemplateRef is the reduced template reference stored with a hosted invitation
type TemplateRef struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// CategoryOption represents a category value with its display label
type CategoryOption struct {
	Value Category `json:"value"`
	Label string   `json:"label"`
}

// FontOption represents a selectable font
type FontOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ColorPreset represents a named color scheme
type ColorPreset struct {
	Name      string `json:"name"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// CatalogOptions represents the static option lists used by the customize view
// Example response:
// {
//   "categories": [{"value": "wedding", "label": "Wedding"}],
//   "fonts": [{"value": "Inter", "label": "Inter"}],
//   "colorPresets": [{"name": "Ocean Blue", "primary": "#0EA5E9", "secondary": "#F0F9FF", "accent": "#10B981"}]
// }
type CatalogOptions struct {
	Categories   []CategoryOption `json:"categories"`
	Fonts        []FontOption     `json:"fonts"`
	ColorPresets []ColorPreset    `json:"colorPresets"`
}

// TemplateListResponse represents the response for listing templates
type TemplateListResponse struct {
	Templates []Template `json:"templates"`
	Count     int        `json:"count"`
}
