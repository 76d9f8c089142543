// Package catalog holds the static template catalog and the option lists the
// customize view offers (categories, fonts, color presets).
package catalog

import (
	"strings"

	"invitation-studio/models"
	"invitation-studio/utils"
)

// Price filter values
const (
	PriceAll     = "all"
	PriceFree    = "free"
	PricePremium = "premium"
)

// Query narrows the template list. Empty fields match everything.
type Query struct {
	Search   string
	Category string // category value or "all"
	Price    string // all | free | premium
}

// Store is a read-only template catalog
type Store struct {
	templates []models.Template
	byID      map[string]int
}

// New builds a store over the given templates
func New(templates []models.Template) *Store {
	s := &Store{
		templates: make([]models.Template, len(templates)),
		byID:      make(map[string]int, len(templates)),
	}
	for i, t := range templates {
		s.templates[i] = cloneTemplate(t)
		s.templates[i].PriceLabel = utils.FormatPrice(t.Price)
		s.byID[t.ID] = i
	}
	return s
}

// Default returns the built-in catalog
func Default() *Store {
	return New(seedTemplates)
}

// Get returns the template with the given id
func (s *Store) Get(id string) (models.Template, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Template{}, false
	}
	return cloneTemplate(s.templates[i]), true
}

// All returns every template in catalog order
func (s *Store) All() []models.Template {
	out := make([]models.Template, 0, len(s.templates))
	for _, t := range s.templates {
		out = append(out, cloneTemplate(t))
	}
	return out
}

// Filter returns the templates matching q in catalog order
func (s *Store) Filter(q Query) []models.Template {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]models.Template, 0)
	for _, t := range s.templates {
		if !matchesSearch(t, search) {
			continue
		}
		if q.Category != "" && q.Category != "all" && string(t.Category) != q.Category {
			continue
		}
		switch q.Price {
		case PriceFree:
			if !t.Price.IsZero() {
				continue
			}
		case PricePremium:
			if !t.Price.IsPositive() {
				continue
			}
		}
		out = append(out, cloneTemplate(t))
	}
	return out
}

func matchesSearch(t models.Template, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Name), search) ||
		strings.Contains(strings.ToLower(t.Description), search) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

// Options returns the static lists the customize view needs
func (s *Store) Options() models.CatalogOptions {
	return models.CatalogOptions{
		Categories:   Categories(),
		Fonts:        FontOptions(),
		ColorPresets: ColorPresets(),
	}
}

// Categories returns every category with its display label
func Categories() []models.CategoryOption {
	cats := []models.Category{
		models.CategoryWedding,
		models.CategoryEngagement,
		models.CategoryBirthday,
		models.CategoryBabyShower,
		models.CategoryAnniversary,
		models.CategoryCorporate,
		models.CategoryOther,
	}
	out := make([]models.CategoryOption, 0, len(cats))
	for _, c := range cats {
		out = append(out, models.CategoryOption{Value: c, Label: utils.CategoryLabel(c)})
	}
	return out
}

// FontOptions returns the selectable fonts
func FontOptions() []models.FontOption {
	names := []string{"Playfair Display", "Inter", "Montserrat", "Poppins", "Roboto", "Open Sans"}
	out := make([]models.FontOption, 0, len(names))
	for _, n := range names {
		out = append(out, models.FontOption{Value: n, Label: n})
	}
	return out
}

// ColorPresets returns the named color schemes
func ColorPresets() []models.ColorPreset {
	return []models.ColorPreset{
		{Name: "Purple Elegance", Primary: "#8B5CF6", Secondary: "#F3F4F6", Accent: "#F59E0B"},
		{Name: "Rose Gold", Primary: "#E11D48", Secondary: "#FEF2F2", Accent: "#F59E0B"},
		{Name: "Ocean Blue", Primary: "#0EA5E9", Secondary: "#F0F9FF", Accent: "#10B981"},
		{Name: "Forest Green", Primary: "#059669", Secondary: "#F0FDF4", Accent: "#F59E0B"},
		{Name: "Sunset Orange", Primary: "#EA580C", Secondary: "#FFF7ED", Accent: "#E11D48"},
	}
}

// FindPreset looks a preset up by name (case-insensitive)
func FindPreset(name string) (models.ColorPreset, bool) {
	for _, p := range ColorPresets() {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return models.ColorPreset{}, false
}

func cloneTemplate(t models.Template) models.Template {
	t.PreviewImages = append([]string(nil), t.PreviewImages...)
	t.Tags = append([]string(nil), t.Tags...)
	return t
}
