package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"invitation-studio/catalog"
	"invitation-studio/models"
	"invitation-studio/utils"
)

// TemplateStore is the read side of the catalog
type TemplateStore interface {
	Get(id string) (models.Template, bool)
	Filter(q catalog.Query) []models.Template
	Options() models.CatalogOptions
}

// CatalogController handles HTTP requests for the template catalog
type CatalogController struct {
	store TemplateStore
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(store TemplateStore) *CatalogController {
	return &CatalogController{store: store}
}

// ListTemplates handles GET /api/templates?search=&category=&price=all|free|premium
// Example response:
// {
//   "templates": [{"id": "1", "name": "Elegant Wedding", "price": "29.99", ...}],
//   "count": 1
// }
func (c *CatalogController) ListTemplates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	price := q.Get("price")
	switch price {
	case "", catalog.PriceAll, catalog.PriceFree, catalog.PricePremium:
	default:
		writeError(w, http.StatusBadRequest, "price must be one of: all, free, premium")
		return
	}

	// Accepts "baby-shower" as well as "Baby Shower"
	category := q.Get("category")
	if category != "" && category != "all" {
		parsed, ok := utils.ParseCategory(category)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown category: "+category)
			return
		}
		category = string(parsed)
	}

	templates := c.store.Filter(catalog.Query{
		Search:   q.Get("search"),
		Category: category,
		Price:    price,
	})
	writeJSON(w, http.StatusOK, models.TemplateListResponse{Templates: templates, Count: len(templates)})
}

// GetTemplate handles GET /api/templates/{id}
func (c *CatalogController) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t, ok := c.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// GetOptions handles GET /api/catalog/options
func (c *CatalogController) GetOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.store.Options())
}
