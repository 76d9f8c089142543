package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"invitation-studio/app/controller"
	"invitation-studio/app/middleware"
	"invitation-studio/metrics"
)

type Controllers struct {
	Catalog       *controller.CatalogController
	Cart          *controller.CartController
	Customization *controller.CustomizationController
	Invitation    *controller.InvitationController
	Share         *controller.ShareController
	Order         *controller.OrderController
	TemplateImage *controller.TemplateImageController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// NewRouter builds the HTTP handler for every route
func NewRouter(controllers *Controllers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimw.Recoverer)
	r.Use(metrics.InstrumentHandler)

	r.Get("/ping", pingHandler)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Public pages and assets
	r.Get("/invite/{slug}", controllers.Invitation.Page)
	r.Get("/templates/{file}", controllers.TemplateImage.GetImage)

	r.Route("/api", func(r chi.Router) {
		// Catalog
		r.Get("/templates", controllers.Catalog.ListTemplates)
		r.Get("/templates/{id}", controllers.Catalog.GetTemplate)
		r.Get("/catalog/options", controllers.Catalog.GetOptions)

		// Hosted invitations are public
		r.Route("/invitations/{slug}", func(r chi.Router) {
			r.Get("/", controllers.Invitation.GetInvitation)
			r.Get("/export", controllers.Invitation.Export)
			r.Post("/rsvp", controllers.Invitation.SubmitRSVP)
			r.With(middleware.ClientID).Get("/rsvps", controllers.Invitation.ListRSVPs)
		})
		r.Post("/share", controllers.Share.Share)

		// Everything below is scoped to the browser's client id
		r.Group(func(r chi.Router) {
			r.Use(middleware.ClientID)

			r.Get("/cart", controllers.Cart.GetCart)
			r.Delete("/cart", controllers.Cart.ClearCart)
			r.Post("/cart/items", controllers.Cart.AddItem)
			r.Delete("/cart/items/{id}", controllers.Cart.RemoveItem)
			r.Patch("/cart/items/{id}/customization", controllers.Cart.UpdateCustomization)
			r.Post("/checkout", controllers.Cart.Checkout)

			r.Route("/customizations/{templateId}", func(r chi.Router) {
				r.Get("/", controllers.Customization.GetCustomization)
				r.Patch("/", controllers.Customization.UpdateField)
				r.Put("/", controllers.Customization.SaveCustomization)
				r.Post("/merge", controllers.Customization.MergeCustomization)
				r.Post("/preset", controllers.Customization.ApplyPreset)
				r.Post("/background", controllers.Customization.SetBackground)
				r.Delete("/background", controllers.Customization.RemoveBackground)
				r.Post("/publish", controllers.Customization.Publish)
				r.Get("/export", controllers.Customization.Export)
				r.Get("/preview", controllers.Customization.Preview)
			})

			r.Get("/orders", controllers.Order.ListOrders)
		})
	})

	return r
}
