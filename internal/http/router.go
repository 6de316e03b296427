package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the product and cart handlers onto the /api routes.
func NewRouter(products *ProductHandler, carts *CartHandler, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", products.List)
			r.Post("/", products.Create)
			r.Get("/{pid}", products.Get)
			r.Put("/{pid}", products.Update)
			r.Delete("/{pid}", products.Delete)
		})

		r.Route("/carts", func(r chi.Router) {
			r.Post("/", carts.Create)
			r.Get("/{cid}", carts.Get)
			r.Put("/{cid}", carts.Replace)
			r.Delete("/{cid}", carts.Delete)
			r.Post("/{cid}/products/{pid}", carts.AddProduct)
			r.Put("/{cid}/products/{pid}", carts.SetQuantity)
			r.Delete("/{cid}/products/{pid}", carts.RemoveProduct)
		})
	})

	return r
}
