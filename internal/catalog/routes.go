package catalog

import "github.com/go-chi/chi/v5"

// RegisterRoutes registra las rutas del catálogo en el router.
// Mantener esto separado hace que main.go no crezca sin control.
func RegisterRoutes(route chi.Router, handler *Handler) {
	route.Route("/api", func(route chi.Router) {
		route.Get("/categories", handler.Categories)
		route.Get("/products", handler.Products)
	})
}
