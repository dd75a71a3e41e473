package catalog

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/catalogo-web/catalogo-api/internal/httpx"
	"github.com/catalogo-web/catalogo-api/internal/odoo"
)

// ServiceAPI define lo que el handler necesita.
// Permite testear handlers con stubs sin tocar un Odoo real.
type ServiceAPI interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListProducts(ctx context.Context, query ProductQuery) (ProductPage, error)
}

// Handler HTTP para el catálogo.
// Solo traduce HTTP <-> dominio (service) y es el único lugar donde un
// error del backend se convierte en status code.
type Handler struct {
	service ServiceAPI
}

// NewHandler crea un handler del catálogo.
func NewHandler(service ServiceAPI) *Handler {
	return &Handler{service: service}
}

// Categories maneja GET /api/categories.
func (handler *Handler) Categories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		handler.fail(writer, request, "/api/categories", err)
		return
	}

	httpx.Cacheable(writer)
	httpx.JSON(writer, http.StatusOK, CategoryList{Items: categories})
}

// Products maneja GET /api/products con paginación, búsqueda y filtro
// de categoría. Parámetros inválidos se clampean, nunca son un 400.
func (handler *Handler) Products(writer http.ResponseWriter, request *http.Request) {
	query := ParseProductQuery(request.URL.Query())

	page, err := handler.service.ListProducts(request.Context(), query)
	if err != nil {
		handler.fail(writer, request, "/api/products", err)
		return
	}

	httpx.Cacheable(writer)
	httpx.JSON(writer, http.StatusOK, page)
}

// fail mapea la taxonomía de errores a status codes.
// Auth rechazada → 401 con mensaje fijo, sin detalle. Todo lo demás → 500
// con detalle diagnóstico para operadores (no se considera sensible).
func (handler *Handler) fail(writer http.ResponseWriter, request *http.Request, route string, err error) {
	if errors.Is(err, odoo.ErrAuthFailed) {
		httpx.Fail(writer, http.StatusUnauthorized, "Odoo auth failed", "")
		return
	}

	log.Printf("[%s] %s error: %v", route, httpx.RequestIDFrom(request), err)
	httpx.Fail(writer, http.StatusInternalServerError, "Internal error", err.Error())
}
