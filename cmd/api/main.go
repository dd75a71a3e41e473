package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/catalogo-web/catalogo-api/internal/catalog"
	"github.com/catalogo-web/catalogo-api/internal/config"
	"github.com/catalogo-web/catalogo-api/internal/docs"
	"github.com/catalogo-web/catalogo-api/internal/health"
	"github.com/catalogo-web/catalogo-api/internal/httpx"
	"github.com/catalogo-web/catalogo-api/internal/odoo"
)

// appDeps agrupa las dependencias de run para poder testear el arranque.
type appDeps struct {
	loadConfig     func() (config.Config, error)
	newBackend     func(cfg config.Config) (catalog.Backend, error)
	listenAndServe func(addr string, handler http.Handler) error
	logf           func(format string, args ...any)
}

func defaultDeps() appDeps {
	return appDeps{
		loadConfig: config.Load,
		newBackend: func(cfg config.Config) (catalog.Backend, error) {
			return odoo.NewClient(cfg)
		},
		listenAndServe: http.ListenAndServe,
		logf:           log.Printf,
	}
}

var fatalf = log.Fatal

func main() {
	if err := run(context.Background(), defaultDeps()); err != nil {
		fatalf(err)
	}
}

func run(ctx context.Context, deps appDeps) error {
	// La configuración se valida acá, antes de servir: si falta una
	// credencial el proceso no arranca, no hay 500 por request que debuggear.
	cfg, err := deps.loadConfig()
	if err != nil {
		return err
	}

	backend, err := deps.newBackend(cfg)
	if err != nil {
		return err
	}

	normalizer := catalog.NewNormalizer(cfg.ImageStrategy, cfg.OdooURL)
	service := catalog.NewService(backend, normalizer)
	router := buildRouter(catalog.NewHandler(service))

	addr := ":" + cfg.Port
	deps.logf("listening on %s", addr)
	return deps.listenAndServe(addr, router)
}

func buildRouter(catalogHandler *catalog.Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middlewares base para trazabilidad y estabilidad.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	// Errores de routing se manejan a nivel router.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, http.StatusNotFound, "not found", "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, http.StatusMethodNotAllowed, "method not allowed", "")
	})

	catalog.RegisterRoutes(r, catalogHandler)
	r.Get("/api/ping", health.New().Ping)
	docs.RegisterRoutes(r)

	return r
}
