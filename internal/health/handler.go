package health

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/catalogo-web/catalogo-api/internal/httpx"
)

// Handler encapsula el endpoint de ping.
// El instance id se genera una vez por proceso; sirve para distinguir
// réplicas cuando el CDN mezcla respuestas.
type Handler struct {
	instance string
}

// New crea un handler de ping.
func New() *Handler {
	return &Handler{instance: uuid.NewString()}
}

// Ping indica si el proceso está vivo.
// NO toca el backend: responde aunque Odoo esté caído o mal configurado.
func (handler *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-From", "catalogo-api")
	httpx.JSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"whereAmI": "catalogo-api",
		"time":     time.Now().UTC().Format(time.RFC3339),
		"instance": handler.instance,
	})
}
