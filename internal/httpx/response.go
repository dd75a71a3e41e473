package httpx

import (
	"encoding/json"
	"net/http"
)

// El frontend del catálogo consume un contrato JSON fijo, sin sobre genérico:
// los éxitos devuelven el payload directo y los errores {"error", "detail?"}.

// ErrorBody describe un error de forma estructurada.
// Detail trae diagnóstico para operadores; no se usa para errores de auth.
type ErrorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// JSON escribe una respuesta JSON con headers correctos.
// Nota: en caso de error de encodeo, responde 500 de forma segura.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)

	if err := enc.Encode(payload); err != nil {
		// Último recurso: no se pudo serializar JSON.
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
	}
}

// Fail devuelve un error con el formato del contrato público.
func Fail(w http.ResponseWriter, status int, message, detail string) {
	JSON(w, status, ErrorBody{Error: message, Detail: detail})
}

// Cacheable marca la respuesta para que un intermediario HTTP la sirva
// durante 15 minutos y la revalide en background hasta un día.
// El proceso no cachea nada: la política vive entera en este header.
func Cacheable(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "s-maxage=900, stale-while-revalidate=86400")
}
