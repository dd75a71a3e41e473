package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
)

// Límites de paginación del listado de productos.
const (
	DefaultLimit = 60
	MaxLimit     = 120
)

// rawQuery recibe los query params tal cual llegan. Todo string: un valor
// no numérico nunca es un error del cliente, degrada al default al clampear.
type rawQuery struct {
	Limit   string `schema:"limit"`
	Offset  string `schema:"offset"`
	Search  string `schema:"q"`
	Categ   string `schema:"categ"`
	CategID string `schema:"categ_id"`
}

var queryDecoder = func() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}()

// ProductQuery son los parámetros ya validados del listado de productos.
// CategID == 0 significa "sin filtro numérico de categoría".
type ProductQuery struct {
	Limit   int
	Offset  int
	Search  string
	Categ   string
	CategID int
}

// ParseProductQuery valida y clampea los query params.
// Nunca rechaza: valores fuera de rango, negativos o no numéricos caen al
// default o al borde del rango permitido.
func ParseProductQuery(values url.Values) ProductQuery {
	var raw rawQuery
	// El decoder solo falla con claves repetidas de tipos incompatibles;
	// con campos string los valores quedan igual y seguimos con lo parseado.
	_ = queryDecoder.Decode(&raw, values)

	query := ProductQuery{
		Limit:  clampInt(raw.Limit, DefaultLimit, 0, MaxLimit),
		Offset: clampInt(raw.Offset, 0, 0, -1),
		Search: strings.TrimSpace(raw.Search),
		Categ:  strings.TrimSpace(raw.Categ),
	}

	// categ_id solo aplica si parsea a entero positivo; si no, se omite
	// en silencio y queda el filtro de texto libre (si vino).
	if id, err := strconv.Atoi(strings.TrimSpace(raw.CategID)); err == nil && id > 0 {
		query.CategID = id
	}

	return query
}

// clampInt parsea value con fallback y lo acota a [min, max].
// max < 0 significa sin tope superior.
func clampInt(value string, fallback, min, max int) int {
	parsed := fallback
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		if number, err := strconv.Atoi(trimmed); err == nil {
			parsed = number
		}
	}

	if parsed < min {
		return min
	}
	if max >= 0 && parsed > max {
		return max
	}
	return parsed
}
