package catalog

import (
	"fmt"
	"net/url"

	"github.com/catalogo-web/catalogo-api/internal/config"
	"github.com/catalogo-web/catalogo-api/internal/odoo"
)

// Nombre de categoría cuando el registro no trae una referencia válida.
const defaultCategory = "Otros"

// Tamaño fijo al que el backend escala la imagen referenciada.
const (
	imageWidth  = 600
	imageHeight = 600
)

// imageFunc deriva la referencia de imagen de un registro crudo.
// Devuelve nil cuando no hay nada que mostrar.
type imageFunc func(record map[string]interface{}) *string

// Normalizer mapea registros crudos de Odoo a la forma pública.
// Nunca falla: cada campo ausente o malformado degrada a un default.
// La estrategia de imagen se elige una vez al construir, no por request.
type Normalizer struct {
	image  imageFunc
	fields []string
}

// NewNormalizer arma el normalizador según la estrategia configurada.
// baseURL solo se usa en la estrategia "reference".
func NewNormalizer(strategy, baseURL string) *Normalizer {
	if strategy == config.ImageStrategyInline {
		return &Normalizer{
			image:  inlineImage,
			fields: []string{"id", "name", "list_price", "categ_id", "image_1920"},
		}
	}
	return &Normalizer{
		image:  referenceImage(baseURL),
		fields: []string{"id", "name", "list_price", "categ_id", "write_date"},
	}
}

// Fields devuelve los campos a pedir en el read según la estrategia.
func (normalizer *Normalizer) Fields() []string {
	return normalizer.fields
}

// Product normaliza un registro crudo.
func (normalizer *Normalizer) Product(record map[string]interface{}) Product {
	id, _ := odoo.Int(record["id"])

	categ := defaultCategory
	if _, name, ok := odoo.Pair(record["categ_id"]); ok {
		categ = name
	}

	price := odoo.Float(record["list_price"])
	if price < 0 {
		price = 0
	}

	return Product{
		ID:        id,
		Name:      odoo.String(record["name"]),
		ListPrice: price,
		Categ:     categ,
		Image:     normalizer.image(record),
	}
}

// inlineImage embebe el payload base64 como data URI; sin payload no hay imagen.
func inlineImage(record map[string]interface{}) *string {
	payload := odoo.String(record["image_1920"])
	if payload == "" {
		return nil
	}
	image := "data:image/jpeg;base64," + payload
	return &image
}

// referenceImage arma la URL pública de la imagen servida por el backend,
// con un token anti-cache derivado de la última modificación del registro.
func referenceImage(baseURL string) imageFunc {
	return func(record map[string]interface{}) *string {
		id, _ := odoo.Int(record["id"])
		image := fmt.Sprintf("%s/web/image/product.template/%d/image_1024/%dx%d",
			baseURL, id, imageWidth, imageHeight)
		if marker := odoo.String(record["write_date"]); marker != "" {
			image += "?unique=" + url.QueryEscape(marker)
		}
		return &image
	}
}
