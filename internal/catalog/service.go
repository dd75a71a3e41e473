package catalog

import (
	"context"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/catalogo-web/catalogo-api/internal/odoo"
)

// Modelo de Odoo que respalda el catálogo completo.
const productModel = "product.template"

// Backend define lo que el service necesita del cliente Odoo.
// Permite testear la orquestación sin transporte real.
type Backend interface {
	Authenticate(ctx context.Context) (int, error)
	ExecuteKw(ctx context.Context, uid int, model, method string, args []interface{}, kwargs map[string]interface{}) (interface{}, error)
}

// Service orquesta las dos consultas del catálogo contra Odoo.
// Sin estado compartido entre requests: cada operación autentica de nuevo
// y ejecuta su secuencia de llamadas de forma secuencial.
type Service struct {
	backend    Backend
	normalizer *Normalizer
}

// NewService crea el service del catálogo.
func NewService(backend Backend, normalizer *Normalizer) *Service {
	return &Service{backend: backend, normalizer: normalizer}
}

// ListCategories agrupa los productos publicados por categoría.
// Secuencia: authenticate → read_group → normalizar → ordenar en español.
// Sin productos publicados devuelve lista vacía, no error.
func (service *Service) ListCategories(ctx context.Context) ([]Category, error) {
	uid, err := service.backend.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := service.backend.ExecuteKw(ctx, uid, productModel, "read_group",
		[]interface{}{publishedOnly().Domain(), []string{"categ_id"}, []string{"categ_id"}}, nil)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, 0)
	for _, group := range odoo.Records(raw) {
		// Grupos sin el par (id, nombre) se descartan en silencio:
		// un grupo malformado no voltea la respuesta entera.
		id, name, ok := odoo.Pair(group["categ_id"])
		if !ok {
			continue
		}
		count, _ := odoo.Int(group["categ_id_count"])
		categories = append(categories, Category{ID: id, Name: name, Count: count})
	}

	// Orden alfabético con colación española (Á agrupa con A, Ñ después de N).
	// El collator no es seguro para uso concurrente, se crea por llamada.
	collator := collate.New(language.Spanish)
	sort.SliceStable(categories, func(i, j int) bool {
		return collator.CompareString(categories[i].Name, categories[j].Name) < 0
	})

	return categories, nil
}

// ListProducts devuelve una página de productos publicados.
// Secuencia: authenticate → search_count → search (id desc, limit/offset)
// → read de los campos de la estrategia → normalizar. El orden de la página
// es el del backend; no se reordena del lado del cliente.
func (service *Service) ListProducts(ctx context.Context, query ProductQuery) (ProductPage, error) {
	page := ProductPage{
		Limit:  query.Limit,
		Offset: query.Offset,
		Items:  []Product{},
	}

	domain := BuildFilter(query).Domain()

	uid, err := service.backend.Authenticate(ctx)
	if err != nil {
		return ProductPage{}, err
	}

	rawTotal, err := service.backend.ExecuteKw(ctx, uid, productModel, "search_count",
		[]interface{}{domain}, nil)
	if err != nil {
		return ProductPage{}, err
	}
	page.Total, _ = odoo.Int(rawTotal)

	// limit 0 es una página vacía; para Odoo un limit 0 significa "sin
	// límite", así que ni siquiera buscamos ids.
	if query.Limit == 0 {
		return page, nil
	}

	rawIDs, err := service.backend.ExecuteKw(ctx, uid, productModel, "search",
		[]interface{}{domain}, map[string]interface{}{
			"order":  "id desc",
			"limit":  query.Limit,
			"offset": query.Offset,
		})
	if err != nil {
		return ProductPage{}, err
	}

	ids := odoo.Ints(rawIDs)
	if len(ids) == 0 {
		// Sin matches no hay read que hacer. Total puede ser distinto de
		// cero si hubo una escritura entre count y search; se devuelve igual.
		return page, nil
	}

	rawRecords, err := service.backend.ExecuteKw(ctx, uid, productModel, "read",
		[]interface{}{ids, service.normalizer.Fields()}, nil)
	if err != nil {
		return ProductPage{}, err
	}

	for _, record := range odoo.Records(rawRecords) {
		page.Items = append(page.Items, service.normalizer.Product(record))
	}

	return page, nil
}
