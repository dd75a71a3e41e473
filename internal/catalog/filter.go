package catalog

// Predicate es una condición (campo, operador, valor) del dominio de Odoo.
type Predicate struct {
	Field string
	Op    string
	Value interface{}
}

// Filter es una conjunción ordenada de predicados. Inmutable una vez
// construido: los predicados se incluyen condicionalmente, nunca se sacan.
type Filter []Predicate

// Domain serializa el filtro a la forma de dominio que espera execute_kw:
// una lista de triples [campo, operador, valor].
func (filter Filter) Domain() []interface{} {
	domain := make([]interface{}, 0, len(filter))
	for _, predicate := range filter {
		domain = append(domain, []interface{}{predicate.Field, predicate.Op, predicate.Value})
	}
	return domain
}

// BuildFilter arma el filtro de productos a partir del query validado.
// Función pura y determinística: mismo query, mismo filtro en el mismo orden.
func BuildFilter(query ProductQuery) Filter {
	// Siempre primero: el catálogo solo ve productos publicados en la web.
	filter := Filter{{Field: "website_published", Op: "=", Value: true}}

	if query.Search != "" {
		// ilike: contains case-insensitive del lado de Odoo.
		filter = append(filter, Predicate{Field: "name", Op: "ilike", Value: query.Search})
	}

	// Precedencia: el id numérico gana sobre el texto libre si vinieron ambos.
	switch {
	case query.CategID > 0:
		filter = append(filter, Predicate{Field: "categ_id", Op: "=", Value: query.CategID})
	case query.Categ != "":
		filter = append(filter, Predicate{Field: "categ_id", Op: "ilike", Value: query.Categ})
	}

	return filter
}

// publishedOnly es el filtro base de las agregaciones por categoría.
func publishedOnly() Filter {
	return Filter{{Field: "website_published", Op: "=", Value: true}}
}
