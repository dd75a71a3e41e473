package catalog

// Category es un grupo de productos publicados con su conteo.
// Se recalcula en cada request; el cacheo queda del lado del CDN.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Product es la forma pública de un producto del catálogo.
// Image es nil cuando la estrategia inline no tiene payload que mostrar.
type Product struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	ListPrice float64 `json:"list_price"`
	Categ     string  `json:"categ"`
	Image     *string `json:"image"`
}

// ProductPage es la respuesta paginada del listado de productos.
// Total sale de un search_count independiente del search: bajo escrituras
// concurrentes en el backend pueden divergir y eso se acepta tal cual.
type ProductPage struct {
	Total  int       `json:"total"`
	Limit  int       `json:"limit"`
	Offset int       `json:"offset"`
	Items  []Product `json:"items"`
}

// CategoryList envuelve el listado de categorías.
type CategoryList struct {
	Items []Category `json:"items"`
}
