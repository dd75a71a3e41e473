package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/catalogo-web/catalogo-api/internal/config"
	"github.com/catalogo-web/catalogo-api/internal/odoo"
)

// executeCall registra una invocación a ExecuteKw.
type executeCall struct {
	uid    int
	model  string
	method string
	args   []interface{}
	kwargs map[string]interface{}
}

// fakeBackend implementa Backend para testing.
// Las respuestas se configuran por método; replies usa las formas sin tipar
// que produce el decoder XML-RPC (int64, []interface{}, map[string]interface{}).
type fakeBackend struct {
	authUID int
	authErr error

	replies map[string]interface{}
	errs    map[string]error

	authCalled bool
	calls      []executeCall
}

func (backend *fakeBackend) Authenticate(ctx context.Context) (int, error) {
	backend.authCalled = true
	if backend.authErr != nil {
		return 0, backend.authErr
	}
	return backend.authUID, nil
}

func (backend *fakeBackend) ExecuteKw(ctx context.Context, uid int, model, method string, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	backend.calls = append(backend.calls, executeCall{uid: uid, model: model, method: method, args: args, kwargs: kwargs})
	if err := backend.errs[method]; err != nil {
		return nil, err
	}
	return backend.replies[method], nil
}

func (backend *fakeBackend) methods() []string {
	methods := make([]string, 0, len(backend.calls))
	for _, call := range backend.calls {
		methods = append(methods, call.method)
	}
	return methods
}

func newTestService(backend *fakeBackend) *Service {
	return NewService(backend, NewNormalizer(config.ImageStrategyReference, testBaseURL))
}

func TestListCategories(t *testing.T) {
	t.Run("sorted with spanish collation", func(t *testing.T) {
		backend := &fakeBackend{
			authUID: 7,
			replies: map[string]interface{}{
				"read_group": []interface{}{
					map[string]interface{}{
						"categ_id":       []interface{}{int64(3), "Azul"},
						"categ_id_count": int64(4),
					},
					map[string]interface{}{
						"categ_id":       []interface{}{int64(1), "Árbol"},
						"categ_id_count": int64(2),
					},
					map[string]interface{}{
						"categ_id":       []interface{}{int64(2), "ñandú"},
						"categ_id_count": int64(1),
					},
				},
			},
		}
		service := newTestService(backend)

		categories, err := service.ListCategories(context.Background())

		require.NoError(t, err)
		require.Len(t, categories, 3)
		// Colación española: Á ordena junto a A, antes de Az; ñ después de n.
		require.Equal(t, "Árbol", categories[0].Name)
		require.Equal(t, "Azul", categories[1].Name)
		require.Equal(t, "ñandú", categories[2].Name)
		require.Equal(t, Category{ID: 1, Name: "Árbol", Count: 2}, categories[0])
	})

	t.Run("malformed groups are dropped", func(t *testing.T) {
		backend := &fakeBackend{
			authUID: 7,
			replies: map[string]interface{}{
				"read_group": []interface{}{
					map[string]interface{}{"categ_id": false, "categ_id_count": int64(3)},
					map[string]interface{}{"categ_id": []interface{}{int64(9)}},
					map[string]interface{}{
						"categ_id":       []interface{}{int64(12), "Juguetes"},
						"categ_id_count": int64(5),
					},
				},
			},
		}
		service := newTestService(backend)

		categories, err := service.ListCategories(context.Background())

		require.NoError(t, err)
		require.Equal(t, []Category{{ID: 12, Name: "Juguetes", Count: 5}}, categories)
	})

	t.Run("no published products yields empty list", func(t *testing.T) {
		backend := &fakeBackend{
			authUID: 7,
			replies: map[string]interface{}{"read_group": []interface{}{}},
		}
		service := newTestService(backend)

		categories, err := service.ListCategories(context.Background())

		require.NoError(t, err)
		require.NotNil(t, categories)
		require.Empty(t, categories)
	})

	t.Run("auth failure propagates unchanged", func(t *testing.T) {
		backend := &fakeBackend{authErr: odoo.ErrAuthFailed}
		service := newTestService(backend)

		_, err := service.ListCategories(context.Background())

		require.ErrorIs(t, err, odoo.ErrAuthFailed)
		require.Empty(t, backend.calls)
	})

	t.Run("queries only published groups", func(t *testing.T) {
		backend := &fakeBackend{authUID: 7, replies: map[string]interface{}{"read_group": []interface{}{}}}
		service := newTestService(backend)

		_, err := service.ListCategories(context.Background())

		require.NoError(t, err)
		require.Len(t, backend.calls, 1)

		call := backend.calls[0]
		require.Equal(t, 7, call.uid)
		require.Equal(t, "product.template", call.model)
		require.Equal(t, []interface{}{[]interface{}{"website_published", "=", true}}, call.args[0])
	})
}

func TestListProducts(t *testing.T) {
	replies := func() map[string]interface{} {
		return map[string]interface{}{
			"search_count": int64(2),
			"search":       []interface{}{int64(40), int64(33)},
			"read": []interface{}{
				map[string]interface{}{
					"id":         int64(40),
					"name":       "Pelota",
					"list_price": 9.5,
					"categ_id":   []interface{}{int64(12), "Juguetes"},
					"write_date": "2024-05-02 08:00:00",
				},
				map[string]interface{}{
					"id":         int64(33),
					"name":       "Oso de peluche",
					"list_price": 19.9,
					"categ_id":   false,
					"write_date": "2024-05-01 10:22:33",
				},
			},
		}
	}

	t.Run("full sequence", func(t *testing.T) {
		backend := &fakeBackend{authUID: 7, replies: replies()}
		service := newTestService(backend)

		page, err := service.ListProducts(context.Background(), ParseProductQuery(nil))

		require.NoError(t, err)
		require.Equal(t, 2, page.Total)
		require.Equal(t, 60, page.Limit)
		require.Equal(t, 0, page.Offset)

		// El orden de la página es el del backend (id desc), sin resort local.
		require.Len(t, page.Items, 2)
		require.Equal(t, 40, page.Items[0].ID)
		require.Equal(t, 33, page.Items[1].ID)
		require.Equal(t, "Juguetes", page.Items[0].Categ)
		require.Equal(t, "Otros", page.Items[1].Categ)

		require.Equal(t, []string{"search_count", "search", "read"}, backend.methods())
	})

	t.Run("search receives order limit and offset", func(t *testing.T) {
		backend := &fakeBackend{authUID: 7, replies: replies()}
		service := newTestService(backend)

		query := ProductQuery{Limit: 30, Offset: 90}
		_, err := service.ListProducts(context.Background(), query)

		require.NoError(t, err)

		search := backend.calls[1]
		require.Equal(t, "search", search.method)
		require.Equal(t, map[string]interface{}{"order": "id desc", "limit": 30, "offset": 90}, search.kwargs)
	})

	t.Run("read requests the strategy fields for the found ids", func(t *testing.T) {
		backend := &fakeBackend{authUID: 7, replies: replies()}
		service := newTestService(backend)

		_, err := service.ListProducts(context.Background(), ParseProductQuery(nil))

		require.NoError(t, err)

		read := backend.calls[2]
		require.Equal(t, "read", read.method)
		require.Equal(t, []int{40, 33}, read.args[0])
		require.Equal(t, []string{"id", "name", "list_price", "categ_id", "write_date"}, read.args[1])
	})

	t.Run("empty id set short-circuits the read", func(t *testing.T) {
		backend := &fakeBackend{
			authUID: 7,
			replies: map[string]interface{}{
				"search_count": int64(1), // count y search son independientes; pueden divergir
				"search":       []interface{}{},
			},
		}
		service := newTestService(backend)

		page, err := service.ListProducts(context.Background(), ParseProductQuery(nil))

		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
		require.Empty(t, page.Items)
		require.NotNil(t, page.Items)
		require.Equal(t, []string{"search_count", "search"}, backend.methods())
	})

	t.Run("limit zero skips search and read", func(t *testing.T) {
		backend := &fakeBackend{
			authUID: 7,
			replies: map[string]interface{}{"search_count": int64(5)},
		}
		service := newTestService(backend)

		page, err := service.ListProducts(context.Background(), ProductQuery{Limit: 0, Offset: 0})

		require.NoError(t, err)
		require.Equal(t, 5, page.Total)
		require.Empty(t, page.Items)
		require.Equal(t, []string{"search_count"}, backend.methods())
	})

	t.Run("auth failure propagates before any query", func(t *testing.T) {
		backend := &fakeBackend{authErr: odoo.ErrAuthFailed}
		service := newTestService(backend)

		_, err := service.ListProducts(context.Background(), ParseProductQuery(nil))

		require.ErrorIs(t, err, odoo.ErrAuthFailed)
		require.Empty(t, backend.calls)
	})

	t.Run("count failure propagates unchanged", func(t *testing.T) {
		wantErr := errors.New("backend unreachable")
		backend := &fakeBackend{
			authUID: 7,
			errs:    map[string]error{"search_count": wantErr},
		}
		service := newTestService(backend)

		_, err := service.ListProducts(context.Background(), ParseProductQuery(nil))

		require.ErrorIs(t, err, wantErr)
	})
}
