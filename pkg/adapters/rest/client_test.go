package rest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aretw0/tradein/pkg/adapters/rest"
	"github.com/aretw0/tradein/pkg/catalog"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsJSON = `{"data":{"products":[
  {"_id":"p1","slug":"playstation-5","name":"PlayStation 5","product_type":"playstation","offer_price":399.9,"images":["/uploads/ps5.png"]},
  {"_id":"p2","slug":"xbox-series-x","name":"Xbox Series X","product_type":"xbox","offer_price":"350"}
]}}`

const productJSON = `{"data":{
  "product":{"_id":"p1","slug":"playstation-5","name":"PlayStation 5","product_type":"playstation","offer_price":400,
    "images":["/uploads/ps5.png"],"memories":[{"name":"1TB","price":50}]},
  "questions":[
    {"id":"q1","text":"Condizione?","step":1,"options":[{"value":"good","label":"Good","deduction":-10},{"value":"new","label":"New"}]}
  ]}}`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/api/v1/products", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(productsJSON))
	})
	r.Get("/api/v1/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch chi.URLParam(r, "id") {
		case "p1", "playstation-5":
			_, _ = w.Write([]byte(productJSON))
		case "bare":
			_, _ = w.Write([]byte(`{"data":{"product":{"_id":"bare","name":"Bare","product_type":"nintendo","offer_price":90}}}`))
		case "boom":
			http.Error(w, "database down", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Consoles(t *testing.T) {
	srv := newServer(t)
	c := rest.New(srv.URL+"/api/v1/", rest.WithImageBase("https://cdn.example.com"))

	list, err := c.Consoles(context.Background(), domain.PlatformPlaystation, 10)
	require.NoError(t, err)
	require.Len(t, list, 1, "products of other platforms are filtered out")
	assert.Equal(t, "p1", list[0].ID)
	assert.Equal(t, domain.FromFloat(399.9), list[0].BasePrice)
	assert.Equal(t, "https://cdn.example.com/uploads/ps5.png", list[0].ImageRef)

	all, err := c.Consoles(context.Background(), domain.PlatformUnknown, 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, domain.Units(350), all[1].BasePrice, "string prices are accepted")
}

func TestClient_ProductAndConsole(t *testing.T) {
	srv := newServer(t)
	c := rest.New(srv.URL + "/api/v1")
	ctx := context.Background()

	p, err := c.Product(ctx, "playstation-5")
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformPlaystation, p.Platform)
	require.Len(t, p.Memories, 1)
	assert.Equal(t, domain.Units(50), p.Memories[0].Price)

	console, err := c.Console(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "PlayStation 5", console.Name)
	assert.Equal(t, srv.URL+"/api/v1/uploads/ps5.png", console.ImageRef)

	_, err = c.Product(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = c.Product(ctx, "boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_Catalog(t *testing.T) {
	srv := newServer(t)
	c := rest.New(srv.URL + "/api/v1")
	ctx := context.Background()

	cat, err := c.Catalog(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, cat, 1)
	assert.Equal(t, -10, cat[0].Options[0].Deduction)

	empty, err := c.Catalog(ctx, "bare")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestClient_BehindResolver(t *testing.T) {
	srv := newServer(t)
	c := rest.New(srv.URL + "/api/v1")
	r := catalog.NewResolver(c)
	ctx := context.Background()

	cat, source := r.Resolve(ctx, "p1")
	assert.Equal(t, domain.CatalogSourceConsole, source)
	assert.Len(t, cat, 1)

	cat, source = r.Resolve(ctx, "bare")
	assert.Equal(t, domain.CatalogSourceDefault, source)
	assert.Equal(t, catalog.Default(), cat)

	_, source = r.Resolve(ctx, "boom")
	assert.Equal(t, domain.CatalogSourceDefault, source)
}

func TestClient_ConsoleThenCatalogFetchesOnce(t *testing.T) {
	var hits atomic.Int32
	r := chi.NewRouter()
	r.Get("/api/v1/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(productJSON))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c := rest.New(srv.URL + "/api/v1")
	ctx := context.Background()

	console, err := c.Console(ctx, "playstation-5")
	require.NoError(t, err)
	cat, err := c.Catalog(ctx, console.ID)
	require.NoError(t, err)
	require.Len(t, cat, 1)
	assert.Equal(t, int32(1), hits.Load(), "the catalog comes from the product payload")

	_, err = c.Catalog(ctx, console.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load(), "kept questions serve a single call")

	noReuse := rest.New(srv.URL+"/api/v1", rest.WithReuseWindow(0))
	_, err = noReuse.Console(ctx, "p1")
	require.NoError(t, err)
	_, err = noReuse.Catalog(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int32(4), hits.Load())
}

func TestClient_KeptQuestionsExpire(t *testing.T) {
	var hits atomic.Int32
	r := chi.NewRouter()
	r.Get("/api/v1/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(productJSON))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c := rest.New(srv.URL+"/api/v1", rest.WithReuseWindow(10*time.Millisecond))
	ctx := context.Background()

	_, err := c.Console(ctx, "p1")
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	_, err = c.Catalog(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}
