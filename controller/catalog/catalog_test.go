package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/nandinigupta-product/bmf-widget-demo/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	catalog model.Catalog
	err     error
}

func (s *stubStore) Load(ctx context.Context) (model.Catalog, error) {
	return s.catalog, s.err
}

func listCatalog(t *testing.T, handler *Catalog) Response {
	t.Helper()

	app := fiber.New()
	app.Get("/api/v1/catalog", handler.List)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var got Response
	require.NoError(t, json.Unmarshal(body, &got))
	return got
}

func TestList_ServesPersistedCatalog(t *testing.T) {
	store := &stubStore{catalog: model.Catalog{
		Products:   []model.Product{{Value: "forex_card", Label: "Forex Card"}},
		Cities:     []model.City{{Code: "delhi", Label: "Delhi"}},
		Currencies: []string{"USD", "EUR"},
	}}

	got := listCatalog(t, New(store))

	require.Len(t, got.Cities, 1)
	assert.Equal(t, "delhi", got.Cities[0].Code)
	assert.Equal(t, []string{"USD", "EUR"}, got.Currencies)
}

func TestList_FallsBackWithoutStore(t *testing.T) {
	got := listCatalog(t, New(nil))

	assert.Len(t, got.Cities, 12)
	assert.Contains(t, got.Currencies, "USD")
}

func TestList_FallsBackOnLoadError(t *testing.T) {
	got := listCatalog(t, New(&stubStore{err: errors.New("db down")}))

	assert.Len(t, got.Cities, 12)
	assert.Len(t, got.Products, 2)
}

func TestList_FallsBackOnEmptyCatalog(t *testing.T) {
	got := listCatalog(t, New(&stubStore{}))

	assert.Len(t, got.Cities, 12)
}
