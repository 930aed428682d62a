package quote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/nandinigupta-product/bmf-widget-demo/model"
	"github.com/nandinigupta-product/bmf-widget-demo/ratecard"
	"github.com/nandinigupta-product/bmf-widget-demo/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	doc *ratecard.Value
	err error
}

func (s *stubSource) FetchRateCard(ctx context.Context, cityCode string) (*ratecard.Value, error) {
	return s.doc, s.err
}

type passCache struct{}

func (passCache) GetOrFetch(ctx context.Context, key storage.Key, fetch storage.FetchFunc) (*ratecard.Value, error) {
	return fetch(ctx)
}

func (passCache) Invalidate(storage.Key) {}

func newTestApp(t *testing.T, source *stubSource) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Get("/api/v1/quote", New(passCache{}, source).Get)
	return app
}

func doRequest(t *testing.T, app *fiber.App, target string) (*http.Response, []byte) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	return resp, body
}

func parseDoc(t *testing.T, raw string) *ratecard.Value {
	t.Helper()

	doc, err := ratecard.Parse([]byte(raw))
	require.NoError(t, err)
	return doc
}

func TestGet_QuotesFromRowList(t *testing.T) {
	source := &stubSource{doc: parseDoc(t, `{"tat":"Same day","data":{"rate_card":[{"currency":"USD","buy":"83.10","sell":"85.20"}]}}`)}
	app := newTestApp(t, source)

	resp, body := doRequest(t, app, "/api/v1/quote?city_code=delhi&currency=USD&amount=1000")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got Response
	require.NoError(t, json.Unmarshal(body, &got))

	assert.Equal(t, "delhi", got.CityCode)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, "Same day", got.DeliverySLA)
	assert.True(t, decimal.RequireFromString(got.Buy).Equal(decimal.RequireFromString("83.10")))
	assert.True(t, decimal.RequireFromString(got.Sell).Equal(decimal.RequireFromString("85.20")))
	assert.True(t, decimal.RequireFromString(got.Payable).Equal(decimal.RequireFromString("83100")))
}

func TestGet_SellOnlyQuote(t *testing.T) {
	source := &stubSource{doc: parseDoc(t, `{"rates":{"USD":{"sell_rate":"85"}}}`)}
	app := newTestApp(t, source)

	resp, body := doRequest(t, app, "/api/v1/quote?city_code=delhi&currency=usd&amount=1000")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got Response
	require.NoError(t, json.Unmarshal(body, &got))

	assert.Empty(t, got.Buy)
	assert.True(t, decimal.RequireFromString(got.Payable).Equal(decimal.RequireFromString("85000")))
	assert.Equal(t, model.FallbackDeliverySLA, got.DeliverySLA)
}

func TestGet_InvalidAmount(t *testing.T) {
	app := newTestApp(t, &stubSource{doc: ratecard.NewObject()})

	for _, amount := range []string{"", "0", "-10", "abc"} {
		resp, _ := doRequest(t, app, "/api/v1/quote?city_code=delhi&currency=USD&amount="+amount)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "amount %q", amount)
	}
}

func TestGet_UpstreamFailure(t *testing.T) {
	app := newTestApp(t, &stubSource{err: &model.NetworkError{Status: 500}})

	resp, _ := doRequest(t, app, "/api/v1/quote?city_code=delhi&currency=USD&amount=1000")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestGet_SchemaDrift(t *testing.T) {
	app := newTestApp(t, &stubSource{doc: parseDoc(t, `[]`)})

	resp, body := doRequest(t, app, "/api/v1/quote?city_code=delhi&currency=USD&amount=1000")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, string(body), "format may have changed")
}
