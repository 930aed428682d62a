package ratecard

import (
	"testing"

	"github.com/nandinigupta-product/bmf-widget-demo/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_RowListDocument(t *testing.T) {
	doc := mustParse(t, `{"data":{"rate_card":[{"currency":"USD","buy":"83.10","sell":"85.20"}]}}`)

	q, err := Extract(doc, "USD")
	require.NoError(t, err)

	require.True(t, q.Buy.Valid)
	require.True(t, q.Sell.Valid)
	assert.True(t, q.Buy.Decimal.Equal(decimal.RequireFromString("83.10")))
	assert.True(t, q.Sell.Decimal.Equal(decimal.RequireFromString("85.20")))

	// buy preferred for the payable total
	payable, ok := q.Payable(decimal.NewFromInt(1000), model.Buy)
	require.True(t, ok)
	assert.True(t, payable.Equal(decimal.RequireFromString("83100.00")))
}

func TestExtract_CurrencyKeyedMap(t *testing.T) {
	doc := mustParse(t, `{"rates":{"USD":{"buy_rate":80}}}`)

	q, err := Extract(doc, "USD")
	require.NoError(t, err)

	require.True(t, q.Buy.Valid)
	assert.False(t, q.Sell.Valid)

	payable, ok := q.Payable(decimal.NewFromInt(1000), model.Buy)
	require.True(t, ok)
	assert.True(t, payable.Equal(decimal.RequireFromString("80000")))
}

func TestExtract_EmptyDocument(t *testing.T) {
	doc := mustParse(t, `[]`)

	_, err := Extract(doc, "USD")

	var extractionErr *model.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.False(t, extractionErr.NodeFound)
	assert.Equal(t, "USD", extractionErr.Currency)
}

func TestExtract_NodeFoundButFieldsUnrecognized(t *testing.T) {
	doc := mustParse(t, `{"rows":[{"currency":"USD","purchase":83.10}]}`)

	_, err := Extract(doc, "usd")

	var extractionErr *model.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.True(t, extractionErr.NodeFound)
}

func TestExtract_CarriesDeliverySLA(t *testing.T) {
	doc := mustParse(t, `{"tat":"Same day","data":{"rate_card":[{"ccy":"EUR","sell_rate":"90"}]}}`)

	q, err := Extract(doc, "EUR")
	require.NoError(t, err)
	assert.Equal(t, "Same day", q.DeliverySLA)
}

func TestExtract_NoSLAIsLegitimate(t *testing.T) {
	doc := mustParse(t, `{"data":{"rate_card":[{"currency":"USD","buy":83}]}}`)

	q, err := Extract(doc, "USD")
	require.NoError(t, err)
	assert.Empty(t, q.DeliverySLA)
}
