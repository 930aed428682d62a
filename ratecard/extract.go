package ratecard

import (
	"strings"

	"github.com/nandinigupta-product/bmf-widget-demo/model"
)

// Extract runs the full pipeline against a decoded rate card:
// delivery estimate off the whole document, currency node via
// Locate, buy/sell via MapBuySell. Returns an ExtractionError
// when no node matches the currency or a matched node yields
// neither side.
func Extract(doc *Value, currency string) (model.Quote, error) {
	ccy := strings.ToUpper(strings.TrimSpace(currency))

	q := model.Quote{}
	if sla, ok := DeliverySLA(doc); ok {
		q.DeliverySLA = sla
	}

	node := Locate(doc, ccy)
	if node == nil {
		return model.Quote{}, &model.ExtractionError{Currency: ccy}
	}

	q.Buy, q.Sell = MapBuySell(node)
	if !q.Usable() {
		return model.Quote{}, &model.ExtractionError{Currency: ccy, NodeFound: true}
	}

	return q, nil
}
