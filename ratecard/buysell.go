package ratecard

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Field aliases observed for each side of the quote, in probe
// order. snake_case and camelCase variants plus the card/cash
// qualified forms some deployments use.
var (
	buyAliases  = []string{"buy", "buy_rate", "buyRate", "card_buy", "cash_buy", "buying_rate"}
	sellAliases = []string{"sell", "sell_rate", "sellRate", "card_sell", "cash_sell", "selling_rate"}
)

// MapBuySell reads the buy and sell rates off a located currency
// node. The two sides resolve independently: for each, the first
// alias whose value coerces to a number wins, with one extra
// probe level under a `rates` sub-object. A side with no usable
// alias stays invalid; both invalid means the node's fields were
// not recognized and the caller must treat it as a failure.
func MapBuySell(node *Value) (buy, sell decimal.NullDecimal) {
	return probeNumber(node, buyAliases), probeNumber(node, sellAliases)
}

func probeNumber(node *Value, aliases []string) decimal.NullDecimal {
	if node == nil || node.Kind() != Object {
		return decimal.NullDecimal{}
	}

	if d, ok := firstNumber(node, aliases); ok {
		return decimal.NullDecimal{Decimal: d, Valid: true}
	}

	if rates, ok := node.Field("rates"); ok && rates.Kind() == Object {
		if d, ok := firstNumber(rates, aliases); ok {
			return decimal.NullDecimal{Decimal: d, Valid: true}
		}
	}

	return decimal.NullDecimal{}
}

func firstNumber(node *Value, aliases []string) (decimal.Decimal, bool) {
	for _, alias := range aliases {
		f, ok := node.Field(alias)
		if !ok {
			continue
		}

		if d, ok := coerceNumber(f); ok {
			return d, true
		}
	}

	return decimal.Decimal{}, false
}

// coerceNumber turns a scalar node into a decimal. Strings are
// accepted after stripping thousands separators and whitespace,
// matching how rates show up quoted in some deployments.
// Anything unparsable is skipped, not an error.
func coerceNumber(v *Value) (decimal.Decimal, bool) {
	if v == nil {
		return decimal.Decimal{}, false
	}

	var raw string
	switch v.Kind() {
	case Number:
		raw = v.Text()
	case String:
		raw = strings.TrimSpace(strings.ReplaceAll(v.Text(), ",", ""))
	default:
		return decimal.Decimal{}, false
	}

	if raw == "" {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}

	return d, true
}
