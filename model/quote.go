package model

import "github.com/shopspring/decimal"

// RateSide selects which side of a quote drives the payable
// amount. Buy is the default everywhere; sell is only a
// fallback unless a host explicitly prefers it.
type RateSide string

const (
	Buy  RateSide = "BUY"  // Buy is the provider's buying rate
	Sell RateSide = "SELL" // Sell is the provider's selling rate
)

// Quote holds the canonical view of one currency's
// entry in an upstream rate card. Either side may be
// absent when the upstream omits or renames it.
type Quote struct {
	Buy         decimal.NullDecimal // Buy rate, if recognized
	Sell        decimal.NullDecimal // Sell rate, if recognized
	DeliverySLA string              // Delivery estimate text, empty when absent
}

// Usable reports whether at least one side of the quote
// carries a rate. A quote with neither side is worthless
// to callers and is treated as an extraction failure upstream.
func (q Quote) Usable() bool {
	return q.Buy.Valid || q.Sell.Valid
}

// Rate returns the rate for the preferred side, falling back
// to the other side when the preferred one is absent.
func (q Quote) Rate(prefer RateSide) (decimal.Decimal, bool) {
	first, second := q.Buy, q.Sell
	if prefer == Sell {
		first, second = q.Sell, q.Buy
	}

	if first.Valid {
		return first.Decimal, true
	}

	if second.Valid {
		return second.Decimal, true
	}

	return decimal.Decimal{}, false
}

// Payable computes the local-currency total for the given
// foreign amount using the preferred rate side.
func (q Quote) Payable(amount decimal.Decimal, prefer RateSide) (decimal.Decimal, bool) {
	rate, ok := q.Rate(prefer)
	if !ok {
		return decimal.Decimal{}, false
	}

	return amount.Mul(rate), true
}
