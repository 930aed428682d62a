package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RateQuery describes one recompute request: which city's
// rate card to read, which currency to look for and how much
// of it the user wants. Immutable once built.
type RateQuery struct {
	CityCode string          // City code understood by the upstream rate card API
	Currency string          // ISO-4217-like currency code, matched case-insensitively
	Amount   decimal.Decimal // Foreign currency amount, must be positive
}

// NewRateQuery normalizes and validates the raw form inputs.
// The amount is accepted with thousands separators, the way
// users type it into the widget.
func NewRateQuery(cityCode, currency, amount string) (RateQuery, error) {
	q := RateQuery{
		CityCode: strings.ToLower(strings.TrimSpace(cityCode)),
		Currency: strings.ToUpper(strings.TrimSpace(currency)),
	}

	if q.CityCode == "" {
		return RateQuery{}, &ValidationError{Field: "city_code", Reason: "missing"}
	}

	if q.Currency == "" {
		return RateQuery{}, &ValidationError{Field: "currency", Reason: "missing"}
	}

	amt, err := ParseAmount(amount)
	if err != nil {
		return RateQuery{}, err
	}

	q.Amount = amt
	return q, nil
}

// ParseAmount parses a user-typed amount, stripping thousands
// separators and surrounding whitespace. Non-positive and
// non-numeric inputs are rejected.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if cleaned == "" {
		return decimal.Decimal{}, &ValidationError{Field: "amount", Reason: "missing"}
	}

	amt, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, &ValidationError{Field: "amount", Reason: "not a number"}
	}

	if !amt.IsPositive() {
		return decimal.Decimal{}, &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	return amt, nil
}

// Validate re-checks an already constructed query. The widget
// controller calls this on every trigger since hosts may build
// queries by hand.
func (q RateQuery) Validate() error {
	if strings.TrimSpace(q.CityCode) == "" {
		return &ValidationError{Field: "city_code", Reason: "missing"}
	}

	if strings.TrimSpace(q.Currency) == "" {
		return &ValidationError{Field: "currency", Reason: "missing"}
	}

	if !q.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	return nil
}
