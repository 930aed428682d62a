package service

import (
	"context"

	"github.com/nandinigupta-product/bmf-widget-demo/ratecard"
)

// RateSource interface describes
// the networking collaborator that fetches the raw
// rate card document for a city
type RateSource interface {
	// FetchRateCard returns the decoded rate card for the
	// given city code. The document shape is intentionally
	// unconstrained; extraction happens elsewhere.
	FetchRateCard(ctx context.Context, cityCode string) (*ratecard.Value, error)
}
