package quote

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nandinigupta-product/bmf-widget-demo/model"
	"github.com/nandinigupta-product/bmf-widget-demo/ratecard"
	"github.com/nandinigupta-product/bmf-widget-demo/service"
	"github.com/nandinigupta-product/bmf-widget-demo/storage"
	"github.com/rs/zerolog/log"
)

func New(cache storage.Cache, source service.RateSource) *Quote {
	return &Quote{cache: cache, source: source, prefer: model.Buy}
}

type Quote struct {
	cache  storage.Cache
	source service.RateSource
	prefer model.RateSide
}

// Response is the canonical quote for one city and currency.
// Rates and totals are decimal strings.
type Response struct {
	CityCode    string `json:"city_code"`
	Currency    string `json:"currency"`
	Buy         string `json:"buy,omitempty"`
	Sell        string `json:"sell,omitempty"`
	Payable     string `json:"payable"`
	DeliverySLA string `json:"delivery_sla"`
}

// Get godoc
//
//	@Summary		Quote a currency purchase
//	@Description	reads the city rate card and prices the requested amount
//	@Tags			quote
//	@Param			city_code	query	string	true	"City code"      example(delhi)
//	@Param			currency	query	string	true	"Currency code"  example(USD)
//	@Param			amount		query	string	true	"Foreign amount" example(1000)
//	@Success		200	{object}	quote.Response
//	@Failure		400	{string}	string "invalid amount: must be positive"
//	@Failure		502	{string}	string "unable to fetch rates right now"
//	@Router			/api/v1/quote [get]
func (q *Quote) Get(ctx *fiber.Ctx) error {
	query, err := model.NewRateQuery(ctx.Query("city_code"), ctx.Query("currency"), ctx.Query("amount"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	key := storage.Key{CityCode: query.CityCode, Currency: query.Currency}
	doc, err := q.cache.GetOrFetch(ctx.UserContext(), key, func(fetchCtx context.Context) (*ratecard.Value, error) {
		return q.source.FetchRateCard(fetchCtx, query.CityCode)
	})
	if err != nil {
		log.Error().Err(err).Str("city", query.CityCode).Msg("unable to obtain rate card")
		return fiber.NewError(fiber.StatusBadGateway, "unable to fetch rates right now, please try again")
	}

	extracted, err := ratecard.Extract(doc, query.Currency)
	if err != nil {
		var extractionErr *model.ExtractionError
		if errors.As(err, &extractionErr) {
			log.Error().Err(err).Str("city", query.CityCode).Str("currency", query.Currency).Msg("rate card did not yield a quote")
			return fiber.NewError(fiber.StatusBadGateway, "couldn't read rates from the rate card, format may have changed")
		}

		return fiber.NewError(fiber.StatusBadGateway, "unable to fetch rates right now, please try again")
	}

	log.Debug().Str("city", query.CityCode).Str("currency", query.Currency).Msg("quoting")

	resp := Response{
		CityCode:    query.CityCode,
		Currency:    query.Currency,
		DeliverySLA: extracted.DeliverySLA,
	}

	if resp.DeliverySLA == "" {
		resp.DeliverySLA = model.FallbackDeliverySLA
	}

	if extracted.Buy.Valid {
		resp.Buy = extracted.Buy.Decimal.String()
	}

	if extracted.Sell.Valid {
		resp.Sell = extracted.Sell.Decimal.String()
	}

	if payable, ok := extracted.Payable(query.Amount, q.prefer); ok {
		resp.Payable = payable.String()
	}

	return ctx.JSON(resp)
}
