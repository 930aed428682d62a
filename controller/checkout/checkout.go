package checkout

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/nandinigupta-product/bmf-widget-demo/model"
	"github.com/shopspring/decimal"
)

const defaultCheckoutBase = "https://www.bookmyforex.com/"

// BuildURL builds the provider checkout redirect carrying the
// current form selection, the way the embedded widget's CTA
// button does.
func BuildURL(base, product, cityCode, currency string, amount decimal.Decimal) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("bmf_product", product)
	query.Set("bmf_city_code", cityCode)
	query.Set("bmf_ccy", currency)
	query.Set("bmf_amt", amount.String())
	u.RawQuery = query.Encode()

	return u.String(), nil
}

func New(base string) *Checkout {
	if base == "" {
		base = defaultCheckoutBase
	}

	return &Checkout{base: base}
}

type Checkout struct {
	base string
}

// Response carries the checkout redirect target.
type Response struct {
	URL string `json:"url"`
}

// Get godoc
//
//	@Summary		Build the checkout redirect URL
//	@Description	turns the current form selection into the provider checkout URL
//	@Tags			checkout
//	@Param			product		query	string	false	"Product"        example(forex_card)
//	@Param			city_code	query	string	true	"City code"      example(delhi)
//	@Param			currency	query	string	true	"Currency code"  example(USD)
//	@Param			amount		query	string	true	"Foreign amount" example(1000)
//	@Success		200	{object}	checkout.Response
//	@Failure		400	{string}	string "invalid amount: missing"
//	@Router			/api/v1/checkout-url [get]
func (c *Checkout) Get(ctx *fiber.Ctx) error {
	product := ctx.Query("product", "forex_card")

	query, err := model.NewRateQuery(ctx.Query("city_code"), ctx.Query("currency"), ctx.Query("amount"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	target, err := BuildURL(c.base, product, query.CityCode, query.Currency, query.Amount)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return ctx.JSON(Response{URL: target})
}
