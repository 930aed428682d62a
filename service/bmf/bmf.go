package bmf

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/eapache/go-resiliency/retrier"
	"github.com/nandinigupta-product/bmf-widget-demo/model"
	"github.com/nandinigupta-product/bmf-widget-demo/ratecard"
	"github.com/nandinigupta-product/bmf-widget-demo/service"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://www.bookmyforex.com/api/secure/v1/" // base URL of the rate card API

	defaultRetries = 2
	defaultBackoff = 500 * time.Millisecond
)

// Config tunes the upstream client. Zero values fall back to
// sensible defaults.
type Config struct {
	BaseURL string        // rate card API base URL
	Retries int           // retry attempts after the first failure
	Backoff time.Duration // initial backoff, doubled per retry
}

type client struct {
	baseURL     *url.URL      // Base URL for API requests
	httpClient  *http.Client  // HTTP client used to communicate with the API.
	rateLimiter *rate.Limiter // Rate limiter for the upstream API
	retry       *retrier.Retrier
}

func New(cfg Config) (service.RateSource, error) {
	raw := cfg.BaseURL
	if raw == "" {
		raw = defaultBaseURL
	}

	base, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}

	retries := cfg.Retries
	if retries <= 0 {
		retries = defaultRetries
	}

	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = defaultBackoff
	}

	c := &client{
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 10),
		retry:       retrier.New(retrier.ExponentialBackoff(retries, backoff), transientClassifier{}),
		httpClient: &http.Client{
			Transport: roundTripperFn(
				func(req *http.Request) (*http.Response, error) {
					req.Header.Set("Accept", "application/json")

					return http.DefaultTransport.RoundTrip(req)
				},
			),
		},
		baseURL: base,
	}

	return c, nil
}

// FetchRateCard implements service.RateSource.
// GET /get-full-rate-card?city_code=delhi
func (c *client) FetchRateCard(ctx context.Context, cityCode string) (*ratecard.Value, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	u, err := c.baseURL.Parse("get-full-rate-card")
	if err != nil {
		return nil, err
	}

	query := u.Query()
	query.Set("city_code", cityCode)
	u.RawQuery = query.Encode()

	log.Debug().Str("url", u.String()).Msg("fetching rate card from API")

	var doc *ratecard.Value

	err = c.retry.RunCtx(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return &model.NetworkError{Err: err}
		}

		defer resp.Body.Close()

		if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
			io.Copy(io.Discard, resp.Body)
			return &model.NetworkError{Status: resp.StatusCode}
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return &model.NetworkError{Err: err}
		}

		parsed, err := ratecard.Parse(body)
		if err != nil {
			return &model.ParseError{Err: err}
		}

		doc = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// transientClassifier retries transport failures and 5xx
// responses. Client errors and malformed bodies fail at once;
// retrying those only burns the rate limit.
type transientClassifier struct{}

func (transientClassifier) Classify(err error) retrier.Action {
	if err == nil {
		return retrier.Succeed
	}

	var netErr *model.NetworkError
	if errors.As(err, &netErr) {
		if netErr.Status == 0 || netErr.Status >= http.StatusInternalServerError {
			return retrier.Retry
		}
	}

	return retrier.Fail
}

type roundTripperFn func(*http.Request) (*http.Response, error)

func (fn roundTripperFn) RoundTrip(r *http.Request) (*http.Response, error) {
	return fn(r)
}
