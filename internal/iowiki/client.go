// Package iowiki fetches pages from MediaWiki Action API services: the
// species directory (Wikispecies) and the encyclopedia (Wikipedia).
//
// Responses are converted to record.RawDocument values. Requests are
// throttled per service and throttled responses (HTTP 429) are retried
// with exponential backoff.
package iowiki

import (
	"context"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnspecies/pkg/config"
	"golang.org/x/time/rate"
)

// RetryBaseDelay is the first backoff delay after HTTP 429. It doubles
// with every attempt.
var RetryBaseDelay = time.Second

// client is a throttled MediaWiki Action API client of one service.
type client struct {
	service    string
	endpoint   string
	userAgent  string
	maxRetries int
	http       *http.Client
	limiter    *rate.Limiter
	enc        gnfmt.GNjson
}

func newClient(service, endpoint string, cfg config.WikiConfig) *client {
	return &client{
		service:    service,
		endpoint:   endpoint,
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimit),
	}
}

// query sends an Action API query and decodes the reply into res.
func (c *client) query(ctx context.Context, params url.Values, res *response) error {
	params.Set("action", "query")
	params.Set("format", "json")

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return RequestError(c.service, err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return RequestError(c.service, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return StatusError(c.service, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return RequestError(c.service, err)
	}

	if err = c.enc.Decode(body, res); err != nil {
		return DecodeError(c.service, err)
	}
	if res.Error != nil {
		return APIError(c.service, res.Error.Code, res.Error.Info)
	}
	return nil
}

// do waits for the rate limiter and sends the request, repeating it while
// the service answers with HTTP 429 and retries are left. After the last
// retry the 429 response is returned to the caller.
func (c *client) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := c.http.Do(req.Clone(ctx))
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, RequestError(c.service, err)
		}

		if resp.StatusCode != http.StatusTooManyRequests || attempt >= c.maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		slog.Warn("Request throttled, retrying",
			"service", c.service,
			"backoff", backoff.String(),
			"attempt", attempt+1,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
