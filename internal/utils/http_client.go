package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(5*time.Second, 1)
//	resp, err := client.R().Get("http://cn2.example.com/health_check")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption customizes the resty client built by [NewHTTPClient].
type HTTPClientOption func(*resty.Client)

// WithRetryWait sets the bounds of the wait between transport retries.
func WithRetryWait(wait, maxWait time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetRetryWaitTime(wait).SetRetryMaxWaitTime(maxWait)
	}
}

// NewHTTPClient creates an independent client with the given per-request
// timeout and number of retries. A request is retried on transport errors
// and on 5xx responses.
func NewHTTPClient(timeout time.Duration, retryCount int, opts ...HTTPClientOption) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})

	for _, opt := range opts {
		opt(client)
	}

	return &HTTPClient{Client: client}
}
