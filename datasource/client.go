package datasource

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/sony/gobreaker/v2"

	"weather-dashboard/models"
)

// StatusError is returned by BaseClient.Do when the upstream answers 429 or 5xx
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Body)
}

// BaseClient wraps an *http.Client in a circuit breaker and stamps every
// request with the User-Agent and the cycle's correlation id. It never retries
type BaseClient struct {
	client    *http.Client
	breaker   *gobreaker.CircuitBreaker[*http.Response]
	userAgent string
}

// NewBaseClient creates a BaseClient whose breaker opens after more than five
// consecutive failures and half-opens again after 30 seconds. A nil httpClient
// gets a 10 second timeout
func NewBaseClient(httpClient *http.Client, breakerName, userAgent string) *BaseClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	return &BaseClient{
		client:    httpClient,
		breaker:   cb,
		userAgent: userAgent,
	}
}

// Do executes the request once through the circuit breaker. 429 and 5xx
// responses count as failures and come back as *StatusError with the body
// already closed; any other response is returned for the caller to close
func (c *BaseClient) Do(req *http.Request) (*http.Response, error) {
	if id := models.GetRequestID(req.Context()); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	// Asking explicitly turns off the transport's transparent decompression;
	// readBody handles it instead.
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		r, doErr := c.client.Do(req)
		if doErr != nil {
			return nil, doErr
		}
		if r.StatusCode >= 500 || r.StatusCode == http.StatusTooManyRequests {
			body, _ := readBody(r)
			r.Body.Close()
			return nil, &StatusError{StatusCode: r.StatusCode, Body: string(body)}
		}
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Timeout returns the per-request timeout of the underlying http.Client
func (c *BaseClient) Timeout() time.Duration {
	return c.client.Timeout
}

// State returns the breaker's current state
func (c *BaseClient) State() gobreaker.State {
	return c.breaker.State()
}

// readBody reads the whole response body, decompressing gzip when the
// upstream used it. It does not close the body
func readBody(resp *http.Response) ([]byte, error) {
	if resp.Header.Get("Content-Encoding") != "gzip" {
		return io.ReadAll(resp.Body)
	}

	zr, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip body: %w", err)
	}
	defer zr.Close()

	return io.ReadAll(zr)
}
