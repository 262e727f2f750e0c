package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/projectcart/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the Serper shopping search API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	country     string
	rateLimiter *rate.Limiter
	debug       bool
}

// shoppingRequest is the JSON body for the Serper shopping endpoint
type shoppingRequest struct {
	Query   string `json:"q"`
	Num     int    `json:"num"`
	Country string `json:"gl"`
}

// NewClient creates a new Serper API client
func NewClient(apiKey, baseURL, country string) *Client {
	// Serper allows bursts but sustained traffic should stay modest;
	// 10 req/sec with a burst of 5 keeps a full checklist fan-out well inside that
	limiter := rate.NewLimiter(rate.Limit(10), 5)

	if country == "" {
		country = "us"
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		country:     country,
		rateLimiter: limiter,
	}
}

// SetDebug enables or disables debug logging of requests and responses
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// exponentialBackoff returns the wait duration before the given retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(250*(1<<attempt)) * time.Millisecond
}

// doRequest executes an HTTP POST request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "ProjectCart/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSerperAPIFailure, err)
	}

	return resp, nil
}

// SearchShopping searches for purchasable offers matching the query.
// num controls how many results are requested; Serper may return fewer.
// An empty result set is not an error: the caller decides what no offers means.
func (c *Client) SearchShopping(ctx context.Context, query string, num int) (*domain.SerperShoppingResponse, error) {
	if c.debug {
		log.Printf("[SERPER] SearchShopping called with query: %q (num: %d)", query, num)
	}

	reqURL := fmt.Sprintf("%s/shopping", c.baseURL)
	payload, err := json.Marshal(shoppingRequest{
		Query:   query,
		Num:     num,
		Country: c.country,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		// Wait for rate limiter
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL, payload)
		if err != nil {
			if c.debug {
				log.Printf("[SERPER] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			if ctx.Err() != nil {
				return nil, lastErr
			}
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			var searchResp domain.SerperShoppingResponse
			if err := json.Unmarshal(body, &searchResp); err != nil {
				return nil, fmt.Errorf("failed to decode response: %w", err)
			}
			if c.debug {
				log.Printf("[SERPER] Found %d offers for query: %q", len(searchResp.Shopping), query)
			}
			return &searchResp, nil

		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			// Transient: back off and retry
			if c.debug {
				log.Printf("[SERPER] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrSerperAPIFailure, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))

		default:
			// Client errors (bad key, malformed query) won't heal on retry
			return nil, fmt.Errorf("%w: status %d", domain.ErrSerperAPIFailure, resp.StatusCode)
		}
	}

	if c.debug {
		log.Printf("[SERPER] All retries failed for query: %q", query)
	}
	return nil, lastErr
}
