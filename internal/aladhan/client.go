// Package aladhan is a small client for the Al Adhan prayer-times API.
package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.aladhan.com/v1"

// Client issues single, unretried requests against the timings endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string) *Client {
	u := strings.TrimSpace(baseURL)
	if u == "" {
		u = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(u, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// TimingsByCoordinates fetches the timings for date ("YYYY-MM-DD") at a position.
func (c *Client) TimingsByCoordinates(ctx context.Context, date string, lat, lng float64, method int) (*Response, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("method", strconv.Itoa(method))

	return c.do(ctx, fmt.Sprintf("%s/timings/%s", c.baseURL, url.PathEscape(date)), params)
}

// TimingsByCity fetches the timings for date ("YYYY-MM-DD") in a named city.
func (c *Client) TimingsByCity(ctx context.Context, date, city, country string, method int) (*Response, error) {
	params := url.Values{}
	params.Set("city", city)
	params.Set("country", country)
	params.Set("method", strconv.Itoa(method))

	return c.do(ctx, fmt.Sprintf("%s/timingsByCity/%s", c.baseURL, url.PathEscape(date)), params)
}

func (c *Client) do(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build timings request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timings request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("timings request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode timings response: %w", err)
	}
	if out.Code != http.StatusOK {
		return nil, fmt.Errorf("timings api error: code=%d status=%s", out.Code, out.Status)
	}
	return &out, nil
}
