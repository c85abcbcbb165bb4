package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Point is a bare position in degrees.
type Point struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// PositionSource produces the caller's position. Key identifies the
// position for caching; an empty key disables caching.
type PositionSource interface {
	Position(ctx context.Context) (Point, error)
	Key() string
}

// Fixed is a position supplied directly by the client, e.g. a browser or
// a display screen that already knows where it is.
type Fixed Point

func (f Fixed) Position(context.Context) (Point, error) {
	if f.Latitude < -90 || f.Latitude > 90 || f.Longitude < -180 || f.Longitude > 180 {
		return Point{}, fmt.Errorf("coordinates out of range: %f,%f", f.Latitude, f.Longitude)
	}
	return Point(f), nil
}

func (Fixed) Key() string { return "" }

const DefaultIPAPIBaseURL = "http://ip-api.com/json"

var ErrIPLookup = errors.New("ip geolocation failed")

// IPLocator asks ip-api.com where a public IP address is.
type IPLocator struct {
	baseURL    string
	ip         string
	httpClient *http.Client
}

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// NewIPLocator locates ip. An empty ip asks for the server's own address.
func NewIPLocator(baseURL, ip string) *IPLocator {
	u := strings.TrimSpace(baseURL)
	if u == "" {
		u = DefaultIPAPIBaseURL
	}
	return &IPLocator{
		baseURL:    strings.TrimRight(u, "/"),
		ip:         strings.TrimSpace(ip),
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (l *IPLocator) Key() string {
	if l.ip == "" {
		return "ip:self"
	}
	return "ip:" + l.ip
}

func (l *IPLocator) Position(ctx context.Context) (Point, error) {
	endpoint := l.baseURL
	if l.ip != "" {
		endpoint += "/" + url.PathEscape(l.ip)
	}
	endpoint += "?fields=status,message,lat,lon"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Point{}, fmt.Errorf("build geolocation request: %w", err)
	}
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return Point{}, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Point{}, fmt.Errorf("%w: status %d", ErrIPLookup, resp.StatusCode)
	}

	var result ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Point{}, fmt.Errorf("decode geolocation response: %w", err)
	}
	if result.Status != "success" {
		return Point{}, fmt.Errorf("%w: %s", ErrIPLookup, result.Message)
	}
	return Point{Latitude: result.Lat, Longitude: result.Lon}, nil
}
