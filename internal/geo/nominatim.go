package geo

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

const (
	DefaultNominatimBaseURL = "https://nominatim.openstreetmap.org"
	userAgent               = "takmir/1.0 (mosque information site)"
)

// Place is the result of a reverse lookup. Empty fields mean the service
// did not report them.
type Place struct {
	City    string
	Country string
}

// ReverseGeocoder names the place at a position.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, p Point) (Place, error)
}

// Nominatim is an OpenStreetMap reverse geocoder.
type Nominatim struct {
	baseURL    string
	httpClient *http.Client
}

func NewNominatim(baseURL string) *Nominatim {
	u := strings.TrimSpace(baseURL)
	if u == "" {
		u = DefaultNominatimBaseURL
	}
	return &Nominatim{
		baseURL:    strings.TrimRight(u, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type nominatimResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Country string `json:"country"`
	} `json:"address"`
}

func (n *Nominatim) Reverse(ctx context.Context, p Point) (Place, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(p.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(p.Longitude, 'f', -1, 64))
	params.Set("zoom", "10")
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return Place{}, fmt.Errorf("build reverse geocoding request: %w", err)
	}
	// Nominatim rejects requests without an identifying agent.
	req.Header.Set("User-Agent", userAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("reverse geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return Place{}, fmt.Errorf("reverse geocoding error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var out nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Place{}, fmt.Errorf("decode reverse geocoding response: %w", err)
	}

	city := out.Address.City
	if city == "" {
		city = out.Address.Town
	}
	if city == "" {
		city = out.Address.Village
	}
	return Place{City: city, Country: out.Address.Country}, nil
}
