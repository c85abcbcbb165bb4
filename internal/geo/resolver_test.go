package geo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	p     Point
	err   error
	key   string
	calls int
}

func (s *stubSource) Position(context.Context) (Point, error) {
	s.calls++
	return s.p, s.err
}

func (s *stubSource) Key() string { return s.key }

type stubGeocoder struct {
	place Place
	err   error
}

func (g stubGeocoder) Reverse(context.Context, Point) (Place, error) { return g.place, g.err }

type memCache struct {
	mu   sync.Mutex
	data map[string]Point
	ttl  time.Duration
}

func (c *memCache) GetPosition(_ context.Context, key string) (Point, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.data[key]
	return p, ok, nil
}

func (c *memCache) SetPosition(_ context.Context, key string, p Point, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		c.data = map[string]Point{}
	}
	c.data[key] = p
	c.ttl = ttl
	return nil
}

func TestResolve_NoCapability(t *testing.T) {
	r := NewResolver(stubGeocoder{}, nil)

	got := r.Resolve(context.Background(), nil)

	assert.Equal(t, SourceFallback, got.Source)
	assert.Equal(t, -6.2088, got.Location.Latitude)
	assert.Equal(t, 106.8456, got.Location.Longitude)
	assert.Equal(t, "Jakarta", got.Location.City)
	assert.Equal(t, "Indonesia", got.Location.Country)
	assert.NotEmpty(t, got.Reason)
}

func TestResolve_PositionError(t *testing.T) {
	r := NewResolver(stubGeocoder{}, nil)

	got := r.Resolve(context.Background(), &stubSource{err: errors.New("permission denied")})

	assert.Equal(t, SourceFallback, got.Source)
	assert.Equal(t, "Jakarta", got.Location.City)
	assert.Contains(t, got.Reason, "permission denied")
}

func TestResolve_ReverseGeocodeFails(t *testing.T) {
	r := NewResolver(stubGeocoder{err: errors.New("timeout")}, nil)

	got := r.Resolve(context.Background(), Fixed{Latitude: -6.9, Longitude: 107.6})

	assert.Equal(t, SourceDevice, got.Source)
	assert.Equal(t, -6.9, got.Location.Latitude)
	assert.Equal(t, 107.6, got.Location.Longitude)
	assert.Equal(t, "Unknown", got.Location.City)
	assert.Equal(t, "Indonesia", got.Location.Country)
}

func TestResolve_PartialPlace(t *testing.T) {
	r := NewResolver(stubGeocoder{place: Place{Country: "Malaysia"}}, nil)

	got := r.Resolve(context.Background(), Fixed{Latitude: 3.139, Longitude: 101.6869})

	assert.Equal(t, "Unknown", got.Location.City)
	assert.Equal(t, "Malaysia", got.Location.Country)
}

func TestResolve_Success(t *testing.T) {
	r := NewResolver(stubGeocoder{place: Place{City: "Bandung", Country: "Indonesia"}}, nil)

	got := r.Resolve(context.Background(), Fixed{Latitude: -6.9, Longitude: 107.6})

	assert.Equal(t, SourceDevice, got.Source)
	assert.Equal(t, "Bandung", got.Location.City)
	assert.Empty(t, got.Reason)
}

func TestResolve_FixedOutOfRange(t *testing.T) {
	r := NewResolver(stubGeocoder{}, nil)

	got := r.Resolve(context.Background(), Fixed{Latitude: 120, Longitude: 0})

	assert.Equal(t, SourceFallback, got.Source)
}

func TestResolve_UsesCache(t *testing.T) {
	cache := &memCache{}
	src := &stubSource{p: Point{Latitude: 1, Longitude: 2}, key: "ip:203.0.113.9"}
	r := NewResolver(stubGeocoder{place: Place{City: "X", Country: "Y"}}, cache)

	first := r.Resolve(context.Background(), src)
	second := r.Resolve(context.Background(), src)

	assert.Equal(t, 1, src.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, PositionMaxAge, cache.ttl)
}

func TestNominatim_Reverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "-6.9", q.Get("lat"))
		assert.Equal(t, "107.6", q.Get("lon"))
		assert.Equal(t, "10", q.Get("zoom"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"address":{"town":"Cimahi","country":"Indonesia"}}`))
	}))
	defer srv.Close()

	place, err := NewNominatim(srv.URL).Reverse(context.Background(), Point{Latitude: -6.9, Longitude: 107.6})
	require.NoError(t, err)
	assert.Equal(t, "Cimahi", place.City)
	assert.Equal(t, "Indonesia", place.Country)
}

func TestNominatim_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewNominatim(srv.URL).Reverse(context.Background(), Point{})
	assert.Error(t, err)
}

func TestResolve_NominatimDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	got := NewResolver(NewNominatim(srv.URL), nil).Resolve(context.Background(), Fixed{Latitude: -6.9, Longitude: 107.6})

	assert.Equal(t, "Unknown", got.Location.City)
	assert.Equal(t, "Indonesia", got.Location.Country)
	assert.Equal(t, -6.9, got.Location.Latitude)
}

func TestIPLocator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/203.0.113.9", r.URL.Path)
		_ = json.NewEncoder(w).Encode(ipAPIResponse{Status: "success", Lat: -7.25, Lon: 112.75})
	}))
	defer srv.Close()

	loc := NewIPLocator(srv.URL, "203.0.113.9")
	assert.Equal(t, "ip:203.0.113.9", loc.Key())

	p, err := loc.Position(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Point{Latitude: -7.25, Longitude: 112.75}, p)
}

func TestIPLocator_Fail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(ipAPIResponse{Status: "fail", Message: "reserved range"})
	}))
	defer srv.Close()

	_, err := NewIPLocator(srv.URL, "127.0.0.1").Position(context.Background())
	assert.ErrorIs(t, err, ErrIPLookup)
	assert.Contains(t, err.Error(), "reserved range")
}
