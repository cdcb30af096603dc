package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeocodeParsesFirstResult(t *testing.T) {
	var gotPath, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		require.Equal(t, "Yangon", r.URL.Query().Get("q"))
		require.Equal(t, "json", r.URL.Query().Get("format"))
		require.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"16.7967129","lon":"96.1609916","display_name":"Yangon, Myanmar"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "astrologic-test/1.0")
	loc, err := client.Geocode(context.Background(), "Yangon")
	require.NoError(t, err)

	require.Equal(t, "/search", gotPath)
	require.Equal(t, "astrologic-test/1.0", gotAgent)
	require.Equal(t, "Yangon", loc.City)
	require.InDelta(t, 16.7967129, loc.Latitude, 1e-9)
	require.InDelta(t, 96.1609916, loc.Longitude, 1e-9)
	require.Equal(t, "Yangon, Myanmar", loc.Address)
}

func TestGeocodeEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Geocode(context.Background(), "Nowhereville")
	require.ErrorContains(t, err, "no geocode results")
}

func TestGeocodeUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Geocode(context.Background(), "Yangon")
	require.ErrorContains(t, err, "status=403")
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("", "")
	require.Equal(t, defaultBaseURL, client.baseURL)
	require.Equal(t, defaultUserAgent, client.userAgent)
}
