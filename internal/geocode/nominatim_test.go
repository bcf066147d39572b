package geocode

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savetz/longwalk/internal/geo"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClientWithBaseURL(srv.URL, "longwalk-test"), srv
}

func TestLocate(t *testing.T) {
	t.Run("first result wins", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "Caribou, Maine", r.URL.Query().Get("q"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			assert.Equal(t, "longwalk-test", r.Header.Get("User-Agent"))
			w.Write([]byte(`[{"lat":"46.8667","lon":"-68.0114"},{"lat":"0","lon":"0"}]`))
		})
		defer srv.Close()

		coord, err := c.Locate("Caribou, Maine")
		require.NoError(t, err)
		assert.InDelta(t, 46.8667, coord.Lat, 1e-9)
		assert.InDelta(t, -68.0114, coord.Lon, 1e-9)
	})

	t.Run("no results is an error", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})
		defer srv.Close()

		_, err := c.Locate("Nowheresville, Atlantis")
		assert.ErrorContains(t, err, "no results")
	})

	t.Run("server error is an error", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "over capacity", http.StatusServiceUnavailable)
		})
		defer srv.Close()

		_, err := c.Locate("Bend, Oregon")
		assert.Error(t, err)
	})
}

func TestPlaceName(t *testing.T) {
	coord := geo.Coordinate{Lat: 44.0582, Lon: -121.3153}

	t.Run("prefers city over county", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/reverse", r.URL.Path)
			w.Write([]byte(`{"address":{"city":"Bend","county":"Deschutes County"}}`))
		})
		defer srv.Close()

		assert.Equal(t, "Bend", c.PlaceName(coord))
	})

	t.Run("falls through city town village hamlet county", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"address":{"hamlet":"Brothers","county":"Deschutes County"}}`))
		})
		defer srv.Close()

		assert.Equal(t, "Brothers", c.PlaceName(coord))
	})

	t.Run("empty address degrades to sentinel", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"address":{}}`))
		})
		defer srv.Close()

		assert.Equal(t, UnknownPlace, c.PlaceName(coord))
	})

	t.Run("transport failure degrades to sentinel", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
		srv.Close() // client now dials a dead server

		assert.Equal(t, UnknownPlace, c.PlaceName(coord))
	})
}
