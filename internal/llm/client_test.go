package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	t.Run("returns trimmed completion", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			w.Write([]byte(`{"choices":[{"text":"  A quiet town at dusk.  "}]}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "test-key")
		text, err := c.Complete("describe the town", 200)
		require.NoError(t, err)
		assert.Equal(t, "A quiet town at dusk.", text)
	})

	t.Run("empty choices is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "test-key")
		_, err := c.Complete("prompt", 200)
		assert.ErrorContains(t, err, "empty response")
	})

	t.Run("nil client is disabled", func(t *testing.T) {
		var c *Client
		assert.False(t, c.Enabled())
		_, err := c.Complete("prompt", 200)
		assert.Error(t, err)
	})

	t.Run("empty api key disables the client", func(t *testing.T) {
		assert.Nil(t, NewClient("http://localhost:1234", ""))
	})
}

func TestArrivalFlavor(t *testing.T) {
	t.Run("disabled client yields empty string", func(t *testing.T) {
		assert.Equal(t, "", ArrivalFlavor(nil, "Bend", "Harold"))
	})

	t.Run("server error degrades to fallback", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not loaded", http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "test-key")
		assert.Equal(t, fallbackError, ArrivalFlavor(c, "Bend", "Harold"))
	})

	t.Run("prompt names the place and the walker", func(t *testing.T) {
		var gotPrompt string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Prompt string `json:"prompt"`
			}
			if err := jsonDecode(r, &req); err == nil {
				gotPrompt = req.Prompt
			}
			w.Write([]byte(`{"choices":[{"text":"Harold feels small against the mountains."}]}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "test-key")
		text := ArrivalFlavor(c, "Bend", "Harold")
		assert.Equal(t, "Harold feels small against the mountains.", text)
		assert.Contains(t, gotPrompt, "Bend")
		assert.Contains(t, gotPrompt, "Harold")
	})
}

func jsonDecode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
