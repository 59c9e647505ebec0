package ciscosupport

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTokenServer returns an httptest server that answers every request
// with a fixed access token and reports how many exchanges it served.
func newTokenServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	calls := new(int)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"test-token","token_type":"Bearer","expires_in":3600}`)
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

// newServerClient wires a Client against a mock API handler, with token
// exchanges served by a stub token endpoint.
func newServerClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	tokenSrv, _ := newTokenServer(t)
	apiSrv := httptest.NewServer(handler)
	t.Cleanup(apiSrv.Close)

	c, err := NewWithConfig(Config{
		ClientID:     "id",
		ClientSecret: "secret",
		BaseURL:      apiSrv.URL,
		TokenURL:     tokenSrv.URL,
	})
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Run("rejects missing credentials", func(t *testing.T) {
		for _, tc := range []struct{ id, secret string }{
			{"", ""},
			{"id", ""},
			{"", "secret"},
		} {
			_, err := New(tc.id, tc.secret)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		}
	})

	t.Run("applies production defaults", func(t *testing.T) {
		c, err := New("id", "secret")
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, c.baseURL)
		assert.Equal(t, DefaultTokenURL, c.tokens.tokenURL)
		assert.NotNil(t, c.SoftwareSuggestions)
		assert.NotNil(t, c.Bug)
		assert.NotNil(t, c.EoX)
	})

	t.Run("normalizes base URL", func(t *testing.T) {
		c, err := NewWithConfig(Config{
			ClientID:     "id",
			ClientSecret: "secret",
			BaseURL:      "https://example.test/api",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://example.test/api/", c.baseURL)
	})
}
