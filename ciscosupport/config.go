package ciscosupport

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production Cisco Support API gateway.
	DefaultBaseURL = "https://apix.cisco.com/"

	// DefaultTokenURL is the Cisco OAuth2 token endpoint used for the
	// client-credentials grant.
	DefaultTokenURL = "https://id.cisco.com/oauth2/default/v1/token"
)

// Config holds everything a Client needs at construction. Only
// ClientID and ClientSecret are required; the rest defaults to the
// production Cisco endpoints.
type Config struct {
	// ClientID and ClientSecret identify the registered application.
	ClientID     string
	ClientSecret string

	// BaseURL is the API gateway prefix. Defaults to DefaultBaseURL.
	BaseURL string

	// TokenURL is the OAuth2 token endpoint. Defaults to DefaultTokenURL.
	TokenURL string

	// HTTPClient is used for both the token exchange and API requests.
	// Defaults to a client with a 60 second timeout.
	HTTPClient *http.Client

	// Logger receives debug-level request and token lifecycle events.
	// Nil disables logging.
	Logger *zerolog.Logger
}

// NewHTTPClient returns the HTTP client used when Config.HTTPClient is
// not set.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 60 * time.Second,
	}
}
