package ciscosupport

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// Client is the entry point to the Cisco Support APIs. It owns a single
// cached access token and HTTP client shared by the endpoint services.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
	tokens     *tokenManager

	// SoftwareSuggestions queries the Software Suggestion v2 API.
	SoftwareSuggestions *SoftwareSuggestionsService
	// Bug queries the Bug Search v2 API.
	Bug *BugService
	// EoX queries the EoX v5 lifecycle API.
	EoX *EoXService
}

// New creates a Client for the production Cisco endpoints.
func New(clientID, clientSecret string) (*Client, error) {
	return NewWithConfig(Config{ClientID: clientID, ClientSecret: clientSecret})
}

// NewWithConfig creates a Client from an explicit Config.
func NewWithConfig(cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, newValidationError("client ID and client secret are required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = NewHTTPClient()
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/") + "/",
		httpClient: cfg.HTTPClient,
		log:        log,
	}
	c.tokens = &tokenManager{
		tokenURL:     cfg.TokenURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   cfg.HTTPClient,
		log:          log,
	}
	c.SoftwareSuggestions = &SoftwareSuggestionsService{client: c}
	c.Bug = &BugService{client: c}
	c.EoX = &EoXService{client: c}
	return c, nil
}
