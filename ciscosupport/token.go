package ciscosupport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// tokenExpirySkew is subtracted from the advertised token lifetime so a
// token is refreshed slightly before the endpoint would reject it.
const tokenExpirySkew = 30 * time.Second

// tokenResponse is the token endpoint's answer to a client-credentials
// exchange.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// tokenManager performs the client-credentials exchange and caches the
// resulting bearer token until it expires. The cached token is replaced
// wholesale on refresh, never partially updated.
type tokenManager struct {
	tokenURL     string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	log          zerolog.Logger

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// Token returns a non-expired access token, fetching a fresh one from
// the token endpoint when none is held or the current one has expired.
func (tm *tokenManager) Token(ctx context.Context) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.accessToken != "" && time.Now().Before(tm.expiresAt) {
		return tm.accessToken, nil
	}
	if err := tm.fetch(ctx); err != nil {
		return "", err
	}
	return tm.accessToken, nil
}

// fetch performs the client-credentials POST. Callers must hold tm.mu.
func (tm *tokenManager) fetch(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", tm.clientID)
	form.Set("client_secret", tm.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tm.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := tm.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &AuthenticationError{StatusCode: resp.StatusCode, Body: body}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return &AuthenticationError{Message: "malformed token response: " + err.Error()}
	}
	if tr.AccessToken == "" {
		return &AuthenticationError{Message: "token response missing access_token"}
	}

	tm.accessToken = tr.AccessToken
	// A missing or zero expires_in leaves the stored expiry already in
	// the past, so the next call fetches a fresh token.
	tm.expiresAt = time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - tokenExpirySkew)
	tm.log.Debug().Time("expires_at", tm.expiresAt).Msg("access token refreshed")
	return nil
}
