// Package emailcheck decides whether an email address is worth sending a
// registration challenge to. It asks the debounce.io disposable-address API
// and checks the domain for MX records. Both checks run before any identity
// record is created.
package emailcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DomainChecker is the domain-validity collaborator consumed by the
// registration service.
type DomainChecker interface {
	IsDisposable(ctx context.Context, email string) (bool, error)
	HasMailExchanger(ctx context.Context, email string) (bool, error)
}

// Config holds settings for the checker.
type Config struct {
	// DisposableAPIURL is the disposable-address lookup endpoint.
	DisposableAPIURL string
	// Timeout bounds each outbound check.
	Timeout time.Duration
}

// Checker implements DomainChecker over HTTP and DNS.
type Checker struct {
	config     Config
	httpClient *http.Client
	resolver   *net.Resolver
	logger     zerolog.Logger
}

// NewChecker creates a Checker.
func NewChecker(config Config, logger zerolog.Logger) *Checker {
	if config.DisposableAPIURL == "" {
		config.DisposableAPIURL = "https://disposable.debounce.io/"
	}
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}
	return &Checker{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		resolver:   net.DefaultResolver,
		logger:     logger,
	}
}

// disposableResponse mirrors the debounce.io payload; the API reports the
// flag as the string "true"/"false".
type disposableResponse struct {
	Disposable string `json:"disposable"`
}

// IsDisposable reports whether the address belongs to a known disposable
// provider. Lookup failures are logged and treated as not disposable, matching
// a fail-open policy: an unreachable reputation API must not block signups.
func (c *Checker) IsDisposable(ctx context.Context, email string) (bool, error) {
	endpoint := fmt.Sprintf("%s?email=%s", strings.TrimRight(c.config.DisposableAPIURL, "?"), url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build disposable lookup request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", email).Msg("Disposable email lookup failed, allowing address")
		return false, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("Disposable email lookup returned non-OK status, allowing address")
		return false, nil
	}

	var payload disposableResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to decode disposable email lookup response, allowing address")
		return false, nil
	}

	return payload.Disposable == "true", nil
}

// HasMailExchanger reports whether the address domain publishes MX records.
func (c *Checker) HasMailExchanger(ctx context.Context, email string) (bool, error) {
	at := strings.LastIndexByte(email, '@')
	if at < 0 || at == len(email)-1 {
		return false, nil
	}
	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	records, err := c.resolver.LookupMX(ctx, domain)
	if err != nil {
		// NXDOMAIN and friends mean the domain cannot receive mail.
		return false, nil
	}
	return len(records) > 0, nil
}
