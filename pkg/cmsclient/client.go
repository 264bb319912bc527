// Package cmsclient provides the main entry point for creating microCMS content API clients
package cmsclient

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/microcms-go/internal/client"
	"github.com/fivetwenty-io/microcms-go/internal/constants"
	"github.com/fivetwenty-io/microcms-go/pkg/microcms"
)

// New creates a new content API client. It performs no network I/O.
func New(config *microcms.Config) (microcms.Client, error) {
	if config == nil {
		return nil, microcms.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, microcms.ErrBaseURLRequired
	}

	if config.APIKey == "" {
		return nil, microcms.ErrAPIKeyRequired
	}

	baseURL, err := NormalizeBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	// Work on a copy so the caller's config is left untouched
	normalized := *config
	normalized.BaseURL = baseURL

	cli, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NormalizeBaseURL adds "https://" when no scheme is present, trims a
// trailing slash and checks that the result is an absolute http(s) URL.
func NormalizeBaseURL(raw string) (string, error) {
	baseURL := strings.TrimSpace(raw)
	if !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", microcms.ErrInvalidBaseURL, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme in %q", microcms.ErrInvalidBaseURL, raw)
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("%w: no host in %q", microcms.ErrInvalidBaseURL, raw)
	}

	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return "", fmt.Errorf("%w: query and fragment are not allowed in %q", microcms.ErrInvalidBaseURL, raw)
	}

	return strings.TrimSuffix(baseURL, "/"), nil
}

// ServiceDomainURL returns the API root of a microCMS service domain, e.g.
// "https://example.microcms.io/api" for "example".
func ServiceDomainURL(serviceDomain string) string {
	return fmt.Sprintf(constants.ServiceDomainURLFormat, serviceDomain)
}

// NewWithAPIKey creates a new client with a base URL and API key.
func NewWithAPIKey(baseURL, apiKey string) (microcms.Client, error) {
	return New(&microcms.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
	})
}

// NewWithServiceDomain creates a new client for a microCMS service domain.
func NewWithServiceDomain(serviceDomain, apiKey string) (microcms.Client, error) {
	if serviceDomain == "" {
		return nil, microcms.ErrBaseURLRequired
	}

	return New(&microcms.Config{
		BaseURL: ServiceDomainURL(serviceDomain),
		APIKey:  apiKey,
	})
}
