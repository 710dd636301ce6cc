package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// newHTTPClient builds the shared resty client. Every outbound request
// carries the identifying user-agent and the configured timeout.
func newHTTPClient(cfg Config) *resty.Client {
	return resty.New().
		SetTimeout(time.Duration(cfg.HTTPTimeoutSeconds) * time.Second).
		SetHeader("User-Agent", cfg.UserAgent)
}

// fetchPage GETs a URL and returns body text plus the content type.
func fetchPage(ctx context.Context, client *resty.Client, url string) (string, string, error) {
	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", "", fmt.Errorf("fetching %s: %w", url, err)
	}
	if resp.IsError() {
		return "", "", fmt.Errorf("fetching %s: status %d", url, resp.StatusCode())
	}
	return resp.String(), resp.Header().Get("Content-Type"), nil
}

// fetchJSON GETs a URL and decodes the body as JSON into any.
func fetchJSON(ctx context.Context, client *resty.Client, url string) (any, error) {
	body, _, err := fetchPage(ctx, client, url)
	if err != nil {
		return nil, err
	}
	var decoded any
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", url, err)
	}
	return decoded, nil
}

// isJSONContentType matches application/json and variants like
// application/json; charset=utf-8.
func isJSONContentType(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}
