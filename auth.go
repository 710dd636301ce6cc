package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// newSheetsHTTPClient loads OAuth credentials for the Sheets scope. A cached
// token is reused and refreshed; otherwise the installed-app auth-code flow
// runs once and the token is persisted.
func newSheetsHTTPClient(ctx context.Context, cfg Config) (*http.Client, error) {
	credBytes, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file %s: %w", cfg.CredentialsPath, err)
	}
	oauthCfg, err := google.ConfigFromJSON(credBytes, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials file: %w", err)
	}

	token, err := tokenFromFile(cfg.TokenPath)
	if err != nil {
		token, err = tokenFromWeb(ctx, oauthCfg)
		if err != nil {
			return nil, err
		}
		if err := saveToken(cfg.TokenPath, token); err != nil {
			return nil, err
		}
	}
	return oauthCfg.Client(ctx, token), nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func tokenFromWeb(ctx context.Context, oauthCfg *oauth2.Config) (*oauth2.Token, error) {
	authURL := oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open the following link in your browser, then paste the authorization code:\n%v\n", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("reading authorization code: %w", err)
	}
	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}
	return token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("saving token to %s: %w", path, err)
	}
	return nil
}
