// Package igdb is a small client for the IGDB v4 API. Authentication uses the
// Twitch client-credentials grant; every query is a POST of a query-language
// body to one endpoint.
package igdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// TokenSource hands out a bearer token for upstream queries.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client talks to the upstream catalog.
type Client struct {
	http     *http.Client
	baseURL  string
	clientID string
	tokens   TokenSource
}

// NewClient creates a catalog client. A nil httpClient uses a client with a
// 15 second timeout.
func NewClient(httpClient *http.Client, baseURL, clientID string, tokens TokenSource) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		http:     httpClient,
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: clientID,
		tokens:   tokens,
	}
}

// Games runs q against the games endpoint.
func (c *Client) Games(ctx context.Context, q Query) ([]RawGame, error) {
	var out []RawGame
	if err := c.do(ctx, "games", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Named runs q against a simple id/name endpoint such as genres or themes.
func (c *Client) Named(ctx context.Context, endpoint string, q Query) ([]Named, error) {
	var out []Named
	if err := c.do(ctx, endpoint, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, endpoint string, q Query, out any) error {
	body, err := q.Build()
	if err != nil {
		return err
	}

	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", endpoint, err)
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.http.Do(req)
	if err != nil {
		return &UpstreamError{Op: "query " + endpoint, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UpstreamError{Op: "query " + endpoint, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{Op: "query " + endpoint, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

// TokenFetcher requests fresh app access tokens from the Twitch token endpoint.
type TokenFetcher struct {
	config *clientcredentials.Config
	http   *http.Client
}

// NewTokenFetcher creates a fetcher for the client-credentials grant.
func NewTokenFetcher(httpClient *http.Client, tokenURL, clientID, clientSecret string) *TokenFetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &TokenFetcher{
		config: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		http: httpClient,
	}
}

// Token fetches a new token. Rejections surface as *UpstreamError carrying
// the upstream body.
func (f *TokenFetcher) Token(ctx context.Context) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, f.http)

	tok, err := f.config.Token(ctx)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			status := 0
			if retrieveErr.Response != nil {
				status = retrieveErr.Response.StatusCode
			}
			return nil, &UpstreamError{Op: "token", StatusCode: status, Body: string(retrieveErr.Body)}
		}
		return nil, &UpstreamError{Op: "token", Err: err}
	}
	return tok, nil
}
