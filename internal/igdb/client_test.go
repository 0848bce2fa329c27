package igdb

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) AccessToken(context.Context) (string, error) { return string(s), nil }

type failingToken struct{ err error }

func (f failingToken) AccessToken(context.Context) (string, error) { return "", f.err }

func TestClient_Games(t *testing.T) {
	var gotBody, gotAuth, gotClientID, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotAuth = r.Header.Get("Authorization")
		gotClientID = r.Header.Get("Client-ID")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 7, "name": "Hollow Knight", "total_rating": 91.5, "total_rating_count": 1200,
			 "cover": {"id": 1, "image_id": "co1abc"}, "genres": [{"id": 2, "name": "Platform"}],
			 "version_parent": null}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL+"/", "client-1", staticToken("tok"))
	games, err := c.Games(context.Background(), Query{Fields: []string{"id", "name"}, Limit: 5})

	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, int64(7), games[0].ID)
	assert.Equal(t, "Hollow Knight", games[0].Name)
	require.NotNil(t, games[0].TotalRating)
	assert.InDelta(t, 91.5, *games[0].TotalRating, 0.001)
	assert.Nil(t, games[0].VersionParent)
	require.NotNil(t, games[0].Cover)
	assert.Equal(t, "co1abc", games[0].Cover.ImageID)

	assert.Equal(t, "/games", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "client-1", gotClientID)
	assert.Equal(t, "fields id,name; limit 5;", gotBody)
}

func TestClient_UpstreamFailureCarriesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"Too Many Requests"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, "client-1", staticToken("tok"))
	_, err := c.Games(context.Background(), Query{})

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusTooManyRequests, upErr.StatusCode)
	assert.Contains(t, upErr.Body, "Too Many Requests")
}

func TestClient_TokenFailureStopsQuery(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	tokenErr := errors.New("no token")
	c := NewClient(srv.Client(), srv.URL, "client-1", failingToken{err: tokenErr})
	_, err := c.Named(context.Background(), "genres", Query{})

	assert.ErrorIs(t, err, tokenErr)
	assert.False(t, called)
}

func TestClient_SearchWithSortNeverHitsUpstream(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, "client-1", staticToken("tok"))
	_, err := c.Games(context.Background(), Query{Search: "x", Sort: "id asc"})

	assert.ErrorIs(t, err, ErrSearchWithSort)
	assert.False(t, called)
}

func TestTokenFetcher_Token(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "id-1", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret-1", r.PostForm.Get("client_secret"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"abc","expires_in":3600,"token_type":"bearer"}`))
	}))
	defer srv.Close()

	f := NewTokenFetcher(srv.Client(), srv.URL, "id-1", "secret-1")
	tok, err := f.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "abc", tok.AccessToken)
	assert.False(t, tok.Expiry.IsZero())
}

func TestTokenFetcher_RejectedCarriesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"status":403,"message":"invalid client secret"}`))
	}))
	defer srv.Close()

	f := NewTokenFetcher(srv.Client(), srv.URL, "id-1", "bad")
	_, err := f.Token(context.Background())

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, "token", upErr.Op)
	assert.Equal(t, http.StatusForbidden, upErr.StatusCode)
	assert.Contains(t, upErr.Body, "invalid client secret")
}
