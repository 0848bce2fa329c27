package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

// DefaultTokenMargin is how long before expiry a cached token is refreshed.
const DefaultTokenMargin = 60 * time.Second

// TokenFetcher obtains a fresh token from the identity provider.
type TokenFetcher interface {
	Token(ctx context.Context) (*oauth2.Token, error)
}

// TokenCache keeps one access token and refreshes it once it is within the
// expiry margin. Concurrent callers share one refresh.
type TokenCache struct {
	fetcher TokenFetcher
	margin  time.Duration
	now     func() time.Time

	group singleflight.Group
	mu    sync.Mutex
	token *oauth2.Token
}

// NewTokenCache creates a token cache around fetcher.
func NewTokenCache(fetcher TokenFetcher, margin time.Duration) *TokenCache {
	if margin <= 0 {
		margin = DefaultTokenMargin
	}
	return &TokenCache{
		fetcher: fetcher,
		margin:  margin,
		now:     time.Now,
	}
}

// AccessToken returns a token valid for at least the margin. A caller whose
// context ends stops waiting; the refresh itself keeps going for the others.
func (t *TokenCache) AccessToken(ctx context.Context) (string, error) {
	if tok, ok := t.cached(); ok {
		return tok, nil
	}

	ch := t.group.DoChan("token", func() (any, error) {
		if tok, ok := t.cached(); ok {
			return tok, nil
		}

		tok, err := t.fetcher.Token(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		if tok == nil || tok.AccessToken == "" {
			return nil, errors.New("token endpoint returned an empty access token")
		}

		t.mu.Lock()
		t.token = tok
		t.mu.Unlock()
		return tok.AccessToken, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (t *TokenCache) cached() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.fresh() {
		return "", false
	}
	return t.token.AccessToken, true
}

func (t *TokenCache) fresh() bool {
	if t.token == nil {
		return false
	}
	// A token without expiry never needs a refresh.
	if t.token.Expiry.IsZero() {
		return true
	}
	return t.now().Add(t.margin).Before(t.token.Expiry)
}
