// Package catalog builds ranked, filtered and paginated game listings over
// the upstream catalog, which cannot combine full-text search with sorting.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gameshelf/backend/internal/cache"
	"gameshelf/backend/internal/igdb"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Mode selects the listing.
type Mode string

const (
	TopGames    Mode = "top-games"
	NewReleases Mode = "new-releases"
)

const (
	DefaultPageSize = 24
	MaxPageSize     = 50

	// candidateLimit is the pool size of every upstream candidate query.
	candidateLimit = igdb.MaxLimit
	// minPoolVotes keeps single-vote outliers out of the top-by-rating pool.
	minPoolVotes = 5
	// baselineMinVotes selects the vote-heavy sample for the global average.
	baselineMinVotes = 20
)

// ErrGameNotFound is returned when an id has no upstream record.
var ErrGameNotFound = errors.New("game not found")

// Upstream is the subset of the catalog client the service needs.
type Upstream interface {
	Games(ctx context.Context, q igdb.Query) ([]igdb.RawGame, error)
	Named(ctx context.Context, endpoint string, q igdb.Query) ([]igdb.Named, error)
}

// Request describes one listing request.
type Request struct {
	Mode       Mode
	Query      string
	Page       int
	PageSize   int
	MinRating  float64
	Tags       []string
	HideMature bool
	CoverSize  string
}

// Page is one page of a ranked listing.
type Page struct {
	FetchedAt time.Time `json:"fetchedAt"`
	Mode      Mode      `json:"mode"`
	Query     string    `json:"q"`
	Page      int       `json:"page"`
	PageSize  int       `json:"pageSize"`
	Total     int       `json:"total"`
	Count     int       `json:"count"`
	HasMore   bool      `json:"hasMore"`
	Games     []Game    `json:"games"`
}

// Stats describes the service caches.
type Stats struct {
	RankedEntries int    `json:"ranked_entries"`
	TagEntries    int    `json:"tag_entries"`
	TTL           string `json:"ttl"`
}

// Service answers listing requests from the ranked-results cache, filling it
// from the upstream on a miss.
type Service struct {
	upstream Upstream
	ranked   *cache.Results[[]Game]
	tags     *cache.Results[TagsByType]
	now      func() time.Time
}

// NewService creates a catalog service over upstream and the two caches.
func NewService(upstream Upstream, ranked *cache.Results[[]Game], tags *cache.Results[TagsByType]) *Service {
	return &Service{
		upstream: upstream,
		ranked:   ranked,
		tags:     tags,
		now:      time.Now,
	}
}

// normalize fills defaults and canonicalizes the fields that form the cache key.
func (r Request) normalize() Request {
	if r.Mode != NewReleases {
		r.Mode = TopGames
	}
	r.Query = strings.TrimSpace(r.Query)
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = DefaultPageSize
	}
	if r.PageSize > MaxPageSize {
		r.PageSize = MaxPageSize
	}
	if r.MinRating < 0 {
		r.MinRating = 0
	}
	r.CoverSize = CoverSize(r.CoverSize)

	tags := make([]string, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, strings.ToLower(strings.TrimSpace(t)))
	}
	r.Tags = sortedUnique(tags)
	return r
}

// cacheKey identifies the ranked, filtered candidate set of r. Page and page
// size are not part of it.
func (r Request) cacheKey() string {
	return fmt.Sprintf("%s|%s|%s|%g|%s|%t",
		r.Mode, strings.ToLower(r.Query), r.CoverSize, r.MinRating, strings.Join(r.Tags, ","), r.HideMature)
}

// List returns one page of the listing described by req.
func (s *Service) List(ctx context.Context, req Request) (*Page, error) {
	req = req.normalize()
	key := req.cacheKey()

	entry, err := s.ranked.Get(ctx, key, func(ctx context.Context) ([]Game, error) {
		return s.rank(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	games, hasMore := paginate(entry.Value, req.Page, req.PageSize)
	return &Page{
		FetchedAt: entry.FetchedAt,
		Mode:      req.Mode,
		Query:     req.Query,
		Page:      req.Page,
		PageSize:  req.PageSize,
		Total:     len(entry.Value),
		Count:     len(games),
		HasMore:   hasMore,
		Games:     games,
	}, nil
}

// rank fetches candidates for req, orders them and applies the filters.
func (s *Service) rank(ctx context.Context, req Request) ([]Game, error) {
	var (
		games []Game
		err   error
	)
	switch {
	case req.Query != "":
		games, err = s.searchCandidates(ctx, req)
	case req.Mode == NewReleases:
		games, err = s.newReleaseCandidates(ctx, req)
	default:
		games, err = s.topCandidates(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	filtered := Filter{MinRating: req.MinRating, Tags: req.Tags, HideMature: req.HideMature}.Apply(games)

	logrus.WithFields(logrus.Fields{
		"mode":       req.Mode,
		"key":        req.cacheKey(),
		"candidates": len(games),
		"kept":       len(filtered),
	}).Debug("catalog ranked")
	return filtered, nil
}

// searchCandidates runs the single unsorted search query and orders the
// results locally.
func (s *Service) searchCandidates(ctx context.Context, req Request) ([]Game, error) {
	raws, err := s.upstream.Games(ctx, igdb.Query{
		Fields: igdb.GameFields,
		Search: req.Query,
		Limit:  candidateLimit,
	})
	if err != nil {
		return nil, err
	}

	games := NormalizeAll(raws, req.CoverSize)
	if req.Mode == NewReleases {
		games = Released(games, s.now().Unix())
		SortByRelease(games)
		return games, nil
	}
	SortByTotalRating(games)
	return games, nil
}

// topCandidates merges the by-rating and by-votes pools and scores them
// against the average of a separate vote-heavy sample.
func (s *Service) topCandidates(ctx context.Context, req Request) ([]Game, error) {
	var byRating, byVotes, baseline []igdb.RawGame

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byRating, err = s.upstream.Games(gctx, igdb.Query{
			Fields: igdb.GameFields,
			Where:  mainGameWhere("total_rating != null", fmt.Sprintf("total_rating_count >= %d", minPoolVotes)),
			Sort:   "total_rating desc",
			Limit:  candidateLimit,
		})
		return err
	})
	g.Go(func() error {
		var err error
		byVotes, err = s.upstream.Games(gctx, igdb.Query{
			Fields: igdb.GameFields,
			Where:  mainGameWhere("total_rating != null"),
			Sort:   "total_rating_count desc",
			Limit:  candidateLimit,
		})
		return err
	})
	g.Go(func() error {
		var err error
		baseline, err = s.upstream.Games(gctx, igdb.Query{
			Fields: []string{"id", "total_rating", "total_rating_count"},
			Where:  []string{"total_rating != null", fmt.Sprintf("total_rating_count >= %d", baselineMinVotes)},
			Sort:   "total_rating_count desc",
			Limit:  candidateLimit,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	games := Merge(NormalizeAll(byRating, req.CoverSize), NormalizeAll(byVotes, req.CoverSize))

	sample := make([]Game, 0, len(baseline))
	for _, raw := range baseline {
		sample = append(sample, Normalize(raw, req.CoverSize))
	}
	avg, ok := GlobalAverage(sample)
	if !ok {
		// An empty sample falls back to the candidates themselves.
		avg, _ = GlobalAverage(games)
	}

	ApplyWeighted(games, avg, MinVotes)
	SortByWeighted(games)
	return games, nil
}

func (s *Service) newReleaseCandidates(ctx context.Context, req Request) ([]Game, error) {
	now := s.now().Unix()
	raws, err := s.upstream.Games(ctx, igdb.Query{
		Fields: igdb.GameFields,
		Where:  mainGameWhere("first_release_date != null", fmt.Sprintf("first_release_date <= %d", now)),
		Sort:   "first_release_date desc",
		Limit:  candidateLimit,
	})
	if err != nil {
		return nil, err
	}

	games := Released(NormalizeAll(raws, req.CoverSize), now)
	SortByRelease(games)
	return games, nil
}

// Game fetches a single record by id.
func (s *Service) Game(ctx context.Context, id int64, coverSize string) (*Game, error) {
	raws, err := s.upstream.Games(ctx, igdb.Query{
		Fields: igdb.GameFields,
		Where:  []string{fmt.Sprintf("id = %d", id)},
		Limit:  1,
	})
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, ErrGameNotFound
	}
	g := Normalize(raws[0], coverSize)
	return &g, nil
}

// Tags returns every known tag name grouped by type, for tag pickers.
func (s *Service) Tags(ctx context.Context) (TagsByType, error) {
	entry, err := s.tags.Get(ctx, "all", func(ctx context.Context) (TagsByType, error) {
		endpoints := []string{"genres", "themes", "game_modes", "player_perspectives"}
		lists := make([][]string, len(endpoints))

		g, gctx := errgroup.WithContext(ctx)
		for i, endpoint := range endpoints {
			g.Go(func() error {
				named, err := s.upstream.Named(gctx, endpoint, igdb.Query{
					Fields: []string{"name"},
					Sort:   "name asc",
					Limit:  candidateLimit,
				})
				if err != nil {
					return err
				}
				lists[i] = names(named)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return TagsByType{}, err
		}
		return TagsByType{Genres: lists[0], Themes: lists[1], Modes: lists[2], Perspectives: lists[3]}, nil
	})
	if err != nil {
		return TagsByType{}, err
	}
	return entry.Value, nil
}

// Stats reports cache occupancy.
func (s *Service) Stats() Stats {
	return Stats{
		RankedEntries: s.ranked.Len(),
		TagEntries:    s.tags.Len(),
		TTL:           s.ranked.TTL().String(),
	}
}

func mainGameWhere(extra ...string) []string {
	return append(extra, "version_parent = null", "parent_game = null")
}

// paginate slices the 1-based page out of games and reports whether more
// pages follow.
func paginate(games []Game, page, size int) ([]Game, bool) {
	// Checked before multiplying so huge pages cannot overflow.
	if page-1 > len(games)/size {
		return []Game{}, false
	}
	start := (page - 1) * size
	if start >= len(games) {
		return []Game{}, false
	}
	end := start + size
	if end > len(games) {
		end = len(games)
	}
	out := make([]Game, end-start)
	copy(out, games[start:end])
	return out, end < len(games)
}
