package catalog

import (
	"fmt"
	"sort"
	"strings"

	"gameshelf/backend/internal/igdb"
)

// Classification tells main games apart from editions and add-ons.
type Classification string

const (
	MainGame Classification = "main_game"
	Edition  Classification = "edition"
	DLC      Classification = "dlc"
)

// DefaultCoverSize is used when a request names no (or an unknown) size.
const DefaultCoverSize = "cover_big"

var coverSizes = map[string]bool{
	"thumb":       true,
	"cover_small": true,
	"cover_big":   true,
	"720p":        true,
	"1080p":       true,
}

// CoverSize returns size when it is a known image size, else the default.
func CoverSize(size string) string {
	if coverSizes[size] {
		return size
	}
	return DefaultCoverSize
}

// WeightedMeta records the inputs of a weighted rating.
type WeightedMeta struct {
	Rating        float64 `json:"rating"`
	Votes         int     `json:"votes"`
	MinVotes      float64 `json:"min_votes"`
	GlobalAverage float64 `json:"global_average"`
}

// TagsByType groups tag names by their upstream category.
type TagsByType struct {
	Genres       []string `json:"genres"`
	Themes       []string `json:"themes"`
	Modes        []string `json:"modes"`
	Perspectives []string `json:"perspectives"`
}

// Game is a normalized catalog record as served to clients.
type Game struct {
	ID                    int64          `json:"id"`
	Name                  string         `json:"name"`
	Summary               string         `json:"summary"`
	FirstReleaseDate      *int64         `json:"first_release_date"`
	Rating                *float64       `json:"rating"`
	RatingCount           *int           `json:"rating_count"`
	AggregatedRating      *float64       `json:"aggregated_rating"`
	AggregatedRatingCount *int           `json:"aggregated_rating_count"`
	TotalRating           *float64       `json:"total_rating"`
	TotalRatingCount      *int           `json:"total_rating_count"`
	WeightedRating        *float64       `json:"weighted_rating"`
	WeightedRatingMeta    *WeightedMeta  `json:"weighted_rating_meta"`
	CoverImageID          string         `json:"coverImageId"`
	CoverURL              string         `json:"coverUrl"`
	Category              *int           `json:"category"`
	Classification        Classification `json:"classification"`
	Tags                  []string       `json:"tags"`
	TagsByType            TagsByType     `json:"tagsByType"`
}

// Votes is the total rating count, zero when unknown.
func (g Game) Votes() int {
	if g.TotalRatingCount == nil {
		return 0
	}
	return *g.TotalRatingCount
}

// Classify derives the classification from the parent references.
func Classify(raw igdb.RawGame) Classification {
	switch {
	case raw.VersionParent != nil:
		return Edition
	case raw.ParentGame != nil:
		return DLC
	default:
		return MainGame
	}
}

// CoverURL builds the image URL for imageID at size.
func CoverURL(imageID, size string) string {
	if imageID == "" {
		return ""
	}
	return fmt.Sprintf("https://images.igdb.com/igdb/image/upload/t_%s/%s.jpg", CoverSize(size), imageID)
}

// Normalize converts an upstream record into a Game.
func Normalize(raw igdb.RawGame, coverSize string) Game {
	g := Game{
		ID:                    raw.ID,
		Name:                  raw.Name,
		Summary:               raw.Summary,
		FirstReleaseDate:      raw.FirstReleaseDate,
		Rating:                raw.Rating,
		RatingCount:           raw.RatingCount,
		AggregatedRating:      raw.AggregatedRating,
		AggregatedRatingCount: raw.AggregatedRatingCount,
		TotalRating:           raw.TotalRating,
		TotalRatingCount:      raw.TotalRatingCount,
		Category:              raw.Category,
		Classification:        Classify(raw),
	}

	if raw.Cover != nil {
		g.CoverImageID = raw.Cover.ImageID
		g.CoverURL = CoverURL(raw.Cover.ImageID, coverSize)
	}

	g.TagsByType = TagsByType{
		Genres:       names(raw.Genres),
		Themes:       names(raw.Themes),
		Modes:        names(raw.GameModes),
		Perspectives: names(raw.PlayerPerspectives),
	}
	g.Tags = flatten(g.TagsByType)
	return g
}

// NormalizeAll normalizes records, keeps main games and drops repeated ids.
func NormalizeAll(raws []igdb.RawGame, coverSize string) []Game {
	seen := make(map[int64]bool, len(raws))
	out := make([]Game, 0, len(raws))
	for _, raw := range raws {
		g := Normalize(raw, coverSize)
		if g.Classification != MainGame || seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		out = append(out, g)
	}
	return out
}

func names(refs []igdb.Named) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Name)
	}
	return sortedUnique(out)
}

func flatten(t TagsByType) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, group := range [][]string{t.Genres, t.Themes, t.Modes, t.Perspectives} {
		for _, name := range group {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

func sortedUnique(in []string) []string {
	set := make(map[string]bool, len(in))
	out := []string{}
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || set[s] {
			continue
		}
		set[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
