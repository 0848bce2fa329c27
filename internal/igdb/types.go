package igdb

// RawGame is a games endpoint record as the upstream returns it. Nullable
// numbers are pointers so absent and zero stay distinct.
type RawGame struct {
	ID                    int64    `json:"id"`
	Name                  string   `json:"name"`
	Summary               string   `json:"summary"`
	FirstReleaseDate      *int64   `json:"first_release_date"`
	Rating                *float64 `json:"rating"`
	RatingCount           *int     `json:"rating_count"`
	AggregatedRating      *float64 `json:"aggregated_rating"`
	AggregatedRatingCount *int     `json:"aggregated_rating_count"`
	TotalRating           *float64 `json:"total_rating"`
	TotalRatingCount      *int     `json:"total_rating_count"`
	Category              *int     `json:"category"`
	VersionParent         *int64   `json:"version_parent"`
	ParentGame            *int64   `json:"parent_game"`
	Cover                 *Cover   `json:"cover"`
	Genres                []Named  `json:"genres"`
	Themes                []Named  `json:"themes"`
	GameModes             []Named  `json:"game_modes"`
	PlayerPerspectives    []Named  `json:"player_perspectives"`
}

// Cover is the expanded cover reference.
type Cover struct {
	ID      int64  `json:"id"`
	ImageID string `json:"image_id"`
}

// Named is an expanded id/name reference (genre, theme, mode, perspective).
type Named struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GameFields is the field selection used for every games query.
var GameFields = []string{
	"id", "name", "summary", "first_release_date",
	"rating", "rating_count",
	"aggregated_rating", "aggregated_rating_count",
	"total_rating", "total_rating_count",
	"category", "version_parent", "parent_game",
	"cover.image_id",
	"genres.name", "themes.name", "game_modes.name", "player_perspectives.name",
}
