package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestIsMature(t *testing.T) {
	tests := []struct {
		name string
		game Game
		want bool
	}{
		{"clean", Game{Name: "Celeste", Summary: "Climb a mountain."}, false},
		{"short keyword as token", Game{Name: "Sex Quest"}, true},
		{"short keyword inside word", Game{Name: "Essex Rail Simulator", Summary: "Trains in Sussex."}, false},
		{"short keyword with punctuation", Game{Summary: "An nsfw-rated visual novel."}, true},
		{"long keyword substring", Game{Summary: "Contains heavy nudity."}, true},
		{"long keyword in compound", Game{Name: "Hentaiverse"}, true},
		{"keyword in tag", Game{Name: "Harmless", Tags: []string{"Adventure", "Erotic"}}, true},
		{"case insensitive", Game{Name: "PORN Tycoon"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMature(tt.game))
		})
	}
}

func TestDisplayRating_PreferenceOrder(t *testing.T) {
	g := Game{Rating: ptr(60.0), AggregatedRating: ptr(70.0), TotalRating: ptr(80.0), WeightedRating: ptr(75.0)}
	r, ok := DisplayRating(g)
	assert.True(t, ok)
	assert.Equal(t, 75.0, r)

	g.WeightedRating = nil
	r, _ = DisplayRating(g)
	assert.Equal(t, 80.0, r)

	g.TotalRating = nil
	r, _ = DisplayRating(g)
	assert.Equal(t, 70.0, r)

	g.AggregatedRating = nil
	r, _ = DisplayRating(g)
	assert.Equal(t, 60.0, r)

	g.Rating = nil
	_, ok = DisplayRating(g)
	assert.False(t, ok)
}

func TestHasAllTags(t *testing.T) {
	g := Game{Tags: []string{"Role-playing (RPG)", "Fantasy", "Single player"}}

	assert.True(t, HasAllTags(g, nil))
	assert.True(t, HasAllTags(g, []string{"rpg"}))
	assert.True(t, HasAllTags(g, []string{"RPG", "fantasy"}))
	assert.True(t, HasAllTags(g, []string{"single"}))
	assert.False(t, HasAllTags(g, []string{"rpg", "shooter"}))
	assert.False(t, HasAllTags(Game{}, []string{"rpg"}))
}

func TestFilter_Apply(t *testing.T) {
	games := []Game{
		{ID: 1, Name: "Good RPG", TotalRating: ptr(85.0), Tags: []string{"Role-playing (RPG)"}},
		{ID: 2, Name: "Low RPG", TotalRating: ptr(60.0), Tags: []string{"Role-playing (RPG)"}},
		{ID: 3, Name: "Good Shooter", TotalRating: ptr(90.0), Tags: []string{"Shooter"}},
		{ID: 4, Name: "Lewd RPG", TotalRating: ptr(95.0), Tags: []string{"Role-playing (RPG)"}},
		{ID: 5, Name: "Unrated RPG", Tags: []string{"Role-playing (RPG)"}},
	}

	got := Filter{MinRating: 80, Tags: []string{"RPG"}, HideMature: true}.Apply(games)
	assert.Equal(t, []int64{1}, ids(got))

	got = Filter{MinRating: 80, Tags: []string{"RPG"}}.Apply(games)
	assert.Equal(t, []int64{1, 4}, ids(got))

	// A weighted score above the floor does not rescue a low total rating.
	pulledUp := []Game{{ID: 6, WeightedRating: ptr(84.0), TotalRating: ptr(78.0)}}
	assert.Empty(t, Filter{MinRating: 80}.Apply(pulledUp))

	got = Filter{}.Apply(games)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(got))
}

func TestFilter_MembershipProperty(t *testing.T) {
	games := []Game{
		{ID: 1, Name: "A", WeightedRating: ptr(79.9), TotalRating: ptr(95.0), Tags: []string{"Puzzle"}},
		{ID: 2, Name: "B", TotalRating: ptr(80.0), Tags: []string{"Puzzle", "Horror"}},
		{ID: 3, Name: "xxx", TotalRating: ptr(99.0), Tags: []string{"Puzzle"}},
		{ID: 4, Name: "D", Rating: ptr(88.0), Tags: []string{"puzzle"}},
	}
	f := Filter{MinRating: 80, Tags: []string{"PUZZLE"}, HideMature: true}

	for _, g := range f.Apply(games) {
		assert.False(t, IsMature(g))
		r, ok := DisplayRating(g)
		assert.True(t, ok)
		assert.GreaterOrEqual(t, r, f.MinRating)
		if g.TotalRating != nil {
			assert.GreaterOrEqual(t, *g.TotalRating, f.MinRating)
		}
		assert.True(t, HasAllTags(g, f.Tags))
	}
	assert.Equal(t, []int64{2, 4}, ids(f.Apply(games)))
}

func ids(games []Game) []int64 {
	out := make([]int64, len(games))
	for i, g := range games {
		out[i] = g.ID
	}
	return out
}
