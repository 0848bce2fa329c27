package catalog

import (
	"strings"
	"unicode"
)

// matureKeywords flag adult-oriented records. Keywords of up to four
// characters only match whole tokens so "sex" does not hit "Essex".
var matureKeywords = []string{
	"sex", "nsfw", "porn", "nude", "xxx", "lewd",
	"hentai", "erotic", "nudity", "sexual", "ecchi", "fetish",
	"adult only", "adults only", "striptease", "pornographic",
}

const shortKeywordLen = 4

// Filter holds the post-ranking record filters.
type Filter struct {
	MinRating  float64
	Tags       []string
	HideMature bool
}

// Apply returns the records that pass every filter, preserving order.
func (f Filter) Apply(games []Game) []Game {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if f.Keep(g) {
			out = append(out, g)
		}
	}
	return out
}

// Keep reports whether g passes the mature, rating and tag filters.
func (f Filter) Keep(g Game) bool {
	if f.HideMature && IsMature(g) {
		return false
	}
	if f.MinRating > 0 {
		r, ok := DisplayRating(g)
		if !ok || r < f.MinRating {
			return false
		}
		// A weighted score pulled up toward the average must not admit a
		// record whose own rating is below the floor.
		if g.TotalRating != nil && *g.TotalRating < f.MinRating {
			return false
		}
	}
	return HasAllTags(g, f.Tags)
}

// DisplayRating picks the rating shown to users: weighted, then total, then
// critic aggregate, then the simple user average.
func DisplayRating(g Game) (float64, bool) {
	for _, r := range []*float64{g.WeightedRating, g.TotalRating, g.AggregatedRating, g.Rating} {
		if r != nil {
			return *r, true
		}
	}
	return 0, false
}

// HasAllTags reports whether every wanted tag is a case-insensitive substring
// of at least one of the record's tags.
func HasAllTags(g Game, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}

	lowered := make([]string, len(g.Tags))
	for i, t := range g.Tags {
		lowered[i] = strings.ToLower(t)
	}

	for _, w := range wanted {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		found := false
		for _, t := range lowered {
			if strings.Contains(t, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// IsMature reports whether the name, summary or tags contain a mature keyword.
func IsMature(g Game) bool {
	text := strings.ToLower(g.Name + "\n" + g.Summary + "\n" + strings.Join(g.Tags, "\n"))

	tokens := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		tokens[tok] = true
	}

	for _, kw := range matureKeywords {
		if len(kw) <= shortKeywordLen {
			if tokens[kw] {
				return true
			}
			continue
		}
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
