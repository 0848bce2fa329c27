package catalog

import "sort"

// MinVotes is the vote count at which a record's own rating and the global
// average carry equal weight.
const MinVotes = 50.0

// WeightedRating blends rating r (from v votes) with the global average c:
// (v/(v+m))·r + (m/(v+m))·c.
func WeightedRating(r float64, v int, c, m float64) float64 {
	votes := float64(v)
	if votes < 0 {
		votes = 0
	}
	if votes+m == 0 {
		return r
	}
	return votes/(votes+m)*r + m/(votes+m)*c
}

// GlobalAverage is the mean total rating of the rated records in sample.
func GlobalAverage(sample []Game) (float64, bool) {
	var sum float64
	var n int
	for _, g := range sample {
		if g.TotalRating != nil {
			sum += *g.TotalRating
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// ApplyWeighted stores the weighted rating and its inputs on every rated record.
func ApplyWeighted(games []Game, c, m float64) {
	for i := range games {
		g := &games[i]
		if g.TotalRating == nil {
			continue
		}
		score := WeightedRating(*g.TotalRating, g.Votes(), c, m)
		g.WeightedRating = &score
		g.WeightedRatingMeta = &WeightedMeta{
			Rating:        *g.TotalRating,
			Votes:         g.Votes(),
			MinVotes:      m,
			GlobalAverage: c,
		}
	}
}

// Merge concatenates pools keeping the first occurrence of each id.
func Merge(pools ...[]Game) []Game {
	seen := make(map[int64]bool)
	var out []Game
	for _, pool := range pools {
		for _, g := range pool {
			if seen[g.ID] {
				continue
			}
			seen[g.ID] = true
			out = append(out, g)
		}
	}
	return out
}

// SortByWeighted orders by weighted rating desc, then votes desc, then id.
// Unscored records sort last.
func SortByWeighted(games []Game) {
	sort.SliceStable(games, func(i, j int) bool {
		a, b := games[i], games[j]
		if c := compareDesc(a.WeightedRating, b.WeightedRating); c != 0 {
			return c < 0
		}
		return tieBreak(a, b)
	})
}

// SortByTotalRating orders by total rating desc, then votes desc, then id.
func SortByTotalRating(games []Game) {
	sort.SliceStable(games, func(i, j int) bool {
		a, b := games[i], games[j]
		if c := compareDesc(a.TotalRating, b.TotalRating); c != 0 {
			return c < 0
		}
		return tieBreak(a, b)
	})
}

// SortByRelease orders by release date desc, then id. Undated records sort last.
func SortByRelease(games []Game) {
	sort.SliceStable(games, func(i, j int) bool {
		a, b := games[i], games[j]
		switch {
		case a.FirstReleaseDate == nil && b.FirstReleaseDate == nil:
		case a.FirstReleaseDate == nil:
			return false
		case b.FirstReleaseDate == nil:
			return true
		case *a.FirstReleaseDate != *b.FirstReleaseDate:
			return *a.FirstReleaseDate > *b.FirstReleaseDate
		}
		return a.ID < b.ID
	})
}

// Released keeps records with a release date at or before cutoff (unix seconds).
func Released(games []Game, cutoff int64) []Game {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if g.FirstReleaseDate != nil && *g.FirstReleaseDate <= cutoff {
			out = append(out, g)
		}
	}
	return out
}

// compareDesc returns -1 when a should sort before b, 1 when after, 0 when
// equal. Nil values sort last.
func compareDesc(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a > *b:
		return -1
	case *a < *b:
		return 1
	}
	return 0
}

func tieBreak(a, b Game) bool {
	if a.Votes() != b.Votes() {
		return a.Votes() > b.Votes()
	}
	return a.ID < b.ID
}
