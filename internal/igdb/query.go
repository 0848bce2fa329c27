package igdb

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSearchWithSort is returned when a query combines full-text search with a
// sort clause, which the upstream API rejects.
var ErrSearchWithSort = errors.New("igdb: search cannot be combined with sort")

// MaxLimit is the largest page the upstream API returns for one query.
const MaxLimit = 500

// Query describes one upstream request body.
type Query struct {
	Fields []string
	Search string
	Where  []string
	Sort   string
	Limit  int
	Offset int
}

// Build renders the query in the upstream query language.
func (q Query) Build() (string, error) {
	if q.Search != "" && q.Sort != "" {
		return "", ErrSearchWithSort
	}

	var b strings.Builder

	fields := "*"
	if len(q.Fields) > 0 {
		fields = strings.Join(q.Fields, ",")
	}
	fmt.Fprintf(&b, "fields %s;", fields)

	if q.Search != "" {
		fmt.Fprintf(&b, " search \"%s\";", escape(q.Search))
	}
	if len(q.Where) > 0 {
		fmt.Fprintf(&b, " where %s;", strings.Join(q.Where, " & "))
	}
	if q.Sort != "" {
		fmt.Fprintf(&b, " sort %s;", q.Sort)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	fmt.Fprintf(&b, " limit %d;", limit)

	if q.Offset > 0 {
		fmt.Fprintf(&b, " offset %d;", q.Offset)
	}
	return b.String(), nil
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
