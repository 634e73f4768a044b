package catalog

import "strings"

// SortMode selects the ordering of a listing.
type SortMode string

const (
	TopRated  SortMode = "top_rated"
	Unpopular SortMode = "unpopular"
	Newest    SortMode = "newest"
	Oldest    SortMode = "oldest"
)

// ParseSort maps a query value onto a SortMode. Unknown or empty values fall
// back to TopRated without error.
func ParseSort(s string) SortMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(TopRated), "popular":
		return TopRated
	case string(Unpopular), "not_popular":
		return Unpopular
	case string(Newest):
		return Newest
	case string(Oldest):
		return Oldest
	default:
		return TopRated
	}
}

// orderTerm is one ORDER BY key. Nullable keys always sort NULL at the low
// end: last when descending, first when ascending.
type orderTerm struct {
	expr     string
	desc     bool
	nullable bool
}

func (t orderTerm) invert() orderTerm {
	t.desc = !t.desc
	return t
}

func (t orderTerm) String() string {
	s := t.expr
	if t.desc {
		s += " DESC"
	} else {
		s += " ASC"
	}
	if t.nullable {
		if t.desc {
			s += " NULLS LAST"
		} else {
			s += " NULLS FIRST"
		}
	}
	return s
}

const (
	exprAverage = "rs.avg_score"
	exprCount   = "COALESCE(rs.score_count, 0)"
	exprCreated = "b.created_at"
	exprID      = "b.id"
)

var (
	topRatedTerms = []orderTerm{
		{expr: exprAverage, desc: true, nullable: true},
		{expr: exprCount, desc: true},
		{expr: exprCreated, desc: true},
		{expr: exprID, desc: true},
	}
	newestTerms = []orderTerm{
		{expr: exprCreated, desc: true},
		{expr: exprID, desc: true},
	}
)

func invertTerms(terms []orderTerm) []orderTerm {
	out := make([]orderTerm, len(terms))
	for i, t := range terms {
		out[i] = t.invert()
	}
	return out
}

// orderTerms returns the full ordering for mode. Unpopular and Oldest are
// derived from TopRated and Newest so each pair is an exact reverse.
func orderTerms(mode SortMode) []orderTerm {
	switch mode {
	case Unpopular:
		return invertTerms(topRatedTerms)
	case Newest:
		return newestTerms
	case Oldest:
		return invertTerms(newestTerms)
	default:
		return topRatedTerms
	}
}

// OrderBy renders the ORDER BY list for mode.
func OrderBy(mode SortMode) string {
	terms := orderTerms(mode)
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
