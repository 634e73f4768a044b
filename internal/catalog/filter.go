package catalog

import "strings"

// Filter narrows a listing. Publisher wins over Search when both are set;
// the remaining fields are exact matches combined with AND.
type Filter struct {
	Publisher    string
	Search       string
	CategorySlug string
	AuthorSlug   string
	OwnerID      string
}

func (f Filter) normalized() Filter {
	f.Publisher = strings.TrimSpace(f.Publisher)
	f.Search = strings.TrimSpace(f.Search)
	if f.Publisher != "" {
		f.Search = ""
	}
	return f
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s as a literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
