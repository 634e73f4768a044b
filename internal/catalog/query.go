package catalog

import (
	"fmt"
	"strings"

	"booklibrary/internal/book"
)

const publishedPredicate = "b.status = 'published'"

const ratingStatsJoin = `
	LEFT JOIN (
		SELECT book_id,
		       SUM(score)::float8 / NULLIF(COUNT(score), 0) AS avg_score,
		       COUNT(score) AS score_count
		FROM ratings
		GROUP BY book_id
	) rs ON rs.book_id = b.id`

// Statement is a parameterised SQL statement.
type Statement struct {
	SQL  string
	Args []any
}

func whereClause(f Filter) (string, []any) {
	f = f.normalized()
	clauses := []string{publishedPredicate}
	args := []any{}
	argn := 1

	if f.Publisher != "" {
		clauses = append(clauses, fmt.Sprintf("b.publisher_slug ILIKE $%d", argn))
		args = append(args, containsPattern(f.Publisher))
		argn++
	} else if f.Search != "" {
		clauses = append(clauses, fmt.Sprintf("(b.title ILIKE $%d OR c.name ILIKE $%d OR a.full_name ILIKE $%d)", argn, argn, argn))
		args = append(args, containsPattern(f.Search))
		argn++
	}

	if f.CategorySlug != "" {
		clauses = append(clauses, fmt.Sprintf("c.slug = $%d", argn))
		args = append(args, f.CategorySlug)
		argn++
	}

	if f.AuthorSlug != "" {
		clauses = append(clauses, fmt.Sprintf("a.slug = $%d", argn))
		args = append(args, f.AuthorSlug)
		argn++
	}

	if f.OwnerID != "" {
		clauses = append(clauses, fmt.Sprintf("b.borrower_id = $%d", argn))
		args = append(args, f.OwnerID)
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

// BuildCount returns the statement counting every book that matches f.
func BuildCount(f Filter) Statement {
	where, args := whereClause(f)
	return Statement{
		SQL:  "SELECT COUNT(*)" + book.FromJoined + "\n\t" + where,
		Args: args,
	}
}

// BuildList returns the statement selecting one page of books matching f in
// the order given by mode. Each row is book.SelectColumns followed by the
// average score (NULL when unrated) and the ratings count.
func BuildList(mode SortMode, f Filter, limit, offset int) Statement {
	where, args := whereClause(f)
	argn := len(args) + 1
	sql := fmt.Sprintf(`SELECT %s,
	rs.avg_score, COALESCE(rs.score_count, 0)%s%s
	%s
	ORDER BY %s
	LIMIT $%d OFFSET $%d`,
		book.SelectColumns, book.FromJoined, ratingStatsJoin, where, OrderBy(mode), argn, argn+1)
	return Statement{SQL: sql, Args: append(args, limit, offset)}
}
