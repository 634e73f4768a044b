package contribute

import (
	"strings"
	"time"
	"unicode"

	"booklibrary/internal/apperr"
	"booklibrary/internal/book"
)

const (
	MethodISBN = "ISBN"
	MethodOLID = "OLID"
)

var (
	ErrBadKey    = apperr.Validation("Bibkey is not valid")
	ErrBadMethod = apperr.Validation("Method is not valid")
	ErrUpstream  = apperr.Upstream("Can't connect to openlibrary api")
)

const (
	CoverStored  = "stored"
	CoverSkipped = "skipped"
)

// CoverResult reports the outcome of a best-effort image import.
type CoverResult struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
	URL    string `json:"url,omitempty"`
}

func skipped(reason string) CoverResult {
	return CoverResult{Status: CoverSkipped, Reason: reason}
}

type Result struct {
	Book          book.Book   `json:"book"`
	BookCreated   bool        `json:"book_created"`
	AuthorCreated bool        `json:"author_created"`
	Cover         CoverResult `json:"cover"`
	AuthorPhoto   CoverResult `json:"author_photo"`
}

// Contribution is the audit row kept for every successful import.
type Contribution struct {
	ID          string
	UserID      string
	Method      string
	Bibkey      string
	BookID      string
	BookCreated bool
	CoverStatus string
	CreatedAt   time.Time
}

// ValidateKey checks a bibkey against its lookup method. ISBNs are 10 or 13
// alphanumerics; OLIDs are edition ids like OL7353617M.
func ValidateKey(method, key string) error {
	switch method {
	case MethodISBN:
		if n := len(key); n != 10 && n != 13 {
			return ErrBadKey
		}
		for _, r := range key {
			if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
				return ErrBadKey
			}
		}
		return nil
	case MethodOLID:
		if len(key) < 4 || !strings.HasPrefix(key, "OL") || !strings.HasSuffix(key, "M") {
			return ErrBadKey
		}
		return nil
	default:
		return ErrBadMethod
	}
}
