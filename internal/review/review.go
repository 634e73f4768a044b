package review

import (
	"strings"
	"time"
	"unicode/utf8"

	"booklibrary/internal/apperr"
)

const (
	MinLength = 10
	MaxLength = 400
)

var (
	ErrEmpty  = apperr.Validation("Comment must not be empty")
	ErrLength = apperr.Validation("Comment length must be in range [10, 400] symbols")
)

// Review is a free-text comment on a book. Reviews are never edited.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	BookID    string    `json:"book_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidateText checks the length of text in runes as submitted and returns it
// unchanged. Whitespace-only text counts as empty.
func ValidateText(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmpty
	}
	if n := utf8.RuneCountInString(text); n < MinLength || n > MaxLength {
		return "", ErrLength
	}
	return text, nil
}
