package book

import (
	"strings"
	"time"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Language codes. Anything else is stored as LanguageUnknown.
const (
	LanguageUnknown    = "UNS"
	LanguageBelarusian = "BY"
	LanguageRussian    = "RU"
	LanguageEnglish    = "EN"
)

// Book is a catalog item. Slug is unique and never changes after creation.
type Book struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	AuthorID      string     `json:"author_id"`
	AuthorName    string     `json:"author_name,omitempty"`
	AuthorSlug    string     `json:"author_slug,omitempty"`
	CategoryID    string     `json:"category_id"`
	CategoryName  string     `json:"category_name,omitempty"`
	CategorySlug  string     `json:"category_slug,omitempty"`
	Publisher     string     `json:"publisher,omitempty"`
	PublisherSlug string     `json:"publisher_slug,omitempty"`
	Language      string     `json:"language"`
	Pages         *int       `json:"pages,omitempty"`
	PublishYear   *int       `json:"publish_year,omitempty"`
	Description   string     `json:"description,omitempty"`
	CoverURL      *string    `json:"cover_url,omitempty"`
	PreviewURL    *string    `json:"preview_url,omitempty"`
	Status        string     `json:"status"`
	IsTaken       bool       `json:"is_taken"`
	BorrowerID    *string    `json:"-"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NormalizeLanguage maps free-form language input onto the stored codes.
func NormalizeLanguage(code string) string {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case LanguageBelarusian, "BE", "BEL":
		return LanguageBelarusian
	case LanguageRussian, "RUS":
		return LanguageRussian
	case LanguageEnglish, "ENG":
		return LanguageEnglish
	default:
		return LanguageUnknown
	}
}
