package catalog

import (
	"booklibrary/internal/author"
	"booklibrary/internal/book"
	"booklibrary/internal/category"
)

// DefaultPageSize is the number of books on one listing page.
const DefaultPageSize = 8

const (
	homeTopRated = 4
	homeNewest   = 15
)

// Item is a listed book with its live rating aggregate. AverageRating is nil
// for unrated books.
type Item struct {
	book.Book
	AverageRating *float64 `json:"average_rating"`
	RatingsCount  int      `json:"ratings_count"`
}

type Page struct {
	Items    []Item `json:"items"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Total    int    `json:"total"`
}

func (p Page) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

type Home struct {
	TopRated   []Item              `json:"top_rated"`
	Newest     []Item              `json:"newest"`
	Categories []category.Category `json:"categories"`
}

type CategoryPage struct {
	Category category.Category `json:"category"`
	Books    []Item            `json:"books"`
}

type AuthorPage struct {
	Author author.Author `json:"author"`
	Books  []Item        `json:"books"`
}
