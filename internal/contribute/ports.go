package contribute

import (
	"context"
	"io"

	"booklibrary/internal/author"
	"booklibrary/internal/book"
	"booklibrary/internal/category"
	"booklibrary/internal/platform/openlibrary"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=contribute

// Source is the remote metadata provider.
type Source interface {
	GetBook(ctx context.Context, method, key string) (*openlibrary.BookDetails, error)
	GetAuthor(ctx context.Context, olid string) (*openlibrary.AuthorDetails, error)
	AuthorPhotoURL(id int, size string) string
	Download(ctx context.Context, url string) ([]byte, string, error)
}

// ObjectStore keeps imported images. It is nil when storage is not configured.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

type Repository interface {
	Record(ctx context.Context, c *Contribution) error
	SetBookCover(ctx context.Context, bookID, url string) error
	SetAuthorPhoto(ctx context.Context, authorID, url string) error
}

type Authors interface {
	FindOrCreate(ctx context.Context, a *author.Author) (bool, error)
}

type Books interface {
	FindOrCreate(ctx context.Context, b *book.Book) (bool, error)
}

type Categories interface {
	Default(ctx context.Context) (category.Category, error)
}
