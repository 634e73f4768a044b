package contribute

import (
	"context"
	"strings"

	"booklibrary/internal/apperr"
	"booklibrary/internal/author"
	"booklibrary/internal/book"
	"booklibrary/internal/platform/openlibrary"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Service struct {
	source     Source
	store      ObjectStore
	repo       Repository
	authors    Authors
	books      Books
	categories Categories
	log        *zap.Logger
}

// NewService wires the import pipeline. store may be nil, in which case
// images are skipped.
func NewService(source Source, store ObjectStore, repo Repository, authors Authors, books Books, categories Categories, log *zap.Logger) *Service {
	return &Service{
		source:     source,
		store:      store,
		repo:       repo,
		authors:    authors,
		books:      books,
		categories: categories,
		log:        log,
	}
}

// Contribute imports an edition from Open Library. The author and book are
// matched against existing rows before anything is created; image imports
// never fail the call.
func (s *Service) Contribute(ctx context.Context, userID, method, key string) (Result, error) {
	method = strings.ToUpper(strings.TrimSpace(method))
	key = strings.TrimSpace(key)
	if key == "" {
		return Result{}, ErrBadKey
	}
	if err := ValidateKey(method, key); err != nil {
		return Result{}, err
	}

	details, err := s.source.GetBook(ctx, method, key)
	if err != nil {
		if errors.Is(err, openlibrary.ErrNotFound) {
			return Result{}, apperr.NotFound("Book")
		}
		s.log.Warn("openlibrary book lookup failed", zap.String("bibkey", method+":"+key), zap.Error(err))
		return Result{}, ErrUpstream
	}
	if strings.TrimSpace(details.Title) == "" || len(details.Authors) == 0 {
		return Result{}, apperr.Upstream("Open Library record has no title or author")
	}

	a, authorDetails, err := s.resolveAuthor(ctx, details)
	if err != nil {
		return Result{}, err
	}

	res := Result{AuthorPhoto: skipped("author already exists"), Cover: skipped("book already exists")}
	if res.AuthorCreated, err = s.authors.FindOrCreate(ctx, &a); err != nil {
		return Result{}, err
	}
	if res.AuthorCreated {
		res.AuthorPhoto = s.importAuthorPhoto(ctx, &a, authorDetails)
	}

	cat, err := s.categories.Default(ctx)
	if err != nil {
		return Result{}, err
	}

	b := newBook(details)
	b.AuthorID = a.ID
	b.CategoryID = cat.ID
	if res.BookCreated, err = s.books.FindOrCreate(ctx, &b); err != nil {
		return Result{}, err
	}
	if res.BookCreated {
		res.Cover = s.importCover(ctx, &b, details)
	}
	b.AuthorName, b.AuthorSlug = a.FullName, a.Slug
	b.CategoryName, b.CategorySlug = cat.Name, cat.Slug
	res.Book = b

	record := &Contribution{
		UserID:      userID,
		Method:      method,
		Bibkey:      key,
		BookID:      b.ID,
		BookCreated: res.BookCreated,
		CoverStatus: res.Cover.Status,
	}
	if err := s.repo.Record(ctx, record); err != nil {
		s.log.Warn("record contribution", zap.String("book_id", b.ID), zap.Error(err))
	}

	s.log.Info("book contributed",
		zap.String("user_id", userID),
		zap.String("bibkey", method+":"+key),
		zap.String("book", b.Slug),
		zap.Bool("created", res.BookCreated),
		zap.String("cover", res.Cover.Status),
	)
	return res, nil
}

func (s *Service) resolveAuthor(ctx context.Context, details *openlibrary.BookDetails) (author.Author, *openlibrary.AuthorDetails, error) {
	first := details.Authors[0]
	a := author.Author{FullName: first.Name}

	olid := openlibrary.AuthorKey(first.URL)
	if olid == "" {
		return a, nil, nil
	}
	ad, err := s.source.GetAuthor(ctx, olid)
	if err != nil {
		s.log.Warn("openlibrary author lookup failed", zap.String("olid", olid), zap.Error(err))
		return author.Author{}, nil, ErrUpstream
	}
	if ad.Name != "" {
		a.FullName = ad.Name
	}
	a.Bio = openlibrary.Text(ad.Bio)
	a.WikiPage = ad.Wikipedia
	return a, ad, nil
}

func newBook(d *openlibrary.BookDetails) book.Book {
	b := book.Book{
		Title:       strings.TrimSpace(d.Title),
		Description: openlibrary.Text(d.Notes),
		Status:      book.StatusPublished,
	}
	if len(d.Publishers) > 0 {
		b.Publisher = d.Publishers[0].Name
	}
	if d.NumberOfPages > 0 {
		pages := d.NumberOfPages
		b.Pages = &pages
	}
	if y, ok := openlibrary.PublishYear(d.PublishDate); ok {
		b.PublishYear = &y
	}
	if len(d.Ebooks) > 0 && d.Ebooks[0].PreviewURL != "" {
		embed := openlibrary.EmbedURL(d.Ebooks[0].PreviewURL)
		b.PreviewURL = &embed
	}
	return b
}

func (s *Service) importCover(ctx context.Context, b *book.Book, d *openlibrary.BookDetails) CoverResult {
	src := d.Cover.Medium
	if src == "" {
		src = d.Cover.Large
	}
	res := s.FetchCover(ctx, src, "covers/"+b.Slug+imageExt(src))
	if res.Status != CoverStored {
		return res
	}
	if err := s.repo.SetBookCover(ctx, b.ID, res.URL); err != nil {
		s.log.Warn("save book cover", zap.String("book_id", b.ID), zap.Error(err))
		return skipped("could not save cover url")
	}
	b.CoverURL = &res.URL
	return res
}

func (s *Service) importAuthorPhoto(ctx context.Context, a *author.Author, ad *openlibrary.AuthorDetails) CoverResult {
	if ad == nil || len(ad.Photos) == 0 || ad.Photos[0] <= 0 {
		return skipped("no image")
	}
	src := s.source.AuthorPhotoURL(ad.Photos[0], "L")
	res := s.FetchCover(ctx, src, "authors/"+a.Slug+imageExt(src))
	if res.Status != CoverStored {
		return res
	}
	if err := s.repo.SetAuthorPhoto(ctx, a.ID, res.URL); err != nil {
		s.log.Warn("save author photo", zap.String("author_id", a.ID), zap.Error(err))
		return skipped("could not save photo url")
	}
	a.PhotoURL = &res.URL
	return res
}
