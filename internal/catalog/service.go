package catalog

import (
	"context"
)

type Service struct {
	repo       Repository
	categories Categories
	authors    Authors
}

func NewService(repo Repository, categories Categories, authors Authors) *Service {
	return &Service{repo: repo, categories: categories, authors: authors}
}

// Query is the single listing operation behind every browse endpoint. Pages
// are 1-based; a page below 1 or past the last one comes back empty.
func (s *Service) Query(ctx context.Context, mode SortMode, f Filter, page, pageSize int) (Page, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return Page{}, err
	}

	p := Page{Items: []Item{}, Page: page, PageSize: pageSize, Total: total}
	if page < 1 {
		return p, nil
	}
	offset := (page - 1) * pageSize
	if offset >= total {
		return p, nil
	}

	items, err := s.repo.List(ctx, mode, f, pageSize, offset)
	if err != nil {
		return Page{}, err
	}
	p.Items = items
	return p, nil
}

func (s *Service) Home(ctx context.Context) (Home, error) {
	top, err := s.Query(ctx, TopRated, Filter{}, 1, homeTopRated)
	if err != nil {
		return Home{}, err
	}
	newest, err := s.Query(ctx, Newest, Filter{}, 1, homeNewest)
	if err != nil {
		return Home{}, err
	}
	cats, err := s.categories.List(ctx)
	if err != nil {
		return Home{}, err
	}
	return Home{TopRated: top.Items, Newest: newest.Items, Categories: cats}, nil
}

func (s *Service) CategoryBooks(ctx context.Context, slug string, mode SortMode, page int) (CategoryPage, Page, error) {
	cat, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return CategoryPage{}, Page{}, err
	}
	p, err := s.Query(ctx, mode, Filter{CategorySlug: cat.Slug}, page, DefaultPageSize)
	if err != nil {
		return CategoryPage{}, Page{}, err
	}
	return CategoryPage{Category: cat, Books: p.Items}, p, nil
}

// AuthorPage lists an author's books ranked top_rated.
func (s *Service) AuthorPage(ctx context.Context, slug string, page int) (AuthorPage, Page, error) {
	a, err := s.authors.GetBySlug(ctx, slug)
	if err != nil {
		return AuthorPage{}, Page{}, err
	}
	p, err := s.Query(ctx, TopRated, Filter{AuthorSlug: a.Slug}, page, DefaultPageSize)
	if err != nil {
		return AuthorPage{}, Page{}, err
	}
	return AuthorPage{Author: a, Books: p.Items}, p, nil
}
