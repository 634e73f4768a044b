package main

import (
	"context"
	"net/http"
	"time"

	"booklibrary/internal/auth"
	"booklibrary/internal/book"
	"booklibrary/internal/borrow"
	"booklibrary/internal/catalog"
	"booklibrary/internal/category"
	"booklibrary/internal/contribute"
	"booklibrary/internal/profile"
	"booklibrary/internal/rating"
	"booklibrary/internal/review"
)

type handlers struct {
	auth       *auth.HTTPHandler
	catalog    *catalog.HTTPHandler
	book       *book.HTTPHandler
	rating     *rating.HTTPHandler
	review     *review.HTTPHandler
	borrow     *borrow.HTTPHandler
	category   *category.HTTPHandler
	contribute *contribute.HTTPHandler
	profile    *profile.HTTPHandler
	ready      func(ctx context.Context) error
}

type middleware = func(http.Handler) http.Handler

// registerRoutes mounts the /v1 API. requireAuth guards write and per-user
// routes; optionalAuth lets public reads see the caller when a token is sent.
func registerRoutes(mux *http.ServeMux, h handlers, requireAuth, optionalAuth middleware) {
	private := func(fn http.HandlerFunc) http.Handler { return requireAuth(fn) }
	public := func(fn http.HandlerFunc) http.Handler { return optionalAuth(fn) }

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if h.ready != nil {
			if err := h.ready(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	mux.HandleFunc("POST /v1/users/register", h.auth.Register)
	mux.HandleFunc("POST /v1/users/login", h.auth.Login)
	mux.Handle("POST /v1/users/logout", private(h.auth.Logout))

	mux.HandleFunc("GET /v1/home", h.catalog.Home)
	mux.HandleFunc("GET /v1/books", h.catalog.Books)
	mux.HandleFunc("GET /v1/search", h.catalog.Search)
	mux.HandleFunc("GET /v1/categories", h.category.List)
	mux.HandleFunc("GET /v1/categories/{slug}/books", h.catalog.CategoryBooks)
	mux.HandleFunc("GET /v1/authors/{slug}", h.catalog.AuthorPage)

	mux.Handle("GET /v1/books/{slug}", public(h.book.GetBySlug))
	mux.Handle("GET /v1/books/{slug}/rating", public(h.rating.GetSummary))
	mux.Handle("POST /v1/books/{slug}/rating", private(h.rating.Rate))
	mux.Handle("DELETE /v1/books/{slug}/rating", private(h.rating.Unrate))
	mux.Handle("POST /v1/books/{slug}/reviews", private(h.review.Add))
	mux.Handle("POST /v1/books/{slug}/borrow", private(h.borrow.Borrow))
	mux.Handle("POST /v1/books/{slug}/return", private(h.borrow.Return))

	mux.Handle("POST /v1/contribute", private(h.contribute.Contribute))

	mux.Handle("GET /v1/me/shelf", private(h.catalog.Shelf))
	mux.Handle("GET /v1/me/profile", private(h.profile.GetOwnProfile))
	mux.Handle("PATCH /v1/me/profile", private(h.profile.UpdateProfile))
	mux.HandleFunc("GET /v1/users/{id}/profile", h.profile.GetPublicProfile)
}
