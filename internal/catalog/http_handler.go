package catalog

import (
	"net/http"
	"strconv"

	"booklibrary/internal/httpx"

	"go.uber.org/zap"
)

type HTTPHandler struct {
	service *Service
	log     *zap.Logger
}

func NewHTTPHandler(service *Service, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// pageParam reads the 1-based page number. A missing or malformed value
// means the first page; out of range numbers are passed through.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

func pageMeta(p Page, mode SortMode) map[string]any {
	meta := httpx.PageMeta(p.Page, p.PageSize, p.Total)
	meta["sort"] = mode
	return meta
}

func (h *HTTPHandler) list(w http.ResponseWriter, r *http.Request, f Filter) {
	mode := ParseSort(r.URL.Query().Get("sort"))
	p, err := h.service.Query(r.Context(), mode, f, pageParam(r), DefaultPageSize)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, p.Items, pageMeta(p, mode))
}

// Books handles GET /v1/books
// @Summary Library listing
// @Tags books
// @Produce json
// @Param sort query string false "top_rated, unpopular, newest or oldest" default(top_rated)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} httpx.SuccessResponse
// @Router /v1/books [get]
func (h *HTTPHandler) Books(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, Filter{})
}

// Search handles GET /v1/search
// @Summary Search books
// @Description Matches title, category or author name. A publisher filter replaces the text search.
// @Tags books
// @Produce json
// @Param q query string false "Search query"
// @Param publisher query string false "Publisher"
// @Param sort query string false "Sort mode" default(top_rated)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} httpx.SuccessResponse
// @Router /v1/search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	h.list(w, r, Filter{Search: query.Get("q"), Publisher: query.Get("publisher")})
}

// Shelf handles GET /v1/me/shelf
// @Summary Books the caller has borrowed
// @Tags me
// @Produce json
// @Security Bearer
// @Param q query string false "Search query"
// @Param sort query string false "Sort mode" default(top_rated)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /v1/me/shelf [get]
func (h *HTTPHandler) Shelf(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}
	h.list(w, r, Filter{Search: r.URL.Query().Get("q"), OwnerID: userID})
}

// CategoryBooks handles GET /v1/categories/{slug}/books
// @Summary Books in a category
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Param sort query string false "Sort mode" default(top_rated)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/categories/{slug}/books [get]
func (h *HTTPHandler) CategoryBooks(w http.ResponseWriter, r *http.Request) {
	mode := ParseSort(r.URL.Query().Get("sort"))
	cp, p, err := h.service.CategoryBooks(r.Context(), r.PathValue("slug"), mode, pageParam(r))
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, cp, pageMeta(p, mode))
}

// AuthorPage handles GET /v1/authors/{slug}
// @Summary Author with their books
// @Tags authors
// @Produce json
// @Param slug path string true "Author slug"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/authors/{slug} [get]
func (h *HTTPHandler) AuthorPage(w http.ResponseWriter, r *http.Request) {
	ap, p, err := h.service.AuthorPage(r.Context(), r.PathValue("slug"), pageParam(r))
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, ap, pageMeta(p, TopRated))
}

// Home handles GET /v1/home
// @Summary Home page listing
// @Tags books
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /v1/home [get]
func (h *HTTPHandler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.service.Home(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, home, nil)
}
