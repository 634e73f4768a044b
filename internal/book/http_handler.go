package book

import (
	"net/http"

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

// GetBySlug handles GET /v1/books/{slug}
// @Summary Book detail
// @Description Book with rating summary, the caller's score and reviews
// @Tags books
// @Produce json
// @Param slug path string true "Book slug"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books/{slug} [get]
func (h *HTTPHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}

	detail, err := h.service.Detail(r.Context(), slug, httpx.UserIDFrom(r))
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, detail, nil)
}
