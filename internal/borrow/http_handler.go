package borrow

import (
	"encoding/json"
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

type borrowReq struct {
	ReturnDate string `json:"return_date"`
}

// Borrow handles POST /v1/books/{slug}/borrow
// @Summary Borrow a book
// @Description The return date must fall between today and 31 days ahead
// @Tags borrowing
// @Accept json
// @Produce json
// @Security Bearer
// @Param slug path string true "Book slug"
// @Param request body borrowReq true "Return date as YYYY-MM-DD"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /v1/books/{slug}/borrow [post]
func (h *HTTPHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req borrowReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	due, err := ParseDueDate(req.ReturnDate, h.service.Location())
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	slug := r.PathValue("slug")
	if err := h.service.Borrow(r.Context(), userID, slug, due); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{
		"slug":        slug,
		"return_date": due.Format(dateLayout),
	}, nil)
}

// Return handles POST /v1/books/{slug}/return
// @Summary Return a borrowed book
// @Tags borrowing
// @Security Bearer
// @Param slug path string true "Book slug"
// @Success 204 "No Content"
// @Failure 401 {object} httpx.ErrorResponse
// @Router /v1/books/{slug}/return [post]
func (h *HTTPHandler) Return(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	if err := h.service.Return(r.Context(), userID, r.PathValue("slug")); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
