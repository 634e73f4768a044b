package rating

import (
	"encoding/json"
	"net/http"
	"strconv"

	"booklibrary/internal/httpx"

	"go.uber.org/zap"
)

type HTTPHandler struct {
	service *Service
	books   BookFinder
	log     *zap.Logger
}

func NewHTTPHandler(service *Service, books BookFinder, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, books: books, log: log}
}

type rateReq struct {
	Score int `json:"score"`
}

// GetSummary handles GET /v1/books/{slug}/rating
// @Summary Rating summary for a book
// @Tags ratings
// @Produce json
// @Param slug path string true "Book slug"
// @Param show_count query bool false "Append the ratings count label"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books/{slug}/rating [get]
func (h *HTTPHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.books.IDBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	showCount, _ := strconv.ParseBool(r.URL.Query().Get("show_count"))
	summary, err := h.service.Summary(r.Context(), bookID, showCount)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	data := map[string]any{"summary": summary}
	if userID := httpx.UserIDFrom(r); userID != "" {
		score, err := h.service.UserRating(r.Context(), userID, bookID)
		if err != nil {
			httpx.WriteError(w, r, h.log, err)
			return
		}
		data["my_score"] = score
	}
	httpx.JSONSuccess(w, r, data, nil)
}

// Rate handles POST /v1/books/{slug}/rating
// @Summary Rate a book
// @Description Creates or replaces the caller's 1-5 score
// @Tags ratings
// @Accept json
// @Security Bearer
// @Param slug path string true "Book slug"
// @Param request body rateReq true "Score"
// @Success 204 "No Content"
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /v1/books/{slug}/rating [post]
func (h *HTTPHandler) Rate(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req rateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	bookID, err := h.books.IDBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	if err := h.service.Rate(r.Context(), userID, bookID, req.Score); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// Unrate handles DELETE /v1/books/{slug}/rating
// @Summary Remove the caller's rating
// @Tags ratings
// @Security Bearer
// @Param slug path string true "Book slug"
// @Success 204 "No Content"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books/{slug}/rating [delete]
func (h *HTTPHandler) Unrate(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	bookID, err := h.books.IDBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	if err := h.service.Unrate(r.Context(), userID, bookID); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
