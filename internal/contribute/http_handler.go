package contribute

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

type contributeReq struct {
	Method string `json:"method" validate:"required"`
	Bibkey string `json:"bibkey" validate:"required"`
}

// Contribute handles POST /v1/contribute
// @Summary Import a book from Open Library
// @Description Looks the edition up by ISBN or OLID and adds it with its author. Cover import is best effort.
// @Tags contribute
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body contributeReq true "Lookup method and key"
// @Success 201 {object} httpx.SuccessResponse
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /v1/contribute [post]
func (h *HTTPHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req contributeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	res, err := h.service.Contribute(r.Context(), userID, req.Method, req.Bibkey)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	if res.BookCreated {
		httpx.JSONSuccessCreated(w, r, res)
		return
	}
	httpx.JSONSuccess(w, r, res, nil)
}
