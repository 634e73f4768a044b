package category

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

// List handles GET /v1/categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /v1/categories [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.service.List(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, cats, map[string]any{"total": len(cats)})
}
