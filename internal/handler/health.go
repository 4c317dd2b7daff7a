package handler

import (
	"net/http"

	"github.com/BuzzLyutic/plm-api/internal/service"
	"github.com/BuzzLyutic/plm-api/pkg/respond"
)

type HealthHandler struct {
	service *service.HealthService
}

func NewHealthHandler(srv *service.HealthService) *HealthHandler {
	return &HealthHandler{service: srv}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	status, ok := h.service.Check(r.Context())
	code := http.StatusOK
	if !ok {
		code = http.StatusInternalServerError
	}
	respond.JSON(w, r, code, status)
}
