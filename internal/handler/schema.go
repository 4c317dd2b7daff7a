package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/plm-api/internal/service"
	"github.com/BuzzLyutic/plm-api/pkg/respond"
)

type SchemaHandler struct {
	service *service.SchemaService
	logger  *zap.Logger
}

func NewSchemaHandler(srv *service.SchemaService, logger *zap.Logger) *SchemaHandler {
	return &SchemaHandler{
		service: srv,
		logger:  logger,
	}
}

func (h *SchemaHandler) Versions(w http.ResponseWriter, r *http.Request) {
	maxCount, err := queryInt(r, "maxCount", service.DefaultMaxSchemaVersions)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	versions, err := h.service.Versions(r.Context(), maxCount)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, versions)
}
