package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/plm-api/internal/repo"
	"github.com/BuzzLyutic/plm-api/internal/service"
	"github.com/BuzzLyutic/plm-api/pkg/respond"
)

func handleErrors(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		respond.JSON(w, r, http.StatusBadRequest, verr.Issues)
	case errors.Is(err, repo.ErrNotFound):
		respond.Error(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, repo.ErrConflict):
		respond.Error(w, r, http.StatusConflict, "conflict")
	case errors.Is(err, service.ErrDelivery):
		logger.Warn("email delivery failed", zap.Error(err))
		respond.Error(w, r, http.StatusBadGateway, "email delivery failed")
	default:
		logger.Error("internal error", zap.Error(err), zap.String("path", r.URL.Path))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}
