package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/plm-api/internal/service"
	"github.com/BuzzLyutic/plm-api/pkg/respond"
)

type EmailHandler struct {
	service *service.NotificationService
	logger  *zap.Logger
}

func NewEmailHandler(srv *service.NotificationService, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{
		service: srv,
		logger:  logger,
	}
}

// Send mails the task summary to the task's correspondence address.
func (h *EmailHandler) Send(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "taskId")
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	task, err := h.service.SendTaskSummary(r.Context(), chi.URLParam(r, "userId"), taskID)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.Message(w, r, http.StatusOK, fmt.Sprintf("Email sent successfully for Task named %s", task.Name))
}
