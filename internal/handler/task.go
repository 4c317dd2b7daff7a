package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/plm-api/internal/model"
	"github.com/BuzzLyutic/plm-api/internal/service"
	"github.com/BuzzLyutic/plm-api/pkg/respond"
)

type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		logger:  logger,
	}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		respond.Error(w, r, http.StatusUnauthorized, ErrMissingToken.Error())
		return
	}
	owner := chi.URLParam(r, "userId")

	var req model.TaskCreate
	if err := decodeJSON(r, &req); err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	req.Trim()
	if err := validateRequest(req); err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	task, err := h.service.Create(r.Context(), user, owner, req)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/v1/tasks/%s/%d", owner, task.ID))
	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taskId")
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	task, err := h.service.Get(r.Context(), chi.URLParam(r, "userId"), id)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	tasks, err := h.service.List(r.Context(), chi.URLParam(r, "userId"), page)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		respond.Error(w, r, http.StatusUnauthorized, ErrMissingToken.Error())
		return
	}
	id, err := pathID(r, "taskId")
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	var req model.TaskPatch
	if err := decodeJSON(r, &req); err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	task, err := h.service.Update(r.Context(), user, chi.URLParam(r, "userId"), id, req)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taskId")
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "userId"), id); err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.NoContent(w, r)
}
