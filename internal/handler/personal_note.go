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

type PersonalNoteHandler struct {
	service *service.PersonalNoteService
	logger  *zap.Logger
}

func NewPersonalNoteHandler(srv *service.PersonalNoteService, logger *zap.Logger) *PersonalNoteHandler {
	return &PersonalNoteHandler{
		service: srv,
		logger:  logger,
	}
}

func (h *PersonalNoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		respond.Error(w, r, http.StatusUnauthorized, ErrMissingToken.Error())
		return
	}
	owner := chi.URLParam(r, "userId")
	taskID, err := pathID(r, "taskId")
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	var req model.PersonalNoteCreate
	if err := decodeJSON(r, &req); err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	req.Trim()
	if err := validateRequest(req); err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	note, err := h.service.Create(r.Context(), user, owner, taskID, req)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/v1/tasks/%s/%d/personal-notes/%d", owner, taskID, note.ID))
	respond.JSON(w, r, http.StatusOK, note)
}

func (h *PersonalNoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	taskID, id, err := notePath(r)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	note, err := h.service.Get(r.Context(), chi.URLParam(r, "userId"), taskID, id)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, note)
}

func (h *PersonalNoteHandler) List(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "taskId")
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	page, err := pageParams(r)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	notes, err := h.service.List(r.Context(), chi.URLParam(r, "userId"), taskID, page)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, notes)
}

func (h *PersonalNoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		respond.Error(w, r, http.StatusUnauthorized, ErrMissingToken.Error())
		return
	}
	taskID, id, err := notePath(r)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	var req model.PersonalNotePatch
	if err := decodeJSON(r, &req); err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	note, err := h.service.Update(r.Context(), user, chi.URLParam(r, "userId"), taskID, id, req)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, note)
}

func (h *PersonalNoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	taskID, id, err := notePath(r)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "userId"), taskID, id); err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.NoContent(w, r)
}

func notePath(r *http.Request) (taskID, id int64, err error) {
	if taskID, err = pathID(r, "taskId"); err != nil {
		return 0, 0, err
	}
	if id, err = pathID(r, "personalNoteId"); err != nil {
		return 0, 0, err
	}
	return taskID, id, nil
}
