package service

import (
	"context"
	"fmt"

	"github.com/BuzzLyutic/plm-api/internal/model"
)

const (
	msgTaskNameTaken         = "A task with this same name already exists."
	msgPersonalNoteNameTaken = "A personal note with this same name already exists."
	msgTaskHasPersonalNotes  = "Cannot delete a task for which there are existing personal notes."
	msgNullFields            = "These fields cannot be set to null."
)

type enum interface {
	~string
	Valid() bool
}

// checkEnum reports a value outside the closed set of its type.
func checkEnum[T enum](errs *ValidationError, entity, field string, value T) {
	if value.Valid() {
		return
	}
	errs.Add(fmt.Sprintf("The %s has a %s of %s, which is not allowed.", entity, field, value))
}

func checkName(errs *ValidationError, entity, name string) {
	if name == "" {
		errs.Add(fmt.Sprintf("The %s name cannot be empty.", entity), "name")
	}
}

func validateTask(t model.Task) error {
	errs := &ValidationError{}
	checkName(errs, "task", t.Name)
	checkEnum(errs, "task", "status", t.Status)
	checkEnum(errs, "task", "type", t.Type)
	return errs.ErrOrNil()
}

func validatePersonalNote(n model.PersonalNote) error {
	errs := &ValidationError{}
	checkName(errs, "note", n.Name)
	checkEnum(errs, "note", "type", n.Type)
	return errs.ErrOrNil()
}

func rejectNulls(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return NewValidationError(msgNullFields, fields...)
}

type nameChecker interface {
	NameExists(ctx context.Context, owner, name string) (bool, error)
}

// ensureUniqueName fails when owner already has a record called name.
func ensureUniqueName(ctx context.Context, repo nameChecker, owner, name, message string) error {
	exists, err := repo.NameExists(ctx, owner, name)
	if err != nil {
		return fmt.Errorf("check name uniqueness: %w", err)
	}
	if exists {
		return NewValidationError(message)
	}
	return nil
}
