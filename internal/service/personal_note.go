package service

import (
	"context"

	"github.com/BuzzLyutic/plm-api/internal/audit"
	"github.com/BuzzLyutic/plm-api/internal/model"
	"github.com/BuzzLyutic/plm-api/internal/repo"
)

type PersonalNoteService struct {
	tx      repo.Transactor
	tasks   repo.TaskRepository
	notes   repo.PersonalNoteRepository
	stamper *audit.Stamper
}

func NewPersonalNoteService(tx repo.Transactor, tasks repo.TaskRepository, notes repo.PersonalNoteRepository, stamper *audit.Stamper) *PersonalNoteService {
	return &PersonalNoteService{
		tx:      tx,
		tasks:   tasks,
		notes:   notes,
		stamper: stamper,
	}
}

func (s *PersonalNoteService) Get(ctx context.Context, owner string, taskID, id int64) (model.PersonalNote, error) {
	return s.notes.Get(ctx, owner, taskID, id)
}

func (s *PersonalNoteService) List(ctx context.Context, owner string, taskID int64, page model.PageParams) (model.Page[model.PersonalNote], error) {
	return s.notes.List(ctx, owner, taskID, page.Normalize())
}

func (s *PersonalNoteService) Create(ctx context.Context, user model.User, owner string, taskID int64, in model.PersonalNoteCreate) (model.PersonalNote, error) {
	in.Trim()
	note := model.PersonalNote{
		TaskID:                     taskID,
		Name:                       in.Name,
		Type:                       in.Type,
		Note:                       in.Note,
		UserID:                     owner,
		CorrespondenceEmailAddress: in.CorrespondenceEmailAddress,
	}

	var created model.PersonalNote
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.tasks.Get(ctx, owner, taskID); err != nil {
			return err
		}
		if err := ensureUniqueName(ctx, s.notes, owner, note.Name, msgPersonalNoteNameTaken); err != nil {
			return err
		}
		if err := validatePersonalNote(note); err != nil {
			return err
		}

		s.stamper.Prepare(user, audit.Changeset{Inserted: []any{&note}})

		var err error
		created, err = s.notes.Insert(ctx, note)
		return err
	})
	return created, err
}

func (s *PersonalNoteService) Update(ctx context.Context, user model.User, owner string, taskID, id int64, patch model.PersonalNotePatch) (model.PersonalNote, error) {
	if err := rejectNulls(patch.NullFields()); err != nil {
		return model.PersonalNote{}, err
	}
	patch.Trim()

	var result model.PersonalNote
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		note, err := s.notes.Get(ctx, owner, taskID, id)
		if err != nil {
			return err
		}
		stored := note

		if name, ok := patch.Name.Get(); ok && name != note.Name {
			if err := ensureUniqueName(ctx, s.notes, owner, name, msgPersonalNoteNameTaken); err != nil {
				return err
			}
		}

		patch.Apply(&note)
		if err := validatePersonalNote(note); err != nil {
			return err
		}

		if note == stored {
			result = stored
			return nil
		}

		s.stamper.Prepare(user, audit.Changeset{Modified: []any{&note}})

		result, err = s.notes.Update(ctx, note)
		return err
	})
	return result, err
}

func (s *PersonalNoteService) Delete(ctx context.Context, owner string, taskID, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.notes.Get(ctx, owner, taskID, id); err != nil {
			return err
		}
		return s.notes.Delete(ctx, owner, taskID, id)
	})
}
