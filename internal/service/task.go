package service

import (
	"context"

	"github.com/BuzzLyutic/plm-api/internal/audit"
	"github.com/BuzzLyutic/plm-api/internal/model"
	"github.com/BuzzLyutic/plm-api/internal/repo"
)

type TaskService struct {
	tx      repo.Transactor
	tasks   repo.TaskRepository
	stamper *audit.Stamper
}

func NewTaskService(tx repo.Transactor, tasks repo.TaskRepository, stamper *audit.Stamper) *TaskService {
	return &TaskService{
		tx:      tx,
		tasks:   tasks,
		stamper: stamper,
	}
}

func (s *TaskService) Get(ctx context.Context, owner string, id int64) (model.Task, error) {
	return s.tasks.Get(ctx, owner, id)
}

func (s *TaskService) List(ctx context.Context, owner string, page model.PageParams) (model.Page[model.Task], error) {
	return s.tasks.List(ctx, owner, page.Normalize())
}

func (s *TaskService) Create(ctx context.Context, user model.User, owner string, in model.TaskCreate) (model.Task, error) {
	in.Trim()
	task := model.Task{
		Name:                       in.Name,
		Status:                     in.Status,
		Type:                       in.Type,
		UserID:                     owner, // the path owner wins over any userId in the body
		CorrespondenceEmailAddress: in.CorrespondenceEmailAddress,
	}

	var created model.Task
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := ensureUniqueName(ctx, s.tasks, owner, task.Name, msgTaskNameTaken); err != nil {
			return err
		}
		if err := validateTask(task); err != nil {
			return err
		}

		s.stamper.Prepare(user, audit.Changeset{Inserted: []any{&task}})

		var err error
		created, err = s.tasks.Insert(ctx, task)
		return err
	})
	return created, err
}

func (s *TaskService) Update(ctx context.Context, user model.User, owner string, id int64, patch model.TaskPatch) (model.Task, error) {
	if err := rejectNulls(patch.NullFields()); err != nil {
		return model.Task{}, err
	}
	patch.Trim()

	var result model.Task
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		task, err := s.tasks.Get(ctx, owner, id)
		if err != nil {
			return err
		}
		stored := task

		// Only a real rename needs the check; the task would otherwise collide with itself.
		if name, ok := patch.Name.Get(); ok && name != task.Name {
			if err := ensureUniqueName(ctx, s.tasks, owner, name, msgTaskNameTaken); err != nil {
				return err
			}
		}

		patch.Apply(&task)
		if err := validateTask(task); err != nil {
			return err
		}

		if task == stored {
			result = stored
			return nil
		}

		s.stamper.Prepare(user, audit.Changeset{Modified: []any{&task}})

		result, err = s.tasks.Update(ctx, task)
		return err
	})
	return result, err
}

func (s *TaskService) Delete(ctx context.Context, owner string, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		task, err := s.tasks.Get(ctx, owner, id)
		if err != nil {
			return err
		}

		hasNotes, err := s.tasks.HasPersonalNotes(ctx, task.ID)
		if err != nil {
			return err
		}
		if hasNotes {
			return NewValidationError(msgTaskHasPersonalNotes)
		}

		return s.tasks.Delete(ctx, owner, task.ID)
	})
}
