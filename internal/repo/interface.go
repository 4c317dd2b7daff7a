package repo

import (
	"context"

	"github.com/BuzzLyutic/plm-api/internal/model"
)

// Transactor runs fn inside one database transaction. Repository calls made
// with the ctx passed to fn use that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type TaskRepository interface {
	Get(ctx context.Context, owner string, id int64) (model.Task, error)
	List(ctx context.Context, owner string, page model.PageParams) (model.Page[model.Task], error)
	NameExists(ctx context.Context, owner, name string) (bool, error)
	Insert(ctx context.Context, t model.Task) (model.Task, error)
	Update(ctx context.Context, t model.Task) (model.Task, error)
	Delete(ctx context.Context, owner string, id int64) error
	HasPersonalNotes(ctx context.Context, id int64) (bool, error)
}

type PersonalNoteRepository interface {
	Get(ctx context.Context, owner string, taskID, id int64) (model.PersonalNote, error)
	List(ctx context.Context, owner string, taskID int64, page model.PageParams) (model.Page[model.PersonalNote], error)
	ListByTask(ctx context.Context, owner string, taskID int64) ([]model.PersonalNote, error)
	NameExists(ctx context.Context, owner, name string) (bool, error)
	Insert(ctx context.Context, n model.PersonalNote) (model.PersonalNote, error)
	Update(ctx context.Context, n model.PersonalNote) (model.PersonalNote, error)
	Delete(ctx context.Context, owner string, taskID, id int64) error
}

type SchemaRepository interface {
	HistoryTableExists(ctx context.Context) (bool, error)
	ListVersions(ctx context.Context, maxCount int) ([]model.SchemaVersion, error)
}

type Prober interface {
	Probe(ctx context.Context) error
}
