// Package repotest provides testify mocks of the repository interfaces.
package repotest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BuzzLyutic/plm-api/internal/model"
	"github.com/BuzzLyutic/plm-api/internal/repo"
)

var (
	_ repo.Transactor             = (*Transactor)(nil)
	_ repo.TaskRepository         = (*TaskRepository)(nil)
	_ repo.PersonalNoteRepository = (*PersonalNoteRepository)(nil)
	_ repo.SchemaRepository       = (*SchemaRepository)(nil)
	_ repo.Prober                 = (*Prober)(nil)
)

// Transactor runs fn directly and records how often a transaction was opened.
type Transactor struct {
	Calls int
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	return fn(ctx)
}

type TaskRepository struct {
	mock.Mock
}

func (m *TaskRepository) Get(ctx context.Context, owner string, id int64) (model.Task, error) {
	args := m.Called(ctx, owner, id)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskRepository) List(ctx context.Context, owner string, page model.PageParams) (model.Page[model.Task], error) {
	args := m.Called(ctx, owner, page)
	return args.Get(0).(model.Page[model.Task]), args.Error(1)
}

func (m *TaskRepository) NameExists(ctx context.Context, owner, name string) (bool, error) {
	args := m.Called(ctx, owner, name)
	return args.Bool(0), args.Error(1)
}

func (m *TaskRepository) Insert(ctx context.Context, t model.Task) (model.Task, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskRepository) Update(ctx context.Context, t model.Task) (model.Task, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskRepository) Delete(ctx context.Context, owner string, id int64) error {
	args := m.Called(ctx, owner, id)
	return args.Error(0)
}

func (m *TaskRepository) HasPersonalNotes(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type PersonalNoteRepository struct {
	mock.Mock
}

func (m *PersonalNoteRepository) Get(ctx context.Context, owner string, taskID, id int64) (model.PersonalNote, error) {
	args := m.Called(ctx, owner, taskID, id)
	return args.Get(0).(model.PersonalNote), args.Error(1)
}

func (m *PersonalNoteRepository) List(ctx context.Context, owner string, taskID int64, page model.PageParams) (model.Page[model.PersonalNote], error) {
	args := m.Called(ctx, owner, taskID, page)
	return args.Get(0).(model.Page[model.PersonalNote]), args.Error(1)
}

func (m *PersonalNoteRepository) ListByTask(ctx context.Context, owner string, taskID int64) ([]model.PersonalNote, error) {
	args := m.Called(ctx, owner, taskID)
	return args.Get(0).([]model.PersonalNote), args.Error(1)
}

func (m *PersonalNoteRepository) NameExists(ctx context.Context, owner, name string) (bool, error) {
	args := m.Called(ctx, owner, name)
	return args.Bool(0), args.Error(1)
}

func (m *PersonalNoteRepository) Insert(ctx context.Context, n model.PersonalNote) (model.PersonalNote, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(model.PersonalNote), args.Error(1)
}

func (m *PersonalNoteRepository) Update(ctx context.Context, n model.PersonalNote) (model.PersonalNote, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(model.PersonalNote), args.Error(1)
}

func (m *PersonalNoteRepository) Delete(ctx context.Context, owner string, taskID, id int64) error {
	args := m.Called(ctx, owner, taskID, id)
	return args.Error(0)
}

type SchemaRepository struct {
	mock.Mock
}

func (m *SchemaRepository) HistoryTableExists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *SchemaRepository) ListVersions(ctx context.Context, maxCount int) ([]model.SchemaVersion, error) {
	args := m.Called(ctx, maxCount)
	return args.Get(0).([]model.SchemaVersion), args.Error(1)
}

type Prober struct {
	mock.Mock
}

func (m *Prober) Probe(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
