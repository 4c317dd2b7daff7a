package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/plm-api/internal/mailer"
	"github.com/BuzzLyutic/plm-api/internal/model"
	"github.com/BuzzLyutic/plm-api/internal/repo"
	"github.com/BuzzLyutic/plm-api/internal/repo/repotest"
)

type fakeTransport struct {
	msg   mailer.Message
	err   error
	calls int
}

func (f *fakeTransport) Send(_ context.Context, m mailer.Message) error {
	f.calls++
	f.msg = m
	return f.err
}

func TestComposeTaskSummary(t *testing.T) {
	notes := []model.PersonalNote{
		{Name: "n1", Type: model.PersonalNoteTypeDescription, Note: "first"},
		{Name: "n2", Type: model.PersonalNoteTypeProgressReport, Note: "second"},
	}

	got := ComposeTaskSummary(model.Task{Name: "Task 1"}, notes)

	want := "Personal Notes:\n" +
		"\nPersonal Note Name: n1\nPersonal Note Type: Description\nPersonal Note Description: first\n" +
		"\nPersonal Note Name: n2\nPersonal Note Type: Progress Report\nPersonal Note Description: second\n"
	assert.Equal(t, "PLM Reminder: Task 1", got.Subject)
	assert.Equal(t, want, got.Body)
	assert.Empty(t, got.From)
	assert.Empty(t, got.To)
}

func TestNotificationService_SendTaskSummary(t *testing.T) {
	task := storedTask()
	task.CorrespondenceEmailAddress = "me@example.com"

	t.Run("sends to correspondence address", func(t *testing.T) {
		tasks, notes := new(repotest.TaskRepository), new(repotest.PersonalNoteRepository)
		tasks.On("Get", mock.Anything, testOwner, int64(1)).Return(task, nil)
		notes.On("ListByTask", mock.Anything, testOwner, int64(1)).Return([]model.PersonalNote{storedNote()}, nil)
		transport := &fakeTransport{}

		svc := NewNotificationService(&repotest.Transactor{}, tasks, notes, transport, "plm@example.com", zap.NewNop())
		sent, err := svc.SendTaskSummary(context.Background(), testOwner, 1)

		require.NoError(t, err)
		assert.Equal(t, "Task 1", sent.Name)
		assert.Equal(t, "plm@example.com", transport.msg.From)
		assert.Equal(t, "me@example.com", transport.msg.To)
		assert.Equal(t, "PLM Reminder: Task 1", transport.msg.Subject)
		assert.Contains(t, transport.msg.Body, "Personal Note Name: personal note 1")
	})

	t.Run("missing task sends nothing", func(t *testing.T) {
		tasks, notes := new(repotest.TaskRepository), new(repotest.PersonalNoteRepository)
		tasks.On("Get", mock.Anything, testOwner, int64(1)).Return(model.Task{}, repo.ErrNotFound)
		transport := &fakeTransport{}

		svc := NewNotificationService(&repotest.Transactor{}, tasks, notes, transport, "plm@example.com", zap.NewNop())
		_, err := svc.SendTaskSummary(context.Background(), testOwner, 1)

		assert.ErrorIs(t, err, repo.ErrNotFound)
		assert.Zero(t, transport.calls)
	})

	t.Run("transport failure is surfaced once", func(t *testing.T) {
		tasks, notes := new(repotest.TaskRepository), new(repotest.PersonalNoteRepository)
		tasks.On("Get", mock.Anything, testOwner, int64(1)).Return(task, nil)
		notes.On("ListByTask", mock.Anything, testOwner, int64(1)).Return([]model.PersonalNote{}, nil)
		transport := &fakeTransport{err: errors.New("535 authentication failed")}

		svc := NewNotificationService(&repotest.Transactor{}, tasks, notes, transport, "plm@example.com", zap.NewNop())
		_, err := svc.SendTaskSummary(context.Background(), testOwner, 1)

		assert.ErrorIs(t, err, ErrDelivery)
		assert.Contains(t, err.Error(), "535 authentication failed")
		assert.Equal(t, 1, transport.calls)
	})
}
