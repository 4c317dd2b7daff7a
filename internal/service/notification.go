package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/plm-api/internal/mailer"
	"github.com/BuzzLyutic/plm-api/internal/model"
	"github.com/BuzzLyutic/plm-api/internal/repo"
)

type NotificationService struct {
	tx        repo.Transactor
	tasks     repo.TaskRepository
	notes     repo.PersonalNoteRepository
	transport mailer.Transport
	sender    string
	logger    *zap.Logger
}

func NewNotificationService(
	tx repo.Transactor,
	tasks repo.TaskRepository,
	notes repo.PersonalNoteRepository,
	transport mailer.Transport,
	sender string,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		tx:        tx,
		tasks:     tasks,
		notes:     notes,
		transport: transport,
		sender:    sender,
		logger:    logger,
	}
}

// SendTaskSummary mails the task and its notes to the task's correspondence address.
func (s *NotificationService) SendTaskSummary(ctx context.Context, owner string, taskID int64) (model.Task, error) {
	var (
		task  model.Task
		notes []model.PersonalNote
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if task, err = s.tasks.Get(ctx, owner, taskID); err != nil {
			return err
		}
		notes, err = s.notes.ListByTask(ctx, owner, taskID)
		return err
	})
	if err != nil {
		return task, err
	}

	msg := ComposeTaskSummary(task, notes)
	msg.From = s.sender
	msg.To = task.CorrespondenceEmailAddress
	if err := s.transport.Send(ctx, msg); err != nil {
		return task, fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	s.logger.Info("task summary sent",
		zap.Int64("task_id", task.ID),
		zap.Int("notes", len(notes)),
	)
	return task, nil
}

// ComposeTaskSummary fills in the subject and body; the caller sets the addresses.
func ComposeTaskSummary(task model.Task, notes []model.PersonalNote) mailer.Message {
	var b strings.Builder
	b.WriteString("Personal Notes:\n")
	for _, n := range notes {
		fmt.Fprintf(&b, "\nPersonal Note Name: %s\n", n.Name)
		fmt.Fprintf(&b, "Personal Note Type: %s\n", n.Type)
		fmt.Fprintf(&b, "Personal Note Description: %s\n", n.Note)
	}
	return mailer.Message{
		Subject: "PLM Reminder: " + task.Name,
		Body:    b.String(),
	}
}
