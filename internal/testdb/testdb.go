// Package testdb starts a Postgres for integration tests and applies the schema.
package testdb

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/plm-api/internal/migrate"
	"github.com/BuzzLyutic/plm-api/internal/model"
)

// Setup returns a migrated pool. TEST_DATABASE_URL wins over a container;
// the test is skipped when neither is available or -short is set.
func Setup(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	ctx := context.Background()

	connStr := os.Getenv("TEST_DATABASE_URL")
	terminate := func() {}

	if connStr == "" {
		pgContainer, err := startContainer(ctx)
		if err != nil {
			t.Skipf("postgres container unavailable: %v", err)
		}
		terminate = func() {
			if err := pgContainer.Terminate(ctx); err != nil {
				t.Errorf("Failed to terminate container: %v", err)
			}
		}

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			terminate()
			t.Fatalf("Failed to get connection string: %v", err)
		}
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		terminate()
		t.Fatalf("Failed to connect to database: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		terminate()
		t.Fatalf("Failed to ping database: %v", err)
	}

	if err := migrate.Run(ctx, pool, zap.NewNop(), migrate.Up); err != nil {
		pool.Close()
		terminate()
		t.Fatalf("Failed to migrate database: %v", err)
	}

	cleanup := func() {
		pool.Close()
		terminate()
	}
	return pool, cleanup
}

func startContainer(ctx context.Context) (c *postgres.PostgresContainer, err error) {
	// testcontainers panics when no docker host can be found.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%v", p)
		}
	}()

	return postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("plm"),
		postgres.WithUsername("plm"),
		postgres.WithPassword("plm"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
}

// TruncateTables empties every table this service writes to.
func TruncateTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(), "TRUNCATE personal_note, task RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// SeedTask inserts a task directly, bypassing validation.
func SeedTask(t *testing.T, pool *pgxpool.Pool, owner, name string) model.Task {
	t.Helper()

	task := model.Task{
		Name:                       name,
		Status:                     model.TaskStatusToDo,
		Type:                       model.TaskTypeWork,
		UserID:                     owner,
		CorrespondenceEmailAddress: "user@email.com",
	}
	err := pool.QueryRow(context.Background(), `
		INSERT INTO task (name, status, type, user_id, correspondence_email_address, created_by, created_on)
		VALUES ($1, $2, $3, $4, $5, 'seed', now())
		RETURNING id, created_by, created_on
	`, task.Name, string(task.Status), string(task.Type), task.UserID, task.CorrespondenceEmailAddress).
		Scan(&task.ID, &task.CreatedBy, &task.CreatedOn)
	if err != nil {
		t.Fatalf("Failed to seed task: %v", err)
	}
	return task
}

// SeedPersonalNote inserts a note under taskID.
func SeedPersonalNote(t *testing.T, pool *pgxpool.Pool, owner string, taskID int64, name string) model.PersonalNote {
	t.Helper()

	note := model.PersonalNote{
		TaskID:                     taskID,
		Name:                       name,
		Type:                       model.PersonalNoteTypeObservations,
		Note:                       "seeded note",
		UserID:                     owner,
		CorrespondenceEmailAddress: "user@email.com",
	}
	err := pool.QueryRow(context.Background(), `
		INSERT INTO personal_note (task_id, name, type, note, user_id, correspondence_email_address, created_by, created_on)
		VALUES ($1, $2, $3, $4, $5, $6, 'seed', now())
		RETURNING id, created_by, created_on
	`, note.TaskID, note.Name, string(note.Type), note.Note, note.UserID, note.CorrespondenceEmailAddress).
		Scan(&note.ID, &note.CreatedBy, &note.CreatedOn)
	if err != nil {
		t.Fatalf("Failed to seed personal note: %v", err)
	}
	return note
}
