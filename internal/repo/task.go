package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/plm-api/internal/model"
)

const taskColumns = `id, name, status, type, user_id, correspondence_email_address,
	created_by, created_on, modified_by, modified_on`

type TaskRepo struct {
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{
		pool: pool,
	}
}

func scanTask(row pgx.Row) (model.Task, error) {
	var t model.Task
	err := row.Scan(
		&t.ID, &t.Name, &t.Status, &t.Type, &t.UserID, &t.CorrespondenceEmailAddress,
		&t.CreatedBy, &t.CreatedOn, &t.ModifiedBy, &t.ModifiedOn,
	)
	return t, err
}

func (r *TaskRepo) Get(ctx context.Context, owner string, id int64) (model.Task, error) {
	t, err := scanTask(conn(ctx, r.pool).QueryRow(ctx, `
		SELECT `+taskColumns+`
		FROM task
		WHERE user_id = $1 AND id = $2
	`, owner, id))
	return t, mapError(err)
}

func (r *TaskRepo) List(ctx context.Context, owner string, page model.PageParams) (model.Page[model.Task], error) {
	page = page.Normalize()
	db := conn(ctx, r.pool)

	result := model.Page[model.Task]{Items: []model.Task{}, Limit: page.Limit, Offset: page.Offset}
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM task WHERE user_id = $1`, owner).Scan(&result.Total); err != nil {
		return result, err
	}

	rows, err := db.Query(ctx, `
		SELECT `+taskColumns+`
		FROM task
		WHERE user_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`, owner, page.Limit, page.Offset)
	if err != nil {
		return result, err
	}
	defer rows.Close()

	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return result, err
		}
		result.Items = append(result.Items, t)
	}
	return result, rows.Err()
}

func (r *TaskRepo) NameExists(ctx context.Context, owner, name string) (bool, error) {
	var exists bool
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM task WHERE user_id = $1 AND name = $2)
	`, owner, name).Scan(&exists)
	return exists, err
}

func (r *TaskRepo) Insert(ctx context.Context, t model.Task) (model.Task, error) {
	created, err := scanTask(conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO task (name, status, type, user_id, correspondence_email_address, created_by, created_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+taskColumns,
		t.Name, string(t.Status), string(t.Type), t.UserID, t.CorrespondenceEmailAddress, t.CreatedBy, t.CreatedOn,
	))
	if err != nil {
		return t, mapError(err)
	}
	return created, nil
}

func (r *TaskRepo) Update(ctx context.Context, t model.Task) (model.Task, error) {
	updated, err := scanTask(conn(ctx, r.pool).QueryRow(ctx, `
		UPDATE task
		SET name = $3, status = $4, type = $5, modified_by = $6, modified_on = $7
		WHERE user_id = $1 AND id = $2
		RETURNING `+taskColumns,
		t.UserID, t.ID, t.Name, string(t.Status), string(t.Type), t.ModifiedBy, t.ModifiedOn,
	))
	if err != nil {
		return t, mapError(err)
	}
	return updated, nil
}

func (r *TaskRepo) Delete(ctx context.Context, owner string, id int64) error {
	cmd, err := conn(ctx, r.pool).Exec(ctx, "DELETE FROM task WHERE user_id = $1 AND id = $2", owner, id)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TaskRepo) HasPersonalNotes(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM personal_note WHERE task_id = $1)
	`, id).Scan(&exists)
	return exists, err
}
