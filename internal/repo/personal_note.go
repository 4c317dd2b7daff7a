package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/plm-api/internal/model"
)

const personalNoteColumns = `id, task_id, name, type, note, user_id, correspondence_email_address,
	created_by, created_on, modified_by, modified_on`

type PersonalNoteRepo struct {
	pool *pgxpool.Pool
}

func NewPersonalNoteRepo(pool *pgxpool.Pool) *PersonalNoteRepo {
	return &PersonalNoteRepo{pool: pool}
}

func scanPersonalNote(row pgx.Row) (model.PersonalNote, error) {
	var n model.PersonalNote
	err := row.Scan(
		&n.ID, &n.TaskID, &n.Name, &n.Type, &n.Note, &n.UserID, &n.CorrespondenceEmailAddress,
		&n.CreatedBy, &n.CreatedOn, &n.ModifiedBy, &n.ModifiedOn,
	)
	return n, err
}

func (r *PersonalNoteRepo) Get(ctx context.Context, owner string, taskID, id int64) (model.PersonalNote, error) {
	n, err := scanPersonalNote(conn(ctx, r.pool).QueryRow(ctx, `
		SELECT `+personalNoteColumns+`
		FROM personal_note
		WHERE user_id = $1 AND task_id = $2 AND id = $3
	`, owner, taskID, id))
	return n, mapError(err)
}

func (r *PersonalNoteRepo) List(ctx context.Context, owner string, taskID int64, page model.PageParams) (model.Page[model.PersonalNote], error) {
	page = page.Normalize()
	db := conn(ctx, r.pool)

	result := model.Page[model.PersonalNote]{Items: []model.PersonalNote{}, Limit: page.Limit, Offset: page.Offset}
	err := db.QueryRow(ctx, `
		SELECT COUNT(*) FROM personal_note WHERE user_id = $1 AND task_id = $2
	`, owner, taskID).Scan(&result.Total)
	if err != nil {
		return result, err
	}

	rows, err := db.Query(ctx, `
		SELECT `+personalNoteColumns+`
		FROM personal_note
		WHERE user_id = $1 AND task_id = $2
		ORDER BY id
		LIMIT $3 OFFSET $4
	`, owner, taskID, page.Limit, page.Offset)
	if err != nil {
		return result, err
	}

	result.Items, err = collectPersonalNotes(rows)
	return result, err
}

func (r *PersonalNoteRepo) ListByTask(ctx context.Context, owner string, taskID int64) ([]model.PersonalNote, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+personalNoteColumns+`
		FROM personal_note
		WHERE user_id = $1 AND task_id = $2
		ORDER BY id
	`, owner, taskID)
	if err != nil {
		return nil, err
	}
	return collectPersonalNotes(rows)
}

func collectPersonalNotes(rows pgx.Rows) ([]model.PersonalNote, error) {
	defer rows.Close()

	notes := []model.PersonalNote{}
	for rows.Next() {
		n, err := scanPersonalNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// NameExists checks the per-user namespace; note names are not scoped by task.
func (r *PersonalNoteRepo) NameExists(ctx context.Context, owner, name string) (bool, error) {
	var exists bool
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM personal_note WHERE user_id = $1 AND name = $2)
	`, owner, name).Scan(&exists)
	return exists, err
}

func (r *PersonalNoteRepo) Insert(ctx context.Context, n model.PersonalNote) (model.PersonalNote, error) {
	created, err := scanPersonalNote(conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO personal_note (task_id, name, type, note, user_id, correspondence_email_address, created_by, created_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+personalNoteColumns,
		n.TaskID, n.Name, string(n.Type), n.Note, n.UserID, n.CorrespondenceEmailAddress, n.CreatedBy, n.CreatedOn,
	))
	if err != nil {
		return n, mapError(err)
	}
	return created, nil
}

func (r *PersonalNoteRepo) Update(ctx context.Context, n model.PersonalNote) (model.PersonalNote, error) {
	updated, err := scanPersonalNote(conn(ctx, r.pool).QueryRow(ctx, `
		UPDATE personal_note
		SET name = $4, type = $5, note = $6, modified_by = $7, modified_on = $8
		WHERE user_id = $1 AND task_id = $2 AND id = $3
		RETURNING `+personalNoteColumns,
		n.UserID, n.TaskID, n.ID, n.Name, string(n.Type), n.Note, n.ModifiedBy, n.ModifiedOn,
	))
	if err != nil {
		return n, mapError(err)
	}
	return updated, nil
}

func (r *PersonalNoteRepo) Delete(ctx context.Context, owner string, taskID, id int64) error {
	cmd, err := conn(ctx, r.pool).Exec(ctx, `
		DELETE FROM personal_note WHERE user_id = $1 AND task_id = $2 AND id = $3
	`, owner, taskID, id)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
