package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/plm-api/internal/model"
)

// SchemaHistoryTable is populated by Flyway outside of this service.
const SchemaHistoryTable = "flyway_schema_history"

type SchemaRepo struct {
	pool *pgxpool.Pool
}

func NewSchemaRepo(pool *pgxpool.Pool) *SchemaRepo {
	return &SchemaRepo{pool: pool}
}

func (r *SchemaRepo) HistoryTableExists(ctx context.Context) (bool, error) {
	var exists bool
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)
	`, SchemaHistoryTable).Scan(&exists)
	return exists, err
}

// ListVersions returns the most recently applied migrations first.
func (r *SchemaRepo) ListVersions(ctx context.Context, maxCount int) ([]model.SchemaVersion, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT DISTINCT installed_rank, COALESCE(version, ''), description, type, script,
			COALESCE(checksum, 0), installed_by, installed_on
		FROM `+SchemaHistoryTable+`
		ORDER BY installed_rank DESC
		LIMIT $1
	`, maxCount)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	versions := []model.SchemaVersion{}
	for rows.Next() {
		var v model.SchemaVersion
		if err := rows.Scan(&v.InstalledRank, &v.Version, &v.Description, &v.Type, &v.Script,
			&v.Checksum, &v.InstalledBy, &v.InstalledOn); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}
