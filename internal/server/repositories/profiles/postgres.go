package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/adminsettings/internal/common"
	"github.com/dmitrijs2005/adminsettings/internal/dbx"
	"github.com/dmitrijs2005/adminsettings/internal/server/models"
)

// PostgresRepository keeps profiles in the profiles table.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	query :=
		`SELECT user_id, first_name, last_name, updated_at FROM profiles
		 WHERE user_id = $1
		 `

	p := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.UserID, &p.FirstName, &p.LastName, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Profile) error {
	query :=
		`INSERT INTO profiles (user_id, first_name, last_name, updated_at)
		 VALUES ($1, $2, $3, $4)
		 `

	if _, err := r.db.ExecContext(ctx, query, p.UserID, p.FirstName, p.LastName, p.UpdatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Merge relies on COALESCE so that NULL parameters keep the stored value.
func (r *PostgresRepository) Merge(ctx context.Context, userID string, patch models.ProfilePatch) error {
	query :=
		`UPDATE profiles
		 SET first_name = COALESCE($2, first_name),
		     last_name  = COALESCE($3, last_name),
		     updated_at = $4
		 WHERE user_id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, userID, patch.FirstName, patch.LastName, patch.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.RowsAffectedOrNotFound(res, common.ErrorNotFound)
}
