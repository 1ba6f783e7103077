package infra_postgres_user

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/reelrank/core/internal/model"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type userDTO struct {
	ID          uuid.UUID      `db:"id"`
	DisplayName sql.NullString `db:"display_name"`
	PhotoURL    sql.NullString `db:"photo_url"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// Ensure inserts the user on first sight and refreshes profile fields after,
// returning the stored row.
func (d *Driver) Ensure(ctx context.Context, user model.User) (model.User, error) {
	var stored userDTO

	query := `
		INSERT INTO users (id, display_name, photo_url, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (id)
		DO UPDATE SET display_name = EXCLUDED.display_name,
		              photo_url = EXCLUDED.photo_url,
		              updated_at = now()
		RETURNING id, display_name, photo_url, created_at, updated_at
	`

	err := d.db.GetContext(ctx, &stored, query, user.ID, user.DisplayName, user.PhotoURL)
	if err != nil {
		return model.User{}, err
	}

	return model.User{
		ID:          stored.ID,
		DisplayName: stored.DisplayName.String,
		PhotoURL:    stored.PhotoURL.String,
	}, nil
}
