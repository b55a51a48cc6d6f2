package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	portsrepo "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/repositories"
)

type PreferenceRepository struct {
	db *pgxpool.Pool
}

func NewPreferenceRepository(db *pgxpool.Pool) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Ensure PreferenceRepository implements portsrepo.PreferenceRepository
var _ portsrepo.PreferenceRepository = (*PreferenceRepository)(nil)

func (r *PreferenceRepository) FindDisplayPreference(ctx context.Context, ownerID string) (domain.DisplayPreference, error) {
	query := `
        SELECT preference
        FROM display_preferences
        WHERE owner_id = $1;
    `
	var stored string
	err := r.db.QueryRow(ctx, query, ownerID).Scan(&stored)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DisplayAuto, nil
		}
		return domain.DisplayAuto, fmt.Errorf("failed to find display preference: %w", err)
	}
	return domain.ParseDisplayPreference(stored), nil
}

func (r *PreferenceRepository) SaveDisplayPreference(ctx context.Context, ownerID string, pref domain.DisplayPreference) error {
	query := `
        INSERT INTO display_preferences (owner_id, preference, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (owner_id) DO UPDATE SET
            preference = EXCLUDED.preference,
            updated_at = EXCLUDED.updated_at;
    `
	_, err := r.db.Exec(ctx, query, ownerID, string(pref), time.Now())
	if err != nil {
		return fmt.Errorf("failed to save display preference: %w", err)
	}
	return nil
}
