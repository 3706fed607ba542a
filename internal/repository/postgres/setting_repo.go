package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lengolf/internal/domain"
	"lengolf/internal/port"
)

type settingRepo struct {
	db *sqlx.DB
}

// NewSettingRepo creates a new PostgreSQL-backed SettingRepository.
func NewSettingRepo(db *sqlx.DB) port.SettingRepository {
	return &settingRepo{db: db}
}

func (r *settingRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = $1", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("settingRepo.Get: %w", err)
	}
	return value, nil
}

func (r *settingRepo) GetAll(ctx context.Context) (map[string]string, error) {
	var rows []domain.Setting
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM settings ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("settingRepo.GetAll: %w", err)
	}
	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}

func (r *settingRepo) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("settingRepo.Set: %w", err)
	}
	return nil
}
