package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/xavierca1/greenapi-console/internal/entity"
)

// CredentialsKey is the single key holding the connection record.
const CredentialsKey = "greenApiConfig"

type CredentialsRepository struct {
	DB *sql.DB
}

func NewCredentialsRepository(db *sql.DB) *CredentialsRepository {
	return &CredentialsRepository{DB: db}
}

// Load treats a missing row, a storage failure, malformed JSON or an
// incomplete record all as "not configured".
func (r *CredentialsRepository) Load(ctx context.Context) (*entity.Credentials, bool) {
	var raw string
	err := r.DB.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = $1`, CredentialsKey).Scan(&raw)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("⚠️ Config store: failed to read %s: %v", CredentialsKey, err)
		}
		return nil, false
	}

	var c entity.Credentials
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		log.Printf("⚠️ Config store: malformed %s ignored: %v", CredentialsKey, err)
		return nil, false
	}

	if !c.Complete() {
		return nil, false
	}
	return &c, true
}

// Save replaces the whole record in one statement.
func (r *CredentialsRepository) Save(ctx context.Context, c entity.Credentials) error {
	value, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key)
		DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.DB.ExecContext(ctx, query, CredentialsKey, string(value)); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

func (r *CredentialsRepository) Clear(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM kv_store WHERE key = $1`, CredentialsKey); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// Ping is used by the health handler.
func (r *CredentialsRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}
