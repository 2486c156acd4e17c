package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/greenapi-console/internal/entity"
)

func newTestRepository(t *testing.T) *CredentialsRepository {
	t.Helper()

	db, err := Open("", filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewCredentialsRepository(db)
}

func TestCredentialsRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	saved := entity.Credentials{APIURL: "https://api.example.com", IDInstance: "111", APITokenInstance: "tok"}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, ok := repo.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, saved, *loaded)
}

func TestLoadWithoutRecord(t *testing.T) {
	repo := newTestRepository(t)

	loaded, ok := repo.Load(context.Background())

	assert.False(t, ok)
	assert.Nil(t, loaded)
}

func TestSaveReplacesWholeRecord(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, entity.Credentials{APIURL: "https://a", IDInstance: "1", APITokenInstance: "old"}))
	require.NoError(t, repo.Save(ctx, entity.Credentials{APIURL: "https://b", IDInstance: "2", APITokenInstance: "new"}))

	loaded, ok := repo.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, entity.Credentials{APIURL: "https://b", IDInstance: "2", APITokenInstance: "new"}, *loaded)

	var rows int
	require.NoError(t, repo.DB.QueryRow(`SELECT COUNT(*) FROM kv_store`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestLoadRejectsMalformedAndIncompleteRecords(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not json", `{"apiUrl":`},
		{"wrong shape", `["a","b"]`},
		{"missing token", `{"apiUrl":"https://a","idInstance":"1"}`},
		{"empty id", `{"apiUrl":"https://a","idInstance":"","apiTokenInstance":"t"}`},
		{"missing url", `{"idInstance":"1","apiTokenInstance":"t"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepository(t)
			_, err := repo.DB.Exec(`INSERT INTO kv_store (key, value) VALUES ($1, $2)`, CredentialsKey, tt.value)
			require.NoError(t, err)

			loaded, ok := repo.Load(context.Background())

			assert.False(t, ok)
			assert.Nil(t, loaded)
		})
	}
}

func TestClear(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, entity.Credentials{APIURL: "https://a", IDInstance: "1", APITokenInstance: "t"}))
	require.NoError(t, repo.Clear(ctx))

	_, ok := repo.Load(ctx)
	assert.False(t, ok)

	// clearing twice is fine
	assert.NoError(t, repo.Clear(ctx))
}

func TestMigrateIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)

	assert.NoError(t, Migrate(context.Background(), repo.DB))
	assert.NoError(t, repo.Ping(context.Background()))
}
