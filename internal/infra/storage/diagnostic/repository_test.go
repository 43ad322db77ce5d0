package diagnostic

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db, "diagnostics_results"), mock
}

func TestRepository_GetBySlug(t *testing.T) {
	repo, mock := newRepo(t)
	created := time.Date(2025, time.May, 9, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT slug, content, created_at FROM diagnostics_results WHERE slug = $1")).
		WithArgs("cuisine-lyon-42").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "content", "created_at"}).
			AddRow("cuisine-lyon-42", "Présence de blattes germaniques.", created))

	got, err := repo.GetBySlug(context.Background(), "cuisine-lyon-42")
	require.NoError(t, err)

	assert.Equal(t, "Présence de blattes germaniques.", got.Content)
	assert.Equal(t, created, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetBySlug_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"not found", sql.ErrNoRows, ErrDiagnosticNotFound},
		{"missing table", &pq.Error{Code: "42P01"}, ErrTableMissing},
		{"permission", &pq.Error{Code: "42501"}, ErrPermissionDenied},
		{"bad conn", &pq.Error{Code: "08006"}, ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			mock.ExpectQuery("FROM diagnostics_results").WillReturnError(tt.err)

			_, err := repo.GetBySlug(context.Background(), "x")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRepository_Exists(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT slug FROM diagnostics_results WHERE slug = $1 LIMIT 1")).
		WithArgs("a").
		WillReturnRows(sqlmock.NewRows([]string{"slug"}).AddRow("a"))
	mock.ExpectQuery("SELECT slug FROM diagnostics_results").
		WithArgs("b").
		WillReturnRows(sqlmock.NewRows([]string{"slug"}))

	found, err := repo.Exists(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Exists(context.Background(), "b")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_NotConfigured(t *testing.T) {
	repo := NewRepository(nil, "diagnostics_results")

	_, err := repo.GetBySlug(context.Background(), "a")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = repo.Exists(context.Background(), "a")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, repo.Ping(context.Background()), ErrNotConfigured)
}

func TestRepository_Ping(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT slug FROM diagnostics_results LIMIT 1")).
		WillReturnRows(sqlmock.NewRows([]string{"slug"}))

	assert.NoError(t, repo.Ping(context.Background()))
}
