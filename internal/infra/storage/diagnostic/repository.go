package diagnostic

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/nuisibook-booking/internal/domain"
	"github.com/m04kA/nuisibook-booking/pkg/dbmetrics"
	"github.com/m04kA/nuisibook-booking/pkg/psqlbuilder"
)

// Repository читает результаты диагностик
type Repository struct {
	db    dbmetrics.DBExecutor
	table string
}

// NewRepository создает репозиторий. db == nil означает, что хранилище не настроено.
func NewRepository(db dbmetrics.DBExecutor, table string) *Repository {
	return &Repository{db: db, table: table}
}

// GetBySlug возвращает диагностику по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Diagnostic, error) {
	if r.db == nil {
		return nil, ErrNotConfigured
	}

	query, args, err := psqlbuilder.Select("slug", "content", "created_at").
		From(r.table).
		Where(squirrel.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	var (
		d         domain.Diagnostic
		createdAt sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&d.Slug, &d.Content, &createdAt)
	if err != nil {
		return nil, classify("GetBySlug - scan diagnostic", err)
	}
	d.CreatedAt = createdAt.Time

	return &d, nil
}

// Exists проверяет наличие диагностики, не читая содержимое
func (r *Repository) Exists(ctx context.Context, slug string) (bool, error) {
	if r.db == nil {
		return false, ErrNotConfigured
	}

	query, args, err := psqlbuilder.Select("slug").
		From(r.table).
		Where(squirrel.Eq{"slug": slug}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var found string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, classify("Exists", err)
	}

	return true, nil
}

// Ping проверяет доступность таблицы диагностик
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return ErrNotConfigured
	}

	query, args, err := psqlbuilder.Select("slug").
		From(r.table).
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Ping - build select query: %v", ErrBuildQuery, err)
	}

	var slug string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&slug)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return classify("Ping", err)
	}

	return nil
}
