package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"

	"homzen/internal/models"
	"homzen/internal/queries"
	"homzen/internal/storage"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	driverName      = "postgres"
	uniqueViolation = "23505"
)

//go:embed schema.sql
var schema string

type Storage struct {
	Db *sqlx.DB
}

var _ storage.Database = (*Storage)(nil)

func New(ctx context.Context, dsn string) (*Storage, error) {
	database, err := sqlx.ConnectContext(ctx, driverName, dsn)
	if err != nil {
		return nil, err
	}

	return &Storage{Db: database}, nil
}

// Migrate creates the tables and unique constraints if they do not exist yet.
func (s *Storage) Migrate(ctx context.Context) error {
	_, err := s.Db.ExecContext(ctx, schema)
	return err
}

func (s *Storage) Close() error {
	return s.Db.Close()
}

func (s *Storage) insert(ctx context.Context, table string, id string, value interface{}) (models.InsertResult, error) {
	query, args, err := queries.Insert(table, value)
	if err != nil {
		return models.InsertResult{}, err
	}

	if _, err := s.Db.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.InsertResult{}, storage.ErrAlreadyExists
		}
		return models.InsertResult{}, err
	}

	return models.InsertResult{Acknowledged: true, InsertedId: id}, nil
}

// update reports the affected row count as both matched and modified;
// postgres does not distinguish a no-op write from a change.
func (s *Storage) update(ctx context.Context, query string, args ...interface{}) (models.UpdateResult, error) {
	res, err := s.Db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.UpdateResult{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.UpdateResult{}, err
	}

	return models.UpdateResult{Acknowledged: true, MatchedCount: affected, ModifiedCount: affected}, nil
}

func (s *Storage) delete(ctx context.Context, query string, args ...interface{}) (models.DeleteResult, error) {
	res, err := s.Db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.DeleteResult{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.DeleteResult{}, err
	}

	return models.DeleteResult{Acknowledged: true, DeletedCount: affected}, nil
}

func selectMany[T any](ctx context.Context, db *sqlx.DB, query string, args ...interface{}) ([]T, error) {
	items := []T{}
	if err := db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}

	return items, nil
}

func selectOne[T any](ctx context.Context, db *sqlx.DB, query string, args ...interface{}) (T, error) {
	var item T

	err := db.GetContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return item, storage.ErrNotFound
	}

	return item, err
}
