package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"smart-task-scheduler/internal/event/repository"
	pkgLog "smart-task-scheduler/pkg/log"
)

type implRepository struct {
	l   pkgLog.Logger
	db  bun.IDB
	now func() int64
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a Repository on top of an open bun database.
func New(l pkgLog.Logger, db bun.IDB) repository.Repository {
	return &implRepository{
		l:   l,
		db:  db,
		now: unixNow,
	}
}

// Open opens (or creates) the SQLite database at path and ensures the schema.
// Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Open: %w", err)
	}
	if path == ":memory:" {
		sqldb.SetMaxOpenConns(1)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if err := CreateSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// CreateSchema creates the events table and its indexes if they do not exist.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	if err := db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewCreateTable().
			Model((*eventRow)(nil)).
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
		for _, idx := range []struct {
			name    string
			columns []string
		}{
			{"idx_events_owner_start", []string{"owner_id", "start_at"}},
			{"idx_events_segment_of", []string{"segment_of"}},
		} {
			if _, err := tx.NewCreateIndex().
				Model((*eventRow)(nil)).
				Index(idx.name).
				Column(idx.columns...).
				IfNotExists().
				Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("CreateSchema: %w", err)
	}
	return nil
}
