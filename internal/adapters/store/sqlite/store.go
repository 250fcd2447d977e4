// Package sqlite provides a QuoteStore backed by SQLite via the Bun ORM.
// The pure-Go modernc driver keeps the binary cgo-free. A single connection
// serializes all statements, which together with per-operation transactions
// gives the linearizability the store contract requires.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/quotastic/quotastic/internal/domain"
)

// schema uses AUTOINCREMENT deliberately: SQLite then never reuses a rowid,
// which the store contract requires of quote ids.
const schema = `
CREATE TABLE IF NOT EXISTS quotes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT NOT NULL,
	author TEXT NOT NULL,
	views INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
)`

// quoteModel maps the quotes table for Bun queries.
type quoteModel struct {
	bun.BaseModel `bun:"table:quotes"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Text      string    `bun:"text"`
	Author    string    `bun:"author"`
	Views     int64     `bun:"views"`
	CreatedAt time.Time `bun:"created_at"`
}

func (m *quoteModel) toDomain() *domain.Quote {
	return &domain.Quote{
		ID:        m.ID,
		Text:      m.Text,
		Author:    m.Author,
		Views:     m.Views,
		CreatedAt: m.CreatedAt,
	}
}

// Store is the SQLite implementation of ports.QuoteStore.
type Store struct {
	db *bun.DB
}

// Open initializes the database connection and creates the schema if needed.
// The DSN is a modernc sqlite data source, e.g. "file:quotes.db" or
// "file::memory:?cache=shared".
func Open(ctx context.Context, dsn string) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// One connection: SQLite handles one writer at a time anyway, and a
	// single conn makes our transactions strictly serial.
	sqlDB.SetMaxOpenConns(1)

	db := bun.NewDB(sqlDB, sqlitedialect.New())

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating quotes schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a new quote. SQLite assigns the id; AUTOINCREMENT keeps ids
// monotonically increasing and never reused.
func (s *Store) Add(ctx context.Context, sub domain.Submission) (*domain.Quote, error) {
	model := &quoteModel{
		Text:      sub.Text,
		Author:    sub.Author,
		Views:     0,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.db.NewInsert().Model(model).Exec(ctx); err != nil {
		return nil, storeFault("insert failed", err)
	}

	return model.toDomain(), nil
}

// Random selects a uniformly random row and increments its view counter
// inside one transaction. If the chosen row vanished before the update
// (possible only across processes sharing the file), selection retries once.
func (s *Store) Random(ctx context.Context) (*domain.Quote, error) {
	quote, err := s.randomOnce(ctx)
	if errors.Is(err, errRowVanished) {
		quote, err = s.randomOnce(ctx)
		if errors.Is(err, errRowVanished) {
			return nil, storeFault("random select failed", err)
		}
	}

	return quote, err
}

// errRowVanished signals that the selected row was deleted before its view
// counter could be updated.
var errRowVanished = errors.New("selected quote no longer exists")

func (s *Store) randomOnce(ctx context.Context) (*domain.Quote, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storeFault("begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	var model quoteModel

	err = tx.NewSelect().Model(&model).OrderExpr("random()").Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeFault("random select failed", err)
	}

	res, err := tx.NewUpdate().
		Model((*quoteModel)(nil)).
		Set("views = views + 1").
		Where("id = ?", model.ID).
		Exec(ctx)
	if err != nil {
		return nil, storeFault("view increment failed", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, storeFault("view increment failed", err)
	}
	if rows == 0 {
		return nil, errRowVanished
	}

	if err := tx.Commit(); err != nil {
		return nil, storeFault("commit failed", err)
	}

	model.Views++

	return model.toDomain(), nil
}

// List returns all quotes in creation order. Ids are assigned monotonically,
// so ordering by id is ordering by creation time.
func (s *Store) List(ctx context.Context) ([]domain.Quote, error) {
	var models []quoteModel

	err := s.db.NewSelect().Model(&models).OrderExpr("id ASC").Scan(ctx)
	if err != nil {
		return nil, storeFault("list failed", err)
	}

	out := make([]domain.Quote, 0, len(models))
	for i := range models {
		out = append(out, *models[i].toDomain())
	}

	return out, nil
}

// Delete removes the quote if present and reports whether a row was deleted.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.NewDelete().
		Model((*quoteModel)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return false, storeFault("delete failed", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, storeFault("delete failed", err)
	}

	return rows > 0, nil
}

// Stats returns the live quote count and total views in a single query.
func (s *Store) Stats(ctx context.Context) (domain.StoreStats, error) {
	var stats domain.StoreStats

	row := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(views), 0) FROM quotes")
	if err := row.Scan(&stats.TotalQuotes, &stats.TotalViews); err != nil {
		return domain.StoreStats{}, storeFault("stats query failed", err)
	}

	return stats, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "quote-store"
}

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return storeFault("ping failed", err)
	}

	return nil
}

// storeFault maps a storage-layer error to the domain's fault class so
// callers can distinguish it from "no data".
func storeFault(msg string, err error) error {
	return domain.NewUnavailableError("quote-store", fmt.Sprintf("%s: %v", msg, err))
}
