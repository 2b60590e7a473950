package session

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/authpages/internal/client/migrations"
	"github.com/dmitrijs2005/authpages/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/authpages/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// savedAtKey records when the current token was stored (unix seconds).
const savedAtKey = "token_saved_at"

// SQLiteStore persists the token in the client database so it survives
// restarts, the way a browser keeps localStorage.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// OpenSQLiteStore opens (creating if needed) the database at dsn and
// migrates it.
func OpenSQLiteStore(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	// SQLite serialises writers; one connection also keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSQLiteStore(db), nil
}

// NewSQLiteStore wraps an already migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) Get(ctx context.Context) (string, error) {
	value, err := metadata.NewSQLiteRepository(s.db).Get(ctx, TokenKey)
	if err != nil {
		return "", err
	}
	if len(value) == 0 {
		return "", ErrNoToken
	}
	return string(value), nil
}

// SavedAt reports when the current token was stored. It fails with
// ErrNoToken whenever Get does.
func (s *SQLiteStore) SavedAt(ctx context.Context) (time.Time, error) {
	if _, err := s.Get(ctx); err != nil {
		return time.Time{}, err
	}
	value, err := metadata.NewSQLiteRepository(s.db).Get(ctx, savedAtKey)
	if err != nil {
		return time.Time{}, err
	}
	if value == nil {
		return time.Time{}, ErrNoToken
	}
	secs, err := strconv.ParseInt(string(value), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s: %w", savedAtKey, err)
	}
	return time.Unix(secs, 0), nil
}

func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	savedAt := strconv.FormatInt(s.now().Unix(), 10)

	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, TokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, savedAtKey, []byte(savedAt))
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, TokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, savedAtKey)
	})
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
