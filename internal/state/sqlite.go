package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

var errNotOpen = errors.New("database not opened")

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
	now    func() time.Time
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new SQLite store instance.
func NewSQLiteStore(logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteStore{
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Open opens the database at path and applies migrations. Use ":memory:"
// for an in-memory database.
func (s *SQLiteStore) Open(path string) error {
	dsn := ":memory:"
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
		dsn = "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// each connection to :memory: is its own database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path
	if err := s.Migrate(); err != nil {
		_ = db.Close()
		s.db = nil
		return err
	}
	s.logger.Debug("opened response cache", slog.String("path", path))
	return nil
}

// OpenDB uses an existing connection without migrating it.
func (s *SQLiteStore) OpenDB(db *sql.DB) {
	s.db = db
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the path passed to Open.
func (s *SQLiteStore) Path() string { return s.path }

func generateID() string {
	return uuid.New().String()
}

const timeLayout = time.RFC3339Nano

// Get returns the entry cached under key.
func (s *SQLiteStore) Get(ctx context.Context, key string) (*Entry, error) {
	if s.db == nil {
		return nil, errNotOpen
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, cache_key, realm_id, query_name, sql_text, response, created_at, updated_at
		   FROM responses WHERE cache_key = ?`, key)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache entry: %w", err)
	}
	return e, nil
}

// Put stores e, replacing the response of an existing entry with the same
// key. ID, Key and the timestamps are filled in when empty; on a replace e
// receives the stored row's ID and creation time.
func (s *SQLiteStore) Put(ctx context.Context, e *Entry) error {
	if s.db == nil {
		return errNotOpen
	}
	if e.Key == "" {
		e.Key = Key(e.SQL, e.RealmID)
	}
	if e.ID == "" {
		e.ID = generateID()
	}
	now := s.now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now

	s.logger.Debug("caching response", slog.String("key", e.Key), slog.Int("bytes", len(e.Response)))

	var created string
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO responses (id, cache_key, realm_id, query_name, sql_text, response, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (cache_key) DO UPDATE SET
		   query_name = excluded.query_name,
		   response   = excluded.response,
		   updated_at = excluded.updated_at
		 RETURNING id, created_at`,
		e.ID, e.Key, e.RealmID, e.QueryName, e.SQL, e.Response,
		e.CreatedAt.Format(timeLayout), e.UpdatedAt.Format(timeLayout),
	).Scan(&e.ID, &created)
	if err != nil {
		return fmt.Errorf("failed to put cache entry: %w", err)
	}
	if e.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return fmt.Errorf("failed to put cache entry: bad created_at: %w", err)
	}
	return nil
}

// List returns every entry, most recently updated first.
func (s *SQLiteStore) List(ctx context.Context) ([]*Entry, error) {
	if s.db == nil {
		return nil, errNotOpen
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, cache_key, realm_id, query_name, sql_text, response, created_at, updated_at
		   FROM responses ORDER BY updated_at DESC, cache_key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cache entries: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cache entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list cache entries: %w", err)
	}
	return out, nil
}

// Delete removes the entry cached under key.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if s.db == nil {
		return errNotOpen
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM responses WHERE cache_key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return nil
}

// Clear removes every entry and reports how many were removed.
func (s *SQLiteStore) Clear(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, errNotOpen
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM responses`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cache: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to clear cache: %w", err)
	}
	s.logger.Debug("cleared response cache", slog.Int64("entries", n))
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (*Entry, error) {
	var e Entry
	var created, updated string
	if err := sc.Scan(&e.ID, &e.Key, &e.RealmID, &e.QueryName, &e.SQL, &e.Response, &created, &updated); err != nil {
		return nil, err
	}
	var err error
	if e.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return nil, fmt.Errorf("bad created_at %q: %w", created, err)
	}
	if e.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
		return nil, fmt.Errorf("bad updated_at %q: %w", updated, err)
	}
	return &e, nil
}
