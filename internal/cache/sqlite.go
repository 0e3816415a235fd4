package cache

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS kv_cache (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	expires_at INTEGER NOT NULL -- unix nanos, 0 = never
)`

// SQLite keeps entries across restarts. Expired rows are skipped on read and
// removed lazily.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		path = "file::memory:?cache=shared"
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "cache dir")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite cache %s", path)
	}
	db.SetMaxOpenConns(1) // sqlite: один писатель
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create kv_cache")
	}
	return &SQLite{db: db, now: time.Now}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		val     []byte
		expires int64
	)
	err := s.db.QueryRowContext(ctx, `SELECT value, expires_at FROM kv_cache WHERE key = ?`, key).Scan(&val, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "cache get")
	}
	if expires != 0 && s.now().UnixNano() >= expires {
		_, _ = s.db.ExecContext(ctx, `DELETE FROM kv_cache WHERE key = ? AND expires_at = ?`, key, expires)
		return nil, false, nil
	}
	return val, true, nil
}

func (s *SQLite) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expires int64
	if ttl > 0 {
		expires = s.now().Add(ttl).UnixNano()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO kv_cache (key, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, value, expires)
	return errors.Wrap(err, "cache put")
}

func (s *SQLite) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	// не LIKE: он регистронезависим и требует экранировать '_'
	res, err := s.db.ExecContext(ctx, `DELETE FROM kv_cache WHERE substr(key, 1, length(?1)) = ?1`, prefix)
	if err != nil {
		return 0, errors.Wrap(err, "cache delete")
	}
	n, err := res.RowsAffected()
	return int(n), err
}
