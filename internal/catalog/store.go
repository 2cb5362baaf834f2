package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
	applog "github.com/joeyjackson/fourier-series-drawer/internal/log"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

// Store persists user signals in a SQLite database.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// OpenStore opens (creating if needed) the database at path.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	l := applog.WithOperation(applog.WithComponent("catalog"), "store_open").With(slog.String("path", path))
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		l.Error("sqlite open failed", slog.Any("err", err))
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		l.Error("enable WAL failed", slog.Any("err", err))
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	const ddl = `CREATE TABLE IF NOT EXISTS signals (
		name        TEXT PRIMARY KEY,
		points      TEXT NOT NULL,
		samples     INTEGER NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	);`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	l.Debug("store ready")
	return &Store{db: db, log: applog.WithComponent("catalog")}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts or replaces s.
func (s *Store) Save(ctx context.Context, sig Signal) error {
	if sig.Name == "" || sig.Name == Random {
		return fmt.Errorf("save: invalid signal name %q", sig.Name)
	}
	if len(sig.Path) == 0 {
		return fmt.Errorf("save %q: %w", sig.Name, fourier.ErrEmptySignal)
	}
	points, err := json.Marshal(sig.Path)
	if err != nil {
		return fmt.Errorf("encode %q: %w", sig.Name, err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.ExecContext(ctx, `INSERT INTO signals (name, points, samples, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET points=excluded.points, samples=excluded.samples, updated_at=excluded.updated_at`,
		sig.Name, string(points), len(sig.Path), now, now)
	if err != nil {
		return fmt.Errorf("save %q: %w", sig.Name, err)
	}
	s.log.Info("signal saved", slog.String("name", sig.Name), slog.Int("samples", len(sig.Path)))
	return nil
}

// Load returns the saved signal called name.
func (s *Store) Load(ctx context.Context, name string) (Signal, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT points FROM signals WHERE name = ?`, name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return Signal{}, fmt.Errorf("%w: %q", ErrUnknownSignal, name)
	}
	if err != nil {
		return Signal{}, fmt.Errorf("load %q: %w", name, err)
	}
	sig := Signal{Name: name}
	if err := json.Unmarshal([]byte(raw), &sig.Path); err != nil {
		return Signal{}, fmt.Errorf("decode %q: %w", name, err)
	}
	return sig, nil
}

// List returns every saved signal, ordered by name.
func (s *Store) List(ctx context.Context) ([]Signal, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, points FROM signals ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list signals: %w", err)
	}
	defer rows.Close()

	var out []Signal
	for rows.Next() {
		var sig Signal
		var raw string
		if err := rows.Scan(&sig.Name, &raw); err != nil {
			return nil, fmt.Errorf("scan signal: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &sig.Path); err != nil {
			return nil, fmt.Errorf("decode %q: %w", sig.Name, err)
		}
		out = append(out, sig)
	}
	return out, rows.Err()
}

// Delete removes the saved signal called name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM signals WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownSignal, name)
	}
	return nil
}

// LoadInto adds every saved signal to c.
func (s *Store) LoadInto(ctx context.Context, c *Catalog) error {
	sigs, err := s.List(ctx)
	if err != nil {
		return err
	}
	for _, sig := range sigs {
		if err := c.Add(sig); err != nil {
			s.log.Warn("skipping saved signal", slog.String("name", sig.Name), slog.Any("err", err))
		}
	}
	return nil
}
