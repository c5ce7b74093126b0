package db

import (
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/dasdy/vkeymap/logging"
	"github.com/dasdy/vkeymap/model"
	"github.com/schollz/progressbar/v3"

	_ "github.com/mattn/go-sqlite3"
)

var ErrReadOnly = errors.New("storage is read-only")

var logCtx = logging.PackageCtx("db")

type SQLiteStorage struct {
	db       *sql.DB
	readonly bool
}

func InitDBStorage(conn *sql.DB) error {
	for _, stmt := range []string{
		`create table if not exists taps(x int, y int, col int, row int, key text, layout text, ts datetime);`,
		`create index if not exists taps_tsix on taps (ts ASC);`,
		`create table if not exists preferences(name text primary key, value text);`,
	} {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("could not init storage with %q: %w", stmt, err)
		}
	}

	return nil
}

// NewStorageFromConnection wraps an open connection, creating the tables unless readonly.
func NewStorageFromConnection(conn *sql.DB, readonly bool) (*SQLiteStorage, error) {
	// ":memory:" databases live in a single connection.
	conn.SetMaxOpenConns(1)

	if !readonly {
		if err := InitDBStorage(conn); err != nil {
			return nil, err
		}
	}

	return &SQLiteStorage{db: conn, readonly: readonly}, nil
}

func NewStorageFromPath(path string, readonly bool) (*SQLiteStorage, error) {
	dsn := path
	if readonly {
		dsn = "file:" + path + "?mode=ro"
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	storage, err := NewStorageFromConnection(conn, readonly)
	if err != nil {
		conn.Close()

		return nil, err
	}

	return storage, nil
}

func (s *SQLiteStorage) Store(tap *model.Tap) error {
	return s.storeAt(tap, time.Now().UTC())
}

func (s *SQLiteStorage) storeAt(tap *model.Tap, ts time.Time) error {
	if s.readonly {
		return ErrReadOnly
	}

	_, err := s.db.Exec(`insert into taps(x, y, col, row, key, layout, ts)
	    values(?, ?, ?, ?, ?, ?, ?)`,
		tap.X, tap.Y, tap.Col, tap.Row, tap.Key, tap.Layout, ts)
	if err != nil {
		return fmt.Errorf("could not store tap: %w", err)
	}

	return nil
}

// GatherAll counts taps per layout and cell.
func (s *SQLiteStorage) GatherAll() ([]model.MinimalTap, error) {
	rows, err := s.db.Query(
		`select layout, col, row, count(*) as cnt
        from taps
        group by layout, col, row
        order by layout, row, col`)
	if err != nil {
		return nil, fmt.Errorf("could not gather taps: %w", err)
	}

	defer rows.Close()

	result := make([]model.MinimalTap, 0)

	for rows.Next() {
		var item model.MinimalTap

		if err := rows.Scan(&item.Layout, &item.Col, &item.Row, &item.Count); err != nil {
			return nil, fmt.Errorf("could not read tap counts: %w", err)
		}

		result = append(result, item)
	}

	return result, rows.Err()
}

// AllIterator yields every tap in recording order. The query runs when iteration starts.
func (s *SQLiteStorage) AllIterator() (iter.Seq[model.TapWithTimestamp], error) {
	if err := s.db.Ping(); err != nil {
		return nil, fmt.Errorf("could not reach storage: %w", err)
	}

	return func(yield func(model.TapWithTimestamp) bool) {
		rows, err := s.db.Query(
			`select x, y, col, row, key, layout, ts
            from taps
            order by ts, rowid`)
		if err != nil {
			slog.ErrorContext(logCtx, "Could not query taps", "error", err)

			return
		}

		defer rows.Close()

		for rows.Next() {
			var item model.TapWithTimestamp

			err := rows.Scan(&item.X, &item.Y, &item.Col, &item.Row, &item.Key, &item.Layout, &item.Timestamp)
			if err != nil {
				slog.ErrorContext(logCtx, "Could not read tap", "error", err)

				return
			}

			if !yield(item) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			slog.ErrorContext(logCtx, "Could not read taps", "error", err)
		}
	}, nil
}

// GetPreference returns the named preference document and whether it exists.
func (s *SQLiteStorage) GetPreference(name string) (string, bool, error) {
	var value string

	err := s.db.QueryRow(`select value from preferences where name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("could not read preference %s: %w", name, err)
	}

	return value, true, nil
}

func (s *SQLiteStorage) SetPreference(name, value string) error {
	if s.readonly {
		return ErrReadOnly
	}

	_, err := s.db.Exec(`insert into preferences(name, value) values(?, ?)
	    on conflict(name) do update set value = excluded.value`, name, value)
	if err != nil {
		return fmt.Errorf("could not write preference %s: %w", name, err)
	}

	return nil
}

func (s *SQLiteStorage) Close() {
	if err := s.db.Close(); err != nil {
		slog.ErrorContext(logCtx, "Could not close storage", "error", err)
	}
}

// Merge copies the taps of every input into output, keeping their timestamps.
// Preferences are taken from the first input that has them.
func Merge(inputs []*SQLiteStorage, output *SQLiteStorage) error {
	bar := progressbar.Default(-1, "Merging taps...")

	for _, input := range inputs {
		taps, err := input.AllIterator()
		if err != nil {
			return err
		}

		// Taps are buffered: both storages may share the single connection of an in-memory db.
		items := make([]model.TapWithTimestamp, 0)
		for tap := range taps {
			items = append(items, tap)
		}

		for _, item := range items {
			if err := output.storeAt(&item.Tap, item.Timestamp); err != nil {
				return err
			}

			if err := bar.Add(1); err != nil {
				slog.ErrorContext(logCtx, "could not update progress bar", "error", err)
			}
		}

		if err := mergePreferences(input, output); err != nil {
			return err
		}
	}

	if err := bar.Finish(); err != nil {
		slog.ErrorContext(logCtx, "could not finish progress bar", "error", err)
	}

	return nil
}

// preferenceRows is the part of *sql.Rows read by scanPreferences.
type preferenceRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

func scanPreferences(rows preferenceRows) (map[string]string, error) {
	defer rows.Close()

	prefs := make(map[string]string)

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("could not read preferences: %w", err)
		}

		prefs[name] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read preferences: %w", err)
	}

	return prefs, nil
}

func mergePreferences(input, output *SQLiteStorage) error {
	rows, err := input.db.Query(`select name, value from preferences`)
	if err != nil {
		return fmt.Errorf("could not read preferences: %w", err)
	}

	prefs, err := scanPreferences(rows)
	if err != nil {
		return err
	}

	for name, value := range prefs {
		_, exists, err := output.GetPreference(name)
		if err != nil {
			return err
		}

		if exists {
			continue
		}

		if err := output.SetPreference(name, value); err != nil {
			return err
		}
	}

	return nil
}
