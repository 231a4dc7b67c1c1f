// Package storage provides SQLite-based persistence for named agent presets.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-duel/internal/config"
)

// ErrPresetNotFound is returned when a preset name has no record.
var ErrPresetNotFound = errors.New("storage: preset not found")

// Store manages the SQLite database connection for preset persistence.
type Store struct {
	db *sql.DB
}

// Preset is a named agent loadout.
type Preset struct {
	ID         int64
	Name       string
	FireRate   int // Milliseconds
	MoveSpeed  int
	SpellColor string
	BodyColor  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PresetFrom builds a preset from agent parameters.
func PresetFrom(name string, a config.AgentConfig) Preset {
	return Preset{
		Name:       name,
		FireRate:   a.FireRate,
		MoveSpeed:  a.MoveSpeed,
		SpellColor: a.SpellColor,
		BodyColor:  a.BodyColor,
	}
}

// AgentConfig returns the preset's agent parameters.
func (p Preset) AgentConfig() config.AgentConfig {
	return config.AgentConfig{
		FireRate:   p.FireRate,
		MoveSpeed:  p.MoveSpeed,
		SpellColor: p.SpellColor,
		BodyColor:  p.BodyColor,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS presets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			fire_rate INTEGER NOT NULL,
			move_speed INTEGER NOT NULL,
			spell_color TEXT NOT NULL,
			body_color TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreset inserts a preset or replaces the parameters of an existing
// preset with the same name.
func (s *Store) SavePreset(p Preset) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return errors.New("storage: preset name is empty")
	}

	_, err := s.db.Exec(
		`INSERT INTO presets (name, fire_rate, move_speed, spell_color, body_color)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   fire_rate = excluded.fire_rate,
		   move_speed = excluded.move_speed,
		   spell_color = excluded.spell_color,
		   body_color = excluded.body_color,
		   updated_at = CURRENT_TIMESTAMP`,
		p.Name, p.FireRate, p.MoveSpeed, p.SpellColor, p.BodyColor,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save preset %q: %w", p.Name, err)
	}
	return nil
}

// Preset retrieves a preset by name.
func (s *Store) Preset(name string) (Preset, error) {
	row := s.db.QueryRow(
		`SELECT id, name, fire_rate, move_speed, spell_color, body_color, created_at, updated_at
		 FROM presets
		 WHERE name = ?`,
		strings.TrimSpace(name),
	)

	p, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Preset{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	if err != nil {
		return Preset{}, fmt.Errorf("storage: cannot query preset: %w", err)
	}
	return p, nil
}

// Presets retrieves all presets ordered by name.
func (s *Store) Presets() ([]Preset, error) {
	rows, err := s.db.Query(
		`SELECT id, name, fire_rate, move_speed, spell_color, body_color, created_at, updated_at
		 FROM presets
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query presets: %w", err)
	}
	defer rows.Close()

	var presets []Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		presets = append(presets, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return presets, nil
}

// DeletePreset removes a preset by name.
func (s *Store) DeletePreset(name string) error {
	res, err := s.db.Exec("DELETE FROM presets WHERE name = ?", strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("storage: cannot delete preset: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete preset: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPreset(sc scanner) (Preset, error) {
	var p Preset
	var createdAt, updatedAt any
	err := sc.Scan(&p.ID, &p.Name, &p.FireRate, &p.MoveSpeed, &p.SpellColor, &p.BodyColor, &createdAt, &updatedAt)
	if err != nil {
		return Preset{}, err
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
