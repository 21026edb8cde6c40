// Package history keeps a local record of completed analyses and generated
// CVs in a sqlite file. It is a convenience log: failures to write are
// reported but must never block the network flows that feed it.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/careerbooster/cb-cli/internal/util"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// excerptLimit bounds how much analysis prose is kept per row.
const excerptLimit = 500

type Analysis struct {
	ID           string
	FileName     string
	AnalysisType string
	Excerpt      string
	CreatedAt    time.Time
}

type Generation struct {
	ID         string
	RecordID   string
	Template   string
	OutputPath string
	CreatedAt  time.Time
}

type Store struct {
	db *sql.DB
}

// DefaultPath places the history database next to the session file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}

	return filepath.Join(dir, "careerbooster", "history.db"), nil
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS analyses (
  id TEXT PRIMARY KEY,
  file_name TEXT NOT NULL,
  analysis_type TEXT NOT NULL,
  excerpt TEXT NOT NULL,
  created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS generations (
  id TEXT PRIMARY KEY,
  record_id TEXT NOT NULL,
  template TEXT NOT NULL,
  output_path TEXT NOT NULL,
  created_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create history tables: %w", err)
	}

	return nil
}

func (s *Store) RecordAnalysis(ctx context.Context, fileName, analysisType, result string) error {
	const stmt = `INSERT INTO analyses (id, file_name, analysis_type, excerpt, created_at) VALUES (?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, stmt,
		uuid.NewString(),
		fileName,
		analysisType,
		util.Truncate(result, excerptLimit),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record analysis: %w", err)
	}

	return nil
}

func (s *Store) RecordGeneration(ctx context.Context, recordID, template, outputPath string) error {
	const stmt = `INSERT INTO generations (id, record_id, template, output_path, created_at) VALUES (?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, stmt,
		uuid.NewString(),
		recordID,
		template,
		outputPath,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record generation: %w", err)
	}

	return nil
}

func (s *Store) RecentAnalyses(ctx context.Context, limit int) ([]Analysis, error) {
	const query = `SELECT id, file_name, analysis_type, excerpt, created_at FROM analyses ORDER BY created_at DESC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		var a Analysis
		var created string
		if err := rows.Scan(&a.ID, &a.FileName, &a.AnalysisType, &a.Excerpt, &created); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		a.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, a)
	}

	return out, rows.Err()
}

func (s *Store) RecentGenerations(ctx context.Context, limit int) ([]Generation, error) {
	const query = `SELECT id, record_id, template, output_path, created_at FROM generations ORDER BY created_at DESC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	defer rows.Close()

	var out []Generation
	for rows.Next() {
		var g Generation
		var created string
		if err := rows.Scan(&g.ID, &g.RecordID, &g.Template, &g.OutputPath, &created); err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		g.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, g)
	}

	return out, rows.Err()
}
