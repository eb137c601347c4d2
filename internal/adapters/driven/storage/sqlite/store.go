package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.StateStore = (*Store)(nil)

// Store is the SQLite-backed wizard state store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.lawkit/data/state.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".lawkit", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "state.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// saveState stores the marshalled state blob for a document type.
func (s *Store) saveState(ctx context.Context, docType domain.DocType, state any) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshalling state: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO wizard_states (doc_type, state, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(doc_type) DO UPDATE SET
			state = excluded.state,
			updated_at = excluded.updated_at
	`, string(docType), string(blob), time.Now().UTC())

	if err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}

// loadState retrieves and unmarshals the state blob for a document type.
func (s *Store) loadState(ctx context.Context, docType domain.DocType, state any) error {
	row := s.db.QueryRowContext(ctx, `
		SELECT state FROM wizard_states WHERE doc_type = ?
	`, string(docType))

	var blob string
	if err := row.Scan(&blob); err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrNotFound
		}
		return fmt.Errorf("scanning state: %w", err)
	}

	if err := json.Unmarshal([]byte(blob), state); err != nil {
		return fmt.Errorf("unmarshaling state: %w", err)
	}
	return nil
}

// SavePolicyState stores or replaces the privacy wizard state.
func (s *Store) SavePolicyState(ctx context.Context, state *domain.PolicyState) error {
	return s.saveState(ctx, domain.DocTypePolicy, state)
}

// LoadPolicyState retrieves the privacy wizard state.
func (s *Store) LoadPolicyState(ctx context.Context) (*domain.PolicyState, error) {
	state := domain.NewPolicyState()
	if err := s.loadState(ctx, domain.DocTypePolicy, state); err != nil {
		return nil, err
	}
	if state.DetailInputs == nil {
		state.DetailInputs = map[string]domain.DetailInput{}
	}
	return state, nil
}

// SaveTermsState stores or replaces the terms wizard state.
func (s *Store) SaveTermsState(ctx context.Context, state *domain.TermsState) error {
	return s.saveState(ctx, domain.DocTypeTerms, state)
}

// LoadTermsState retrieves the terms wizard state.
func (s *Store) LoadTermsState(ctx context.Context) (*domain.TermsState, error) {
	state := domain.NewTermsState()
	if err := s.loadState(ctx, domain.DocTypeTerms, state); err != nil {
		return nil, err
	}
	if state.FeatureInputs == nil {
		state.FeatureInputs = map[string]domain.TermsFeatureInput{}
	}
	return state, nil
}

// Reset removes the stored state for a document type.
func (s *Store) Reset(ctx context.Context, docType domain.DocType) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM wizard_states WHERE doc_type = ?`, string(docType)); err != nil {
		return fmt.Errorf("resetting state: %w", err)
	}
	return nil
}
