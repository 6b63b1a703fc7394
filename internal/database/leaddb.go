package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/chanakaprasadcw/Scraping/internal/model"
)

// dbFileName is the SQLite file created inside the database directory.
const dbFileName = "leadscan.db"

// LeadDB provides SQLite-based storage for search runs and their leads.
//
// Design decision: We store one database file covering all runs rather
// than a file per run. Re-running a query appends a new run; nothing is
// overwritten, so the database doubles as a search history.
type LeadDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures LeadDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging. Recommended.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a LeadDB under the given directory.
// If CreateIfNotExists is false and the database doesn't exist, an error
// is returned.
func Open(dbDir string, opts Options) (*LeadDB, error) {
	dbPath := filepath.Join(dbDir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw refuses to create
	// new files, mode=rwc allows it.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; more connections just contend.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	ldb := &LeadDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := ldb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return ldb, nil
}

// Close closes the database connection.
func (ldb *LeadDB) Close() error {
	return ldb.db.Close()
}

// Path returns the database file path.
func (ldb *LeadDB) Path() string {
	return ldb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (ldb *LeadDB) createTables() error {
	schema := `
	-- Runs record one aggregation session each
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		lead_count INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);

	-- Leads store the full record as JSON plus queryable columns
	CREATE TABLE IF NOT EXISTS leads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES runs(id),
		lead_key TEXT NOT NULL,
		name TEXT,
		company TEXT,
		lead_json TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_leads_run ON leads(run_id);
	CREATE INDEX IF NOT EXISTS idx_leads_key ON leads(lead_key);
	CREATE INDEX IF NOT EXISTS idx_leads_company ON leads(company);
	`

	_, err := ldb.db.ExecContext(context.Background(), schema)
	return err
}

// RunRecord describes one stored aggregation run.
type RunRecord struct {
	ID        int64
	Query     string
	Timestamp time.Time
	LeadCount int
}

// SaveRun stores one run and its leads in a single transaction and
// returns the run ID. The query is whatever input drove the run: the
// free-text query, or a description of the structured criteria.
func (ldb *LeadDB) SaveRun(ctx context.Context, query string, leads []*model.Lead) (int64, error) {
	tx, err := ldb.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO runs (query, lead_count) VALUES (?, ?)`,
		query, len(leads),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	for _, lead := range leads {
		leadJSON, err := json.Marshal(lead)
		if err != nil {
			return 0, fmt.Errorf("serialize lead: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO leads (run_id, lead_key, name, company, lead_json) VALUES (?, ?, ?, ?, ?)`,
			runID, lead.Key(), lead.Name, lead.Company, string(leadJSON),
		)
		if err != nil {
			return 0, fmt.Errorf("insert lead: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit run: %w", err)
	}

	return runID, nil
}

// ListRuns returns all stored runs, newest first.
func (ldb *LeadDB) ListRuns(ctx context.Context) ([]RunRecord, error) {
	rows, err := ldb.db.QueryContext(ctx,
		`SELECT id, query, timestamp, lead_count FROM runs ORDER BY timestamp DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var run RunRecord
		var timestamp string
		if err := rows.Scan(&run.ID, &run.Query, &timestamp, &run.LeadCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Timestamp = parseTimestamp(timestamp)
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// LeadsForRun returns the leads stored for one run in insertion order.
func (ldb *LeadDB) LeadsForRun(ctx context.Context, runID int64) ([]*model.Lead, error) {
	rows, err := ldb.db.QueryContext(ctx,
		`SELECT lead_json FROM leads WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("load leads: %w", err)
	}
	defer rows.Close()

	var leads []*model.Lead
	for rows.Next() {
		var leadJSON string
		if err := rows.Scan(&leadJSON); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}

		var lead model.Lead
		if err := json.Unmarshal([]byte(leadJSON), &lead); err != nil {
			return nil, fmt.Errorf("parse lead: %w", err)
		}
		leads = append(leads, &lead)
	}

	return leads, rows.Err()
}

// FindLeadsByCompany returns stored leads for a company across all runs,
// matched case-insensitively.
func (ldb *LeadDB) FindLeadsByCompany(ctx context.Context, company string) ([]*model.Lead, error) {
	rows, err := ldb.db.QueryContext(ctx,
		`SELECT lead_json FROM leads WHERE company = ? COLLATE NOCASE ORDER BY id`, company)
	if err != nil {
		return nil, fmt.Errorf("find leads: %w", err)
	}
	defer rows.Close()

	var leads []*model.Lead
	for rows.Next() {
		var leadJSON string
		if err := rows.Scan(&leadJSON); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}

		var lead model.Lead
		if err := json.Unmarshal([]byte(leadJSON), &lead); err != nil {
			return nil, fmt.Errorf("parse lead: %w", err)
		}
		leads = append(leads, &lead)
	}

	return leads, rows.Err()
}

// parseTimestamp parses SQLite timestamps, which vary in format by
// version and configuration. Unparseable values yield the zero time.
func parseTimestamp(value string) time.Time {
	formats := []string{
		"2006-01-02 15:04:05",
		time.RFC3339,
		"2006-01-02T15:04:05Z",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return t
		}
	}

	return time.Time{}
}
