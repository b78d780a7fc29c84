package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/stockwellness/stockwellness/internal/models"
)

// Entry is one recorded analysis run.
type Entry struct {
	ID             int64
	Symbol         string
	CompanyName    string
	Recommendation string
	Confidence     float64
	AnalyzedAt     time.Time
}

// Store keeps a sqlite-backed log of completed analyses.
type Store struct {
	db *sql.DB
}

// Open creates or opens the history database at the given path and makes
// sure the schema exists.
func Open(dbPath string) (*Store, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	query := `
	CREATE TABLE IF NOT EXISTS analyses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		symbol TEXT NOT NULL,
		company_name TEXT,
		recommendation TEXT,
		confidence REAL,
		analyzed_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("create analyses table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record stores the outcome of a completed analysis.
func (s *Store) Record(symbol string, res *models.AnalysisResult) error {
	company := ""
	if res.CompanyData != nil {
		company = res.CompanyData.Name
	}

	recommendation := ""
	confidence := 0.0
	if res.Analysis != nil {
		recommendation = res.Analysis.Recommendation
		confidence = res.Analysis.ConfidenceScore
	}

	_, err := s.db.Exec(
		`INSERT INTO analyses (symbol, company_name, recommendation, confidence) VALUES (?, ?, ?, ?)`,
		symbol, company, recommendation, confidence,
	)
	if err != nil {
		return fmt.Errorf("record analysis: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, symbol, company_name, recommendation, confidence, analyzed_at
		 FROM analyses ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Symbol, &e.CompanyName, &e.Recommendation, &e.Confidence, &e.AnalyzedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
