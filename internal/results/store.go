// Package results persists scored E-DNA profiles in SQLite.
//
// The store is optional: scoring never depends on it. Each row keeps the
// full composite as JSON next to a few indexed columns used for history
// listings and statistics.
package results

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/answers"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/scoring"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// timeNow is a package-level var to allow test injection.
var timeNow = time.Now

// ExportVersion is stamped on every dump produced by Export.
const ExportVersion = "1"

// ErrNotFound is returned when no profile has the requested id.
var ErrNotFound = errors.New("profile not found")

// ─── Types ───────────────────────────────────────────────────────────────────

// Record is one stored profile.
type Record struct {
	ID                string          `json:"id"`
	Respondent        string          `json:"respondent"`
	CoreType          string          `json:"core_type"`
	Subtype           string          `json:"subtype"`
	AssessmentVersion string          `json:"assessment_version"`
	CompletedAt       string          `json:"completed_at"`
	TotalQuestions    int             `json:"total_questions"`
	Result            json.RawMessage `json:"result"`
	Answers           json.RawMessage `json:"answers,omitempty"`
	CreatedAt         string          `json:"created_at"`
}

// Composite decodes the stored scoring result.
func (r *Record) Composite() (*scoring.Composite, error) {
	var c scoring.Composite
	if err := json.Unmarshal(r.Result, &c); err != nil {
		return nil, fmt.Errorf("decoding profile %s: %w", r.ID, err)
	}
	return &c, nil
}

// Entry is the compact view of a profile used in history listings.
type Entry struct {
	ID          string `json:"id"`
	Respondent  string `json:"respondent"`
	CoreType    string `json:"core_type"`
	Subtype     string `json:"subtype"`
	CompletedAt string `json:"completed_at"`
}

// Stats holds aggregate counts over all stored profiles.
type Stats struct {
	TotalProfiles int            `json:"total_profiles"`
	Respondents   int            `json:"respondents"`
	ByCoreType    map[string]int `json:"by_core_type"`
	LastCompleted string         `json:"last_completed,omitempty"`
}

// ExportData is the full serializable dump of the store.
type ExportData struct {
	Version    string   `json:"version"`
	ExportedAt string   `json:"exported_at"`
	Profiles   []Record `json:"profiles"`
}

// ImportResult holds counts of imported records.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ─── Config ──────────────────────────────────────────────────────────────────

// Config holds results store configuration.
type Config struct {
	DataDir      string
	HistoryLimit int
}

// DefaultConfig returns the default configuration for the results store.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir:      filepath.Join(home, ".edna"),
		HistoryLimit: 20,
	}
}

// ─── Store ───────────────────────────────────────────────────────────────────

// Store is the SQLite-backed profile archive. It is safe for concurrent
// use.
type Store struct {
	db  *sql.DB
	cfg Config
}

// New opens (or creates) the profile database under cfg.DataDir.
//
// It creates the data directory if needed, opens SQLite with WAL mode,
// and runs migrations.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("results: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "profiles.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("results: open database: %w", err)
	}

	// One connection serialises writers; pragmas then apply to every
	// statement.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("results: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("results: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ─── Migrations ──────────────────────────────────────────────────────────────

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			id                 TEXT    PRIMARY KEY,
			respondent         TEXT    NOT NULL DEFAULT '',
			core_type          TEXT    NOT NULL,
			subtype            TEXT    NOT NULL,
			assessment_version TEXT    NOT NULL,
			completed_at       TEXT    NOT NULL,
			total_questions    INTEGER NOT NULL,
			result_json        TEXT    NOT NULL,
			answers_json       TEXT,
			created_at         TEXT    NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_profiles_respondent ON profiles(respondent, completed_at DESC);
		CREATE INDEX IF NOT EXISTS idx_profiles_core_type  ON profiles(core_type);
	`
	_, err := s.db.Exec(schema)
	return err
}

// ─── Profiles ────────────────────────────────────────────────────────────────

// Save stores c under a new id. all may be nil when the raw answers
// should not be kept.
func (s *Store) Save(respondent string, c *scoring.Composite, all []answers.Answer) (*Record, error) {
	result, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	var raw json.RawMessage
	if all != nil {
		if raw, err = json.Marshal(all); err != nil {
			return nil, fmt.Errorf("encoding answers: %w", err)
		}
	}

	rec := &Record{
		ID:                uuid.NewString(),
		Respondent:        respondent,
		CoreType:          string(c.Layer1.CoreType),
		Subtype:           c.Layer2.PrimarySubtype,
		AssessmentVersion: c.AssessmentVersion,
		CompletedAt:       formatTime(c.CompletedAt),
		TotalQuestions:    c.TotalQuestions,
		Result:            result,
		Answers:           raw,
		CreatedAt:         formatTime(timeNow()),
	}
	if err := s.insert(s.db, rec); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return rec, nil
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func (s *Store) insert(db execer, rec *Record) error {
	_, err := s.insertOrIgnore(db, "INSERT", rec)
	return err
}

func (s *Store) insertOrIgnore(db execer, verb string, rec *Record) (int64, error) {
	var answersJSON *string
	if len(rec.Answers) > 0 {
		v := string(rec.Answers)
		answersJSON = &v
	}
	res, err := db.Exec(verb+` INTO profiles
		(id, respondent, core_type, subtype, assessment_version, completed_at, total_questions, result_json, answers_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Respondent, rec.CoreType, rec.Subtype, rec.AssessmentVersion,
		rec.CompletedAt, rec.TotalQuestions, string(rec.Result), answersJSON, rec.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const recordColumns = `id, respondent, core_type, subtype, assessment_version,
	completed_at, total_questions, result_json, answers_json, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		rec         Record
		result      string
		answersJSON sql.NullString
	)
	if err := row.Scan(
		&rec.ID, &rec.Respondent, &rec.CoreType, &rec.Subtype, &rec.AssessmentVersion,
		&rec.CompletedAt, &rec.TotalQuestions, &result, &answersJSON, &rec.CreatedAt,
	); err != nil {
		return nil, err
	}
	rec.Result = json.RawMessage(result)
	if answersJSON.Valid {
		rec.Answers = json.RawMessage(answersJSON.String)
	}
	return &rec, nil
}

// Get returns the profile with id, or ErrNotFound.
func (s *Store) Get(id string) (*Record, error) {
	row := s.db.QueryRow("SELECT "+recordColumns+" FROM profiles WHERE id = ?", id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile %s: %w", id, err)
	}
	return rec, nil
}

// Recent lists the newest profiles first. An empty respondent matches
// everyone; a non-positive limit uses the configured history limit.
func (s *Store) Recent(respondent string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.cfg.HistoryLimit
	}
	if limit <= 0 {
		limit = DefaultConfig().HistoryLimit
	}

	query := "SELECT id, respondent, core_type, subtype, completed_at FROM profiles"
	args := []any{}
	if respondent != "" {
		query += " WHERE respondent = ?"
		args = append(args, respondent)
	}
	query += " ORDER BY completed_at DESC, created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Respondent, &e.CoreType, &e.Subtype, &e.CompletedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes the profile with id, or returns ErrNotFound.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec("DELETE FROM profiles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting profile %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// ─── Stats ───────────────────────────────────────────────────────────────────

// Stats returns aggregate profile statistics.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{ByCoreType: map[string]int{}}

	var last sql.NullString
	err := s.db.QueryRow(
		"SELECT COUNT(*), COUNT(DISTINCT NULLIF(respondent, '')), MAX(completed_at) FROM profiles",
	).Scan(&stats.TotalProfiles, &stats.Respondents, &last)
	if err != nil {
		return nil, fmt.Errorf("counting profiles: %w", err)
	}
	stats.LastCompleted = last.String

	rows, err := s.db.Query("SELECT core_type, COUNT(*) FROM profiles GROUP BY core_type")
	if err != nil {
		return nil, fmt.Errorf("grouping profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var (
			core string
			n    int
		)
		if err := rows.Scan(&core, &n); err != nil {
			return nil, err
		}
		stats.ByCoreType[core] = n
	}
	return stats, rows.Err()
}

// ─── Export / Import ─────────────────────────────────────────────────────────

// Export dumps every stored profile, oldest first.
func (s *Store) Export() (*ExportData, error) {
	data := &ExportData{
		Version:    ExportVersion,
		ExportedAt: formatTime(timeNow()),
		Profiles:   []Record{},
	}

	rows, err := s.db.Query("SELECT " + recordColumns + " FROM profiles ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("export profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		data.Profiles = append(data.Profiles, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return data, nil
}

// Import loads exported profiles. Profiles whose id already exists are
// skipped, so importing the same dump twice is harmless.
func (s *Store) Import(data *ExportData) (*ImportResult, error) {
	if data.Version != ExportVersion {
		return nil, fmt.Errorf("import: unsupported export version %q", data.Version)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("import: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result := &ImportResult{}
	for i := range data.Profiles {
		rec := &data.Profiles[i]
		if rec.ID == "" || len(rec.Result) == 0 {
			return nil, fmt.Errorf("import profile %d: missing id or result", i)
		}
		n, err := s.insertOrIgnore(tx, "INSERT OR IGNORE", rec)
		if err != nil {
			return nil, fmt.Errorf("import profile %s: %w", rec.ID, err)
		}
		if n == 0 {
			result.Skipped++
			continue
		}
		result.Imported++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("import: commit: %w", err)
	}
	return result, nil
}

// timeLayout has fixed-width fractions so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
