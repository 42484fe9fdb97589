// Package consent stores anonymized assessments that users agreed to share.
package consent

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ppiankov/cardiorisk/internal/model"
)

// Store persists consent records.
type Store interface {
	Save(ctx context.Context, rec *model.ConsentRecord) error
	List(ctx context.Context, limit int) ([]model.ConsentRecord, error)
	Count(ctx context.Context) (int, error)
	Close() error
}

// SQLiteStore implements Store on a local SQLite file.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens or creates the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS consent (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		region TEXT NOT NULL,
		age REAL,
		gender REAL,
		ap_hi REAL,
		ap_lo REAL,
		cholesterol REAL,
		gluc REAL,
		bmi REAL,
		smoke REAL,
		alco REAL,
		active REAL,
		risk_percent REAL,
		category TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_consent_created_at ON consent(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// Save inserts rec and sets its ID. A zero CreatedAt is set to now.
func (s *SQLiteStore) Save(ctx context.Context, rec *model.ConsentRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO consent (
			created_at, region, age, gender, ap_hi, ap_lo, cholesterol, gluc,
			bmi, smoke, alco, active, risk_percent, category
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		rec.Region,
		nullable(rec.Age),
		nullable(rec.Gender),
		nullable(rec.Systolic),
		nullable(rec.Diastolic),
		nullable(rec.Cholesterol),
		nullable(rec.Glucose),
		nullable(rec.BMI),
		nullable(rec.Smoke),
		nullable(rec.Alcohol),
		nullable(rec.Active),
		nullable(rec.RiskPercent),
		rec.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to insert: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get insert ID: %w", err)
	}
	rec.ID = id
	return nil
}

// List returns the most recent records first. A non-positive limit returns
// every record.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]model.ConsentRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, region, age, gender, ap_hi, ap_lo, cholesterol,
			gluc, bmi, smoke, alco, active, risk_percent, category
		FROM consent
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	var out []model.ConsentRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Count returns the number of stored records.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM consent").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count: %w", err)
	}
	return n, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanRecord(rows *sql.Rows) (model.ConsentRecord, error) {
	var (
		rec     model.ConsentRecord
		created string
		nums    [11]sql.NullFloat64
	)
	dest := []any{&rec.ID, &created, &rec.Region}
	for i := range nums {
		dest = append(dest, &nums[i])
	}
	dest = append(dest, &rec.Category)
	if err := rows.Scan(dest...); err != nil {
		return rec, err
	}

	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return rec, fmt.Errorf("created_at %q: %w", created, err)
	}
	rec.CreatedAt = t

	fields := []*model.NullFloat{
		&rec.Age, &rec.Gender, &rec.Systolic, &rec.Diastolic, &rec.Cholesterol,
		&rec.Glucose, &rec.BMI, &rec.Smoke, &rec.Alcohol, &rec.Active, &rec.RiskPercent,
	}
	for i, f := range fields {
		if nums[i].Valid {
			*f = model.Float(nums[i].Float64)
		}
	}
	return rec, nil
}

func nullable(n model.NullFloat) sql.NullFloat64 {
	return sql.NullFloat64{Float64: n.Float64, Valid: n.Valid}
}
