// Package memory persists per-question outcomes in SQLite so the solver can
// see which question forms actually yield clues against this oracle.
package memory

// #region imports
import (
	"database/sql"
	"fmt"
	"math"
	"time"

	_ "modernc.org/sqlite"
)

// #endregion

// #region schema

const questionOutcomesSchema = `
CREATE TABLE IF NOT EXISTS question_outcomes (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    attempt_id     TEXT NOT NULL,
    level          INTEGER NOT NULL,
    phase          TEXT NOT NULL,
    question_kind  TEXT NOT NULL,
    question_text  TEXT NOT NULL,
    rephrased      INTEGER NOT NULL DEFAULT 0,
    clue_extracted INTEGER NOT NULL DEFAULT 0,
    accepted       INTEGER NOT NULL DEFAULT 0,
    created_at     TEXT NOT NULL
);
`

const questionOutcomesIndex = `
CREATE INDEX IF NOT EXISTS idx_question_outcomes_kind
ON question_outcomes(question_kind, phase);
`

// #endregion

// #region record

// OutcomeRecord is a single row for question_outcomes.
type OutcomeRecord struct {
	AttemptID     string
	Level         int
	Phase         string // "acquisition" | "backup"
	QuestionKind  string // "count" | "prefix" | "suffix" | "position" | "password"
	QuestionText  string
	Rephrased     bool
	ClueExtracted bool
	Accepted      bool
	CreatedAt     time.Time
}

// #endregion

// #region memory-struct

// OutcomeMemory wraps the question_outcomes table.
type OutcomeMemory struct {
	db *sql.DB
}

// Open opens (or creates) the outcome database at path.
func Open(path string) (*OutcomeMemory, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	return New(db)
}

// New initializes the question_outcomes table over an existing connection.
func New(db *sql.DB) (*OutcomeMemory, error) {
	if _, err := db.Exec(questionOutcomesSchema); err != nil {
		return nil, err
	}
	if _, err := db.Exec(questionOutcomesIndex); err != nil {
		return nil, err
	}
	return &OutcomeMemory{db: db}, nil
}

// Close closes the underlying database.
func (m *OutcomeMemory) Close() error {
	return m.db.Close()
}

// #endregion

// #region record-outcome

// Record persists a single question outcome row. Nil receiver is a no-op so
// the solver can run without a database.
func (m *OutcomeMemory) Record(rec OutcomeRecord) error {
	if m == nil {
		return nil
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := m.db.Exec(`
		INSERT INTO question_outcomes
		(attempt_id, level, phase, question_kind, question_text,
		 rephrased, clue_extracted, accepted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.AttemptID,
		rec.Level,
		rec.Phase,
		rec.QuestionKind,
		rec.QuestionText,
		boolInt(rec.Rephrased),
		boolInt(rec.ClueExtracted),
		boolInt(rec.Accepted),
		rec.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// MarkAccepted flags every row of an attempt once its guess was accepted.
func (m *OutcomeMemory) MarkAccepted(attemptID string) error {
	if m == nil {
		return nil
	}
	_, err := m.db.Exec(
		`UPDATE question_outcomes SET accepted = 1 WHERE attempt_id = ?`,
		attemptID,
	)
	return err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion

// #region success-rate

// SuccessRate returns the decay-weighted fraction of questions of one kind
// that extracted a clue, plus the raw sample count. Recent outcomes weigh
// more; the half-life is 7 days.
func (m *OutcomeMemory) SuccessRate(kind string) (float32, int, error) {
	if m == nil {
		return 0, 0, nil
	}
	rows, err := m.db.Query(`
		SELECT clue_extracted, created_at
		FROM question_outcomes
		WHERE question_kind = ?`,
		kind,
	)
	if err != nil {
		return 0, 0, err
	}
	defer rows.Close()

	now := time.Now()
	halfLife := 7.0 * 24.0 // hours

	var weightedSum, totalWeight float64
	count := 0
	for rows.Next() {
		var extracted int
		var createdAtStr string
		if err := rows.Scan(&extracted, &createdAtStr); err != nil {
			return 0, 0, err
		}
		createdAt, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			continue
		}
		weight := math.Exp(-now.Sub(createdAt).Hours() / halfLife)
		weightedSum += weight * float64(extracted)
		totalWeight += weight
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, 0, err
	}
	if totalWeight == 0 {
		return 0, count, nil
	}
	return float32(weightedSum / totalWeight), count, nil
}

// #endregion
