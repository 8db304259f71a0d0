// package problemrepository contains the PostgreSQL implementation of the
// problem store. Problems and section links are written by the assessment
// CRUD service; this side only reads them.
package problemrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/core/ports/primary"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/domain"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/static/errs"
)

// ProblemRepository implements the ProblemRepository port with PostgreSQL
type ProblemRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// New creates a new PostgreSQL problem repository
func New(db *sqlx.DB, logger primary.Logger) *ProblemRepository {
	return &ProblemRepository{
		db:     db,
		logger: logger,
	}
}

type problemRow struct {
	ID               uuid.UUID `db:"id"`
	Title            string    `db:"title"`
	ExampleTestCases []byte    `db:"example_test_cases"`
	HiddenTestCases  []byte    `db:"hidden_test_cases"`
	DriverCode       []byte    `db:"driver_code"`
	StarterCode      []byte    `db:"starter_code"`
}

// GetProblem retrieves a problem by ID. Returns (nil, nil) when no row exists.
func (r *ProblemRepository) GetProblem(ctx context.Context, problemID uuid.UUID) (*domain.Problem, error) {
	query := `
		SELECT id, title, example_test_cases, hidden_test_cases, driver_code, starter_code
		FROM problems
		WHERE id = $1
	`

	var row problemRow
	if err := r.db.GetContext(ctx, &row, query, problemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get problem", "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}

	problem := &domain.Problem{
		ID:    row.ID,
		Title: row.Title,
	}
	if err := unmarshalColumn(row.ExampleTestCases, &problem.ExampleTestCases); err != nil {
		return nil, fmt.Errorf("failed to decode example test cases: %w", err)
	}
	if err := unmarshalColumn(row.HiddenTestCases, &problem.HiddenTestCases); err != nil {
		return nil, fmt.Errorf("failed to decode hidden test cases: %w", err)
	}
	if err := unmarshalColumn(row.DriverCode, &problem.DriverCode); err != nil {
		return nil, fmt.Errorf("failed to decode driver code: %w", err)
	}
	if err := unmarshalColumn(row.StarterCode, &problem.StarterCode); err != nil {
		return nil, fmt.Errorf("failed to decode starter code: %w", err)
	}

	return problem, nil
}

// GetTestCaseConfig retrieves the test-case override of a section-problem
// link. A link without an override yields (nil, nil).
func (r *ProblemRepository) GetTestCaseConfig(ctx context.Context, linkID uuid.UUID) (*domain.TestCaseConfig, error) {
	query := `
		SELECT test_case_config
		FROM section_problem_links
		WHERE id = $1
	`

	var raw []byte
	if err := r.db.GetContext(ctx, &raw, query, linkID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &errs.NotFoundError{Resource: "section problem link", ID: linkID.String()}
		}
		r.logger.Error("Failed to get test case config", "linkId", linkID, "error", err)
		return nil, fmt.Errorf("failed to get test case config: %w", err)
	}

	if len(raw) == 0 {
		return nil, nil
	}

	var cfg domain.TestCaseConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode test case config: %w", err)
	}
	return &cfg, nil
}

func unmarshalColumn(raw []byte, dest interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}
