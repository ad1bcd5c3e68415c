package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jdelacruz/ssis-backend/internal/app/models"
	"github.com/jdelacruz/ssis-backend/internal/app/models/dto"
	"github.com/jdelacruz/ssis-backend/internal/pkg/apperrors"
	"github.com/jdelacruz/ssis-backend/internal/pkg/dberrors"
	"github.com/jdelacruz/ssis-backend/internal/pkg/query"
)

// ProgramRepository handles database operations for programs
type ProgramRepository struct {
	db *pgxpool.Pool
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{
		db: db,
	}
}

// Create inserts a new program. Duplicate codes surface through the unique
// constraint.
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	query := `
		INSERT INTO programs (program_code, program_name, college_code)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, program.Code, program.Name, program.CollegeCode)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrProgramAlreadyExists
		}
		return fmt.Errorf("error creating program: %w", err)
	}

	return nil
}

// GetByCode retrieves a program by its code
func (r *ProgramRepository) GetByCode(ctx context.Context, code string) (*models.Program, error) {
	query := `
		SELECT program_code, program_name, college_code
		FROM programs
		WHERE program_code = $1
	`

	var program models.Program
	err := r.db.QueryRow(ctx, query, code).Scan(&program.Code, &program.Name, &program.CollegeCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}

	return &program, nil
}

// Search returns one page of programs matching the search request plus the
// total matching count, with the same filter applied to both queries.
func (r *ProgramRepository) Search(ctx context.Context, params dto.ListParams) ([]models.Program, int64, error) {
	filter := query.BuildSearch(params.SearchTerm, params.SearchBy, models.ProgramSortFields)

	var total int64
	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM programs %s", filter.Clause())
	if err := r.db.QueryRow(ctx, countSQL, filter.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting programs: %w", err)
	}

	listSQL := fmt.Sprintf(
		"SELECT program_code, program_name, college_code FROM programs %s %s %s",
		filter.Clause(),
		query.BuildSort(params.SortBy, params.SortOrder, models.ProgramSortFields),
		query.BuildPagination(params.PageSize, query.Offset(params.Page, params.PageSize)),
	)

	rows, err := r.db.Query(ctx, listSQL, filter.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("error searching programs: %w", err)
	}
	defer rows.Close()

	programs := []models.Program{}
	for rows.Next() {
		var program models.Program
		if err := rows.Scan(&program.Code, &program.Name, &program.CollegeCode); err != nil {
			return nil, 0, fmt.Errorf("error scanning program: %w", err)
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error reading programs: %w", err)
	}

	return programs, total, nil
}

// GetByCollege retrieves all programs for a specific college
func (r *ProgramRepository) GetByCollege(ctx context.Context, collegeCode string) ([]models.Program, error) {
	query := `
		SELECT program_code, program_name, college_code
		FROM programs
		WHERE college_code = $1
		ORDER BY program_code
	`

	rows, err := r.db.Query(ctx, query, collegeCode)
	if err != nil {
		return nil, fmt.Errorf("error retrieving programs: %w", err)
	}
	defer rows.Close()

	programs := []models.Program{}
	for rows.Next() {
		var program models.Program
		if err := rows.Scan(&program.Code, &program.Name, &program.CollegeCode); err != nil {
			return nil, fmt.Errorf("error scanning program: %w", err)
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading programs: %w", err)
	}

	return programs, nil
}

// Update rewrites a program row identified by its original code
func (r *ProgramRepository) Update(ctx context.Context, origCode string, program *models.Program) error {
	query := `
		UPDATE programs
		SET program_code = $1, program_name = $2, college_code = $3
		WHERE program_code = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, program.Code, program.Name, program.CollegeCode, origCode)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrProgramAlreadyExists
		}
		return fmt.Errorf("error updating program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}

	return nil
}

// Delete removes a program by code. Enrolled students are left in place.
func (r *ProgramRepository) Delete(ctx context.Context, code string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM programs WHERE program_code = $1`, code)
	if err != nil {
		return fmt.Errorf("error deleting program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}

	return nil
}
