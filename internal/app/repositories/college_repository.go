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

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db *pgxpool.Pool
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{
		db: db,
	}
}

// Create inserts a new college. Duplicate codes surface through the unique
// constraint, not a separate existence check.
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	query := `
		INSERT INTO colleges (college_code, college_name)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, query, college.Code, college.Name)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCollegeAlreadyExists
		}
		return fmt.Errorf("error creating college: %w", err)
	}

	return nil
}

// GetByCode retrieves a college by its code
func (r *CollegeRepository) GetByCode(ctx context.Context, code string) (*models.College, error) {
	query := `
		SELECT college_code, college_name
		FROM colleges
		WHERE college_code = $1
	`

	var college models.College
	err := r.db.QueryRow(ctx, query, code).Scan(&college.Code, &college.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}

	return &college, nil
}

// Search returns one page of colleges matching the search request plus the
// total matching count. Both queries run with the identical filter clause and
// arguments.
func (r *CollegeRepository) Search(ctx context.Context, params dto.ListParams) ([]models.College, int64, error) {
	filter := query.BuildSearch(params.SearchTerm, params.SearchBy, models.CollegeSortFields)

	var total int64
	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM colleges %s", filter.Clause())
	if err := r.db.QueryRow(ctx, countSQL, filter.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting colleges: %w", err)
	}

	listSQL := fmt.Sprintf(
		"SELECT college_code, college_name FROM colleges %s %s %s",
		filter.Clause(),
		query.BuildSort(params.SortBy, params.SortOrder, models.CollegeSortFields),
		query.BuildPagination(params.PageSize, query.Offset(params.Page, params.PageSize)),
	)

	rows, err := r.db.Query(ctx, listSQL, filter.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("error searching colleges: %w", err)
	}
	defer rows.Close()

	colleges := []models.College{}
	for rows.Next() {
		var college models.College
		if err := rows.Scan(&college.Code, &college.Name); err != nil {
			return nil, 0, fmt.Errorf("error scanning college: %w", err)
		}
		colleges = append(colleges, college)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error reading colleges: %w", err)
	}

	return colleges, total, nil
}

// Update rewrites a college row identified by its original code. The code
// itself may change; duplicates surface through the unique constraint.
func (r *CollegeRepository) Update(ctx context.Context, origCode string, college *models.College) error {
	query := `
		UPDATE colleges
		SET college_code = $1, college_name = $2
		WHERE college_code = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, college.Code, college.Name, origCode)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCollegeAlreadyExists
		}
		return fmt.Errorf("error updating college: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}

	return nil
}

// Delete removes a college by code. No cascade handling: dependent programs
// are left in place.
func (r *CollegeRepository) Delete(ctx context.Context, code string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM colleges WHERE college_code = $1`, code)
	if err != nil {
		return fmt.Errorf("error deleting college: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}

	return nil
}
