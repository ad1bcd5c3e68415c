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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a new student. A duplicate ID number surfaces through the
// primary key constraint.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (id_number, first_name, last_name, year_level, gender, program_code, photo_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		student.IDNumber, student.FirstName, student.LastName,
		student.YearLevel, student.Gender, student.ProgramCode, student.PhotoPath)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentIDAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByIDNumber retrieves a student by ID number
func (r *StudentRepository) GetByIDNumber(ctx context.Context, idNumber string) (*models.Student, error) {
	query := `
		SELECT id_number, first_name, last_name, year_level, gender, program_code, photo_path
		FROM students
		WHERE id_number = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, idNumber).Scan(
		&student.IDNumber, &student.FirstName, &student.LastName,
		&student.YearLevel, &student.Gender, &student.ProgramCode, &student.PhotoPath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// Search returns one page of students matching the search request and exact
// filters, plus the total matching count. The list and count queries share
// the same filter clause and arguments.
func (r *StudentRepository) Search(ctx context.Context, params dto.ListParams, filters dto.StudentListFilters) ([]models.Student, int64, error) {
	filter := query.BuildSearch(params.SearchTerm, params.SearchBy, models.StudentSortFields)
	if filters.Gender != "" {
		filter.AndEq("gender", filters.Gender)
	}
	if filters.YearLevel != nil {
		filter.AndEq("year_level", *filters.YearLevel)
	}
	if filters.ProgramCode != "" {
		filter.AndEq("program_code", filters.ProgramCode)
	}

	var total int64
	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM students %s", filter.Clause())
	if err := r.db.QueryRow(ctx, countSQL, filter.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	listSQL := fmt.Sprintf(
		"SELECT id_number, first_name, last_name, year_level, gender, program_code, photo_path FROM students %s %s %s",
		filter.Clause(),
		query.BuildSort(params.SortBy, params.SortOrder, models.StudentSortFields),
		query.BuildPagination(params.PageSize, query.Offset(params.Page, params.PageSize)),
	)

	rows, err := r.db.Query(ctx, listSQL, filter.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("error searching students: %w", err)
	}
	defer rows.Close()

	students, err := scanStudents(rows)
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// FindByProgram retrieves all students enrolled in a program, in name order
func (r *StudentRepository) FindByProgram(ctx context.Context, programCode string) ([]models.Student, error) {
	query := `
		SELECT id_number, first_name, last_name, year_level, gender, program_code, photo_path
		FROM students
		WHERE program_code = $1
		ORDER BY last_name ASC, first_name ASC
	`

	rows, err := r.db.Query(ctx, query, programCode)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// Update rewrites a student row identified by its original ID number
func (r *StudentRepository) Update(ctx context.Context, origIDNumber string, student *models.Student) error {
	query := `
		UPDATE students
		SET id_number = $1, first_name = $2, last_name = $3, year_level = $4, gender = $5, program_code = $6, photo_path = $7
		WHERE id_number = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.IDNumber, student.FirstName, student.LastName,
		student.YearLevel, student.Gender, student.ProgramCode, student.PhotoPath,
		origIDNumber)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentIDAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student by ID number
func (r *StudentRepository) Delete(ctx context.Context, idNumber string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id_number = $1`, idNumber)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

func scanStudents(rows pgx.Rows) ([]models.Student, error) {
	students := []models.Student{}
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.IDNumber, &student.FirstName, &student.LastName,
			&student.YearLevel, &student.Gender, &student.ProgramCode, &student.PhotoPath); err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading students: %w", err)
	}

	return students, nil
}
