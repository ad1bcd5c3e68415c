package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jdelacruz/ssis-backend/internal/app/models/dto"
)

// StatsRepository computes dashboard aggregates
type StatsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Overview gathers entity totals, per-college student counts and the gender
// breakdown in a single pass
func (r *StatsRepository) Overview(ctx context.Context) (*dto.StatsOverview, error) {
	overview := &dto.StatsOverview{
		StudentsPerCollege: []dto.CollegeStudentCount{},
		GenderBreakdown:    []dto.GenderCount{},
	}

	totalsSQL := `
		SELECT
			(SELECT COUNT(*) FROM colleges),
			(SELECT COUNT(*) FROM programs),
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM users)
	`
	err := r.db.QueryRow(ctx, totalsSQL).Scan(
		&overview.Colleges, &overview.Programs, &overview.Students, &overview.Users)
	if err != nil {
		return nil, fmt.Errorf("error counting entities: %w", err)
	}

	perCollege, err := r.studentsPerCollege(ctx)
	if err != nil {
		return nil, err
	}
	overview.StudentsPerCollege = perCollege

	byGender, err := r.genderBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	overview.GenderBreakdown = byGender

	return overview, nil
}

func (r *StatsRepository) studentsPerCollege(ctx context.Context) ([]dto.CollegeStudentCount, error) {
	sql, args, err := r.sb.
		Select("c.college_code", "c.college_name", "COUNT(s.id_number) AS students").
		From("colleges c").
		LeftJoin("programs p ON p.college_code = c.college_code").
		LeftJoin("students s ON s.program_code = p.program_code").
		GroupBy("c.college_code", "c.college_name").
		OrderBy("students DESC", "c.college_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building college stats query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving college stats: %w", err)
	}
	defer rows.Close()

	counts := []dto.CollegeStudentCount{}
	for rows.Next() {
		var c dto.CollegeStudentCount
		if err := rows.Scan(&c.CollegeCode, &c.CollegeName, &c.Students); err != nil {
			return nil, fmt.Errorf("error scanning college stats: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading college stats: %w", err)
	}

	return counts, nil
}

func (r *StatsRepository) genderBreakdown(ctx context.Context) ([]dto.GenderCount, error) {
	sql, args, err := r.sb.
		Select("gender", "COUNT(*) AS students").
		From("students").
		GroupBy("gender").
		OrderBy("gender ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building gender stats query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving gender stats: %w", err)
	}
	defer rows.Close()

	counts := []dto.GenderCount{}
	for rows.Next() {
		var g dto.GenderCount
		if err := rows.Scan(&g.Gender, &g.Students); err != nil {
			return nil, fmt.Errorf("error scanning gender stats: %w", err)
		}
		counts = append(counts, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading gender stats: %w", err)
	}

	return counts, nil
}
