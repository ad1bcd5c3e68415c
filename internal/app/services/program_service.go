package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jdelacruz/ssis-backend/internal/app/models"
	"github.com/jdelacruz/ssis-backend/internal/app/models/dto"
	"github.com/jdelacruz/ssis-backend/internal/app/repositories"
	"github.com/jdelacruz/ssis-backend/internal/pkg/apperrors"
	"github.com/jdelacruz/ssis-backend/internal/pkg/validation"
)

// ProgramService handles program-related operations
type ProgramService struct {
	programRepo *repositories.ProgramRepository
	collegeRepo *repositories.CollegeRepository
}

// NewProgramService creates a new program service instance
func NewProgramService(programRepo *repositories.ProgramRepository, collegeRepo *repositories.CollegeRepository) *ProgramService {
	return &ProgramService{
		programRepo: programRepo,
		collegeRepo: collegeRepo,
	}
}

func validateProgramCode(code string) error {
	if !validation.RequiredString(code) {
		return apperrors.NewValidationError("program code cannot be empty")
	}
	if !validation.MaxLen(code, validation.CodeMaxLength) {
		return apperrors.NewValidationError(
			fmt.Sprintf("program code cannot exceed %d characters", validation.CodeMaxLength))
	}
	return nil
}

func validateProgramName(name string) error {
	if !validation.RequiredString(name) {
		return apperrors.NewValidationError("program name cannot be empty")
	}
	if !validation.MaxLen(name, validation.NameMaxLength) {
		return apperrors.NewValidationError(
			fmt.Sprintf("program name cannot exceed %d characters", validation.NameMaxLength))
	}
	return nil
}

// checkCollegeExists verifies the referenced college before a write
func (s *ProgramService) checkCollegeExists(ctx context.Context, collegeCode string) error {
	_, err := s.collegeRepo.GetByCode(ctx, collegeCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrCollegeNotFound) {
			return apperrors.NewValidationError(
				fmt.Sprintf("college %q does not exist", collegeCode))
		}
		return fmt.Errorf("error checking college: %w", err)
	}
	return nil
}

// CreateProgram validates and creates a new program
func (s *ProgramService) CreateProgram(ctx context.Context, req dto.CreateProgramRequest) (*models.Program, error) {
	program := &models.Program{
		Code:        strings.TrimSpace(req.Code),
		Name:        strings.TrimSpace(req.Name),
		CollegeCode: strings.TrimSpace(req.CollegeCode),
	}

	if err := validateProgramCode(program.Code); err != nil {
		return nil, err
	}
	if err := validateProgramName(program.Name); err != nil {
		return nil, err
	}
	if err := s.checkCollegeExists(ctx, program.CollegeCode); err != nil {
		return nil, err
	}

	if err := s.programRepo.Create(ctx, program); err != nil {
		return nil, err
	}

	return program, nil
}

// GetProgram retrieves a program by code
func (s *ProgramService) GetProgram(ctx context.Context, code string) (*models.Program, error) {
	return s.programRepo.GetByCode(ctx, code)
}

// ListPrograms returns one page of programs matching the list parameters
func (s *ProgramService) ListPrograms(ctx context.Context, params dto.ListParams) ([]models.Program, int64, error) {
	return s.programRepo.Search(ctx, params)
}

// GetProgramsByCollege retrieves all programs under a college
func (s *ProgramService) GetProgramsByCollege(ctx context.Context, collegeCode string) ([]models.Program, error) {
	if _, err := s.collegeRepo.GetByCode(ctx, collegeCode); err != nil {
		return nil, err
	}
	return s.programRepo.GetByCollege(ctx, collegeCode)
}

// UpdateProgram applies a partial update to a program. Only present fields
// are re-validated.
func (s *ProgramService) UpdateProgram(ctx context.Context, code string, req dto.UpdateProgramRequest) (*models.Program, error) {
	program, err := s.programRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		newCode := strings.TrimSpace(*req.Code)
		if err := validateProgramCode(newCode); err != nil {
			return nil, err
		}
		program.Code = newCode
	}
	if req.Name != nil {
		newName := strings.TrimSpace(*req.Name)
		if err := validateProgramName(newName); err != nil {
			return nil, err
		}
		program.Name = newName
	}
	if req.CollegeCode != nil {
		newCollege := strings.TrimSpace(*req.CollegeCode)
		if err := s.checkCollegeExists(ctx, newCollege); err != nil {
			return nil, err
		}
		program.CollegeCode = newCollege
	}

	if err := s.programRepo.Update(ctx, code, program); err != nil {
		return nil, err
	}

	return program, nil
}

// DeleteProgram removes a program by code
func (s *ProgramService) DeleteProgram(ctx context.Context, code string) error {
	return s.programRepo.Delete(ctx, code)
}
