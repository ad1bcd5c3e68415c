package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdelacruz/ssis-backend/internal/app/models"
	"github.com/jdelacruz/ssis-backend/internal/app/models/dto"
	"github.com/jdelacruz/ssis-backend/internal/app/repositories"
	"github.com/jdelacruz/ssis-backend/internal/pkg/apperrors"
	"github.com/jdelacruz/ssis-backend/internal/pkg/validation"
)

// CollegeService handles college-related operations
type CollegeService struct {
	collegeRepo *repositories.CollegeRepository
}

// NewCollegeService creates a new college service instance
func NewCollegeService(collegeRepo *repositories.CollegeRepository) *CollegeService {
	return &CollegeService{
		collegeRepo: collegeRepo,
	}
}

func validateCollegeCode(code string) error {
	if !validation.RequiredString(code) {
		return apperrors.NewValidationError("college code cannot be empty")
	}
	if !validation.MaxLen(code, validation.CodeMaxLength) {
		return apperrors.NewValidationError(
			fmt.Sprintf("college code cannot exceed %d characters", validation.CodeMaxLength))
	}
	return nil
}

func validateCollegeName(name string) error {
	if !validation.RequiredString(name) {
		return apperrors.NewValidationError("college name cannot be empty")
	}
	if !validation.MaxLen(name, validation.NameMaxLength) {
		return apperrors.NewValidationError(
			fmt.Sprintf("college name cannot exceed %d characters", validation.NameMaxLength))
	}
	return nil
}

// CreateCollege validates and creates a new college
func (s *CollegeService) CreateCollege(ctx context.Context, req dto.CreateCollegeRequest) (*models.College, error) {
	college := &models.College{
		Code: strings.TrimSpace(req.Code),
		Name: strings.TrimSpace(req.Name),
	}

	if err := validateCollegeCode(college.Code); err != nil {
		return nil, err
	}
	if err := validateCollegeName(college.Name); err != nil {
		return nil, err
	}

	if err := s.collegeRepo.Create(ctx, college); err != nil {
		return nil, err
	}

	return college, nil
}

// GetCollege retrieves a college by code
func (s *CollegeService) GetCollege(ctx context.Context, code string) (*models.College, error) {
	return s.collegeRepo.GetByCode(ctx, code)
}

// ListColleges returns one page of colleges matching the list parameters
func (s *CollegeService) ListColleges(ctx context.Context, params dto.ListParams) ([]models.College, int64, error) {
	return s.collegeRepo.Search(ctx, params)
}

// UpdateCollege applies a partial update to a college. Only present fields
// are re-validated.
func (s *CollegeService) UpdateCollege(ctx context.Context, code string, req dto.UpdateCollegeRequest) (*models.College, error) {
	college, err := s.collegeRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		newCode := strings.TrimSpace(*req.Code)
		if err := validateCollegeCode(newCode); err != nil {
			return nil, err
		}
		college.Code = newCode
	}
	if req.Name != nil {
		newName := strings.TrimSpace(*req.Name)
		if err := validateCollegeName(newName); err != nil {
			return nil, err
		}
		college.Name = newName
	}

	if err := s.collegeRepo.Update(ctx, code, college); err != nil {
		return nil, err
	}

	return college, nil
}

// DeleteCollege removes a college by code
func (s *CollegeService) DeleteCollege(ctx context.Context, code string) error {
	return s.collegeRepo.Delete(ctx, code)
}
