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

// StudentService handles student-related operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
	programRepo *repositories.ProgramRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, programRepo *repositories.ProgramRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		programRepo: programRepo,
	}
}

func validateStudentName(field, name string) error {
	if !validation.RequiredString(name) {
		return apperrors.NewValidationError(fmt.Sprintf("%s cannot be empty", field))
	}
	if !validation.MaxLen(name, validation.NameMaxLength) {
		return apperrors.NewValidationError(
			fmt.Sprintf("%s cannot exceed %d characters", field, validation.NameMaxLength))
	}
	return nil
}

func validateYearLevel(yearLevel int) error {
	if yearLevel < 1 || yearLevel > 5 {
		return apperrors.NewValidationError("year level must be between 1 and 5")
	}
	return nil
}

func validateGender(gender models.Gender) error {
	if !gender.IsValid() {
		return apperrors.NewValidationError("gender must be MALE, FEMALE or OTHER")
	}
	return nil
}

// checkProgramExists verifies the referenced program before a write
func (s *StudentService) checkProgramExists(ctx context.Context, programCode string) error {
	_, err := s.programRepo.GetByCode(ctx, programCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrProgramNotFound) {
			return apperrors.NewValidationError(
				fmt.Sprintf("program %q does not exist", programCode))
		}
		return fmt.Errorf("error checking program: %w", err)
	}
	return nil
}

// CreateStudent validates and creates a new student
func (s *StudentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	student := &models.Student{
		IDNumber:    strings.TrimSpace(req.IDNumber),
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		YearLevel:   req.YearLevel,
		Gender:      models.Gender(strings.ToUpper(strings.TrimSpace(req.Gender))),
		ProgramCode: strings.TrimSpace(req.ProgramCode),
		PhotoPath:   strings.TrimSpace(req.PhotoPath),
	}

	if !validation.ValidIDNumber(student.IDNumber) {
		return nil, apperrors.ErrInvalidStudentID
	}
	if err := validateStudentName("first name", student.FirstName); err != nil {
		return nil, err
	}
	if err := validateStudentName("last name", student.LastName); err != nil {
		return nil, err
	}
	if err := validateYearLevel(student.YearLevel); err != nil {
		return nil, err
	}
	if err := validateGender(student.Gender); err != nil {
		return nil, err
	}
	if err := s.checkProgramExists(ctx, student.ProgramCode); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetStudent retrieves a student by ID number
func (s *StudentService) GetStudent(ctx context.Context, idNumber string) (*models.Student, error) {
	return s.studentRepo.GetByIDNumber(ctx, idNumber)
}

// ListStudents returns one page of students matching the list parameters and
// exact filters
func (s *StudentService) ListStudents(ctx context.Context, params dto.ListParams, filters dto.StudentListFilters) ([]models.Student, int64, error) {
	if filters.Gender != "" {
		gender := models.Gender(strings.ToUpper(filters.Gender))
		if !gender.IsValid() {
			return nil, 0, apperrors.NewValidationError("gender must be MALE, FEMALE or OTHER")
		}
		filters.Gender = string(gender)
	}
	if filters.YearLevel != nil {
		if err := validateYearLevel(*filters.YearLevel); err != nil {
			return nil, 0, err
		}
	}
	return s.studentRepo.Search(ctx, params, filters)
}

// GetStudentsByProgram retrieves all students enrolled in a program
func (s *StudentService) GetStudentsByProgram(ctx context.Context, programCode string) ([]models.Student, error) {
	if _, err := s.programRepo.GetByCode(ctx, programCode); err != nil {
		return nil, err
	}
	return s.studentRepo.FindByProgram(ctx, programCode)
}

// UpdateStudent applies a partial update to a student. Only present fields
// are re-validated.
func (s *StudentService) UpdateStudent(ctx context.Context, idNumber string, req dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByIDNumber(ctx, idNumber)
	if err != nil {
		return nil, err
	}

	if req.IDNumber != nil {
		newID := strings.TrimSpace(*req.IDNumber)
		if !validation.ValidIDNumber(newID) {
			return nil, apperrors.ErrInvalidStudentID
		}
		student.IDNumber = newID
	}
	if req.FirstName != nil {
		newName := strings.TrimSpace(*req.FirstName)
		if err := validateStudentName("first name", newName); err != nil {
			return nil, err
		}
		student.FirstName = newName
	}
	if req.LastName != nil {
		newName := strings.TrimSpace(*req.LastName)
		if err := validateStudentName("last name", newName); err != nil {
			return nil, err
		}
		student.LastName = newName
	}
	if req.YearLevel != nil {
		if err := validateYearLevel(*req.YearLevel); err != nil {
			return nil, err
		}
		student.YearLevel = *req.YearLevel
	}
	if req.Gender != nil {
		newGender := models.Gender(strings.ToUpper(strings.TrimSpace(*req.Gender)))
		if err := validateGender(newGender); err != nil {
			return nil, err
		}
		student.Gender = newGender
	}
	if req.ProgramCode != nil {
		newProgram := strings.TrimSpace(*req.ProgramCode)
		if err := s.checkProgramExists(ctx, newProgram); err != nil {
			return nil, err
		}
		student.ProgramCode = newProgram
	}
	if req.PhotoPath != nil {
		student.PhotoPath = strings.TrimSpace(*req.PhotoPath)
	}

	if err := s.studentRepo.Update(ctx, idNumber, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent removes a student by ID number
func (s *StudentService) DeleteStudent(ctx context.Context, idNumber string) error {
	return s.studentRepo.Delete(ctx, idNumber)
}
