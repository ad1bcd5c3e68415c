package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jdelacruz/ssis-backend/internal/app/models/dto"
	"github.com/jdelacruz/ssis-backend/internal/app/services"
	"github.com/jdelacruz/ssis-backend/internal/middleware"
	"github.com/jdelacruz/ssis-backend/internal/pkg/helpers"
)

// StudentController handles student endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// parseStudentFilters extracts the exact-match filters accepted by the
// student listing on top of free-text search
func parseStudentFilters(ctx *gin.Context) (dto.StudentListFilters, error) {
	filters := dto.StudentListFilters{
		Gender:      ctx.Query("gender"),
		ProgramCode: ctx.Query("program_code"),
	}

	if raw := ctx.Query("year_level"); raw != "" {
		yearLevel, err := strconv.Atoi(raw)
		if err != nil {
			return filters, err
		}
		filters.YearLevel = &yearLevel
	}

	return filters, nil
}

// ListStudents returns a paginated student listing with optional search, sort
// and exact filters
func (c *StudentController) ListStudents(ctx *gin.Context) {
	params := helpers.ParseListParams(ctx)

	filters, err := parseStudentFilters(ctx)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student filters")
		errorDetail = errorDetail.WithField("year_level").WithDetails("year_level must be a number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	students, total, err := c.studentService.ListStudents(ctx, params, filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	meta := helpers.NewPaginationMeta(total, params.Page, params.PageSize)
	ctx.JSON(http.StatusOK, dto.NewListResponse("", students, meta))
}

// GetStudent retrieves one student by ID number
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx, ctx.Param("id_number"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", student))
}

// CreateStudent creates a new student
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.CreateStudent(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Student created", student))
}

// UpdateStudent applies a partial update to a student
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, ctx.Param("id_number"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student updated", student))
}

// DeleteStudent removes a student
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("id_number")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student deleted", nil))
}
