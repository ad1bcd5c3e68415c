package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jdelacruz/ssis-backend/internal/app/models/dto"
	"github.com/jdelacruz/ssis-backend/internal/app/services"
	"github.com/jdelacruz/ssis-backend/internal/middleware"
	"github.com/jdelacruz/ssis-backend/internal/pkg/helpers"
)

// ProgramController handles program endpoints
type ProgramController struct {
	programService *services.ProgramService
	studentService *services.StudentService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService *services.ProgramService, studentService *services.StudentService) *ProgramController {
	return &ProgramController{
		programService: programService,
		studentService: studentService,
	}
}

// ListPrograms returns a paginated program listing with optional search and sort
func (c *ProgramController) ListPrograms(ctx *gin.Context) {
	params := helpers.ParseListParams(ctx)

	programs, total, err := c.programService.ListPrograms(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	meta := helpers.NewPaginationMeta(total, params.Page, params.PageSize)
	ctx.JSON(http.StatusOK, dto.NewListResponse("", programs, meta))
}

// GetProgram retrieves one program by code
func (c *ProgramController) GetProgram(ctx *gin.Context) {
	program, err := c.programService.GetProgram(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", program))
}

// CreateProgram creates a new program
func (c *ProgramController) CreateProgram(ctx *gin.Context) {
	var req dto.CreateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	program, err := c.programService.CreateProgram(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Program created", program))
}

// UpdateProgram applies a partial update to a program
func (c *ProgramController) UpdateProgram(ctx *gin.Context) {
	var req dto.UpdateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	program, err := c.programService.UpdateProgram(ctx, ctx.Param("code"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Program updated", program))
}

// DeleteProgram removes a program
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	if err := c.programService.DeleteProgram(ctx, ctx.Param("code")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Program deleted", nil))
}

// ListProgramStudents returns all students enrolled in a program
func (c *ProgramController) ListProgramStudents(ctx *gin.Context) {
	students, err := c.studentService.GetStudentsByProgram(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", students))
}
