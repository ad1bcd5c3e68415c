package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jdelacruz/ssis-backend/internal/app/models/dto"
	"github.com/jdelacruz/ssis-backend/internal/app/services"
	"github.com/jdelacruz/ssis-backend/internal/middleware"
	"github.com/jdelacruz/ssis-backend/internal/pkg/helpers"
)

// CollegeController handles college endpoints
type CollegeController struct {
	collegeService *services.CollegeService
	programService *services.ProgramService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService *services.CollegeService, programService *services.ProgramService) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
		programService: programService,
	}
}

// ListColleges returns a paginated college listing with optional search and sort
func (c *CollegeController) ListColleges(ctx *gin.Context) {
	params := helpers.ParseListParams(ctx)

	colleges, total, err := c.collegeService.ListColleges(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	meta := helpers.NewPaginationMeta(total, params.Page, params.PageSize)
	ctx.JSON(http.StatusOK, dto.NewListResponse("", colleges, meta))
}

// GetCollege retrieves one college by code
func (c *CollegeController) GetCollege(ctx *gin.Context) {
	college, err := c.collegeService.GetCollege(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", college))
}

// CreateCollege creates a new college
func (c *CollegeController) CreateCollege(ctx *gin.Context) {
	var req dto.CreateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	college, err := c.collegeService.CreateCollege(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("College created", college))
}

// UpdateCollege applies a partial update to a college
func (c *CollegeController) UpdateCollege(ctx *gin.Context) {
	var req dto.UpdateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	college, err := c.collegeService.UpdateCollege(ctx, ctx.Param("code"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("College updated", college))
}

// DeleteCollege removes a college
func (c *CollegeController) DeleteCollege(ctx *gin.Context) {
	if err := c.collegeService.DeleteCollege(ctx, ctx.Param("code")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("College deleted", nil))
}

// ListCollegePrograms returns all programs under a college
func (c *CollegeController) ListCollegePrograms(ctx *gin.Context) {
	programs, err := c.programService.GetProgramsByCollege(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", programs))
}
