package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jdelacruz/ssis-backend/internal/app/models/dto"
	"github.com/jdelacruz/ssis-backend/internal/app/services"
	"github.com/jdelacruz/ssis-backend/internal/middleware"
)

// StatsController handles dashboard aggregate endpoints
type StatsController struct {
	statsService *services.StatsService
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService *services.StatsService) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

// Overview returns entity totals, students per college and the gender breakdown
func (c *StatsController) Overview(ctx *gin.Context) {
	overview, err := c.statsService.Overview(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", overview))
}
