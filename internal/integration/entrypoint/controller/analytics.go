package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/khata-ledger/backend/internal/application/usecase/analytics"
	"github.com/khata-ledger/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles reporting endpoints.
type AnalyticsController struct {
	overviewUseCase *analytics.OverviewUseCase
	cropsUseCase    *analytics.CropAnalysisUseCase
	activityUseCase *analytics.RecentActivityUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	overviewUseCase *analytics.OverviewUseCase,
	cropsUseCase *analytics.CropAnalysisUseCase,
	activityUseCase *analytics.RecentActivityUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		overviewUseCase: overviewUseCase,
		cropsUseCase:    cropsUseCase,
		activityUseCase: activityUseCase,
	}
}

// Overview handles GET /analytics/overview requests. An unknown period
// falls back to lifetime.
func (c *AnalyticsController) Overview(ctx *gin.Context) {
	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), analytics.OverviewInput{
		Period: analytics.ParsePeriod(ctx.Query("period")),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute overview",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// Crops handles GET /analytics/crops requests.
func (c *AnalyticsController) Crops(ctx *gin.Context) {
	output, err := c.cropsUseCase.Execute(ctx.Request.Context(), analytics.CropAnalysisInput{
		Period: analytics.ParsePeriod(ctx.Query("period")),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute crop analysis",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCropAnalysisResponse(output))
}

// RecentActivity handles GET /analytics/recent requests.
func (c *AnalyticsController) RecentActivity(ctx *gin.Context) {
	input := analytics.RecentActivityInput{}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.activityUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load recent activity",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecentActivityResponse(output))
}
