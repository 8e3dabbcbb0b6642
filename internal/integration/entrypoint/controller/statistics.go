package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wallet-tracker/backend/internal/application/usecase/statistics"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/middleware"
)

// StatisticsController handles statistics endpoints.
type StatisticsController struct {
	summarizeUseCase         *statistics.SummarizeUseCase
	categoryBreakdownUseCase *statistics.CategoryBreakdownUseCase
	walletBreakdownUseCase   *statistics.WalletBreakdownUseCase
}

// NewStatisticsController creates a new statistics controller instance.
func NewStatisticsController(
	summarizeUseCase *statistics.SummarizeUseCase,
	categoryBreakdownUseCase *statistics.CategoryBreakdownUseCase,
	walletBreakdownUseCase *statistics.WalletBreakdownUseCase,
) *StatisticsController {
	return &StatisticsController{
		summarizeUseCase:         summarizeUseCase,
		categoryBreakdownUseCase: categoryBreakdownUseCase,
		walletBreakdownUseCase:   walletBreakdownUseCase,
	}
}

// Summary handles GET /statistics requests.
func (c *StatisticsController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := statistics.SummarizeInput{
		UserID: userID,
		Period: statistics.Period(ctx.DefaultQuery("period", string(statistics.PeriodWeek))),
	}

	output, err := c.summarizeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatisticsSummaryResponse(output.Summary))
}

// CategoryBreakdown handles GET /statistics/categories requests.
func (c *StatisticsController) CategoryBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := statistics.CategoryBreakdownInput{
		UserID: userID,
		Period: statistics.Period(ctx.DefaultQuery("period", string(statistics.PeriodWeek))),
	}

	output, err := c.categoryBreakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// WalletBreakdown handles GET /statistics/wallets requests.
func (c *StatisticsController) WalletBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := statistics.WalletBreakdownInput{
		UserID: userID,
		Period: statistics.Period(ctx.DefaultQuery("period", string(statistics.PeriodWeek))),
	}

	output, err := c.walletBreakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletBreakdownResponse(output))
}

// handleStatisticsError handles statistics errors and returns appropriate HTTP responses.
func (c *StatisticsController) handleStatisticsError(ctx *gin.Context, err error) {
	var statsErr *domainerror.StatisticsError
	if errors.As(err, &statsErr) {
		statusCode := http.StatusInternalServerError
		if statsErr.Code == domainerror.ErrCodeInvalidPeriod {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: statsErr.Message,
			Code:  string(statsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
