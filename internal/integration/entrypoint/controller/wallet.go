package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/usecase/wallet"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/middleware"
)

// WalletController handles wallet management endpoints.
type WalletController struct {
	createWalletUseCase *wallet.CreateWalletUseCase
	listWalletsUseCase  *wallet.ListWalletsUseCase
	getWalletUseCase    *wallet.GetWalletUseCase
	updateWalletUseCase *wallet.UpdateWalletUseCase
	deleteWalletUseCase *wallet.DeleteWalletUseCase
}

// NewWalletController creates a new wallet controller instance.
func NewWalletController(
	createWalletUseCase *wallet.CreateWalletUseCase,
	listWalletsUseCase *wallet.ListWalletsUseCase,
	getWalletUseCase *wallet.GetWalletUseCase,
	updateWalletUseCase *wallet.UpdateWalletUseCase,
	deleteWalletUseCase *wallet.DeleteWalletUseCase,
) *WalletController {
	return &WalletController{
		createWalletUseCase: createWalletUseCase,
		listWalletsUseCase:  listWalletsUseCase,
		getWalletUseCase:    getWalletUseCase,
		updateWalletUseCase: updateWalletUseCase,
		deleteWalletUseCase: deleteWalletUseCase,
	}
}

// Create handles POST /wallets requests.
func (c *WalletController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateWalletRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeWalletNameRequired),
		})
		return
	}

	input := wallet.CreateWalletInput{
		UserID:      userID,
		Name:        req.Name,
		ImageSource: req.Image,
	}

	output, err := c.createWalletUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWalletResponse(output.Wallet))
}

// List handles GET /wallets requests.
func (c *WalletController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listWalletsUseCase.Execute(ctx.Request.Context(), wallet.ListWalletsInput{UserID: userID})
	if err != nil {
		c.handleWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletListResponse(output))
}

// Get handles GET /wallets/:id requests.
func (c *WalletController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	walletID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid wallet ID",
			Code:  string(domainerror.ErrCodeWalletNotFound),
		})
		return
	}

	output, err := c.getWalletUseCase.Execute(ctx.Request.Context(), wallet.GetWalletInput{
		ID:     walletID,
		UserID: userID,
	})
	if err != nil {
		c.handleWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletResponse(output.Wallet))
}

// Update handles PATCH /wallets/:id requests.
func (c *WalletController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	walletID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid wallet ID",
			Code:  string(domainerror.ErrCodeWalletNotFound),
		})
		return
	}

	var req dto.UpdateWalletRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeWalletNameRequired),
		})
		return
	}

	input := wallet.UpdateWalletInput{
		ID:          walletID,
		UserID:      userID,
		Name:        req.Name,
		ImageSource: req.Image,
	}

	output, err := c.updateWalletUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletResponse(output.Wallet))
}

// Delete handles DELETE /wallets/:id requests.
func (c *WalletController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	walletID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid wallet ID",
			Code:  string(domainerror.ErrCodeWalletNotFound),
		})
		return
	}

	output, err := c.deleteWalletUseCase.Execute(ctx.Request.Context(), wallet.DeleteWalletInput{
		ID:     walletID,
		UserID: userID,
	})
	if err != nil {
		c.handleWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteWalletResponse{
		DeletedTransactions: output.DeletedTransactions,
	})
}

// handleWalletError handles wallet errors and returns appropriate HTTP responses.
func (c *WalletController) handleWalletError(ctx *gin.Context, err error) {
	var walletErr *domainerror.WalletError
	if errors.As(err, &walletErr) {
		statusCode := c.getStatusCodeForWalletError(walletErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: walletErr.Message,
			Code:  string(walletErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForWalletError maps wallet error codes to HTTP status codes.
func (c *WalletController) getStatusCodeForWalletError(code domainerror.WalletErrorCode) int {
	switch code {
	case domainerror.ErrCodeWalletNameRequired:
		return http.StatusBadRequest
	case domainerror.ErrCodeWalletNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedWallet:
		return http.StatusForbidden
	case domainerror.ErrCodeInsufficientBalance:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeWalletIconUploadFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
