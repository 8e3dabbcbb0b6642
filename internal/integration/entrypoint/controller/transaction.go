package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/usecase/transaction"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/middleware"
)

// dateLayout is the wire format for transaction dates.
const dateLayout = "2006-01-02"

// TransactionController handles transaction management endpoints.
type TransactionController struct {
	createTransactionUseCase *transaction.CreateTransactionUseCase
	listTransactionsUseCase  *transaction.ListTransactionsUseCase
	updateTransactionUseCase *transaction.UpdateTransactionUseCase
	deleteTransactionUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createTransactionUseCase *transaction.CreateTransactionUseCase,
	listTransactionsUseCase *transaction.ListTransactionsUseCase,
	updateTransactionUseCase *transaction.UpdateTransactionUseCase,
	deleteTransactionUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		createTransactionUseCase: createTransactionUseCase,
		listTransactionsUseCase:  listTransactionsUseCase,
		updateTransactionUseCase: updateTransactionUseCase,
		deleteTransactionUseCase: deleteTransactionUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	walletID, err := uuid.Parse(req.WalletID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid wallet ID",
			Code:  string(domainerror.ErrCodeMissingWallet),
		})
		return
	}

	date := time.Now()
	if req.Date != "" {
		date, err = time.Parse(dateLayout, req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingTransactionFields),
			})
			return
		}
	}

	input := transaction.CreateTransactionInput{
		UserID:      userID,
		WalletID:    walletID,
		Type:        entity.TransactionType(req.Type),
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
		Date:        date,
		Description: req.Description,
		ImageSource: req.Image,
	}

	output, err := c.createTransactionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := transaction.ListTransactionsInput{UserID: userID}

	if raw := ctx.Query("wallet_id"); raw != "" {
		walletID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid wallet ID",
				Code:  string(domainerror.ErrCodeMissingWallet),
			})
			return
		}
		input.WalletID = &walletID
	}

	if raw := ctx.Query("type"); raw != "" {
		transactionType := entity.TransactionType(raw)
		input.Type = &transactionType
	}

	if raw := ctx.Query("start_date"); raw != "" {
		startDate, err := time.Parse(dateLayout, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingTransactionFields),
			})
			return
		}
		input.StartDate = &startDate
	}

	if raw := ctx.Query("end_date"); raw != "" {
		endDate, err := time.Parse(dateLayout, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingTransactionFields),
			})
			return
		}
		input.EndDate = &endDate
	}

	if raw := ctx.Query("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			input.Page = page
		}
	}
	if raw := ctx.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.listTransactionsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		ID:          transactionID,
		UserID:      userID,
		Category:    req.Category,
		Description: req.Description,
		ImageSource: req.Image,
	}

	if req.WalletID != nil {
		walletID, err := uuid.Parse(*req.WalletID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid wallet ID",
				Code:  string(domainerror.ErrCodeMissingWallet),
			})
			return
		}
		input.WalletID = &walletID
	}

	if req.Type != nil {
		transactionType := entity.TransactionType(*req.Type)
		input.Type = &transactionType
	}

	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingTransactionFields),
			})
			return
		}
		input.Date = &date
	}

	output, err := c.updateTransactionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	err = c.deleteTransactionUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		ID:     transactionID,
		UserID: userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Transaction deleted successfully",
	})
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		statusCode := c.getStatusCodeForTransactionError(transactionErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: transactionErr.Message,
			Code:  string(transactionErr.Code),
		})
		return
	}

	// Balance effects surface as wallet errors: insufficient balance on an
	// expense, or a missing target wallet on a move.
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

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeMissingWallet,
		domainerror.ErrCodeMissingExpenseCategory,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTransaction:
		return http.StatusForbidden
	case domainerror.ErrCodeReceiptUploadFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForWalletError maps wallet error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForWalletError(code domainerror.WalletErrorCode) int {
	switch code {
	case domainerror.ErrCodeWalletNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedWallet:
		return http.StatusForbidden
	case domainerror.ErrCodeInsufficientBalance:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
