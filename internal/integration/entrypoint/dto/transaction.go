package dto

import (
	"time"

	"github.com/wallet-tracker/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	WalletID    string  `json:"wallet_id" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Date        string  `json:"date,omitempty"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Image       string  `json:"image,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	WalletID    *string  `json:"wallet_id,omitempty"`
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Image       *string  `json:"image,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	WalletID    string    `json:"wallet_id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
}

// ToTransactionResponse converts a use case transaction output to a response DTO.
func ToTransactionResponse(t *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		WalletID:    t.WalletID.String(),
		Type:        string(t.Type),
		Amount:      t.Amount.String(),
		Category:    t.Category,
		Date:        t.Date.Format("2006-01-02"),
		Description: t.Description,
		ImageURL:    t.ImageURL,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTransactionListResponse converts a list output to a response DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: transactions,
		Pagination: TransactionPaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
	}
}
