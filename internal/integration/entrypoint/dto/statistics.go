package dto

import (
	"github.com/wallet-tracker/backend/internal/application/usecase/statistics"
)

// ChartPointResponse represents one chart bucket in API responses.
type ChartPointResponse struct {
	Label    string `json:"label"`
	Net      string `json:"net"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
}

// SummaryTransactionResponse represents a transaction inside a summary response.
type SummaryTransactionResponse struct {
	ID          string `json:"id"`
	WalletID    string `json:"wallet_id"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// StatisticsSummaryResponse represents the response for a period summary.
type StatisticsSummaryResponse struct {
	Period             string                       `json:"period"`
	Start              string                       `json:"start"`
	End                string                       `json:"end"`
	TotalIncome        string                       `json:"total_income"`
	TotalExpenses      string                       `json:"total_expenses"`
	Net                string                       `json:"net"`
	TransactionCount   int                          `json:"transaction_count"`
	AverageTransaction string                       `json:"average_transaction"`
	TopCategory        string                       `json:"top_category"`
	Chart              []ChartPointResponse         `json:"chart"`
	RecentTransactions []SummaryTransactionResponse `json:"recent_transactions"`
}

// CategorySliceResponse represents one category share in API responses.
type CategorySliceResponse struct {
	Category   string `json:"category"`
	Amount     string `json:"amount"`
	Count      int    `json:"count"`
	Percentage string `json:"percentage"`
}

// CategoryBreakdownResponse represents the response for a category breakdown.
type CategoryBreakdownResponse struct {
	Period        string                  `json:"period"`
	TotalExpenses string                  `json:"total_expenses"`
	Categories    []CategorySliceResponse `json:"categories"`
}

// WalletSliceResponse represents one wallet's period activity in API responses.
type WalletSliceResponse struct {
	WalletID string `json:"wallet_id"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
	Count    int    `json:"count"`
}

// WalletBreakdownResponse represents the response for a wallet breakdown.
type WalletBreakdownResponse struct {
	Period  string                `json:"period"`
	Wallets []WalletSliceResponse `json:"wallets"`
}

// ToStatisticsSummaryResponse converts a summary to a response DTO.
func ToStatisticsSummaryResponse(s *statistics.Summary) StatisticsSummaryResponse {
	chart := make([]ChartPointResponse, len(s.Chart))
	for i, point := range s.Chart {
		chart[i] = ChartPointResponse{
			Label:    point.Label,
			Net:      point.Net.String(),
			Income:   point.Income.String(),
			Expenses: point.Expenses.String(),
		}
	}

	recent := make([]SummaryTransactionResponse, len(s.RecentTransactions))
	for i, t := range s.RecentTransactions {
		recent[i] = SummaryTransactionResponse{
			ID:          t.ID.String(),
			WalletID:    t.WalletID.String(),
			Type:        string(t.Type),
			Amount:      t.Amount.String(),
			Category:    t.Category,
			Date:        t.Date.Format("2006-01-02"),
			Description: t.Description,
		}
	}

	return StatisticsSummaryResponse{
		Period:             string(s.Period),
		Start:              s.Start.Format("2006-01-02"),
		End:                s.End.Format("2006-01-02"),
		TotalIncome:        s.TotalIncome.String(),
		TotalExpenses:      s.TotalExpenses.String(),
		Net:                s.Net.String(),
		TransactionCount:   s.TransactionCount,
		AverageTransaction: s.AverageTransaction.String(),
		TopCategory:        s.TopCategory,
		Chart:              chart,
		RecentTransactions: recent,
	}
}

// ToCategoryBreakdownResponse converts a breakdown output to a response DTO.
func ToCategoryBreakdownResponse(output *statistics.CategoryBreakdownOutput) CategoryBreakdownResponse {
	categories := make([]CategorySliceResponse, len(output.Categories))
	for i, slice := range output.Categories {
		categories[i] = CategorySliceResponse{
			Category:   slice.Category,
			Amount:     slice.Amount.String(),
			Count:      slice.Count,
			Percentage: slice.Percentage.String(),
		}
	}
	return CategoryBreakdownResponse{
		Period:        string(output.Period),
		TotalExpenses: output.TotalExpenses.String(),
		Categories:    categories,
	}
}

// ToWalletBreakdownResponse converts a breakdown output to a response DTO.
func ToWalletBreakdownResponse(output *statistics.WalletBreakdownOutput) WalletBreakdownResponse {
	wallets := make([]WalletSliceResponse, len(output.Wallets))
	for i, slice := range output.Wallets {
		wallets[i] = WalletSliceResponse{
			WalletID: slice.WalletID.String(),
			Income:   slice.Income.String(),
			Expenses: slice.Expenses.String(),
			Net:      slice.Net.String(),
			Count:    slice.Count,
		}
	}
	return WalletBreakdownResponse{
		Period:  string(output.Period),
		Wallets: wallets,
	}
}
