// Package error defines domain-specific errors for the Wallet Tracker application.
package error

import "errors"

// Wallet domain errors.
var (
	// ErrWalletNotFound is returned when a wallet is not found in the system.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrNotAuthorizedToModifyWallet is returned when user is not authorized to modify a wallet.
	ErrNotAuthorizedToModifyWallet = errors.New("not authorized to modify wallet")

	// ErrInsufficientBalance is returned when an expense exceeds the wallet's current balance.
	ErrInsufficientBalance = errors.New("insufficient balance in wallet")

	// ErrWalletNameRequired is returned when a wallet is created or renamed without a name.
	ErrWalletNameRequired = errors.New("wallet name is required")

	// ErrWalletIconUploadFailed is returned when the wallet icon upload fails.
	ErrWalletIconUploadFailed = errors.New("failed to upload wallet icon")
)

// WalletErrorCode defines error codes for wallet errors.
// Format: WLT-XXYYYY where XX is category and YYYY is specific error.
type WalletErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeWalletNameRequired  WalletErrorCode = "WLT-010001"
	ErrCodeWalletNotFound      WalletErrorCode = "WLT-010002"
	ErrCodeNotAuthorizedWallet WalletErrorCode = "WLT-010003"

	// Ledger errors (02XXXX)
	ErrCodeInsufficientBalance WalletErrorCode = "WLT-020001"

	// Upload errors (03XXXX)
	ErrCodeWalletIconUploadFailed WalletErrorCode = "WLT-030001"
)

// WalletError represents a wallet error with code and message.
type WalletError struct {
	Code    WalletErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WalletError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WalletError) Unwrap() error {
	return e.Err
}

// NewWalletError creates a new WalletError with the given code and message.
func NewWalletError(code WalletErrorCode, message string, err error) *WalletError {
	return &WalletError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
