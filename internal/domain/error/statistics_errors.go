// Package error defines domain-specific errors for the Wallet Tracker application.
package error

import "errors"

// Statistics domain errors.
var (
	// ErrInvalidPeriod is returned when the requested statistics period is unknown.
	ErrInvalidPeriod = errors.New("period must be: week, month, or year")
)

// StatisticsErrorCode defines error codes for statistics errors.
// Format: STATS-XXYYYY where XX is category and YYYY is specific error.
type StatisticsErrorCode string

const (
	ErrCodeInvalidPeriod StatisticsErrorCode = "STATS-010001"
)

// StatisticsError represents a statistics error with code and message.
type StatisticsError struct {
	Code    StatisticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatisticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatisticsError) Unwrap() error {
	return e.Err
}

// NewStatisticsError creates a new StatisticsError with the given code and message.
func NewStatisticsError(code StatisticsErrorCode, message string, err error) *StatisticsError {
	return &StatisticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
