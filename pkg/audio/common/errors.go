package common

import "errors"

// AnalysisError represents analysis-related errors
type AnalysisError struct {
	Stage   string `json:"stage"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// Common error codes. Numeric degeneracy (a failed LPC fit) deliberately
// has no code: it surfaces as an empty formant result, not an error.
const (
	ErrCodeInsufficientData = "INSUFFICIENT_DATA"
	ErrCodeDecoding         = "DECODING_FAILED"
	ErrCodeInvalidConfig    = "INVALID_CONFIG"
)

// NewAnalysisError creates a new analysis error
func NewAnalysisError(stage, code, message string, cause error) *AnalysisError {
	return &AnalysisError{
		Stage:   stage,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsCode reports whether err carries an AnalysisError with the given code
// anywhere in its chain
func IsCode(err error, code string) bool {
	var ae *AnalysisError
	return errors.As(err, &ae) && ae.Code == code
}
