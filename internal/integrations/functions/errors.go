package functions

import "kayak-console/internal/pkg/errs"

var (
	// ErrFunctionUnavailable marks transport failures and 5xx responses.
	// Callers decide whether to degrade (record a manual request) or fail.
	ErrFunctionUnavailable = errs.New("function unavailable")
	// ErrFunctionRejected marks 4xx responses carrying a message.
	ErrFunctionRejected = errs.New("function rejected request")
	ErrInvalidResponse  = errs.New("invalid function response")
)
