package exitcode

import (
	"errors"
	"os"

	"github.com/plannerx/plx/internal/api"
	plxerrors "github.com/plannerx/plx/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication failure
	AuthError = 3

	// ContextError indicates a missing or stale company context
	ContextError = 4

	// APIError indicates the server rejected a request
	APIError = 5

	// Interrupted indicates the operation was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var plxErr *plxerrors.PlxError
	if errors.As(err, &plxErr) {
		switch plxErr.Code {
		case plxerrors.ErrCodeNotAuthenticated,
			plxerrors.ErrCodeLoginFailed,
			plxerrors.ErrCodeCredentialsMissing:
			return AuthError
		case plxerrors.ErrCodeNoActiveCompany, plxerrors.ErrCodeStaleContext:
			return ContextError
		}
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.Status == 401 || apiErr.Status == 403 {
			return AuthError
		}
		return APIError
	}

	return GeneralError
}
