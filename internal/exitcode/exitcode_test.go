package exitcode

import (
	"fmt"
	"testing"

	"github.com/plannerx/plx/internal/api"
	plxerrors "github.com/plannerx/plx/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, Success},
		{"plain error", fmt.Errorf("boom"), GeneralError},
		{"not authenticated", plxerrors.NewNotAuthenticatedError(), AuthError},
		{"credentials missing", plxerrors.NewCredentialsMissingError(), AuthError},
		{"no active company", plxerrors.NewNoActiveCompanyError(), ContextError},
		{"api 401", &api.Error{Status: 401, Message: "invalid token"}, AuthError},
		{"api 422", &api.Error{Status: 422, Message: "validation error"}, APIError},
		{"wrapped plx error", fmt.Errorf("login: %w", plxerrors.NewNotAuthenticatedError()), AuthError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.want {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
