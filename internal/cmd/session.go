package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/plannerx/plx/internal/api"
	"github.com/plannerx/plx/internal/errors"
	"github.com/plannerx/plx/internal/log"
	"github.com/plannerx/plx/internal/store"
)

// newSession builds a store and signs in with the configured
// credentials. Subcommands call this once per invocation; nothing is
// persisted between runs.
func newSession(ctx context.Context) (*store.Store, error) {
	if cfg.Email == "" || cfg.Password == "" {
		return nil, errors.NewCredentialsMissingError()
	}

	s := store.New(api.NewClient(cfg.APIURL), log.DefaultLogger())
	if err := s.Login(ctx, cfg.Email, cfg.Password); err != nil {
		return nil, err
	}
	return s, nil
}

// resolveCompanyID picks the company to operate on: the --company flag
// when given, otherwise the session's active company.
func resolveCompanyID(s *store.Store, flagValue int) (int, error) {
	if flagValue != 0 {
		s.SelectCompany(flagValue)
		return flagValue, nil
	}
	if id, ok := s.ActiveCompanyID(); ok {
		return id, nil
	}
	return 0, errors.NewNoActiveCompanyError()
}

// parseID parses a positional numeric id argument
func parseID(raw, what string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", what, raw)
	}
	return id, nil
}

// openWorkbook opens an .xlsx file for upload
func openWorkbook(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileNotFoundError(path)
		}
		return nil, err
	}
	return f, nil
}
