// Package store holds the client-side session and tenant context: the
// authenticated user, the selected company, and the cached
// company-scoped collections. It is the single source of truth for the
// pages; they never keep authoritative copies.
package store

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/plannerx/plx/internal/api"
	"github.com/plannerx/plx/internal/companycode"
	plxerrors "github.com/plannerx/plx/internal/errors"
	"github.com/plannerx/plx/internal/log"
)

// Store is the session/context state container. All network-backed
// actions check authentication synchronously before any request, and
// every loader tags its fetch with the context epoch at dispatch so a
// response that arrives after the context changed is discarded rather
// than applied ("last response wins" is not acceptable here).
type Store struct {
	client *api.Client
	logger *log.Logger

	mu    sync.Mutex
	epoch uint64

	token     string
	user      *User
	authError string

	companies       []Company
	activeCompanyID int

	companyUsers    []User
	sheets          []Sheet
	calendarRows    []CalendarRow
	dimensions      []Dimension
	dimensionValues []DimensionValue

	selectedDimensionID int
	dirty               map[int]ValuePatch
}

// New creates a store bound to an API client
func New(client *api.Client, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Store{
		client: client,
		logger: logger,
		dirty:  map[int]ValuePatch{},
	}
}

// begin is the synchronous precondition check shared by all
// network-backed actions: it fails fast when no token is held and
// returns the epoch the caller should validate against before applying
// a response.
func (s *Store) begin() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return 0, plxerrors.NewNotAuthenticatedError()
	}
	return s.epoch, nil
}

// resetCompanyScopedLocked clears every cache tied to the current
// company selection. Callers hold s.mu.
func (s *Store) resetCompanyScopedLocked() {
	s.companyUsers = nil
	s.sheets = nil
	s.calendarRows = nil
	s.dimensions = nil
	s.dimensionValues = nil
	s.selectedDimensionID = 0
	s.dirty = map[int]ValuePatch{}
}

// messageOf extracts the human-readable part of an action error
func messageOf(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// Login authenticates and, on success, runs the dependent fan-out:
// SYSADMIN gets the company list; every other role is bound to its own
// company and gets that company's record, users, sheets, calendar, and
// dimensions loaded in that fixed order. The steps are awaited
// sequentially because later loads assume earlier cache state.
func (s *Store) Login(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.mu.Lock()
		s.authError = messageOf(err)
		s.mu.Unlock()
		return err
	}

	u := userFromLoginDTO(resp.User)

	s.mu.Lock()
	s.epoch++
	s.token = resp.AccessToken
	s.client.SetToken(resp.AccessToken)
	s.user = &u
	s.authError = ""
	if u.Role == RoleSysadmin {
		s.activeCompanyID = 0
	} else {
		s.activeCompanyID = u.CompanyID
	}
	s.companies = nil
	s.resetCompanyScopedLocked()
	s.mu.Unlock()

	s.logger.Info("logged in", "user_id", u.ID, "role", string(u.Role))

	if err := s.loginFanout(ctx, u); err != nil {
		s.mu.Lock()
		s.authError = messageOf(err)
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) loginFanout(ctx context.Context, u User) error {
	if u.Role == RoleSysadmin {
		return s.LoadCompanies(ctx)
	}
	if u.CompanyID == 0 {
		return nil
	}

	if _, err := s.LoadCompany(ctx, u.CompanyID); err != nil {
		return err
	}
	if _, err := s.LoadCompanyUsers(ctx, u.CompanyID); err != nil {
		return err
	}
	if _, err := s.LoadSheets(ctx, u.CompanyID); err != nil {
		return err
	}
	if _, err := s.LoadCalendar(ctx, u.CompanyID); err != nil {
		return err
	}
	if _, err := s.LoadDimensions(ctx, u.CompanyID); err != nil {
		return err
	}
	return nil
}

// Logout clears the session and all cached state. No server call is
// made; the token simply stops being used.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.token = ""
	s.client.ClearToken()
	s.user = nil
	s.authError = ""
	s.activeCompanyID = 0
	s.companies = nil
	s.resetCompanyScopedLocked()
}

// ClearAuthError dismisses a surfaced login failure
func (s *Store) ClearAuthError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authError = ""
}

// SelectCompany sets the active company context and clears every
// company-scoped cache so the next page mount re-fetches. It does not
// itself trigger loads.
func (s *Store) SelectCompany(companyID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.activeCompanyID = companyID
	s.resetCompanyScopedLocked()
}

// ClearCompanySelection drops the active company context (SYSADMIN
// leaving a tunnel) and clears the company-scoped caches.
func (s *Store) ClearCompanySelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.activeCompanyID = 0
	s.resetCompanyScopedLocked()
}

// LoadCompanies replaces the company list from the server
func (s *Store) LoadCompanies(ctx context.Context) error {
	epoch, err := s.begin()
	if err != nil {
		return err
	}

	rows, err := s.client.ListCompanies(ctx)
	if err != nil {
		return err
	}

	mapped := make([]Company, 0, len(rows))
	for _, row := range rows {
		mapped = append(mapped, companyFromDTO(row))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch {
		s.companies = mapped
	}
	return nil
}

// LoadCompany fetches one company and upserts it into the cached list:
// replaced in place when present, prepended otherwise. The upsert is
// skipped when a different company became the active context in the
// meantime. The mapped record is returned so callers can read fresh
// values immediately.
func (s *Store) LoadCompany(ctx context.Context, companyID int) (Company, error) {
	epoch, err := s.begin()
	if err != nil {
		return Company{}, err
	}

	row, err := s.client.GetCompany(ctx, companyID)
	if err != nil {
		return Company{}, err
	}
	ui := companyFromDTO(*row)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch && (s.activeCompanyID == 0 || s.activeCompanyID == companyID) {
		s.upsertCompanyLocked(ui)
	}
	return ui, nil
}

func (s *Store) upsertCompanyLocked(c Company) {
	for i := range s.companies {
		if s.companies[i].ID == c.ID {
			s.companies[i] = c
			return
		}
	}
	s.companies = append([]Company{c}, s.companies...)
}

// CreateCompany derives a company code from the domain (the server
// requires one that the form does not expose), posts the record, and
// prepends the result to the cached list.
func (s *Store) CreateCompany(ctx context.Context, in CompanyInput) (Company, error) {
	epoch, err := s.begin()
	if err != nil {
		return Company{}, err
	}

	code := companycode.FromDomain(in.Domain)
	domain := strings.ToLower(strings.TrimSpace(in.Domain))

	payload := api.CompanyCreateDTO{
		CompanyCode: &code,
		CompanyName: in.Name,
		Address1:    trimmedOrNil(in.Address1),
		Address2:    trimmedOrNil(in.Address2),
		City:        trimmedOrNil(in.City),
		State:       trimmedOrNil(in.State),
		Zip:         trimmedOrNil(in.Zip),
		Domain:      trimmedOrNil(domain),
		Industry:    trimmedOrNil(in.Industry),
	}

	created, err := s.client.CreateCompany(ctx, payload)
	if err != nil {
		return Company{}, err
	}
	ui := companyFromDTO(*created)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch {
		s.companies = append([]Company{ui}, s.companies...)
	}
	return ui, nil
}

// UpdateCompany merges the patch over the freshly loaded record and
// sends the full update body. The domain always comes from the raw
// server record: it is immutable after creation, no patch may change
// it. IsActive and CalendarSheetID go out only when explicitly set so
// an omitted flag never clears server state.
func (s *Store) UpdateCompany(ctx context.Context, companyID int, patch CompanyPatch) (Company, error) {
	current, err := s.LoadCompany(ctx, companyID)
	if err != nil {
		return Company{}, err
	}

	// Authoritative domain value, independent of the cache.
	raw, err := s.client.GetCompany(ctx, companyID)
	if err != nil {
		return Company{}, err
	}
	domain := current.Domain
	if raw.Domain != nil {
		domain = *raw.Domain
	}

	address2 := override(patch.Address2, current.Address2)
	payload := api.CompanyUpdateDTO{
		CompanyName:     override(patch.Name, current.Name),
		Address1:        override(patch.Address1, current.Address1),
		Address2:        trimmedOrNil(address2),
		City:            override(patch.City, current.City),
		State:           override(patch.State, current.State),
		Zip:             override(patch.Zip, current.Zip),
		Domain:          domain,
		Industry:        override(patch.Industry, current.Industry),
		IsActive:        patch.IsActive,
		CalendarSheetID: patch.CalendarSheetID,
	}

	epoch, err := s.begin()
	if err != nil {
		return Company{}, err
	}

	updated, err := s.client.UpdateCompany(ctx, companyID, payload)
	if err != nil {
		return Company{}, err
	}
	ui := companyFromDTO(*updated)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch {
		for i := range s.companies {
			if s.companies[i].ID == companyID {
				s.companies[i] = ui
			}
		}
	}
	return ui, nil
}

func override(p *string, current string) string {
	if p != nil {
		return *p
	}
	return current
}

// LoadCompanyUsers lists a company's users. The cache is only replaced
// when that company is still the active context by the time the
// response lands.
func (s *Store) LoadCompanyUsers(ctx context.Context, companyID int) ([]User, error) {
	epoch, err := s.begin()
	if err != nil {
		return nil, err
	}

	rows, err := s.client.ListCompanyUsers(ctx, companyID)
	if err != nil {
		return nil, err
	}

	mapped := make([]User, 0, len(rows))
	for _, row := range rows {
		mapped = append(mapped, userFromDTO(row))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch && s.activeCompanyID == companyID {
		s.companyUsers = mapped
	}
	return mapped, nil
}

// CreateUserForActiveCompany creates a user under the active company.
// The username is lower-cased before submission. The created record is
// prepended to the cache only when the active context still matches the
// company it was created for.
func (s *Store) CreateUserForActiveCompany(ctx context.Context, in UserInput) (User, error) {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return User{}, plxerrors.NewNotAuthenticatedError()
	}
	companyID := s.activeCompanyID
	epoch := s.epoch
	s.mu.Unlock()

	if companyID == 0 {
		return User{}, plxerrors.NewNoActiveCompanyError()
	}

	perms := make(map[string]any, len(in.Permissions))
	for name, granted := range in.Permissions {
		perms[name] = granted
	}

	payload := api.UserCreateDTO{
		Username:            strings.ToLower(strings.TrimSpace(in.Username)),
		DisplayName:         in.DisplayName,
		Role:                string(in.Role),
		TempPassword:        in.TempPassword,
		ForcePasswordChange: in.ForcePasswordChange,
		Permissions:         perms,
	}

	row, err := s.client.CreateCompanyUser(ctx, companyID, payload)
	if err != nil {
		return User{}, err
	}
	created := userFromDTO(*row)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch && s.activeCompanyID == companyID {
		s.companyUsers = append([]User{created}, s.companyUsers...)
	}
	return created, nil
}

// LoadSheets replaces the sheet cache for the given company. The
// response is discarded when that company is no longer the active
// context by the time it lands.
func (s *Store) LoadSheets(ctx context.Context, companyID int) ([]Sheet, error) {
	epoch, err := s.begin()
	if err != nil {
		return nil, err
	}

	rows, err := s.client.ListSheets(ctx, companyID)
	if err != nil {
		return nil, err
	}

	mapped := make([]Sheet, 0, len(rows))
	for _, row := range rows {
		mapped = append(mapped, sheetFromDTO(row))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch && s.activeCompanyID == companyID {
		s.sheets = mapped
	}
	return mapped, nil
}

// ImportCalendar uploads a calendar workbook, then reloads company,
// sheets, and calendar so server-side effects (activation, calendar
// sheet linkage) are reflected locally.
func (s *Store) ImportCalendar(ctx context.Context, companyID int, filename string, file io.Reader) error {
	if _, err := s.begin(); err != nil {
		return err
	}

	if err := s.client.ImportCalendar(ctx, companyID, filename, file); err != nil {
		return err
	}

	if _, err := s.LoadCompany(ctx, companyID); err != nil {
		return err
	}
	if _, err := s.LoadSheets(ctx, companyID); err != nil {
		return err
	}
	if _, err := s.LoadCalendar(ctx, companyID); err != nil {
		return err
	}
	return nil
}

// LoadCalendar replaces the calendar cache for the given company,
// subject to the same stale-response rule as the other scoped loaders.
func (s *Store) LoadCalendar(ctx context.Context, companyID int) ([]CalendarRow, error) {
	epoch, err := s.begin()
	if err != nil {
		return nil, err
	}

	rows, err := s.client.ListCalendar(ctx, companyID)
	if err != nil {
		return nil, err
	}

	mapped := make([]CalendarRow, 0, len(rows))
	for _, row := range rows {
		mapped = append(mapped, calendarRowFromDTO(row))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch && s.activeCompanyID == companyID {
		s.calendarRows = mapped
	}
	return mapped, nil
}

// RefreshActiveCompany re-runs the dependent loads for the current
// context, including the selected dimension's values when one is
// selected. A no-op without a token or an active company.
func (s *Store) RefreshActiveCompany(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	companyID := s.activeCompanyID
	selected := s.selectedDimensionID
	s.mu.Unlock()

	if token == "" || companyID == 0 {
		return nil
	}

	if _, err := s.LoadCompany(ctx, companyID); err != nil {
		return err
	}
	if _, err := s.LoadCompanyUsers(ctx, companyID); err != nil {
		return err
	}
	if _, err := s.LoadSheets(ctx, companyID); err != nil {
		return err
	}
	if _, err := s.LoadCalendar(ctx, companyID); err != nil {
		return err
	}
	if _, err := s.LoadDimensions(ctx, companyID); err != nil {
		return err
	}
	if selected != 0 {
		if _, err := s.LoadDimensionValues(ctx, companyID, selected); err != nil {
			return err
		}
	}
	return nil
}

// ChangeMyPassword posts the new password and clears the in-memory
// force-password-change flag without re-fetching the user record.
func (s *Store) ChangeMyPassword(ctx context.Context, newPassword string) error {
	if _, err := s.begin(); err != nil {
		return err
	}

	if err := s.client.ChangePassword(ctx, newPassword); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		u := *s.user
		u.ForcePasswordChange = false
		s.user = &u
	}
	return nil
}
