package store

// Read-side accessors. Each returns a copy so pages can render without
// holding the store lock or aliasing its slices.

// IsAuthenticated reports whether a token is held
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// CurrentUser returns the authenticated user, if any
func (s *Store) CurrentUser() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Token returns the raw access token for the current session
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// AuthError returns the surfaced login failure message, if any
func (s *Store) AuthError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authError
}

// ActiveCompanyID returns the selected company context
func (s *Store) ActiveCompanyID() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeCompanyID, s.activeCompanyID != 0
}

// SelectedDimensionID returns the selected dimension
func (s *Store) SelectedDimensionID() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedDimensionID, s.selectedDimensionID != 0
}

// Companies returns the cached company list
func (s *Store) Companies() []Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Company(nil), s.companies...)
}

// CompanyUsers returns the cached users of the active company
func (s *Store) CompanyUsers() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]User(nil), s.companyUsers...)
}

// Sheets returns the cached sheets
func (s *Store) Sheets() []Sheet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Sheet(nil), s.sheets...)
}

// CalendarRows returns the cached fiscal calendar
func (s *Store) CalendarRows() []CalendarRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CalendarRow(nil), s.calendarRows...)
}

// Dimensions returns the cached dimensions
func (s *Store) Dimensions() []Dimension {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Dimension(nil), s.dimensions...)
}

// DimensionValues returns the cached values of the selected dimension
func (s *Store) DimensionValues() []DimensionValue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]DimensionValue(nil), s.dimensionValues...)
}
