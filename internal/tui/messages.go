package tui

import "github.com/plannerx/plx/internal/store"

// loginDoneMsg reports the outcome of a login attempt
type loginDoneMsg struct {
	err error
}

// passwordChangedMsg reports the outcome of a password change
type passwordChangedMsg struct {
	err error
}

// companySelectedMsg reports that a company's data finished loading
// after selection
type companySelectedMsg struct {
	err error
}

// refreshDoneMsg reports a full refresh of the active company
type refreshDoneMsg struct {
	err error
}

// valuesLoadedMsg reports that a dimension's values finished loading
type valuesLoadedMsg struct {
	dimensionID int
	err         error
}

// dirtySavedMsg reports the outcome of a batch save
type dirtySavedMsg struct {
	failed int
	err    error
}

// companySavedMsg reports the outcome of a company create or update
type companySavedMsg struct {
	err error
}

// userSavedMsg reports the outcome of a user create
type userSavedMsg struct {
	err error
}

// dimensionSavedMsg reports the outcome of a dimension create or update
type dimensionSavedMsg struct {
	err error
}

// importDoneMsg reports the outcome of a workbook import
type importDoneMsg struct {
	summary store.ImportSummary
	// calendar imports carry no summary
	isCalendar bool
	err        error
}
