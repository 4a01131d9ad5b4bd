// Package guard decides whether a view may be shown for the current
// session state. Guards are pure predicates over a session snapshot;
// the router runs them before switching views and follows the first
// redirect any of them returns.
package guard

import "github.com/plannerx/plx/internal/store"

// Route names a navigable view.
type Route string

// Navigable views
const (
	RouteLogin          Route = "login"
	RouteChangePassword Route = "change-password"
	RouteSelectCompany  Route = "select-company"
	RouteHome           Route = "home"
	RouteCompanies      Route = "companies"
	RouteSettings       Route = "settings"
	RouteUsers          Route = "users"
	RouteCalendar       Route = "calendar"
	RouteDimensions     Route = "dimensions"
)

// Session is the slice of store state guards read. *store.Store
// satisfies it.
type Session interface {
	IsAuthenticated() bool
	CurrentUser() (store.User, bool)
	ActiveCompanyID() (int, bool)
}

// Guard inspects a session and either allows the view or names the
// route to redirect to.
type Guard func(s Session) (redirect Route, ok bool)

// Chain runs guards in order and returns the first redirect.
func Chain(guards ...Guard) Guard {
	return func(s Session) (Route, bool) {
		for _, g := range guards {
			if redirect, ok := g(s); !ok {
				return redirect, false
			}
		}
		return "", true
	}
}

// RequireAuth redirects unauthenticated sessions to the login view.
func RequireAuth(s Session) (Route, bool) {
	if !s.IsAuthenticated() {
		return RouteLogin, false
	}
	return "", true
}

// ForcePasswordChangeGate traps users flagged for a forced password
// change on the change-password view until they complete it.
func ForcePasswordChangeGate(s Session) (Route, bool) {
	if u, ok := s.CurrentUser(); ok && u.ForcePasswordChange {
		return RouteChangePassword, false
	}
	return "", true
}

// RequireCompanyContext redirects to company selection when no company
// is active. Non-SYSADMIN users without a bound company cannot select
// one, so they fall back to login.
func RequireCompanyContext(s Session) (Route, bool) {
	if _, ok := s.ActiveCompanyID(); ok {
		return "", true
	}
	if u, ok := s.CurrentUser(); ok && u.Role == store.RoleSysadmin {
		return RouteSelectCompany, false
	}
	return RouteLogin, false
}

// RequireNoCompanyContext keeps sessions with an active company away
// from the company-selection view.
func RequireNoCompanyContext(s Session) (Route, bool) {
	if _, ok := s.ActiveCompanyID(); ok {
		return RouteHome, false
	}
	return "", true
}

// RequireSysAdmin restricts a view to SYSADMIN users.
func RequireSysAdmin(s Session) (Route, bool) {
	if u, ok := s.CurrentUser(); ok && u.Role == store.RoleSysadmin {
		return "", true
	}
	return RouteHome, false
}

// RequireCompanyAdminOrSysAdmin restricts a view to company
// administration roles.
func RequireCompanyAdminOrSysAdmin(s Session) (Route, bool) {
	u, ok := s.CurrentUser()
	if !ok {
		return RouteLogin, false
	}
	switch u.Role {
	case store.RoleSysadmin, store.RoleCompanyAdmin:
		return "", true
	}
	return RouteHome, false
}
