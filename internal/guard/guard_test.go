package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plannerx/plx/internal/store"
)

type fakeSession struct {
	authed    bool
	user      store.User
	hasUser   bool
	companyID int
}

func (f fakeSession) IsAuthenticated() bool { return f.authed }

func (f fakeSession) CurrentUser() (store.User, bool) { return f.user, f.hasUser }

func (f fakeSession) ActiveCompanyID() (int, bool) {
	return f.companyID, f.companyID != 0
}

func sessionFor(role store.Role, companyID int) fakeSession {
	return fakeSession{
		authed:    true,
		hasUser:   true,
		user:      store.User{ID: 7, Role: role, CompanyID: companyID},
		companyID: companyID,
	}
}

func TestRequireAuth(t *testing.T) {
	redirect, ok := RequireAuth(fakeSession{})
	assert.False(t, ok)
	assert.Equal(t, RouteLogin, redirect)

	_, ok = RequireAuth(sessionFor(store.RoleCFO, 42))
	assert.True(t, ok)
}

func TestForcePasswordChangeGate(t *testing.T) {
	s := sessionFor(store.RoleKAM, 42)
	s.user.ForcePasswordChange = true

	redirect, ok := ForcePasswordChangeGate(s)
	assert.False(t, ok)
	assert.Equal(t, RouteChangePassword, redirect)

	s.user.ForcePasswordChange = false
	_, ok = ForcePasswordChangeGate(s)
	assert.True(t, ok)
}

func TestRequireCompanyContext(t *testing.T) {
	_, ok := RequireCompanyContext(sessionFor(store.RoleCFO, 42))
	assert.True(t, ok)

	redirect, ok := RequireCompanyContext(sessionFor(store.RoleSysadmin, 0))
	assert.False(t, ok)
	assert.Equal(t, RouteSelectCompany, redirect, "SYSADMIN can go pick a company")

	redirect, ok = RequireCompanyContext(sessionFor(store.RoleCFO, 0))
	assert.False(t, ok)
	assert.Equal(t, RouteLogin, redirect, "non-SYSADMIN without a company has nowhere else to go")
}

func TestRequireNoCompanyContext(t *testing.T) {
	redirect, ok := RequireNoCompanyContext(sessionFor(store.RoleSysadmin, 42))
	assert.False(t, ok)
	assert.Equal(t, RouteHome, redirect)

	_, ok = RequireNoCompanyContext(sessionFor(store.RoleSysadmin, 0))
	assert.True(t, ok)
}

func TestRequireSysAdmin(t *testing.T) {
	_, ok := RequireSysAdmin(sessionFor(store.RoleSysadmin, 0))
	assert.True(t, ok)

	redirect, ok := RequireSysAdmin(sessionFor(store.RoleCFO, 42))
	assert.False(t, ok)
	assert.Equal(t, RouteHome, redirect)
}

func TestRequireCompanyAdminOrSysAdmin(t *testing.T) {
	_, ok := RequireCompanyAdminOrSysAdmin(sessionFor(store.RoleSysadmin, 0))
	assert.True(t, ok)
	_, ok = RequireCompanyAdminOrSysAdmin(sessionFor(store.RoleCompanyAdmin, 42))
	assert.True(t, ok)

	redirect, ok := RequireCompanyAdminOrSysAdmin(sessionFor(store.RoleKAM, 42))
	assert.False(t, ok)
	assert.Equal(t, RouteHome, redirect)

	redirect, ok = RequireCompanyAdminOrSysAdmin(fakeSession{authed: true})
	assert.False(t, ok)
	assert.Equal(t, RouteLogin, redirect)
}

func TestChainReturnsFirstRedirect(t *testing.T) {
	g := Chain(RequireAuth, ForcePasswordChangeGate, RequireCompanyContext)

	redirect, ok := g(fakeSession{})
	assert.False(t, ok)
	assert.Equal(t, RouteLogin, redirect)

	s := sessionFor(store.RoleSysadmin, 0)
	s.user.ForcePasswordChange = true
	redirect, ok = g(s)
	assert.False(t, ok)
	assert.Equal(t, RouteChangePassword, redirect)

	s.user.ForcePasswordChange = false
	redirect, ok = g(s)
	assert.False(t, ok)
	assert.Equal(t, RouteSelectCompany, redirect)

	_, ok = g(sessionFor(store.RoleCFO, 42))
	assert.True(t, ok)
}
