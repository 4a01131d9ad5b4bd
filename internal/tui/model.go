package tui

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/plannerx/plx/internal/guard"
	"github.com/plannerx/plx/internal/store"
)

// formKind identifies which form is currently on screen
type formKind int

// Form kinds
const (
	formNone formKind = iota
	formLogin
	formPassword
	formCompanyCreate
	formCompanyEdit
	formUserCreate
	formDimensionCreate
	formValueEdit
	formImportCalendar
	formImportDimensions
)

// Model represents the TUI application state
type Model struct {
	store  *store.Store
	styles Styles

	route    guard.Route
	width    int
	height   int
	ready    bool
	quitting bool
	busy     bool

	statusMsg string
	errMsg    string

	form     *huh.Form
	formKind formKind

	companiesTable table.Model
	usersTable     table.Model
	sheetsTable    table.Model
	calendarTable  table.Model
	dimsTable      table.Model
	valuesTable    table.Model
	valuesFocused  bool

	lastImport    store.ImportSummary
	hasImportInfo bool
	formValueID   int
}

// NewModel creates a TUI model bound to a session store
func NewModel(s *store.Store) Model {
	m := Model{
		store:  s,
		styles: DefaultStyles(),
	}
	m = m.navigate(guard.RouteHome)
	return m
}

// routeGuards returns the guard chain protecting a route
func routeGuards(r guard.Route) guard.Guard {
	switch r {
	case guard.RouteLogin:
		return guard.Chain()
	case guard.RouteChangePassword:
		return guard.Chain(guard.RequireAuth)
	case guard.RouteSelectCompany:
		return guard.Chain(guard.RequireAuth, guard.ForcePasswordChangeGate,
			guard.RequireSysAdmin, guard.RequireNoCompanyContext)
	case guard.RouteCompanies:
		return guard.Chain(guard.RequireAuth, guard.ForcePasswordChangeGate,
			guard.RequireSysAdmin)
	case guard.RouteUsers, guard.RouteSettings:
		return guard.Chain(guard.RequireAuth, guard.ForcePasswordChangeGate,
			guard.RequireCompanyContext, guard.RequireCompanyAdminOrSysAdmin)
	default:
		return guard.Chain(guard.RequireAuth, guard.ForcePasswordChangeGate,
			guard.RequireCompanyContext)
	}
}

// navigate applies route guards and prepares the target view's state,
// following redirects until a route admits the session.
func (m Model) navigate(target guard.Route) Model {
	for i := 0; i < 8; i++ {
		redirect, ok := routeGuards(target)(m.store)
		if ok {
			break
		}
		target = redirect
	}

	m.route = target
	m.form = nil
	m.formKind = formNone
	m.errMsg = ""

	switch target {
	case guard.RouteLogin:
		m = m.openLoginForm()
	case guard.RouteChangePassword:
		m = m.openPasswordForm()
	case guard.RouteSelectCompany, guard.RouteCompanies:
		m.companiesTable = companiesTable(m.store.Companies())
	case guard.RouteUsers:
		m.usersTable = usersTable(m.store.CompanyUsers())
	case guard.RouteHome:
		m.sheetsTable = sheetsTable(m.store.Sheets())
	case guard.RouteCalendar:
		m.calendarTable = calendarTable(m.store.CalendarRows())
	case guard.RouteDimensions:
		m.dimsTable = dimensionsTable(m.store.Dimensions())
		m.valuesTable = valuesTable(m.store.DimensionValues())
		m.dimsTable.Focus()
		m.valuesTable.Blur()
		m.valuesFocused = false
	}
	return m
}

// Init initializes the TUI model (required by Bubble Tea)
func (m Model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

// Update handles messages and updates the model state (required by Bubble Tea)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.form == nil {
			return m.handleKeyPress(msg)
		}

	case loginDoneMsg:
		m.busy = false
		if msg.err != nil {
			// The store keeps the server's message; rebuild the form
			// so the user can retry.
			return m.navigate(guard.RouteLogin).withInit()
		}
		return m.navigate(guard.RouteHome).withInit()

	case passwordChangedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m.openPasswordForm().withInit()
		}
		m.statusMsg = "Password updated"
		return m.navigate(guard.RouteHome).withInit()

	case companySelectedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		return m.navigate(guard.RouteHome).withInit()

	case refreshDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.statusMsg = "Refreshed"
		}
		return m.navigate(m.route).withInit()

	case valuesLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.valuesTable = valuesTable(m.store.DimensionValues())
		m.dimsTable.Blur()
		m.valuesTable.Focus()
		m.valuesFocused = true
		return m, nil

	case dirtySavedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else if msg.failed > 0 {
			m.errMsg = fmt.Sprintf("%d row(s) failed to save", msg.failed)
		} else {
			m.statusMsg = "Changes saved"
		}
		m.valuesTable = valuesTable(m.store.DimensionValues())
		return m, nil

	case companySavedMsg, userSavedMsg, dimensionSavedMsg:
		m.busy = false
		if err := savedErr(msg); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.statusMsg = "Saved"
		return m.navigate(m.route).withInit()

	case importDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		if msg.isCalendar {
			m.statusMsg = "Calendar imported"
		} else {
			m.lastImport = msg.summary
			m.hasImportInfo = true
			m.statusMsg = "Dimensions imported"
		}
		return m.navigate(m.route).withInit()
	}

	return m.updateActiveComponent(msg)
}

// withInit pairs a model with its pending form's Init command
func (m Model) withInit() (tea.Model, tea.Cmd) {
	if m.form != nil {
		return m, m.form.Init()
	}
	return m, nil
}

func savedErr(msg tea.Msg) error {
	switch v := msg.(type) {
	case companySavedMsg:
		return v.err
	case userSavedMsg:
		return v.err
	case dimensionSavedMsg:
		return v.err
	}
	return nil
}

// updateActiveComponent routes messages to the focused form or table
func (m Model) updateActiveComponent(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
			if m.form.State == huh.StateCompleted {
				return m.submitForm()
			}
			if m.form.State == huh.StateAborted {
				return m.cancelForm()
			}
		}
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.route {
	case guard.RouteSelectCompany, guard.RouteCompanies:
		m.companiesTable, cmd = m.companiesTable.Update(msg)
	case guard.RouteUsers:
		m.usersTable, cmd = m.usersTable.Update(msg)
	case guard.RouteHome:
		m.sheetsTable, cmd = m.sheetsTable.Update(msg)
	case guard.RouteCalendar:
		m.calendarTable, cmd = m.calendarTable.Update(msg)
	case guard.RouteDimensions:
		if m.valuesFocused {
			m.valuesTable, cmd = m.valuesTable.Update(msg)
		} else {
			m.dimsTable, cmd = m.dimsTable.Update(msg)
		}
	}
	return m, cmd
}

// cancelForm drops the active form. Login and forced password change
// cannot be dismissed.
func (m Model) cancelForm() (tea.Model, tea.Cmd) {
	switch m.formKind {
	case formLogin:
		m.quitting = true
		return m, tea.Quit
	case formPassword:
		if u, ok := m.store.CurrentUser(); ok && u.ForcePasswordChange {
			return m.openPasswordForm().withInit()
		}
	}
	return m.navigate(m.route).withInit()
}

// Commands

func (m Model) loginCmd(email, password string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		return loginDoneMsg{err: s.Login(context.Background(), email, password)}
	}
}

func (m Model) changePasswordCmd(newPassword string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		return passwordChangedMsg{err: s.ChangeMyPassword(context.Background(), newPassword)}
	}
}

func (m Model) selectCompanyCmd(companyID int) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		s.SelectCompany(companyID)
		return companySelectedMsg{err: s.RefreshActiveCompany(context.Background())}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		return refreshDoneMsg{err: s.RefreshActiveCompany(context.Background())}
	}
}

func (m Model) loadValuesCmd(companyID, dimensionID int) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		_, err := s.LoadDimensionValues(context.Background(), companyID, dimensionID)
		return valuesLoadedMsg{dimensionID: dimensionID, err: err}
	}
}

func (m Model) saveDirtyCmd() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		failed, err := s.SaveDirtyValues(context.Background())
		return dirtySavedMsg{failed: failed, err: err}
	}
}

func (m Model) importCmd(companyID int, path string, calendar bool) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{isCalendar: calendar, err: err}
		}
		defer f.Close()

		if calendar {
			return importDoneMsg{
				isCalendar: true,
				err:        s.ImportCalendar(context.Background(), companyID, f.Name(), f),
			}
		}
		summary, err := s.ImportDimensionsExcel(context.Background(), companyID, f.Name(), f)
		return importDoneMsg{summary: summary, err: err}
	}
}

// View renders the UI (required by Bubble Tea)
func (m Model) View() string {
	if m.quitting {
		return "Goodbye.\n"
	}
	if m.form != nil {
		return m.renderChrome(m.form.View())
	}

	switch m.route {
	case guard.RouteSelectCompany:
		return m.renderChrome(m.renderSelectCompany())
	case guard.RouteCompanies:
		return m.renderChrome(m.renderCompanies())
	case guard.RouteUsers:
		return m.renderChrome(m.renderUsers())
	case guard.RouteHome:
		return m.renderChrome(m.renderHome())
	case guard.RouteCalendar:
		return m.renderChrome(m.renderCalendar())
	case guard.RouteDimensions:
		return m.renderChrome(m.renderDimensions())
	case guard.RouteSettings:
		return m.renderChrome(m.renderSettings())
	}
	return m.renderChrome("")
}

// Run starts the interactive application
func Run(s *store.Store) error {
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
