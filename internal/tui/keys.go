package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/table"
	"github.com/plannerx/plx/internal/guard"
	"github.com/plannerx/plx/internal/store"
)

// handleKeyPress processes keys when no form is active
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.statusMsg = ""
	m.errMsg = ""

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "1":
		return m.navigate(guard.RouteHome).withInit()
	case "2":
		return m.navigate(guard.RouteCalendar).withInit()
	case "3":
		return m.navigate(guard.RouteDimensions).withInit()
	case "4":
		return m.navigate(guard.RouteUsers).withInit()
	case "5":
		return m.navigate(guard.RouteSettings).withInit()
	case "6":
		return m.navigate(guard.RouteCompanies).withInit()
	case "0":
		// Only SYSADMIN may leave a company tunnel. Everyone else is
		// bound to their company for the whole session.
		if u, ok := m.store.CurrentUser(); ok && u.Role == store.RoleSysadmin {
			m.store.ClearCompanySelection()
			return m.navigate(guard.RouteSelectCompany).withInit()
		}
		return m, nil

	case "p":
		return m.openPasswordForm().withInit()

	case "r":
		if _, ok := m.store.ActiveCompanyID(); ok {
			m.busy = true
			return m, m.refreshCmd()
		}
		return m, nil

	case "L":
		m.store.Logout()
		return m.navigate(guard.RouteLogin).withInit()
	}

	switch m.route {
	case guard.RouteSelectCompany, guard.RouteCompanies:
		return m.handleCompaniesKey(msg)
	case guard.RouteUsers:
		if msg.String() == "n" {
			return m.openUserCreateForm().withInit()
		}
	case guard.RouteCalendar:
		if msg.String() == "i" {
			return m.openImportForm(true).withInit()
		}
	case guard.RouteSettings:
		if msg.String() == "e" {
			if c, ok := m.activeCompany(); ok {
				return m.openCompanyEditForm(c).withInit()
			}
		}
	case guard.RouteDimensions:
		return m.handleDimensionsKey(msg)
	}

	return m.updateActiveComponent(msg)
}

func (m Model) handleCompaniesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if id, ok := selectedID(m.companiesTable); ok {
			m.busy = true
			return m, m.selectCompanyCmd(id)
		}
		return m, nil
	case "n":
		if m.route == guard.RouteCompanies {
			return m.openCompanyCreateForm().withInit()
		}
	}
	return m.updateActiveComponent(msg)
}

func (m Model) handleDimensionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.valuesFocused = !m.valuesFocused
		if m.valuesFocused {
			m.dimsTable.Blur()
			m.valuesTable.Focus()
		} else {
			m.valuesTable.Blur()
			m.dimsTable.Focus()
		}
		return m, nil

	case "enter":
		if m.valuesFocused {
			return m, nil
		}
		companyID, ok := m.store.ActiveCompanyID()
		if !ok {
			return m, nil
		}
		if id, ok := selectedID(m.dimsTable); ok {
			m.busy = true
			return m, m.loadValuesCmd(companyID, id)
		}
		return m, nil

	case "n":
		return m.openDimensionCreateForm().withInit()

	case "e":
		if !m.valuesFocused {
			return m, nil
		}
		if id, ok := selectedID(m.valuesTable); ok {
			for _, v := range m.store.DimensionValues() {
				if v.ID == id {
					return m.openValueEditForm(v).withInit()
				}
			}
		}
		return m, nil

	case "s":
		if m.store.DirtyCount() == 0 {
			m.statusMsg = "Nothing to save"
			return m, nil
		}
		m.busy = true
		return m, m.saveDirtyCmd()

	case "u":
		m.store.DiscardDirty()
		m.statusMsg = "Pending edits discarded"
		return m, nil

	case "i":
		return m.openImportForm(false).withInit()
	}

	return m.updateActiveComponent(msg)
}

// activeCompany looks up the active company's cached record
func (m Model) activeCompany() (store.Company, bool) {
	id, ok := m.store.ActiveCompanyID()
	if !ok {
		return store.Company{}, false
	}
	for _, c := range m.store.Companies() {
		if c.ID == id {
			return c, true
		}
	}
	return store.Company{}, false
}

// selectedID parses the id column of a table's selected row
func selectedID(t table.Model) (int, bool) {
	row := t.SelectedRow()
	if len(row) == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return 0, false
	}
	return id, true
}
