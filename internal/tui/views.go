package tui

import (
	"fmt"
	"strings"

	"github.com/plannerx/plx/internal/guard"
)

// renderChrome wraps view content with the shared header and footer
func (m Model) renderChrome(content string) string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Planner X"))
	if u, ok := m.store.CurrentUser(); ok {
		badge := fmt.Sprintf(" %s · %s ", u.DisplayName, u.Role)
		b.WriteString("  ")
		b.WriteString(m.styles.Badge.Render(badge))
		if c, ok := m.activeCompany(); ok {
			b.WriteString(" ")
			b.WriteString(m.styles.Subtitle.Render(c.Name))
		}
	}
	b.WriteString("\n\n")

	if m.busy {
		b.WriteString(m.styles.Status.Render("Working..."))
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render("Error: ") + m.errMsg)
		b.WriteString("\n\n")
	}
	if m.formKind == formLogin {
		if msg := m.store.AuthError(); msg != "" {
			b.WriteString(m.styles.Error.Render(msg))
			b.WriteString("\n\n")
		}
	}
	if m.statusMsg != "" {
		b.WriteString(m.styles.Success.Render(m.statusMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(content)
	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())
	return b.String()
}

func (m Model) renderSelectCompany() string {
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("Select a company to administer"))
	b.WriteString("\n")
	b.WriteString(m.companiesTable.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("enter select"))
	return b.String()
}

func (m Model) renderCompanies() string {
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("Companies"))
	b.WriteString("\n")
	b.WriteString(m.companiesTable.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("enter select · n new"))
	return b.String()
}

func (m Model) renderUsers() string {
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("Users"))
	b.WriteString("\n")
	b.WriteString(m.usersTable.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("n new user"))
	return b.String()
}

func (m Model) renderHome() string {
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("Planning sheets"))
	b.WriteString("\n")
	b.WriteString(m.sheetsTable.View())
	return b.String()
}

func (m Model) renderCalendar() string {
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("Fiscal calendar (%d days)", len(m.store.CalendarRows()))))
	b.WriteString("\n")
	b.WriteString(m.calendarTable.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("i import workbook"))
	return b.String()
}

func (m Model) renderDimensions() string {
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("Dimensions"))
	b.WriteString("\n")
	b.WriteString(m.dimsTable.View())
	b.WriteString("\n\n")

	if id, ok := m.store.SelectedDimensionID(); ok {
		label := fmt.Sprintf("Values (dimension #%d)", id)
		if n := m.store.DirtyCount(); n > 0 {
			label += m.styles.Warning.Render(fmt.Sprintf("  %d unsaved", n))
		}
		b.WriteString(m.styles.Subtitle.Render(label))
		b.WriteString("\n")
		b.WriteString(m.valuesTable.View())
		b.WriteString("\n")
	}

	if m.hasImportInfo {
		b.WriteString(m.renderImportSummary())
	}

	b.WriteString(m.styles.Muted.Render("enter load values · tab switch pane · e edit · s save · u undo · n new · i import"))
	return b.String()
}

func (m Model) renderImportSummary() string {
	s := m.lastImport
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("Last import"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("dimensions: %d created, %d updated, %d skipped\n",
		s.Dimensions.Created, s.Dimensions.Updated, s.Dimensions.Skipped))
	b.WriteString(fmt.Sprintf("values:     %d created, %d updated, %d skipped\n",
		s.Values.Created, s.Values.Updated, s.Values.Skipped))
	for _, e := range append(s.Dimensions.Errors, s.Values.Errors...) {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("row %d: %s", e.Row, e.Error)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderSettings() string {
	c, ok := m.activeCompany()
	if !ok {
		return m.styles.Muted.Render("No company loaded")
	}

	label := m.styles.Muted
	value := m.styles.Status

	lines := []string{
		label.Render("Name:      ") + value.Render(c.Name),
		label.Render("Domain:    ") + value.Render(c.Domain),
		label.Render("Industry:  ") + value.Render(c.Industry),
		label.Render("Address:   ") + value.Render(strings.TrimSpace(c.Address1+" "+c.Address2)),
		label.Render("City:      ") + value.Render(fmt.Sprintf("%s %s %s", c.City, c.State, c.Zip)),
		label.Render("Active:    ") + value.Render(activeFlag(c.IsActive)),
	}
	if c.CalendarSheetID != 0 {
		lines = append(lines, label.Render("Calendar:  ")+value.Render(fmt.Sprintf("sheet #%d", c.CalendarSheetID)))
	}

	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("Company settings"))
	b.WriteString("\n")
	b.WriteString(m.styles.Border.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("e edit"))
	return b.String()
}

// renderHelpLine renders the navigation help at the bottom
func (m Model) renderHelpLine() string {
	if m.route == guard.RouteLogin || m.route == guard.RouteChangePassword {
		return m.styles.Help.Render(m.styles.Key.Render("ctrl+c") + " quit")
	}

	items := []string{
		m.styles.Key.Render("1") + " sheets",
		m.styles.Key.Render("2") + " calendar",
		m.styles.Key.Render("3") + " dimensions",
	}
	if u, ok := m.store.CurrentUser(); ok {
		switch u.Role {
		case "SYSADMIN":
			items = append(items,
				m.styles.Key.Render("4")+" users",
				m.styles.Key.Render("5")+" settings",
				m.styles.Key.Render("6")+" companies",
				m.styles.Key.Render("0")+" switch company",
			)
		case "COMPANY_ADMIN":
			items = append(items,
				m.styles.Key.Render("4")+" users",
				m.styles.Key.Render("5")+" settings",
			)
		}
	}
	items = append(items,
		m.styles.Key.Render("r")+" refresh",
		m.styles.Key.Render("p")+" password",
		m.styles.Key.Render("L")+" logout",
		m.styles.Key.Render("q")+" quit",
	)
	return m.styles.Help.Render(strings.Join(items, " · "))
}
