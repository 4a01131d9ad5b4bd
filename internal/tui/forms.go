package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/plannerx/plx/internal/store"
)

const keepChoice = "(keep current)"

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// openLoginForm builds the login form
func (m Model) openLoginForm() Model {
	m.formKind = formLogin
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Email").
				Validate(required("email")),
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(required("password")),
		).Title("Sign in to Planner X"),
	)
	return m
}

// openPasswordForm builds the change-password form
func (m Model) openPasswordForm() Model {
	var newPassword string
	m.formKind = formPassword
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("password").
				Title("New password").
				EchoMode(huh.EchoModePassword).
				Value(&newPassword).
				Validate(func(s string) error {
					if len(s) < 8 {
						return fmt.Errorf("use at least 8 characters")
					}
					return nil
				}),
			huh.NewInput().
				Key("confirm").
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if s != newPassword {
						return fmt.Errorf("passwords do not match")
					}
					return nil
				}),
		).Title("Change password"),
	)
	return m
}

// openCompanyCreateForm builds the new-company form
func (m Model) openCompanyCreateForm() Model {
	m.formKind = formCompanyCreate
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("name").Title("Company name").Validate(required("name")),
			huh.NewInput().Key("domain").Title("Domain").
				Description("Used to derive the company code").
				Validate(required("domain")),
			huh.NewInput().Key("industry").Title("Industry"),
		).Title("New company"),
		huh.NewGroup(
			huh.NewInput().Key("address1").Title("Address line 1"),
			huh.NewInput().Key("address2").Title("Address line 2"),
			huh.NewInput().Key("city").Title("City"),
			huh.NewInput().Key("state").Title("State"),
			huh.NewInput().Key("zip").Title("ZIP"),
		).Title("Address"),
	)
	return m
}

// openCompanyEditForm builds the settings form for the active company
func (m Model) openCompanyEditForm(c store.Company) Model {
	name := c.Name
	address1 := c.Address1
	address2 := c.Address2
	city := c.City
	state := c.State
	zip := c.Zip
	industry := c.Industry

	activeOptions := []huh.Option[string]{
		huh.NewOption(keepChoice, keepChoice),
		huh.NewOption("active", "active"),
		huh.NewOption("inactive", "inactive"),
	}

	sheetOptions := []huh.Option[string]{huh.NewOption(keepChoice, keepChoice)}
	for _, sh := range m.store.Sheets() {
		label := fmt.Sprintf("%s (#%d)", sh.Name, sh.ID)
		sheetOptions = append(sheetOptions, huh.NewOption(label, strconv.Itoa(sh.ID)))
	}

	m.formKind = formCompanyEdit
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("name").Title("Company name").Value(&name).Validate(required("name")),
			huh.NewInput().Key("industry").Title("Industry").Value(&industry),
			huh.NewInput().Key("address1").Title("Address line 1").Value(&address1),
			huh.NewInput().Key("address2").Title("Address line 2").Value(&address2),
			huh.NewInput().Key("city").Title("City").Value(&city),
			huh.NewInput().Key("state").Title("State").Value(&state),
			huh.NewInput().Key("zip").Title("ZIP").Value(&zip),
		).Title(fmt.Sprintf("Company settings (domain %s is fixed)", c.Domain)),
		huh.NewGroup(
			huh.NewSelect[string]().Key("active").Title("Status").Options(activeOptions...),
			huh.NewSelect[string]().Key("calendarSheet").Title("Calendar sheet").Options(sheetOptions...),
		).Title("Flags"),
	)
	return m
}

// openUserCreateForm builds the new-user form
func (m Model) openUserCreateForm() Model {
	roleOptions := []huh.Option[string]{
		huh.NewOption("Company admin", string(store.RoleCompanyAdmin)),
		huh.NewOption("CEO", string(store.RoleCEO)),
		huh.NewOption("CFO", string(store.RoleCFO)),
		huh.NewOption("Key account manager", string(store.RoleKAM)),
	}

	capOptions := make([]huh.Option[string], 0, len(store.KnownCapabilities))
	for _, c := range store.KnownCapabilities {
		capOptions = append(capOptions, huh.NewOption(c, c))
	}

	m.formKind = formUserCreate
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("username").Title("Email / username").Validate(required("username")),
			huh.NewInput().Key("displayName").Title("Display name").Validate(required("display name")),
			huh.NewSelect[string]().Key("role").Title("Role").Options(roleOptions...),
			huh.NewInput().Key("tempPassword").Title("Temporary password").
				EchoMode(huh.EchoModePassword).
				Validate(required("temporary password")),
			huh.NewConfirm().Key("forceChange").Title("Require password change on first login?").
				Affirmative("Yes").Negative("No"),
		).Title("New user"),
		huh.NewGroup(
			huh.NewMultiSelect[string]().Key("permissions").Title("Permissions").Options(capOptions...),
		),
	)
	return m
}

// openDimensionCreateForm builds the new-dimension form
func (m Model) openDimensionCreateForm() Model {
	typeOptions := []huh.Option[string]{
		huh.NewOption("Text", string(store.DataTypeText)),
		huh.NewOption("Number", string(store.DataTypeNumber)),
		huh.NewOption("Date", string(store.DataTypeDate)),
	}

	m.formKind = formDimensionCreate
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("key").Title("Dimension key").Validate(required("key")),
			huh.NewInput().Key("name").Title("Dimension name").Validate(required("name")),
			huh.NewInput().Key("description").Title("Description"),
			huh.NewSelect[string]().Key("dataType").Title("Data type").Options(typeOptions...),
		).Title("New dimension"),
	)
	return m
}

// openValueEditForm builds the edit form for one dimension value. The
// result lands in the dirty set, not on the server.
func (m Model) openValueEditForm(v store.DimensionValue) Model {
	name := v.Name
	sortOrder := ""
	if v.SortOrder != 0 {
		sortOrder = strconv.Itoa(v.SortOrder)
	}

	m.formValueID = v.ID
	m.formKind = formValueEdit
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("name").Title("Value name").Value(&name).Validate(required("name")),
			huh.NewInput().Key("sortOrder").Title("Sort order").Value(&sortOrder).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("sort order must be a number")
					}
					return nil
				}),
			huh.NewConfirm().Key("active").Title("Active?").
				Affirmative("Yes").Negative("No").Value(&v.IsActive),
		).Title(fmt.Sprintf("Edit value %q", v.Key)),
	)
	return m
}

// openImportForm builds the workbook-path prompt
func (m Model) openImportForm(calendar bool) Model {
	if calendar {
		m.formKind = formImportCalendar
	} else {
		m.formKind = formImportDimensions
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("path").Title("Workbook path (.xlsx)").Validate(required("path")),
		).Title("Import"),
	)
	return m
}

// submitForm dispatches a completed form
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	form := m.form
	kind := m.formKind
	m.form = nil
	m.formKind = formNone

	switch kind {
	case formLogin:
		m.busy = true
		return m, m.loginCmd(form.GetString("email"), form.GetString("password"))

	case formPassword:
		m.busy = true
		return m, m.changePasswordCmd(form.GetString("password"))

	case formCompanyCreate:
		m.busy = true
		in := store.CompanyInput{
			Name:     form.GetString("name"),
			Domain:   form.GetString("domain"),
			Industry: form.GetString("industry"),
			Address1: form.GetString("address1"),
			Address2: form.GetString("address2"),
			City:     form.GetString("city"),
			State:    form.GetString("state"),
			Zip:      form.GetString("zip"),
		}
		s := m.store
		return m, func() tea.Msg {
			_, err := s.CreateCompany(context.Background(), in)
			return companySavedMsg{err: err}
		}

	case formCompanyEdit:
		companyID, ok := m.store.ActiveCompanyID()
		if !ok {
			m.errMsg = "no active company"
			return m, nil
		}
		patch := store.CompanyPatch{
			Name:     strPatch(form.GetString("name")),
			Industry: strPatch(form.GetString("industry")),
			Address1: strPatch(form.GetString("address1")),
			Address2: strPatch(form.GetString("address2")),
			City:     strPatch(form.GetString("city")),
			State:    strPatch(form.GetString("state")),
			Zip:      strPatch(form.GetString("zip")),
		}
		switch form.GetString("active") {
		case "active":
			patch.IsActive = boolPtr(true)
		case "inactive":
			patch.IsActive = boolPtr(false)
		}
		if raw := form.GetString("calendarSheet"); raw != "" && raw != keepChoice {
			if id, err := strconv.Atoi(raw); err == nil {
				patch.CalendarSheetID = &id
			}
		}
		m.busy = true
		s := m.store
		return m, func() tea.Msg {
			_, err := s.UpdateCompany(context.Background(), companyID, patch)
			return companySavedMsg{err: err}
		}

	case formUserCreate:
		perms := store.Permissions{}
		for _, c := range form.Get("permissions").([]string) {
			perms[c] = true
		}
		in := store.UserInput{
			Username:            form.GetString("username"),
			DisplayName:         form.GetString("displayName"),
			Role:                store.Role(form.GetString("role")),
			TempPassword:        form.GetString("tempPassword"),
			ForcePasswordChange: form.GetBool("forceChange"),
			Permissions:         perms,
		}
		m.busy = true
		s := m.store
		return m, func() tea.Msg {
			_, err := s.CreateUserForActiveCompany(context.Background(), in)
			return userSavedMsg{err: err}
		}

	case formDimensionCreate:
		companyID, ok := m.store.ActiveCompanyID()
		if !ok {
			m.errMsg = "no active company"
			return m, nil
		}
		in := store.DimensionInput{
			Key:         form.GetString("key"),
			Name:        form.GetString("name"),
			Description: form.GetString("description"),
			DataType:    store.DimensionDataType(form.GetString("dataType")),
		}
		m.busy = true
		s := m.store
		return m, func() tea.Msg {
			_, err := s.CreateDimension(context.Background(), companyID, in)
			return dimensionSavedMsg{err: err}
		}

	case formValueEdit:
		patch := store.ValuePatch{
			Name: strPatch(form.GetString("name")),
		}
		if raw := strings.TrimSpace(form.GetString("sortOrder")); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				patch.SortOrder = &n
			}
		}
		active := form.GetBool("active")
		patch.IsActive = &active

		m.store.MarkValueDirty(m.formValueID, patch)
		m.statusMsg = fmt.Sprintf("%d unsaved change(s); press s to save", m.store.DirtyCount())
		return m, nil

	case formImportCalendar, formImportDimensions:
		companyID, ok := m.store.ActiveCompanyID()
		if !ok {
			m.errMsg = "no active company"
			return m, nil
		}
		m.busy = true
		return m, m.importCmd(companyID, strings.TrimSpace(form.GetString("path")), kind == formImportCalendar)
	}

	return m, nil
}

func strPatch(s string) *string { return &s }

func boolPtr(v bool) *bool { return &v }
