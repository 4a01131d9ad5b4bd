package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"github.com/plannerx/plx/internal/store"
)

const tableHeight = 14

func newTable(columns []table.Column, rows []table.Row) table.Model {
	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(tableHeight),
		table.WithFocused(true),
	)
}

func activeFlag(active bool) string {
	if active {
		return "yes"
	}
	return "no"
}

func companiesTable(companies []store.Company) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 28},
		{Title: "Domain", Width: 22},
		{Title: "Industry", Width: 14},
		{Title: "Active", Width: 6},
	}
	rows := make([]table.Row, 0, len(companies))
	for _, c := range companies {
		rows = append(rows, table.Row{
			strconv.Itoa(c.ID), c.Name, c.Domain, c.Industry, activeFlag(c.IsActive),
		})
	}
	return newTable(columns, rows)
}

func usersTable(users []store.User) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Email", Width: 30},
		{Title: "Name", Width: 22},
		{Title: "Role", Width: 14},
		{Title: "Active", Width: 6},
	}
	rows := make([]table.Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, table.Row{
			strconv.Itoa(u.ID), u.Email, u.DisplayName, string(u.Role), activeFlag(u.IsActive),
		})
	}
	return newTable(columns, rows)
}

func sheetsTable(sheets []store.Sheet) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Key", Width: 16},
		{Title: "Name", Width: 28},
		{Title: "Active", Width: 6},
	}
	rows := make([]table.Row, 0, len(sheets))
	for _, sh := range sheets {
		rows = append(rows, table.Row{
			strconv.Itoa(sh.ID), sh.Key, sh.Name, activeFlag(sh.IsActive),
		})
	}
	return newTable(columns, rows)
}

func calendarTable(days []store.CalendarRow) table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "FY", Width: 6},
		{Title: "FQ", Width: 4},
		{Title: "FM", Width: 4},
		{Title: "FW", Width: 4},
		{Title: "YRWK", Width: 8},
		{Title: "Day", Width: 10},
	}
	rows := make([]table.Row, 0, len(days))
	for _, d := range days {
		rows = append(rows, table.Row{
			d.DateID,
			strconv.Itoa(d.FiscalYear),
			strconv.Itoa(d.FiscalQuarter),
			strconv.Itoa(d.FiscalMonth),
			strconv.Itoa(d.FiscalWeek),
			d.FiscalYrwk,
			d.DayName,
		})
	}
	return newTable(columns, rows)
}

func dimensionsTable(dims []store.Dimension) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Key", Width: 16},
		{Title: "Name", Width: 24},
		{Title: "Type", Width: 8},
		{Title: "Active", Width: 6},
	}
	rows := make([]table.Row, 0, len(dims))
	for _, d := range dims {
		rows = append(rows, table.Row{
			strconv.Itoa(d.ID), d.Key, d.Name, string(d.DataType), activeFlag(d.IsActive),
		})
	}
	return newTable(columns, rows)
}

func valuesTable(values []store.DimensionValue) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Key", Width: 16},
		{Title: "Name", Width: 24},
		{Title: "Sort", Width: 6},
		{Title: "Active", Width: 6},
	}
	rows := make([]table.Row, 0, len(values))
	for _, v := range values {
		sort := ""
		if v.SortOrder != 0 {
			sort = strconv.Itoa(v.SortOrder)
		}
		rows = append(rows, table.Row{
			strconv.Itoa(v.ID), v.Key, v.Name, sort, activeFlag(v.IsActive),
		})
	}
	return newTable(columns, rows)
}
