package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerx/plx/internal/api"
)

func TestNormalizeDataType(t *testing.T) {
	cases := map[string]DimensionDataType{
		"text":     DataTypeText,
		" NUMBER ": DataTypeNumber,
		"Date":     DataTypeDate,
		"":         DataTypeText,
		"decimal":  DataTypeText,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeDataType(in), "input %q", in)
	}
}

func TestCompanyFromDTODefaultsNullables(t *testing.T) {
	c := companyFromDTO(api.CompanyDTO{
		CompanyID:   1,
		CompanyName: "Acme",
		IsActive:    true,
	})

	assert.Equal(t, 1, c.ID)
	assert.Equal(t, "Acme", c.Name)
	assert.Empty(t, c.Address1)
	assert.Empty(t, c.Domain)
	assert.Zero(t, c.CalendarSheetID)
	assert.True(t, c.IsActive)
}

func TestCompanyMappingRoundTrip(t *testing.T) {
	wire := companyDTO(1, "Acme", "acme.test")
	wire.Address2 = strPtr("Suite 4")
	wire.CalendarSheetID = intPtr(3)

	view := companyFromDTO(wire)

	assert.Equal(t, "1 Main St", view.Address1)
	assert.Equal(t, "Suite 4", view.Address2)
	assert.Equal(t, "Springfield", view.City)
	assert.Equal(t, "IL", view.State)
	assert.Equal(t, "62704", view.Zip)
	assert.Equal(t, "acme.test", view.Domain)
	assert.Equal(t, "retail", view.Industry)
	assert.Equal(t, 3, view.CalendarSheetID)
}

func TestUserFromLoginDTO(t *testing.T) {
	u := userFromLoginDTO(api.LoginUserDTO{
		ID:          7,
		Email:       "cfo@acme.test",
		DisplayName: "CFO",
		Role:        "CFO",
		CompanyID:   intPtr(42),
		Permissions: map[string]any{"canViewSheets": true, "bogus": "yes"},
	})

	assert.Equal(t, RoleCFO, u.Role)
	assert.Equal(t, 42, u.CompanyID)
	assert.True(t, u.IsActive, "isActive defaults true when the server omits it")
	assert.True(t, u.Permissions.Can("canViewSheets"))
	assert.False(t, u.Permissions.Can("bogus"), "non-boolean grants do not count")
}

func TestCalendarRowFromDTOYrwkVariants(t *testing.T) {
	asString := calendarRowFromDTO(api.CalendarRowDTO{FiscalYrwk: "2026-05"})
	assert.Equal(t, "2026-05", asString.FiscalYrwk)

	// Numeric yrwk values show up in older calendar exports.
	asNumber := calendarRowFromDTO(api.CalendarRowDTO{FiscalYrwk: float64(202605)})
	assert.Equal(t, "202605", asNumber.FiscalYrwk)

	empty := calendarRowFromDTO(api.CalendarRowDTO{})
	assert.Empty(t, empty.FiscalYrwk)
}

func TestDimensionValueFromDTODefaults(t *testing.T) {
	v := dimensionValueFromDTO(api.DimensionValueDTO{
		DimensionValueID: 100, CompanyID: 1, DimensionID: 5,
		ValueKey: "emea", ValueName: "EMEA", IsActive: true,
	})

	assert.Equal(t, 100, v.ID)
	assert.Zero(t, v.SortOrder)
	require.NotNil(t, v.Attributes, "attributes default to an empty object")
	assert.Empty(t, v.Attributes)
}

func TestTrimmedOrNil(t *testing.T) {
	assert.Nil(t, trimmedOrNil("   "))
	got := trimmedOrNil("  hello ")
	require.NotNil(t, got)
	assert.Equal(t, "hello", *got)
}
