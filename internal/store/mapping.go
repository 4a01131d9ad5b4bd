package store

import (
	"fmt"
	"strings"

	"github.com/plannerx/plx/internal/api"
)

// Pure wire-to-view translation. Each function is total: nullable wire
// fields collapse to zero values, unknown enums are normalized.

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// NormalizeDataType upper-cases a wire data type and defaults anything
// unrecognized to TEXT.
func NormalizeDataType(s string) DimensionDataType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(DataTypeNumber):
		return DataTypeNumber
	case string(DataTypeDate):
		return DataTypeDate
	default:
		return DataTypeText
	}
}

func permissionsFromWire(raw map[string]any) Permissions {
	perms := make(Permissions, len(raw))
	for name, v := range raw {
		granted, ok := v.(bool)
		perms[name] = ok && granted
	}
	return perms
}

func companyFromDTO(c api.CompanyDTO) Company {
	return Company{
		ID:              c.CompanyID,
		Name:            c.CompanyName,
		Address1:        deref(c.Address1),
		Address2:        deref(c.Address2),
		City:            deref(c.City),
		State:           deref(c.State),
		Zip:             deref(c.Zip),
		Domain:          deref(c.Domain),
		Industry:        deref(c.Industry),
		IsActive:        c.IsActive,
		CalendarSheetID: deref(c.CalendarSheetID),
	}
}

func userFromDTO(u api.UserDTO) User {
	return User{
		ID:                  u.ID,
		Email:               u.Email,
		DisplayName:         u.DisplayName,
		Role:                Role(u.Role),
		CompanyID:           deref(u.CompanyID),
		ForcePasswordChange: u.ForcePasswordChange,
		IsActive:            u.IsActive,
		Permissions:         permissionsFromWire(u.Permissions),
	}
}

func userFromLoginDTO(u api.LoginUserDTO) User {
	active := true
	if u.IsActive != nil {
		active = *u.IsActive
	}
	return User{
		ID:                  u.ID,
		Email:               u.Email,
		DisplayName:         u.DisplayName,
		Role:                Role(u.Role),
		CompanyID:           deref(u.CompanyID),
		ForcePasswordChange: u.ForcePasswordChange,
		IsActive:            active,
		Permissions:         permissionsFromWire(u.Permissions),
	}
}

func sheetFromDTO(s api.SheetDTO) Sheet {
	model := s.ModelJSON
	if model == nil {
		model = map[string]any{}
	}
	return Sheet{
		ID:          s.SheetID,
		CompanyID:   s.CompanyID,
		Key:         s.SheetKey,
		Name:        s.SheetName,
		Description: deref(s.Description),
		Model:       model,
		IsActive:    s.IsActive,
	}
}

func calendarRowFromDTO(r api.CalendarRowDTO) CalendarRow {
	yrwk := ""
	if r.FiscalYrwk != nil {
		yrwk = fmt.Sprint(r.FiscalYrwk)
	}
	return CalendarRow{
		CompanyID:     r.CompanyID,
		DateID:        r.DateID,
		FiscalYear:    r.FiscalYear,
		FiscalQuarter: r.FiscalQuarter,
		FiscalMonth:   r.FiscalMonth,
		FiscalWeek:    r.FiscalWeek,
		FiscalYrwk:    yrwk,
		FiscalDow:     r.FiscalDow,
		FiscalDom:     r.FiscalDom,
		ISOYear:       r.ISOYear,
		ISOQuarter:    r.ISOQuarter,
		ISOMonth:      r.ISOMonth,
		ISOWeek:       r.ISOWeek,
		ISODow:        r.ISODow,
		ISODom:        r.ISODom,
		DayName:       r.DayName,
	}
}

func dimensionFromDTO(d api.DimensionDTO) Dimension {
	return Dimension{
		ID:          d.DimensionID,
		CompanyID:   d.CompanyID,
		Key:         d.DimensionKey,
		Name:        d.DimensionName,
		Description: deref(d.Description),
		DataType:    NormalizeDataType(d.DataType),
		IsActive:    d.IsActive,
	}
}

func dimensionValueFromDTO(v api.DimensionValueDTO) DimensionValue {
	attrs := v.AttributesJSON
	if attrs == nil {
		attrs = map[string]any{}
	}
	return DimensionValue{
		ID:          v.DimensionValueID,
		CompanyID:   v.CompanyID,
		DimensionID: v.DimensionID,
		Key:         v.ValueKey,
		Name:        v.ValueName,
		SortOrder:   deref(v.SortOrder),
		Attributes:  attrs,
		IsActive:    v.IsActive,
	}
}

func importSummaryFromDTO(s api.ImportSummaryDTO) ImportSummary {
	return ImportSummary{
		OK:         s.OK,
		Dimensions: importBucketFromDTO(s.Summary.Dimensions),
		Values:     importBucketFromDTO(s.Summary.Values),
	}
}

func importBucketFromDTO(b api.ImportBucketDTO) ImportBucket {
	bucket := ImportBucket{
		Created: b.Created,
		Updated: b.Updated,
		Skipped: b.Skipped,
	}
	for _, e := range b.Errors {
		bucket.Errors = append(bucket.Errors, ImportRowError{Row: e.Row, Error: e.Error})
	}
	return bucket
}

// trimmedOrNil returns a pointer to the trimmed string, or nil when the
// result is empty, so blank form fields go out as null instead of "".
func trimmedOrNil(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}
