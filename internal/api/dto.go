package api

// Wire-format records as the server returns and accepts them:
// snake_case keys, pointers for nullable fields. The login response
// user block is the one camelCase exception in the server contract.

// LoginRequestDTO is the POST /auth/login body
type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUserDTO is the user block embedded in the login response
type LoginUserDTO struct {
	ID                  int            `json:"id"`
	Email               string         `json:"email"`
	DisplayName         string         `json:"displayName"`
	Role                string         `json:"role"`
	CompanyID           *int           `json:"companyId"`
	ForcePasswordChange bool           `json:"forcePasswordChange"`
	Permissions         map[string]any `json:"permissions"`
	IsActive            *bool          `json:"isActive"`
}

// LoginResponseDTO is the POST /auth/login response
type LoginResponseDTO struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        LoginUserDTO `json:"user"`
}

// CompanyDTO is a company record on the wire
type CompanyDTO struct {
	CompanyID       int     `json:"company_id"`
	CompanyCode     *string `json:"company_code"`
	CompanyName     string  `json:"company_name"`
	Address1        *string `json:"address1"`
	Address2        *string `json:"address2"`
	City            *string `json:"city"`
	State           *string `json:"state"`
	Zip             *string `json:"zip"`
	Domain          *string `json:"domain"`
	Industry        *string `json:"industry"`
	IsActive        bool    `json:"is_active"`
	CalendarSheetID *int    `json:"calendar_sheet_id"`
}

// CompanyCreateDTO is the POST /companies body
type CompanyCreateDTO struct {
	CompanyCode *string `json:"company_code,omitempty"`
	CompanyName string  `json:"company_name"`
	Address1    *string `json:"address1"`
	Address2    *string `json:"address2"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Zip         *string `json:"zip"`
	Domain      *string `json:"domain"`
	Industry    *string `json:"industry"`
}

// CompanyUpdateDTO is the PATCH /companies/{id} body. IsActive and
// CalendarSheetID ride along only when explicitly provided so that
// omitted flags never clear server state.
type CompanyUpdateDTO struct {
	CompanyName     string  `json:"company_name"`
	Address1        string  `json:"address1"`
	Address2        *string `json:"address2"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	Zip             string  `json:"zip"`
	Domain          string  `json:"domain"`
	Industry        string  `json:"industry"`
	IsActive        *bool   `json:"is_active,omitempty"`
	CalendarSheetID *int    `json:"calendar_sheet_id,omitempty"`
}

// UserDTO is a company user record on the wire
type UserDTO struct {
	ID                  int            `json:"id"`
	Email               string         `json:"email"`
	DisplayName         string         `json:"display_name"`
	Role                string         `json:"role"`
	CompanyID           *int           `json:"company_id"`
	ForcePasswordChange bool           `json:"force_password_change"`
	IsActive            bool           `json:"is_active"`
	Permissions         map[string]any `json:"permissions"`
}

// UserCreateDTO is the POST /companies/{id}/users body
type UserCreateDTO struct {
	Username            string         `json:"username"`
	DisplayName         string         `json:"display_name"`
	Role                string         `json:"role"`
	TempPassword        string         `json:"temp_password"`
	ForcePasswordChange bool           `json:"force_password_change"`
	Permissions         map[string]any `json:"permissions,omitempty"`
}

// SheetDTO is a sheet record on the wire
type SheetDTO struct {
	SheetID     int            `json:"sheet_id"`
	CompanyID   int            `json:"company_id"`
	SheetKey    string         `json:"sheet_key"`
	SheetName   string         `json:"sheet_name"`
	Description *string        `json:"description"`
	ModelJSON   map[string]any `json:"model_json"`
	IsActive    bool           `json:"is_active"`
}

// CalendarRowDTO is one fiscal-calendar day on the wire
type CalendarRowDTO struct {
	CompanyID     int    `json:"company_id"`
	DateID        string `json:"date_id"`
	FiscalYear    int    `json:"fiscal_year"`
	FiscalQuarter int    `json:"fiscal_quarter"`
	FiscalMonth   int    `json:"fiscal_month"`
	FiscalWeek    int    `json:"fiscal_week"`
	FiscalYrwk    any    `json:"fiscal_yrwk"`
	FiscalDow     int    `json:"fiscal_dow"`
	FiscalDom     int    `json:"fiscal_dom"`
	ISOYear       int    `json:"iso_year"`
	ISOQuarter    int    `json:"iso_quarter"`
	ISOMonth      int    `json:"iso_month"`
	ISOWeek       int    `json:"iso_week"`
	ISODow        int    `json:"iso_dow"`
	ISODom        int    `json:"iso_dom"`
	DayName       string `json:"day_name"`
}

// DimensionDTO is a dimension record on the wire
type DimensionDTO struct {
	DimensionID   int     `json:"dimension_id"`
	CompanyID     int     `json:"company_id"`
	DimensionKey  string  `json:"dimension_key"`
	DimensionName string  `json:"dimension_name"`
	Description   *string `json:"description"`
	DataType      string  `json:"data_type"`
	IsActive      bool    `json:"is_active"`
}

// DimensionCreateDTO is the POST .../dimensions body
type DimensionCreateDTO struct {
	DimensionKey  string  `json:"dimension_key"`
	DimensionName string  `json:"dimension_name"`
	Description   *string `json:"description"`
	DataType      string  `json:"data_type"`
}

// DimensionUpdateDTO is the PATCH .../dimensions/{id} body. Nil fields
// are omitted entirely so the server preserves their current values.
type DimensionUpdateDTO struct {
	DimensionName *string `json:"dimension_name,omitempty"`
	Description   *string `json:"description,omitempty"`
	DataType      *string `json:"data_type,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// DimensionValueDTO is a dimension value record on the wire
type DimensionValueDTO struct {
	DimensionValueID int            `json:"dimension_value_id"`
	CompanyID        int            `json:"company_id"`
	DimensionID      int            `json:"dimension_id"`
	ValueKey         string         `json:"value_key"`
	ValueName        string         `json:"value_name"`
	ParentValueID    *int           `json:"parent_value_id"`
	SortOrder        *int           `json:"sort_order"`
	AttributesJSON   map[string]any `json:"attributes_json"`
	IsActive         bool           `json:"is_active"`
}

// DimensionValueCreateDTO is the POST .../values body
type DimensionValueCreateDTO struct {
	ValueKey       string         `json:"value_key"`
	ValueName      string         `json:"value_name"`
	SortOrder      *int           `json:"sort_order"`
	AttributesJSON map[string]any `json:"attributes_json"`
}

// DimensionValueUpdateDTO is the PATCH .../values/{id} body, with the
// same omit-when-nil semantics as DimensionUpdateDTO.
type DimensionValueUpdateDTO struct {
	ValueName      *string         `json:"value_name,omitempty"`
	SortOrder      *int            `json:"sort_order,omitempty"`
	AttributesJSON *map[string]any `json:"attributes_json,omitempty"`
	IsActive       *bool           `json:"is_active,omitempty"`
}

// ImportBucketDTO counts one entity class in a dimensions import
type ImportBucketDTO struct {
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Skipped int              `json:"skipped"`
	Errors  []ImportRowError `json:"errors"`
}

// ImportRowError describes one failed row in a dimensions import
type ImportRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportSummaryDTO is the POST .../dimensions/import response
type ImportSummaryDTO struct {
	OK      bool `json:"ok"`
	Summary struct {
		Dimensions ImportBucketDTO `json:"dimensions"`
		Values     ImportBucketDTO `json:"values"`
	} `json:"summary"`
}
