package store

// Role is a user's role within Planner X
type Role string

// User roles
const (
	RoleSysadmin     Role = "SYSADMIN"
	RoleCompanyAdmin Role = "COMPANY_ADMIN"
	RoleCEO          Role = "CEO"
	RoleCFO          Role = "CFO"
	RoleKAM          Role = "KAM"
)

// KnownCapabilities lists the permission keys the server understands,
// in the order admin screens present them.
var KnownCapabilities = []string{
	"canCreateSheets",
	"canViewSheets",
	"canEditSheets",
	"canLockSheets",
	"canCreateVersions",
	"canViewVersions",
	"canEditVersions",
	"canLockVersions",
	"canCreateDimensions",
	"canViewDimensions",
	"canEditDimensions",
	"canCreateDimensionValues",
	"canViewDimensionValues",
	"canEditDimensionValues",
	"canCreateUsers",
	"canResetPasswords",
	"canManageCalendar",
}

// Permissions maps capability names to grants
type Permissions map[string]bool

// Can reports whether a capability is granted
func (p Permissions) Can(capability string) bool {
	return p[capability]
}

// User is the in-memory view of a Planner X user
type User struct {
	ID                  int
	Email               string
	DisplayName         string
	Role                Role
	CompanyID           int // 0 when unbound (SYSADMIN before tunneling)
	ForcePasswordChange bool
	IsActive            bool
	Permissions         Permissions
}

// Company is the in-memory view of a tenant
type Company struct {
	ID              int
	Name            string
	Address1        string
	Address2        string
	City            string
	State           string
	Zip             string
	Domain          string
	Industry        string
	IsActive        bool
	CalendarSheetID int // 0 until a calendar sheet is linked
}

// Sheet is the in-memory view of a planning sheet
type Sheet struct {
	ID          int
	CompanyID   int
	Key         string
	Name        string
	Description string
	Model       map[string]any
	IsActive    bool
}

// CalendarRow is one day of a company's fiscal calendar
type CalendarRow struct {
	CompanyID     int
	DateID        string
	FiscalYear    int
	FiscalQuarter int
	FiscalMonth   int
	FiscalWeek    int
	FiscalYrwk    string
	FiscalDow     int
	FiscalDom     int
	ISOYear       int
	ISOQuarter    int
	ISOMonth      int
	ISOWeek       int
	ISODow        int
	ISODom        int
	DayName       string
}

// DimensionDataType classifies dimension values
type DimensionDataType string

// Dimension data types
const (
	DataTypeText   DimensionDataType = "TEXT"
	DataTypeNumber DimensionDataType = "NUMBER"
	DataTypeDate   DimensionDataType = "DATE"
)

// Dimension is the in-memory view of a planning dimension
type Dimension struct {
	ID          int
	CompanyID   int
	Key         string
	Name        string
	Description string
	DataType    DimensionDataType
	IsActive    bool
}

// DimensionValue is the in-memory view of one dimension member
type DimensionValue struct {
	ID          int
	CompanyID   int
	DimensionID int
	Key         string
	Name        string
	SortOrder   int // 0 when unset
	Attributes  map[string]any
	IsActive    bool
}

// CompanyInput carries the creatable company fields
type CompanyInput struct {
	Name     string
	Address1 string
	Address2 string
	City     string
	State    string
	Zip      string
	Domain   string
	Industry string
}

// CompanyPatch carries partial company updates. Nil fields keep the
// cached value; IsActive and CalendarSheetID are sent only when set.
type CompanyPatch struct {
	Name            *string
	Address1        *string
	Address2        *string
	City            *string
	State           *string
	Zip             *string
	Industry        *string
	IsActive        *bool
	CalendarSheetID *int
}

// UserInput carries the fields for creating a company user
type UserInput struct {
	Username            string
	DisplayName         string
	Role                Role
	TempPassword        string
	ForcePasswordChange bool
	Permissions         Permissions
}

// DimensionInput carries the creatable dimension fields
type DimensionInput struct {
	Key         string
	Name        string
	Description string
	DataType    DimensionDataType
}

// DimensionPatch carries partial dimension updates; nil fields are
// omitted from the outgoing request so the server keeps them.
type DimensionPatch struct {
	Name        *string
	Description *string
	DataType    *DimensionDataType
	IsActive    *bool
}

// DimensionValueInput carries the creatable dimension value fields
type DimensionValueInput struct {
	Key        string
	Name       string
	SortOrder  *int
	Attributes map[string]any
}

// ValuePatch carries partial dimension value updates; nil fields are
// omitted from the outgoing request so the server keeps them. It is
// also the unit of the dirty set.
type ValuePatch struct {
	Name       *string
	SortOrder  *int
	Attributes *map[string]any
	IsActive   *bool
}

// merge folds another patch into this one, later fields winning
func (p ValuePatch) merge(other ValuePatch) ValuePatch {
	if other.Name != nil {
		p.Name = other.Name
	}
	if other.SortOrder != nil {
		p.SortOrder = other.SortOrder
	}
	if other.Attributes != nil {
		p.Attributes = other.Attributes
	}
	if other.IsActive != nil {
		p.IsActive = other.IsActive
	}
	return p
}

// ImportRowError describes one failed row of a dimensions import
type ImportRowError struct {
	Row   int
	Error string
}

// ImportBucket counts one entity class in a dimensions import
type ImportBucket struct {
	Created int
	Updated int
	Skipped int
	Errors  []ImportRowError
}

// ImportSummary is the outcome of a dimensions workbook import
type ImportSummary struct {
	OK         bool
	Dimensions ImportBucket
	Values     ImportBucket
}
