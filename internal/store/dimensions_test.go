package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerx/plx/internal/api"
)

func loginSysadmin(t *testing.T, f *fakeAPI) *Store {
	t.Helper()
	f.mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, loginResponse("SYSADMIN", nil))
	})
	f.mux.HandleFunc("GET /companies", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []api.CompanyDTO{})
	})
	s := f.store()
	require.NoError(t, s.Login(context.Background(), "root@plannerx.test", "secret"))
	return s
}

func valueDTO(id, dimensionID int, key string) api.DimensionValueDTO {
	return api.DimensionValueDTO{
		DimensionValueID: id, CompanyID: 1, DimensionID: dimensionID,
		ValueKey: key, ValueName: key, IsActive: true,
		AttributesJSON: map[string]any{},
	}
}

func TestCreateDimensionDefaultsDataType(t *testing.T) {
	f := newFakeAPI(t)
	s := loginSysadmin(t, f)
	s.SelectCompany(1)

	var gotBody api.DimensionCreateDTO
	f.mux.HandleFunc("POST /companies/1/dimensions", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(w, api.DimensionDTO{
			DimensionID: 5, CompanyID: 1, DimensionKey: gotBody.DimensionKey,
			DimensionName: gotBody.DimensionName, DataType: gotBody.DataType, IsActive: true,
		})
	})

	created, err := s.CreateDimension(context.Background(), 1, DimensionInput{
		Key: "region", Name: "Region", DataType: " number ",
	})
	require.NoError(t, err)
	assert.Equal(t, "NUMBER", gotBody.DataType)
	assert.Equal(t, DataTypeNumber, created.DataType)

	_, err = s.CreateDimension(context.Background(), 1, DimensionInput{
		Key: "channel", Name: "Channel",
	})
	require.NoError(t, err)
	assert.Equal(t, "TEXT", gotBody.DataType, "unknown or empty types fall back to TEXT")
}

func TestLoadDimensionValuesSelectsDimension(t *testing.T) {
	f := newFakeAPI(t)
	s := loginSysadmin(t, f)
	s.SelectCompany(1)

	f.mux.HandleFunc("GET /companies/1/dimensions/5/values", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []api.DimensionValueDTO{valueDTO(100, 5, "emea")})
	})
	f.mux.HandleFunc("GET /companies/1/dimensions/6/values", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []api.DimensionValueDTO{valueDTO(200, 6, "retail")})
	})

	_, err := s.LoadDimensionValues(context.Background(), 1, 5)
	require.NoError(t, err)

	id, ok := s.SelectedDimensionID()
	require.True(t, ok)
	assert.Equal(t, 5, id)

	s.MarkValueDirty(100, ValuePatch{Name: strPtr("EMEA Region")})
	require.Equal(t, 1, s.DirtyCount())

	// Loading another dimension switches selection and drops pending edits.
	_, err = s.LoadDimensionValues(context.Background(), 1, 6)
	require.NoError(t, err)

	id, _ = s.SelectedDimensionID()
	assert.Equal(t, 6, id)
	assert.Zero(t, s.DirtyCount())
}

func TestSelectDimensionSwitchDiscardsDirty(t *testing.T) {
	f := newFakeAPI(t)
	s := loginSysadmin(t, f)
	s.SelectCompany(1)

	s.SelectDimension(5)
	s.MarkValueDirty(100, ValuePatch{Name: strPtr("x")})
	require.Equal(t, 1, s.DirtyCount())

	s.SelectDimension(5)
	assert.Equal(t, 1, s.DirtyCount(), "reselecting the same dimension keeps edits")

	s.SelectDimension(6)
	assert.Zero(t, s.DirtyCount())

	s.MarkValueDirty(200, ValuePatch{Name: strPtr("y")})
	s.SelectDimension(0)
	assert.Zero(t, s.DirtyCount())
	_, ok := s.SelectedDimensionID()
	assert.False(t, ok)
}

func TestMarkValueDirtyMergesIdempotently(t *testing.T) {
	f := newFakeAPI(t)
	s := loginSysadmin(t, f)
	s.SelectCompany(1)
	s.SelectDimension(5)

	s.MarkValueDirty(100, ValuePatch{Name: strPtr("EMEA")})
	s.MarkValueDirty(100, ValuePatch{Name: strPtr("EMEA")})
	assert.Equal(t, 1, s.DirtyCount())

	s.MarkValueDirty(100, ValuePatch{IsActive: boolPtr(false)})
	assert.Equal(t, 1, s.DirtyCount())

	patches := s.DirtyPatches()
	p := patches[100]
	require.NotNil(t, p.Name)
	assert.Equal(t, "EMEA", *p.Name, "later partial patches keep earlier fields")
	require.NotNil(t, p.IsActive)
	assert.False(t, *p.IsActive)

	s.DiscardDirty()
	assert.Zero(t, s.DirtyCount())
}

func TestSaveDirtyValuesPartialFailure(t *testing.T) {
	f := newFakeAPI(t)
	s := loginSysadmin(t, f)
	s.SelectCompany(1)

	f.mux.HandleFunc("GET /companies/1/dimensions/5/values", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []api.DimensionValueDTO{
			valueDTO(100, 5, "emea"), valueDTO(101, 5, "amer"), valueDTO(102, 5, "apac"),
		})
	})
	f.mux.HandleFunc("PATCH /companies/1/dimensions/5/values/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "101" {
			w.WriteHeader(http.StatusInternalServerError)
			writeJSON(w, map[string]string{"detail": "boom"})
			return
		}
		writeJSON(w, valueDTO(100, 5, "emea"))
	})

	_, err := s.LoadDimensionValues(context.Background(), 1, 5)
	require.NoError(t, err)

	s.MarkValueDirty(100, ValuePatch{Name: strPtr("a")})
	s.MarkValueDirty(101, ValuePatch{Name: strPtr("b")})
	s.MarkValueDirty(102, ValuePatch{Name: strPtr("c")})

	failed, err := s.SaveDirtyValues(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	assert.Zero(t, s.DirtyCount(), "dirty set clears even when some rows fail")
	assert.Len(t, s.DimensionValues(), 3, "cache holds the reloaded authoritative rows")
}

func TestSaveDirtyValuesRequiresSelection(t *testing.T) {
	f := newFakeAPI(t)
	s := loginSysadmin(t, f)

	_, err := s.SaveDirtyValues(context.Background())
	require.Error(t, err)

	s.SelectCompany(1)
	_, err = s.SaveDirtyValues(context.Background())
	require.Error(t, err, "a dimension must be selected")
}

func TestUpdateDimensionValueStripsNilAttributes(t *testing.T) {
	f := newFakeAPI(t)
	s := loginSysadmin(t, f)
	s.SelectCompany(1)

	var gotBody map[string]any
	f.mux.HandleFunc("PATCH /companies/1/dimensions/5/values/100", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(w, valueDTO(100, 5, "emea"))
	})

	_, err := s.UpdateDimensionValue(context.Background(), 1, 5, 100, ValuePatch{
		Name: strPtr("EMEA"),
	})
	require.NoError(t, err)

	assert.Equal(t, "EMEA", gotBody["value_name"])
	_, hasAttrs := gotBody["attributes_json"]
	assert.False(t, hasAttrs, "unset attributes stay out of the body")
	_, hasActive := gotBody["is_active"]
	assert.False(t, hasActive)
}

func TestImportDimensionsExcelParsesSummary(t *testing.T) {
	f := newFakeAPI(t)
	s := loginSysadmin(t, f)
	s.SelectCompany(1)

	f.mux.HandleFunc("POST /companies/1/dimensions/import", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		file.Close()
		assert.Equal(t, "dims.xlsx", header.Filename)

		var dto api.ImportSummaryDTO
		dto.OK = true
		dto.Summary.Dimensions = api.ImportBucketDTO{Created: 2, Updated: 1}
		dto.Summary.Values = api.ImportBucketDTO{Created: 10, Skipped: 1, Errors: []api.ImportRowError{
			{Row: 7, Error: "missing value_key"},
		}}
		writeJSON(w, dto)
	})

	summary, err := s.ImportDimensionsExcel(context.Background(), 1, "dims.xlsx", strings.NewReader("fake workbook"))
	require.NoError(t, err)

	assert.True(t, summary.OK)
	assert.Equal(t, 2, summary.Dimensions.Created)
	assert.Equal(t, 10, summary.Values.Created)
	require.Len(t, summary.Values.Errors, 1)
	assert.Equal(t, 7, summary.Values.Errors[0].Row)
	assert.Equal(t, "missing value_key", summary.Values.Errors[0].Error)
}

func TestImportCalendarRefreshesCompanyState(t *testing.T) {
	f := newFakeAPI(t)
	s := loginSysadmin(t, f)
	s.SelectCompany(1)
	f.registerCompanyScope(1)

	f.mux.HandleFunc("POST /companies/1/calendar/import", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("file")
		require.NoError(t, err)
		writeJSON(w, map[string]any{"ok": true, "rows": 364})
	})

	before := len(f.requestLog())
	require.NoError(t, s.ImportCalendar(context.Background(), 1, "calendar.xlsx", strings.NewReader("fake workbook")))

	log := f.requestLog()[before:]
	assert.Equal(t, []string{
		"POST /companies/1/calendar/import",
		"GET /companies/1",
		"GET /companies/1/sheets",
		"GET /companies/1/calendar",
	}, log)
	assert.NotEmpty(t, s.CalendarRows())
}

func TestUpdateDimensionNormalizesDataType(t *testing.T) {
	f := newFakeAPI(t)
	s := loginSysadmin(t, f)
	s.SelectCompany(1)

	var gotBody map[string]any
	f.mux.HandleFunc("PATCH /companies/1/dimensions/5", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(w, api.DimensionDTO{
			DimensionID: 5, CompanyID: 1, DimensionKey: "region",
			DimensionName: "Region", DataType: "DATE", IsActive: true,
		})
	})

	dt := DataTypeDate
	updated, err := s.UpdateDimension(context.Background(), 1, 5, DimensionPatch{
		DataType: &dt,
	})
	require.NoError(t, err)

	assert.Equal(t, "DATE", gotBody["data_type"])
	assert.Equal(t, DataTypeDate, updated.DataType)
	_, hasName := gotBody["dimension_name"]
	assert.False(t, hasName, fmt.Sprintf("unset fields stay out of the body, got %v", gotBody))
}
