package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSendsCredentialsAndParsesUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access_token": "tok-123",
			"token_type": "bearer",
			"user": {
				"id": 7,
				"email": "cfo@acme.test",
				"displayName": "Acme CFO",
				"role": "CFO",
				"companyId": 42,
				"forcePasswordChange": false,
				"permissions": {"canViewSheets": true}
			}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Login(context.Background(), "cfo@acme.test", "secret")
	require.NoError(t, err)

	assert.Equal(t, "tok-123", resp.AccessToken)
	assert.Equal(t, "CFO", resp.User.Role)
	require.NotNil(t, resp.User.CompanyID)
	assert.Equal(t, 42, *resp.User.CompanyID)
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.SetToken("tok-abc")

	_, err := client.ListCompanies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "string body",
			status:  400,
			body:    `"domain already taken"`,
			wantMsg: "domain already taken",
		},
		{
			name:    "nested detail",
			status:  403,
			body:    `{"detail": "insufficient role"}`,
			wantMsg: "insufficient role",
		},
		{
			name:    "raw text fallback",
			status:  500,
			body:    `boom`,
			wantMsg: "boom",
		},
		{
			name:    "unusable body",
			status:  422,
			body:    `{"detail": [{"loc": ["body"]}]}`,
			wantMsg: "Request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL)
			_, err := client.GetCompany(context.Background(), 1)
			require.Error(t, err)

			apiErr, ok := err.(*Error)
			require.True(t, ok, "expected *api.Error, got %T", err)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestCalendarUsesFixedPageSize(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.ListCalendar(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "limit=20000&offset=0", gotQuery)
}

func TestChangePasswordEscapesQueryParameter(t *testing.T) {
	var gotRawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		assert.Equal(t, r.URL.Query().Get("new_password"), "p@ss w&rd")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.SetToken("tok")
	require.NoError(t, client.ChangePassword(context.Background(), "p@ss w&rd"))
	assert.NotContains(t, gotRawQuery, " ")
}

func TestUploadOmitsJSONContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		assert.True(t, strings.HasPrefix(ct, "multipart/form-data"), "content type: %s", ct)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "calendar.xlsx", header.Filename)

		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.SetToken("tok")
	err := client.ImportCalendar(context.Background(), 42, "calendar.xlsx", strings.NewReader("cells"))
	require.NoError(t, err)
}

func TestUploadErrorParsesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "FiscalYear missing at row 3"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.ImportCalendar(context.Background(), 42, "cal.xlsx", strings.NewReader("x"))
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "FiscalYear missing at row 3", apiErr.Message)
}

func TestImportDimensionsParsesSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"ok": true,
			"summary": {
				"dimensions": {"created": 2, "updated": 1, "skipped": 0, "errors": []},
				"values": {"created": 10, "updated": 0, "skipped": 3,
					"errors": [{"row": 7, "error": "bad attributes_json"}]}
			}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	summary, err := client.ImportDimensions(context.Background(), 42, "dims.xlsx", strings.NewReader("x"))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Summary.Dimensions.Created)
	assert.Equal(t, 3, summary.Summary.Values.Skipped)
	require.Len(t, summary.Summary.Values.Errors, 1)
	assert.Equal(t, 7, summary.Summary.Values.Errors[0].Row)
}
