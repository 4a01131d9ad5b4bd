package version

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInfoUsesLdflagValues(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	defer func() {
		Version, Commit, Date = origVersion, origCommit, origDate
	}()

	Version = "1.0.0"
	Commit = "abc123def456"
	Date = "2026-01-01T12:00:00Z"

	info := GetInfo()

	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "abc123def456", info.Commit)
	assert.Equal(t, "2026-01-01T12:00:00Z", info.Date)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestStringTruncatesCommit(t *testing.T) {
	info := Info{
		Version:   "1.0.0",
		Commit:    "abc123def456",
		Date:      "2026-01-01",
		GoVersion: "go1.24.6",
		Platform:  "linux/amd64",
	}

	assert.Equal(t, "plx 1.0.0 (abc123de) built 2026-01-01 with go1.24.6 for linux/amd64", info.String())

	info.Commit = "abc123"
	assert.Contains(t, info.String(), "(abc123)")
}

func TestInfoJSONKeys(t *testing.T) {
	data, err := json.Marshal(Info{Version: "dev", Commit: "unknown"})
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "dev", decoded["version"])
	assert.Contains(t, decoded, "go_version")
	assert.Contains(t, decoded, "platform")
}

func TestDefaultsAreNeverEmpty(t *testing.T) {
	info := GetInfo()
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Commit)
	assert.NotEmpty(t, info.Date)
	assert.NotEmpty(t, info.GoVersion)
	assert.NotEmpty(t, info.Platform)
}
