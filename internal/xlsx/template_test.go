package xlsx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteCalendarTemplate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCalendarTemplate(&buf))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Calendar"}, f.GetSheetList())

	rows, err := f.GetRows("Calendar")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, calendarHeaders, rows[0])
}

func TestWriteDimensionsTemplate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDimensionsTemplate(&buf))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Dimensions", "Values"}, f.GetSheetList())

	dims, err := f.GetRows("Dimensions")
	require.NoError(t, err)
	require.Len(t, dims, 1)
	assert.Equal(t, dimensionHeaders, dims[0])

	vals, err := f.GetRows("Values")
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Equal(t, valueHeaders, vals[0])
}
