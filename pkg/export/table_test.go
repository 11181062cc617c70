package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var sample = Table{
	Sheet:   "Submissions",
	Headers: []string{"ID", "Form", "email"},
	Rows: [][]string{
		{"1", "contact", "a@example.com"},
		{"2", "demo"},
	},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "csv", sample))

	assert.Equal(t, "ID,Form,email\n1,contact,a@example.com\n2,demo,\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "xlsx", sample))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Submissions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Form", "email"}, rows[0])
	assert.Equal(t, []string{"1", "contact", "a@example.com"}, rows[1])
	assert.Equal(t, "demo", rows[2][1])
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, "pdf", sample))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv; charset=utf-8", ContentType("csv"))
	assert.Contains(t, ContentType("xlsx"), "spreadsheetml")
}
