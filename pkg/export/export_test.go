package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Name", "Email"},
		Rows: []map[string]string{
			{"Name": "A, B", "Email": "a@b.com"},
			{"Name": `Quote "Q"`, "Email": "q@b.com"},
		},
	}
}

func TestCSVRender(t *testing.T) {
	payload, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	assert.Equal(t, "Name,Email\r\n\"A, B\",a@b.com\r\n\"Quote \"\"Q\"\"\",q@b.com\r\n", string(payload))
}

func TestCSVRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	require.Error(t, err)
}

func TestPDFRender(t *testing.T) {
	payload, err := NewPDFExporter().Render(sampleDataset(), "Students")
	require.NoError(t, err)
	require.True(t, len(payload) > 4)
	assert.Equal(t, "%PDF", string(payload[:4]))
}

func TestXLSXRenderRoundTrip(t *testing.T) {
	payload, err := NewXLSXExporter().Render(sampleDataset(), "students")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	rows, err := f.GetRows("students")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Email"}, rows[0])
	assert.Equal(t, "A, B", rows[1][0])
}
