package list

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/sma-console/pkg/errors"
)

func TestExportCSVQuotesAndCRLF(t *testing.T) {
	seed := []testRecord{{ID: "1", Name: "A, B", Email: "a@b.com", Status: "active"}}
	ctrl, _ := newTestController(t, seed, nil)
	_, err := ctrl.Load(context.Background())
	require.NoError(t, err)

	payload, err := ctrl.ExportCSV([]string{"name", "email"})
	require.NoError(t, err)
	assert.Equal(t, "name,email\r\n\"A, B\",a@b.com\r\n", string(payload))
}

func TestExportCSVUsesFilteredView(t *testing.T) {
	ctrl, _ := newTestController(t, seedRecords(), nil)
	_, err := ctrl.Load(context.Background())
	require.NoError(t, err)

	_, err = ctrl.SetFilter("status", "inactive")
	require.NoError(t, err)

	payload, err := ctrl.ExportCSV([]string{"name"})
	require.NoError(t, err)
	assert.Equal(t, "name\r\nBob Brown\r\n", string(payload))
}

func TestExportUnknownField(t *testing.T) {
	ctrl, _ := newTestController(t, seedRecords(), nil)
	_, err := ctrl.Load(context.Background())
	require.NoError(t, err)

	_, err = ctrl.ExportCSV([]string{"name", "shoe_size"})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestExportPDFAndXLSX(t *testing.T) {
	ctrl, _ := newTestController(t, seedRecords(), nil)
	_, err := ctrl.Load(context.Background())
	require.NoError(t, err)

	pdf, err := ctrl.ExportPDF([]string{"name", "status"}, "items report")
	require.NoError(t, err)
	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF", string(pdf[:4]))

	xlsx, err := ctrl.ExportXLSX([]string{"name", "status"})
	require.NoError(t, err)
	assert.NotEmpty(t, xlsx)
}
