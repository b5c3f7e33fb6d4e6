package helper

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTicketsCSV(t *testing.T) {
	tickets := sample()
	tickets[0].FullName = `Bola "BJ", Ade`
	var buf bytes.Buffer

	require.NoError(t, WriteTicketsCSV(&buf, tickets[:2], time.UTC))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, exportHeader, rows[0])
	assert.Equal(t, `Bola "BJ", Ade`, rows[1][1])
	assert.Equal(t, "01/11/2025", rows[1][7])
	assert.Equal(t, "approved", rows[2][6])
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "Province_3_List.csv", ExportFilename("Province 3"))
	assert.Equal(t, "Registrations_List.csv", ExportFilename("  "))
}
