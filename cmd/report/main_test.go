package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-inventory-report/internal/report"
)

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.csv")
	content := "SKU,quantity,price,event_type\nA,2,10,Shipment\nB,1,50,Return\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunText(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-file", writeInput(t), "-top", "1"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "== Top 1 products by revenue ==")
	assert.Contains(t, out.String(), "50.00")
}

func TestRunJSONAndExport(t *testing.T) {
	input := writeInput(t)
	exportPath := filepath.Join(t.TempDir(), "out", "rows.json")

	var out bytes.Buffer
	err := run(context.Background(), []string{"-file", input, "-json", "-export", exportPath}, &out)
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.Equal(t, 2, rep.RowCount)

	_, err = os.Stat(exportPath)
	assert.NoError(t, err)
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorContains(t, run(context.Background(), nil, &out), "-file is required")
	assert.Error(t, run(context.Background(), []string{"-file", "does-not-exist.csv"}, &out))
}
