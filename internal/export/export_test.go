package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-inventory-report/internal/engine"
	"go-inventory-report/internal/ingest"
	"go-inventory-report/internal/model"
)

func sampleDataset(t *testing.T) *engine.Dataset {
	t.Helper()
	ds, err := engine.NewDataset([]string{"SKU", "quantity", "price"}, []engine.Record{
		{"SKU": "A", "quantity": 2, "price": 10.5},
		{"SKU": "B", "quantity": nil, "price": 0.0000001},
	})
	require.NoError(t, err)
	return ds
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteCSV(&buf, sampleDataset(t))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "SKU,quantity,price\nA,2,10.5\nB,,0.0000001\n", buf.String())
}

func TestWriteCSVReproducesInput(t *testing.T) {
	raw := "SKU,quantity,price,event_type\n" +
		"00123,2,10,Shipment\n" +
		"12345678901234567890,1,50,Return-Damaged\n" +
		"A,,10,\n"
	ds, err := ingest.ReadCSV(context.Background(), bytes.NewReader([]byte(raw)), ingest.CSVOptions{Encoding: "utf-8"})
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := WriteCSV(&buf, ds)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, raw, buf.String())

	buf.Reset()
	_, err = WriteJSON(&buf, ds, model.ExportInfo{})
	require.NoError(t, err)
	var decoded struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Data, 3)
	assert.Equal(t, "00123", decoded.Data[0]["SKU"])
	assert.Equal(t, "12345678901234567890", decoded.Data[1]["SKU"])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteJSON(&buf, sampleDataset(t), model.ExportInfo{SessionID: "s1", Source: "inventory.csv"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var decoded struct {
		ExportInfo model.ExportInfo         `json:"export_info"`
		Data       []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "s1", decoded.ExportInfo.SessionID)
	assert.Equal(t, 2, decoded.ExportInfo.RecordCount)
	assert.Equal(t, "raw_records", decoded.ExportInfo.ExportType)
	require.Len(t, decoded.Data, 2)
	assert.Equal(t, "A", decoded.Data[0]["SKU"])
	assert.Nil(t, decoded.Data[1]["quantity"])
}

func TestToFile(t *testing.T) {
	dir := t.TempDir()
	ds := sampleDataset(t)

	tests := []struct {
		name     string
		file     string
		wantType string
	}{
		{"csv", "out/report.csv", TypeCSV},
		{"json", "out/report.JSON", TypeJSON},
		{"unknown extension", "out/report.dat", TypeCSV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			res := ToFile(ds, path, model.ExportInfo{})
			require.True(t, res.Success, res.Error)
			assert.Equal(t, tt.wantType, res.Type)
			assert.Equal(t, 2, res.RecordCount)

			_, err := os.Stat(path)
			assert.NoError(t, err)
		})
	}
}

func TestToFileFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	res := ToFile(sampleDataset(t), filepath.Join(blocker, "report.csv"), model.ExportInfo{})
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

type fakeStore struct {
	err error
	got *engine.Dataset
}

func (f *fakeStore) SaveRawRecords(_ context.Context, _ string, ds *engine.Dataset) (int, error) {
	f.got = ds
	if f.err != nil {
		return 0, f.err
	}
	return ds.Len(), nil
}

func TestToStore(t *testing.T) {
	ds := sampleDataset(t)

	ok := &fakeStore{}
	res := ToStore(context.Background(), ok, "s1", ds)
	assert.True(t, res.Success)
	assert.Equal(t, TypeDatabase, res.Type)
	assert.Equal(t, 2, res.RecordCount)
	assert.Same(t, ds, ok.got)

	res = ToStore(context.Background(), &fakeStore{err: errors.New("disk full")}, "s1", ds)
	assert.False(t, res.Success)
	assert.Equal(t, "disk full", res.Error)
}
