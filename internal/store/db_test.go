package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-inventory-report/internal/engine"
	"go-inventory-report/internal/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "report.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	older := model.DatasetInfo{SessionID: "s1", Source: "jan.csv", RowCount: 3, Columns: []string{"SKU", "quantity"}, UploadedAt: time.Now().Add(-time.Hour)}
	newer := model.DatasetInfo{SessionID: "s2", Source: "feb.xlsx", RowCount: 1, Columns: []string{"SKU"}, UploadedAt: time.Now()}
	require.NoError(t, db.SaveSession(ctx, older))
	require.NoError(t, db.SaveSession(ctx, newer))

	got, err := db.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "jan.csv", got.Source)
	assert.Equal(t, []string{"SKU", "quantity"}, got.Columns)

	list, err := db.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "s2", list[0].SessionID)

	_, err = db.GetSession(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReports(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	body := map[string]interface{}{"sections": []string{"revenue"}}
	require.NoError(t, db.SaveReport(ctx, "r1", "s1", time.Now(), body))

	list, err := db.ListReports(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "r1", list[0].ID)

	raw, err := db.GetReport(ctx, "r1")
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "sections")

	_, err = db.GetReport(ctx, "r2")
	assert.ErrorIs(t, err, ErrNotFound)

	empty, err := db.ListReports(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSaveRawRecords(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	ds, err := engine.NewDataset([]string{"SKU", "quantity"}, []engine.Record{
		{"SKU": "A", "quantity": 2},
		{"SKU": "B", "quantity": nil},
	})
	require.NoError(t, err)

	n, err := db.SaveRawRecords(ctx, "s1", ds)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	count, err := db.CountRawRecords(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
