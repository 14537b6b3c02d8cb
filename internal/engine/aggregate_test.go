package engine

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDataset(t *testing.T, columns []string, rows ...Record) *Dataset {
	t.Helper()
	ds, err := NewDataset(columns, rows)
	require.NoError(t, err)
	return ds
}

func salesDataset(t *testing.T) *Dataset {
	return mustDataset(t, []string{"SKU", "quantity", "price"},
		Record{"SKU": "A", "quantity": 2, "price": 10},
		Record{"SKU": "B", "quantity": 1, "price": 50},
		Record{"SKU": "A", "quantity": 1, "price": 10},
	)
}

func TestRevenueByKey(t *testing.T) {
	res, err := RevenueByKey(salesDataset(t), "SKU", "quantity", "price", 10)
	require.NoError(t, err)
	assert.Equal(t, []Row{{Key: "B", Total: 50}, {Key: "A", Total: 30}}, res.Rows)
	assert.Equal(t, 2, res.Groups)
	assert.Equal(t, 3, res.Eligible)
	assert.Equal(t, RevenueRequest, res.Name)
}

func TestStockByKey(t *testing.T) {
	res, err := StockByKey(salesDataset(t), "SKU", "quantity", 10)
	require.NoError(t, err)
	assert.Equal(t, []Row{{Key: "A", Total: 3}, {Key: "B", Total: 1}}, res.Rows)
}

func TestReturnsByKey(t *testing.T) {
	ds := mustDataset(t, []string{"SKU", "quantity", "event_type"},
		Record{"SKU": "A", "quantity": 2, "event_type": "Return-Damaged"},
		Record{"SKU": "A", "quantity": 5, "event_type": "Shipment"},
		Record{"SKU": "A", "quantity": 1, "event_type": "Return-Wrong"},
	)

	res, err := ReturnsByKey(ds, "SKU", "quantity", "event_type", "Return", 10)
	require.NoError(t, err)
	assert.Equal(t, []Row{{Key: "A", Total: 3}}, res.Rows)
	assert.Equal(t, 1, res.Filtered)
}

func TestReturnsByKeyFilterIsCaseSensitiveAndSkipsNulls(t *testing.T) {
	ds := mustDataset(t, []string{"SKU", "quantity", "event_type"},
		Record{"SKU": "A", "quantity": 2, "event_type": "return"},
		Record{"SKU": "B", "quantity": 4, "event_type": nil},
		Record{"SKU": "C", "quantity": 3},
		Record{"SKU": "D", "quantity": 6, "event_type": 17},
		Record{"SKU": "E", "quantity": 1, "event_type": "CustomerReturn"},
	)

	res, err := ReturnsByKey(ds, "SKU", "quantity", "event_type", "Return", 10)
	require.NoError(t, err)
	assert.Equal(t, []Row{{Key: "E", Total: 1}}, res.Rows)
	assert.Equal(t, 4, res.Filtered)
}

func TestReturnsByKeyNoMatchIsEmptyNotError(t *testing.T) {
	ds := mustDataset(t, []string{"SKU", "quantity", "event_type"},
		Record{"SKU": "A", "quantity": 5, "event_type": "Shipment"},
	)

	res, err := ReturnsByKey(ds, "SKU", "quantity", "event_type", "Return", 10)
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.NotNil(t, res.Rows)
	_, isMissing := IsMissingColumns(err)
	assert.False(t, isMissing)
}

func TestMissingColumns(t *testing.T) {
	ds := mustDataset(t, []string{"SKU", "quantity"},
		Record{"SKU": "A", "quantity": 1},
	)

	tests := []struct {
		name    string
		run     func() (Result, error)
		request string
		want    []string
	}{
		{
			name:    "revenue without price",
			run:     func() (Result, error) { return RevenueByKey(ds, "SKU", "quantity", "price", 10) },
			request: RevenueRequest,
			want:    []string{"price"},
		},
		{
			name:    "returns without event type",
			run:     func() (Result, error) { return ReturnsByKey(ds, "SKU", "quantity", "event_type", "Return", 10) },
			request: ReturnsRequest,
			want:    []string{"event_type"},
		},
		{
			name:    "every missing column is named once",
			run:     func() (Result, error) { return RevenueByKey(ds, "product", "qty", "qty", 10) },
			request: RevenueRequest,
			want:    []string{"product", "qty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.run()
			require.Error(t, err)

			var mc *MissingColumnsError
			require.True(t, errors.As(err, &mc))
			assert.Equal(t, tt.request, mc.Request)
			assert.Equal(t, tt.want, mc.Columns)
			assert.Nil(t, res.Rows)
			for _, col := range tt.want {
				assert.Contains(t, err.Error(), col)
			}
		})
	}
}

func TestAggregateSkipsMissingAndInvalidRows(t *testing.T) {
	ds := mustDataset(t, []string{"SKU", "quantity", "price"},
		Record{"SKU": "A", "quantity": 2, "price": 10},
		Record{"SKU": "A", "quantity": nil, "price": 10},
		Record{"SKU": nil, "quantity": 4, "price": 10},
		Record{"SKU": "B", "quantity": "lots", "price": 10},
		Record{"SKU": "B", "quantity": "3", "price": 1.5},
		Record{"SKU": "C", "quantity": math.NaN(), "price": 2},
		Record{"SKU": "C", "quantity": math.Inf(1), "price": 2},
	)

	res, err := RevenueByKey(ds, "SKU", "quantity", "price", 10)
	require.NoError(t, err)
	assert.Equal(t, []Row{{Key: "A", Total: 20}, {Key: "B", Total: 4.5}}, res.Rows)
	assert.Equal(t, 2, res.Eligible)
	assert.Equal(t, 3, res.Missing)
	assert.Equal(t, 2, res.Invalid)
	assert.Equal(t, 5, res.Skipped())
}

func TestAggregateRejectInvalidRows(t *testing.T) {
	ds := mustDataset(t, []string{"SKU", "quantity"},
		Record{"SKU": "A", "quantity": 2},
		Record{"SKU": "A"},
		Record{"SKU": "B", "quantity": "n/a"},
	)

	res, err := StockByKey(ds, "SKU", "quantity", 10, WithRowPolicy(RejectInvalidRows))
	require.Error(t, err)
	assert.Nil(t, res.Rows)

	var ive *InvalidValueError
	require.True(t, errors.As(err, &ive))
	assert.Equal(t, 2, ive.Row)
	assert.Equal(t, "quantity", ive.Column)
	assert.Equal(t, "n/a", ive.Value)
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestAggregateStableTieBreak(t *testing.T) {
	ds := mustDataset(t, []string{"SKU", "quantity"},
		Record{"SKU": "C", "quantity": 1},
		Record{"SKU": "A", "quantity": 5},
		Record{"SKU": "B", "quantity": 2},
		Record{"SKU": "A", "quantity": -3},
		Record{"SKU": "D", "quantity": 2},
	)

	res, err := StockByKey(ds, "SKU", "quantity", 10)
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{Key: "A", Total: 2},
		{Key: "B", Total: 2},
		{Key: "D", Total: 2},
		{Key: "C", Total: 1},
	}, res.Rows)
}

func TestAggregateLimit(t *testing.T) {
	var rows []Record
	for i := 0; i < 15; i++ {
		rows = append(rows, Record{"SKU": i, "quantity": i})
	}
	ds := mustDataset(t, []string{"SKU", "quantity"}, rows...)

	res, err := StockByKey(ds, "SKU", "quantity", 0)
	require.NoError(t, err)
	assert.Len(t, res.Rows, DefaultTopN)
	assert.Equal(t, "14", res.Rows[0].Key)
	assert.Equal(t, 15, res.Groups)

	res, err = StockByKey(ds, "SKU", "quantity", 3)
	require.NoError(t, err)
	assert.Equal(t, []Row{{"14", 14}, {"13", 13}, {"12", 12}}, res.Rows)

	res, err = StockByKey(ds, "SKU", "quantity", -1)
	require.NoError(t, err)
	assert.Len(t, res.Rows, 15)
}

func TestAggregateProperties(t *testing.T) {
	ds := mustDataset(t, []string{"SKU", "quantity", "price"},
		Record{"SKU": "A", "quantity": 3, "price": 1.1},
		Record{"SKU": "B", "quantity": 1, "price": 0.2},
		Record{"SKU": "C", "quantity": 7, "price": 0.3},
		Record{"SKU": "A", "quantity": 2, "price": 0.7},
		Record{"SKU": "D", "quantity": 1, "price": 9},
		Record{"SKU": "E", "quantity": "x", "price": 9},
	)

	eligible := 3*1.1 + 1*0.2 + 7*0.3 + 2*0.7 + 1*9.0

	full, err := RevenueByKey(ds, "SKU", "quantity", "price", -1)
	require.NoError(t, err)
	assert.InDelta(t, eligible, sumTotals(full.Rows), 1e-9)

	top, err := RevenueByKey(ds, "SKU", "quantity", "price", 2)
	require.NoError(t, err)
	assert.Less(t, sumTotals(top.Rows), eligible)

	for i := 1; i < len(full.Rows); i++ {
		assert.GreaterOrEqual(t, full.Rows[i-1].Total, full.Rows[i].Total)
	}

	again, err := RevenueByKey(ds, "SKU", "quantity", "price", -1)
	require.NoError(t, err)
	assert.Equal(t, full, again)
}

func TestAggregateExactDecimalSums(t *testing.T) {
	ds := mustDataset(t, []string{"SKU", "quantity", "price"},
		Record{"SKU": "A", "quantity": 1, "price": 0.1},
		Record{"SKU": "A", "quantity": 1, "price": 0.2},
	)

	res, err := RevenueByKey(ds, "SKU", "quantity", "price", 10)
	require.NoError(t, err)
	assert.Equal(t, 0.3, res.Rows[0].Total)
}

func TestGroupKeyNormalisesNumbers(t *testing.T) {
	ds := mustDataset(t, []string{"SKU", "quantity"},
		Record{"SKU": 7, "quantity": 1},
		Record{"SKU": 7.0, "quantity": 2},
		Record{"SKU": json.Number("8"), "quantity": 1},
	)

	res, err := StockByKey(ds, "SKU", "quantity", 10)
	require.NoError(t, err)
	assert.Equal(t, []Row{{Key: "7", Total: 3}, {Key: "8", Total: 1}}, res.Rows)
}

func TestFilterNeverDoubleCounts(t *testing.T) {
	ds := mustDataset(t, []string{"SKU", "quantity", "event_type"},
		Record{"SKU": "A", "quantity": 2, "event_type": "Return Return"},
	)

	res, err := ReturnsByKey(ds, "SKU", "quantity", "event_type", "Return", 10)
	require.NoError(t, err)
	assert.Equal(t, []Row{{Key: "A", Total: 2}}, res.Rows)
}

func sumTotals(rows []Row) float64 {
	var total float64
	for _, r := range rows {
		total += r.Total
	}
	return total
}
