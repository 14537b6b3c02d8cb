package engine

// Request names used by the report builder and the API.
const (
	RevenueRequest = "revenue"
	StockRequest   = "stock"
	ReturnsRequest = "returns"
)

// RevenueByKey sums quantity * price per key.
func RevenueByKey(ds *Dataset, key, quantity, price string, topN int, opts ...Option) (Result, error) {
	return Aggregate(ds, Request{
		Name:  RevenueRequest,
		Key:   key,
		Value: ProductValue(quantity, price),
		Limit: topN,
	}, opts...)
}

// StockByKey sums quantity per key.
func StockByKey(ds *Dataset, key, quantity string, topN int, opts ...Option) (Result, error) {
	return Aggregate(ds, Request{
		Name:  StockRequest,
		Key:   key,
		Value: ColumnValue(quantity),
		Limit: topN,
	}, opts...)
}

// ReturnsByKey sums quantity per key over rows whose eventType contains
// filterSubstring. No matching row is an empty result, not an error.
func ReturnsByKey(ds *Dataset, key, quantity, eventType, filterSubstring string, topN int, opts ...Option) (Result, error) {
	return Aggregate(ds, Request{
		Name:   ReturnsRequest,
		Key:    key,
		Value:  ColumnValue(quantity),
		Filter: Contains(eventType, filterSubstring),
		Limit:  topN,
	}, opts...)
}
