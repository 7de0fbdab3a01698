package model

import "github.com/shopspring/decimal"

func init() {
	// Persisted blobs and API payloads carry amounts as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}
