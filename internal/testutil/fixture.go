package testutil

import (
	_ "embed"
)

// OrdersSQL is the query analysed in OrdersResponse.
const OrdersSQL = "SELECT o.id, SUM(o.amount) AS total\nFROM shop.public.orders o\nWHERE o.status = 'paid'\nGROUP BY o.id\nHAVING total > 10\nORDER BY 2"

//go:embed testdata/orders.json
var orders []byte

// OrdersResponse returns a fresh copy of a recorded /api/process response
// for OrdersSQL.
func OrdersResponse() []byte {
	return append([]byte(nil), orders...)
}
