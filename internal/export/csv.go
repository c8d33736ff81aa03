// Package export serializes order and product records to CSV with a
// fixed header row. encoding/csv handles quoting, so names and emails
// containing commas or quotes survive the round trip.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"storefront-service/internal/model"
)

var orderHeader = []string{"id", "number", "email", "total", "status", "payment_status", "items", "created_at"}

// WriteOrders writes orders as CSV
func WriteOrders(w io.Writer, orders []model.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(orderHeader); err != nil {
		return err
	}
	for _, o := range orders {
		record := []string{
			strconv.FormatUint(uint64(o.ID), 10),
			o.Number,
			o.Email,
			strconv.FormatFloat(o.Total, 'f', 2, 64),
			o.Status,
			o.PaymentStatus,
			strconv.Itoa(len(o.Items)),
			o.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var productHeader = []string{"id", "name", "sku", "category", "price", "stock", "sizes", "featured"}

// WriteProducts writes products as CSV
func WriteProducts(w io.Writer, products []model.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(productHeader); err != nil {
		return err
	}
	for _, p := range products {
		record := []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Name,
			p.SKU,
			p.Category,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			strconv.Itoa(p.Stock),
			strings.Join(p.Sizes, "|"),
			strconv.FormatBool(p.Featured),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
