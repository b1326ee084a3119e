// Package report renders admin exports.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/tealeg/xlsx"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	timeLayout = "2006-01-02 15:04:05"
)

var orderHeaders = []string{
	"ID", "TransactionID", "Name", "Email", "Address", "Phone",
	"Items", "Total", "Currency", "Paid", "CreatedAt",
}

// WriteOrders writes orders as a single-sheet workbook.
func WriteOrders(w io.Writer, orders []domain.Order) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range orderHeaders {
		header.AddCell().SetString(h)
	}

	for _, o := range orders {
		titles := make([]string, len(o.Items))
		for i, item := range o.Items {
			titles[i] = item.Title
		}

		row := sheet.AddRow()
		row.AddCell().SetString(o.ID.Hex())
		row.AddCell().SetString(o.TransactionID)
		row.AddCell().SetString(o.Name)
		row.AddCell().SetString(o.Email)
		row.AddCell().SetString(o.Address)
		row.AddCell().SetString(o.PhoneNumber)
		row.AddCell().SetString(strings.Join(titles, ", "))
		row.AddCell().SetFloat(o.TotalAmount)
		row.AddCell().SetString(o.Currency)
		row.AddCell().SetBool(o.PaidStatus)
		row.AddCell().SetString(o.CreatedAt.UTC().Format(timeLayout))
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
