package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/tealeg/xlsx"
)

func TestWriteOrders(t *testing.T) {
	orders := []domain.Order{
		{
			TransactionID: "t-1",
			Name:          "A",
			Email:         "a@b.com",
			Items:         []domain.OrderItem{{Title: "Caesar"}, {Title: "Soup"}},
			TotalAmount:   15.5,
			Currency:      "BDT",
			PaidStatus:    true,
			CreatedAt:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		},
		{TransactionID: "t-2", Currency: "BDT"},
	}

	var buf bytes.Buffer
	if err := WriteOrders(&buf, orders); err != nil {
		t.Fatalf("WriteOrders: %v", err)
	}

	file, err := xlsx.OpenBinary(buf.Bytes())
	if err != nil {
		t.Fatalf("OpenBinary: %v", err)
	}
	if len(file.Sheets) != 1 {
		t.Fatalf("sheets = %d, want 1", len(file.Sheets))
	}

	rows := file.Sheets[0].Rows
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	first := rows[1].Cells
	checks := map[int]string{
		1:  "t-1",
		6:  "Caesar, Soup",
		7:  "15.5",
		10: "2024-05-01 12:00:00",
	}
	for idx, want := range checks {
		if got := first[idx].Value; got != want {
			t.Errorf("cell %d (%s) = %q, want %q", idx, orderHeaders[idx], got, want)
		}
	}
}
