package analytics

import (
	"strconv"
	"testing"
	"time"

	"salescli/pkg/contracts/domain"
)

// row is a compact test record: store, ISO date, sales and an optional flag
type row struct {
	store string
	date  string
	sales float64
	flag  string
}

func buildTable(t *testing.T, rows ...row) *domain.SalesTable {
	t.Helper()

	table := &domain.SalesTable{
		Source:  "test",
		Columns: []string{"Store", "Date", "Weekly_Sales", "IsHoliday"},
	}
	for _, r := range rows {
		date, err := time.Parse("2006-01-02", r.date)
		if err != nil {
			t.Fatalf("bad fixture date %q: %v", r.date, err)
		}
		table.Records = append(table.Records, domain.SalesRecord{
			Store:       r.store,
			Date:        date,
			WeeklySales: r.sales,
			Cells:       []string{r.store, r.date, strconv.FormatFloat(r.sales, 'f', -1, 64), r.flag},
		})
	}
	return table
}
