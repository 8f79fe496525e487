package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SalesHeader is the header of the Walmart-style weekly sales fixture
const SalesHeader = "Store,Date,Weekly_Sales,Holiday_Flag,Temperature"

// SampleSalesRows is a small two-store weekly sales history. Dates are
// day-first, as in the public Walmart dataset.
var SampleSalesRows = []string{
	"1,05-02-2010,100,0,42.31",
	"1,12-02-2010,200,1,38.51",
	"1,19-02-2010,300,0,39.93",
	"2,05-02-2010,50,0,40.19",
	"2,12-02-2010,70,1,41.00",
	"1,26-02-2010,400,0,46.63",
}

// WriteCSVFixture writes header and rows as a file named name in a fresh
// temporary directory and returns its path.
func WriteCSVFixture(t *testing.T, name, header string, rows []string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	content := header + "\n" + strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// WriteSampleSales writes the sample sales history and returns its path
func WriteSampleSales(t *testing.T) string {
	t.Helper()
	return WriteCSVFixture(t, "sales.csv", SalesHeader, SampleSalesRows)
}
