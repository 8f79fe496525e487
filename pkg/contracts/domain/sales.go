package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Well-known column names of a sales export
const (
	ColumnStore       = "Store"
	ColumnDate        = "Date"
	ColumnWeeklySales = "Weekly_Sales"
)

// SalesRecord represents one row of the input file
type SalesRecord struct {
	Store       string    `json:"store"`
	Date        time.Time `json:"date"`
	WeeklySales float64   `json:"weekly_sales"`
	// Cells holds every raw cell of the source row, in schema order.
	Cells []string `json:"cells"`
}

// SalesTable is the loaded input file. It is built once and never modified;
// analyses that need a different view work on copies.
type SalesTable struct {
	Source  string        `json:"source"`
	Columns []string      `json:"columns"`
	Records []SalesRecord `json:"records"`
}

// Len returns the number of records
func (t *SalesTable) Len() int {
	return len(t.Records)
}

// ColumnIndex returns the schema position of a column
func (t *SalesTable) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return -1, false
}

// Value returns the raw cell of record i in column idx, or "" when the row is short.
func (t *SalesTable) Value(i, idx int) string {
	cells := t.Records[i].Cells
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

// FilterStore returns a copy of the records belonging to store
func (t *SalesTable) FilterStore(store string) []SalesRecord {
	var out []SalesRecord
	for _, r := range t.Records {
		if r.Store == store {
			out = append(out, r)
		}
	}
	return out
}

// Stores lists distinct store identifiers in encounter order
func (t *SalesTable) Stores() []string {
	seen := make(map[string]bool)
	var stores []string
	for _, r := range t.Records {
		if !seen[r.Store] {
			seen[r.Store] = true
			stores = append(stores, r.Store)
		}
	}
	return stores
}

// CanonicalStore normalizes a store identifier so that "01", " 1", "1.0" and
// "1" refer to the same store. Other identifiers are only trimmed.
func CanonicalStore(raw string) string {
	s := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(n, 10)
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return strconv.FormatInt(int64(v), 10)
	}
	return s
}

// NullFloat is a float64 that may be undefined, e.g. the sample standard
// deviation of a single observation.
type NullFloat struct {
	Float64 float64 `json:"value"`
	Valid   bool    `json:"valid"`
}

// Float returns a defined NullFloat
func Float(v float64) NullFloat {
	return NullFloat{Float64: v, Valid: true}
}

// Null is the undefined value
var Null = NullFloat{}

// String renders the value, or "n/a" when undefined
func (n NullFloat) String() string {
	if !n.Valid {
		return "n/a"
	}
	return strconv.FormatFloat(n.Float64, 'f', 2, 64)
}

// StoreSummary aggregates the weekly sales of one store
type StoreSummary struct {
	Store      string    `json:"store"`
	TotalSales float64   `json:"total_sales"`
	AvgWeekly  float64   `json:"avg_weekly"`
	StdWeekly  NullFloat `json:"std_weekly"`
	Weeks      int       `json:"weeks"`
}

// HolidayComparison aggregates weekly sales for one holiday flag value
type HolidayComparison struct {
	Column string    `json:"column"`
	Flag   bool      `json:"flag"`
	Mean   float64   `json:"mean"`
	Count  int       `json:"count"`
	Std    NullFloat `json:"std"`
}

// ForecastResult is a moving-average estimate for one store
type ForecastResult struct {
	Store   string  `json:"store"`
	Window  int     `json:"window"`
	Buckets int     `json:"buckets"`
	Value   float64 `json:"value"`
	// FullWindow is false when the series was shorter than the window and
	// Value is the mean of the whole series.
	FullWindow bool `json:"full_window"`
}

// InventoryEstimate holds safety stock and reorder point for one store
type InventoryEstimate struct {
	Store            string    `json:"store"`
	MeanWeeklyDemand float64   `json:"mean_weekly_demand"`
	StdWeeklyDemand  NullFloat `json:"std_weekly_demand"`
	SafetyStock      NullFloat `json:"safety_stock"`
	ReorderPoint     NullFloat `json:"reorder_point"`
	LeadTimeWeeks    float64   `json:"lead_time_weeks"`
	ServiceFactor    float64   `json:"service_factor"`
}
