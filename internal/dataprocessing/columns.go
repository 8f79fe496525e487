package dataprocessing

import (
	"strings"

	"salescli/pkg/contracts/domain"
)

// ColumnMatcher reports whether a column name is acceptable
type ColumnMatcher func(column string) bool

// Exact matches a column name exactly
func Exact(name string) ColumnMatcher {
	return func(column string) bool {
		return column == name
	}
}

// ContainsFold matches a column whose name contains substr, ignoring case
func ContainsFold(substr string) ColumnMatcher {
	lower := strings.ToLower(substr)
	return func(column string) bool {
		return strings.Contains(strings.ToLower(column), lower)
	}
}

// DefaultHolidayMatchers recognizes the holiday flag column of common
// retail exports, most specific first.
func DefaultHolidayMatchers() []ColumnMatcher {
	return []ColumnMatcher{
		Exact("IsHoliday"),
		Exact("Holiday_Flag"),
		ContainsFold("holiday"),
	}
}

// ColumnSniffer locates a column by an ordered list of matchers
type ColumnSniffer struct {
	matchers []ColumnMatcher
}

// NewColumnSniffer creates a sniffer. Matchers are evaluated in order.
func NewColumnSniffer(matchers ...ColumnMatcher) *ColumnSniffer {
	return &ColumnSniffer{matchers: matchers}
}

// Find returns the first column, in schema order, accepted by the highest
// priority matcher that accepts any column.
func (s *ColumnSniffer) Find(columns []string) (string, bool) {
	for _, match := range s.matchers {
		for _, c := range columns {
			if match(c) {
				return c, true
			}
		}
	}
	return "", false
}

// FindHolidayColumn looks for a holiday flag column with the default matchers
func FindHolidayColumn(table *domain.SalesTable) (string, bool) {
	return NewColumnSniffer(DefaultHolidayMatchers()...).Find(table.Columns)
}
