package analytics

import (
	"strings"

	"salescli/internal/config"
	"salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// HolidayImpact compares weekly sales of holiday and non-holiday rows.
//
// A cell counts as a holiday when its trimmed, lower-cased text is in truthy
// (config.DefaultHolidayTruthy when empty); every other value, including
// blanks, is a non-holiday. One row is returned per observed flag, false
// first. The table is not modified.
func HolidayImpact(table *domain.SalesTable, column string, truthy []string) ([]domain.HolidayComparison, error) {
	idx, ok := table.ColumnIndex(column)
	if !ok {
		return nil, errors.NewColumnNotFoundError(column, table.Columns)
	}

	if len(truthy) == 0 {
		truthy = config.DefaultHolidayTruthy
	}
	truthySet := make(map[string]bool, len(truthy))
	for _, v := range truthy {
		truthySet[strings.ToLower(strings.TrimSpace(v))] = true
	}

	var groups [2]Series
	for i, r := range table.Records {
		flag := truthySet[strings.ToLower(strings.TrimSpace(table.Value(i, idx)))]
		if flag {
			groups[1] = append(groups[1], r.WeeklySales)
		} else {
			groups[0] = append(groups[0], r.WeeklySales)
		}
	}

	var out []domain.HolidayComparison
	for i, s := range groups {
		if len(s) == 0 {
			continue
		}
		out = append(out, domain.HolidayComparison{
			Column: column,
			Flag:   i == 1,
			Mean:   s.Mean(),
			Count:  len(s),
			Std:    s.Std(),
		})
	}
	return out, nil
}
