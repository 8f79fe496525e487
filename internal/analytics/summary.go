package analytics

import (
	"sort"

	"salescli/pkg/contracts/domain"
)

// SummaryByStore aggregates weekly sales per store. One row per distinct
// store, sorted by total sales descending; ties keep encounter order.
func SummaryByStore(table *domain.SalesTable) []domain.StoreSummary {
	order := make(map[string]int)
	var (
		stores []string
		sales  []Series
	)

	for _, r := range table.Records {
		i, ok := order[r.Store]
		if !ok {
			i = len(stores)
			order[r.Store] = i
			stores = append(stores, r.Store)
			sales = append(sales, nil)
		}
		sales[i] = append(sales[i], r.WeeklySales)
	}

	summaries := make([]domain.StoreSummary, len(stores))
	for i, store := range stores {
		s := sales[i]
		summaries[i] = domain.StoreSummary{
			Store:      store,
			TotalSales: s.Sum(),
			AvgWeekly:  s.Mean(),
			StdWeekly:  s.Std(),
			Weeks:      len(s),
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalSales > summaries[j].TotalSales
	})

	return summaries
}
