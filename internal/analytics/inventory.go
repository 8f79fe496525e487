package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// SafetyStock estimates safety stock and reorder point for store from the
// variability of its demand per distinct date:
//
//	safety_stock  = serviceFactor × std × √leadTimeWeeks
//	reorder_point = mean × leadTimeWeeks + safety_stock
//
// With fewer than two distinct dates the standard deviation is undefined, and
// so are safety stock and reorder point.
func SafetyStock(table *domain.SalesTable, store string, leadTimeWeeks, serviceFactor float64) (domain.InventoryEstimate, error) {
	if leadTimeWeeks < 0 || math.IsNaN(leadTimeWeeks) {
		return domain.InventoryEstimate{}, errors.NewAppValidationError(
			fmt.Sprintf("lead time must not be negative, got %g", leadTimeWeeks))
	}
	if !(serviceFactor > 0) {
		return domain.InventoryEstimate{}, errors.NewAppValidationError(
			fmt.Sprintf("service factor must be positive, got %g", serviceFactor))
	}

	records := table.FilterStore(store)
	if len(records) == 0 {
		return domain.InventoryEstimate{}, errors.NewStoreNotFoundError(store)
	}

	demand := DailyDemand(records)
	mean := demand.Mean()
	std := demand.Std()

	estimate := domain.InventoryEstimate{
		Store:            store,
		MeanWeeklyDemand: mean,
		StdWeeklyDemand:  std,
		LeadTimeWeeks:    leadTimeWeeks,
		ServiceFactor:    serviceFactor,
	}
	if std.Valid {
		ss := serviceFactor * std.Float64 * math.Sqrt(leadTimeWeeks)
		estimate.SafetyStock = domain.Float(ss)
		estimate.ReorderPoint = domain.Float(mean*leadTimeWeeks + ss)
	}
	return estimate, nil
}

// DailyDemand sums sales per distinct date, in date order
func DailyDemand(records []domain.SalesRecord) Series {
	totals := make(map[time.Time]float64)
	var dates []time.Time
	for _, r := range records {
		if _, ok := totals[r.Date]; !ok {
			dates = append(dates, r.Date)
		}
		totals[r.Date] += r.WeeklySales
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	demand := make(Series, len(dates))
	for i, d := range dates {
		demand[i] = totals[d]
	}
	return demand
}
