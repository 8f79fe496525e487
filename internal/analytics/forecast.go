package analytics

import (
	"fmt"
	"sort"
	"time"

	"salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// MovingAverageForecast forecasts next week's sales of store as the trailing
// mean of the last window weekly sums.
//
// Sales are bucketed into calendar weeks ending on Sunday. Every week between
// the first and the last bucket is present, empty weeks count as zero. When
// fewer than window buckets exist the mean of all buckets is returned and
// FullWindow is false.
func MovingAverageForecast(table *domain.SalesTable, store string, window int) (domain.ForecastResult, error) {
	if window < 1 {
		return domain.ForecastResult{}, errors.NewAppValidationError(
			fmt.Sprintf("forecast window must be at least 1, got %d", window))
	}

	records := table.FilterStore(store)
	if len(records) == 0 {
		return domain.ForecastResult{}, errors.NewStoreNotFoundError(store)
	}

	weekly := WeeklySums(records)
	result := domain.ForecastResult{
		Store:   store,
		Window:  window,
		Buckets: len(weekly),
	}

	if ma, ok := weekly.MovingAverage(window).Last(); ok {
		result.Value = ma
		result.FullWindow = true
	} else {
		result.Value = weekly.Mean()
	}
	return result, nil
}

// WeeklySums resamples records into a dense series of Sunday-ending weeks
func WeeklySums(records []domain.SalesRecord) Series {
	if len(records) == 0 {
		return nil
	}

	sorted := make([]domain.SalesRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	first := WeekEnding(sorted[0].Date)
	last := WeekEnding(sorted[len(sorted)-1].Date)

	weekly := make(Series, weeksBetween(first, last)+1)
	for _, r := range sorted {
		weekly[weeksBetween(first, WeekEnding(r.Date))] += r.WeeklySales
	}
	return weekly
}

// WeekEnding returns the Sunday on or after t, at midnight UTC
func WeekEnding(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	offset := (7 - int(day.Weekday())) % 7
	return day.AddDate(0, 0, offset)
}

func weeksBetween(from, to time.Time) int {
	days := int(to.Sub(from).Hours()/24 + 0.5)
	return days / 7
}
