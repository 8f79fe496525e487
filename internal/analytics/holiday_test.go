package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescli/internal/errors"
)

func TestHolidayImpact(t *testing.T) {
	table := buildTable(t,
		row{store: "1", date: "2010-02-05", sales: 100, flag: "FALSE"},
		row{store: "1", date: "2010-02-12", sales: 300, flag: "TRUE"},
		row{store: "1", date: "2010-02-19", sales: 200, flag: " yes "},
		row{store: "2", date: "2010-02-05", sales: 50, flag: "0"},
		row{store: "2", date: "2010-02-12", sales: 60, flag: "1"},
		row{store: "2", date: "2010-02-19", sales: 90, flag: ""},
		row{store: "2", date: "2010-02-26", sales: 70, flag: "no"},
		row{store: "2", date: "2010-03-05", sales: 30, flag: "1.0"},
	)
	before := append([]string(nil), table.Records[1].Cells...)

	got, err := HolidayImpact(table, "IsHoliday", nil)
	require.NoError(t, err)
	require.Len(t, got, 2)

	nonHoliday, holiday := got[0], got[1]
	assert.False(t, nonHoliday.Flag)
	assert.True(t, holiday.Flag)
	assert.Equal(t, "IsHoliday", holiday.Column)

	// "1.0" is not in the truthy set
	assert.Equal(t, 5, nonHoliday.Count)
	assert.InDelta(t, 68.0, nonHoliday.Mean, 1e-9)
	assert.Equal(t, 3, holiday.Count)
	assert.InDelta(t, 186.66666666666666, holiday.Mean, 1e-9)
	assert.True(t, holiday.Std.Valid)

	// partition property
	assert.Equal(t, table.Len(), nonHoliday.Count+holiday.Count)
	assert.Equal(t, before, table.Records[1].Cells)
}

func TestHolidayImpact_SingleFlag(t *testing.T) {
	table := buildTable(t,
		row{store: "1", date: "2010-02-05", sales: 100, flag: "0"},
		row{store: "1", date: "2010-02-12", sales: 200, flag: "0"},
	)

	got, err := HolidayImpact(table, "IsHoliday", nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Flag)
	assert.Equal(t, 2, got[0].Count)
}

func TestHolidayImpact_SingleRowGroupHasNullStd(t *testing.T) {
	table := buildTable(t,
		row{store: "1", date: "2010-02-05", sales: 100, flag: "0"},
		row{store: "1", date: "2010-02-12", sales: 200, flag: "true"},
	)

	got, err := HolidayImpact(table, "IsHoliday", nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[1].Std.Valid)
}

func TestHolidayImpact_CustomTruthy(t *testing.T) {
	table := buildTable(t,
		row{store: "1", date: "2010-02-05", sales: 100, flag: "Y"},
		row{store: "1", date: "2010-02-12", sales: 200, flag: "1"},
	)

	got, err := HolidayImpact(table, "IsHoliday", []string{"y"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 200.0, got[0].Mean)
	assert.Equal(t, 100.0, got[1].Mean)
}

func TestHolidayImpact_UnknownColumn(t *testing.T) {
	table := buildTable(t, row{store: "1", date: "2010-02-05", sales: 1})

	_, err := HolidayImpact(table, "Holiday", nil)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeNotFound))
	assert.False(t, errors.IsStoreNotFound(err))
}
