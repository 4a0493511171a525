package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bModel "lodge/internal/domains/booking/model"
	cModel "lodge/internal/domains/consumption/model"
	"lodge/internal/domains/planning/model"
	"lodge/internal/domains/planning/service"
	ruModel "lodge/internal/domains/rentalunit/model"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

// stay expands a booking's stay into its per-day records, the way the
// generator stores them.
func stay(bookingID, unitID, from, to, bookingStatus string) []cModel.Consumption {
	dateFrom := day(from)
	dateTo := day(to)

	var status *string
	if bookingStatus != "" {
		status = &bookingStatus
	}

	var records []cModel.Consumption

	for d := dateFrom; !d.After(dateTo); d = d.AddDate(0, 0, 1) {
		records = append(records, cModel.Consumption{
			BookingID:       bookingID,
			RentalUnitID:    unitID,
			Date:            d,
			DateFrom:        dateFrom,
			DateTo:          dateTo,
			ScheduleFrom:    14 * 3600,
			ScheduleTo:      10 * 3600,
			Qty:             1,
			Type:            cModel.TypeStay,
			IsAccommodation: true,
			BookingStatus:   status,
		})
	}

	return records
}

func block(unitID, from, to string) []cModel.Consumption {
	dateFrom := day(from)
	dateTo := day(to)

	var records []cModel.Consumption

	for d := dateFrom; !d.After(dateTo); d = d.AddDate(0, 0, 1) {
		records = append(records, cModel.Consumption{
			RentalUnitID:    unitID,
			Date:            d,
			DateFrom:        dateFrom,
			DateTo:          dateTo,
			Type:            cModel.TypeOOO,
			IsAccommodation: true,
		})
	}

	return records
}

func byDate(days []model.DayStatistics) map[string]model.DayStatistics {
	index := make(map[string]model.DayStatistics, len(days))
	for _, d := range days {
		index[d.Date] = d
	}

	return index
}

func singleRoom() []ruModel.RentalUnit {
	return []ruModel.RentalUnit{
		{ID: "room-1", Capacity: 2, IsAccommodation: true},
	}
}

func TestAggregate_StayOccupancy(t *testing.T) {
	consumptions := stay("b1", "room-1", "2024-01-10", "2024-01-12", "")

	days := service.Aggregate(singleRoom(), consumptions, day("2024-01-10"), day("2024-01-12"), model.ShowAll)
	require.Len(t, days, 3)

	stats := byDate(days)

	assert.Equal(t, 1, stats["2024-01-10"].Occupied)
	assert.Equal(t, 1, stats["2024-01-11"].Occupied)
	assert.Equal(t, 0, stats["2024-01-12"].Occupied)

	assert.Equal(t, 1, stats["2024-01-10"].ArrivalsExpected)
	assert.Equal(t, 0, stats["2024-01-10"].ArrivalsConfirmed)
	assert.Equal(t, 1, stats["2024-01-12"].DeparturesExpected)
	assert.Equal(t, 0, stats["2024-01-12"].DeparturesConfirmed)

	assert.Equal(t, 100, stats["2024-01-10"].Occupancy)
	assert.Equal(t, 0, stats["2024-01-12"].Occupancy)
}

func TestAggregate_BlockCarriesBackCapacity(t *testing.T) {
	consumptions := block("room-1", "2024-02-01", "2024-02-03")

	days := service.Aggregate(singleRoom(), consumptions, day("2024-01-30"), day("2024-02-03"), model.ShowAll)
	stats := byDate(days)

	assert.Equal(t, 1, stats["2024-01-30"].Capacity)
	assert.Equal(t, 0, stats["2024-01-30"].Blocked)

	// the day before the block loses the unit too
	assert.Equal(t, 0, stats["2024-01-31"].Capacity)
	assert.Equal(t, 1, stats["2024-01-31"].Blocked)

	for _, d := range []string{"2024-02-01", "2024-02-02", "2024-02-03"} {
		assert.Equal(t, 0, stats[d].Capacity, d)
		assert.Equal(t, 1, stats[d].Blocked, d)
		assert.Equal(t, 100, stats[d].Occupancy, d)
	}
}

func TestAggregate_ConfirmedCounters(t *testing.T) {
	consumptions := stay("b1", "room-1", "2024-01-10", "2024-01-12", bModel.StatusBalanced)

	days := service.Aggregate(singleRoom(), consumptions, day("2024-01-10"), day("2024-01-12"), model.ShowAll)
	stats := byDate(days)

	// balanced implies both arrived and departed
	assert.Equal(t, 1, stats["2024-01-10"].ArrivalsConfirmed)
	assert.Equal(t, 1, stats["2024-01-12"].DeparturesConfirmed)
}

func TestAggregate_ShowModes(t *testing.T) {
	roster := []ruModel.RentalUnit{
		{ID: "dorm", Capacity: 12, IsAccommodation: true, HasChildren: true},
		{ID: "bunk-1", Capacity: 1, IsAccommodation: true, ParentID: "dorm"},
		{ID: "bunk-2", Capacity: 1, IsAccommodation: true, ParentID: "dorm"},
		{ID: "single", Capacity: 1, IsAccommodation: true},
		{ID: "bikes", Capacity: 20, IsAccommodation: false},
	}

	tests := []struct {
		show     string
		capacity int
	}{
		{show: model.ShowChildren, capacity: 3},
		{show: model.ShowParents, capacity: 2},
		{show: model.ShowAll, capacity: 4},
	}

	for _, test := range tests {
		t.Run(test.show, func(t *testing.T) {
			days := service.Aggregate(roster, nil, day("2024-01-10"), day("2024-01-10"), test.show)

			require.Len(t, days, 1)
			assert.Equal(t, test.capacity, days[0].Capacity)
		})
	}
}

func TestAggregate_OverlappingFragmentsCountOnce(t *testing.T) {
	consumptions := append(
		stay("b1", "room-1", "2024-01-10", "2024-01-11", ""),
		stay("b1", "room-1", "2024-01-10", "2024-01-11", "")...,
	)

	days := service.Aggregate(singleRoom(), consumptions, day("2024-01-10"), day("2024-01-10"), model.ShowAll)
	stats := byDate(days)

	assert.Equal(t, 1, stats["2024-01-10"].Occupied)
	assert.Equal(t, 1, stats["2024-01-10"].ArrivalsExpected)
}

func TestAggregate_TrailingBlockOutsideRange(t *testing.T) {
	// block starts the day after the requested range; only the carry-back
	// day is inside
	consumptions := block("room-1", "2024-02-01", "2024-02-02")

	days := service.Aggregate(singleRoom(), consumptions, day("2024-01-31"), day("2024-01-31"), model.ShowAll)
	require.Len(t, days, 1)

	assert.Equal(t, 0, days[0].Capacity)
	assert.Equal(t, 1, days[0].Blocked)
}

func TestAggregate_OccupancyClamped(t *testing.T) {
	roster := singleRoom()
	consumptions := append(
		stay("b1", "room-1", "2024-01-10", "2024-01-11", ""),
		block("room-1", "2024-01-12", "2024-01-12")...,
	)

	days := service.Aggregate(roster, consumptions, day("2024-01-10"), day("2024-01-12"), model.ShowAll)
	stats := byDate(days)

	for _, stat := range stats {
		assert.LessOrEqual(t, stat.Occupancy, 100)
		assert.GreaterOrEqual(t, stat.Capacity, 0)
	}
}
