package service

import (
	"math"
	"time"

	cModel "lodge/internal/domains/consumption/model"
	"lodge/internal/domains/planning/model"
	ruModel "lodge/internal/domains/rentalunit/model"
)

// Aggregate folds the consumptions of a date range into per-day planning
// statistics over the eligible accommodation units of the roster. The show
// toggle picks the hierarchy level that is counted: parents excludes child
// units, children excludes units that have children. A visited map keeps
// overlapping fragments of the same (unit, day) cell from double counting.
func Aggregate(roster []ruModel.RentalUnit, consumptions []cModel.Consumption, dateFrom, dateTo time.Time, show string) []model.DayStatistics {
	eligible := eligibleUnits(roster, show)

	type cell struct {
		unitID string
		day    string
		kind   string
	}

	days := []string{}
	stats := map[string]*model.DayStatistics{}
	capacityDelta := map[string]int{}

	for day := dateFrom; !day.After(dateTo); day = day.AddDate(0, 0, 1) {
		key := cModel.DayKey(day)
		days = append(days, key)
		stats[key] = &model.DayStatistics{Date: key}
	}

	visited := map[cell]bool{}

	mark := func(unitID, day, kind string) bool {
		c := cell{unitID: unitID, day: day, kind: kind}
		if visited[c] {
			return false
		}

		visited[c] = true

		return true
	}

	for i := range consumptions {
		consumption := &consumptions[i]
		if !eligible[consumption.RentalUnitID] {
			continue
		}

		day := cModel.DayKey(consumption.Date)

		if consumption.Type == cModel.TypeOOO {
			if stat, ok := stats[day]; ok && mark(consumption.RentalUnitID, day, "blocked") {
				stat.Blocked++
				capacityDelta[day]--
			}

			// blocking removes the unit from sellable capacity on the
			// night before the block starts as well
			if consumption.Date.Equal(consumption.DateFrom) {
				before := cModel.DayKey(consumption.Date.AddDate(0, 0, -1))
				if stat, ok := stats[before]; ok && mark(consumption.RentalUnitID, before, "blocked") {
					stat.Blocked++
					capacityDelta[before]--
				}
			}

			continue
		}

		stat, ok := stats[day]
		if !ok {
			continue
		}

		// checkout day is not an occupied night
		if consumption.Date.Before(consumption.DateTo) && mark(consumption.RentalUnitID, day, "occupied") {
			stat.Occupied++
		}

		if consumption.Date.Equal(consumption.DateFrom) && mark(consumption.RentalUnitID, day, "arrival") {
			stat.ArrivalsExpected++

			if consumption.IsCheckedIn() {
				stat.ArrivalsConfirmed++
			}
		}

		if consumption.Date.Equal(consumption.DateTo) && mark(consumption.RentalUnitID, day, "departure") {
			stat.DeparturesExpected++

			if consumption.IsDeparted() {
				stat.DeparturesConfirmed++
			}
		}
	}

	base := len(eligible)
	result := make([]model.DayStatistics, 0, len(days))

	for _, day := range days {
		stat := stats[day]

		stat.Capacity = base + capacityDelta[day]
		if stat.Capacity < 0 {
			stat.Capacity = 0
		}

		stat.Occupancy = occupancyPercent(stat.Occupied, stat.Capacity)

		result = append(result, *stat)
	}

	return result
}

func eligibleUnits(roster []ruModel.RentalUnit, show string) map[string]bool {
	eligible := map[string]bool{}

	for i := range roster {
		unit := &roster[i]
		if !unit.IsAccommodation {
			continue
		}

		switch show {
		case model.ShowParents:
			if unit.ParentID != "" {
				continue
			}
		case model.ShowChildren:
			if unit.HasChildren {
				continue
			}
		}

		eligible[unit.ID] = true
	}

	return eligible
}

func occupancyPercent(occupied, capacity int) int {
	if capacity == 0 {
		return 100
	}

	percent := int(math.Round(100 * float64(occupied) / float64(capacity)))
	if percent > 100 {
		percent = 100
	}

	return percent
}
