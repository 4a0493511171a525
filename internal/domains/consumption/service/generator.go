package service

import (
	"time"

	"github.com/google/uuid"

	"lodge/internal/domains/consumption/model"
	ruModel "lodge/internal/domains/rentalunit/model"
	sModel "lodge/internal/domains/sojourn/model"
	"lodge/shared/constant"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

// BuildConsumptions expands a sojourn group and its resolved targets into
// one record per day per target. A supplementary-services group produces
// service records instead of stay records; either way the records carry the
// group's absolute date and schedule bounds so the conflict check can work
// on whole stays.
func BuildConsumptions(group sModel.SojournGroup, targets []sModel.Target, user string) []model.Consumption {
	consumptionType := model.TypeStay
	if group.IsExtra {
		consumptionType = model.TypeService
	}

	now := timezone.Now()
	records := make([]model.Consumption, 0, group.Days()*len(targets))

	for day := group.DateFrom; !day.After(group.DateTo); day = day.AddDate(0, 0, 1) {
		for _, target := range targets {
			records = append(records, model.Consumption{
				ID:              uuid.NewString(),
				GroupID:         group.ID,
				BookingID:       group.BookingID,
				RentalUnitID:    target.RentalUnitID,
				Date:            day,
				DateFrom:        group.DateFrom,
				DateTo:          group.DateTo,
				ScheduleFrom:    group.TimeFrom,
				ScheduleTo:      group.TimeTo,
				Qty:             target.Qty,
				Type:            consumptionType,
				IsAccommodation: target.IsAccommodation,
				Metadata: gModel.Metadata{
					CreatedAt:  now,
					ModifiedAt: now,
					CreatedBy:  user,
					ModifiedBy: user,
				},
			})
		}
	}

	return records
}

// BuildBlock produces the out-of-order records for one rental unit over
// [dateFrom, dateTo] inclusive. Blocks carry no booking and no group and
// occupy whole days, including the whole last day.
func BuildBlock(unit *ruModel.RentalUnit, dateFrom, dateTo time.Time, user string) []model.Consumption {
	now := timezone.Now()

	var records []model.Consumption

	for day := dateFrom; !day.After(dateTo); day = day.AddDate(0, 0, 1) {
		records = append(records, model.Consumption{
			ID:              uuid.NewString(),
			RentalUnitID:    unit.ID,
			Date:            day,
			DateFrom:        dateFrom,
			DateTo:          dateTo,
			ScheduleTo:      constant.SecondsPerDay,
			Qty:             0,
			Type:            model.TypeOOO,
			IsAccommodation: unit.IsAccommodation,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
	}

	return records
}
