package dto

import (
	"time"

	"lodge/internal/domains/consumption/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

type ConsumptionResponse struct {
	ID              string `json:"id"`
	GroupID         string `json:"group_id,omitempty"`
	BookingID       string `json:"booking_id,omitempty"`
	RentalUnitID    string `json:"rental_unit_id"`
	Date            string `json:"date"`
	DateFrom        string `json:"date_from"`
	DateTo          string `json:"date_to"`
	ScheduleFrom    int    `json:"schedule_from"`
	ScheduleTo      int    `json:"schedule_to"`
	Qty             int    `json:"qty"`
	Type            string `json:"type"`
	IsAccommodation bool   `json:"is_accommodation"`
	BookingStatus   string `json:"booking_status,omitempty"`
	CenterID        string `json:"center_id"`
	gDto.Metadata
}

func (r *ConsumptionResponse) FromModel(model model.Consumption) {
	r.ID = model.ID
	r.GroupID = model.GroupID
	r.BookingID = model.BookingID
	r.RentalUnitID = model.RentalUnitID
	r.Date = model.Date.Format(constant.DayFormat)
	r.DateFrom = model.DateFrom.Format(constant.DayFormat)
	r.DateTo = model.DateTo.Format(constant.DayFormat)
	r.ScheduleFrom = model.ScheduleFrom
	r.ScheduleTo = model.ScheduleTo
	r.Qty = model.Qty
	r.Type = model.Type
	r.IsAccommodation = model.IsAccommodation
	r.CenterID = model.CenterID

	if model.BookingStatus != nil {
		r.BookingStatus = *model.BookingStatus
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetConsumptionsResponse struct {
	Consumptions []ConsumptionResponse `json:"consumptions"`
}

func (r *GetConsumptionsResponse) FromModels(models []model.Consumption) {
	r.Consumptions = make([]ConsumptionResponse, len(models))
	for i, mod := range models {
		r.Consumptions[i].FromModel(mod)
	}
}

type GenerateConsumptionsResponse struct {
	GroupID string `json:"group_id"`
	Created int    `json:"created"`
}

// CreateBlockRequest places an out-of-order block on one rental unit for a
// date range, removing it from sellable capacity.
type CreateBlockRequest struct {
	RentalUnitID string `json:"rental_unit_id" validate:"required"`
	DateFrom     string `json:"date_from"      validate:"required"`
	DateTo       string `json:"date_to"        validate:"required"`
}

func (c *CreateBlockRequest) Dates() (time.Time, time.Time, error) {
	dateFrom, err := timezone.Parse(constant.DayFormat, c.DateFrom)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid date format") //nolint:wrapcheck
	}

	dateTo, err := timezone.Parse(constant.DayFormat, c.DateTo)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid date format") //nolint:wrapcheck
	}

	if dateTo.Before(dateFrom) {
		return time.Time{}, time.Time{}, failure.InvalidDateRange //nolint:wrapcheck
	}

	return dateFrom, dateTo, nil
}

// DeleteBlockRequest removes the out-of-order records of a unit within a
// date range. Same shape as the create request.
type DeleteBlockRequest = CreateBlockRequest
