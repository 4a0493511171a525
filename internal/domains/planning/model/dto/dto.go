package dto

import (
	"time"

	"lodge/internal/domains/planning/model"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

type PlanningRequest struct {
	Centers  []string `json:"centers"   validate:"required,min=1"`
	DateFrom string   `json:"date_from" validate:"required"`
	DateTo   string   `json:"date_to"   validate:"required"`
	Show     string   `json:"show"      validate:"omitempty,oneof=parents children all"`
}

func (p *PlanningRequest) Dates() (time.Time, time.Time, error) {
	dateFrom, err := timezone.Parse(constant.DayFormat, p.DateFrom)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid date format") //nolint:wrapcheck
	}

	dateTo, err := timezone.Parse(constant.DayFormat, p.DateTo)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid date format") //nolint:wrapcheck
	}

	if dateTo.Before(dateFrom) {
		return time.Time{}, time.Time{}, failure.InvalidDateRange //nolint:wrapcheck
	}

	return dateFrom, dateTo, nil
}

// ShowMode falls back to counting child units, the granularity occupancy
// is sold at.
func (p *PlanningRequest) ShowMode() string {
	if p.Show == "" {
		return model.ShowChildren
	}

	return p.Show
}

type PlanningResponse struct {
	Days []model.DayStatistics `json:"days"`
}
