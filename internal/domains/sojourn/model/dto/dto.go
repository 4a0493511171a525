package dto

import (
	"time"

	"github.com/google/uuid"

	"lodge/internal/domains/sojourn/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

// Default day schedule of a stay: check-in 14:00, check-out 10:00.
const (
	DefaultTimeFrom = 14 * 3600
	DefaultTimeTo   = 10 * 3600
)

type CreateSojournGroupRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	NbPers    int    `json:"nb_pers"    validate:"required,gte=1"`
	DateFrom  string `json:"date_from"  validate:"required"`
	DateTo    string `json:"date_to"    validate:"required"`
	TimeFrom  string `json:"time_from"  validate:"omitempty"`
	TimeTo    string `json:"time_to"    validate:"omitempty"`
	IsExtra   bool   `json:"is_extra"`
}

func parseTimeOfDay(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}

	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}

	return t.Hour()*3600 + t.Minute()*60, nil
}

func (c *CreateSojournGroupRequest) ToModel(user string) (model.SojournGroup, error) {
	dateFrom, err := timezone.Parse(constant.DayFormat, c.DateFrom)
	if err != nil {
		return model.SojournGroup{}, err
	}

	dateTo, err := timezone.Parse(constant.DayFormat, c.DateTo)
	if err != nil {
		return model.SojournGroup{}, err
	}

	timeFrom, err := parseTimeOfDay(c.TimeFrom, DefaultTimeFrom)
	if err != nil {
		return model.SojournGroup{}, err
	}

	timeTo, err := parseTimeOfDay(c.TimeTo, DefaultTimeTo)
	if err != nil {
		return model.SojournGroup{}, err
	}

	return model.SojournGroup{
		ID:        uuid.NewString(),
		BookingID: c.BookingID,
		NbPers:    c.NbPers,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		TimeFrom:  timeFrom,
		TimeTo:    timeTo,
		IsExtra:   c.IsExtra,
		Status:    model.StatusUnscheduled,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateSojournGroupRequest struct {
	NbPers   int    `db:"nb_pers"  json:"nb_pers"   validate:"omitempty,gte=1"`
	DateFrom string `json:"date_from" validate:"omitempty"`
	DateTo   string `json:"date_to"   validate:"omitempty"`
	TimeFrom string `json:"time_from" validate:"omitempty"`
	TimeTo   string `json:"time_to"   validate:"omitempty"`
}

type SojournGroupResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	NbPers    int    `json:"nb_pers"`
	DateFrom  string `json:"date_from"`
	DateTo    string `json:"date_to"`
	TimeFrom  int    `json:"time_from"`
	TimeTo    int    `json:"time_to"`
	IsExtra   bool   `json:"is_extra"`
	Status    string `json:"status"`
	gDto.Metadata
}

func (r *SojournGroupResponse) FromModel(model model.SojournGroup) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.NbPers = model.NbPers
	r.DateFrom = model.DateFrom.Format(constant.DayFormat)
	r.DateTo = model.DateTo.Format(constant.DayFormat)
	r.TimeFrom = model.TimeFrom
	r.TimeTo = model.TimeTo
	r.IsExtra = model.IsExtra
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetSojournGroupsResponse struct {
	Groups    []SojournGroupResponse `json:"groups"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetSojournGroupsResponse) FromModels(models []model.SojournGroup, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Groups = make([]SojournGroupResponse, len(models))
	for i, mod := range models {
		r.Groups[i].FromModel(mod)
	}
}

type CreateAssignmentRequest struct {
	RentalUnitID string `json:"rental_unit_id" validate:"required"`
	Qty          int    `json:"qty"            validate:"required,gte=1"`
}

func (c *CreateAssignmentRequest) ToModel(groupID, user string) model.Assignment {
	return model.Assignment{
		ID:           uuid.NewString(),
		GroupID:      groupID,
		RentalUnitID: c.RentalUnitID,
		Qty:          c.Qty,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAssignmentRequest struct {
	Qty int `json:"qty" validate:"required,gte=1"`
}

type AssignmentResponse struct {
	ID           string `json:"id"`
	GroupID      string `json:"group_id"`
	RentalUnitID string `json:"rental_unit_id"`
	Qty          int    `json:"qty"`
	gDto.Metadata
}

func (r *AssignmentResponse) FromModel(model model.Assignment) {
	r.ID = model.ID
	r.GroupID = model.GroupID
	r.RentalUnitID = model.RentalUnitID
	r.Qty = model.Qty
	r.Metadata.FromModel(model.Metadata)
}

type GetAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
}

func (r *GetAssignmentsResponse) FromModels(models []model.Assignment) {
	r.Assignments = make([]AssignmentResponse, len(models))
	for i, mod := range models {
		r.Assignments[i].FromModel(mod)
	}
}
