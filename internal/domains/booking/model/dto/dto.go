package dto

import (
	"github.com/google/uuid"

	"lodge/internal/domains/booking/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateBookingRequest struct {
	CenterID     string `json:"center_id"     validate:"required"`
	CustomerName string `json:"customer_name" validate:"required,max=100"`
	Status       string `json:"status"        validate:"omitempty,oneof=option confirmed"`
}

func (c *CreateBookingRequest) ToModel(user string) model.Booking {
	status := model.StatusOption
	if c.Status != "" {
		status = c.Status
	}

	return model.Booking{
		ID:           uuid.NewString(),
		CenterID:     c.CenterID,
		CustomerName: c.CustomerName,
		Status:       status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	CustomerName string `db:"customer_name" json:"customer_name" validate:"omitempty,max=100"`
	Status       string `db:"status"        json:"status"        validate:"omitempty,oneof=option confirmed checkedin checkedout invoiced debit_balance credit_balance balanced cancelled"`
}

type BookingResponse struct {
	ID           string `json:"id"`
	CenterID     string `json:"center_id"`
	CustomerName string `json:"customer_name"`
	Status       string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CenterID = model.CenterID
	r.CustomerName = model.CustomerName
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
