package dto

import (
	"github.com/google/uuid"

	"lodge/internal/domains/rentalunit/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateRentalUnitRequest struct {
	Name            string `json:"name"             validate:"required,max=100"`
	CenterID        string `json:"center_id"        validate:"required"`
	Capacity        int    `json:"capacity"         validate:"required,gte=1"`
	IsAccommodation bool   `json:"is_accommodation"`
	CanPartialRent  bool   `json:"can_partial_rent"`
	ParentID        string `json:"parent_id"        validate:"omitempty"`
}

func (c *CreateRentalUnitRequest) ToModel(user string) model.RentalUnit {
	return model.RentalUnit{
		ID:              uuid.NewString(),
		Name:            c.Name,
		CenterID:        c.CenterID,
		Capacity:        c.Capacity,
		IsAccommodation: c.IsAccommodation,
		CanPartialRent:  c.CanPartialRent,
		ParentID:        c.ParentID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRentalUnitRequest struct {
	Name           string `db:"name"             json:"name"             validate:"omitempty,max=100"`
	Capacity       int    `db:"capacity"         json:"capacity"         validate:"omitempty,gte=1"`
	CanPartialRent bool   `db:"can_partial_rent" json:"can_partial_rent" validate:"omitempty"`
	ParentID       string `db:"parent_id"        json:"parent_id"        validate:"omitempty"`
}

type RentalUnitResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CenterID        string `json:"center_id"`
	Capacity        int    `json:"capacity"`
	IsAccommodation bool   `json:"is_accommodation"`
	HasChildren     bool   `json:"has_children"`
	CanPartialRent  bool   `json:"can_partial_rent"`
	ParentID        string `json:"parent_id,omitempty"`
	gDto.Metadata
}

func (r *RentalUnitResponse) FromModel(model model.RentalUnit) {
	r.ID = model.ID
	r.Name = model.Name
	r.CenterID = model.CenterID
	r.Capacity = model.Capacity
	r.IsAccommodation = model.IsAccommodation
	r.HasChildren = model.HasChildren
	r.CanPartialRent = model.CanPartialRent
	r.ParentID = model.ParentID
	r.Metadata.FromModel(model.Metadata)
}

type GetRentalUnitsResponse struct {
	RentalUnits []RentalUnitResponse `json:"rental_units"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetRentalUnitsResponse) FromModels(models []model.RentalUnit, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RentalUnits = make([]RentalUnitResponse, len(models))
	for i, mod := range models {
		r.RentalUnits[i].FromModel(mod)
	}
}
