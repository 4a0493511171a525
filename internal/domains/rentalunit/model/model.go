package model

import "lodge/shared/model"

const (
	TableName  = "rental_units"
	EntityName = "rental unit"

	FieldID              = "id"
	FieldName            = "name"
	FieldCenterID        = "center_id"
	FieldCapacity        = "capacity"
	FieldIsAccommodation = "is_accommodation"
	FieldHasChildren     = "has_children"
	FieldCanPartialRent  = "can_partial_rent"
	FieldParentID        = "parent_id"
)

// DormCapacityThreshold is the capacity above which a parent unit is never
// occupied as a whole: occupancy always lands on its children instead.
const DormCapacityThreshold = 10

type RentalUnit struct {
	ID              string `db:"id"`
	Name            string `db:"name"`
	CenterID        string `db:"center_id"`
	Capacity        int    `db:"capacity"`
	IsAccommodation bool   `db:"is_accommodation"`
	HasChildren     bool   `db:"has_children"`
	CanPartialRent  bool   `db:"can_partial_rent"`
	ParentID        string `db:"parent_id"`
	model.Metadata
}
