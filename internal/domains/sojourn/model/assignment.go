package model

import "lodge/shared/model"

const (
	AssignmentTableName  = "sojourn_assignments"
	AssignmentEntityName = "assignment"

	AssignmentFieldID           = "id"
	AssignmentFieldGroupID      = "group_id"
	AssignmentFieldRentalUnitID = "rental_unit_id"
	AssignmentFieldQty          = "qty"
)

// Assignment allocates a quantity of persons from a sojourn group to a
// rental unit. Declared assignments may over-cover the group; the strict
// sum check only applies when consumptions are generated.
type Assignment struct {
	ID           string `db:"id"`
	GroupID      string `db:"group_id"`
	RentalUnitID string `db:"rental_unit_id"`
	Qty          int    `db:"qty"`
	model.Metadata
}

// Target is a concrete occupancy target produced by resolving a group's
// assignments against the rental-unit tree: children-expanded and clamped,
// ready for consumption generation.
type Target struct {
	RentalUnitID    string
	Qty             int
	IsAccommodation bool
}
