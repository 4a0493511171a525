package service

import (
	ruModel "lodge/internal/domains/rentalunit/model"
	"lodge/internal/domains/sojourn/model"
	"lodge/shared/failure"
)

// ValidateAssignment checks one declared assignment in isolation. Declared
// totals may over-cover the group; the exact-sum rule only applies when the
// group's consumptions are generated (see ResolveTargets).
func ValidateAssignment(group model.SojournGroup, unit *ruModel.RentalUnit, qty int) error {
	if qty > group.NbPers {
		return failure.QuantityExceedsGroup //nolint:wrapcheck
	}

	if qty > unit.Capacity {
		return failure.QuantityExceedAccommodation //nolint:wrapcheck
	}

	return nil
}

// ResolveTargets turns the declared assignments of a sojourn group into
// concrete occupancy targets. Units with children above the dorm capacity
// threshold are expanded to their children: the parent itself never carries
// occupancy. Quantities are validated against unit capacity and group size,
// and, because this is the generation call site, their sum must equal the
// group's nb_pers exactly.
func ResolveTargets(group model.SojournGroup, assignments []model.Assignment, tree *ruModel.Tree) ([]model.Target, error) {
	if len(assignments) == 0 {
		return nil, nil
	}

	total := 0
	targets := []model.Target{}
	index := map[string]int{}

	appendTarget := func(unitID string, qty int, isAccommodation bool) {
		if pos, ok := index[unitID]; ok {
			targets[pos].Qty += qty

			return
		}

		index[unitID] = len(targets)
		targets = append(targets, model.Target{
			RentalUnitID:    unitID,
			Qty:             qty,
			IsAccommodation: isAccommodation,
		})
	}

	for _, assignment := range assignments {
		unit, ok := tree.Unit(assignment.RentalUnitID)
		if !ok {
			return nil, failure.UnknownRentalUnit //nolint:wrapcheck
		}

		if err := ValidateAssignment(group, unit, assignment.Qty); err != nil {
			return nil, err
		}

		qty := min(assignment.Qty, group.NbPers)
		total += qty

		expanded := tree.OccupancyTargets(unit.ID)
		if len(expanded) == 1 && expanded[0].ID == unit.ID {
			appendTarget(unit.ID, qty, unit.IsAccommodation)

			continue
		}

		// dorm: spread the persons over the children in roster order
		remaining := qty

		for _, child := range expanded {
			if remaining == 0 {
				break
			}

			take := min(child.Capacity, remaining)
			appendTarget(child.ID, take, child.IsAccommodation)
			remaining -= take
		}

		if remaining > 0 {
			return nil, failure.QuantityExceedAccommodation //nolint:wrapcheck
		}
	}

	if total != group.NbPers {
		return nil, failure.GroupAssignmentQuantityMismatch //nolint:wrapcheck
	}

	return targets, nil
}
