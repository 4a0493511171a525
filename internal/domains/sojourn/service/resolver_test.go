package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ruModel "lodge/internal/domains/rentalunit/model"
	"lodge/internal/domains/sojourn/model"
	"lodge/internal/domains/sojourn/service"
	"lodge/shared/failure"
)

func roster() []ruModel.RentalUnit {
	return []ruModel.RentalUnit{
		{ID: "dorm", Name: "Dorm 12", Capacity: 12, IsAccommodation: true, HasChildren: true},
		{ID: "bunk-1", Name: "Bunk 1", Capacity: 4, IsAccommodation: true, ParentID: "dorm"},
		{ID: "bunk-2", Name: "Bunk 2", Capacity: 4, IsAccommodation: true, ParentID: "dorm"},
		{ID: "bunk-3", Name: "Bunk 3", Capacity: 4, IsAccommodation: true, ParentID: "dorm"},
		{ID: "family", Name: "Family Room", Capacity: 6, IsAccommodation: true, HasChildren: true},
		{ID: "family-a", Name: "Family A", Capacity: 3, IsAccommodation: true, ParentID: "family"},
		{ID: "single", Name: "Single", Capacity: 1, IsAccommodation: true},
		{ID: "bikes", Name: "Bike Shed", Capacity: 20, IsAccommodation: false},
	}
}

func group(nbPers int) model.SojournGroup {
	return model.SojournGroup{ID: "grp", BookingID: "bkg", NbPers: nbPers, Status: model.StatusUnscheduled}
}

func TestValidateAssignment(t *testing.T) {
	units := roster()

	tests := []struct {
		name     string
		group    model.SojournGroup
		unit     *ruModel.RentalUnit
		qty      int
		expected error
	}{
		{
			name:  "within group and capacity",
			group: group(3),
			unit:  &units[4], // family, capacity 6
			qty:   3,
		},
		{
			name:     "quantity above group size",
			group:    group(2),
			unit:     &units[4],
			qty:      3,
			expected: failure.QuantityExceedsGroup,
		},
		{
			name:     "quantity above unit capacity",
			group:    group(8),
			unit:     &units[6], // single, capacity 1
			qty:      2,
			expected: failure.QuantityExceedAccommodation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := service.ValidateAssignment(test.group, test.unit, test.qty)

			if test.expected == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, test.expected)
		})
	}
}

func TestResolveTargets(t *testing.T) {
	tree := ruModel.NewTree(roster())

	t.Run("no assignments yields no targets", func(t *testing.T) {
		targets, err := service.ResolveTargets(group(4), nil, tree)

		require.NoError(t, err)
		assert.Empty(t, targets)
	})

	t.Run("plain unit resolves to itself", func(t *testing.T) {
		assignments := []model.Assignment{
			{ID: "a1", GroupID: "grp", RentalUnitID: "family", Qty: 4},
		}

		targets, err := service.ResolveTargets(group(4), assignments, tree)

		require.NoError(t, err)
		require.Len(t, targets, 1)
		assert.Equal(t, "family", targets[0].RentalUnitID)
		assert.Equal(t, 4, targets[0].Qty)
		assert.True(t, targets[0].IsAccommodation)
	})

	t.Run("dorm spreads over children in roster order", func(t *testing.T) {
		assignments := []model.Assignment{
			{ID: "a1", GroupID: "grp", RentalUnitID: "dorm", Qty: 6},
		}

		targets, err := service.ResolveTargets(group(6), assignments, tree)

		require.NoError(t, err)
		require.Len(t, targets, 2)
		assert.Equal(t, "bunk-1", targets[0].RentalUnitID)
		assert.Equal(t, 4, targets[0].Qty)
		assert.Equal(t, "bunk-2", targets[1].RentalUnitID)
		assert.Equal(t, 2, targets[1].Qty)
	})

	t.Run("duplicate unit assignments merge into one target", func(t *testing.T) {
		assignments := []model.Assignment{
			{ID: "a1", GroupID: "grp", RentalUnitID: "family", Qty: 2},
			{ID: "a2", GroupID: "grp", RentalUnitID: "family", Qty: 3},
		}

		targets, err := service.ResolveTargets(group(5), assignments, tree)

		require.NoError(t, err)
		require.Len(t, targets, 1)
		assert.Equal(t, 5, targets[0].Qty)
	})

	t.Run("non accommodation unit keeps the flag", func(t *testing.T) {
		assignments := []model.Assignment{
			{ID: "a1", GroupID: "grp", RentalUnitID: "bikes", Qty: 4},
		}

		targets, err := service.ResolveTargets(group(4), assignments, tree)

		require.NoError(t, err)
		require.Len(t, targets, 1)
		assert.False(t, targets[0].IsAccommodation)
	})

	t.Run("unknown unit", func(t *testing.T) {
		assignments := []model.Assignment{
			{ID: "a1", GroupID: "grp", RentalUnitID: "ghost", Qty: 2},
		}

		_, err := service.ResolveTargets(group(2), assignments, tree)

		assert.ErrorIs(t, err, failure.UnknownRentalUnit)
	})

	t.Run("sum below group size", func(t *testing.T) {
		assignments := []model.Assignment{
			{ID: "a1", GroupID: "grp", RentalUnitID: "family", Qty: 3},
		}

		_, err := service.ResolveTargets(group(5), assignments, tree)

		assert.ErrorIs(t, err, failure.GroupAssignmentQuantityMismatch)
	})

	t.Run("sum above group size", func(t *testing.T) {
		assignments := []model.Assignment{
			{ID: "a1", GroupID: "grp", RentalUnitID: "family", Qty: 4},
			{ID: "a2", GroupID: "grp", RentalUnitID: "single", Qty: 1},
		}

		_, err := service.ResolveTargets(group(4), assignments, tree)

		assert.ErrorIs(t, err, failure.GroupAssignmentQuantityMismatch)
	})

	t.Run("dorm without enough child capacity", func(t *testing.T) {
		units := []ruModel.RentalUnit{
			{ID: "dorm", Capacity: 12, IsAccommodation: true, HasChildren: true},
			{ID: "bunk-1", Capacity: 2, IsAccommodation: true, ParentID: "dorm"},
		}

		assignments := []model.Assignment{
			{ID: "a1", GroupID: "grp", RentalUnitID: "dorm", Qty: 5},
		}

		_, err := service.ResolveTargets(group(5), assignments, ruModel.NewTree(units))

		assert.ErrorIs(t, err, failure.QuantityExceedAccommodation)
	})
}
