package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/rentalunit/model"
)

func roster() []model.RentalUnit {
	return []model.RentalUnit{
		{ID: "dorm", Name: "Dorm 12", Capacity: 12, IsAccommodation: true, HasChildren: true},
		{ID: "bunk-1", Name: "Bunk 1", Capacity: 1, IsAccommodation: true, ParentID: "dorm"},
		{ID: "bunk-2", Name: "Bunk 2", Capacity: 1, IsAccommodation: true, ParentID: "dorm"},
		{ID: "bunk-3", Name: "Bunk 3", Capacity: 1, IsAccommodation: true, ParentID: "dorm"},
		{ID: "family", Name: "Family Room", Capacity: 6, IsAccommodation: true, HasChildren: true},
		{ID: "family-a", Name: "Family A", Capacity: 3, IsAccommodation: true, ParentID: "family"},
		{ID: "single", Name: "Single", Capacity: 1, IsAccommodation: true},
	}
}

func TestTree_OccupancyTargets(t *testing.T) {
	tree := model.NewTree(roster())

	tests := []struct {
		name     string
		unitID   string
		expected []string
	}{
		{
			name:     "large dorm expands to children, never itself",
			unitID:   "dorm",
			expected: []string{"bunk-1", "bunk-2", "bunk-3"},
		},
		{
			name:     "parent under capacity threshold stays itself",
			unitID:   "family",
			expected: []string{"family"},
		},
		{
			name:     "leaf unit stays itself",
			unitID:   "single",
			expected: []string{"single"},
		},
		{
			name:     "unknown unit has no targets",
			unitID:   "missing",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targets := tree.OccupancyTargets(tt.unitID)

			ids := make([]string, 0, len(targets))
			for _, target := range targets {
				ids = append(ids, target.ID)
			}

			if tt.expected == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.expected, ids)
			}
		})
	}
}

func TestTree_Lookups(t *testing.T) {
	tree := model.NewTree(roster())

	unit, ok := tree.Unit("bunk-2")
	assert.True(t, ok)
	assert.Equal(t, "dorm", unit.ParentID)

	parent, ok := tree.Parent("bunk-2")
	assert.True(t, ok)
	assert.Equal(t, "dorm", parent.ID)

	_, ok = tree.Parent("single")
	assert.False(t, ok)

	assert.Len(t, tree.Children("dorm"), 3)
}

func TestTree_CreatesCycle(t *testing.T) {
	tree := model.NewTree(roster())

	tests := []struct {
		name     string
		unitID   string
		parentID string
		cycle    bool
	}{
		{
			name:     "unit cannot be its own parent",
			unitID:   "dorm",
			parentID: "dorm",
			cycle:    true,
		},
		{
			name:     "unit cannot be parented under its own child",
			unitID:   "dorm",
			parentID: "bunk-1",
			cycle:    true,
		},
		{
			name:     "parent two levels up is rejected",
			unitID:   "family",
			parentID: "family-a",
			cycle:    true,
		},
		{
			name:     "unrelated unit is a valid parent",
			unitID:   "single",
			parentID: "family",
			cycle:    false,
		},
		{
			name:     "clearing the parent is always valid",
			unitID:   "bunk-1",
			parentID: "",
			cycle:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.cycle, tree.CreatesCycle(tt.unitID, tt.parentID))
		})
	}
}
