package model

// Tree is an in-memory arena over the rental-unit roster of one or more
// centers. It resolves parent/child relations once so that allocation and
// aggregation code can query the hierarchy without touching the database.
type Tree struct {
	units    map[string]*RentalUnit
	children map[string][]*RentalUnit
}

func NewTree(units []RentalUnit) *Tree {
	tree := &Tree{
		units:    make(map[string]*RentalUnit, len(units)),
		children: make(map[string][]*RentalUnit),
	}

	for i := range units {
		tree.units[units[i].ID] = &units[i]
	}

	// children keep roster order
	for i := range units {
		unit := &units[i]
		if unit.ParentID == "" {
			continue
		}

		tree.children[unit.ParentID] = append(tree.children[unit.ParentID], unit)
	}

	return tree
}

func (t *Tree) Unit(id string) (*RentalUnit, bool) {
	unit, ok := t.units[id]

	return unit, ok
}

func (t *Tree) Children(id string) []*RentalUnit {
	return t.children[id]
}

func (t *Tree) Parent(id string) (*RentalUnit, bool) {
	unit, ok := t.units[id]
	if !ok || unit.ParentID == "" {
		return nil, false
	}

	parent, ok := t.units[unit.ParentID]

	return parent, ok
}

// OccupancyTargets expands a unit to the units that actually carry its
// occupancy. A large dorm (children present, capacity above the threshold)
// is represented by its individual children, never by itself.
func (t *Tree) OccupancyTargets(id string) []*RentalUnit {
	unit, ok := t.units[id]
	if !ok {
		return nil
	}

	if unit.HasChildren && unit.Capacity > DormCapacityThreshold {
		return t.children[id]
	}

	return []*RentalUnit{unit}
}

// CreatesCycle reports whether re-parenting the given unit under parentID
// would make the unit its own ancestor or descendant. Hierarchies are at
// most a few levels deep, so walking two levels each way is sufficient.
func (t *Tree) CreatesCycle(id, parentID string) bool {
	if parentID == "" {
		return false
	}

	if id == parentID {
		return true
	}

	// two levels up from the candidate parent
	ancestor := parentID

	for range 2 {
		unit, ok := t.units[ancestor]
		if !ok || unit.ParentID == "" {
			break
		}

		if unit.ParentID == id {
			return true
		}

		ancestor = unit.ParentID
	}

	// two levels down from the unit
	for _, child := range t.children[id] {
		if child.ID == parentID {
			return true
		}

		for _, grandChild := range t.children[child.ID] {
			if grandChild.ID == parentID {
				return true
			}
		}
	}

	return false
}
