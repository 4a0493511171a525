package model

// View toggle for which level of the rental-unit hierarchy is counted.
const (
	ShowParents  = "parents"
	ShowChildren = "children"
	ShowAll      = "all"
)

var ShowModes = []string{ShowParents, ShowChildren, ShowAll}

// DayStatistics is one day of the planning read model.
type DayStatistics struct {
	Date                string `json:"date"`
	Capacity            int    `json:"capacity"`
	Occupied            int    `json:"occupied"`
	Blocked             int    `json:"blocked"`
	Occupancy           int    `json:"occupancy"`
	ArrivalsExpected    int    `json:"arrivals_expected"`
	ArrivalsConfirmed   int    `json:"arrivals_confirmed"`
	DeparturesExpected  int    `json:"departures_expected"`
	DeparturesConfirmed int    `json:"departures_confirmed"`
}
