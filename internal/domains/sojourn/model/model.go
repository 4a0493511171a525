package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "sojourn_groups"
	EntityName = "sojourn group"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldNbPers    = "nb_pers"
	FieldDateFrom  = "date_from"
	FieldDateTo    = "date_to"
	FieldTimeFrom  = "time_from"
	FieldTimeTo    = "time_to"
	FieldIsExtra   = "is_extra"
	FieldStatus    = "status"
)

// Scheduling state machine of a sojourn group. The unscheduled→scheduled
// transition happens inside the same transaction as the consumption writes,
// so a group can never be half generated.
const (
	StatusUnscheduled = "unscheduled"
	StatusScheduled   = "scheduled"
)

type SojournGroup struct {
	ID        string    `db:"id"`
	BookingID string    `db:"booking_id"`
	NbPers    int       `db:"nb_pers"`
	DateFrom  time.Time `db:"date_from"`
	DateTo    time.Time `db:"date_to"`
	TimeFrom  int       `db:"time_from"`
	TimeTo    int       `db:"time_to"`
	IsExtra   bool      `db:"is_extra"`
	Status    string    `db:"status"`
	model.Metadata
}

// Days returns the number of calendar days in [date_from, date_to], inclusive.
func (g *SojournGroup) Days() int {
	from := g.DateFrom.Truncate(24 * time.Hour)
	to := g.DateTo.Truncate(24 * time.Hour)

	if to.Before(from) {
		return 0
	}

	return int(to.Sub(from).Hours()/24) + 1
}
