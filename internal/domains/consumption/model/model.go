package model

import (
	"fmt"
	"time"

	bModel "lodge/internal/domains/booking/model"
	ruModel "lodge/internal/domains/rentalunit/model"
	"lodge/shared/constant"
	"lodge/shared/model"
)

const (
	TableName  = "consumptions"
	EntityName = "consumption"

	FieldID              = "id"
	FieldGroupID         = "group_id"
	FieldBookingID       = "booking_id"
	FieldRentalUnitID    = "rental_unit_id"
	FieldDate            = "date"
	FieldDateFrom        = "date_from"
	FieldDateTo          = "date_to"
	FieldScheduleFrom    = "schedule_from"
	FieldScheduleTo      = "schedule_to"
	FieldQty             = "qty"
	FieldType            = "type"
	FieldIsAccommodation = "is_accommodation"
)

const (
	TypeStay    = "stay"
	TypeOOO     = "ooo"
	TypeService = "service"

	// TypeMeal completes the stored type enum; no generation path emits
	// it yet.
	TypeMeal = "meal"
)

// Consumption is one day's occupancy of one rental unit. date_from/date_to
// carry the absolute bounds of the spanning stay and are identical across
// all days of one stay; the conflict check works on those bounds, not on
// the single day. Out-of-order blocks carry no booking and no group.
type Consumption struct {
	ID              string    `db:"id"`
	GroupID         string    `db:"group_id"`
	BookingID       string    `db:"booking_id"`
	RentalUnitID    string    `db:"rental_unit_id"`
	Date            time.Time `db:"date"`
	DateFrom        time.Time `db:"date_from"`
	DateTo          time.Time `db:"date_to"`
	ScheduleFrom    int       `db:"schedule_from"`
	ScheduleTo      int       `db:"schedule_to"`
	Qty             int       `db:"qty"`
	Type            string    `db:"type"`
	IsAccommodation bool      `db:"is_accommodation"`
	BookingStatus   *string   `db:"booking_status" table:"bookings" column:"status"`
	CenterID        string    `db:"center_id" table:"rental_units"`
	model.Metadata
}

func (Consumption) GetJoinQuery() string {
	return fmt.Sprintf(
		"LEFT JOIN %s ON %s.%s = %s.%s JOIN %s ON %s.%s = %s.%s",
		bModel.TableName, TableName, FieldBookingID, bModel.TableName, bModel.FieldID,
		ruModel.TableName, TableName, FieldRentalUnitID, ruModel.TableName, ruModel.FieldID,
	)
}

// Interval returns the absolute occupancy bounds of the spanning stay in
// unix seconds.
func (c *Consumption) Interval() (int64, int64) {
	from := c.DateFrom.Unix() + int64(c.ScheduleFrom)
	to := c.DateTo.Unix() + int64(c.ScheduleTo)

	return from, to
}

func (c *Consumption) IsCheckedIn() bool {
	return c.BookingStatus != nil && bModel.IsCheckedIn(*c.BookingStatus)
}

func (c *Consumption) IsDeparted() bool {
	return c.BookingStatus != nil && bModel.IsDeparted(*c.BookingStatus)
}

// DayKey formats a date as the map key used by the per-day indexes.
func DayKey(t time.Time) string {
	return t.Format(constant.DayFormat)
}
