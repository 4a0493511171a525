package model

import (
	"slices"

	"lodge/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldCenterID     = "center_id"
	FieldCustomerName = "customer_name"
	FieldStatus       = "status"
)

// Booking lifecycle. The sets below drive the confirmed arrival/departure
// counters of the planning statistics.
const (
	StatusOption        = "option"
	StatusConfirmed     = "confirmed"
	StatusCheckedIn     = "checkedin"
	StatusCheckedOut    = "checkedout"
	StatusInvoiced      = "invoiced"
	StatusDebitBalance  = "debit_balance"
	StatusCreditBalance = "credit_balance"
	StatusBalanced      = "balanced"
	StatusCancelled     = "cancelled"
)

var Statuses = []string{
	StatusOption,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusInvoiced,
	StatusDebitBalance,
	StatusCreditBalance,
	StatusBalanced,
	StatusCancelled,
}

var checkedInStatuses = []string{
	StatusCheckedIn,
	StatusCheckedOut,
	StatusInvoiced,
	StatusDebitBalance,
	StatusCreditBalance,
	StatusBalanced,
}

var departedStatuses = []string{
	StatusCheckedOut,
	StatusInvoiced,
	StatusDebitBalance,
	StatusCreditBalance,
	StatusBalanced,
}

// IsCheckedIn reports whether the guests of a booking in this status have
// arrived (or already left).
func IsCheckedIn(status string) bool {
	return slices.Contains(checkedInStatuses, status)
}

// IsDeparted reports whether a booking in this status is past checkout.
func IsDeparted(status string) bool {
	return slices.Contains(departedStatuses, status)
}

type Booking struct {
	ID           string `db:"id"`
	CenterID     string `db:"center_id"`
	CustomerName string `db:"customer_name"`
	Status       string `db:"status"`
	model.Metadata
}
