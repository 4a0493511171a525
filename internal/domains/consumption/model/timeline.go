package model

import (
	"sort"
)

// Span is one stay's absolute occupancy of a rental unit, in unix seconds.
// An out-of-order block has an empty BookingID.
type Span struct {
	BookingID string
	From      int64
	To        int64
}

// Timeline indexes existing consumptions per rental unit as spans sorted by
// start time, with a running maximum of end times. Conflict lookups binary
// search the start times and walk back only while the prefix maximum still
// reaches into the candidate interval, instead of scanning every span.
type Timeline struct {
	spans  map[string][]Span
	maxTos map[string][]int64
}

func NewTimeline(consumptions []Consumption) *Timeline {
	timeline := &Timeline{
		spans:  make(map[string][]Span),
		maxTos: make(map[string][]int64),
	}

	for i := range consumptions {
		consumption := &consumptions[i]
		from, to := consumption.Interval()

		timeline.spans[consumption.RentalUnitID] = append(timeline.spans[consumption.RentalUnitID], Span{
			BookingID: consumption.BookingID,
			From:      from,
			To:        to,
		})
	}

	for unitID, spans := range timeline.spans {
		sort.Slice(spans, func(i, j int) bool {
			return spans[i].From < spans[j].From
		})

		maxTos := make([]int64, len(spans))

		for i, span := range spans {
			maxTos[i] = span.To
			if i > 0 && maxTos[i-1] > maxTos[i] {
				maxTos[i] = maxTos[i-1]
			}
		}

		timeline.maxTos[unitID] = maxTos
	}

	return timeline
}

// Conflicts reports whether [from, to) overlaps an existing span on the
// unit that belongs to another booking. The overlap test is strict: a stay
// checking in exactly when another checks out is not a conflict. Spans of
// the same booking never conflict with each other; out-of-order blocks
// (empty booking) conflict with everything.
func (t *Timeline) Conflicts(unitID, bookingID string, from, to int64) bool {
	spans := t.spans[unitID]
	maxTos := t.maxTos[unitID]

	// first span starting at or after the candidate end; everything from
	// there on cannot overlap
	limit := sort.Search(len(spans), func(i int) bool {
		return spans[i].From >= to
	})

	for i := limit - 1; i >= 0; i-- {
		if maxTos[i] <= from {
			break
		}

		if spans[i].To <= from {
			continue
		}

		if spans[i].BookingID != "" && spans[i].BookingID == bookingID {
			continue
		}

		return true
	}

	return false
}
