package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/consumption/model"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func stay(bookingID, unitID, from, to string) model.Consumption {
	return model.Consumption{
		BookingID:    bookingID,
		RentalUnitID: unitID,
		Date:         day(from),
		DateFrom:     day(from),
		DateTo:       day(to),
		ScheduleFrom: 14 * 3600,
		ScheduleTo:   10 * 3600,
		Type:         model.TypeStay,
	}
}

func interval(from, to string) (int64, int64) {
	return day(from).Unix() + 14*3600, day(to).Unix() + 10*3600
}

func TestTimeline_Conflicts(t *testing.T) {
	tests := []struct {
		name      string
		existing  []model.Consumption
		unitID    string
		bookingID string
		from      string
		to        string
		expected  bool
	}{
		{
			name:      "empty timeline",
			unitID:    "room-1",
			bookingID: "b2",
			from:      "2024-01-10",
			to:        "2024-01-12",
			expected:  false,
		},
		{
			name:      "overlapping stay of another booking",
			existing:  []model.Consumption{stay("b1", "room-1", "2024-01-01", "2024-01-03")},
			unitID:    "room-1",
			bookingID: "b2",
			from:      "2024-01-02",
			to:        "2024-01-04",
			expected:  true,
		},
		{
			name:      "back to back is not a conflict",
			existing:  []model.Consumption{stay("b1", "room-1", "2024-01-01", "2024-01-03")},
			unitID:    "room-1",
			bookingID: "b2",
			from:      "2024-01-03",
			to:        "2024-01-05",
			expected:  false,
		},
		{
			name:      "same booking never conflicts with itself",
			existing:  []model.Consumption{stay("b1", "room-1", "2024-01-01", "2024-01-03")},
			unitID:    "room-1",
			bookingID: "b1",
			from:      "2024-01-02",
			to:        "2024-01-04",
			expected:  false,
		},
		{
			name:      "other unit is untouched",
			existing:  []model.Consumption{stay("b1", "room-1", "2024-01-01", "2024-01-03")},
			unitID:    "room-2",
			bookingID: "b2",
			from:      "2024-01-02",
			to:        "2024-01-04",
			expected:  false,
		},
		{
			name: "short early stay hidden behind a long one",
			existing: []model.Consumption{
				stay("b1", "room-1", "2024-01-01", "2024-01-20"),
				stay("b2", "room-1", "2024-01-02", "2024-01-03"),
			},
			unitID:    "room-1",
			bookingID: "b3",
			from:      "2024-01-15",
			to:        "2024-01-16",
			expected:  true,
		},
		{
			name: "out of order block conflicts with any booking",
			existing: []model.Consumption{
				{RentalUnitID: "room-1", Date: day("2024-02-01"), DateFrom: day("2024-02-01"), DateTo: day("2024-02-03"), Type: model.TypeOOO},
			},
			unitID:    "room-1",
			bookingID: "b1",
			from:      "2024-02-02",
			to:        "2024-02-04",
			expected:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			timeline := model.NewTimeline(test.existing)

			from, to := interval(test.from, test.to)

			assert.Equal(t, test.expected, timeline.Conflicts(test.unitID, test.bookingID, from, to))
		})
	}
}

func TestTimeline_ConflictSymmetry(t *testing.T) {
	first := stay("b1", "room-1", "2024-03-01", "2024-03-03")
	timeline := model.NewTimeline([]model.Consumption{first})

	touchFrom, touchTo := interval("2024-03-03", "2024-03-05")
	assert.False(t, timeline.Conflicts("room-1", "b2", touchFrom, touchTo))

	overlapFrom, overlapTo := interval("2024-03-02", "2024-03-04")
	assert.True(t, timeline.Conflicts("room-1", "b2", overlapFrom, overlapTo))

	reversed := stay("b2", "room-1", "2024-03-02", "2024-03-04")
	reversedTimeline := model.NewTimeline([]model.Consumption{reversed})

	firstFrom, firstTo := first.Interval()
	assert.True(t, reversedTimeline.Conflicts("room-1", "b1", firstFrom, firstTo))
}
