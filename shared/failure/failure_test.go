package failure_test

import (
	"errors"
	"lodge/shared/failure"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "UnknownRentalUnit",
			failure: failure.UnknownRentalUnit,
			code:    http.StatusNotFound,
			message: "unknown_rental_unit",
		},
		{
			name:    "QuantityExceedsGroup",
			failure: failure.QuantityExceedsGroup,
			code:    http.StatusBadRequest,
			message: "quantity_exceeds_group",
		},
		{
			name:    "QuantityExceedAccommodation",
			failure: failure.QuantityExceedAccommodation,
			code:    http.StatusBadRequest,
			message: "quantity_exceed_accommodation",
		},
		{
			name:    "GroupAssignmentQuantityMismatch",
			failure: failure.GroupAssignmentQuantityMismatch,
			code:    http.StatusBadRequest,
			message: "group_assignment_quantity_mismatch",
		},
		{
			name:    "InvalidStatus",
			failure: failure.InvalidStatus,
			code:    http.StatusConflict,
			message: "invalid_status",
		},
		{
			name:    "BookedRentalUnit",
			failure: failure.BookedRentalUnit,
			code:    http.StatusConflict,
			message: "booked_rental_unit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestSchedulerFailuresAreComparable(t *testing.T) {
	var err error = failure.BookedRentalUnit

	wrapped := errors.Join(errors.New("generation aborted"), err)

	if !errors.Is(wrapped, failure.BookedRentalUnit) {
		t.Error("expected wrapped error to match failure.BookedRentalUnit")
	}

	if errors.Is(wrapped, failure.InvalidStatus) {
		t.Error("did not expect wrapped error to match failure.InvalidStatus")
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if f.Code != expectedF.Code || f.Message != expectedF.Message {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("sojourn group")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusNotFound {
			t.Errorf("expected code to be %d, got %d", http.StatusNotFound, f.Code)
		}
		if f.Message != "sojourn group" {
			t.Errorf("expected message to be 'sojourn group', got %s", f.Message)
		}
	}
}

func TestGetCode(t *testing.T) {
	if code := failure.GetCode(failure.BookedRentalUnit); code != http.StatusConflict {
		t.Errorf("expected code to be %d, got %d", http.StatusConflict, code)
	}

	if code := failure.GetCode(errors.New("plain error")); code != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, code)
	}
}
