package availability

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestNewPeriod(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantError bool
	}{
		{"december 2024", 2024, 12, false},
		{"january", 2025, 1, false},
		{"month zero", 2024, 0, true},
		{"month thirteen", 2024, 13, true},
		{"two digit year", 24, 12, true},
		{"five digit year", 20245, 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPeriod(tt.year, tt.month)
			if tt.wantError {
				if err == nil {
					t.Errorf("NewPeriod(%d, %d) expected error, got %v", tt.year, tt.month, p)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPeriod(%d, %d) unexpected error: %v", tt.year, tt.month, err)
			}
			if p.Year != tt.year || p.Month != time.Month(tt.month) {
				t.Errorf("NewPeriod() = %+v", p)
			}
		})
	}
}

func TestPeriodFormatting(t *testing.T) {
	p := Period{Year: 2024, Month: time.March}

	if got := p.String(); got != "2024-03" {
		t.Errorf("String() = %q, want %q", got, "2024-03")
	}
	if got := p.Code(); got != "202403" {
		t.Errorf("Code() = %q, want %q", got, "202403")
	}
}

func TestValidateDays(t *testing.T) {
	if err := ValidateDays([]int{1, 8, 31}); err != nil {
		t.Errorf("ValidateDays() unexpected error: %v", err)
	}
	if err := ValidateDays(nil); err != nil {
		t.Errorf("ValidateDays(nil) unexpected error: %v", err)
	}
	for _, bad := range []int{0, 32, -1} {
		if err := ValidateDays([]int{8, bad}); err == nil {
			t.Errorf("ValidateDays() expected error for %d", bad)
		}
	}
}

func TestUniqueDays(t *testing.T) {
	got := UniqueDays([]int{10, 8, 10, 9, 8})
	want := []int{10, 8, 9}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueDays() = %v, want %v", got, want)
	}
}

func TestResultAccessors(t *testing.T) {
	r := Result{
		Period: Period{Year: 2024, Month: time.December},
		Slots: []Slot{
			{Day: 9, Link: "/book/9"},
			{Day: 8, Link: "/book/8"},
		},
	}

	if r.Empty() {
		t.Error("Empty() = true, want false")
	}
	if got := r.Days(); !reflect.DeepEqual(got, []int{9, 8}) {
		t.Errorf("Days() = %v, want [9 8]", got)
	}
}

func TestFailed(t *testing.T) {
	cause := errors.New("connection refused")
	r := Failed(Period{Year: 2024, Month: time.December}, cause)

	if !r.Empty() {
		t.Error("Failed() result should be empty")
	}
	if !errors.Is(r.Err, cause) {
		t.Errorf("Err = %v, want %v", r.Err, cause)
	}
	if r.Slots == nil {
		t.Error("Slots should be an empty slice, not nil")
	}
}
