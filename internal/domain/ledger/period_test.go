package ledger

import (
	"testing"
	"time"
)

func TestMonthBounds(t *testing.T) {
	now := time.Date(2025, 3, 17, 14, 30, 0, 0, time.UTC)

	start, end := MonthBounds(now)

	wantStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, start)
	}
	if end.Month() != time.March || end.Day() != 31 {
		t.Errorf("expected end on March 31, got %v", end)
	}
	if !end.Before(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end %v must precede the next month", end)
	}
}

func TestMonthBoundsAt(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		monthsAgo int
		wantStart time.Time
	}{
		{
			name:      "current month",
			now:       time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
			monthsAgo: 0,
			wantStart: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "previous month",
			now:       time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
			monthsAgo: 1,
			wantStart: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "crosses year boundary",
			now:       time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
			monthsAgo: 5,
			wantStart: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthBoundsAt(tt.now, tt.monthsAgo)
			if !start.Equal(tt.wantStart) {
				t.Errorf("expected start %v, got %v", tt.wantStart, start)
			}
			if !end.After(start) {
				t.Errorf("end %v must follow start %v", end, start)
			}
		})
	}
}

func TestMonthKey(t *testing.T) {
	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	if key := MonthKey(start); key != "2024-09" {
		t.Errorf("expected key 2024-09, got %s", key)
	}
}
