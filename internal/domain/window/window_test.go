package window

import (
	"testing"
	"time"
)

func TestCompute(t *testing.T) {
	t.Parallel()

	chicago, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	now := time.Date(2024, 3, 15, 14, 30, 0, 0, chicago)
	win := Compute(now, chicago)

	wantStart := time.Date(2024, 3, 14, 0, 0, 0, 0, chicago)
	if !win.Start.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, win.Start)
	}

	wantEnd := time.Date(2024, 3, 16, 0, 0, 0, 0, chicago).Add(-time.Millisecond)
	if !win.End.Equal(wantEnd) {
		t.Errorf("expected end %v, got %v", wantEnd, win.End)
	}
}

func TestCompute_MonthBoundary(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	win := Compute(now, time.UTC)

	wantStart := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	if !win.Start.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, win.Start)
	}
}

func TestCompute_NilLocationDefaultsToLocal(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	win := Compute(now, nil)

	wantStart := time.Date(2024, 3, 14, 0, 0, 0, 0, time.Local)
	if !win.Start.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, win.Start)
	}
}

func TestWindow_Contains(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	win := Compute(now, time.UTC)

	tests := []struct {
		name     string
		instant  time.Time
		expected bool
	}{
		{
			name:     "start boundary is inclusive",
			instant:  time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "end boundary is inclusive",
			instant:  time.Date(2024, 3, 15, 23, 59, 59, 999000000, time.UTC),
			expected: true,
		},
		{
			name:     "just before start",
			instant:  time.Date(2024, 3, 13, 23, 59, 59, 999000000, time.UTC),
			expected: false,
		},
		{
			name:     "tomorrow midnight is excluded",
			instant:  time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "middle of yesterday",
			instant:  time.Date(2024, 3, 14, 16, 45, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "middle of today",
			instant:  time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := win.Contains(tt.instant); got != tt.expected {
				t.Errorf("Contains(%v): expected %v, got %v", tt.instant, tt.expected, got)
			}
		})
	}
}

func TestWindow_Contains_ComparesInstantsAcrossZones(t *testing.T) {
	t.Parallel()

	chicago, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, chicago)
	win := Compute(now, chicago)

	// The same instant expressed in UTC must get the same answer.
	inWindow := time.Date(2024, 3, 14, 0, 0, 0, 0, chicago).UTC()
	if !win.Contains(inWindow) {
		t.Errorf("expected UTC-expressed start instant to be contained")
	}
}
