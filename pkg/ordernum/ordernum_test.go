package ordernum

import (
	"testing"
	"time"
)

func TestDayPrefix(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{
			name: "plain UTC date",
			at:   time.Date(2025, 9, 17, 10, 30, 0, 0, time.UTC),
			want: "ORD-20250917-",
		},
		{
			name: "local time converts to UTC day",
			at:   time.Date(2025, 9, 17, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			want: "ORD-20250918-",
		},
		{
			name: "midnight boundary",
			at:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			want: "ORD-20250101-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayPrefix(tt.at); got != tt.want {
				t.Errorf("DayPrefix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNext(t *testing.T) {
	day := time.Date(2025, 9, 17, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{
			name:     "first order of the day",
			existing: nil,
			want:     "ORD-20250917-0001",
		},
		{
			name:     "second order of the day",
			existing: []string{"ORD-20250917-0001"},
			want:     "ORD-20250917-0002",
		},
		{
			name:     "max wins over count",
			existing: []string{"ORD-20250917-0003", "ORD-20250917-0001"},
			want:     "ORD-20250917-0004",
		},
		{
			name:     "other days ignored",
			existing: []string{"ORD-20250916-0042", "ORD-20250917-0002"},
			want:     "ORD-20250917-0003",
		},
		{
			name:     "unparseable suffix treated as zero",
			existing: []string{"ORD-20250917-xyz", "ORD-20250917-"},
			want:     "ORD-20250917-0001",
		},
		{
			name:     "unparseable mixed with valid",
			existing: []string{"ORD-20250917-bad", "ORD-20250917-0007"},
			want:     "ORD-20250917-0008",
		},
		{
			name:     "rolls past four digits without padding loss",
			existing: []string{"ORD-20250917-9999"},
			want:     "ORD-20250917-10000",
		},
		{
			name:     "negative suffix treated as zero",
			existing: []string{"ORD-20250917--12"},
			want:     "ORD-20250917-0001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Next(day, tt.existing); got != tt.want {
				t.Errorf("Next() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNextIsSequentialWithinDay(t *testing.T) {
	day := time.Date(2025, 9, 17, 8, 0, 0, 0, time.UTC)

	var existing []string
	for i := 1; i <= 25; i++ {
		existing = append(existing, Next(day, existing))
	}

	if existing[0] != "ORD-20250917-0001" {
		t.Fatalf("first = %q", existing[0])
	}
	if existing[24] != "ORD-20250917-0025" {
		t.Fatalf("25th = %q", existing[24])
	}

	seen := make(map[string]bool)
	for _, n := range existing {
		if seen[n] {
			t.Fatalf("duplicate number %q", n)
		}
		seen[n] = true
	}
}
