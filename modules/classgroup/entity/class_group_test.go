package entity

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"09:00", 540, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:30", 0, true},
		{"nine", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{510, "08:30"},
		{540, "09:00"},
		{1439, "23:59"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseClockFormatClockRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "07:45", "12:00", "18:15", "23:59"} {
		min, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", s, err)
		}
		if got := FormatClock(min); got != s {
			t.Errorf("round trip %q -> %d -> %q", s, min, got)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	day, ok := ParseWeekday("wednesday")
	if !ok || day != DayWednesday {
		t.Errorf("ParseWeekday(wednesday) = %q, %v", day, ok)
	}

	if _, ok := ParseWeekday("Wednesday"); ok {
		t.Error("ParseWeekday should reject mixed case")
	}
	if _, ok := ParseWeekday("someday"); ok {
		t.Error("ParseWeekday should reject unknown values")
	}
	if _, ok := ParseWeekday(""); ok {
		t.Error("ParseWeekday should reject the empty string")
	}
}

func TestWeekdayOrdinal(t *testing.T) {
	ordered := []Weekday{DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday, DaySunday}
	for i, day := range ordered {
		if got := day.Ordinal(); got != i {
			t.Errorf("%s.Ordinal() = %d, want %d", day, got, i)
		}
	}
	if got := Weekday("someday").Ordinal(); got != -1 {
		t.Errorf("unknown day Ordinal() = %d, want -1", got)
	}
}

func TestTimeIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeInterval
		want bool
	}{
		{"identical", TimeInterval{540, 600}, TimeInterval{540, 600}, true},
		{"partial overlap", TimeInterval{540, 630}, TimeInterval{600, 660}, true},
		{"containment", TimeInterval{540, 720}, TimeInterval{600, 660}, true},
		{"touching end to start", TimeInterval{540, 600}, TimeInterval{600, 660}, false},
		{"touching start to end", TimeInterval{600, 660}, TimeInterval{540, 600}, false},
		{"disjoint", TimeInterval{540, 600}, TimeInterval{700, 760}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestTimeIntervalIsValid(t *testing.T) {
	if !(TimeInterval{540, 600}).IsValid() {
		t.Error("end after start should be valid")
	}
	if (TimeInterval{600, 600}).IsValid() {
		t.Error("zero-length interval should be invalid")
	}
	if (TimeInterval{600, 540}).IsValid() {
		t.Error("end before start should be invalid")
	}
}
