package fortune

import "testing"

func TestResolveSign_Boundaries(t *testing.T) {
	tests := []struct {
		month, day int
		want       Sign
	}{
		{3, 21, Aries},
		{4, 19, Aries},
		{4, 20, Taurus},
		{5, 20, Taurus},
		{5, 21, Gemini},
		{6, 21, Gemini},
		{6, 22, Cancer},
		{7, 22, Cancer},
		{7, 23, Leo},
		{8, 22, Leo},
		{8, 23, Virgo},
		{9, 22, Virgo},
		{9, 23, Libra},
		{10, 23, Libra},
		{10, 24, Scorpio},
		{11, 22, Scorpio},
		{11, 23, Sagittarius},
		{12, 21, Sagittarius},
		{12, 22, Capricorn}, // wraps across year-end
		{1, 19, Capricorn},
		{1, 20, Aquarius},
		{2, 18, Aquarius},
		{2, 19, Pisces},
		{2, 29, Pisces}, // leap day
		{3, 20, Pisces},
	}

	for _, tt := range tests {
		got := ResolveSign(&Date{Year: 2000, Month: tt.month, Day: tt.day})
		if got != tt.want {
			t.Errorf("ResolveSign(%d/%d) = %v (%d), want %v (%d)",
				tt.month, tt.day, got, got, tt.want, tt.want)
		}
	}
}

func TestResolveSign_NilDate(t *testing.T) {
	if got := ResolveSign(nil); got != Virgo {
		t.Errorf("ResolveSign(nil) = %d, want Virgo (5)", got)
	}
}

// Every day of a non-leap year must match exactly one boundary rule:
// the twelve ranges partition the calendar with no gaps and no overlaps.
func TestResolveSign_PartitionsYear(t *testing.T) {
	daysIn := [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	counts := make(map[Sign]int)
	for m := 1; m <= 12; m++ {
		for d := 1; d <= daysIn[m]; d++ {
			matches := 0
			for _, b := range boundaries {
				if (m == b.startMonth && d >= b.startDay) || (m == b.endMonth && d <= b.endDay) {
					matches++
				}
			}
			if matches != 1 {
				t.Fatalf("%d/%d matches %d rules, want exactly 1", m, d, matches)
			}

			sign := ResolveSign(&Date{Month: m, Day: d})
			if !sign.Valid() {
				t.Fatalf("ResolveSign(%d/%d) = %d, out of range", m, d, sign)
			}
			counts[sign]++
		}
	}

	if len(counts) != 12 {
		t.Errorf("only %d signs reachable, want 12", len(counts))
	}
}

func TestSign_Click108ID(t *testing.T) {
	// Upstream numbering is shifted by one: Aries is 1, Pisces wraps to 0.
	if got := Aries.Click108ID(); got != 1 {
		t.Errorf("Aries.Click108ID() = %d, want 1", got)
	}
	if got := Pisces.Click108ID(); got != 0 {
		t.Errorf("Pisces.Click108ID() = %d, want 0", got)
	}
	if got := Capricorn.Click108ID(); got != 10 {
		t.Errorf("Capricorn.Click108ID() = %d, want 10", got)
	}
}

func TestSign_Name(t *testing.T) {
	if got := Aries.Name(); got != "牡羊座" {
		t.Errorf("Aries.Name() = %q", got)
	}
	if got := Pisces.Name(); got != "雙魚座" {
		t.Errorf("Pisces.Name() = %q", got)
	}
	if got := Sign(99).Name(); got != "" {
		t.Errorf("Sign(99).Name() = %q, want empty", got)
	}
}
