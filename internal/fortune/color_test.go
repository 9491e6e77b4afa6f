package fortune

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLuckyColor_Exact(t *testing.T) {
	assert.Equal(t, Color("#FDBA22"), ResolveLuckyColor("黃色"))
	assert.Equal(t, Color("#FFA726"), ResolveLuckyColor("橘色"))
	assert.Equal(t, Color("#CDE7FF"), ResolveLuckyColor("淺藍"))
	assert.Equal(t, Color("#F5D44B"), ResolveLuckyColor("檸檬黃"))
	assert.Equal(t, Color("#9C7CFF"), ResolveLuckyColor("紫色"))
	assert.Equal(t, Color("#2E7D32"), ResolveLuckyColor("綠色"))
	assert.Equal(t, Color("#F8BBD0"), ResolveLuckyColor("粉紅"))
}

func TestResolveLuckyColor_Empty(t *testing.T) {
	assert.Equal(t, GrayColor, ResolveLuckyColor(""))
}

func TestResolveLuckyColor_Keyword(t *testing.T) {
	// 土黃色 is not in the exact table but contains 黃
	assert.Equal(t, Color("#FDBA22"), ResolveLuckyColor("土黃色"))
	assert.Equal(t, Color("#CDE7FF"), ResolveLuckyColor("天空藍"))
	assert.Equal(t, Color("#E57373"), ResolveLuckyColor("酒紅"))

	// Priority: 黃 is checked before 橘, so a label containing both
	// resolves through the yellow branch.
	assert.Equal(t, Color("#FDBA22"), ResolveLuckyColor("橘黃"))
	// 紅 before 粉
	assert.Equal(t, Color("#E57373"), ResolveLuckyColor("紅粉"))
}

func TestResolveLuckyColor_UnknownIsStable(t *testing.T) {
	// Unknown labels hash onto the canonical palette; two calls with the
	// same label must agree, and the picks are pinned golden values.
	assert.Equal(t, Color("#FFA726"), ResolveLuckyColor("神秘莓果"))
	assert.Equal(t, Color("#2E7D32"), ResolveLuckyColor("好運拿鐵"))

	for i := 0; i < 10; i++ {
		assert.Equal(t, ResolveLuckyColor("神秘莓果"), ResolveLuckyColor("神秘莓果"))
	}
}

// hash32 has to wrap exactly like 32-bit signed arithmetic; these values
// were captured from the original hash over the same inputs.
func TestHash32_Golden(t *testing.T) {
	tests := []struct {
		in   string
		want int32
	}{
		{"2024-1-1", -1922422968},
		{"2025-12-31", 275115454},
		{"2024-1-1-天蠍座", -211205346},
	}

	for _, tt := range tests {
		if got := hash32(tt.in); got != tt.want {
			t.Errorf("hash32(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAvoidColor_Golden(t *testing.T) {
	tests := []struct {
		label  string
		date   Date
		auxKey string
		want   Color
	}{
		// 紫色 is in the pool, so 6 candidates remain after filtering
		{"紫色", Date{2024, 1, 1}, "", "#FFA726"},
		{"紫色", Date{2024, 1, 1}, "天蠍座", "#FFA726"},
		// 黃色 resolves to #FDBA22 which is not in the pool: 7 candidates
		{"黃色", Date{2024, 1, 1}, "", "#2E7D32"},
		{"黃色", Date{2025, 12, 31}, "", "#F8BBD0"},
		// No label: lucky is gray, pool untouched
		{"", Date{2024, 1, 1}, "", "#2E7D32"},
		{"檸檬黃", Date{2026, 8, 29}, "", "#2E7D32"},
		{"橘色", Date{2024, 2, 29}, "", "#F5D44B"},
	}

	for _, tt := range tests {
		got := AvoidColor(tt.label, tt.date, tt.auxKey)
		assert.Equal(t, tt.want, got,
			"AvoidColor(%q, %v, %q)", tt.label, tt.date, tt.auxKey)
	}
}

func TestAvoidColor_NeverMatchesLucky(t *testing.T) {
	dates := []Date{
		{2024, 1, 1}, {2024, 6, 15}, {2025, 12, 31}, {2026, 2, 28},
	}

	for _, c := range canonicalColors {
		for _, d := range dates {
			lucky := ResolveLuckyColor(c.Name)
			avoid := AvoidColor(c.Name, d, "")
			assert.NotEqual(t, lucky, avoid, "label %s on %v", c.Name, d)
		}
	}
}

func TestAvoidColor_StableWithinDay(t *testing.T) {
	d := Date{2024, 3, 14}
	first := AvoidColor("紫色", d, "雙魚座")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, AvoidColor("紫色", d, "雙魚座"))
	}
}
