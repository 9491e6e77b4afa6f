package fortune

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDailyProfile(t *testing.T) {
	self := Person{ID: "me", DisplayName: "我", Birth: &Date{1990, 4, 15}}
	candidates := []Person{
		{ID: "1", DisplayName: "阿蠍", Birth: &Date{2000, 11, 10}}, // Scorpio
		{ID: "2", DisplayName: "阿雙", Birth: &Date{1995, 6, 1}},   // Gemini
	}

	profile := ComputeDailyProfile(self, candidates, "紫色", Date{2024, 1, 1})

	assert.Equal(t, Aries, profile.Sign)
	assert.Equal(t, "牡羊座", profile.SignName)

	// Aries → Scorpio is 65, Aries → Gemini is 95
	require.NotNil(t, profile.BestMatch)
	assert.Equal(t, "2", profile.BestMatch.Person.ID)
	assert.Equal(t, 95, profile.BestMatch.Score)

	assert.Equal(t, "紫色", profile.Colors.LuckyLabel)
	assert.Equal(t, Color("#9C7CFF"), profile.Colors.LuckyHex)
	assert.Equal(t, Color("#FFA726"), profile.Colors.AvoidHex)
	assert.NotEqual(t, profile.Colors.LuckyHex, profile.Colors.AvoidHex)
}

func TestComputeDailyProfile_NoBirthday(t *testing.T) {
	profile := ComputeDailyProfile(Person{ID: "ghost"}, nil, "", Date{2024, 1, 1})

	assert.Equal(t, Virgo, profile.Sign)
	assert.Nil(t, profile.BestMatch)
	assert.Equal(t, GrayColor, profile.Colors.LuckyHex)
}

func TestComputeDailyProfile_Deterministic(t *testing.T) {
	self := Person{ID: "me", Birth: &Date{1988, 9, 9}}
	candidates := []Person{
		{ID: "c", Birth: &Date{1991, 2, 2}},
	}
	date := Date{2026, 8, 29}

	a := ComputeDailyProfile(self, candidates, "檸檬黃", date)
	b := ComputeDailyProfile(self, candidates, "檸檬黃", date)
	assert.Equal(t, a, b)
}
