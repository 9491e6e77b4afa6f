package fortune

// Sign identifies one of the 12 zodiac signs, in the fixed order the
// whole system uses (the same order the Click108 horoscope pages index by).
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// FallbackSign is used for people without a known birth date.
// The app has always defaulted unknown birthdays to Virgo.
const FallbackSign = Virgo

// Date is a calendar date. The year is carried for callers that need it
// (hash keys, display) but plays no part in sign resolution.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
	Day   int `json:"day"`   // 1-31
}

var signNames = [12]string{
	"牡羊座", "金牛座", "雙子座", "巨蟹座", "獅子座", "處女座",
	"天秤座", "天蠍座", "射手座", "摩羯座", "水瓶座", "雙魚座",
}

var signEmojis = [12]string{
	"♈", "♉", "♊", "♋", "♌", "♍", "♎", "♏", "♐", "♑", "♒", "♓",
}

// Valid reports whether s is one of the 12 signs
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

// Name returns the Chinese display name of the sign
func (s Sign) Name() string {
	if !s.Valid() {
		return ""
	}
	return signNames[s]
}

// Emoji returns the astrological symbol for the sign
func (s Sign) Emoji() string {
	if !s.Valid() {
		return ""
	}
	return signEmojis[s]
}

func (s Sign) String() string {
	return s.Name()
}

// Click108ID maps a sign to the id the Click108 site uses in its URLs.
// The upstream numbering is shifted by one relative to ours.
func (s Sign) Click108ID() int {
	return (int(s) + 1) % 12
}

// boundary describes one sign's date range. Capricorn wraps across
// year-end (Dec 22 - Jan 19), which the two-clause rule handles naturally.
type boundary struct {
	startMonth, startDay int
	endMonth, endDay     int
}

var boundaries = [12]boundary{
	{3, 21, 4, 19},   // Aries
	{4, 20, 5, 20},   // Taurus
	{5, 21, 6, 21},   // Gemini
	{6, 22, 7, 22},   // Cancer
	{7, 23, 8, 22},   // Leo
	{8, 23, 9, 22},   // Virgo
	{9, 23, 10, 23},  // Libra
	{10, 24, 11, 22}, // Scorpio
	{11, 23, 12, 21}, // Sagittarius
	{12, 22, 1, 19},  // Capricorn
	{1, 20, 2, 18},   // Aquarius
	{2, 19, 3, 20},   // Pisces
}

// ResolveSign maps a birth date to its zodiac sign. A nil date resolves
// to FallbackSign. The rules are evaluated in sign order and the first
// match wins; the final return is unreachable for any real calendar date.
// No calendar validation is performed.
func ResolveSign(birth *Date) Sign {
	if birth == nil {
		return FallbackSign
	}

	m, d := birth.Month, birth.Day
	for i, b := range boundaries {
		if (m == b.startMonth && d >= b.startDay) || (m == b.endMonth && d <= b.endDay) {
			return Sign(i)
		}
	}
	return Aries
}
