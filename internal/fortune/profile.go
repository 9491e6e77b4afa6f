package fortune

// Person is someone the engine can score: the primary user or a tracked
// stakeholder. Created elsewhere, never mutated here.
type Person struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Birth       *Date  `json:"birth,omitempty"`
}

// ColorProfile is the day's resolved lucky/avoid color pair.
type ColorProfile struct {
	LuckyLabel string `json:"lucky_label"`
	LuckyHex   Color  `json:"lucky_hex"`
	AvoidHex   Color  `json:"avoid_hex"`
}

// DailyProfile is the engine's composed output for one person and day.
type DailyProfile struct {
	Self      Person       `json:"self"`
	Sign      Sign         `json:"sign"`
	SignName  string       `json:"sign_name"`
	BestMatch *Match       `json:"best_match,omitempty"`
	Colors    ColorProfile `json:"colors"`
}

// ComputeDailyProfile composes sign resolution, benefactor selection and
// color derivation for one day. Pure: no I/O, no clock reads; the caller
// supplies the date and the scraped lucky label.
func ComputeDailyProfile(self Person, candidates []Person, luckyLabel string, date Date) DailyProfile {
	sign := ResolveSign(self.Birth)

	return DailyProfile{
		Self:      self,
		Sign:      sign,
		SignName:  sign.Name(),
		BestMatch: BestMatch(sign, candidates),
		Colors: ColorProfile{
			LuckyLabel: luckyLabel,
			LuckyHex:   ResolveLuckyColor(luckyLabel),
			AvoidHex:   AvoidColor(luckyLabel, date, ""),
		},
	}
}
