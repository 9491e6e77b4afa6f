package contracts

// Almanac holds one day of the traditional Chinese almanac (農民曆).
type Almanac struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Solar     string `json:"solar"`
	Lunar     string `json:"lunar"`
	SolarTerm string `json:"solar_term"`
	Yi        string `json:"yi"` // 宜, 、-joined
	Ji        string `json:"ji"` // 忌, 、-joined
	Chong     string `json:"chong"`
	Sha       string `json:"sha"`
	JiShi     string `json:"jishi"` // 吉時
	BadGods   string `json:"bad_gods"`
	Direction string `json:"direction"` // 財神方位 etc.
	Source    string `json:"source"`    // page the data was scraped from
}
