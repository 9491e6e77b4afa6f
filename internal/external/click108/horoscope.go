package click108

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/KarinaMa20040822/starwish/backend/internal/contracts"
	"github.com/KarinaMa20040822/starwish/backend/internal/fortune"
)

var scoreRe = regexp.MustCompile(`score_[a-z]+(\d+)\.png`)

// trailing run of CJK characters, used to split 吉時吉色 when the time and
// color are not separated by whitespace
var tailCJKRe = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]+$`)

// section maps a page element suffix to its category label.
type section struct {
	suffix string
	label  string
}

var sections = []section{
	{"all", "整體運"},
	{"love", "愛情運"},
	{"career", "事業運"},
	{"money", "財運"},
}

// FetchDaily fetches and parses today's horoscope for one sign.
// 運勢抓取只在這個函式
func (c *Client) FetchDaily(ctx context.Context, sign fortune.Sign) (*contracts.DailyHoroscope, error) {
	if !sign.Valid() {
		return nil, fmt.Errorf("invalid sign: %d", int(sign))
	}

	// click108 numbers the signs 1..11,0 starting from Aries=1
	path := fmt.Sprintf("/astro/index.php?astroNum=%d", sign.Click108ID())

	html, err := c.fetchHTML(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetch horoscope for %s: %w", sign.Name(), err)
	}

	h, err := parseHoroscope(html, sign)
	if err != nil {
		return nil, fmt.Errorf("parse horoscope for %s: %w", sign.Name(), err)
	}

	c.logger.WithFields(map[string]interface{}{
		"sign":        sign.Name(),
		"lucky_color": h.LuckyColor,
	}).Debug("Fetched daily horoscope")
	return h, nil
}

// parseHoroscope extracts the lucky data and the four scored sections from
// the mobile daily-luck page.
func parseHoroscope(html string, sign fortune.Sign) (*contracts.DailyHoroscope, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	h := &contracts.DailyHoroscope{
		AstroID:  int(sign),
		SignName: sign.Name(),
	}

	h.LuckyNumber = fieldText(doc, "#astroDailyData_luckyNum", "幸運數字：")
	h.LuckyDirection = fieldText(doc, "#astroDailyData_luckyDir", "開運方位：")
	h.Benefactor = fieldText(doc, "#astroDailyData_vip", "貴人星座：")
	h.LuckyTime, h.LuckyColor = splitTimeColor(fieldText(doc, "#astroDailyData_luckyTC", "吉時吉色："))

	for _, s := range sections {
		sec := parseSection(doc, s.suffix, s.label)
		switch s.suffix {
		case "all":
			h.Overall = sec
		case "love":
			h.Love = sec
		case "career":
			h.Career = sec
		case "money":
			h.Wealth = sec
		}
	}

	if h.Overall.Text == "" && h.LuckyNumber == "" {
		return nil, fmt.Errorf("page layout not recognized")
	}
	return h, nil
}

// fieldText reads one labeled data cell and strips its label prefix.
func fieldText(doc *goquery.Document, selector, label string) string {
	text := strings.TrimSpace(doc.Find(selector).Text())
	text = strings.Replace(text, label, "", 1)
	// the page pads values with no-break and full-width spaces
	text = strings.ReplaceAll(text, " ", " ")
	text = strings.ReplaceAll(text, "　", " ")
	return strings.TrimSpace(text)
}

// splitTimeColor splits the combined 吉時吉色 cell into a time range and a
// color label, defaulting both to 無.
func splitTimeColor(raw string) (luckyTime, luckyColor string) {
	luckyTime, luckyColor = "無", "無"
	if raw == "" {
		return
	}

	if fields := strings.Fields(raw); len(fields) >= 2 {
		return fields[0], fields[1]
	}

	// no separator, e.g. "11:00~13:00紫色": the color is the trailing CJK run
	if m := tailCJKRe.FindString(raw); m != "" {
		return strings.TrimSpace(strings.TrimSuffix(raw, m)), m
	}
	return
}

// starTemplate is sliced to the score, so a 4-star day renders ★★★★.
const starTemplate = "★★★★★☆☆☆☆☆"

// parseSection reads one scored category: the star score comes from the
// score_*N.png background image, the body text from the matching data cell.
func parseSection(doc *goquery.Document, suffix, label string) contracts.FortuneSection {
	sec := contracts.FortuneSection{Score: 3}

	style, _ := doc.Find("#astroDailyScore_" + suffix).Attr("style")
	if m := scoreRe.FindStringSubmatch(style); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			sec.Score = n
		}
	}
	if sec.Score > 5 {
		sec.Score = 5
	}
	sec.Stars = string([]rune(starTemplate)[:sec.Score])

	text := strings.TrimSpace(doc.Find("#astroDailyData_" + suffix).Text())
	text = strings.Replace(text, label, "", 1)
	sec.Text = strings.TrimSpace(text)
	return sec
}
