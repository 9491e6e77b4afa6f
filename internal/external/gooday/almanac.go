package gooday

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/KarinaMa20040822/starwish/backend/internal/contracts"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// FetchAlmanac fetches and parses the almanac page for one day.
func (c *Client) FetchAlmanac(ctx context.Context, date time.Time) (*contracts.Almanac, error) {
	dateStr := date.Format("2006-01-02")

	html, err := c.fetchHTML(ctx, fmt.Sprintf("/%s", dateStr))
	if err != nil {
		return nil, fmt.Errorf("fetch almanac for %s: %w", dateStr, err)
	}

	a, err := parseAlmanac(html)
	if err != nil {
		return nil, fmt.Errorf("parse almanac for %s: %w", dateStr, err)
	}
	a.Date = dateStr
	a.Source = fmt.Sprintf("%s/%s", c.baseURL, dateStr)

	c.logger.WithField("date", dateStr).Debug("Fetched almanac")
	return a, nil
}

// parseAlmanac extracts the day header and the 宜/忌 grid. The site is a
// MUI build, so selectors target its hashed class names.
func parseAlmanac(html string) (*contracts.Almanac, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	a := &contracts.Almanac{}

	labels := doc.Find(".Calendar_infoDate__lSWXM .Calendar_label3__fqc0m")
	a.Solar = strings.TrimSpace(labels.Eq(0).Text())
	a.Lunar = strings.TrimSpace(labels.Eq(1).Text())
	a.SolarTerm = strings.TrimSpace(labels.Eq(2).Text())

	doc.Find(".Calendar_box2__2MGwH .MuiGrid-item").Each(func(i int, item *goquery.Selection) {
		label := strings.TrimSpace(item.Text())
		value := func() string {
			text := item.NextAllFiltered(".Calendar_infoGrid2__U_osw").First().Text()
			return joinTerms(text)
		}

		switch {
		// 彭祖百忌 also contains 忌, skip it so the real 忌 row wins
		case strings.Contains(label, "彭祖百忌"):
		case strings.Contains(label, "凶煞") && a.BadGods == "":
			a.BadGods = value()
		case strings.Contains(label, "吉時") && a.JiShi == "":
			a.JiShi = value()
		case strings.Contains(label, "方位") && a.Direction == "":
			a.Direction = value()
		case strings.Contains(label, "宜") && a.Yi == "":
			a.Yi = value()
		case strings.Contains(label, "忌") && a.Ji == "":
			a.Ji = value()
		case strings.Contains(label, "沖") && a.Chong == "":
			a.Chong = value()
		case strings.Contains(label, "煞") && a.Sha == "":
			a.Sha = value()
		}
	})

	if a.Solar == "" && a.Lunar == "" {
		return nil, fmt.Errorf("page layout not recognized")
	}
	return a, nil
}

// joinTerms collapses the whitespace-separated almanac terms into a
// 、-joined list.
func joinTerms(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return whitespaceRe.ReplaceAllString(text, "、")
}
