package advisor

import (
	"context"
	"regexp"

	"github.com/KarinaMa20040822/starwish/backend/internal/contracts"
	"github.com/KarinaMa20040822/starwish/backend/internal/external/gemini"
	"github.com/KarinaMa20040822/starwish/backend/pkg/logger"
)

// defaultLuckyItems is the canned fallback when generation fails.
var defaultLuckyItems = []string{"水晶飾品", "筆記本", "香氛蠟燭", "幸運手環", "小植物", "紫色衣物"}

var itemSplitRe = regexp.MustCompile(`[,，]\s*`)

// Advisor wraps the Gemini client with the app's fortune-telling prompts.
type Advisor struct {
	gemini *gemini.Client
	logger *logger.Logger
}

// New creates an Advisor.
func New(g *gemini.Client, log *logger.Logger) *Advisor {
	return &Advisor{gemini: g, logger: log}
}

// LuckyItems generates up to 6 lucky items for the day. Generation failures
// fall back to the canned list rather than erroring out, so the daily
// horoscope never breaks on an AI outage.
func (a *Advisor) LuckyItems(ctx context.Context, luckyColor, luckyDirection, benefactor string) []string {
	prompt := buildLuckyItemsPrompt(luckyColor, luckyDirection, benefactor)

	text, err := a.gemini.GenerateText(ctx, prompt)
	if err != nil {
		a.logger.WithError(err).Warn("Lucky item generation failed, using fallback list")
		return defaultLuckyItems
	}

	items := splitItems(text)
	if len(items) == 0 {
		a.logger.Warn("Lucky item generation returned no items, using fallback list")
		return defaultLuckyItems
	}
	return items
}

// splitItems splits a comma-separated item list, keeping at most 6 entries.
func splitItems(text string) []string {
	var items []string
	for _, it := range itemSplitRe.Split(text, -1) {
		if it == "" {
			continue
		}
		items = append(items, it)
		if len(items) == 6 {
			break
		}
	}
	return items
}

// Advice generates a 2-3 sentence daily suggestion from the scored sections.
func (a *Advisor) Advice(ctx context.Context, overall, love, work, wealth contracts.FortuneSection, health string) (string, error) {
	return a.gemini.GenerateText(ctx, buildAdvicePrompt(overall, love, work, wealth, health))
}

// BenefactorSummary generates the one-line summary of today's best match.
func (a *Advisor) BenefactorSummary(ctx context.Context, name string, matchScore int, aspects []string) (string, error) {
	return a.gemini.GenerateText(ctx, buildBenefactorPrompt(name, matchScore, aspects))
}

// TarotReading interprets a drawn tarot spread.
func (a *Advisor) TarotReading(ctx context.Context, question, spread string, cards []TarotCard) (string, error) {
	return a.gemini.GenerateText(ctx, buildTarotPrompt(question, spread, cards))
}

// SlipReading interprets a temple fortune slip, optionally continuing a
// prior conversation.
func (a *Advisor) SlipReading(ctx context.Context, q SlipQuery) (string, error) {
	return a.gemini.GenerateText(ctx, buildSlipPrompt(q))
}
