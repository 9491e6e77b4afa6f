package advisor

import (
	"fmt"
	"strings"

	"github.com/KarinaMa20040822/starwish/backend/internal/contracts"
)

// buildLuckyItemsPrompt asks for 6 everyday objects tied to the day's lucky
// color and benefactor sign.
func buildLuckyItemsPrompt(luckyColor, luckyDirection, benefactor string) string {
	return fmt.Sprintf(`根據以下資訊，請你生成 6 個適合作為「今日幸運物品」的東西：
- 幸運色：%s
- 幸運方向：%s
- 幸運星座：%s

要求：
- 給日常生活中常見的具體物品名稱
- 與上述顏色或星座形象有關
- 用中文回答，6 個，用逗號分隔
範例格式：
水晶吊飾, 薰衣草香氛, 紫色筆記本, 幸運手環, 木質飾品, 陶瓷杯
直接生成物品就好，不用解釋`, luckyColor, luckyDirection, benefactor)
}

// buildAdvicePrompt turns the four scored sections plus a health note into a
// short fortune-teller style suggestion.
func buildAdvicePrompt(overall, love, work, wealth contracts.FortuneSection, health string) string {
	return fmt.Sprintf(`以下是今日的星座運勢：
- 總覽：%s（%d顆星）
- 愛情：%s（%d顆星）
- 事業：%s（%d顆星）
- 財運：%s（%d顆星）
- 健康：%s

請根據以上內容，用自然中文給出一段約 2~3 句的「今日建議」，風格像貼心占卜師的語氣。`,
		overall.Text, overall.Score,
		love.Text, love.Score,
		work.Text, work.Score,
		wealth.Text, wealth.Score,
		health)
}

// buildBenefactorPrompt summarizes today's best-matched person.
func buildBenefactorPrompt(name string, matchScore int, aspects []string) string {
	return fmt.Sprintf(`你是一位占星運勢分析師。
請根據以下資訊，生成一段「今日貴人總結」，語氣自然且具正能量：
- 貴人姓名：%s
- 契合度：%d%%
- 今日幫助面向：%s

要求：
- 約 1～2 句中文
- 不要太誇張或太神話
- 帶一點貼心占卜師語氣`, name, matchScore, strings.Join(aspects, "、"))
}

// TarotCard is one drawn card with its orientation.
type TarotCard struct {
	Name     string `json:"name"`
	Position string `json:"position"` // "upright" or "reversed"
}

// buildTarotPrompt builds the tarot reading prompt.
func buildTarotPrompt(question, spread string, cards []TarotCard) string {
	if spread == "" {
		spread = "三張牌陣"
	}
	if question == "" {
		question = "（使用者未輸入問題）"
	}

	var lines []string
	for i, c := range cards {
		pos := "正位"
		if c.Position == "reversed" {
			pos = "逆位"
		}
		lines = append(lines, fmt.Sprintf("%d. %s（%s）", i+1, c.Name, pos))
	}
	cardLines := strings.Join(lines, "\n")
	if cardLines == "" {
		cardLines = "（尚未提供牌名）"
	}

	return fmt.Sprintf(`你是一位專業塔羅解讀師，使用繁體中文作答，給出溫和、具體且務實的建議。

問題：%s
牌陣：%s
抽到的牌：
%s

請依序輸出：
1) 整體氛圍（2-3 句）
2) 逐張牌意（每張 2-4 句，包含正/逆位影響）
3) 行動建議（條列 3-5 點，盡量可操作）
4) 注意事項（1-3 點）`, question, spread, cardLines)
}

// SlipQuery is one fortune-slip (籤詩) consultation.
type SlipQuery struct {
	Text     string `json:"text"`
	Grade    string `json:"grade"`
	Number   string `json:"number"`
	Temple   string `json:"temple"`
	Question string `json:"question"`
	History  string `json:"history"`
}

// buildSlipPrompt builds the fortune-slip interpretation prompt, threading
// in prior conversation when present.
func buildSlipPrompt(q SlipQuery) string {
	orUnknown := func(s string) string {
		if s == "" {
			return "未知"
		}
		return s
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `你是一位懂得解籤的民俗顧問，使用繁體中文、平易近人。
籤詩全文：
%s
附註：等級=%s，號碼=%s，寺廟=%s
`, q.Text, orUnknown(q.Grade), orUnknown(q.Number), orUnknown(q.Temple))

	if q.History != "" {
		fmt.Fprintf(&sb, `歷史對話紀錄：
%s
----------------------------------
`, q.History)
	}

	question := q.Question
	if question == "" {
		question = "（未提供）"
	}
	fmt.Fprintf(&sb, `使用者問題：%s

請根據籤詩內容、背景資訊與歷史對話，以溫和智慧的語氣，對當前問題做出專業的回覆。請依序輸出：
1) 白話解釋（3-5 句）
2) 吉凶判斷與範圍（感情/事業/財運/健康，各 1-2 句，要結合當前問題）
3) 具體建議（條列 3-5 點，針對當前問題給出指引）
4) 若為不利的籤，如何趨吉避凶（1-3 點）`, question)

	return sb.String()
}
