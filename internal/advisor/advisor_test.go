package advisor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KarinaMa20040822/starwish/backend/internal/contracts"
)

func TestSplitItems(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "half-width commas",
			text: "水晶吊飾, 薰衣草香氛, 紫色筆記本",
			want: []string{"水晶吊飾", "薰衣草香氛", "紫色筆記本"},
		},
		{
			name: "full-width commas",
			text: "水晶吊飾，薰衣草香氛，紫色筆記本",
			want: []string{"水晶吊飾", "薰衣草香氛", "紫色筆記本"},
		},
		{
			name: "caps at six items",
			text: "一, 二, 三, 四, 五, 六, 七, 八",
			want: []string{"一", "二", "三", "四", "五", "六"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitItems(tt.text))
		})
	}
}

func TestBuildLuckyItemsPrompt(t *testing.T) {
	p := buildLuckyItemsPrompt("紫色", "東北方", "天蠍座")
	assert.Contains(t, p, "幸運色：紫色")
	assert.Contains(t, p, "幸運方向：東北方")
	assert.Contains(t, p, "幸運星座：天蠍座")
	assert.Contains(t, p, "6 個")
}

func TestBuildAdvicePrompt(t *testing.T) {
	p := buildAdvicePrompt(
		contracts.FortuneSection{Score: 4, Text: "整體不錯"},
		contracts.FortuneSection{Score: 5, Text: "桃花旺"},
		contracts.FortuneSection{Score: 3, Text: "按部就班"},
		contracts.FortuneSection{Score: 2, Text: "避免衝動"},
		"多喝水",
	)
	assert.Contains(t, p, "總覽：整體不錯（4顆星）")
	assert.Contains(t, p, "愛情：桃花旺（5顆星）")
	assert.Contains(t, p, "事業：按部就班（3顆星）")
	assert.Contains(t, p, "財運：避免衝動（2顆星）")
	assert.Contains(t, p, "健康：多喝水")
}

func TestBuildBenefactorPrompt(t *testing.T) {
	p := buildBenefactorPrompt("小美", 95, []string{"事業", "財運"})
	assert.Contains(t, p, "貴人姓名：小美")
	assert.Contains(t, p, "契合度：95%")
	assert.Contains(t, p, "今日幫助面向：事業、財運")
}

func TestBuildTarotPrompt(t *testing.T) {
	cards := []TarotCard{
		{Name: "愚者", Position: "upright"},
		{Name: "高塔", Position: "reversed"},
	}
	p := buildTarotPrompt("工作該換嗎", "三張牌陣", cards)
	assert.Contains(t, p, "問題：工作該換嗎")
	assert.Contains(t, p, "1. 愚者（正位）")
	assert.Contains(t, p, "2. 高塔（逆位）")
}

func TestBuildTarotPromptDefaults(t *testing.T) {
	p := buildTarotPrompt("", "", nil)
	assert.Contains(t, p, "問題：（使用者未輸入問題）")
	assert.Contains(t, p, "牌陣：三張牌陣")
	assert.Contains(t, p, "（尚未提供牌名）")
}

func TestBuildSlipPrompt(t *testing.T) {
	q := SlipQuery{
		Text:     "雲開月出正分明",
		Grade:    "上上",
		Number:   "三十六",
		Temple:   "龍山寺",
		Question: "感情如何",
	}
	p := buildSlipPrompt(q)
	assert.Contains(t, p, "籤詩全文：\n雲開月出正分明")
	assert.Contains(t, p, "等級=上上，號碼=三十六，寺廟=龍山寺")
	assert.Contains(t, p, "使用者問題：感情如何")
	assert.False(t, strings.Contains(p, "歷史對話紀錄"))
}

func TestBuildSlipPromptWithHistory(t *testing.T) {
	q := SlipQuery{Text: "籤文", History: "使用者：先前問過事業"}
	p := buildSlipPrompt(q)
	assert.Contains(t, p, "歷史對話紀錄：\n使用者：先前問過事業")
	assert.Contains(t, p, "等級=未知，號碼=未知，寺廟=未知")
	assert.Contains(t, p, "使用者問題：（未提供）")
}
