package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KarinaMa20040822/starwish/backend/internal/fortune"
)

// profileCmd runs the pure engine offline: sign, best match and colors for
// a given birthday, no network or database needed.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "離線計算每日個人檔案",
	Long: `離線計算星座、貴人契合度與幸運色，不需要網路或資料庫。

Example:
  go run ./cmd/starwish profile --birth 1990-04-15 --lucky 紫色
  go run ./cmd/starwish profile --birth 1990-04-15 --with 小美=1995-06-01 --with 阿宏=2000-11-10`,
	RunE: runProfile,
}

var (
	profileBirth string
	profileDate  string
	profileLucky string
	profileWith  []string
)

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().StringVar(&profileBirth, "birth", "", "生日 (YYYY-MM-DD，可留空)")
	profileCmd.Flags().StringVar(&profileDate, "date", "", "計算日期 (YYYY-MM-DD，預設今天)")
	profileCmd.Flags().StringVar(&profileLucky, "lucky", "", "今日幸運色標籤，例如 紫色")
	profileCmd.Flags().StringArrayVar(&profileWith, "with", nil, "候選貴人，格式 名字=YYYY-MM-DD，可重複")
}

func parseDateFlag(raw string) (*fortune.Date, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", raw)
	}
	return &fortune.Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	birth, err := parseDateFlag(profileBirth)
	if err != nil {
		return err
	}

	day := time.Now()
	if profileDate != "" {
		parsed, err := time.Parse("2006-01-02", profileDate)
		if err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", profileDate)
		}
		day = parsed
	}
	today := fortune.Date{Year: day.Year(), Month: int(day.Month()), Day: day.Day()}

	var candidates []fortune.Person
	for i, raw := range profileWith {
		name, birthStr, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("invalid --with %q (expected 名字=YYYY-MM-DD)", raw)
		}
		candBirth, err := parseDateFlag(birthStr)
		if err != nil {
			return err
		}
		candidates = append(candidates, fortune.Person{
			ID:          fmt.Sprintf("%d", i+1),
			DisplayName: name,
			Birth:       candBirth,
		})
	}

	self := fortune.Person{ID: "self", DisplayName: "我", Birth: birth}
	profile := fortune.ComputeDailyProfile(self, candidates, profileLucky, today)

	fmt.Printf("日期：%04d-%02d-%02d\n", today.Year, today.Month, today.Day)
	fmt.Printf("星座：%s %s\n", profile.SignName, profile.Sign.Emoji())
	if profile.BestMatch != nil {
		fmt.Printf("今日貴人：%s（契合度 %d%%）\n", profile.BestMatch.Person.DisplayName, profile.BestMatch.Score)
	} else {
		fmt.Println("今日貴人：無")
	}
	fmt.Printf("幸運色：%s → %s\n", profile.Colors.LuckyLabel, profile.Colors.LuckyHex)
	fmt.Printf("霉運色：%s\n", profile.Colors.AvoidHex)

	return nil
}
