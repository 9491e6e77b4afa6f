package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KarinaMa20040822/starwish/backend/internal/fortune"
)

// fortuneCmd fetches and prints one sign's horoscope without starting the
// server. Handy for checking whether the upstream page layout changed.
var fortuneCmd = &cobra.Command{
	Use:   "fortune",
	Short: "抓取單一星座今日運勢",
	Long: `抓取並顯示單一星座的今日運勢。

Example:
  go run ./cmd/starwish fortune --astro 7`,
	RunE: runFortune,
}

var fortuneAstroID int

func init() {
	rootCmd.AddCommand(fortuneCmd)

	fortuneCmd.Flags().IntVar(&fortuneAstroID, "astro", int(fortune.FallbackSign), "星座編號 (0=牡羊 ... 11=雙魚)")
}

func runFortune(cmd *cobra.Command, args []string) error {
	sign := fortune.Sign(fortuneAstroID)
	if !sign.Valid() {
		return fmt.Errorf("invalid astro id %d (expected 0-11)", fortuneAstroID)
	}

	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	daily, err := d.horoscope.GetDaily(ctx, time.Now(), sign)
	if err != nil {
		return fmt.Errorf("fetch horoscope: %w", err)
	}

	fmt.Printf("=== %s %s ===\n", daily.SignName, sign.Emoji())
	fmt.Printf("幸運數字：%s\n", daily.LuckyNumber)
	fmt.Printf("開運方位：%s\n", daily.LuckyDirection)
	fmt.Printf("吉時：%s\n", daily.LuckyTime)
	fmt.Printf("幸運色：%s (%s)\n", daily.LuckyColor, fortune.ResolveLuckyColor(daily.LuckyColor))
	fmt.Printf("貴人星座：%s\n", daily.Benefactor)
	if len(daily.LuckyItems) > 0 {
		fmt.Printf("幸運物品：%v\n", daily.LuckyItems)
	}
	fmt.Printf("\n整體運 %s\n%s\n", daily.Overall.Stars, daily.Overall.Text)
	fmt.Printf("\n愛情運 %s\n%s\n", daily.Love.Stars, daily.Love.Text)
	fmt.Printf("\n事業運 %s\n%s\n", daily.Career.Stars, daily.Career.Text)
	fmt.Printf("\n財運 %s\n%s\n", daily.Wealth.Stars, daily.Wealth.Text)

	return nil
}
