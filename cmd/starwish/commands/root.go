package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "starwish",
	Short: "Starwish - 每日星座運勢後端",
	Long: `Starwish Unified CLI

每日星座運勢、農民曆與 AI 占卜後端。
抓取 click108 運勢、計算貴人契合度與幸運色，並提供 REST API。

Usage:
  go run ./cmd/starwish [command]

Examples:
  go run ./cmd/starwish api
  go run ./cmd/starwish scheduler start
  go run ./cmd/starwish fortune --astro 7
  go run ./cmd/starwish profile --birth 1990-04-15`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
