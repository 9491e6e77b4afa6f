package main

import (
	"os"

	"github.com/KarinaMa20040822/starwish/backend/cmd/starwish/commands"
)

// main is the entry point for the Starwish CLI
// 統一 CLI 入口：go run ./cmd/starwish [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
