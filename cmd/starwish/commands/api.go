package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KarinaMa20040822/starwish/backend/internal/api"
	"github.com/KarinaMa20040822/starwish/backend/internal/api/handlers"
	"github.com/KarinaMa20040822/starwish/backend/internal/store"
	"github.com/KarinaMa20040822/starwish/backend/pkg/database"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "啟動 API 伺服器",
	Long: `啟動 REST API 伺服器。

Endpoints:
  GET  /health                 - Health check
  GET  /fortune?astroId=N      - 今日星座運勢
  GET  /today                  - 今日農民曆
  POST /advice                 - AI 今日建議
  POST /luckySummary           - AI 貴人摘要
  GET  /api/profile/daily      - 每日個人檔案
  GET  /api/stakeholders       - 貴人名單
  POST /api/stakeholders       - 新增貴人
  GET  /ws/chat                - 塔羅 / 解籤聊天

Example:
  go run ./cmd/starwish api
  go run ./cmd/starwish api --port 8080`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 伺服器埠號 (預設取 PORT 環境變數)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Starwish API Server ===")

	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.close()

	if apiPort != "" {
		d.cfg.Port = apiPort
	}

	d.log.WithFields(map[string]interface{}{
		"port": d.cfg.Port,
		"env":  d.cfg.Env,
	}).Info("Initializing API server")

	db, err := database.New(d.cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	d.log.Info("Connected to database")

	userRepo := store.NewUserRepository(db.Pool)
	stakeholderRepo := store.NewStakeholderRepository(db.Pool)

	router := api.NewRouter(
		handlers.NewFortuneHandler(d.horoscope, d.advisor, d.log),
		handlers.NewAlmanacHandler(d.gooday, d.cache, d.log),
		handlers.NewProfileHandler(userRepo, stakeholderRepo, d.horoscope, d.log),
		handlers.NewStakeholderHandler(stakeholderRepo, d.log),
		handlers.NewChatHandler(d.advisor, d.log),
		d.log,
	)

	server := api.New(d.cfg, d.log, router)

	go func() {
		if err := server.Start(); err != nil {
			d.log.WithError(err).Fatal("Failed to start server")
		}
	}()

	fmt.Printf("\n✅ Server running on http://localhost:%s\n", d.cfg.Port)
	fmt.Println("\nPress Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	d.log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	d.log.Info("Server stopped")
	return nil
}
