package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KarinaMa20040822/starwish/backend/internal/scheduler"
	"github.com/KarinaMa20040822/starwish/backend/internal/scheduler/jobs"
	"github.com/KarinaMa20040822/starwish/backend/internal/store"
	"github.com/KarinaMa20040822/starwish/backend/pkg/database"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "排程管理",
	Long: `管理每日運勢排程。

Subcommands:
  start   - 啟動排程器
  list    - 已註冊作業列表
  run     - 立即執行指定作業
  status  - 作業執行狀態

Example:
  go run ./cmd/starwish scheduler start
  go run ./cmd/starwish scheduler run daily_fortune`,
}

var (
	schedulerStartCmd = &cobra.Command{
		Use:   "start",
		Short: "啟動排程器",
		Long: `啟動排程器並註冊所有作業。

註冊的作業：
- daily_fortune:   每天 06:00（抓 12 星座運勢 + AI 建議 → 寫入 fortune_data）
- fortune_cleanup: 每天 04:30（清除超過保留天數的快照）

Ctrl+C 結束。`,
		RunE: runScheduler,
	}

	schedulerListCmd = &cobra.Command{
		Use:   "list",
		Short: "已註冊作業列表",
		RunE:  listJobs,
	}

	schedulerRunCmd = &cobra.Command{
		Use:   "run [job_name]",
		Short: "立即執行指定作業",
		Args:  cobra.ExactArgs(1),
		RunE:  runJob,
	}

	schedulerStatusCmd = &cobra.Command{
		Use:   "status",
		Short: "作業執行狀態",
		RunE:  showStatus,
	}
)

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerListCmd)
	schedulerCmd.AddCommand(schedulerRunCmd)
	schedulerCmd.AddCommand(schedulerStatusCmd)
}

// initScheduler wires the scheduler with its jobs. The returned cleanup
// function closes the shared connections.
func initScheduler() (*scheduler.Scheduler, func(), error) {
	d, err := buildDeps()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.New(d.cfg)
	if err != nil {
		d.close()
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	fortuneRepo := store.NewFortuneRepository(db.Pool)

	sched := scheduler.New(d.log)
	if err := sched.AddJob(jobs.NewDailyFortuneJob(d.horoscope, d.advisor, fortuneRepo, d.log)); err != nil {
		db.Close()
		d.close()
		return nil, nil, err
	}
	if err := sched.AddJob(jobs.NewFortuneCleanupJob(fortuneRepo, d.log)); err != nil {
		db.Close()
		d.close()
		return nil, nil, err
	}

	cleanup := func() {
		db.Close()
		d.close()
	}
	return sched, cleanup, nil
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Starwish Scheduler ===")

	sched, cleanup, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer cleanup()

	sched.Start()

	fmt.Println("\n✅ Scheduler started")
	fmt.Println("\nRegistered jobs:")
	for _, jobName := range sched.GetAllJobs() {
		fmt.Printf("  - %s\n", jobName)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down scheduler...")
	sched.Stop()
	fmt.Println("Scheduler stopped")

	return nil
}

func listJobs(cmd *cobra.Command, args []string) error {
	sched, cleanup, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer cleanup()

	fmt.Println("Registered jobs:")
	for _, jobName := range sched.GetAllJobs() {
		fmt.Printf("  - %s\n", jobName)
	}
	return nil
}

func runJob(cmd *cobra.Command, args []string) error {
	jobName := args[0]

	sched, cleanup, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer cleanup()

	fmt.Printf("Running job %s...\n", jobName)
	if err := sched.RunJob(jobName); err != nil {
		return err
	}

	// RunJob is async, give it time to finish before the process exits
	waitForHistory(sched, jobName)
	return nil
}

// waitForHistory polls until the triggered run lands in history.
func waitForHistory(sched *scheduler.Scheduler, jobName string) {
	for i := 0; i < 600; i++ {
		time.Sleep(time.Second)
		history, err := sched.GetJobHistory(jobName)
		if err != nil {
			return
		}
		if results := history.GetLatestResults(1); len(results) > 0 {
			r := results[0]
			if r.Success {
				fmt.Printf("✅ %s finished in %s\n", jobName, r.Duration)
			} else {
				fmt.Printf("❌ %s failed: %s\n", jobName, r.Error)
			}
			return
		}
	}
	fmt.Println("⚠ job still running, giving up waiting")
}

func showStatus(cmd *cobra.Command, args []string) error {
	sched, cleanup, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer cleanup()

	stats := sched.GetJobStats()
	if len(stats) == 0 {
		fmt.Println("No jobs registered")
		return nil
	}

	fmt.Println("Job status:")
	for _, jobName := range sched.GetAllJobs() {
		st := stats[jobName]
		fmt.Printf("  %s (%s)\n", st.JobName, st.Schedule)
		fmt.Printf("    runs: %d, success: %d, failure: %d, rate: %.0f%%\n",
			st.TotalRuns, st.SuccessCount, st.FailureCount, st.SuccessRate*100)
		if st.LastRun != nil {
			fmt.Printf("    last run: %s\n", st.LastRun.Format(time.RFC3339))
		}
	}
	return nil
}
