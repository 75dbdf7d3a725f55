package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/euroquote/internal/scheduler"
	"github.com/wonny/euroquote/internal/scheduler/jobs"
	"github.com/wonny/euroquote/internal/snapshot"
	"github.com/wonny/euroquote/pkg/config"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "관심 종목 주기적 수집",
	Long: `watchlist 의 모든 종목을 cron 스케줄마다 한 번씩 조회합니다.

실패한 종목은 로그만 남기고 다음 실행까지 기다립니다 (재시도 없음).
DATABASE_URL 이 설정되어 있으면 결과를 스냅샷으로 저장합니다.

Example:
  go run ./cmd/euroquote watch
  go run ./cmd/euroquote watch --watchlist ./watchlist.yaml --schedule "0 */1 * * * *"
  go run ./cmd/euroquote watch --once`,
	RunE: runWatch,
}

var (
	watchlistPath string
	watchSchedule string
	watchOnce     bool
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchlistPath, "watchlist", "", "watchlist YAML 경로 (기본값: WATCHLIST_FILE)")
	watchCmd.Flags().StringVar(&watchSchedule, "schedule", "", "cron 표현식, 초 포함 (기본값: WATCH_SCHEDULE)")
	watchCmd.Flags().BoolVar(&watchOnce, "once", false, "한 번만 수집하고 종료")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime(os.Stdout)
	if err != nil {
		return err
	}

	if watchlistPath != "" {
		cfg.Watch.WatchlistFile = watchlistPath
	}
	if watchSchedule != "" {
		cfg.Watch.Schedule = watchSchedule
	}

	watchlist, err := config.LoadWatchlist(cfg.Watch.WatchlistFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store snapshot.Store
	if cfg.Database.URL != "" {
		db, repo, err := openStore(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer db.Close()
		store = repo
	} else {
		log.Info("DATABASE_URL not set, collected quotes are only logged")
	}

	job := jobs.NewQuoteCollectionJob(newQuoteClient(cfg, log), store, watchlist, cfg.Watch.Schedule, log)

	sched := scheduler.New(log)
	if err := sched.AddJob(job); err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if watchOnce {
		result, err := sched.RunNow(ctx, job.Name())
		if err != nil {
			return err
		}
		if !result.Success {
			PrintError(out, result.Error)
			return fmt.Errorf("collection pass failed")
		}
		PrintSuccess(out, fmt.Sprintf("Collected %d instruments in %s", len(watchlist.Instruments), result.Duration))
		return nil
	}

	sched.Start(ctx)

	PrintSuccess(out, fmt.Sprintf("Watching %d instruments (%s)", len(watchlist.Instruments), cfg.Watch.Schedule))
	PrintInfo(out, "Press Ctrl+C to stop")

	<-ctx.Done()
	sched.Stop()

	for name, stats := range sched.GetJobStats() {
		PrintKeyValue(out, name, fmt.Sprintf("%d runs, %.0f%% success", stats.TotalRuns, stats.SuccessRate*100))
	}

	recent, err := sched.GetJobHistory(job.Name(), recentRuns)
	if err != nil {
		return err
	}
	PrintRecentRuns(out, recent)
	return nil
}

// recentRuns is how many passes watch reports on shutdown
const recentRuns = 5

// PrintRecentRuns lists the last collection passes, newest last
func PrintRecentRuns(w io.Writer, results []scheduler.JobResult) {
	if len(results) == 0 {
		PrintInfo(w, "No collection pass ran")
		return
	}

	PrintSeparator(w)
	for _, r := range results {
		status := "ok"
		if !r.Success {
			status = "failed: " + r.Error
		}
		PrintKeyValue(w, r.StartTime.Format(time.RFC3339), fmt.Sprintf("%s (%s)", status, r.Duration.Round(time.Millisecond)))
	}
}
