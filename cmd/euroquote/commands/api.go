package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/euroquote/internal/api"
	"github.com/wonny/euroquote/internal/api/handlers"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

DATABASE_URL 이 설정되어 있으면 스냅샷 조회 엔드포인트도 등록됩니다.

Endpoints:
  GET  /health                                  - Health check
  GET  /api/quotes/{isin}/{market}              - 종목명/현재가
  GET  /api/quotes/{isin}/{market}/full         - 52주 최저/최고가
  GET  /api/snapshots/{isin}/{market}?kind=...  - 최근 저장 스냅샷

Example:
  go run ./cmd/euroquote api
  go run ./cmd/euroquote api --port 8080`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (기본값: PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime(os.Stdout)
	if err != nil {
		return err
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	ctx := context.Background()

	quoteHandler := handlers.NewQuoteHandler(newQuoteClient(cfg, log), log)

	var snapshotHandler *handlers.SnapshotHandler
	if cfg.Database.URL != "" {
		db, store, err := openStore(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer db.Close()

		snapshotHandler = handlers.NewSnapshotHandler(store, log)
	} else {
		log.Info("DATABASE_URL not set, snapshot endpoints disabled")
	}

	router := api.NewRouter(quoteHandler, snapshotHandler, log)
	server := api.New(cfg, log, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	out := cmd.OutOrStdout()
	PrintSuccess(out, fmt.Sprintf("Server running on http://localhost:%s", cfg.Port))
	endpoints := []string{
		"GET  /health",
		"GET  /api/quotes/{isin}/{market}",
		"GET  /api/quotes/{isin}/{market}/full",
	}
	if snapshotHandler != nil {
		endpoints = append(endpoints, "GET  /api/snapshots/{isin}/{market}?kind=detailed|full")
	}
	PrintList(out, endpoints)
	PrintInfo(out, "Press Ctrl+C to stop")

	// Wait for interrupt signal or a listen failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	case <-quit:
	}

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
