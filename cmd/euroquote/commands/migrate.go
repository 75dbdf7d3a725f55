package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "스냅샷 테이블 생성",
	Long: `quote_snapshots 테이블과 인덱스를 생성합니다. 여러 번 실행해도 안전합니다.

Example:
  DATABASE_URL=postgres://localhost/euroquote go run ./cmd/euroquote migrate`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime(os.Stdout)
	if err != nil {
		return err
	}

	ctx := context.Background()

	db, repo, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repo.Migrate(ctx); err != nil {
		return err
	}

	status := db.HealthCheck(ctx)
	log.WithFields(map[string]interface{}{
		"response_time": status.ResponseTime,
		"total_conns":   status.TotalConns,
	}).Info("Migration applied")

	PrintSuccess(cmd.OutOrStdout(), "quote_snapshots is ready")
	return nil
}
