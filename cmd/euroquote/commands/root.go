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
	Use:   "euroquote",
	Short: "Euronext 시세 조회 도구",
	Long: `euroquote CLI

Euronext live 페이지에서 종목명, 현재가, 52주 고저를 추출합니다.

Usage:
  go run ./cmd/euroquote [command]

Examples:
  go run ./cmd/euroquote quote NL0012969182 XAMS
  go run ./cmd/euroquote full-quote NL0012969182 XAMS --json
  go run ./cmd/euroquote api --port 8089
  go run ./cmd/euroquote watch --once`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug 로그 출력")
}
