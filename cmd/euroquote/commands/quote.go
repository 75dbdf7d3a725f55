package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/euroquote/internal/contracts"
	"github.com/wonny/euroquote/internal/snapshot"
)

var (
	quoteJSON bool
	quoteSave bool
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote ISIN MARKET",
	Short: "종목명과 현재가 조회",
	Long: `Euronext live 페이지에서 종목명과 현재가를 조회합니다.

Example:
  go run ./cmd/euroquote quote NL0012969182 XAMS
  go run ./cmd/euroquote quote NL0012969182 XAMS --json --save`,
	Args: cobra.ExactArgs(2),
	RunE: runQuote,
}

// fullQuoteCmd represents the full-quote command
var fullQuoteCmd = &cobra.Command{
	Use:   "full-quote ISIN MARKET",
	Short: "52주 최저/최고가 조회",
	Long: `Euronext full 페이지에서 52주 최저가와 최고가를 조회합니다.

Example:
  go run ./cmd/euroquote full-quote NL0012969182 XAMS`,
	Args: cobra.ExactArgs(2),
	RunE: runFullQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(fullQuoteCmd)

	for _, c := range []*cobra.Command{quoteCmd, fullQuoteCmd} {
		c.Flags().BoolVar(&quoteJSON, "json", false, "JSON 형식으로 출력")
		c.Flags().BoolVar(&quoteSave, "save", false, "조회 결과를 스냅샷으로 저장 (DATABASE_URL 필요)")
	}
}

func instrumentArgs(args []string) (contracts.InstrumentRef, error) {
	ref := contracts.InstrumentRef{
		ISIN:   strings.TrimSpace(args[0]),
		Market: strings.TrimSpace(args[1]),
	}
	if ref.ISIN == "" || ref.Market == "" {
		return ref, fmt.Errorf("isin and market are required")
	}
	return ref, nil
}

func runQuote(cmd *cobra.Command, args []string) error {
	ref, err := instrumentArgs(args)
	if err != nil {
		return err
	}

	cfg, log, err := loadRuntime(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	// fail before hitting Euronext when the result could not be stored
	if quoteSave {
		if err := cfg.RequireDatabase(); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	quote, err := newQuoteClient(cfg, log).GetDetailedQuote(ctx, ref.ISIN, ref.Market)
	if err != nil {
		return err
	}

	if quoteSave {
		db, store, err := openStore(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := store.Save(ctx, snapshot.NewDetailed(ref, quote, time.Now())); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if quoteJSON {
		return PrintJSON(out, quote)
	}
	PrintDetailedQuote(out, ref, quote)
	return nil
}

func runFullQuote(cmd *cobra.Command, args []string) error {
	ref, err := instrumentArgs(args)
	if err != nil {
		return err
	}

	cfg, log, err := loadRuntime(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	// fail before hitting Euronext when the result could not be stored
	if quoteSave {
		if err := cfg.RequireDatabase(); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	quote, err := newQuoteClient(cfg, log).GetFullDetailedQuote(ctx, ref.ISIN, ref.Market)
	if err != nil {
		return err
	}

	if quoteSave {
		db, store, err := openStore(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := store.Save(ctx, snapshot.NewFull(ref, quote, time.Now())); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if quoteJSON {
		return PrintJSON(out, quote)
	}
	PrintFullDetailedQuote(out, ref, quote)
	return nil
}
