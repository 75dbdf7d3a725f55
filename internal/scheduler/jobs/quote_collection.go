package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/euroquote/internal/contracts"
	"github.com/wonny/euroquote/internal/external/euronext"
	"github.com/wonny/euroquote/internal/snapshot"
	"github.com/wonny/euroquote/pkg/config"
	"github.com/wonny/euroquote/pkg/logger"
)

// QuoteCollectionJob fetches every watchlist instrument once per tick.
// A failed instrument is logged and skipped until the next tick.
type QuoteCollectionJob struct {
	quoter    euronext.Quoter
	store     snapshot.Store
	watchlist *config.Watchlist
	schedule  string
	logger    *logger.Logger
	now       func() time.Time
}

// NewQuoteCollectionJob creates a new quote collection job.
// store may be nil, in which case quotes are only logged.
func NewQuoteCollectionJob(
	quoter euronext.Quoter,
	store snapshot.Store,
	watchlist *config.Watchlist,
	schedule string,
	log *logger.Logger,
) *QuoteCollectionJob {
	return &QuoteCollectionJob{
		quoter:    quoter,
		store:     store,
		watchlist: watchlist,
		schedule:  schedule,
		logger:    log,
		now:       time.Now,
	}
}

// Name returns the job name
func (j *QuoteCollectionJob) Name() string {
	return "quote_collection"
}

// Schedule returns the cron schedule
func (j *QuoteCollectionJob) Schedule() string {
	return j.schedule
}

// CollectionSummary counts the outcome of one pass
type CollectionSummary struct {
	Attempted int
	Succeeded int
	Failed    int
}

// Run executes one collection pass
func (j *QuoteCollectionJob) Run(ctx context.Context) error {
	summary := j.Collect(ctx)

	j.logger.WithFields(map[string]interface{}{
		"attempted": summary.Attempted,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
	}).Info("Quote collection pass finished")

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d quote fetches failed", summary.Failed, summary.Attempted)
	}
	return nil
}

// Collect fetches each instrument in watchlist order and reports the counts
func (j *QuoteCollectionJob) Collect(ctx context.Context) CollectionSummary {
	var summary CollectionSummary

	for _, item := range j.watchlist.Instruments {
		if ctx.Err() != nil {
			j.logger.WithError(ctx.Err()).Warn("Quote collection interrupted")
			break
		}

		summary.Attempted++
		if err := j.collectDetailed(ctx, item); err != nil {
			summary.Failed++
			j.logFailure(item, snapshot.KindDetailed, err)
		} else {
			summary.Succeeded++
		}

		if !item.Full {
			continue
		}

		summary.Attempted++
		if err := j.collectFull(ctx, item); err != nil {
			summary.Failed++
			j.logFailure(item, snapshot.KindFull, err)
		} else {
			summary.Succeeded++
		}
	}

	return summary
}

func (j *QuoteCollectionJob) collectDetailed(ctx context.Context, item config.WatchItem) error {
	quote, err := j.quoter.GetDetailedQuote(ctx, item.ISIN, item.Market)
	if err != nil {
		return err
	}

	j.logger.WithFields(map[string]interface{}{
		"instrument": item.Key(),
		"name":       quote.InstrumentName,
		"price":      quote.InstrumentPrice,
	}).Info("Detailed quote collected")

	return j.save(ctx, snapshot.NewDetailed(refOf(item), quote, j.now()))
}

func (j *QuoteCollectionJob) collectFull(ctx context.Context, item config.WatchItem) error {
	quote, err := j.quoter.GetFullDetailedQuote(ctx, item.ISIN, item.Market)
	if err != nil {
		return err
	}

	j.logger.WithFields(map[string]interface{}{
		"instrument": item.Key(),
		"week_low":   quote.WeekLow,
		"week_high":  quote.WeekHigh,
	}).Info("Full quote collected")

	return j.save(ctx, snapshot.NewFull(refOf(item), quote, j.now()))
}

func (j *QuoteCollectionJob) save(ctx context.Context, s snapshot.Snapshot) error {
	if j.store == nil {
		return nil
	}
	if err := j.store.Save(ctx, s); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func refOf(item config.WatchItem) contracts.InstrumentRef {
	return contracts.InstrumentRef{ISIN: item.ISIN, Market: item.Market}
}

func (j *QuoteCollectionJob) logFailure(item config.WatchItem, kind snapshot.Kind, err error) {
	j.logger.WithFields(map[string]interface{}{
		"instrument": item.Key(),
		"kind":       string(kind),
	}).WithError(err).Warn("Quote collection failed")
}
