package scrape

import (
	"context"
	"time"

	"leadhunt-engine/internal/logger"
	"leadhunt-engine/internal/scrape/types"
)

// Run scrapes keywords in order, each to completion, with keyword pacing in
// between. Keywords never overlap: they share the page and the dedup set.
func (s *Scraper) Run(ctx context.Context, keywords []string) types.Summary {
	start := time.Now()
	var total types.Summary

	for i, kw := range keywords {
		if err := ctx.Err(); err != nil {
			s.log.Warn("run interrupted", logger.Int("keywords_left", len(keywords)-i), logger.Error(err))
			break
		}

		s.log.Info("searching", logger.String("keyword", kw), logger.Int("index", i+1), logger.Int("of", len(keywords)))
		sum := s.ScrapeKeyword(ctx, kw)
		total.Add(sum)
		LogSummary(s.log.With(logger.String("keyword", kw)), "keyword done", sum)

		s.pace(ctx, s.keywordPacer, i < len(keywords)-1, s.log)
	}

	total.Elapsed = time.Since(start)
	return total
}

func LogSummary(log logger.Logger, msg string, sum types.Summary) {
	log.Info(msg,
		logger.Int("keywords", sum.Keywords),
		logger.Int("steps", sum.Steps),
		logger.Int("steps_failed", sum.StepsFailed),
		logger.Int("cards", sum.Cards),
		logger.Int("skipped", sum.Skipped),
		logger.Int("duplicates", sum.Duplicates),
		logger.Int("accepted", sum.Accepted),
		logger.Int("persisted", sum.Persisted),
		logger.Int("persist_failed", sum.PersistFailed),
		logger.Duration("elapsed", sum.Elapsed),
	)
}
