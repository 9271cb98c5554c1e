package scrape

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"leadhunt-engine/internal/domain"
	"leadhunt-engine/internal/logger"
	"leadhunt-engine/internal/scrape/types"
	"leadhunt-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

// ScrapeKeyword walks the acquirer's steps for one keyword. Each step loads
// results, snapshots them, keeps cards not yet seen and appends them in one
// batch. Failed loads and failed appends are logged and skipped; an empty
// snapshot ends the keyword early.
func (s *Scraper) ScrapeKeyword(ctx context.Context, keyword string) types.Summary {
	start := time.Now()
	log := s.log.With(logger.String("keyword", keyword))
	discovered := dateOf(s.now())

	sum := types.Summary{Keywords: 1}
	steps := s.acq.Steps()

	for step := 1; step <= steps; step++ {
		if err := ctx.Err(); err != nil {
			log.Warn("keyword interrupted", logger.Int("step", step), logger.Error(err))
			break
		}
		sum.Steps++
		stepLog := log.With(logger.Int("step", step))
		stepLog.Info("loading results", logger.Int("of", steps))

		if err := s.acq.Load(ctx, s.page, keyword, step); err != nil {
			sum.StepsFailed++
			stepLog.Warn("load failed, skipping step", logger.Error(err))
			s.pace(ctx, s.pagePacer, step < steps, stepLog)
			continue
		}

		cards, err := s.snapshot(ctx, stepLog)
		if err != nil {
			sum.StepsFailed++
			stepLog.Warn("snapshot failed, skipping step", logger.Error(err))
			s.pace(ctx, s.pagePacer, step < steps, stepLog)
			continue
		}

		stepLog.Info("cards found", logger.Int("cards", cards.Length()))
		if cards.Length() == 0 {
			stepLog.Info("no more results, stopping early")
			break
		}

		batch := s.collect(ctx, stepLog, cards, keyword, discovered, &sum)
		if len(batch) > 0 {
			s.persist(ctx, stepLog, batch, &sum)
		}

		s.pace(ctx, s.pagePacer, step < steps, stepLog)
	}

	sum.Elapsed = time.Since(start)
	return sum
}

func (s *Scraper) snapshot(ctx context.Context, log logger.Logger) (*goquery.Selection, error) {
	if sel := s.ext.ReadySelector(); sel != "" {
		if err := s.page.WaitVisible(ctx, sel, s.readyTimeout); err != nil {
			// an empty result page never renders the container
			log.Debug("results container did not appear", logger.Error(err))
		}
	}

	html, err := s.page.HTML(ctx)
	if err != nil {
		return nil, fmt.Errorf("read page html: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse page html: %w", err)
	}
	return doc.Find(s.ext.CardSelector()), nil
}

// collect extracts every card and keeps the ones whose profile URL is new to
// the run. Accepted URLs go into the dedup set immediately, so a card that
// repeats later on the same page is a duplicate.
func (s *Scraper) collect(ctx context.Context, log logger.Logger, cards *goquery.Selection, keyword string, discovered time.Time, sum *types.Summary) []domain.Lead {
	var batch []domain.Lead

	cards.Each(func(i int, card *goquery.Selection) {
		sum.Cards++

		lead, err := s.extract(card)
		if err != nil {
			sum.Skipped++
			log.Warn("card skipped", logger.Int("card", i), logger.String("reason", skipReason(err)), logger.Error(err))
			return
		}

		if s.seen.Contains(lead.ProfileURL) {
			sum.Duplicates++
			log.Debug("card already known", logger.Int("card", i), logger.String("profile_url", lead.ProfileURL))
			return
		}
		s.seen.Add(lead.ProfileURL)

		lead.Keyword = keyword
		lead.DiscoveredOn = discovered
		batch = append(batch, lead)
		sum.Accepted++
		log.Info("lead accepted",
			logger.Int("card", i),
			logger.String("name", lead.Name),
			logger.String("profile_url", lead.ProfileURL),
			logger.Bool("open_to_work", lead.OpenToWork),
		)

		s.pace(ctx, s.cardPacer, true, log)
	})

	return batch
}

// extract runs the extractor with a recover so one malformed card cannot take
// down the rest of the page.
func (s *Scraper) extract(card *goquery.Selection) (lead domain.Lead, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extract panic: %v", r)
		}
	}()
	return s.ext.Extract(card)
}

// persist appends one page batch. A failed append is not retried and the
// batch's URLs stay in the dedup set, so those leads are lost for this run.
// The append is detached from ctx cancellation: a page that was already
// scraped still gets written when shutdown arrives mid-step.
func (s *Scraper) persist(ctx context.Context, log logger.Logger, batch []domain.Lead, sum *types.Summary) {
	if err := s.store.AppendLeads(context.WithoutCancel(ctx), batch); err != nil {
		sum.PersistFailed += len(batch)
		log.Error("append failed, batch lost for this run", logger.Int("leads", len(batch)), logger.Error(err))
		return
	}
	sum.Persisted += len(batch)
	log.Info("batch appended", logger.Int("leads", len(batch)))
}

func (s *Scraper) pace(ctx context.Context, p *util.Pacer, more bool, log logger.Logger) {
	if !more || p == nil {
		return
	}
	d, err := p.Wait(ctx)
	if err != nil {
		return
	}
	if d > 0 {
		log.Debug("paced", logger.Duration("wait", d))
	}
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, types.ErrNoProfileURL):
		return "no_profile_url"
	case errors.Is(err, types.ErrNoName):
		return "no_name"
	default:
		return "extract_error"
	}
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
