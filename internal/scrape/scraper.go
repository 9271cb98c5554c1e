package scrape

import (
	"errors"
	"fmt"
	"time"

	"leadhunt-engine/internal/dedup"
	"leadhunt-engine/internal/logger"
	"leadhunt-engine/internal/scrape/types"
	"leadhunt-engine/internal/scrape/util"
)

// Options wires one platform scraper for one run. Page, Extractor, Acquirer,
// Seen and Store are required; everything else has a usable zero value.
type Options struct {
	Page      types.Page
	Extractor types.Extractor
	Acquirer  types.Acquirer
	Seen      *dedup.Set
	Store     types.Store
	Log       logger.Logger

	PagePacer    *util.Pacer
	KeywordPacer *util.Pacer
	CardPacer    *util.Pacer

	// ReadyTimeout bounds the wait for results to render after each step.
	ReadyTimeout time.Duration

	Now func() time.Time
}

// Scraper runs the search, extract, dedup and append loop for one platform.
// It is strictly sequential: one page handle, one dedup set, one store.
type Scraper struct {
	page  types.Page
	ext   types.Extractor
	acq   types.Acquirer
	seen  *dedup.Set
	store types.Store
	log   logger.Logger

	pagePacer    *util.Pacer
	keywordPacer *util.Pacer
	cardPacer    *util.Pacer

	readyTimeout time.Duration
	now          func() time.Time
}

func New(o Options) (*Scraper, error) {
	switch {
	case o.Page == nil:
		return nil, errors.New("scrape: page is required")
	case o.Extractor == nil:
		return nil, errors.New("scrape: extractor is required")
	case o.Acquirer == nil:
		return nil, errors.New("scrape: acquirer is required")
	case o.Seen == nil:
		return nil, errors.New("scrape: dedup set is required")
	case o.Store == nil:
		return nil, errors.New("scrape: store is required")
	case !o.Extractor.Platform().Valid():
		return nil, fmt.Errorf("scrape: unknown platform %q", o.Extractor.Platform())
	}
	if o.Log == nil {
		o.Log = logger.NewNop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.ReadyTimeout <= 0 {
		o.ReadyTimeout = 15 * time.Second
	}

	return &Scraper{
		page:  o.Page,
		ext:   o.Extractor,
		acq:   o.Acquirer,
		seen:  o.Seen,
		store: o.Store,
		log: o.Log.With(
			logger.String("platform", string(o.Extractor.Platform())),
			logger.String("acquire", o.Acquirer.Name()),
		),
		pagePacer:    o.PagePacer,
		keywordPacer: o.KeywordPacer,
		cardPacer:    o.CardPacer,
		readyTimeout: o.ReadyTimeout,
		now:          o.Now,
	}, nil
}
