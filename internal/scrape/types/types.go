package types

import (
	"context"
	"errors"
	"time"

	"leadhunt-engine/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

var (
	// ErrNoProfileURL means a card had no link that resolves to a profile.
	ErrNoProfileURL = errors.New("card has no profile url")
	// ErrNoName means every name fallback came back empty.
	ErrNoName = errors.New("card has no usable name")
)

// Page is the browser tab the scraper drives. Element queries happen on the
// HTML snapshot, not through the browser.
type Page interface {
	Navigate(ctx context.Context, url string, timeout time.Duration) error
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error
	HTML(ctx context.Context) (string, error)
	Wheel(ctx context.Context, deltaY float64) error
}

// Extractor turns one result card into a lead. Keyword and discovery date are
// left for the caller to stamp.
type Extractor interface {
	Platform() domain.Platform
	// CardSelector matches every result card in a snapshot.
	CardSelector() string
	// ReadySelector appears once results have rendered.
	ReadySelector() string
	Extract(card *goquery.Selection) (domain.Lead, error)
}

// Acquirer brings successive result steps into view for one keyword:
// numbered pages, or scroll positions of an infinite list.
type Acquirer interface {
	Name() string
	Steps() int
	Load(ctx context.Context, p Page, keyword string, step int) error
}

// Store is the persistence sink plus the one read used to seed dedup.
type Store interface {
	ProfileURLs(ctx context.Context) ([]string, error)
	AppendLeads(ctx context.Context, leads []domain.Lead) error
}

type Summary struct {
	Keywords      int
	Steps         int
	StepsFailed   int
	Cards         int
	Skipped       int
	Duplicates    int
	Accepted      int
	Persisted     int
	PersistFailed int
	Elapsed       time.Duration
}

func (s *Summary) Add(o Summary) {
	s.Keywords += o.Keywords
	s.Steps += o.Steps
	s.StepsFailed += o.StepsFailed
	s.Cards += o.Cards
	s.Skipped += o.Skipped
	s.Duplicates += o.Duplicates
	s.Accepted += o.Accepted
	s.Persisted += o.Persisted
	s.PersistFailed += o.PersistFailed
	s.Elapsed += o.Elapsed
}

// Lost is how many accepted leads never reached the store.
func (s Summary) Lost() int {
	return s.Accepted - s.Persisted
}
