package scrape

import (
	"context"
	"time"

	"leadhunt-engine/internal/scrape/types"
)

// PaginateByURL loads numbered result pages, one navigation per step.
type PaginateByURL struct {
	URL        func(keyword string, page int) string
	MaxPages   int
	NavTimeout time.Duration
}

var _ types.Acquirer = (*PaginateByURL)(nil)

func (a *PaginateByURL) Name() string { return "paginate-by-url" }
func (a *PaginateByURL) Steps() int { return a.MaxPages }

func (a *PaginateByURL) Load(ctx context.Context, p types.Page, keyword string, step int) error {
	return p.Navigate(ctx, a.URL(keyword, step), a.NavTimeout)
}

// ScrollAndCollect opens the search once and then wheels further down the
// infinite list. Step 1 is the initial load; every later step is one wheel.
// If the initial load failed, the next step navigates again instead of
// scrolling a page that never arrived.
type ScrollAndCollect struct {
	URL        func(keyword string) string
	MaxScrolls int
	Delta      float64
	NavTimeout time.Duration

	landed bool
}

var _ types.Acquirer = (*ScrollAndCollect)(nil)

func (a *ScrollAndCollect) Name() string { return "scroll-and-collect" }
func (a *ScrollAndCollect) Steps() int { return a.MaxScrolls + 1 }

func (a *ScrollAndCollect) Load(ctx context.Context, p types.Page, keyword string, step int) error {
	if step == 1 || !a.landed {
		a.landed = false
		if err := p.Navigate(ctx, a.URL(keyword), a.NavTimeout); err != nil {
			return err
		}
		a.landed = true
		return nil
	}
	delta := a.Delta
	if delta <= 0 {
		delta = 3000
	}
	return p.Wheel(ctx, delta)
}
