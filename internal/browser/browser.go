// Package browser owns the chromedp session: one Chrome process with a
// persistent profile and one tab the scrapers share.
package browser

import (
	"context"
	"fmt"
	"os"
	"time"

	"leadhunt-engine/internal/scrape/types"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"
)

type Options struct {
	Headless bool
	// ProfileDir keeps cookies between runs so the manual login sticks.
	ProfileDir string
	ExecPath   string
	UserAgent  string
}

// Tab implements types.Page on a chromedp target.
type Tab struct {
	ctx    context.Context
	cancel func()
}

var _ types.Page = (*Tab)(nil)

// Launch starts Chrome and opens a blank tab. The session outlives ctx's
// cancellation; call Close to shut it down.
func Launch(ctx context.Context, o Options) (*Tab, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", o.Headless),
		chromedp.Flag("start-maximized", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if o.ProfileDir != "" {
		if err := os.MkdirAll(o.ProfileDir, 0o755); err != nil {
			return nil, fmt.Errorf("create profile dir: %w", err)
		}
		opts = append(opts, chromedp.UserDataDir(o.ProfileDir))
	}
	if o.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(o.ExecPath))
	}
	if o.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(o.UserAgent))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.WithoutCancel(ctx), opts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	t := &Tab{
		ctx: tabCtx,
		cancel: func() {
			tabCancel()
			allocCancel()
		},
	}

	startCtx, cancel := context.WithTimeout(tabCtx, 30*time.Second)
	defer cancel()
	if err := chromedp.Run(startCtx, chromedp.Navigate("about:blank")); err != nil {
		t.Close()
		return nil, fmt.Errorf("start chrome: %w", err)
	}
	return t, nil
}

func (t *Tab) Close() {
	if t != nil && t.cancel != nil {
		t.cancel()
	}
}

// op derives a context on the tab that also ends when the caller's ctx does.
func (t *Tab) op(ctx context.Context, timeout time.Duration) (context.Context, func()) {
	var (
		opCtx  context.Context
		cancel context.CancelFunc
	)
	if timeout > 0 {
		opCtx, cancel = context.WithTimeout(t.ctx, timeout)
	} else {
		opCtx, cancel = context.WithCancel(t.ctx)
	}
	stop := context.AfterFunc(ctx, cancel)
	return opCtx, func() {
		stop()
		cancel()
	}
}

func (t *Tab) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	opCtx, done := t.op(ctx, timeout)
	defer done()
	if err := chromedp.Run(opCtx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

func (t *Tab) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	opCtx, done := t.op(ctx, timeout)
	defer done()
	return chromedp.Run(opCtx, chromedp.WaitVisible(selector, chromedp.ByQuery))
}

func (t *Tab) HTML(ctx context.Context) (string, error) {
	opCtx, done := t.op(ctx, 30*time.Second)
	defer done()
	var html string
	if err := chromedp.Run(opCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}

// Wheel dispatches a mouse-wheel event over the page, the way a user scrolls
// an infinite result list.
func (t *Tab) Wheel(ctx context.Context, deltaY float64) error {
	opCtx, done := t.op(ctx, 10*time.Second)
	defer done()
	return chromedp.Run(opCtx, chromedp.ActionFunc(func(c context.Context) error {
		return input.DispatchMouseEvent(input.MouseWheel, 400, 400).
			WithDeltaX(0).
			WithDeltaY(deltaY).
			Do(c)
	}))
}
