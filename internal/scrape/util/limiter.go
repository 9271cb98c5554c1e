package util

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out browser actions: an optional rate limit plus a random
// delay in [Min, Max]. A zero Pacer never waits.
type Pacer struct {
	Min time.Duration
	Max time.Duration

	lim *rate.Limiter

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewPacer builds a pacer. perMinute <= 0 disables the rate limit.
func NewPacer(lo, hi time.Duration, perMinute float64) *Pacer {
	if hi < lo {
		hi = lo
	}
	p := &Pacer{
		Min: lo,
		Max: hi,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if perMinute > 0 {
		p.lim = rate.NewLimiter(rate.Limit(perMinute/60), 1)
	}
	return p
}

// Next returns the next jittered delay without sleeping.
func (p *Pacer) Next() time.Duration {
	if p == nil || p.Max <= 0 {
		return 0
	}
	if p.Max == p.Min {
		return p.Min
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rnd == nil {
		p.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return p.Min + time.Duration(p.rnd.Int63n(int64(p.Max-p.Min)+1))
}

// Wait blocks for the rate limit and then the jittered delay. It returns the
// time slept (jitter only) or ctx.Err().
func (p *Pacer) Wait(ctx context.Context) (time.Duration, error) {
	if p == nil {
		return 0, ctx.Err()
	}
	if p.lim != nil {
		if err := p.lim.Wait(ctx); err != nil {
			return 0, err
		}
	}
	d := p.Next()
	if d <= 0 {
		return 0, ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-t.C:
		return d, nil
	}
}
