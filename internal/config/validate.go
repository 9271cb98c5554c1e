package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg and what is wrong with it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Platforms.LinkedIn.Keywords = trimList(out.Platforms.LinkedIn.Keywords)
	out.Platforms.X.Keywords = trimList(out.Platforms.X.Keywords)
	out.Store.Kind = strings.ToLower(strings.TrimSpace(out.Store.Kind))
	if out.Store.Sheet == "" {
		out.Store.Sheet = "Sheet1"
	}

	li, x := out.Platforms.LinkedIn, out.Platforms.X
	if !li.Enabled && !x.Enabled {
		res.addErr("no platforms enabled: enable platforms.linkedin or platforms.x")
	}

	if li.Enabled {
		if li.MaxPages <= 0 {
			res.addErr("platforms.linkedin.max_pages must be > 0")
		}
		if len(li.Keywords) == 0 {
			res.addWarn("platforms.linkedin.keywords is empty; LinkedIn will collect nothing.")
		}
	}
	if x.Enabled {
		if x.MaxScrolls < 0 {
			res.addErr("platforms.x.max_scrolls must be >= 0")
		}
		if x.ScrollDelta < 0 {
			res.addErr("platforms.x.scroll_delta must be >= 0")
		}
		if len(x.Keywords) == 0 {
			res.addWarn("platforms.x.keywords is empty; X will collect nothing.")
		}
	}

	switch out.Store.Kind {
	case "sqlite", "xlsx", "csv":
	default:
		res.addErr("store.kind must be sqlite, xlsx or csv (got %q)", out.Store.Kind)
	}
	if strings.TrimSpace(out.Store.Path) == "" {
		res.addErr("store.path is required")
	}

	checkRange := func(name string, r Range) {
		if r.Min < 0 || r.Max < 0 {
			res.addErr("%s durations must be >= 0", name)
		} else if r.Max < r.Min {
			res.addErr("%s.max must be >= %s.min", name, name)
		}
	}
	checkRange("pacing.page", out.Pacing.Page)
	checkRange("pacing.keyword", out.Pacing.Keyword)
	checkRange("pacing.card", out.Pacing.Card)

	if out.Pacing.NavigationsPerMinute < 0 {
		res.addErr("pacing.navigations_per_minute must be >= 0")
	}
	if out.Pacing.Page.Max == 0 && (li.Enabled || x.Enabled) {
		res.addWarn("pacing.page is zero; pages will be fetched back to back and may trip rate limits.")
	}

	if out.Browser.NavTimeout <= 0 {
		res.addErr("browser.nav_timeout must be > 0")
	}
	if out.Browser.ReadyTimeout <= 0 {
		res.addErr("browser.ready_timeout must be > 0")
	}
	if out.Browser.Headless {
		res.addWarn("browser.headless is true; you will not be able to log in from this window.")
	}

	return out, res
}
