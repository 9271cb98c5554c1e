package scrape

import (
	"strings"

	"leadhunt-engine/internal/config"
	"leadhunt-engine/internal/domain"
	"leadhunt-engine/internal/scrape/linkedin"
	"leadhunt-engine/internal/scrape/types"
	"leadhunt-engine/internal/scrape/xsearch"
)

// Platform is everything one enabled platform contributes to a run.
type Platform struct {
	Name      domain.Platform
	LoginURL  string
	Keywords  []string
	Extractor types.Extractor
	Acquirer  types.Acquirer
}

// EnabledPlatforms builds the enabled platforms in run order: LinkedIn, then X.
// A platform with no keywords left after trimming is dropped.
func EnabledPlatforms(cfg config.Config) []Platform {
	var out []Platform

	if li := cfg.Platforms.LinkedIn; li.Enabled {
		if kws := keywords(li.Keywords); len(kws) > 0 {
			out = append(out, Platform{
				Name:      domain.PlatformLinkedIn,
				LoginURL:  orDefault(li.LoginURL, linkedin.LoginURL),
				Keywords:  kws,
				Extractor: linkedin.New(MapLinkedInSelectors(li.Selectors)),
				Acquirer: &PaginateByURL{
					URL:        linkedin.SearchURL,
					MaxPages:   li.MaxPages,
					NavTimeout: cfg.Browser.NavTimeout,
				},
			})
		}
	}

	if x := cfg.Platforms.X; x.Enabled {
		if kws := keywords(x.Keywords); len(kws) > 0 {
			out = append(out, Platform{
				Name:      domain.PlatformX,
				LoginURL:  orDefault(x.LoginURL, xsearch.LoginURL),
				Keywords:  kws,
				Extractor: xsearch.New(MapXSelectors(x.Selectors)),
				Acquirer: &ScrollAndCollect{
					URL:        xsearch.SearchURL,
					MaxScrolls: x.MaxScrolls,
					Delta:      x.ScrollDelta,
					NavTimeout: cfg.Browser.NavTimeout,
				},
			})
		}
	}

	return out
}

func keywords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, k := range in {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
