package scrape

import (
	"leadhunt-engine/internal/config"
	"leadhunt-engine/internal/scrape/linkedin"
	"leadhunt-engine/internal/scrape/util"
	"leadhunt-engine/internal/scrape/xsearch"
)

func MapLinkedInSelectors(in config.Selectors) linkedin.Selectors {
	return linkedin.Selectors{
		Card:          in.Card,
		Ready:         in.Ready,
		ProfileLink:   in.ProfileLink,
		LinkName:      in.LinkName,
		SecondaryName: in.SecondaryName,
		Bio:           in.Bio,
		Photo:         in.Photo,
	}.WithDefaults()
}

// MapXSelectors ignores Photo; X cards carry no open-to-work frame.
func MapXSelectors(in config.Selectors) xsearch.Selectors {
	return xsearch.Selectors{
		Card:          in.Card,
		Ready:         in.Ready,
		ProfileLink:   in.ProfileLink,
		LinkName:      in.LinkName,
		SecondaryName: in.SecondaryName,
		Bio:           in.Bio,
	}.WithDefaults()
}

// ApplyPacing sets the pacers from cfg. Only page
// loads are rate limited.
func ApplyPacing(o *Options, cfg config.Config) {
	p := cfg.Pacing
	o.PagePacer = util.NewPacer(p.Page.Min, p.Page.Max, p.NavigationsPerMinute)
	o.KeywordPacer = util.NewPacer(p.Keyword.Min, p.Keyword.Max, 0)
	o.CardPacer = util.NewPacer(p.Card.Min, p.Card.Max, 0)
	o.ReadyTimeout = cfg.Browser.ReadyTimeout
}
