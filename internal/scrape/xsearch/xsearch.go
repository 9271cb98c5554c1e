// Package xsearch extracts leads from X people search ("f=user" results).
// Results load by infinite scroll, so the scraper pairs this extractor with
// the scroll-and-collect acquirer.
package xsearch

import (
	"fmt"
	"strings"

	"leadhunt-engine/internal/domain"
	"leadhunt-engine/internal/scrape/types"
	"leadhunt-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

const (
	Origin   = "https://x.com"
	LoginURL = "https://x.com/login"
)

// top-level paths that are app routes, not handles
var reserved = map[string]bool{
	"home": true, "explore": true, "notifications": true, "messages": true,
	"i": true, "search": true, "settings": true, "compose": true,
	"hashtag": true, "login": true, "logout": true, "tos": true, "privacy": true,
}

type Selectors struct {
	Card          string
	Ready         string
	ProfileLink   string
	LinkName      string
	SecondaryName string
	Bio           string
}

func DefaultSelectors() Selectors {
	return Selectors{
		Card:          `[data-testid="UserCell"]`,
		Ready:         `[data-testid="UserCell"], [data-testid="emptyState"]`,
		ProfileLink:   `a[href]`,
		LinkName:      `div[dir="ltr"] span`,
		SecondaryName: `[data-testid="User-Name"] span`,
		Bio:           `[data-testid="UserDescription"], div[dir="auto"][lang]`,
	}
}

func (s Selectors) WithDefaults() Selectors {
	d := DefaultSelectors()
	if strings.TrimSpace(s.Card) == "" {
		s.Card = d.Card
	}
	if strings.TrimSpace(s.Ready) == "" {
		s.Ready = d.Ready
	}
	if strings.TrimSpace(s.ProfileLink) == "" {
		s.ProfileLink = d.ProfileLink
	}
	if strings.TrimSpace(s.LinkName) == "" {
		s.LinkName = d.LinkName
	}
	if strings.TrimSpace(s.SecondaryName) == "" {
		s.SecondaryName = d.SecondaryName
	}
	if strings.TrimSpace(s.Bio) == "" {
		s.Bio = d.Bio
	}
	return s
}

type Extractor struct {
	sel Selectors
}

var _ types.Extractor = (*Extractor)(nil)

func New(sel Selectors) *Extractor {
	return &Extractor{sel: sel.WithDefaults()}
}

func (e *Extractor) Platform() domain.Platform { return domain.PlatformX }
func (e *Extractor) CardSelector() string { return e.sel.Card }
func (e *Extractor) ReadySelector() string { return e.sel.Ready }

// Extract reads one user cell. The avatar and the display name are separate
// links to the same profile, so the name is taken from whichever of them
// carries text.
func (e *Extractor) Extract(card *goquery.Selection) (domain.Lead, error) {
	var profileURL, name string
	card.Find(e.sel.ProfileLink).EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		u := profileHref(href)
		if u == "" {
			return true
		}
		if profileURL == "" {
			profileURL = u
		}
		if u != profileURL {
			return true
		}
		if t := util.CleanText(a.Find(e.sel.LinkName).First().Text()); t != "" && !strings.HasPrefix(t, "@") {
			name = t
			return false
		}
		return true
	})
	if profileURL == "" {
		return domain.Lead{}, types.ErrNoProfileURL
	}

	username := util.LastPathSegment(profileURL)
	if name == "" {
		name = util.FirstText(card, e.sel.SecondaryName)
		if strings.HasPrefix(name, "@") {
			name = ""
		}
	}
	if name == "" {
		name = util.NameFromSlug(username)
	}
	if name == "" {
		return domain.Lead{}, fmt.Errorf("%w: %s", types.ErrNoName, profileURL)
	}

	return domain.Lead{
		Name:       name,
		Username:   username,
		Platform:   domain.PlatformX,
		Bio:        util.FirstText(card, e.sel.Bio),
		ProfileURL: profileURL,
	}, nil
}

// profileHref returns the x.com profile URL for a single-segment handle link,
// or "" for status links, app routes and other sites.
func profileHref(href string) string {
	u := util.NormalizeProfileURL(href, Origin)
	rest := strings.TrimPrefix(u, Origin)
	if u == "" || rest == u {
		return ""
	}
	handle := strings.Trim(rest, "/")
	if handle == "" || strings.Contains(handle, "/") || reserved[handle] {
		return ""
	}
	return u
}

func SearchURL(keyword string) string {
	return Origin + "/search?q=" + util.QueryEscape(keyword) + "&src=typed_query&f=user"
}
