package linkedin

import (
	"fmt"
	"strconv"
	"strings"

	"leadhunt-engine/internal/domain"
	"leadhunt-engine/internal/scrape/types"
	"leadhunt-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

const (
	Origin   = "https://www.linkedin.com"
	LoginURL = "https://www.linkedin.com/"

	// LinkedIn serves the "#OpenToWork" frame as a separate photo rendition.
	framedPhotoMarker = "/profile-framedphoto-"
)

// Selectors locate the parts of a people-search card. Any field left empty
// falls back to DefaultSelectors.
type Selectors struct {
	Card          string
	Ready         string
	ProfileLink   string
	LinkName      string
	SecondaryName string
	Bio           string
	Photo         string
}

func DefaultSelectors() Selectors {
	return Selectors{
		Card:          `div.qzNyIFAzZJZBwmIgXqVzEZAKEhfUFiMYsI, div[data-chameleon-result-urn]`,
		Ready:         `main .search-results-container, main ul.reusable-search__entity-result-list, main [data-chameleon-result-urn]`,
		ProfileLink:   `a[href*="/in/"]`,
		LinkName:      `span[aria-hidden="true"]`,
		SecondaryName: `.t-16 a`,
		Bio:           `div.RHIaxMYqSWhVYuOKZGwUdCILPpNyxMAnQ, .entity-result__primary-subtitle, div.t-14.t-black.t-normal`,
		Photo:         `img`,
	}
}

// WithDefaults fills empty fields from DefaultSelectors.
func (s Selectors) WithDefaults() Selectors {
	d := DefaultSelectors()
	fill := func(v *string, def string) {
		if strings.TrimSpace(*v) == "" {
			*v = def
		}
	}
	fill(&s.Card, d.Card)
	fill(&s.Ready, d.Ready)
	fill(&s.ProfileLink, d.ProfileLink)
	fill(&s.LinkName, d.LinkName)
	fill(&s.SecondaryName, d.SecondaryName)
	fill(&s.Bio, d.Bio)
	fill(&s.Photo, d.Photo)
	return s
}

type Extractor struct {
	sel Selectors
}

var _ types.Extractor = (*Extractor)(nil)

func New(sel Selectors) *Extractor {
	return &Extractor{sel: sel.WithDefaults()}
}

func (e *Extractor) Platform() domain.Platform { return domain.PlatformLinkedIn }
func (e *Extractor) CardSelector() string { return e.sel.Card }
func (e *Extractor) ReadySelector() string { return e.sel.Ready }

func (e *Extractor) Extract(card *goquery.Selection) (domain.Lead, error) {
	link := card.Find(e.sel.ProfileLink).FilterFunction(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		return strings.Contains(href, "/in/")
	}).First()
	if link.Length() == 0 {
		return domain.Lead{}, types.ErrNoProfileURL
	}

	href, _ := link.Attr("href")
	profileURL := util.NormalizeProfileURL(href, Origin)
	username := util.LastPathSegment(profileURL)
	if profileURL == "" || username == "" || username == "in" {
		return domain.Lead{}, types.ErrNoProfileURL
	}

	name := util.CleanText(link.Find(e.sel.LinkName).First().Text())
	if name == "" {
		name = util.FirstText(card, e.sel.SecondaryName)
	}
	if name == "" {
		name = util.NameFromSlug(username)
	}
	if name == "" {
		return domain.Lead{}, fmt.Errorf("%w: %s", types.ErrNoName, profileURL)
	}

	src, _ := util.FirstAttr(card, "src", e.sel.Photo)

	return domain.Lead{
		Name:       name,
		Username:   username,
		Platform:   domain.PlatformLinkedIn,
		Bio:        util.FirstText(card, e.sel.Bio),
		OpenToWork: strings.Contains(src, framedPhotoMarker),
		ProfileURL: profileURL,
	}, nil
}

// SearchURL is the people-search URL for one keyword page. Page 1 carries no
// page parameter.
func SearchURL(keyword string, page int) string {
	u := Origin + "/search/results/people/?keywords=" + util.QueryEscape(keyword) + "&origin=GLOBAL_SEARCH_HEADER"
	if page > 1 {
		u += "&page=" + strconv.Itoa(page)
	}
	return u
}
