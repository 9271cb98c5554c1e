package linkedin

import (
	"strings"
	"testing"

	"leadhunt-engine/internal/domain"
	"leadhunt-engine/internal/scrape/types"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cards(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc.Find(DefaultSelectors().Card)
}

const page = `
<main>
  <div data-chameleon-result-urn="1">
    <img src="https://media.licdn.com/dms/image/profile-framedphoto-shrink_100_100/abc">
    <a href="https://www.linkedin.com/in/jane-doe/?miniProfileUrn=xyz">
      <span aria-hidden="true">Jane   Doe</span>
      <span class="visually-hidden">View Jane Doe's profile</span>
    </a>
    <div class="t-14 t-black t-normal">Senior Go Engineer</div>
  </div>
  <div data-chameleon-result-urn="2">
    <img src="https://media.licdn.com/dms/image/profile-displayphoto-shrink_100_100/def">
    <a href="/in/sanjoor-prem/"></a>
    <div class="t-14 t-black t-normal">Data Analyst</div>
  </div>
  <div data-chameleon-result-urn="3">
    <a href="/company/acme/">Acme</a>
    <div class="t-14 t-black t-normal">Company card</div>
  </div>
  <div data-chameleon-result-urn="4">
    <a href="/in/ignored-slug/"></a>
    <span class="t-16"><a href="/in/ignored-slug/">Secondary Name</a></span>
  </div>
</main>`

func TestExtract(t *testing.T) {
	e := New(Selectors{})
	c := cards(t, page)
	require.Equal(t, 4, c.Length())

	lead, err := e.Extract(c.Eq(0))
	require.NoError(t, err)
	assert.Equal(t, domain.Lead{
		Name:       "Jane Doe",
		Username:   "jane-doe",
		Platform:   domain.PlatformLinkedIn,
		Bio:        "Senior Go Engineer",
		OpenToWork: true,
		ProfileURL: "https://www.linkedin.com/in/jane-doe",
	}, lead)
}

func TestExtract_NameFromSlug(t *testing.T) {
	lead, err := New(Selectors{}).Extract(cards(t, page).Eq(1))
	require.NoError(t, err)
	assert.Equal(t, "Sanjoor Prem", lead.Name)
	assert.Equal(t, "sanjoor-prem", lead.Username)
	assert.Equal(t, "https://www.linkedin.com/in/sanjoor-prem", lead.ProfileURL)
	assert.False(t, lead.OpenToWork)
}

func TestExtract_NoProfileLink(t *testing.T) {
	_, err := New(Selectors{}).Extract(cards(t, page).Eq(2))
	assert.ErrorIs(t, err, types.ErrNoProfileURL)
}

func TestExtract_SecondaryName(t *testing.T) {
	lead, err := New(Selectors{}).Extract(cards(t, page).Eq(3))
	require.NoError(t, err)
	assert.Equal(t, "Secondary Name", lead.Name)
}

func TestExtract_BareInPath(t *testing.T) {
	_, err := New(Selectors{}).Extract(cards(t, `<div data-chameleon-result-urn="x"><a href="/in/">x</a></div>`).First())
	assert.ErrorIs(t, err, types.ErrNoProfileURL)
}

func TestSelectorsWithDefaults(t *testing.T) {
	s := Selectors{Card: "li.result"}.WithDefaults()
	assert.Equal(t, "li.result", s.Card)
	assert.Equal(t, DefaultSelectors().ProfileLink, s.ProfileLink)
}

func TestSearchURL(t *testing.T) {
	assert.Equal(t,
		"https://www.linkedin.com/search/results/people/?keywords=%22Open%20to%20work%22&origin=GLOBAL_SEARCH_HEADER",
		SearchURL(`"Open to work"`, 1))
	assert.Equal(t,
		"https://www.linkedin.com/search/results/people/?keywords=laid%20off&origin=GLOBAL_SEARCH_HEADER&page=3",
		SearchURL("laid off", 3))
}
