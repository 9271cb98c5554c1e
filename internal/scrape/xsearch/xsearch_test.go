package xsearch

import (
	"strings"
	"testing"

	"leadhunt-engine/internal/domain"
	"leadhunt-engine/internal/scrape/types"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `
<section>
  <div data-testid="UserCell">
    <a href="/JaneDoe"><img src="avatar.jpg"></a>
    <div data-testid="User-Name">
      <a href="/JaneDoe"><div dir="ltr"><span>Jane Doe</span></div></a>
      <a href="/JaneDoe"><div dir="ltr"><span>@JaneDoe</span></div></a>
    </div>
    <div data-testid="UserDescription">Open to work. Go, k8s.</div>
  </div>
  <div data-testid="UserCell">
    <a href="/search?q=x">search</a>
    <a href="/JaneDoe/status/123">a post</a>
  </div>
  <div data-testid="UserCell">
    <a href="https://twitter.com/john_smith?s=20"><div dir="ltr"><span>@john_smith</span></div></a>
  </div>
</section>`

func cells(t *testing.T) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc.Find(DefaultSelectors().Card)
}

func TestExtract(t *testing.T) {
	c := cells(t)
	require.Equal(t, 3, c.Length())

	lead, err := New(Selectors{}).Extract(c.Eq(0))
	require.NoError(t, err)
	assert.Equal(t, domain.Lead{
		Name:       "Jane Doe",
		Username:   "janedoe",
		Platform:   domain.PlatformX,
		Bio:        "Open to work. Go, k8s.",
		ProfileURL: "https://x.com/janedoe",
	}, lead)
}

func TestExtract_RoutesAndStatusLinksAreNotProfiles(t *testing.T) {
	_, err := New(Selectors{}).Extract(cells(t).Eq(1))
	assert.ErrorIs(t, err, types.ErrNoProfileURL)
}

func TestExtract_HandleOnlyFallsBackToSlug(t *testing.T) {
	lead, err := New(Selectors{}).Extract(cells(t).Eq(2))
	require.NoError(t, err)
	assert.Equal(t, "https://x.com/john_smith", lead.ProfileURL)
	assert.Equal(t, "john_smith", lead.Username)
	assert.Equal(t, "John_smith", lead.Name)
	assert.False(t, lead.OpenToWork)
}

func TestSearchURL(t *testing.T) {
	assert.Equal(t, "https://x.com/search?q=open%20to%20work&src=typed_query&f=user", SearchURL("open to work"))
}
