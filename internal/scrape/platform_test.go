package scrape

import (
	"testing"
	"time"

	"leadhunt-engine/internal/config"
	"leadhunt-engine/internal/domain"
	"leadhunt-engine/internal/scrape/linkedin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnabledPlatforms(t *testing.T) {
	cfg := config.Default()
	cfg.Platforms.X.Enabled = true
	cfg.Platforms.X.Keywords = []string{" ", "job seeker"}
	cfg.Platforms.LinkedIn.Selectors.Card = "li.result"

	ps := EnabledPlatforms(cfg)
	require.Len(t, ps, 2)

	li, x := ps[0], ps[1]
	assert.Equal(t, domain.PlatformLinkedIn, li.Name)
	assert.Equal(t, "li.result", li.Extractor.CardSelector())
	assert.Equal(t, 10, li.Acquirer.Steps())
	assert.Len(t, li.Keywords, 5)

	assert.Equal(t, domain.PlatformX, x.Name)
	assert.Equal(t, []string{"job seeker"}, x.Keywords)
	assert.Equal(t, 9, x.Acquirer.Steps())
	assert.Equal(t, "https://x.com/login", x.LoginURL)
}

func TestEnabledPlatforms_DropsEmpty(t *testing.T) {
	cfg := config.Default()
	cfg.Platforms.LinkedIn.Keywords = nil

	assert.Empty(t, EnabledPlatforms(cfg))
}

func TestMapLinkedInSelectors_FillsDefaults(t *testing.T) {
	got := MapLinkedInSelectors(config.Selectors{Bio: ".headline"})
	assert.Equal(t, ".headline", got.Bio)
	assert.Equal(t, linkedin.DefaultSelectors().Card, got.Card)
}

func TestApplyPacing(t *testing.T) {
	cfg := config.Default()
	var o Options
	ApplyPacing(&o, cfg)

	require.NotNil(t, o.PagePacer)
	assert.Equal(t, 7*time.Second, o.PagePacer.Min)
	assert.Equal(t, 12*time.Second, o.PagePacer.Max)
	assert.Equal(t, 2*time.Second, o.KeywordPacer.Next())
	assert.Equal(t, cfg.Browser.ReadyTimeout, o.ReadyTimeout)
}
