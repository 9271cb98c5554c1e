// internal/config/config.go
package config

import (
	"os"
	"path/filepath"
	"time"

	"leadhunt-engine/internal/logger"

	"gopkg.in/yaml.v3"
)

// Range is a pacing window; each wait picks a random duration inside it.
type Range struct {
	Min time.Duration `yaml:"min"`
	Max time.Duration `yaml:"max"`
}

// Selectors override extraction selectors; empty fields keep the built-in ones.
type Selectors struct {
	Card          string `yaml:"card,omitempty"`
	Ready         string `yaml:"ready,omitempty"`
	ProfileLink   string `yaml:"profile_link,omitempty"`
	LinkName      string `yaml:"link_name,omitempty"`
	SecondaryName string `yaml:"secondary_name,omitempty"`
	Bio           string `yaml:"bio,omitempty"`
	Photo         string `yaml:"photo,omitempty"`
}

type Platform struct {
	Enabled  bool     `yaml:"enabled"`
	LoginURL string   `yaml:"login_url"`
	Keywords []string `yaml:"keywords"`

	// numbered pagination (LinkedIn)
	MaxPages int `yaml:"max_pages,omitempty"`

	// scroll-and-collect (X)
	MaxScrolls  int     `yaml:"max_scrolls,omitempty"`
	ScrollDelta float64 `yaml:"scroll_delta,omitempty"`

	Selectors Selectors `yaml:"selectors,omitempty"`
}

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Log logger.Config `yaml:"log"`

	Browser struct {
		Headless     bool          `yaml:"headless"`
		ProfileDir   string        `yaml:"profile_dir"`
		ExecPath     string        `yaml:"exec_path"`
		UserAgent    string        `yaml:"user_agent"`
		NavTimeout   time.Duration `yaml:"nav_timeout"`
		ReadyTimeout time.Duration `yaml:"ready_timeout"`
	} `yaml:"browser"`

	Store struct {
		Kind  string `yaml:"kind"` // sqlite | xlsx | csv
		Path  string `yaml:"path"`
		Sheet string `yaml:"sheet"`
	} `yaml:"store"`

	Pacing struct {
		Page                 Range   `yaml:"page"`
		Keyword              Range   `yaml:"keyword"`
		Card                 Range   `yaml:"card"`
		NavigationsPerMinute float64 `yaml:"navigations_per_minute"`
	} `yaml:"pacing"`

	Platforms struct {
		LinkedIn Platform `yaml:"linkedin"`
		X        Platform `yaml:"x"`
	} `yaml:"platforms"`
}

func Default() Config {
	var cfg Config
	cfg.Log.Level = "info"

	cfg.Browser.ProfileDir = "browser_profile"
	cfg.Browser.NavTimeout = 60 * time.Second
	cfg.Browser.ReadyTimeout = 15 * time.Second

	cfg.Store.Kind = "sqlite"
	cfg.Store.Path = "leads.db"
	cfg.Store.Sheet = "Sheet1"

	cfg.Pacing.Page = Range{Min: 7 * time.Second, Max: 12 * time.Second}
	cfg.Pacing.Keyword = Range{Min: 2 * time.Second, Max: 2 * time.Second}
	cfg.Pacing.Card = Range{Min: 500 * time.Millisecond, Max: 1100 * time.Millisecond}

	cfg.Platforms.LinkedIn = Platform{
		Enabled:  true,
		LoginURL: "https://www.linkedin.com/",
		MaxPages: 10,
		Keywords: []string{
			`"Open to work"`,
			`"Available for freelance/consulting"`,
			`"Recently laid off"`,
			`"Available immediately"`,
			`"Actively seeking"`,
		},
	}
	cfg.Platforms.X = Platform{
		Enabled:     false,
		LoginURL:    "https://x.com/login",
		MaxScrolls:  8,
		ScrollDelta: 3000,
		Keywords: []string{
			"open to work",
			"seeking new opportunities",
			"actively looking",
			"job seeker",
			"available for hire",
			"freelance available",
			"looking for work",
			"unemployed",
		},
	}
	return cfg
}

// Load reads path over Default(), then applies LEADHUNT_* env overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	ApplyEnv(&cfg)
	return cfg, nil
}

// Resolve makes p absolute against the data dir unless it already is.
func (c Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.App.DataDir == "" {
		return p
	}
	return filepath.Join(c.App.DataDir, p)
}
