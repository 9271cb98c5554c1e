// config/overlay.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// KeywordsFile is the optional keywords.yml next to config.yml.
type KeywordsFile struct {
	LinkedIn []string `yaml:"linkedin"`
	X        []string `yaml:"x"`
}

// OverlayKeywords replaces per-platform keyword lists with the non-empty
// lists found in path.
func OverlayKeywords(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		// Missing keywords file should not kill startup
		return nil
	}

	var kf KeywordsFile
	if err := yaml.Unmarshal(b, &kf); err != nil {
		return err
	}

	if len(kf.LinkedIn) > 0 {
		cfg.Platforms.LinkedIn.Keywords = kf.LinkedIn
	}
	if len(kf.X) > 0 {
		cfg.Platforms.X.Keywords = kf.X
	}
	return nil
}
