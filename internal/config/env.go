package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const envPrefix = "LEADHUNT_"

// LoadDotEnv loads .env from the working directory and from each dir.
// Variables already set win; missing files are ignored.
func LoadDotEnv(dirs ...string) error {
	paths := []string{".env"}
	for _, d := range dirs {
		paths = append(paths, filepath.Join(d, ".env"))
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// ApplyEnv overrides selected fields from LEADHUNT_* variables.
func ApplyEnv(cfg *Config) {
	if v := env("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := env("HEADLESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Browser.Headless = b
		}
	}
	if v := env("CHROME_PATH"); v != "" {
		cfg.Browser.ExecPath = v
	}
	if v := env("STORE_KIND"); v != "" {
		cfg.Store.Kind = v
	}
	if v := env("STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(envPrefix + key))
}
