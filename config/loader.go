package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultCookieEnv   = "GMAPS_COOKIE"
	defaultUserAgent   = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultPlaceOutput = "place_response.json"
	defaultLinesOutput = "transit_lines_response.json"
)

// Load reads and validates configuration. With an explicit path the file
// must exist; with an empty path the usual locations are probed and a
// missing file falls back to defaults, since extraction runs fine without
// any configuration at all.
func Load(path string) (AppConfig, error) {
	paths := []string{path}
	if path == "" {
		paths = []string{"config.yml", "config.yaml"}
	}

	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if path == "" && os.IsNotExist(err) {
			return Default(), nil
		}
		return AppConfig{}, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}

	v := validator.New()
	if err := v.Struct(cfg.Fetch); err != nil {
		return AppConfig{}, err
	}
	if err := v.Struct(cfg.Extract); err != nil {
		return AppConfig{}, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Default returns the configuration used when no file is present. Endpoint
// URLs stay empty; they carry session-specific pb blobs that cannot be
// defaulted.
func Default() AppConfig {
	var cfg AppConfig
	cfg.applyDefaults()
	return cfg
}

func (cfg *AppConfig) applyDefaults() {
	if cfg.Fetch.CookieEnv == "" {
		cfg.Fetch.CookieEnv = defaultCookieEnv
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = defaultUserAgent
	}
	if cfg.Fetch.Place.Output == "" {
		cfg.Fetch.Place.Output = defaultPlaceOutput
	}
	if cfg.Fetch.Lines.Output == "" {
		cfg.Fetch.Lines.Output = defaultLinesOutput
	}
	if cfg.Fetch.Headers == nil {
		cfg.Fetch.Headers = map[string]string{
			"accept":          "*/*",
			"accept-language": "en-IN,en;q=0.9",
			"referer":         "https://www.google.com/",
		}
	}
}
