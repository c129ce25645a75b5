package config

// EndpointConfig describes one internal endpoint to fetch: the full pb URL
// captured from a browser session and the file the raw response is saved to.
type EndpointConfig struct {
	URL     string            `yaml:"url" validate:"omitempty,url"`
	Output  string            `yaml:"output"`
	Headers map[string]string `yaml:"headers"`
}

// FetchConfig contains the HTTP client configuration. Headers apply to every
// request; per-endpoint headers override them. The session cookie is never
// stored here, only the name of the environment variable that carries it.
type FetchConfig struct {
	CookieEnv string            `yaml:"cookieEnv"`
	UserAgent string            `yaml:"userAgent"`
	Headers   map[string]string `yaml:"headers"`
	Place     EndpointConfig    `yaml:"place"`
	Lines     EndpointConfig    `yaml:"lines"`
}

// ExtractConfig overrides the matcher thresholds. Zero values mean the
// extractor defaults.
type ExtractConfig struct {
	TimezoneLiteral      string  `yaml:"timezoneLiteral"`
	MinSequenceLen       int     `yaml:"minSequenceLen" validate:"gte=0"`
	MinSequenceMatches   int     `yaml:"minSequenceMatches" validate:"gte=0"`
	SequenceMatchDensity float64 `yaml:"sequenceMatchDensity" validate:"gte=0,lte=1"`
	MinEndpointPairLen   int     `yaml:"minEndpointPairLen" validate:"gte=0"`
	TimeBlockMaxDepth    int     `yaml:"timeBlockMaxDepth" validate:"gte=0"`
	MaxAbsLatitude       float64 `yaml:"maxAbsLatitude" validate:"gte=0"`
	MaxAbsLongitude      float64 `yaml:"maxAbsLongitude" validate:"gte=0"`
	BusIconMarker        string  `yaml:"busIconMarker"`
	BusModeMarker        string  `yaml:"busModeMarker"`
	BusSectionHeader     string  `yaml:"busSectionHeader"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Fetch   FetchConfig   `yaml:"fetch"`
	Extract ExtractConfig `yaml:"extract"`
}
