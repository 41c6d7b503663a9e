package domain

// FallbackStyle is the style used when a request names one the configuration
// does not support. It is fixed, independent of the configured default.
const FallbackStyle = "modern"

// Config is the generator configuration. A config file (JSON or YAML) is
// deep-merged over DefaultConfig by the infra/config loader: nested mapping
// keys merge recursively, everything else overwrites.
type Config struct {
	Resolution               int
	MaxResolution            int
	DefaultRoomCount         int
	DefaultObjectCount       int
	DefaultStyle             string
	SupportedStyles          []string
	SupportedObjects         []string
	UseHomomorphicEncryption bool
	UseEdgeAI                bool
	ModelParams              ModelParams
	Paths                    PathsConfig
}

// ModelParams sizes the (external) feature-extraction models. Only LatentDim
// affects generation here: it is the feature vector length.
type ModelParams struct {
	LatentDim             int
	StyleDim              int
	LayoutEncoderLayers   int
	ObjectGeneratorLayers int
}

type PathsConfig struct {
	SpacesDir string
}

// SupportsStyle reports whether a style id is in the supported list.
func (c Config) SupportsStyle(id string) bool {
	for _, s := range c.SupportedStyles {
		if s == id {
			return true
		}
	}
	return false
}

// DefaultConfig provides the built-in defaults a config file merges over.
func DefaultConfig() Config {
	return Config{
		Resolution:         256,
		MaxResolution:      1024,
		DefaultRoomCount:   3,
		DefaultObjectCount: 20,
		DefaultStyle:       FallbackStyle,
		SupportedStyles: []string{
			"modern", "futuristic", "natural", "fantasy", "cyberpunk", "minimalist",
		},
		SupportedObjects: []string{
			"chair", "table", "light", "plant", "wall", "floor", "ceiling", "window", "door",
		},
		UseHomomorphicEncryption: false,
		UseEdgeAI:                true,
		ModelParams: ModelParams{
			LatentDim:             256,
			StyleDim:              64,
			LayoutEncoderLayers:   4,
			ObjectGeneratorLayers: 3,
		},
		Paths: PathsConfig{
			SpacesDir: "spaces",
		},
	}
}
