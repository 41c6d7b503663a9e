package config

// ConfigDTO mirrors the on-disk settings file. Every field is optional;
// absent fields keep their defaults, including inside nested sections.
type ConfigDTO struct {
	Resolution               *int     `yaml:"resolution" json:"resolution"`
	MaxResolution            *int     `yaml:"max_resolution" json:"max_resolution"`
	DefaultRoomCount         *int     `yaml:"default_room_count" json:"default_room_count"`
	DefaultObjectCount       *int     `yaml:"default_object_count" json:"default_object_count"`
	DefaultStyle             *string  `yaml:"default_style" json:"default_style"`
	SupportedStyles          []string `yaml:"supported_styles" json:"supported_styles"`
	SupportedObjects         []string `yaml:"supported_objects" json:"supported_objects"`
	UseHomomorphicEncryption *bool    `yaml:"use_homomorphic_encryption" json:"use_homomorphic_encryption"`
	UseEdgeAI                *bool    `yaml:"use_edge_ai" json:"use_edge_ai"`

	ModelParams *ModelParamsDTO `yaml:"model_params" json:"model_params"`
	Paths       *PathsDTO       `yaml:"paths" json:"paths"`
}

type ModelParamsDTO struct {
	LatentDim             *int `yaml:"latent_dim" json:"latent_dim"`
	StyleDim              *int `yaml:"style_dim" json:"style_dim"`
	LayoutEncoderLayers   *int `yaml:"layout_encoder_layers" json:"layout_encoder_layers"`
	ObjectGeneratorLayers *int `yaml:"object_generator_layers" json:"object_generator_layers"`
}

type PathsDTO struct {
	SpacesDir *string `yaml:"spaces_dir" json:"spaces_dir"`
}
