package config

import "github.com/JJshome/VirtualSpaceTokenization/internal/domain"

// Map overlays the DTO's set fields on the default configuration. Nested
// sections merge field by field, so a file that only sets
// model_params.latent_dim keeps the other model parameters.
func Map(dto ConfigDTO) domain.Config {
	cfg := domain.DefaultConfig()

	setInt(&cfg.Resolution, dto.Resolution)
	setInt(&cfg.MaxResolution, dto.MaxResolution)
	setInt(&cfg.DefaultRoomCount, dto.DefaultRoomCount)
	setInt(&cfg.DefaultObjectCount, dto.DefaultObjectCount)
	setString(&cfg.DefaultStyle, dto.DefaultStyle)
	if dto.SupportedStyles != nil {
		cfg.SupportedStyles = dto.SupportedStyles
	}
	if dto.SupportedObjects != nil {
		cfg.SupportedObjects = dto.SupportedObjects
	}
	setBool(&cfg.UseHomomorphicEncryption, dto.UseHomomorphicEncryption)
	setBool(&cfg.UseEdgeAI, dto.UseEdgeAI)

	if mp := dto.ModelParams; mp != nil {
		setInt(&cfg.ModelParams.LatentDim, mp.LatentDim)
		setInt(&cfg.ModelParams.StyleDim, mp.StyleDim)
		setInt(&cfg.ModelParams.LayoutEncoderLayers, mp.LayoutEncoderLayers)
		setInt(&cfg.ModelParams.ObjectGeneratorLayers, mp.ObjectGeneratorLayers)
	}
	if p := dto.Paths; p != nil {
		setString(&cfg.Paths.SpacesDir, p.SpacesDir)
	}

	return cfg
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
