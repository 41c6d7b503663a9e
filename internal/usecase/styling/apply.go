// Package styling applies a style catalog entry to a layout: surface
// materials, the style's lighting recipe, and the environment map id.
package styling

import (
	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

// Apply themes the layout in place. Every surface gets the material matching
// its kind (anything that is not a wall, floor, or ceiling gets the accent
// material), the style family's lighting recipe runs per room, and a single
// global ambient light is appended last for every style.
func Apply(l *domain.Layout, styleID string) {
	wall, floor, ceiling, accent := domain.MaterialsFor(styleID)

	for i := range l.Surfaces {
		switch l.Surfaces[i].Kind {
		case domain.SurfaceWall:
			l.Surfaces[i].Material = wall
		case domain.SurfaceFloor:
			l.Surfaces[i].Material = floor
		case domain.SurfaceCeiling:
			l.Surfaces[i].Material = ceiling
		default:
			l.Surfaces[i].Material = accent
		}
	}

	l.Lights = lightsFor(styleID, l.Rooms)
	l.Style = styleID
	l.Environment = domain.EnvironmentFor(styleID)
}

// fantasyCornerColors is the 4-color rotation for fantasy corner accents.
var fantasyCornerColors = []domain.Vec3{
	{1.0, 0.3, 0.7},
	{0.3, 0.7, 1.0},
	{0.7, 1.0, 0.3},
	{0.5, 0.3, 1.0},
}

func lightsFor(styleID string, rooms []domain.Room) []domain.Light {
	lights := []domain.Light{}

	for _, r := range rooms {
		x, z := r.Position[0], r.Position[2]
		w, h, d := r.Size[0], r.Size[1], r.Size[2]

		switch styleID {
		case "modern", "minimalist":
			lights = append(lights, domain.Light{
				Kind:      domain.LightPoint,
				Position:  at(x+w/2, h-0.5, z+d/2),
				Color:     domain.Vec3{1.0, 0.98, 0.92},
				Intensity: 0.8,
				Range:     maxf(w, d) * 1.5,
			})

		case "futuristic", "cyberpunk":
			stripColor := domain.Vec3{0.9, 0.95, 1.0}
			if styleID == "cyberpunk" {
				stripColor = domain.Vec3{0.5, 0.0, 1.0}
			}
			lights = append(lights, domain.Light{
				Kind:      domain.LightRect,
				Position:  at(x+w/2, h-0.1, z+d/2),
				Size:      at(w*0.8, 0.1, d*0.8),
				Color:     stripColor,
				Intensity: 0.6,
				Range:     maxf(w, d) * 1.2,
			})
			if styleID == "cyberpunk" {
				lights = append(lights, domain.Light{
					Kind:      domain.LightRect,
					Position:  at(x, h/2, z+d/2),
					Size:      at(0.1, h*0.5, d*0.6),
					Color:     domain.Vec3{0.0, 0.8, 0.9},
					Intensity: 0.4,
					Range:     d * 0.8,
				})
			}

		case "natural":
			lights = append(lights,
				domain.Light{
					Kind:      domain.LightPoint,
					Position:  at(x+w/2, h-0.5, z+d/2),
					Color:     domain.Vec3{1.0, 0.9, 0.8},
					Intensity: 0.7,
					Range:     maxf(w, d) * 1.5,
				},
				domain.Light{
					Kind:      domain.LightPoint,
					Position:  at(x+w*0.25, h/3, z+d*0.25),
					Color:     domain.Vec3{0.9, 0.8, 0.7},
					Intensity: 0.4,
					Range:     5.0,
				},
			)

		case "fantasy":
			lights = append(lights, domain.Light{
				Kind:      domain.LightPoint,
				Position:  at(x+w/2, h/2, z+d/2),
				Color:     domain.Vec3{0.8, 0.5, 1.0},
				Intensity: 0.5,
				Range:     maxf(w, d) * 2.0,
			})
			corners := []domain.Vec3{
				{x + w*0.2, h * 0.7, z + d*0.2},
				{x + w*0.8, h * 0.7, z + d*0.2},
				{x + w*0.2, h * 0.7, z + d*0.8},
				{x + w*0.8, h * 0.7, z + d*0.8},
			}
			for i, corner := range corners {
				c := corner
				lights = append(lights, domain.Light{
					Kind:      domain.LightPoint,
					Position:  &c,
					Color:     fantasyCornerColors[i%len(fantasyCornerColors)],
					Intensity: 0.3,
					Range:     3.0,
				})
			}
		}
	}

	lights = append(lights, domain.Light{
		Kind:      domain.LightAmbient,
		Color:     domain.Vec3{1.0, 1.0, 1.0},
		Intensity: 0.2,
	})

	return lights
}

func at(x, y, z float64) *domain.Vec3 {
	v := domain.Vec3{x, y, z}
	return &v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
