// Package furnish populates a styled layout with furnishing objects drawn
// from the active style's catalog.
package furnish

import (
	"math/rand"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

const (
	minObjects    = 5
	maxObjects    = 200
	areaPerObject = 10.0
	wallMargin    = 0.5
)

// TargetCount converts total floor area and a density factor into an object
// budget, clamped to [5, 200].
func TargetCount(totalArea, density float64) int {
	n := int(totalArea * density / areaPerObject)
	if n < minObjects {
		return minObjects
	}
	if n > maxObjects {
		return maxObjects
	}
	return n
}

// PlaceObjects scatters objects over the layout's rooms. The global budget is
// split across rooms proportionally to floor area, truncating per room, so
// the total placed may fall short of the budget. Positions snap to a grid of
// candidate coordinates inset half a meter from the room walls; rooms too
// narrow to hold the inset grid receive nothing.
func PlaceObjects(rng *rand.Rand, l domain.Layout, density float64) []domain.Object {
	objects := []domain.Object{}
	totalArea := 0.0
	for _, r := range l.Rooms {
		totalArea += r.Area()
	}
	if totalArea <= 0 {
		return objects
	}

	target := TargetCount(totalArea, density)
	types := flattenTypes(domain.ObjectsFor(l.Style))
	if len(types) == 0 {
		return objects
	}

	for _, room := range l.Rooms {
		count := int(float64(target) * (room.Area() / totalArea))
		if count <= 0 {
			continue
		}
		x, z := room.Position[0], room.Position[2]
		w, h, d := room.Size[0], room.Size[1], room.Size[2]
		xs := linspace(x+wallMargin, x+w-wallMargin, int(w-1))
		zs := linspace(z+wallMargin, z+d-wallMargin, int(d-1))
		if len(xs) == 0 || len(zs) == 0 {
			continue
		}
		for i := 0; i < count; i++ {
			objType := types[rng.Intn(len(types))]
			obj := domain.Object{
				Type: objType,
				Position: domain.Vec3{
					xs[rng.Intn(len(xs))],
					heightFor(objType, h),
					zs[rng.Intn(len(zs))],
				},
				Rotation: domain.Vec3{0, rng.Float64() * 360, 0},
				Size:     sizeFor(objType),
			}
			obj.Material, obj.Light = decorate(rng, objType, l.Style)
			objects = append(objects, obj)
		}
	}
	return objects
}

func flattenTypes(categories []domain.ObjectCategory) []string {
	var out []string
	for _, c := range categories {
		out = append(out, c.Types...)
	}
	return out
}

// linspace returns num evenly spaced values from start to stop inclusive.
func linspace(start, stop float64, num int) []float64 {
	if num <= 0 {
		return nil
	}
	if num == 1 {
		return []float64{start}
	}
	out := make([]float64, num)
	step := (stop - start) / float64(num-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
