package layout

import (
	"math"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

// Doorways converts room connectivity into doorway cutouts. Connections are
// stored symmetrically and every room's own connection list is walked, so
// each undirected edge yields two doorway records; the pair coincides
// numerically because the placement math is symmetric in its endpoints.
// Consumers that want one cutout per edge de-duplicate downstream.
func Doorways(rooms []domain.Room) []domain.Doorway {
	byID := make(map[string]domain.Room, len(rooms))
	for _, r := range rooms {
		byID[r.ID] = r
	}

	doorways := []domain.Doorway{}
	for _, r := range rooms {
		for _, connID := range r.Connections {
			c, ok := byID[connID]
			if !ok {
				continue
			}
			if dw, ok := doorwayBetween(r, c); ok {
				doorways = append(doorways, dw)
			}
		}
	}
	return doorways
}

// doorwayBetween places a doorway on the boundary between two connected
// rooms. X-axis interval overlap is checked first and wins; rooms disjoint on
// both axes (diagonal neighbors) get no doorway.
func doorwayBetween(a, b domain.Room) (domain.Doorway, bool) {
	ax, az := a.Position[0], a.Position[2]
	aw, ad := a.Size[0], a.Size[2]
	bx, bz := b.Position[0], b.Position[2]
	bw, bd := b.Size[0], b.Size[2]

	if ax <= bx+bw && ax+aw >= bx {
		// Doorway at the midpoint of the overlapping x-interval, on the z
		// boundary nearer the other room, facing along z.
		lo := math.Max(ax, bx)
		hi := math.Min(ax+aw, bx+bw)
		doorX := lo + math.Abs(lo-hi)/2

		doorZ := math.Min(az+ad, bz)
		if az >= bz {
			doorZ = math.Min(bz+bd, az)
		}

		return domain.Doorway{
			Position: domain.Vec3{doorX, 0, doorZ},
			Rotation: domain.Vec3{0, 90, 0},
			Size:     domain.DoorwaySize,
		}, true
	}

	if az <= bz+bd && az+ad >= bz {
		lo := math.Max(az, bz)
		hi := math.Min(az+ad, bz+bd)
		doorZ := lo + math.Abs(lo-hi)/2

		doorX := math.Min(ax+aw, bx)
		if ax >= bx {
			doorX = math.Min(bx+bw, ax)
		}

		return domain.Doorway{
			Position: domain.Vec3{doorX, 0, doorZ},
			Rotation: domain.Vec3{0, 0, 0},
			Size:     domain.DoorwaySize,
		}, true
	}

	return domain.Doorway{}, false
}
