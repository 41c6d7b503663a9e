// Package layout implements the spatial stages of the generation pipeline:
// room packing, connectivity, surface synthesis, and doorway synthesis.
package layout

import (
	"fmt"
	"math/rand"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

// placementAttempts caps how many random positions are tried per room before
// the room is dropped.
const placementAttempts = 100

// PackRooms greedily packs up to roomCount non-overlapping room footprints
// into an occupancy grid over the integer-truncated (width × depth) plane.
// Room widths and depths are sampled uniformly from [axis/6, axis/3]. A room
// that cannot be placed within placementAttempts tries is silently omitted,
// so the result may hold fewer than roomCount rooms; ids keep the attempt
// index, so they are unique but not necessarily contiguous.
//
// The returned grid is the packing result; callers hand it read-only to the
// surface stage and discard it afterwards.
func PackRooms(rng *rand.Rand, size domain.Vec3, roomCount int) ([]domain.Room, *domain.OccupancyGrid) {
	width, height, depth := size[0], size[1], size[2]
	gw, gd := int(width), int(depth)

	grid := domain.NewOccupancyGrid(gw, gd)
	rooms := []domain.Room{}
	if gw <= 0 || gd <= 0 || roomCount <= 0 {
		return rooms, grid
	}

	for i := 0; i < roomCount; i++ {
		rw := randInt(rng, gw/6, gw/3)
		rd := randInt(rng, gd/6, gd/3)

		placed := false
		var x, z int
		for attempts := 0; attempts < placementAttempts && !placed; attempts++ {
			x = randInt(rng, 0, gw-rw)
			z = randInt(rng, 0, gd-rd)
			if grid.RegionFree(x, z, rw, rd) {
				grid.Occupy(x, z, rw, rd)
				placed = true
			}
		}
		if !placed {
			continue
		}

		rooms = append(rooms, domain.Room{
			ID:          fmt.Sprintf("room_%d", i),
			Position:    domain.Vec3{float64(x), 0, float64(z)},
			Size:        domain.Vec3{float64(rw), height, float64(rd)},
			Connections: []string{},
		})
	}

	return rooms, grid
}

// randInt samples an integer from [lo, hi], both bounds inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
