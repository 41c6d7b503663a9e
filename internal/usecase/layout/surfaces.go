package layout

import (
	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

// slabThickness is the extent of walls, floors, and ceilings along their thin
// axis.
const slabThickness = 0.1

// Surfaces emits the outer shell plus per-room interior walls.
//
// The shell is always six surfaces regardless of the room layout: floor and
// ceiling spanning the full footprint, and one boundary wall per outer edge,
// centered at half height.
//
// For each room, a one-cell probe strip is taken from the occupancy grid just
// outside each of its four sides; a wall is emitted on a side only when that
// strip holds no free cell (the strip is covered by another footprint or lies
// outside the grid). The heuristic therefore walls rooms off against occupied
// neighbors and the boundary, and leaves sides facing untouched floor open.
func Surfaces(grid *domain.OccupancyGrid, rooms []domain.Room, size domain.Vec3) []domain.Surface {
	width, height, depth := size[0], size[1], size[2]

	surfaces := make([]domain.Surface, 0, 6+4*len(rooms))

	surfaces = append(surfaces,
		domain.Surface{
			Kind:     domain.SurfaceFloor,
			Position: domain.Vec3{width / 2, 0, depth / 2},
			Size:     domain.Vec3{width, slabThickness, depth},
		},
		domain.Surface{
			Kind:     domain.SurfaceCeiling,
			Position: domain.Vec3{width / 2, height, depth / 2},
			Size:     domain.Vec3{width, slabThickness, depth},
		},
		domain.Surface{
			Kind:     domain.SurfaceWall,
			Position: domain.Vec3{width / 2, height / 2, 0},
			Size:     domain.Vec3{width, height, slabThickness},
		},
		domain.Surface{
			Kind:     domain.SurfaceWall,
			Position: domain.Vec3{width / 2, height / 2, depth},
			Size:     domain.Vec3{width, height, slabThickness},
		},
		domain.Surface{
			Kind:     domain.SurfaceWall,
			Position: domain.Vec3{0, height / 2, depth / 2},
			Size:     domain.Vec3{slabThickness, height, depth},
		},
		domain.Surface{
			Kind:     domain.SurfaceWall,
			Position: domain.Vec3{width, height / 2, depth / 2},
			Size:     domain.Vec3{slabThickness, height, depth},
		},
	)

	for _, r := range rooms {
		x, z := int(r.Position[0]), int(r.Position[2])
		w, d := int(r.Size[0]), int(r.Size[2])

		fx, fz := r.Position[0], r.Position[2]
		fw, h, fd := r.Size[0], r.Size[1], r.Size[2]

		if !grid.AnyFree(x-1, z, 1, d) {
			surfaces = append(surfaces, domain.Surface{
				Kind:     domain.SurfaceWall,
				Position: domain.Vec3{fx, h / 2, fz + fd/2},
				Size:     domain.Vec3{slabThickness, h, fd},
			})
		}
		if !grid.AnyFree(x+w, z, 1, d) {
			surfaces = append(surfaces, domain.Surface{
				Kind:     domain.SurfaceWall,
				Position: domain.Vec3{fx + fw, h / 2, fz + fd/2},
				Size:     domain.Vec3{slabThickness, h, fd},
			})
		}
		if !grid.AnyFree(x, z-1, w, 1) {
			surfaces = append(surfaces, domain.Surface{
				Kind:     domain.SurfaceWall,
				Position: domain.Vec3{fx + fw/2, h / 2, fz},
				Size:     domain.Vec3{fw, h, slabThickness},
			})
		}
		if !grid.AnyFree(x, z+d, w, 1) {
			surfaces = append(surfaces, domain.Surface{
				Kind:     domain.SurfaceWall,
				Position: domain.Vec3{fx + fw/2, h / 2, fz + fd},
				Size:     domain.Vec3{fw, h, slabThickness},
			})
		}
	}

	return surfaces
}
