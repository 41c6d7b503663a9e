package layout

import (
	"testing"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

func countKind(ss []domain.Surface, kind domain.SurfaceKind) int {
	n := 0
	for _, s := range ss {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

func TestSurfacesShellAlwaysEmitted(t *testing.T) {
	grid := domain.NewOccupancyGrid(0, 0)

	surfaces := Surfaces(grid, nil, domain.Vec3{0, 0, 0})
	if len(surfaces) != 6 {
		t.Fatalf("expected 6 shell surfaces for an empty layout, got %d", len(surfaces))
	}
	if countKind(surfaces, domain.SurfaceFloor) != 1 ||
		countKind(surfaces, domain.SurfaceCeiling) != 1 ||
		countKind(surfaces, domain.SurfaceWall) != 4 {
		t.Fatalf("unexpected shell composition: %+v", surfaces)
	}
}

func TestSurfacesShellGeometry(t *testing.T) {
	grid := domain.NewOccupancyGrid(20, 10)
	surfaces := Surfaces(grid, nil, domain.Vec3{20, 4, 10})

	floor := surfaces[0]
	if floor.Kind != domain.SurfaceFloor || floor.Position != (domain.Vec3{10, 0, 5}) {
		t.Fatalf("unexpected floor: %+v", floor)
	}
	if floor.Size != (domain.Vec3{20, 0.1, 10}) {
		t.Fatalf("unexpected floor size: %v", floor.Size)
	}

	ceiling := surfaces[1]
	if ceiling.Kind != domain.SurfaceCeiling || ceiling.Position != (domain.Vec3{10, 4, 5}) {
		t.Fatalf("unexpected ceiling: %+v", ceiling)
	}

	// Boundary walls sit centered at half height on each outer edge.
	wall := surfaces[2]
	if wall.Position != (domain.Vec3{10, 2, 0}) || wall.Size != (domain.Vec3{20, 4, 0.1}) {
		t.Fatalf("unexpected -z boundary wall: %+v", wall)
	}
	wall = surfaces[5]
	if wall.Position != (domain.Vec3{20, 2, 5}) || wall.Size != (domain.Vec3{0.1, 4, 10}) {
		t.Fatalf("unexpected +x boundary wall: %+v", wall)
	}
}

func TestSurfacesCornerRoomWalls(t *testing.T) {
	// A room in the grid corner: the two sides probing outside the grid get
	// walls, the two sides facing free floor stay open.
	grid := domain.NewOccupancyGrid(10, 10)
	grid.Occupy(0, 0, 4, 4)
	rooms := []domain.Room{
		{ID: "room_0", Position: domain.Vec3{0, 0, 0}, Size: domain.Vec3{4, 3, 4}},
	}

	surfaces := Surfaces(grid, rooms, domain.Vec3{10, 3, 10})
	inner := surfaces[6:]
	if len(inner) != 2 {
		t.Fatalf("expected 2 interior walls for a corner room, got %d", len(inner))
	}

	if inner[0].Position != (domain.Vec3{0, 1.5, 2}) || inner[0].Size != (domain.Vec3{0.1, 3, 4}) {
		t.Fatalf("unexpected -x interior wall: %+v", inner[0])
	}
	if inner[1].Position != (domain.Vec3{2, 1.5, 0}) || inner[1].Size != (domain.Vec3{4, 3, 0.1}) {
		t.Fatalf("unexpected -z interior wall: %+v", inner[1])
	}
}

func TestSurfacesAdjacentRoomsBothWall(t *testing.T) {
	// Two rooms sharing a boundary: the probe sees occupied cells on both
	// sides, so both rooms wall the shared edge. That doubling is part of the
	// heuristic and is preserved as-is.
	grid := domain.NewOccupancyGrid(8, 4)
	grid.Occupy(0, 0, 4, 4)
	grid.Occupy(4, 0, 4, 4)
	rooms := []domain.Room{
		{ID: "room_0", Position: domain.Vec3{0, 0, 0}, Size: domain.Vec3{4, 3, 4}},
		{ID: "room_1", Position: domain.Vec3{4, 0, 0}, Size: domain.Vec3{4, 3, 4}},
	}

	surfaces := Surfaces(grid, rooms, domain.Vec3{8, 3, 4})
	inner := surfaces[6:]
	if len(inner) != 8 {
		t.Fatalf("expected 8 interior walls (4 per fully enclosed room), got %d", len(inner))
	}

	sharedAt4 := 0
	for _, s := range inner {
		if s.Position[0] == 4 && s.Size[0] == 0.1 {
			sharedAt4++
		}
	}
	if sharedAt4 != 2 {
		t.Fatalf("expected both rooms to wall the shared x=4 boundary, got %d walls", sharedAt4)
	}
}

func TestSurfacesRoomFacingFreeFloorIsOpen(t *testing.T) {
	// A room fully surrounded by free floor gets no interior walls at all.
	grid := domain.NewOccupancyGrid(12, 12)
	grid.Occupy(4, 4, 3, 3)
	rooms := []domain.Room{
		{ID: "room_0", Position: domain.Vec3{4, 0, 4}, Size: domain.Vec3{3, 3, 3}},
	}

	surfaces := Surfaces(grid, rooms, domain.Vec3{12, 3, 12})
	if len(surfaces) != 6 {
		t.Fatalf("expected only the shell, got %d surfaces", len(surfaces))
	}
}
