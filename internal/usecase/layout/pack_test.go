package layout

import (
	"math/rand"
	"testing"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

func roomsOverlap(a, b domain.Room) bool {
	ax, az := a.Position[0], a.Position[2]
	aw, ad := a.Size[0], a.Size[2]
	bx, bz := b.Position[0], b.Position[2]
	bw, bd := b.Size[0], b.Size[2]
	return ax < bx+bw && bx < ax+aw && az < bz+bd && bz < az+ad
}

func TestPackRoomsBoundsAndOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for seed := int64(1); seed <= 20; seed++ {
		rng.Seed(seed)
		rooms, _ := PackRooms(rng, domain.Vec3{50, 3.5, 30}, 5)

		if len(rooms) > 5 {
			t.Fatalf("seed %d: packed %d rooms, requested 5", seed, len(rooms))
		}
		for _, r := range rooms {
			if r.Position[0] < 0 || r.Position[2] < 0 ||
				r.Position[0]+r.Size[0] > 50 || r.Position[2]+r.Size[2] > 30 {
				t.Fatalf("seed %d: room %s out of bounds: pos=%v size=%v", seed, r.ID, r.Position, r.Size)
			}
			if r.Size[1] != 3.5 {
				t.Fatalf("room height %v, want space height 3.5", r.Size[1])
			}
			if r.Size[0] < 50/6 || r.Size[0] > 50/3 {
				t.Fatalf("room width %v outside [footprint/6, footprint/3]", r.Size[0])
			}
		}
		for i := range rooms {
			for j := i + 1; j < len(rooms); j++ {
				if roomsOverlap(rooms[i], rooms[j]) {
					t.Fatalf("seed %d: rooms %s and %s overlap", seed, rooms[i].ID, rooms[j].ID)
				}
			}
		}
	}
}

func TestPackRoomsDropPolicy(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	// 50 rooms cannot fit a 12x12 grid; the surplus must be dropped, not
	// reported as an error.
	rooms, _ := PackRooms(rng, domain.Vec3{12, 3, 12}, 50)
	if len(rooms) >= 50 {
		t.Fatalf("expected dropped rooms, packed %d of 50", len(rooms))
	}

	seen := map[string]bool{}
	for _, r := range rooms {
		if seen[r.ID] {
			t.Fatalf("duplicate room id %s", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestPackRoomsDegenerateFootprint(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	cases := []struct {
		name string
		size domain.Vec3
		n    int
	}{
		{"zero footprint", domain.Vec3{0, 3, 0}, 4},
		{"negative footprint", domain.Vec3{-10, 3, -10}, 4},
		{"negative room count", domain.Vec3{40, 3, 40}, -2},
		{"zero room count", domain.Vec3{40, 3, 40}, 0},
	}
	for _, tc := range cases {
		rooms, _ := PackRooms(rng, tc.size, tc.n)
		if len(rooms) != 0 {
			t.Errorf("%s: expected no rooms, got %d", tc.name, len(rooms))
		}
	}
}

func TestPackRoomsMarksGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	rooms, grid := PackRooms(rng, domain.Vec3{40, 3, 40}, 3)

	for _, r := range rooms {
		x, z := int(r.Position[0]), int(r.Position[2])
		w, d := int(r.Size[0]), int(r.Size[2])
		if w > 0 && d > 0 && grid.AnyFree(x, z, w, d) {
			t.Fatalf("room %s footprint still has free cells", r.ID)
		}
	}
}
