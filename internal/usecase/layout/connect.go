package layout

import (
	"math/rand"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

// connectProbability is the chance that any given pair of rooms gets a
// connection.
const connectProbability = 0.7

// Edge is an undirected connection between two rooms, stored once per pair.
type Edge struct {
	A string
	B string
}

// Connect flips a weighted coin for every unordered pair of rooms. A hit
// records the connection in both rooms' connection sets (the relation is kept
// symmetric) and once in the returned edge set. No path-connectivity is
// guaranteed: the graph may be disconnected and a room may end up with zero
// connections.
func Connect(rng *rand.Rand, rooms []domain.Room) []Edge {
	edges := []Edge{}
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if rng.Float64() < connectProbability {
				rooms[i].Connections = append(rooms[i].Connections, rooms[j].ID)
				rooms[j].Connections = append(rooms[j].Connections, rooms[i].ID)
				edges = append(edges, Edge{A: rooms[i].ID, B: rooms[j].ID})
			}
		}
	}
	return edges
}
