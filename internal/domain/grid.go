package domain

// OccupancyGrid is a 2D boolean grid over (width × depth) cells used while
// packing rooms; true means the cell is still free. It is mutated only during
// packing and handed to the surface stage read-only afterwards.
type OccupancyGrid struct {
	width int
	depth int
	free  []bool
}

// NewOccupancyGrid returns a fully free grid. Non-positive dimensions yield an
// empty grid in which nothing can be placed.
func NewOccupancyGrid(width, depth int) *OccupancyGrid {
	if width < 0 {
		width = 0
	}
	if depth < 0 {
		depth = 0
	}
	g := &OccupancyGrid{
		width: width,
		depth: depth,
		free:  make([]bool, width*depth),
	}
	for i := range g.free {
		g.free[i] = true
	}
	return g
}

func (g *OccupancyGrid) Width() int { return g.width }
func (g *OccupancyGrid) Depth() int { return g.depth }

// RegionFree reports whether every cell of the (x, z, w, d) sub-rectangle is
// free. Regions that reach outside the grid are never free.
func (g *OccupancyGrid) RegionFree(x, z, w, d int) bool {
	if x < 0 || z < 0 || x+w > g.width || z+d > g.depth {
		return false
	}
	for i := x; i < x+w; i++ {
		for j := z; j < z+d; j++ {
			if !g.free[i*g.depth+j] {
				return false
			}
		}
	}
	return true
}

// Occupy marks every cell of the sub-rectangle as taken. Cells outside the
// grid are ignored.
func (g *OccupancyGrid) Occupy(x, z, w, d int) {
	for i := x; i < x+w; i++ {
		if i < 0 || i >= g.width {
			continue
		}
		for j := z; j < z+d; j++ {
			if j < 0 || j >= g.depth {
				continue
			}
			g.free[i*g.depth+j] = false
		}
	}
}

// AnyFree reports whether any in-bounds cell of the sub-rectangle is free.
// Cells outside the grid are skipped, so a strip lying fully out of bounds
// has no free cell. The wall-emission probe depends on exactly this reading.
func (g *OccupancyGrid) AnyFree(x, z, w, d int) bool {
	for i := x; i < x+w; i++ {
		if i < 0 || i >= g.width {
			continue
		}
		for j := z; j < z+d; j++ {
			if j < 0 || j >= g.depth {
				continue
			}
			if g.free[i*g.depth+j] {
				return true
			}
		}
	}
	return false
}
