package tui

import (
	"strconv"
	"strings"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

const (
	minPlanWidth  = 20
	minPlanHeight = 10
)

// RenderFloorplan draws a top-down character view of a generated space:
// '#' for walls, '+' for doorways, 'o' for objects, and each room carries
// its numeric label in the top-left corner.
func RenderFloorplan(space domain.Space, width, height int) string {
	l := space.Layout
	if l.Dimensions[0] <= 0 || l.Dimensions[2] <= 0 {
		return "(empty layout)"
	}
	if width < minPlanWidth {
		width = minPlanWidth
	}
	if height < minPlanHeight {
		height = minPlanHeight
	}

	grid := make([][]rune, height)
	for i := range grid {
		row := make([]rune, width)
		for j := range row {
			row[j] = ' '
		}
		grid[i] = row
	}

	toCol := func(x float64) int {
		c := int(x / l.Dimensions[0] * float64(width-1))
		if c < 0 {
			c = 0
		}
		if c > width-1 {
			c = width - 1
		}
		return c
	}
	toRow := func(z float64) int {
		r := int(z / l.Dimensions[2] * float64(height-1))
		if r < 0 {
			r = 0
		}
		if r > height-1 {
			r = height - 1
		}
		return r
	}

	// Outer shell.
	drawRect(grid, 0, 0, height-1, width-1)

	for i, room := range l.Rooms {
		r0 := toRow(room.Position[2])
		c0 := toCol(room.Position[0])
		r1 := toRow(room.Position[2] + room.Size[2])
		c1 := toCol(room.Position[0] + room.Size[0])
		drawRect(grid, r0, c0, r1, c1)

		label := strconv.Itoa(i)
		lr, lc := r0+1, c0+1
		if lr < r1 && lc < c1 {
			for k, ch := range label {
				if lc+k >= c1 {
					break
				}
				grid[lr][lc+k] = ch
			}
		}
	}

	for _, o := range space.Objects {
		r := toRow(o.Position[2])
		c := toCol(o.Position[0])
		if grid[r][c] == ' ' {
			grid[r][c] = 'o'
		}
	}

	// Doorways punch through walls, so they draw last.
	for _, d := range l.Doorways {
		grid[toRow(d.Position[2])][toCol(d.Position[0])] = '+'
	}

	var b strings.Builder
	b.Grow(height * (width + 1))
	for i, row := range grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

func drawRect(grid [][]rune, r0, c0, r1, c1 int) {
	for c := c0; c <= c1; c++ {
		grid[r0][c] = '#'
		grid[r1][c] = '#'
	}
	for r := r0; r <= r1; r++ {
		grid[r][c0] = '#'
		grid[r][c1] = '#'
	}
}
