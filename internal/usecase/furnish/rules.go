package furnish

import (
	"math/rand"
	"strings"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

// The size, height, and material chains below are ordered: the first matching
// rule wins, and the order is part of the contract. Every predicate is a
// substring match against the object type tag.

func anyOf(subs ...string) func(string) bool {
	return func(t string) bool {
		for _, s := range subs {
			if strings.Contains(t, s) {
				return true
			}
		}
		return false
	}
}

func allOf(subs ...string) func(string) bool {
	return func(t string) bool {
		for _, s := range subs {
			if !strings.Contains(t, s) {
				return false
			}
		}
		return true
	}
}

type sizeRule struct {
	match func(string) bool
	size  domain.Vec3
}

var sizeRules = []sizeRule{
	{match: anyOf("sofa", "table_dining"), size: domain.Vec3{2.0, 0.8, 0.8}},
	{match: anyOf("table", "desk"), size: domain.Vec3{1.2, 0.75, 0.6}},
	{match: anyOf("chair", "stool"), size: domain.Vec3{0.5, 0.8, 0.5}},
	{match: allOf("lamp", "floor"), size: domain.Vec3{0.4, 1.5, 0.4}},
	{match: allOf("plant", "large"), size: domain.Vec3{0.7, 1.8, 0.7}},
	{match: anyOf("shelf", "bookcase"), size: domain.Vec3{1.2, 1.8, 0.4}},
}

var defaultObjectSize = domain.Vec3{0.4, 0.4, 0.4}

// sizeFor derives an object's footprint from its type tag.
func sizeFor(objType string) domain.Vec3 {
	for _, r := range sizeRules {
		if r.match(objType) {
			return r.size
		}
	}
	return defaultObjectSize
}

const tableTopHeight = 0.75

type heightRule struct {
	match func(string) bool
	y     func(roomHeight float64) float64
}

var heightRules = []heightRule{
	// Pendants hang near the ceiling.
	{match: anyOf("pendant"), y: func(h float64) float64 { return h - 1.0 }},
	// Table lamps and vases sit at table height.
	{match: anyOf("lamp_table", "vase"), y: func(float64) float64 { return tableTopHeight }},
	// Floor-sitting furniture.
	{match: anyOf("sofa", "table", "desk", "chair", "stool"), y: func(float64) float64 { return 0 }},
}

// heightFor derives an object's vertical offset from its type tag; anything
// unmatched sits on the ground.
func heightFor(objType string, roomHeight float64) float64 {
	for _, r := range heightRules {
		if r.match(objType) {
			return r.y(roomHeight)
		}
	}
	return 0
}

// Seating matchers: "seating" is a category name, not a type tag, and sits
// ahead of the sofa/chair checks all the same.
var (
	matchSeat  = anyOf("seating", "sofa", "chair")
	matchTable = anyOf("table", "desk")
	matchLamp  = anyOf("lamp", "light")
)

// decorate derives an object's material and optional attached light from its
// type tag and the active style. Lamp-like objects get a light instead of a
// material; cyberpunk lamps pick one of three neon colors at random.
func decorate(rng *rand.Rand, objType, styleID string) (*domain.Material, *domain.ObjectLight) {
	switch {
	case matchSeat(objType):
		m := domain.SeatMaterialFor(styleID)
		return &m, nil
	case matchTable(objType):
		m := domain.TableMaterialFor(styleID)
		return &m, nil
	case matchLamp(objType):
		color := domain.LampColorFor(styleID)
		if styleID == "cyberpunk" {
			color = domain.CyberpunkNeonColors[rng.Intn(len(domain.CyberpunkNeonColors))]
		}
		return nil, &domain.ObjectLight{Color: color, Intensity: 0.7, Range: 5.0}
	}
	return nil, nil
}
