package domain

// StyleSpec is one entry of the fixed style catalog: surface materials, the
// environment map id, the furnishing type catalog, and the object material
// palette used by placement rules.
type StyleSpec struct {
	ID          string
	Wall        Material
	Floor       Material
	Ceiling     Material
	Accent      Material
	Environment string
	Objects     []ObjectCategory
	Seat        Material
	Table       Material
	Lamp        Vec3
}

// ObjectCategory is a named list of furnishing type tags.
type ObjectCategory struct {
	Name  string
	Types []string
}

// NeutralEnvironment is the environment map id used for style ids that have
// no catalog entry.
const NeutralEnvironment = "neutral"

// warmLampColor is the default attached-light color for lamp objects.
var warmLampColor = Vec3{1.0, 0.9, 0.8}

// CyberpunkNeonColors are the candidate attached-light colors for cyberpunk
// lamps; one is picked at random per lamp.
var CyberpunkNeonColors = []Vec3{
	{1.0, 0.2, 0.5},
	{0.2, 0.8, 1.0},
	{0.8, 0.2, 1.0},
}

func metallic(v float64) *float64 { return &v }
func emissive(v Vec3) *Vec3       { return &v }

var styleCatalog = map[string]StyleSpec{
	"modern": {
		ID:          "modern",
		Wall:        Material{Color: Vec3{0.95, 0.95, 0.95}, Roughness: 0.1, Metallic: metallic(0.0)},
		Floor:       Material{Color: Vec3{0.7, 0.7, 0.7}, Roughness: 0.2, Metallic: metallic(0.0)},
		Ceiling:     Material{Color: Vec3{0.98, 0.98, 0.98}, Roughness: 0.1, Metallic: metallic(0.0)},
		Accent:      Material{Color: Vec3{0.2, 0.4, 0.8}, Roughness: 0.2, Metallic: metallic(0.0)},
		Environment: "modern_interior",
		Objects: []ObjectCategory{
			{Name: "seating", Types: []string{"sofa_modern", "chair_accent", "chair_office", "stool_bar"}},
			{Name: "tables", Types: []string{"table_coffee", "table_dining", "desk_modern", "counter_kitchen"}},
			{Name: "storage", Types: []string{"shelf_wall", "cabinet_modern", "bookcase_open"}},
			{Name: "lighting", Types: []string{"lamp_floor", "lamp_table", "pendant_light"}},
			{Name: "decor", Types: []string{"plant_potted", "rug_area", "artwork_canvas", "vase_decorative"}},
		},
		Seat:  Material{Color: Vec3{0.3, 0.3, 0.3}, Roughness: 0.8},
		Table: Material{Color: Vec3{0.8, 0.8, 0.8}, Roughness: 0.3, Metallic: metallic(0.1)},
		Lamp:  warmLampColor,
	},
	"futuristic": {
		ID:          "futuristic",
		Wall:        Material{Color: Vec3{0.1, 0.1, 0.12}, Roughness: 0.05, Metallic: metallic(0.5)},
		Floor:       Material{Color: Vec3{0.2, 0.2, 0.22}, Roughness: 0.1, Metallic: metallic(0.7)},
		Ceiling:     Material{Color: Vec3{0.05, 0.05, 0.08}, Roughness: 0.05, Metallic: metallic(0.5)},
		Accent:      Material{Color: Vec3{0.0, 0.8, 0.9}, Roughness: 0.1, Metallic: metallic(0.8)},
		Environment: "scifi_lab",
		Objects: []ObjectCategory{
			{Name: "seating", Types: []string{"chair_hover", "sofa_modular", "stool_interactive"}},
			{Name: "tables", Types: []string{"table_floating", "desk_holographic", "console_control"}},
			{Name: "storage", Types: []string{"unit_wall", "locker_secure", "display_digital"}},
			{Name: "lighting", Types: []string{"light_ambient", "projector_hologram", "strip_led"}},
			{Name: "decor", Types: []string{"sculpture_dynamic", "plant_synthetic", "panel_interactive"}},
		},
		Seat:  Material{Color: Vec3{0.1, 0.1, 0.15}, Roughness: 0.2, Metallic: metallic(0.5)},
		Table: Material{Color: Vec3{0.9, 0.9, 0.95}, Roughness: 0.1, Metallic: metallic(0.8)},
		Lamp:  Vec3{0.9, 0.95, 1.0},
	},
	"natural": {
		ID:          "natural",
		Wall:        Material{Color: Vec3{0.9, 0.85, 0.78}, Roughness: 0.8, Metallic: metallic(0.0)},
		Floor:       Material{Color: Vec3{0.65, 0.55, 0.45}, Roughness: 0.9, Metallic: metallic(0.0)},
		Ceiling:     Material{Color: Vec3{0.9, 0.87, 0.82}, Roughness: 0.7, Metallic: metallic(0.0)},
		Accent:      Material{Color: Vec3{0.2, 0.6, 0.3}, Roughness: 0.8, Metallic: metallic(0.0)},
		Environment: "forest_clearing",
		Objects: []ObjectCategory{
			{Name: "seating", Types: []string{"chair_wooden", "bench_rustic", "sofa_earthy", "hammock_woven"}},
			{Name: "tables", Types: []string{"table_log", "table_farmhouse", "desk_wooden"}},
			{Name: "storage", Types: []string{"shelf_reclaimed", "chest_wooden", "basket_woven"}},
			{Name: "lighting", Types: []string{"lamp_paper", "lantern_hanging", "sconce_organic"}},
			{Name: "decor", Types: []string{"plant_large", "plant_hanging", "rug_natural", "fountain_stone", "mobile_wood"}},
		},
		Seat:  Material{Color: Vec3{0.6, 0.5, 0.4}, Roughness: 0.9},
		Table: Material{Color: Vec3{0.5, 0.4, 0.3}, Roughness: 0.8},
		Lamp:  warmLampColor,
	},
	"fantasy": {
		ID:          "fantasy",
		Wall:        Material{Color: Vec3{0.8, 0.7, 0.9}, Roughness: 0.5, Metallic: metallic(0.1)},
		Floor:       Material{Color: Vec3{0.6, 0.5, 0.7}, Roughness: 0.6, Metallic: metallic(0.1)},
		Ceiling:     Material{Color: Vec3{0.7, 0.6, 0.8}, Roughness: 0.5, Metallic: metallic(0.1)},
		Accent:      Material{Color: Vec3{0.9, 0.5, 0.9}, Roughness: 0.4, Metallic: metallic(0.2)},
		Environment: "magic_sunset",
		Objects: []ObjectCategory{
			{Name: "seating", Types: []string{"throne_ornate", "chair_enchanted", "cushion_floating"}},
			{Name: "tables", Types: []string{"table_crystal", "pedestal_magical", "altar_stone"}},
			{Name: "storage", Types: []string{"chest_treasure", "bookcase_spell", "cabinet_potion"}},
			{Name: "lighting", Types: []string{"crystal_glowing", "orb_magical", "lantern_fairy"}},
			{Name: "decor", Types: []string{"statue_mythical", "tapestry_magical", "fountain_glowing", "mirror_enchanted"}},
		},
		Seat:  Material{Color: Vec3{0.7, 0.3, 0.7}, Roughness: 0.5, Metallic: metallic(0.2)},
		Table: Material{Color: Vec3{0.4, 0.5, 0.6}, Roughness: 0.3, Metallic: metallic(0.5)},
		Lamp:  Vec3{0.8, 0.7, 1.0},
	},
	"cyberpunk": {
		ID:          "cyberpunk",
		Wall:        Material{Color: Vec3{0.1, 0.1, 0.15}, Roughness: 0.3, Metallic: metallic(0.2), Emissive: emissive(Vec3{0.0, 0.0, 0.05})},
		Floor:       Material{Color: Vec3{0.15, 0.15, 0.2}, Roughness: 0.4, Metallic: metallic(0.3)},
		Ceiling:     Material{Color: Vec3{0.05, 0.05, 0.1}, Roughness: 0.3, Metallic: metallic(0.2), Emissive: emissive(Vec3{0.0, 0.0, 0.05})},
		Accent:      Material{Color: Vec3{0.9, 0.2, 0.6}, Roughness: 0.3, Metallic: metallic(0.4), Emissive: emissive(Vec3{0.5, 0.1, 0.3})},
		Environment: "night_city",
		Objects: []ObjectCategory{
			{Name: "seating", Types: []string{"chair_neon", "sofa_angular", "stool_industrial"}},
			{Name: "tables", Types: []string{"table_terminal", "desk_tech", "bar_neon"}},
			{Name: "storage", Types: []string{"locker_metal", "server_rack", "crate_industrial"}},
			{Name: "lighting", Types: []string{"light_neon", "sign_holographic", "projector_advert"}},
			{Name: "decor", Types: []string{"terminal_old", "cables_exposed", "graffiti_digital", "drone_inactive"}},
		},
		Seat:  Material{Color: Vec3{0.2, 0.2, 0.2}, Roughness: 0.3, Metallic: metallic(0.7), Emissive: emissive(Vec3{0.0, 0.1, 0.2})},
		Table: Material{Color: Vec3{0.1, 0.1, 0.1}, Roughness: 0.2, Metallic: metallic(0.9)},
		Lamp:  warmLampColor,
	},
	"minimalist": {
		ID:          "minimalist",
		Wall:        Material{Color: Vec3{1.0, 1.0, 1.0}, Roughness: 0.05, Metallic: metallic(0.0)},
		Floor:       Material{Color: Vec3{0.9, 0.9, 0.9}, Roughness: 0.1, Metallic: metallic(0.0)},
		Ceiling:     Material{Color: Vec3{1.0, 1.0, 1.0}, Roughness: 0.05, Metallic: metallic(0.0)},
		Accent:      Material{Color: Vec3{0.0, 0.0, 0.0}, Roughness: 0.05, Metallic: metallic(0.0)},
		Environment: "studio_light",
		Objects: []ObjectCategory{
			{Name: "seating", Types: []string{"chair_simple", "sofa_clean", "stool_minimal"}},
			{Name: "tables", Types: []string{"table_sleek", "desk_minimal", "surface_floating"}},
			{Name: "storage", Types: []string{"shelf_minimal", "cabinet_handleless", "rack_simple"}},
			{Name: "lighting", Types: []string{"lamp_minimal", "light_recessed", "pendant_simple"}},
			{Name: "decor", Types: []string{"plant_architectural", "art_minimal", "sculpture_abstract"}},
		},
		Seat:  Material{Color: Vec3{0.9, 0.9, 0.9}, Roughness: 0.5},
		Table: Material{Color: Vec3{1.0, 1.0, 1.0}, Roughness: 0.2},
		Lamp:  warmLampColor,
	},
}

// StyleByID looks up a catalog entry.
func StyleByID(id string) (StyleSpec, bool) {
	s, ok := styleCatalog[id]
	return s, ok
}

// CatalogStyles returns all catalog style ids.
func CatalogStyles() []string {
	out := make([]string, 0, len(styleCatalog))
	for id := range styleCatalog {
		out = append(out, id)
	}
	return out
}

// Each of the fallbacks below mirrors a distinct per-concern default: surface
// materials fall back to minimalist, the environment map to neutral, and the
// furnishing catalog and object palettes to modern/minimalist. A style id can
// be in the supported list without a catalog entry, in which case it is styled
// with exactly these fallbacks.

// MaterialsFor returns the surface material set for a style id; unknown ids
// get the minimalist set.
func MaterialsFor(id string) (wall, floor, ceiling, accent Material) {
	s, ok := styleCatalog[id]
	if !ok {
		s = styleCatalog["minimalist"]
	}
	return s.Wall, s.Floor, s.Ceiling, s.Accent
}

// EnvironmentFor returns the environment map id for a style; unknown ids map
// to NeutralEnvironment.
func EnvironmentFor(id string) string {
	if s, ok := styleCatalog[id]; ok {
		return s.Environment
	}
	return NeutralEnvironment
}

// ObjectsFor returns the furnishing catalog for a style; unknown ids get the
// modern catalog.
func ObjectsFor(id string) []ObjectCategory {
	if s, ok := styleCatalog[id]; ok {
		return s.Objects
	}
	return styleCatalog["modern"].Objects
}

// SeatMaterialFor returns the seating object material for a style; unknown
// ids get the minimalist palette.
func SeatMaterialFor(id string) Material {
	if s, ok := styleCatalog[id]; ok {
		return s.Seat
	}
	return styleCatalog["minimalist"].Seat
}

// TableMaterialFor returns the table/desk object material for a style;
// unknown ids get the minimalist palette.
func TableMaterialFor(id string) Material {
	if s, ok := styleCatalog[id]; ok {
		return s.Table
	}
	return styleCatalog["minimalist"].Table
}

// LampColorFor returns the attached-light color for lamp objects of a style.
// Cyberpunk lamps do not use this; they pick from CyberpunkNeonColors.
func LampColorFor(id string) Vec3 {
	if s, ok := styleCatalog[id]; ok {
		return s.Lamp
	}
	return warmLampColor
}
