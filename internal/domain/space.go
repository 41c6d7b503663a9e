package domain

// Vec3 is an (x, y, z) triple. It serializes as a plain JSON array so that
// space records stay readable and compatible with external tooling.
type Vec3 [3]float64

// SurfaceKind identifies what a Surface is.
type SurfaceKind string

const (
	SurfaceWall    SurfaceKind = "wall"
	SurfaceFloor   SurfaceKind = "floor"
	SurfaceCeiling SurfaceKind = "ceiling"
)

// LightKind identifies a light variant.
type LightKind string

const (
	LightPoint   LightKind = "point"
	LightRect    LightKind = "rect"
	LightAmbient LightKind = "ambient"
)

// DoorwaySize is the fixed cutout size of every doorway (w × h × thickness).
var DoorwaySize = Vec3{2.0, 2.1, 0.1}

// Room is a grid-aligned, axis-aligned footprint inside a Space. Size height
// always equals the Space height. Connections holds the ids of rooms this room
// is connected to; the relation is symmetric.
type Room struct {
	ID          string   `json:"id"`
	Position    Vec3     `json:"position"`
	Size        Vec3     `json:"size"`
	Connections []string `json:"connections"`
}

// Area returns the floor area (width × depth) of the room footprint.
func (r Room) Area() float64 {
	return r.Size[0] * r.Size[2]
}

// Material describes a PBR-ish surface finish. Metallic and Emissive are
// optional; they are omitted from serialized records when absent so that a
// material round-trips exactly as its catalog entry.
type Material struct {
	Color     Vec3     `json:"color"`
	Roughness float64  `json:"roughness"`
	Metallic  *float64 `json:"metallic,omitempty"`
	Emissive  *Vec3    `json:"emissive,omitempty"`
}

// Surface is a wall, floor, or ceiling slab. Material is the zero value until
// the styling stage assigns it.
type Surface struct {
	Kind     SurfaceKind `json:"type"`
	Position Vec3        `json:"position"`
	Size     Vec3        `json:"size"`
	Material Material    `json:"material"`
}

// Doorway is a cutout between two connected rooms. Rotation is yaw-only
// (degrees around Y).
type Doorway struct {
	Position Vec3 `json:"position"`
	Rotation Vec3 `json:"rotation"`
	Size     Vec3 `json:"size"`
}

// Light is a point, rect, or ambient light. Position applies to point and rect
// variants, Size to rect only; ambient lights carry color and intensity alone.
type Light struct {
	Kind      LightKind `json:"type"`
	Position  *Vec3     `json:"position,omitempty"`
	Size      *Vec3     `json:"size,omitempty"`
	Color     Vec3      `json:"color"`
	Intensity float64   `json:"intensity"`
	Range     float64   `json:"range,omitempty"`
}

// ObjectLight is a light source attached to a furnishing object (lamps and
// light fixtures).
type ObjectLight struct {
	Color     Vec3    `json:"color"`
	Intensity float64 `json:"intensity"`
	Range     float64 `json:"range"`
}

// Object is a placed furnishing instance. Type is a free-form tag drawn from a
// style catalog. Rotation is yaw-only. Material and Light are nil when no
// placement rule assigned them; both are omitted from JSON in that case.
type Object struct {
	Type     string       `json:"type"`
	Position Vec3         `json:"position"`
	Rotation Vec3         `json:"rotation"`
	Size     Vec3         `json:"size"`
	Material *Material    `json:"material,omitempty"`
	Light    *ObjectLight `json:"light,omitempty"`
}

// Layout is the spatial skeleton of a Space: rooms, surfaces, doorways, and
// (after styling) lights, the resolved style id, and the environment map id.
type Layout struct {
	Dimensions  Vec3      `json:"dimensions"`
	Rooms       []Room    `json:"rooms"`
	Surfaces    []Surface `json:"surfaces"`
	Doorways    []Doorway `json:"doorways"`
	Lights      []Light   `json:"lights"`
	Style       string    `json:"style"`
	Environment string    `json:"environment"`
}

// GenerationParams echoes the knobs a space was generated with.
type GenerationParams struct {
	ObjectDensity float64 `json:"object_density"`
	Resolution    int     `json:"resolution"`
	Seed          *int64  `json:"seed,omitempty"`
}

// Metadata echoes the generation inputs. RoomCount is the requested count
// after defaulting, even when packing commits fewer rooms; ObjectCount is the
// realized count.
type Metadata struct {
	ID               string           `json:"id"`
	Description      string           `json:"description"`
	Size             Vec3             `json:"size"`
	Style            string           `json:"style"`
	RoomCount        int              `json:"room_count"`
	ObjectCount      int              `json:"object_count"`
	GenerationParams GenerationParams `json:"generation_params"`
}

// Space is the full generated record: layout, furnishing objects, and
// metadata. It is owned exclusively by the generation call that built it and
// is never mutated once returned.
type Space struct {
	Layout   Layout   `json:"layout"`
	Objects  []Object `json:"objects"`
	Metadata Metadata `json:"metadata"`
}

// IsZero reports whether the space is the empty record (what a failed load
// returns).
func (s Space) IsZero() bool {
	return s.Metadata.ID == "" &&
		len(s.Layout.Rooms) == 0 &&
		len(s.Layout.Surfaces) == 0 &&
		len(s.Objects) == 0
}

// SpaceRef is a lightweight pointer to a stored space record.
type SpaceRef struct {
	ID        string `json:"id"`
	Path      string `json:"path"`
	Style     string `json:"style"`
	RoomCount int    `json:"room_count"`
	CreatedAt string `json:"created_at"`
}

// GenerateRequest carries the user-facing generation parameters.
// Zero values mean "use the configured default" for Style, RoomCount, and
// Size; a zero ObjectDensity is a valid (sparse) density.
type GenerateRequest struct {
	Description   string
	Size          Vec3
	Style         string
	RoomCount     int
	ObjectDensity float64
}

// DefaultSize is the generation footprint used when a request leaves Size
// unset: 100 × 50 × 100 meters.
var DefaultSize = Vec3{100, 50, 100}
