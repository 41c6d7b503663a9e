package usecase

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/JJshome/VirtualSpaceTokenization/internal/app/template"
	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
	"github.com/JJshome/VirtualSpaceTokenization/internal/ports"
	ucfurnish "github.com/JJshome/VirtualSpaceTokenization/internal/usecase/furnish"
	uclayout "github.com/JJshome/VirtualSpaceTokenization/internal/usecase/layout"
	ucstyling "github.com/JJshome/VirtualSpaceTokenization/internal/usecase/styling"
)

// GenerateSpace runs the full generation pipeline: pack rooms onto the
// footprint grid, connect them, synthesize surfaces and doorways, apply the
// style, and place objects.
type GenerateSpace struct {
	features ports.FeatureExtractor
	cfg      domain.Config
	log      *slog.Logger
	seed     *int64
	rng      *rand.Rand
}

type GenerateOption func(*GenerateSpace)

// WithSeed makes the layout stream deterministic and records the seed in the
// generated metadata.
func WithSeed(seed int64) GenerateOption {
	return func(uc *GenerateSpace) {
		uc.seed = &seed
		uc.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLayoutRand overrides the layout randomness source directly.
func WithLayoutRand(rng *rand.Rand) GenerateOption {
	return func(uc *GenerateSpace) {
		uc.rng = rng
	}
}

func WithLogger(log *slog.Logger) GenerateOption {
	return func(uc *GenerateSpace) {
		uc.log = log
	}
}

func NewGenerateSpace(fe ports.FeatureExtractor, cfg domain.Config, opts ...GenerateOption) *GenerateSpace {
	uc := &GenerateSpace{
		features: fe,
		cfg:      cfg,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.rng == nil {
		uc.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return uc
}

func (uc *GenerateSpace) Execute(ctx context.Context, req domain.GenerateRequest) (domain.Space, error) {
	if uc.features == nil {
		return domain.Space{}, &domain.OpError{
			Op:   "generate space",
			Kind: domain.KindNotInitialized,
			Err:  domain.ErrNotInitialized,
		}
	}
	if err := ctx.Err(); err != nil {
		return domain.Space{}, &domain.OpError{Op: "generate space", Kind: domain.KindExecution, Err: err}
	}

	style := req.Style
	if style == "" {
		style = uc.cfg.DefaultStyle
	}
	if !uc.cfg.SupportsStyle(style) {
		uc.log.Warn("unsupported style, using fallback", "style", style, "fallback", domain.FallbackStyle)
		style = domain.FallbackStyle
	}

	roomCount := req.RoomCount
	if roomCount == 0 {
		roomCount = uc.cfg.DefaultRoomCount
	}

	size := req.Size
	if size == (domain.Vec3{}) {
		size = domain.DefaultSize
	}

	// Descriptions may reference the resolved parameters, e.g.
	// "a {{style}} loft with {{rooms}} rooms".
	description := req.Description
	if rendered, rerr := template.RenderString(description, map[string]string{
		"style": style,
		"rooms": strconv.Itoa(roomCount),
	}); rerr == nil {
		description = rendered
	} else {
		uc.log.Warn("description template not rendered", "error", rerr)
	}

	vec := uc.features.Extract(description)
	uc.log.Debug("extracted description features", "dims", len(vec))

	rooms, grid := uclayout.PackRooms(uc.rng, size, roomCount)
	uclayout.Connect(uc.rng, rooms)

	l := domain.Layout{
		Dimensions: size,
		Rooms:      rooms,
		Surfaces:   uclayout.Surfaces(grid, rooms, size),
		Doorways:   uclayout.Doorways(rooms),
	}
	ucstyling.Apply(&l, style)

	objects := ucfurnish.PlaceObjects(uc.rng, l, req.ObjectDensity)

	space := domain.Space{
		Layout:  l,
		Objects: objects,
		Metadata: domain.Metadata{
			ID:          uuid.NewString(),
			Description: description,
			Size:        size,
			Style:       style,
			RoomCount:   roomCount,
			ObjectCount: len(objects),
			GenerationParams: domain.GenerationParams{
				ObjectDensity: req.ObjectDensity,
				Resolution:    uc.cfg.Resolution,
				Seed:          uc.seed,
			},
		},
	}

	uc.log.Info("space generated",
		"id", space.Metadata.ID,
		"style", style,
		"rooms", len(rooms),
		"objects", len(objects),
	)
	return space, nil
}
