package hexmap

import (
	"log/slog"

	"hexforge/internal/domain/apperr"
	"hexforge/internal/domain/rng"

	"github.com/google/uuid"
)

// Fixed for compatibility with maps generated by earlier clients.
const (
	ResourceChance = 0.15
	BuildingChance = 0.05
)

// MaxRadius bounds a single map to about fifty million tiles.
const MaxRadius = 1 << 12

// Options configures one generation. A nil Resources or Buildings slice skips
// that category entirely and consumes no draws for it. A non-nil empty slice
// counts as provided and fails once its chance roll succeeds.
type Options struct {
	Seed      string
	Radius    int
	Terrains  []Terrain
	Resources []Resource
	Buildings []Building
}

type Generator struct {
	// Logger receives one debug record per tile. Nil disables logging.
	Logger *slog.Logger
	// NewID names tiles. It must not draw from the seeded source.
	NewID func() string
}

// Generate is Generator{}.Generate.
func Generate(opts Options) ([]Tile, error) {
	return Generator{}.Generate(opts)
}

// Generate builds every tile within opts.Radius in ScanOrder. Per tile it
// draws terrain, then the resource roll and pick, then the building roll and
// pick. Any error aborts the whole map and no tiles are returned.
func (g Generator) Generate(opts Options) ([]Tile, error) {
	if err := validate(opts); err != nil {
		return nil, err
	}
	newID := g.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	src := rng.New(opts.Seed)
	order := ScanOrder(opts.Radius)
	tiles := make([]Tile, 0, len(order))
	for _, pos := range order {
		tile, err := g.generateTile(src, opts, newID(), pos.Q, pos.R)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, tile)
	}

	if g.Logger != nil {
		g.Logger.Info("hex map generated",
			"seed", opts.Seed,
			"radius", opts.Radius,
			"tiles", len(tiles),
			"draws", src.Draws(),
		)
	}
	return tiles, nil
}

func (g Generator) generateTile(src *rng.Source, opts Options, id string, q, r int) (Tile, error) {
	tile := Tile{ID: id, Q: q, R: r}

	terrain, err := rng.Pick(src, opts.Terrains, pickContext("terrain", q, r))
	if err != nil {
		return Tile{}, err
	}
	tile.Terrain = terrain

	if opts.Resources != nil && src.Float() < ResourceChance {
		res, err := rng.Pick(src, opts.Resources, pickContext("resource", q, r))
		if err != nil {
			return Tile{}, err
		}
		tile.Resource = &res
	}

	if opts.Buildings != nil && src.Float() < BuildingChance {
		b, err := rng.Pick(src, opts.Buildings, pickContext("building", q, r))
		if err != nil {
			return Tile{}, err
		}
		tile.Building = &b
	}

	if g.Logger != nil {
		g.Logger.Debug("generate tile",
			"id", tile.ID,
			"q", q,
			"r", r,
			"terrain", tile.Terrain,
			"resource", derefOr(tile.Resource),
			"building", derefOr(tile.Building),
		)
	}
	return tile, nil
}

func validate(opts Options) error {
	if opts.Seed == "" {
		return apperr.New(apperr.CodeInvalidConfiguration, "seed must not be empty", apperr.Context{"system": "MapEngine"})
	}
	radiusCtx := apperr.Context{
		"system":     "MapEngine",
		"seed":       opts.Seed,
		"radius":     opts.Radius,
		"max_radius": MaxRadius,
	}
	if err := apperr.Assert(opts.Radius >= 0, apperr.CodeInvalidConfiguration, "radius must not be negative", radiusCtx); err != nil {
		return err
	}
	if err := apperr.Assert(opts.Radius <= MaxRadius, apperr.CodeInvalidConfiguration, "radius exceeds limit", radiusCtx); err != nil {
		return err
	}
	for i, t := range opts.Terrains {
		if !t.Valid() {
			return apperr.New(apperr.CodeInvalidTerrain, "unknown terrain", apperr.Context{
				"system": "MapEngine",
				"seed":   opts.Seed,
				"index":  i,
				"value":  string(t),
			})
		}
	}
	for i, res := range opts.Resources {
		if !res.Valid() {
			return apperr.New(apperr.CodeInvalidConfiguration, "unknown resource", apperr.Context{
				"system": "MapEngine",
				"seed":   opts.Seed,
				"index":  i,
				"value":  string(res),
			})
		}
	}
	for i, b := range opts.Buildings {
		if !b.Valid() {
			return apperr.New(apperr.CodeInvalidConfiguration, "unknown building", apperr.Context{
				"system": "MapEngine",
				"seed":   opts.Seed,
				"index":  i,
				"value":  string(b),
			})
		}
	}
	return nil
}

func pickContext(field string, q, r int) apperr.Context {
	return apperr.Context{
		"system": "MapEngine",
		"field":  field,
		"q":      q,
		"r":      r,
	}
}

func derefOr[T ~string](v *T) string {
	if v == nil {
		return ""
	}
	return string(*v)
}
