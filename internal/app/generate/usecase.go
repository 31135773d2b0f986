package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hexforge/internal/app/ports"
	"hexforge/internal/domain/apperr"
	"hexforge/internal/domain/hexmap"

	"github.com/google/uuid"
)

var (
	ErrInvalidRequest      = errors.New("invalid generate request")
	ErrPersistenceDisabled = errors.New("map persistence not configured")
)

const DefaultMaxRadius = 64

type UseCase struct {
	Generator ports.MapGenerator
	Maps      ports.MapRepository
	Metrics   ports.GenerationMetrics
	Logger    *slog.Logger
	NewID     func() string
	Now       func() time.Time
	MaxRadius int
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	seed := req.Seed
	if strings.TrimSpace(seed) == "" {
		return Response{}, fmt.Errorf("%w: seed is required", ErrInvalidRequest)
	}
	maxRadius := u.MaxRadius
	if maxRadius <= 0 {
		maxRadius = DefaultMaxRadius
	}
	if req.Radius > maxRadius {
		return Response{}, fmt.Errorf("%w: radius %d exceeds limit %d", ErrInvalidRequest, req.Radius, maxRadius)
	}
	if req.Persist && u.Maps == nil {
		return Response{}, ErrPersistenceDisabled
	}

	tiles, err := u.generator().Generate(hexmap.Options{
		Seed:      seed,
		Radius:    req.Radius,
		Terrains:  req.Terrains,
		Resources: req.Resources,
		Buildings: req.Buildings,
	})
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure(apperr.CodeOf(err))
		}
		if u.Logger != nil {
			u.Logger.WarnContext(ctx, "map generation failed", "seed", seed, "radius", req.Radius, "error", err)
		}
		return Response{}, fmt.Errorf("generate map: %w", err)
	}
	if u.Metrics != nil {
		u.Metrics.RecordGenerated(len(tiles))
	}

	resp := Response{
		Seed:      seed,
		Radius:    req.Radius,
		TileCount: len(tiles),
		Summary:   hexmap.Summarize(tiles),
		Tiles:     tiles,
	}
	if !req.Persist {
		return resp, nil
	}

	record := ports.MapRecord{
		ID:        u.newID(),
		Seed:      seed,
		Radius:    req.Radius,
		Tiles:     tiles,
		CreatedAt: u.now().UTC(),
	}
	if err := u.Maps.Save(ctx, record); err != nil {
		return Response{}, fmt.Errorf("save map: %w", err)
	}
	if u.Logger != nil {
		u.Logger.InfoContext(ctx, "map saved", "map_id", record.ID, "seed", seed, "tiles", len(tiles))
	}
	resp.MapID = record.ID
	return resp, nil
}

func (u UseCase) generator() ports.MapGenerator {
	if u.Generator != nil {
		return u.Generator
	}
	return hexmap.Generator{Logger: u.Logger}
}

func (u UseCase) newID() string {
	if u.NewID != nil {
		return u.NewID()
	}
	return uuid.NewString()
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
