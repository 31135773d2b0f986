package maps

import (
	"context"
	"errors"
	"strings"

	"hexforge/internal/app/ports"
	"hexforge/internal/domain/hexmap"
)

var ErrInvalidRequest = errors.New("invalid maps request")

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type UseCase struct {
	Maps ports.MapRepository
}

func (u UseCase) Get(ctx context.Context, req GetRequest) (MapView, error) {
	id := strings.TrimSpace(req.MapID)
	if id == "" {
		return MapView{}, ErrInvalidRequest
	}
	rec, err := u.Maps.GetByID(ctx, id)
	if err != nil {
		return MapView{}, err
	}
	view := toView(rec)
	view.Tiles = rec.Tiles
	return view, nil
}

// List returns stored maps newest first, without their tiles.
func (u UseCase) List(ctx context.Context, req ListRequest) (ListResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	recs, err := u.Maps.List(ctx, limit)
	if err != nil {
		return ListResponse{}, err
	}
	out := ListResponse{Maps: make([]MapView, 0, len(recs))}
	for _, rec := range recs {
		out.Maps = append(out.Maps, toView(rec))
	}
	return out, nil
}

func toView(rec ports.MapRecord) MapView {
	return MapView{
		MapID:     rec.ID,
		Seed:      rec.Seed,
		Radius:    rec.Radius,
		TileCount: len(rec.Tiles),
		CreatedAt: rec.CreatedAt,
		Summary:   hexmap.Summarize(rec.Tiles),
	}
}
