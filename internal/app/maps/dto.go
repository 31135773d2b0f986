package maps

import (
	"time"

	"hexforge/internal/domain/hexmap"
)

type GetRequest struct {
	MapID string
}

type ListRequest struct {
	Limit int
}

type MapView struct {
	MapID     string         `json:"map_id"`
	Seed      string         `json:"seed"`
	Radius    int            `json:"radius"`
	TileCount int            `json:"tile_count"`
	CreatedAt time.Time      `json:"created_at"`
	Summary   hexmap.Summary `json:"summary"`
	Tiles     []hexmap.Tile  `json:"tiles,omitempty"`
}

type ListResponse struct {
	Maps []MapView `json:"maps"`
}
