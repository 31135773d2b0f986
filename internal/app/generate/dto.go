package generate

import "hexforge/internal/domain/hexmap"

type Request struct {
	Seed      string
	Radius    int
	Terrains  []hexmap.Terrain
	Resources []hexmap.Resource
	Buildings []hexmap.Building
	Persist   bool
}

type Response struct {
	MapID     string         `json:"map_id,omitempty"`
	Seed      string         `json:"seed"`
	Radius    int            `json:"radius"`
	TileCount int            `json:"tile_count"`
	Summary   hexmap.Summary `json:"summary"`
	Tiles     []hexmap.Tile  `json:"tiles"`
}
