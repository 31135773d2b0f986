package ports

import "hexforge/internal/domain/hexmap"

type MapGenerator interface {
	Generate(opts hexmap.Options) ([]hexmap.Tile, error)
}
