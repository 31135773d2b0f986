package hexmap

import (
	"slices"

	"hexforge/internal/domain/apperr"
)

type Summary struct {
	Tiles     int              `json:"tiles"`
	Terrains  map[Terrain]int  `json:"terrains"`
	Resources map[Resource]int `json:"resources"`
	Buildings map[Building]int `json:"buildings"`
}

func Summarize(tiles []Tile) Summary {
	out := Summary{
		Tiles:     len(tiles),
		Terrains:  map[Terrain]int{},
		Resources: map[Resource]int{},
		Buildings: map[Building]int{},
	}
	for _, t := range tiles {
		out.Terrains[t.Terrain]++
		if t.Resource != nil {
			out.Resources[*t.Resource]++
		}
		if t.Building != nil {
			out.Buildings[*t.Building]++
		}
	}
	return out
}

// ValidateTiles checks a map that came from outside the generator, e.g. a
// stored record. Every tile must be known and inside radius, positions must be
// unique, and each road must lead to a tile that has the matching road back.
func ValidateTiles(tiles []Tile, radius int) error {
	byCoord := make(map[Axial]Tile, len(tiles))
	for _, t := range tiles {
		if err := validateTile(t, radius); err != nil {
			return err
		}
		if _, dup := byCoord[t.Coord()]; dup {
			return invalidTile(t, "duplicate tile position")
		}
		byCoord[t.Coord()] = t
	}
	for _, t := range tiles {
		for _, d := range t.Roads {
			next, err := t.Coord().Neighbor(d)
			if err != nil {
				return err
			}
			other, ok := byCoord[next]
			if !ok || !slices.Contains(other.Roads, d.Opposite()) {
				return invalidTile(t, "road has no matching road on neighbor")
			}
		}
	}
	return nil
}

func validateTile(t Tile, radius int) error {
	if !t.Coord().WithinRadius(radius) {
		return invalidTile(t, "tile outside map radius")
	}
	if !t.Terrain.Valid() {
		return invalidTile(t, "unknown terrain")
	}
	if t.Resource != nil && !t.Resource.Valid() {
		return invalidTile(t, "unknown resource")
	}
	if t.Building != nil && !t.Building.Valid() {
		return invalidTile(t, "unknown building")
	}
	seen := map[Direction]bool{}
	for _, d := range t.Roads {
		if !d.Valid() || seen[d] {
			return invalidTile(t, "invalid road direction")
		}
		seen[d] = true
	}
	return nil
}

func invalidTile(t Tile, message string) error {
	return apperr.New(apperr.CodeInvalidTile, message, apperr.Context{
		"tile_id": t.ID,
		"q":       t.Q,
		"r":       t.R,
	})
}
