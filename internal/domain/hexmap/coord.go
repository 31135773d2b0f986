package hexmap

import "hexforge/internal/domain/apperr"

// Axial is a hex position in axial coordinates. The third cube coordinate is
// derived as s = -q - r.
type Axial struct {
	Q int `json:"q"`
	R int `json:"r"`
}

func (a Axial) S() int {
	return -a.Q - a.R
}

func (a Axial) Add(b Axial) Axial {
	return Axial{Q: a.Q + b.Q, R: a.R + b.R}
}

// Distance is the hex distance between a and b.
func (a Axial) Distance(b Axial) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	return max(dq, dr, ds)
}

// WithinRadius reports whether a lies in the hexagonal region of the given
// radius around the origin: q and r in [-radius, radius] and |q+r| <= radius.
func (a Axial) WithinRadius(radius int) bool {
	if radius < 0 {
		return false
	}
	return abs(a.Q) <= radius && abs(a.R) <= radius && abs(a.Q+a.R) <= radius
}

// Direction indexes the six hex neighbors, starting east and turning
// counter-clockwise.
type Direction int

const (
	DirEast Direction = iota
	DirNorthEast
	DirNorthWest
	DirWest
	DirSouthWest
	DirSouthEast
)

const directionCount = 6

var directionOffsets = [directionCount]Axial{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

func (d Direction) Valid() bool {
	return d >= 0 && d < directionCount
}

func (d Direction) Opposite() Direction {
	return (d + 3) % directionCount
}

// Neighbor returns the adjacent position in direction d.
func (a Axial) Neighbor(d Direction) (Axial, error) {
	if !d.Valid() {
		return Axial{}, apperr.New(apperr.CodeInvalidNeighbor, "hex direction out of range", apperr.Context{
			"q":         a.Q,
			"r":         a.R,
			"direction": int(d),
		})
	}
	return a.Add(directionOffsets[d]), nil
}

// TileCount is the number of positions within radius: 3R(R+1)+1. Radii above
// MaxRadius are rejected by the generator before this is evaluated.
func TileCount(radius int) int {
	if radius < 0 {
		return 0
	}
	return 3*radius*(radius+1) + 1
}

// ScanOrder lists every position within radius in generation order: q
// ascending, then r ascending, skipping positions with |q+r| > radius.
// Generated maps depend on this order.
func ScanOrder(radius int) []Axial {
	out := make([]Axial, 0, TileCount(radius))
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			if abs(q+r) > radius {
				continue
			}
			out = append(out, Axial{Q: q, R: r})
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
