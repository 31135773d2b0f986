package rng

import "unicode/utf16"

// The stream below is the one produced by the seedrandom JavaScript library
// (ARC4, RC4-drop[256], 52-bit floats), so a seed yields the same map here as
// in the browser client.
const (
	width        = 256
	mask         = width - 1
	chunks       = 6
	startDenom   = 1 << (8 * chunks)
	significance = 1 << 52
	overflow     = significance * 2
)

type arc4 struct {
	i, j uint8
	s    [width]uint8
}

func newARC4(key []int) *arc4 {
	if len(key) == 0 {
		key = []int{0}
	}
	a := &arc4{}
	for i := range a.s {
		a.s[i] = uint8(i)
	}
	j := 0
	for i := 0; i < width; i++ {
		t := a.s[i]
		j = (j + key[i%len(key)] + int(t)) & mask
		a.s[i] = a.s[j]
		a.s[j] = t
	}
	for n := 0; n < width; n++ {
		a.byte()
	}
	return a
}

func (a *arc4) byte() uint64 {
	a.i++
	t := a.s[a.i]
	a.j += t
	a.s[a.i] = a.s[a.j]
	a.s[a.j] = t
	return uint64(a.s[a.s[a.i]+a.s[a.j]])
}

func (a *arc4) bytes(count int) uint64 {
	var r uint64
	for ; count > 0; count-- {
		r = r*width + a.byte()
	}
	return r
}

// float returns a value in [0, 1) with 52 significant bits.
func (a *arc4) float() float64 {
	n := a.bytes(chunks)
	d := float64(startDenom)
	var x uint64
	for n < significance {
		n = (n + x) * width
		d *= width
		x = a.byte()
	}
	for n >= overflow {
		n >>= 1
		d /= 2
		x >>= 1
	}
	return float64(n+x) / d
}

// mixKey folds the seed's UTF-16 code units into an ARC4 key of at most 256 bytes.
func mixKey(seed string) []int {
	units := utf16.Encode([]rune(seed))
	key := make([]int, 0, min(len(units), width))
	smear := 0
	for j, u := range units {
		k := j & mask
		if k < len(key) {
			smear ^= key[k] * 19
			key[k] = mask & (smear + int(u))
			continue
		}
		key = append(key, mask&(smear+int(u)))
	}
	return key
}
