// Package core implements the NR frequency-domain parameter-resolution
// engine: ARFCN and GSCN conversions, channel and sync raster alignment,
// Coreset0 placement, carrier-aggregation nominal spacing and SSB candidate
// position resolution. All inputs and outputs are in kHz unless noted.
package core

// Symbols per slot and subframes per frame are fixed in NR regardless of
// numerology.
const (
	symbolsPerSlot    = 14
	subframesPerFrame = 10
)

var (
	muToSCS = map[int]int{0: 15, 1: 30, 2: 60, 3: 120, 4: 240}
	scsToMu = map[int]int{15: 0, 30: 1, 60: 2, 120: 3, 240: 4}
)

// Mu returns the numerology for a subcarrier spacing in kHz, or -1 for an
// unknown spacing.
func Mu(scsKHz int) int {
	mu, ok := scsToMu[scsKHz]
	if !ok {
		return -1
	}
	return mu
}

// SCS returns the subcarrier spacing in kHz for a numerology, or -1 for an
// unknown numerology.
func SCS(mu int) int {
	scs, ok := muToSCS[mu]
	if !ok {
		return -1
	}
	return scs
}

// SlotsPerSubframe returns 2^mu for the given subcarrier spacing.
func SlotsPerSubframe(scsKHz int) int {
	mu := Mu(scsKHz)
	if mu < 0 {
		return 0
	}
	return 1 << mu
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a * b / gcd(a, b)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ceilDiv divides rounding toward positive infinity.
func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// roundDivDown divides rounding to the nearest integer, with exact halves
// rounded down. Raster snapping uses this so ties resolve toward the lower
// frequency.
func roundDivDown(a, b int) int {
	if b < 0 {
		a, b = -a, -b
	}
	return floorDiv(2*a+b-1, 2*b)
}
