package core

import (
	"fmt"
	"math"

	"github.com/signalsfoundry/nr-freqplan/nrtab"
)

// CAPair describes two contiguously aggregated carriers in one band.
// Bandwidths are in MHz, subcarrier spacings in kHz.
type CAPair struct {
	Band int
	Bw1  int
	Bw2  int
	Scs1 int
	Scs2 int
}

// muZero returns the largest numerology mu0 whose transmission bandwidth
// tables support both channel bandwidths in the band.
func muZero(band, bw1, bw2 int) (int, error) {
	for _, scs := range []int{240, 120, 60, 30, 15} {
		supported := nrtab.SupportedBandwidths(band, scs)
		has1, has2 := false, false
		for _, bw := range supported {
			if bw == bw1 {
				has1 = true
			}
			if bw == bw2 {
				has2 = true
			}
		}
		if has1 && has2 {
			return Mu(scs), nil
		}
	}
	return 0, fmt.Errorf("no common numerology supports %d and %d MHz in band n%d: %w",
		bw1, bw2, band, ErrNoNominalSpacingEntry)
}

// NominalSpacing computes the nominal channel spacing in kHz between two
// contiguously aggregated carriers, TS 38.104 section 5.4.1.2.
func NominalSpacing(p CAPair) (int, error) {
	fr1 := nrtab.IsFR1(p.Band)
	gb1 := nrtab.GuardbandKHz(p.Scs1, p.Bw1, fr1)
	gb2 := nrtab.GuardbandKHz(p.Scs2, p.Bw2, fr1)
	if gb1 < 0 || gb2 < 0 {
		return 0, fmt.Errorf("no guardband entry for ca pair %d/%d MHz in band n%d: %w",
			p.Bw1, p.Bw2, p.Band, ErrNoNominalSpacingEntry)
	}
	mu0, err := muZero(p.Band, p.Bw1, p.Bw2)
	if err != nil {
		return 0, err
	}
	minScs := p.Scs1
	if p.Scs2 < minScs {
		minScs = p.Scs2
	}
	raster := nrtab.ChannelRasterStep(p.Band, minScs)
	gbDiff := math.Abs(gb1 - gb2)
	bwSum := float64(p.Bw1 + p.Bw2)
	switch {
	case raster%60 == 0:
		n := math.Floor((bwSum - 2*gbDiff/1000) / (0.06 * math.Pow(2, float64(mu0-1))))
		return int(n) * 60 * (1 << (mu0 - 2)), nil
	case raster%15 == 0:
		n := math.Floor((bwSum - 2*gbDiff/1000) / (0.015 * math.Pow(2, float64(mu0+1))))
		return int(n) * 15 * (1 << mu0), nil
	default:
		n := math.Floor((bwSum - 2*gbDiff) / 0.6)
		return int(n) * 300, nil
	}
}

// IntraContiguousSpacings returns candidate channel spacings for the
// pair, largest first: the nominal spacing followed by up to two smaller
// values that stay on both the subcarrier grid and the channel raster.
func IntraContiguousSpacings(p CAPair) ([]int, error) {
	nominal, err := NominalSpacing(p)
	if err != nil {
		return nil, err
	}
	minScs := p.Scs1
	if p.Scs2 < minScs {
		minScs = p.Scs2
	}
	raster := nrtab.ChannelRasterStep(p.Band, minScs)
	spacings := []int{nominal}
	step := lcm(minScs, raster)
	cs := floorDiv(nominal, step) * step
	for cs > 0 && len(spacings) < 3 {
		if cs != spacings[len(spacings)-1] {
			spacings = append(spacings, cs)
		}
		cs -= step
	}
	return spacings, nil
}
