package core

import (
	"context"
	"fmt"

	"github.com/signalsfoundry/nr-freqplan/internal/logging"
	"github.com/signalsfoundry/nr-freqplan/nrtab"
)

// Sync raster segment boundaries, TS 38.101-1/2 table 5.4.3.1-1.
const (
	gscnSeg1Min = 2
	gscnSeg2Min = 7499
	gscnSeg3Min = 22256
	gscnMax     = 26639

	gscnSeg2BaseKHz = 3_000_000
	gscnSeg2StepKHz = 1_440
	gscnSeg3BaseKHz = 24_250_080
	gscnSeg3StepKHz = 17_280
)

// gscnMValues returns the admissible M values for the sub-3 GHz sync
// raster segment. Bands on a 100 kHz channel raster use M in {1,3,5};
// otherwise only M=3 applies.
func gscnMValues(rasterKHz int) []int {
	if rasterKHz == 100 {
		return []int{1, 3, 5}
	}
	return []int{3}
}

// GSCNToFreq converts a GSCN to the SS block center frequency in kHz.
// For GSCN below 7499 the mapping depends on the channel raster step of
// the band the SSB lives in. It returns ErrNoSyncRasterSolution for a
// GSCN outside the defined range or with no valid (N, M) decomposition.
func GSCNToFreq(gscn, rasterKHz int) (int, error) {
	switch {
	case gscn >= gscnSeg1Min && gscn < gscnSeg2Min:
		for _, m := range gscnMValues(rasterKHz) {
			d := (m - 3) / 2
			if (gscn-d)%3 == 0 {
				n := (gscn - d) / 3
				return n*1200 + m*50, nil
			}
		}
		return 0, fmt.Errorf("gscn %d has no valid N,M decomposition: %w", gscn, ErrNoSyncRasterSolution)
	case gscn >= gscnSeg2Min && gscn < gscnSeg3Min:
		return gscnSeg2BaseKHz + (gscn-gscnSeg2Min)*gscnSeg2StepKHz, nil
	case gscn >= gscnSeg3Min && gscn <= gscnMax:
		return gscnSeg3BaseKHz + (gscn-gscnSeg3Min)*gscnSeg3StepKHz, nil
	default:
		return 0, fmt.Errorf("gscn %d out of range: %w", gscn, ErrNoSyncRasterSolution)
	}
}

// FreqToGSCN returns the smallest GSCN whose SS block center frequency is
// at or above fKHz. Below 3 GHz, when several M values are admissible the
// candidate closest above fKHz wins.
func FreqToGSCN(fKHz, rasterKHz int) (int, error) {
	switch {
	case fKHz < gscnSeg2BaseKHz:
		best, bestDiff := -1, -1
		for _, m := range gscnMValues(rasterKHz) {
			n := ceilDiv(fKHz-m*50, 1200)
			g := 3*n + (m-3)/2
			f, err := GSCNToFreq(g, rasterKHz)
			if err != nil {
				continue
			}
			if diff := f - fKHz; diff >= 0 && (bestDiff < 0 || diff < bestDiff) {
				best, bestDiff = g, diff
			}
		}
		if best < 0 {
			return 0, fmt.Errorf("no sync raster point at or above %d kHz: %w", fKHz, ErrNoSyncRasterSolution)
		}
		return best, nil
	case fKHz < gscnSeg3BaseKHz:
		return gscnSeg2Min + ceilDiv(fKHz-gscnSeg2BaseKHz, gscnSeg2StepKHz), nil
	default:
		g := gscnSeg3Min + ceilDiv(fKHz-gscnSeg3BaseKHz, gscnSeg3StepKHz)
		if g > gscnMax {
			return 0, fmt.Errorf("no sync raster point at or above %d kHz: %w", fKHz, ErrNoSyncRasterSolution)
		}
		return g, nil
	}
}

// AlignGSCN moves a GSCN onto the per-band sync raster of (band, scsSSB).
// shift selects the neighbouring raster entry: 0 keeps the entry at or
// above gscn, +1 takes the next entry up, -1 the previous entry down.
// Results clamp to the ends of the band's raster.
func AlignGSCN(ctx context.Context, log logging.Logger, gscn, band, scsSSBKHz, shift int) (int, error) {
	if log == nil {
		log = logging.Noop()
	}
	row, ok := nrtab.SyncRasterRow(band, scsSSBKHz)
	if !ok {
		return 0, fmt.Errorf("no sync raster for band n%d at ssb scs %d kHz: %w", band, scsSSBKHz, ErrNoSyncRasterSolution)
	}
	if len(row.GSCNList) > 0 {
		idx := len(row.GSCNList) - 1
		for i, g := range row.GSCNList {
			if g >= gscn {
				idx = i
				break
			}
		}
		idx += shift
		if idx < 0 {
			idx = 0
		}
		if idx >= len(row.GSCNList) {
			idx = len(row.GSCNList) - 1
		}
		aligned := row.GSCNList[idx]
		if aligned != gscn {
			log.Info(ctx, "aligned gscn to band sync raster list",
				logging.Int("band", band), logging.Int("gscn_in", gscn), logging.Int("gscn_out", aligned))
		}
		return aligned, nil
	}

	aligned := ceilDiv(gscn, row.GSCNStep) * row.GSCNStep
	aligned += shift * row.GSCNStep
	if aligned < row.GSCNMin {
		aligned = row.GSCNMin
	}
	if aligned > row.GSCNMax {
		aligned = row.GSCNMax
	}
	if aligned != gscn {
		log.Info(ctx, "aligned gscn to band sync raster",
			logging.Int("band", band), logging.Int("gscn_in", gscn), logging.Int("gscn_out", aligned),
			logging.Int("step", row.GSCNStep))
	}
	return aligned, nil
}
