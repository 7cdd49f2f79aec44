package core

import (
	"context"
	"fmt"

	"github.com/signalsfoundry/nr-freqplan/internal/logging"
	"github.com/signalsfoundry/nr-freqplan/nrtab"
)

// FcRange is the result of aligning a channel center frequency to the
// channel raster: the lowest and highest raster points that keep the full
// channel bandwidth inside the band edges, and the requested frequency
// snapped to the nearest raster point within those bounds.
type FcRange struct {
	Low     int
	Snapped int
	High    int
}

// ChannelBandwidth returns the occupied channel bandwidth in kHz and the
// transmission bandwidth configuration N_RB for (scs, bw) in a band. It
// returns ErrBandwidthNotSupported when the combination is undefined.
func ChannelBandwidth(scsKHz, bwMHz, band int) (cbwKHz, nRB int, err error) {
	nRB = nrtab.NRB(scsKHz, bwMHz, nrtab.IsFR1(band))
	if nRB <= 0 {
		return 0, 0, fmt.Errorf("bw %d MHz at scs %d kHz in band n%d: %w",
			bwMHz, scsKHz, band, ErrBandwidthNotSupported)
	}
	return 12 * scsKHz * nRB, nRB, nil
}

// BandSpan returns the lowest and highest frequency of the band's DL or UL
// range, derived from the channel raster ARFCN bounds at the raster step
// applicable for scs.
func BandSpan(band, scsKHz int, ul bool) (lowKHz, highKHz int, err error) {
	raster := nrtab.ChannelRasterStep(band, scsKHz)
	row, ok := nrtab.ChannelRasterRow(band, raster)
	if !ok {
		return 0, 0, fmt.Errorf("no channel raster row for band n%d at %d kHz: %w", band, raster, ErrOutOfBand)
	}
	lo, hi := row.DLArfcnLow, row.DLArfcnHigh
	if ul {
		lo, hi = row.ULArfcnLow, row.ULArfcnHigh
	}
	if lo < 0 {
		return 0, 0, fmt.Errorf("band n%d does not define this direction: %w", band, ErrOutOfBand)
	}
	return ARFCNToFreq(lo), ARFCNToFreq(hi), nil
}

// AlignChannel snaps a proposed channel center frequency to the channel
// raster, bounded so the whole channel bandwidth stays inside the band
// edges. Ties between two raster points resolve toward the lower
// frequency. A requested frequency outside the valid bounds clamps to the
// nearest bound; this is an expected adjustment and only logged.
func AlignChannel(ctx context.Context, log logging.Logger, fcKHz, scsCarrierKHz, bwMHz, band, rasterKHz int, ul bool) (FcRange, error) {
	if log == nil {
		log = logging.Noop()
	}
	row, ok := nrtab.ChannelRasterRow(band, rasterKHz)
	if !ok {
		return FcRange{}, fmt.Errorf("no channel raster row for band n%d at %d kHz: %w", band, rasterKHz, ErrOutOfBand)
	}
	loARFCN, hiARFCN := row.DLArfcnLow, row.DLArfcnHigh
	if ul {
		loARFCN, hiARFCN = row.ULArfcnLow, row.ULArfcnHigh
	}
	if loARFCN < 0 {
		return FcRange{}, fmt.Errorf("band n%d does not define this direction: %w", band, ErrOutOfBand)
	}
	freqL := ARFCNToFreq(loARFCN)
	freqH := ARFCNToFreq(hiARFCN)

	cbw, _, err := ChannelBandwidth(scsCarrierKHz, bwMHz, band)
	if err != nil {
		return FcRange{}, err
	}
	delta := row.DeltaFKHz
	low := ceilDiv(freqL+cbw/2, delta) * delta
	high := floorDiv(freqH-cbw/2, delta) * delta
	if low > high {
		return FcRange{}, fmt.Errorf("bw %d MHz does not fit band n%d span %d-%d kHz: %w",
			bwMHz, band, freqL, freqH, ErrBandwidthNotSupported)
	}

	snapped := roundDivDown(fcKHz, delta) * delta
	if snapped != fcKHz {
		log.Info(ctx, "adjusted channel frequency to channel raster",
			logging.Int("fc_requested", fcKHz), logging.Int("fc_snapped", snapped),
			logging.Int("raster", delta))
	}
	if snapped < low {
		log.Warn(ctx, "channel frequency below allowed range, clamping",
			logging.Int("fc", snapped), logging.Int("fc_low", low), logging.Int("bw", bwMHz))
		snapped = low
	} else if snapped > high {
		log.Warn(ctx, "channel frequency above allowed range, clamping",
			logging.Int("fc", snapped), logging.Int("fc_high", high), logging.Int("bw", bwMHz))
		snapped = high
	}
	return FcRange{Low: low, Snapped: snapped, High: high}, nil
}

// MaxLocationAndBW computes the locationAndBandwidth RIV for a full-width
// bandwidth part starting at rbStart, per TS 38.214 with N_BWP = 275.
func MaxLocationAndBW(rbStart, scsKHz, bwMHz, band int) int {
	const nSizeBWP = 275
	_, lRB, err := ChannelBandwidth(scsKHz, bwMHz, band)
	if err != nil || lRB > nSizeBWP-rbStart {
		return 0
	}
	if lRB-1 <= nSizeBWP/2 {
		return nSizeBWP*(lRB-1) + rbStart
	}
	return nSizeBWP*(nSizeBWP-lRB+1) + (nSizeBWP - 1 - rbStart)
}
