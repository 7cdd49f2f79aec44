package core

import (
	"fmt"

	"github.com/signalsfoundry/nr-freqplan/nrtab"
)

// globalRasterMaxKHz is the upper edge of the last global raster segment.
const globalRasterMaxKHz = 100000000

// globalSegmentForFreq picks the global raster segment a frequency falls
// into, per TS 38.104 Table 5.4.2.1-1.
func globalSegmentForFreq(fKHz int) nrtab.GlobalRasterSegment {
	switch {
	case fKHz >= 24250000:
		return nrtab.GlobalRaster[2]
	case fKHz >= 3000000:
		return nrtab.GlobalRaster[1]
	default:
		return nrtab.GlobalRaster[0]
	}
}

// FreqToARFCN converts a frequency in kHz to its ARFCN on the global
// frequency raster. Frequencies between raster points truncate to the next
// lower point; the round trip is exact only for on-raster frequencies.
func FreqToARFCN(fKHz int) int {
	seg := globalSegmentForFreq(fKHz)
	return seg.NRefOffset + (fKHz-seg.FOffsetKHz)/seg.DeltaFGlobalKHz
}

// ARFCNToFreq converts an ARFCN back to a frequency in kHz.
func ARFCNToFreq(arfcn int) int {
	seg := nrtab.GlobalRaster[0]
	switch {
	case arfcn >= 2016667:
		seg = nrtab.GlobalRaster[2]
	case arfcn >= 600000:
		seg = nrtab.GlobalRaster[1]
	}
	return seg.FOffsetKHz + seg.DeltaFGlobalKHz*(arfcn-seg.NRefOffset)
}

// FreqToARFCNInBand converts a frequency to an ARFCN after checking that it
// lies inside the union of the band's defined DL and UL ranges. It returns
// ErrOutOfBand otherwise.
func FreqToARFCNInBand(fKHz, band int) (int, error) {
	b, ok := nrtab.BandByID(band)
	if !ok {
		return 0, fmt.Errorf("band n%d: %w", band, ErrOutOfBand)
	}
	inDL := b.DLLowKHz >= 0 && fKHz >= b.DLLowKHz && fKHz <= b.DLHighKHz
	inUL := b.ULLowKHz >= 0 && fKHz >= b.ULLowKHz && fKHz <= b.ULHighKHz
	if !inDL && !inUL {
		return 0, fmt.Errorf("frequency %d kHz outside band n%d ranges: %w", fKHz, band, ErrOutOfBand)
	}
	return FreqToARFCN(fKHz), nil
}

// ulDLDistance returns f_DL - f_UL for the band's paired channel raster
// rows at the given raster step. Zero for TDD bands.
func ulDLDistance(band, rasterKHz int) (int, error) {
	row, ok := nrtab.ChannelRasterRow(band, rasterKHz)
	if !ok {
		return 0, fmt.Errorf("no channel raster row for band n%d at %d kHz: %w", band, rasterKHz, ErrOutOfBand)
	}
	if row.DLArfcnLow < 0 || row.ULArfcnLow < 0 {
		return 0, fmt.Errorf("band n%d has no paired UL/DL ranges: %w", band, ErrOutOfBand)
	}
	return ARFCNToFreq(row.DLArfcnLow) - ARFCNToFreq(row.ULArfcnLow), nil
}

// ULFromDL derives the uplink frequency paired with a downlink frequency
// via the band's UL/DL separation.
func ULFromDL(fDLKHz, band, rasterKHz int) (int, error) {
	d, err := ulDLDistance(band, rasterKHz)
	if err != nil {
		return 0, err
	}
	return fDLKHz - d, nil
}

// DLFromUL derives the downlink frequency paired with an uplink frequency.
func DLFromUL(fULKHz, band, rasterKHz int) (int, error) {
	d, err := ulDLDistance(band, rasterKHz)
	if err != nil {
		return 0, err
	}
	return fULKHz + d, nil
}
