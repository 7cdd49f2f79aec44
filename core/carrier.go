package core

import (
	"context"
	"fmt"

	"github.com/signalsfoundry/nr-freqplan/internal/logging"
	"github.com/signalsfoundry/nr-freqplan/nrtab"
)

// CarrierOptions configures a carrier frequency plan. Zero values pick
// the defaults noted per field. All frequencies are in kHz, subcarrier
// spacings in kHz, channel bandwidths in MHz.
type CarrierOptions struct {
	// Band is the NR operating band number. Default 66.
	Band int
	// Bw is the DL channel bandwidth in MHz. Default 40 (FR1) or 50 (FR2).
	Bw int
	// BwUL is the UL channel bandwidth in MHz. Defaults to Bw.
	BwUL int
	// ScsCarrier is the carrier subcarrier spacing. Default 30 (FR1) or
	// 120 (FR2).
	ScsCarrier int
	// ScsSSB is the SS/PBCH block subcarrier spacing. Defaults to ScsCarrier.
	ScsSSB int
	// ScsCommon is subCarrierSpacingCommon from MIB. Defaults to ScsCarrier.
	ScsCommon int
	// FcChannel is the requested DL channel center frequency in kHz (UL
	// center for SUL bands). Out-of-range values clamp to the band.
	FcChannel int
	// FcChannelUL is the UL channel center frequency in kHz. For FDD it
	// defaults to FcChannel minus the duplex distance. Required for SUL.
	FcChannelUL int
	// PdcchConfigSIB1 is the 8-bit pdcch-ConfigSIB1 value from MIB.
	PdcchConfigSIB1 int
	// OffsetToCarrier is offsetToCarrier in RBs of ScsCarrier from point A.
	OffsetToCarrier int
	// FFcToPointA is the distance in kHz from the lowest usable carrier
	// frequency down to point A. Default 49140.
	FFcToPointA int
	// DisableSyncRaster places the SSB at its minimum frequency instead
	// of snapping it to the synchronization raster.
	DisableSyncRaster bool
	// DisableSSB skips SSB and Coreset0 placement entirely.
	DisableSSB bool
	// Logger receives alignment decisions. Defaults to a no-op logger.
	Logger logging.Logger
}

// Carrier is a carrier configuration with its center frequencies aligned
// to the channel raster. Build one with NewCarrier, then call Calculate.
type Carrier struct {
	opts   CarrierOptions
	log    logging.Logger
	duplex nrtab.Duplex
	fr1    bool

	minScs     int
	freqRaster int
	scsKssb    int
	kssbMax    int
	bwSSB      int
	pattern    nrtab.SSBPattern

	cbwDL, nrbDL int
	cbwUL, nrbUL int
	fcDL         FcRange
	fcUL         FcRange

	cs0           Coreset0Config
	fOffsetRB     int
	fOffToCarrier int
}

func (o *CarrierOptions) applyDefaults() {
	if o.Band == 0 {
		o.Band = 66
	}
	fr1 := nrtab.IsFR1(o.Band)
	if o.ScsCarrier == 0 {
		if fr1 {
			o.ScsCarrier = 30
		} else {
			o.ScsCarrier = 120
		}
	}
	if o.ScsSSB == 0 {
		o.ScsSSB = o.ScsCarrier
	}
	if o.ScsCommon == 0 {
		o.ScsCommon = o.ScsCarrier
	}
	if o.Bw == 0 {
		if fr1 {
			o.Bw = 40
		} else {
			o.Bw = 50
		}
	}
	if o.BwUL == 0 {
		o.BwUL = o.Bw
	}
	if o.FFcToPointA == 0 {
		o.FFcToPointA = 49140
	}
	if o.Logger == nil {
		o.Logger = logging.Noop()
	}
}

// NewCarrier validates the options, aligns the channel center frequencies
// to the channel raster and resolves the Coreset0 configuration. The
// returned Carrier is ready for Calculate and is not modified by it.
func NewCarrier(opts CarrierOptions) (*Carrier, error) {
	opts.applyDefaults()
	if _, ok := nrtab.BandByID(opts.Band); !ok {
		return nil, fmt.Errorf("unknown band n%d: %w", opts.Band, ErrOutOfBand)
	}
	c := &Carrier{
		opts:   opts,
		log:    opts.Logger,
		duplex: nrtab.BandMode(opts.Band),
		fr1:    nrtab.IsFR1(opts.Band),
	}

	c.minScs = opts.ScsCarrier
	if c.duplex != nrtab.DuplexSUL && opts.ScsSSB < c.minScs {
		c.minScs = opts.ScsSSB
	}
	c.freqRaster = nrtab.ChannelRasterStep(opts.Band, c.minScs)
	c.fOffToCarrier = opts.OffsetToCarrier * 12 * opts.ScsCarrier
	c.bwSSB = 12 * 20 * opts.ScsSSB
	if opts.ScsCommon == 15 || opts.ScsCommon == 30 {
		c.scsKssb = 15
	} else {
		c.scsKssb = opts.ScsCommon
	}
	if opts.ScsCarrier == 30 {
		c.kssbMax = 22
	} else {
		c.kssbMax = 11
	}

	ctx := context.Background()
	if c.duplex == nrtab.DuplexSUL {
		if opts.FcChannelUL == 0 {
			return nil, fmt.Errorf("band n%d is SUL, FcChannelUL required: %w", opts.Band, ErrOutOfBand)
		}
		var err error
		c.cbwUL, c.nrbUL, err = ChannelBandwidth(opts.ScsCarrier, opts.BwUL, opts.Band)
		if err != nil {
			return nil, err
		}
		c.fcUL, err = AlignChannel(ctx, c.log, opts.FcChannelUL, opts.ScsCarrier, opts.BwUL, opts.Band, c.freqRaster, true)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	var err error
	c.cbwDL, c.nrbDL, err = ChannelBandwidth(opts.ScsCarrier, opts.Bw, opts.Band)
	if err != nil {
		return nil, err
	}
	c.fcDL, err = AlignChannel(ctx, c.log, opts.FcChannel, opts.ScsCarrier, opts.Bw, opts.Band, c.freqRaster, false)
	if err != nil {
		return nil, err
	}
	if c.duplex == nrtab.DuplexFDD {
		c.cbwUL, c.nrbUL, err = ChannelBandwidth(opts.ScsCarrier, opts.BwUL, opts.Band)
		if err != nil {
			return nil, err
		}
		fcUL := opts.FcChannelUL
		if fcUL == 0 {
			fcUL, err = ULFromDL(c.fcDL.Snapped, opts.Band, c.freqRaster)
			if err != nil {
				return nil, err
			}
		}
		c.fcUL, err = AlignChannel(ctx, c.log, fcUL, opts.ScsCarrier, opts.BwUL, opts.Band, c.freqRaster, true)
		if err != nil {
			return nil, err
		}
	} else if c.duplex == nrtab.DuplexTDD {
		c.cbwUL, c.nrbUL = c.cbwDL, c.nrbDL
		c.fcUL = c.fcDL
	}

	if !opts.DisableSSB {
		if row, ok := nrtab.SyncRasterRow(opts.Band, opts.ScsSSB); ok {
			c.pattern = row.Pattern
		} else if !opts.DisableSyncRaster {
			return nil, fmt.Errorf("no sync raster for band n%d at ssb scs %d kHz: %w",
				opts.Band, opts.ScsSSB, ErrNoSyncRasterSolution)
		}
		c.cs0, err = ResolveCoreset0(opts.PdcchConfigSIB1, opts.ScsSSB, opts.ScsCommon, c.fr1, opts.Band == 79)
		if err != nil {
			return nil, err
		}
		// The Coreset0 offset is an RB count on the common-SCS grid.
		c.fOffsetRB = c.cs0.OffsetRB * 12 * opts.ScsCommon
	}
	return c, nil
}

// fOffSSBCarrier is the distance from the lower edge of the DL channel to
// the lower edge of the SS block.
func (c *Carrier) fOffSSBCarrier(fSS, fcChannelDL int) int {
	return fSS - c.bwSSB/2 - (fcChannelDL - c.cbwDL/2)
}

// Calculate derives the full frequency plan: SSB placement on the sync
// raster, k_SSB, point A, the ARFCNs and the Coreset0 resource bitmaps.
// It never mutates the Carrier; repeated calls return equal results.
func (c *Carrier) Calculate(ctx context.Context) (*Params, error) {
	o := c.opts
	p := &Params{
		Band:               o.Band,
		Duplex:             string(c.duplex),
		ScsCarrier:         o.ScsCarrier,
		ScsCarrierNum:      Mu(o.ScsCarrier),
		ScsSSB:             o.ScsSSB,
		ScsSSBNum:          Mu(o.ScsSSB),
		ScsCommon:          o.ScsCommon,
		ScsCommonNum:       Mu(o.ScsCommon),
		ScsKssb:            c.scsKssb,
		Bw:                 o.Bw,
		BwUL:               o.BwUL,
		RBSize:             12 * o.ScsCarrier,
		RB6Size:            6 * 12 * o.ScsCarrier,
		FreqRaster:         c.freqRaster,
		OffsetToCarrier:    o.OffsetToCarrier,
		FOffToCarrier:      c.fOffToCarrier,
		FFcToPointA:        o.FFcToPointA,
		PdcchCfgSIB1:       o.PdcchConfigSIB1,
		SSBEnabled:         !o.DisableSSB,
		UseSyncRaster:      !o.DisableSyncRaster && !o.DisableSSB,
		KssbMax:            c.kssbMax,
		FR:                 2,
		Gscn:               -1,
		FSS:                -1,
		ArfcnSSB:           -1,
		Kssb:               -1,
		CbwDLNrb:           -1,
		CbwULNrb:           -1,
		CbwDL:              -1,
		CbwUL:              -1,
		FcChannelDL:        -1,
		FcChannelDLLow:     -1,
		FcChannelDLHigh:    -1,
		FcChannelDLRange:   [3]int{-1, -1, -1},
		FcChannelUL:        -1,
		FcChannelULLow:     -1,
		FcChannelULHigh:    -1,
		FcChannelULRange:   [3]int{-1, -1, -1},
		FcDL:               -1,
		FcUL:               -1,
		Arfcn:              -1,
		ArfcnUL:            -1,
		FPointA:            -1,
		FPointAUL:          -1,
		ArfcnPointA:        -1,
		ArfcnPointAUL:      -1,
		OffsetToPA:         -1,
		BwSSBKHz:           -1,
		BandDLFRange:       [2]int{-1, -1},
		BandULFRange:       [2]int{-1, -1},
		BandBwDL:           -1,
		BandBwUL:           -1,
		MaxLocationAndBwDL: -1,
		MaxLocationAndBwUL: -1,
	}
	if c.fr1 {
		p.FR = 1
	}
	if lo, hi, err := BandSpan(o.Band, c.minScs, false); err == nil {
		p.BandDLFRange = [2]int{lo, hi}
		p.BandBwDL = hi - lo
	}
	if lo, hi, err := BandSpan(o.Band, c.minScs, true); err == nil {
		p.BandULFRange = [2]int{lo, hi}
		p.BandBwUL = hi - lo
	}

	if c.duplex == nrtab.DuplexSUL {
		c.fillUL(p, c.fcUL.Snapped)
		return p, nil
	}

	fcChDL := c.fcDL.Snapped
	p.CbwDLNrb, p.CbwDL = c.nrbDL, c.cbwDL
	p.FcChannelDLLow, p.FcChannelDLHigh = c.fcDL.Low, c.fcDL.High
	p.FcChannelDLRange = [3]int{c.fcDL.Low, c.fcDL.Snapped, c.fcDL.High}
	p.MaxLocationAndBwDL = MaxLocationAndBW(0, o.ScsCarrier, o.Bw, o.Band)

	if !o.DisableSSB {
		gscn, fSS, err := c.placeSSB(ctx, fcChDL)
		if err != nil {
			return nil, err
		}
		fDiff := c.fOffSSBCarrier(fSS, fcChDL) - c.fOffsetRB
		if fDiff < 0 {
			return nil, fmt.Errorf("ssb at %d kHz below coreset0 start: %w", fSS, ErrCoresetAlignment)
		}
		kssb := fDiff / c.scsKssb
		if kssb > c.kssbMax {
			shiftUp, k := 0, 0
			for i := 0; i <= c.kssbMax; i++ {
				if s := fDiff - i*c.scsKssb; s > 0 && s%c.freqRaster == 0 {
					shiftUp, k = s, i
					break
				}
			}
			if shiftUp == 0 {
				shiftUp, k = fDiff, 0
			}
			if fcChDL+shiftUp <= c.fcDL.High {
				c.log.Info(ctx, "shifted channel up to align coreset0 with ssb",
					logging.Int("f_shift_up", shiftUp), logging.Int("k_ssb", k))
				fcChDL += shiftUp
				p.FShiftUp = shiftUp
			} else {
				gscnPrev, err := AlignGSCN(ctx, c.log, gscn, o.Band, o.ScsSSB, -1)
				if err != nil {
					return nil, err
				}
				fSSPrev, err := GSCNToFreq(gscnPrev, c.freqRaster)
				if err != nil {
					return nil, err
				}
				shiftDown := fSS - fSSPrev - shiftUp
				if fcChDL-shiftDown < c.fcDL.Low {
					return nil, fmt.Errorf("no channel placement aligns coreset0 with ssb in band n%d: %w",
						o.Band, ErrCoresetAlignment)
				}
				c.log.Info(ctx, "shifted channel down to previous sync raster point",
					logging.Int("f_shift_down", shiftDown), logging.Int("gscn", gscnPrev))
				gscn, fSS = gscnPrev, fSSPrev
				fcChDL -= shiftDown
				p.FShiftDown = shiftDown
			}
			kssb = k
		}
		if fSS+c.bwSSB/2 > fcChDL+c.cbwDL/2 {
			return nil, fmt.Errorf("ssb at %d kHz exceeds channel upper edge: %w", fSS, ErrNoSyncRasterSolution)
		}
		p.Gscn, p.FSS, p.Kssb = gscn, fSS, kssb
		p.ArfcnSSB = FreqToARFCN(fSS)
		p.BwSSBKHz = c.bwSSB
		p.SSBPattern = string(c.pattern)
		p.FOffSSBCarrier = c.fOffSSBCarrier(fSS, fcChDL)
		p.OffsetRB = c.cs0.OffsetRB
		p.FOffsetRB = c.fOffsetRB
		p.NRBCoreset0 = c.cs0.NRB
		p.NSymCoreset0 = c.cs0.NSymbols
		p.Coreset0Pattern = c.cs0.Pattern
		p.Coreset0Index = c.cs0.Index
		p.Coreset0FDomainRes = initialFreqDomainRes(c.cs0.NRB)
		p.FDomainRes = commonCoresetBitmap(o.OffsetToCarrier, 0, c.cs0.NRB)
		sub := 15
		if !c.fr1 {
			sub = 60
		}
		p.OffsetToPA = (c.fOffToCarrier + c.fOffsetRB) / (12 * sub)
	}

	p.FcChannelDL = fcChDL
	p.Arfcn = FreqToARFCN(fcChDL)
	p.FcDL = fcChDL + o.FFcToPointA - c.fOffToCarrier - c.cbwDL/2
	p.FPointA = p.FcDL - o.FFcToPointA
	p.ArfcnPointA = FreqToARFCN(p.FPointA)

	switch c.duplex {
	case nrtab.DuplexFDD:
		// Any coreset alignment shift applied to the DL center carries
		// over to the UL center to preserve the duplex distance.
		fcChUL := c.fcUL.Snapped + (fcChDL - c.fcDL.Snapped)
		c.fillUL(p, fcChUL)
		if fpaUL, err := ULFromDL(p.FPointA, o.Band, c.freqRaster); err == nil {
			p.FPointAUL = fpaUL
			p.ArfcnPointAUL = FreqToARFCN(fpaUL)
		}
	case nrtab.DuplexTDD:
		p.FcChannelUL = fcChDL
		p.ArfcnUL = p.Arfcn
		p.CbwULNrb, p.CbwUL = c.nrbUL, c.cbwUL
		p.FcChannelULLow, p.FcChannelULHigh = p.FcChannelDLLow, p.FcChannelDLHigh
		p.FcChannelULRange = p.FcChannelDLRange
		p.FcUL = p.FcDL
		p.FPointAUL = p.FPointA
		p.ArfcnPointAUL = p.ArfcnPointA
		p.MaxLocationAndBwUL = p.MaxLocationAndBwDL
	}
	return p, nil
}

// placeSSB finds the SSB center frequency at or above its minimum
// position, on the sync raster unless disabled.
func (c *Carrier) placeSSB(ctx context.Context, fcChDL int) (gscn, fSS int, err error) {
	o := c.opts
	// Lower bound for the SSB center; the Coreset0 offset counts here in
	// carrier-SCS resource blocks.
	fssbMin := fcChDL - c.cbwDL/2 + c.bwSSB/2 + c.cs0.OffsetRB*12*o.ScsCarrier
	if o.DisableSyncRaster {
		return -1, fssbMin, nil
	}
	gscn, err = FreqToGSCN(fssbMin, c.freqRaster)
	if err != nil {
		return 0, 0, err
	}
	fSS, err = GSCNToFreq(gscn, c.freqRaster)
	if err != nil {
		return 0, 0, err
	}
	// On the 100 kHz raster below 3 GHz the SSB subcarrier grid must sit
	// on a 15 kHz offset from the channel grid; at most two raster steps
	// fix it.
	if fssbMin < gscnSeg2BaseKHz && c.freqRaster == 100 {
		for i := 0; i < 2 && c.fOffSSBCarrier(fSS, fcChDL)%15 != 0; i++ {
			gscn++
			fSS, err = GSCNToFreq(gscn, c.freqRaster)
			if err != nil {
				return 0, 0, err
			}
		}
	}
	gscn, err = AlignGSCN(ctx, c.log, gscn, o.Band, o.ScsSSB, 0)
	if err != nil {
		return 0, 0, err
	}
	fSS, err = GSCNToFreq(gscn, c.freqRaster)
	if err != nil {
		return 0, 0, err
	}
	return gscn, fSS, nil
}

func (c *Carrier) fillUL(p *Params, fcChUL int) {
	o := c.opts
	p.CbwULNrb, p.CbwUL = c.nrbUL, c.cbwUL
	p.FcChannelUL = fcChUL
	p.FcChannelULLow, p.FcChannelULHigh = c.fcUL.Low, c.fcUL.High
	p.FcChannelULRange = [3]int{c.fcUL.Low, c.fcUL.Snapped, c.fcUL.High}
	p.ArfcnUL = FreqToARFCN(fcChUL)
	p.FcUL = fcChUL + o.FFcToPointA - c.fOffToCarrier - c.cbwUL/2
	p.MaxLocationAndBwUL = MaxLocationAndBW(0, o.ScsCarrier, o.BwUL, o.Band)
	if c.duplex == nrtab.DuplexSUL {
		p.FPointAUL = p.FcUL - o.FFcToPointA
		p.ArfcnPointAUL = FreqToARFCN(p.FPointAUL)
	}
}
