// Command nrfreq computes 5G NR frequency-domain parameters from the
// command line: full carrier plans, carrier aggregation channel spacings,
// and SSB burst time positions. Results are printed as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/signalsfoundry/nr-freqplan/core"
	"github.com/signalsfoundry/nr-freqplan/internal/logging"
)

func main() {
	mode := flag.String("mode", "carrier", "what to compute: carrier | spacing | ssb")

	band := flag.Int("band", 66, "NR operating band number")
	bw := flag.Int("bw", 0, "DL channel bandwidth in MHz (0 = default)")
	bwUL := flag.Int("bw-ul", 0, "UL channel bandwidth in MHz (0 = same as -bw)")
	scsCarrier := flag.Int("scs", 0, "carrier subcarrier spacing in kHz (0 = default)")
	scsSSB := flag.Int("scs-ssb", 0, "SSB subcarrier spacing in kHz (0 = same as -scs)")
	scsCommon := flag.Int("scs-common", 0, "subCarrierSpacingCommon in kHz (0 = same as -scs)")
	fc := flag.Int("fc", 0, "DL channel center frequency in kHz")
	fcUL := flag.Int("fc-ul", 0, "UL channel center frequency in kHz (required for SUL bands)")
	pdcch := flag.Int("pdcch-config-sib1", 0, "pdcch-ConfigSIB1 value from MIB")
	offsetToCarrier := flag.Int("offset-to-carrier", 0, "offsetToCarrier in RBs from point A")
	noSyncRaster := flag.Bool("no-sync-raster", false, "place the SSB at its minimum frequency instead of the sync raster")
	noSSB := flag.Bool("no-ssb", false, "skip SSB and coreset0 placement")

	bw2 := flag.Int("bw2", 0, "second carrier bandwidth in MHz (spacing mode)")
	scs2 := flag.Int("scs2", 0, "second carrier subcarrier spacing in kHz (spacing mode)")

	inOneGroup := flag.String("in-one-group", "10000000", "ssb-PositionsInBurst group bitmap (ssb mode)")
	groupPresence := flag.String("group-presence", "00000000", "ssb-PositionsInBurst group presence bitmap, FR2 only (ssb mode)")
	periodicity := flag.Int("periodicity-ms", 0, "SSB burst periodicity in ms (0 = 20)")
	sfn := flag.Int("sfn", 0, "system frame number for slot listing (ssb mode)")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	var out any
	var err error
	switch *mode {
	case "carrier":
		out, err = runCarrier(ctx, core.CarrierOptions{
			Band:              *band,
			Bw:                *bw,
			BwUL:              *bwUL,
			ScsCarrier:        *scsCarrier,
			ScsSSB:            *scsSSB,
			ScsCommon:         *scsCommon,
			FcChannel:         *fc,
			FcChannelUL:       *fcUL,
			PdcchConfigSIB1:   *pdcch,
			OffsetToCarrier:   *offsetToCarrier,
			DisableSyncRaster: *noSyncRaster,
			DisableSSB:        *noSSB,
			Logger:            log,
		})
	case "spacing":
		scs1 := *scsCarrier
		if scs1 == 0 {
			scs1 = 30
		}
		second := *scs2
		if second == 0 {
			second = scs1
		}
		out, err = runSpacing(core.CAPair{
			Band: *band, Bw1: *bw, Bw2: *bw2, Scs1: scs1, Scs2: second,
		})
	case "ssb":
		out, err = runSSB(*band, *scsSSB, *scsCommon, *inOneGroup, *groupPresence, *periodicity, *sfn)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q, want carrier, spacing, or ssb\n", *mode)
		os.Exit(2)
	}
	if err != nil {
		log.Error(ctx, "computation failed", logging.String("mode", *mode), logging.String("error", err.Error()))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Error(ctx, "failed to encode result", logging.String("error", err.Error()))
		os.Exit(1)
	}
}

func runCarrier(ctx context.Context, opts core.CarrierOptions) (any, error) {
	carrier, err := core.NewCarrier(opts)
	if err != nil {
		return nil, err
	}
	return carrier.Calculate(ctx)
}

type spacingResult struct {
	NominalSpacingKHz int   `json:"nominal_spacing_khz"`
	SpacingsKHz       []int `json:"spacings_khz"`
}

func runSpacing(pair core.CAPair) (any, error) {
	spacings, err := core.IntraContiguousSpacings(pair)
	if err != nil {
		return nil, err
	}
	return spacingResult{NominalSpacingKHz: spacings[0], SpacingsKHz: spacings}, nil
}

type ssbResult struct {
	Pattern            string              `json:"pattern"`
	PositionsInBurst   string              `json:"positions_in_burst"`
	Candidates         []core.SsbCandidate `json:"candidates"`
	CandidatesRelative []core.SsbCandidate `json:"candidates_relative"`
	SlotsInFrame       []int               `json:"slots_in_frame"`
}

func runSSB(band, scsSSB, scsCommon int, inOneGroup, groupPresence string, periodicityMs, sfn int) (any, error) {
	if scsSSB == 0 {
		scsSSB = 30
	}
	if scsCommon == 0 {
		scsCommon = scsSSB
	}
	burst, err := core.NewSsbBurst(band, scsSSB, scsCommon, inOneGroup, groupPresence, periodicityMs)
	if err != nil {
		return nil, err
	}
	return ssbResult{
		Pattern:            string(burst.Pattern()),
		PositionsInBurst:   burst.PositionsInBurst(),
		Candidates:         burst.Candidates(),
		CandidatesRelative: burst.CandidatesRelative(),
		SlotsInFrame:       burst.SlotsInFrame(sfn),
	}, nil
}
