package core

import "errors"

// Resolution failures are deterministic validation errors: they mean the
// input combination is invalid or unsupported, never a transient condition.
// All of them propagate to the caller unmodified; use errors.Is to test.
var (
	// ErrOutOfBand reports a frequency or ARFCN outside the defined
	// frequency ranges of the requested band.
	ErrOutOfBand = errors.New("frequency out of band range")

	// ErrBandwidthNotSupported reports a channel bandwidth the band cannot
	// host at the requested subcarrier spacing.
	ErrBandwidthNotSupported = errors.New("channel bandwidth not supported in band")

	// ErrNoSyncRasterSolution reports that no sync raster entry fits inside
	// the carrier's channel bandwidth.
	ErrNoSyncRasterSolution = errors.New("no sync raster entry fits the channel")

	// ErrInvalidCoreset0Index reports a pdcch-ConfigSIB1 value whose
	// Coreset0 row does not exist for the numerology combination.
	ErrInvalidCoreset0Index = errors.New("no coreset0 entry for index and numerology")

	// ErrCoresetAlignment reports that the frequency-shift search could not
	// place the bandwidth-part start on the Coreset0 start within k_ssb_max.
	ErrCoresetAlignment = errors.New("cannot align bwp start with coreset0")

	// ErrNoNominalSpacingEntry reports a bandwidth pair with no nominal
	// channel spacing multiplier for the band.
	ErrNoNominalSpacingEntry = errors.New("no nominal spacing entry for bandwidth pair")
)
