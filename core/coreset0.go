package core

import (
	"fmt"
	"strings"

	"github.com/signalsfoundry/nr-freqplan/nrtab"
)

// Coreset0Config is the Coreset0 configuration selected by the four most
// significant bits of pdcch-ConfigSIB1, TS 38.213 tables 13-1 to 13-10.
type Coreset0Config struct {
	Index    int
	Pattern  int
	NRB      int
	NSymbols int
	OffsetRB int
}

// ResolveCoreset0 looks up the Coreset0 configuration for a
// pdcch-ConfigSIB1 value. min40 selects the 40 MHz minimum bandwidth
// tables used by bands such as n79. It returns ErrInvalidCoreset0Index
// when the index has no row in the applicable table.
func ResolveCoreset0(pdcchConfigSIB1, scsSSBKHz, scsPDCCHKHz int, fr1, min40 bool) (Coreset0Config, error) {
	idx := pdcchConfigSIB1 >> 4
	table := nrtab.Coreset0Table(scsSSBKHz, scsPDCCHKHz, fr1, min40)
	if table == nil {
		return Coreset0Config{}, fmt.Errorf("no coreset0 table for ssb scs %d, pdcch scs %d: %w",
			scsSSBKHz, scsPDCCHKHz, ErrInvalidCoreset0Index)
	}
	if idx < 0 || idx >= len(table) {
		return Coreset0Config{}, fmt.Errorf("coreset0 index %d (pdcch-ConfigSIB1 %d) out of table: %w",
			idx, pdcchConfigSIB1, ErrInvalidCoreset0Index)
	}
	row := table[idx]
	return Coreset0Config{
		Index:    idx,
		Pattern:  row.Pattern,
		NRB:      row.NRB,
		NSymbols: row.NSym,
		OffsetRB: row.OffsetRB,
	}, nil
}

// initialFreqDomainRes returns the 45-bit frequency domain resource
// bitmap covering the Coreset0 width, one bit per group of 6 RBs.
func initialFreqDomainRes(nRB int) string {
	ones := nRB / 6
	if ones > 45 {
		ones = 45
	}
	var b strings.Builder
	b.WriteString(strings.Repeat("1", ones))
	b.WriteString(strings.Repeat("0", 45-ones))
	return b.String()
}

// commonCoresetBitmap builds the frequency domain resource bitmap of a
// common coreset aligned to 6-RB groups of the carrier grid. s0 is the
// coreset start in RBs from point A, offsetToCarrier the carrier offset
// in RBs, and nRB the coreset width.
func commonCoresetBitmap(offsetToCarrier, offsetCoreset0Carrier, nRB int) string {
	s0 := offsetToCarrier + offsetCoreset0Carrier
	sc := 6 * ceilDiv(s0, 6)
	startRBG := floorDiv(sc-offsetToCarrier, 6)
	nRBG := floorDiv(s0+nRB-sc, 6)
	if startRBG < 0 {
		startRBG = 0
	}
	if nRBG < 0 {
		nRBG = 0
	}
	if startRBG+nRBG > 45 {
		nRBG = 45 - startRBG
	}
	var b strings.Builder
	b.WriteString(strings.Repeat("0", startRBG))
	b.WriteString(strings.Repeat("1", nRBG))
	b.WriteString(strings.Repeat("0", 45-startRBG-nRBG))
	return b.String()
}
