package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/signalsfoundry/nr-freqplan/nrtab"
)

// SsbCandidate is one transmitted SS/PBCH block candidate: its index in
// the burst and its time position in symbols of the common numerology.
// StartSymbol counts from the start of the half frame; Slot and Subframe
// locate it within the half frame.
type SsbCandidate struct {
	Index       int `json:"index"`
	StartSymbol int `json:"start_symbol"`
	Slot        int `json:"slot"`
	Subframe    int `json:"subframe"`
}

// SsbBurst describes the SSB burst of a carrier: which candidates are
// transmitted (ssb-PositionsInBurst) and where they fall in time for the
// block pattern of the band. The value is immutable once built.
type SsbBurst struct {
	band          int
	scsSSB        int
	scsCommon     int
	pattern       nrtab.SSBPattern
	periodicityMs int
	positions     string
}

// startSymbolTable returns the candidate start symbols for a pattern, in
// candidate index order, TS 38.213 section 4.1.
func startSymbolTable(pattern nrtab.SSBPattern, option int) []int {
	var base []int
	var stride int
	var ns []int
	switch pattern {
	case nrtab.SSBCaseA, nrtab.SSBCaseC:
		base, stride = []int{2, 8}, 14
		if option == 0 {
			ns = []int{0, 1}
		} else {
			ns = []int{0, 1, 2, 3}
		}
	case nrtab.SSBCaseB:
		base, stride = []int{4, 8, 16, 20}, 28
		if option == 0 {
			ns = []int{0}
		} else {
			ns = []int{0, 1}
		}
	case nrtab.SSBCaseD:
		base, stride = []int{4, 8, 16, 20}, 28
		ns = []int{0, 1, 2, 3, 5, 6, 7, 8, 10, 11, 12, 13, 15, 16, 17, 18}
	case nrtab.SSBCaseE:
		base, stride = []int{8, 12, 16, 20, 32, 36, 40, 44}, 56
		ns = []int{0, 1, 2, 3, 5, 6, 7, 8}
	default:
		return nil
	}
	syms := make([]int, 0, len(base)*len(ns))
	for _, n := range ns {
		for _, b := range base {
			syms = append(syms, b+n*stride)
		}
	}
	return syms
}

// patternOption selects between the low-band and high-band candidate
// counts of cases A to C. Cases D and E have a single option.
func patternOption(band int, pattern nrtab.SSBPattern) int {
	b, ok := nrtab.BandByID(band)
	if !ok {
		return 0
	}
	switch pattern {
	case nrtab.SSBCaseA, nrtab.SSBCaseB:
		if b.DLHighKHz > 3_000_000 {
			return 1
		}
	case nrtab.SSBCaseC:
		switch b.Duplex {
		case nrtab.DuplexFDD:
			if b.DLHighKHz > 3_000_000 {
				return 1
			}
		case nrtab.DuplexSUL:
			if b.ULHighKHz > 2_400_000 {
				return 1
			}
		default:
			if b.DLHighKHz > 2_400_000 {
				return 1
			}
		}
	}
	return 0
}

func validBitmap(s string) bool {
	for _, r := range s {
		if r != '0' && r != '1' {
			return false
		}
	}
	return true
}

// NewSsbBurst builds the burst description for a band. inOneGroup is the
// 8-bit ssb-PositionsInBurst group bitmap; groupPresence is the 8-bit
// group presence bitmap, used only on FR2 bands and ignored elsewhere.
// periodicityMs zero defaults to 20 ms.
func NewSsbBurst(band, scsSSBKHz, scsCommonKHz int, inOneGroup, groupPresence string, periodicityMs int) (SsbBurst, error) {
	row, ok := nrtab.SyncRasterRow(band, scsSSBKHz)
	if !ok {
		return SsbBurst{}, fmt.Errorf("no ssb pattern for band n%d at scs %d kHz: %w",
			band, scsSSBKHz, ErrNoSyncRasterSolution)
	}
	if !validBitmap(inOneGroup) || !validBitmap(groupPresence) {
		return SsbBurst{}, fmt.Errorf("positions bitmap must contain only 0 and 1")
	}
	if periodicityMs == 0 {
		periodicityMs = 20
	}
	b := SsbBurst{
		band:          band,
		scsSSB:        scsSSBKHz,
		scsCommon:     scsCommonKHz,
		pattern:       row.Pattern,
		periodicityMs: periodicityMs,
	}
	lMax := len(startSymbolTable(b.pattern, patternOption(band, b.pattern)))
	if lMax == 0 {
		return SsbBurst{}, fmt.Errorf("no candidate table for band n%d: %w", band, ErrNoSyncRasterSolution)
	}
	if nrtab.IsFR1(band) {
		if len(inOneGroup) < lMax {
			return SsbBurst{}, fmt.Errorf("positions bitmap needs %d bits, got %d", lMax, len(inOneGroup))
		}
		b.positions = inOneGroup[:lMax]
		return b, nil
	}
	if len(inOneGroup) < 8 || len(groupPresence) < 8 {
		return SsbBurst{}, fmt.Errorf("fr2 positions bitmaps need 8 bits each")
	}
	var sb strings.Builder
	for g := 0; g < 8; g++ {
		if groupPresence[g] == '1' {
			sb.WriteString(inOneGroup[:8])
		} else {
			sb.WriteString("00000000")
		}
	}
	b.positions = sb.String()
	return b, nil
}

// Pattern returns the block pattern (case A to E) of the burst.
func (b SsbBurst) Pattern() nrtab.SSBPattern { return b.pattern }

// PositionsInBurst returns the expanded candidate bitmap, one character
// per candidate index.
func (b SsbBurst) PositionsInBurst() string { return b.positions }

// CandidateIndices returns the indices of transmitted candidates in
// ascending order.
func (b SsbBurst) CandidateIndices() []int {
	var idx []int
	for i := 0; i < len(b.positions); i++ {
		if b.positions[i] == '1' {
			idx = append(idx, i)
		}
	}
	return idx
}

// CandidateStartSymbols returns the start symbols of the transmitted
// candidates, in the SSB numerology, counted from the half-frame start.
func (b SsbBurst) CandidateStartSymbols() []int {
	table := startSymbolTable(b.pattern, patternOption(b.band, b.pattern))
	var syms []int
	for _, i := range b.CandidateIndices() {
		if i < len(table) {
			syms = append(syms, table[i])
		}
	}
	return syms
}

// commonSymbol rescales a start symbol from the SSB numerology to the
// common numerology.
func (b SsbBurst) commonSymbol(sym int) int {
	d := Mu(b.scsCommon) - Mu(b.scsSSB)
	if d >= 0 {
		return sym << d
	}
	return sym >> -d
}

// Candidates returns the transmitted candidates with their absolute time
// positions in the common numerology: StartSymbol from the half-frame
// start, Slot and Subframe derived from it.
func (b SsbBurst) Candidates() []SsbCandidate {
	table := startSymbolTable(b.pattern, patternOption(b.band, b.pattern))
	spsf := SlotsPerSubframe(b.scsCommon)
	var out []SsbCandidate
	for _, i := range b.CandidateIndices() {
		if i >= len(table) {
			continue
		}
		sym := b.commonSymbol(table[i])
		slot := sym / symbolsPerSlot
		out = append(out, SsbCandidate{
			Index:       i,
			StartSymbol: sym,
			Slot:        slot,
			Subframe:    slot / spsf,
		})
	}
	return out
}

// CandidatesRelative returns the transmitted candidates with positions
// relative to their containing unit: symbol within the slot, slot within
// the subframe, subframe within the half frame.
func (b SsbBurst) CandidatesRelative() []SsbCandidate {
	spsf := SlotsPerSubframe(b.scsCommon)
	out := b.Candidates()
	for i := range out {
		out[i].StartSymbol %= symbolsPerSlot
		out[i].Slot %= spsf
		out[i].Subframe %= subframesPerFrame / 2
	}
	return out
}

// SlotsInFrame returns the slots of system frame sfn that carry SSB
// candidates, or nil when the burst does not occur in that frame. For
// periodicities under 10 ms the burst repeats in the second half frame.
func (b SsbBurst) SlotsInFrame(sfn int) []int {
	if (sfn*10)%b.periodicityMs != 0 {
		return nil
	}
	spsf := SlotsPerSubframe(b.scsCommon)
	seen := map[int]bool{}
	for _, c := range b.Candidates() {
		seen[c.Slot] = true
		if b.periodicityMs < 10 {
			seen[c.Slot+5*spsf] = true
		}
	}
	slots := make([]int, 0, len(seen))
	for s := range seen {
		slots = append(slots, s)
	}
	sort.Ints(slots)
	return slots
}
