package core

import (
	"errors"
	"reflect"
	"testing"

	"github.com/signalsfoundry/nr-freqplan/nrtab"
)

func TestSsbBurstFR2GroupExpansion(t *testing.T) {
	b, err := NewSsbBurst(257, 120, 120, "10000000", "10101010", 0)
	if err != nil {
		t.Fatalf("NewSsbBurst: %v", err)
	}
	if b.Pattern() != nrtab.SSBCaseD {
		t.Fatalf("pattern = %s, want caseD", b.Pattern())
	}
	if got := b.CandidateIndices(); !reflect.DeepEqual(got, []int{0, 16, 32, 48}) {
		t.Fatalf("indices = %v, want [0 16 32 48]", got)
	}
	want := []SsbCandidate{
		{Index: 0, StartSymbol: 4, Slot: 0, Subframe: 0},
		{Index: 16, StartSymbol: 144, Slot: 10, Subframe: 1},
		{Index: 32, StartSymbol: 284, Slot: 20, Subframe: 2},
		{Index: 48, StartSymbol: 424, Slot: 30, Subframe: 3},
	}
	if got := b.Candidates(); !reflect.DeepEqual(got, want) {
		t.Errorf("candidates = %v, want %v", got, want)
	}
}

func TestSsbBurstFR2DownscalesToCommonNumerology(t *testing.T) {
	b, err := NewSsbBurst(257, 120, 60, "10000000", "01000000", 0)
	if err != nil {
		t.Fatalf("NewSsbBurst: %v", err)
	}
	got := b.Candidates()
	if len(got) != 1 {
		t.Fatalf("candidates = %v, want one entry", got)
	}
	// Candidate 8 starts at symbol 60 in the SSB numerology, symbol 30
	// after halving to 60 kHz slots.
	if got[0].Index != 8 || got[0].StartSymbol != 30 || got[0].Slot != 2 {
		t.Errorf("candidate = %+v, want index 8 symbol 30 slot 2", got[0])
	}
}

func TestSsbBurstFR1IgnoresGroupPresence(t *testing.T) {
	b, err := NewSsbBurst(77, 30, 30, "10100000", "00000000", 0)
	if err != nil {
		t.Fatalf("NewSsbBurst: %v", err)
	}
	if got := b.CandidateIndices(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("indices = %v, want [0 2]", got)
	}
}

func TestSsbBurstFR1CaseCHighBand(t *testing.T) {
	// Band 77 tops out above 2.4 GHz so case C uses the 8-candidate form.
	b, err := NewSsbBurst(77, 30, 30, "11111111", "", 0)
	if err != nil {
		t.Fatalf("NewSsbBurst: %v", err)
	}
	if got := len(b.CandidateIndices()); got != 8 {
		t.Errorf("candidate count = %d, want 8", got)
	}
	syms := b.CandidateStartSymbols()
	want := []int{2, 8, 16, 22, 30, 36, 44, 50}
	if !reflect.DeepEqual(syms, want) {
		t.Errorf("start symbols = %v, want %v", syms, want)
	}
}

func TestSsbBurstEmptyBitmap(t *testing.T) {
	b, err := NewSsbBurst(77, 30, 30, "00000000", "", 0)
	if err != nil {
		t.Fatalf("NewSsbBurst: %v", err)
	}
	if got := b.Candidates(); len(got) != 0 {
		t.Errorf("candidates = %v, want none", got)
	}
	if got := b.SlotsInFrame(0); len(got) != 0 {
		t.Errorf("slots = %v, want none", got)
	}
}

func TestSsbBurstCandidatesRelative(t *testing.T) {
	b, err := NewSsbBurst(257, 120, 120, "10000000", "10101010", 0)
	if err != nil {
		t.Fatalf("NewSsbBurst: %v", err)
	}
	rel := b.CandidatesRelative()
	if len(rel) != 4 {
		t.Fatalf("candidates = %v, want 4", rel)
	}
	// Candidate 16 is absolute symbol 144 = slot 10 symbol 4, subframe 1.
	if rel[1].StartSymbol != 4 || rel[1].Slot != 2 || rel[1].Subframe != 1 {
		t.Errorf("relative candidate = %+v, want symbol 4 slot 2 subframe 1", rel[1])
	}
}

func TestSsbBurstSlotsInFrame(t *testing.T) {
	b, err := NewSsbBurst(257, 120, 120, "10000000", "10101010", 0)
	if err != nil {
		t.Fatalf("NewSsbBurst: %v", err)
	}
	if got := b.SlotsInFrame(1); got != nil {
		t.Errorf("sfn 1 should not carry the burst at 20 ms, got %v", got)
	}
	want := []int{0, 10, 20, 30}
	if got := b.SlotsInFrame(2); !reflect.DeepEqual(got, want) {
		t.Errorf("sfn 2 slots = %v, want %v", got, want)
	}
}

func TestSsbBurstShortPeriodicityRepeatsInSecondHalfFrame(t *testing.T) {
	b, err := NewSsbBurst(77, 30, 30, "11000000", "", 5)
	if err != nil {
		t.Fatalf("NewSsbBurst: %v", err)
	}
	want := []int{0, 10}
	if got := b.SlotsInFrame(0); !reflect.DeepEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestSsbBurstUnknownBand(t *testing.T) {
	if _, err := NewSsbBurst(999, 30, 30, "10000000", "", 0); !errors.Is(err, ErrNoSyncRasterSolution) {
		t.Errorf("expected ErrNoSyncRasterSolution, got %v", err)
	}
}

func TestSsbBurstRejectsBadBitmap(t *testing.T) {
	if _, err := NewSsbBurst(77, 30, 30, "10x00000", "", 0); err == nil {
		t.Error("expected error for non-binary bitmap")
	}
}
