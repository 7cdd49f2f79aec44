package core

import (
	"errors"
	"testing"
)

func TestFreqToARFCNPerSegment(t *testing.T) {
	cases := []struct {
		fKHz  int
		arfcn int
	}{
		{1000000, 200000},
		{2112050, 422410},
		{3689340, 645956},
		{3750000, 650000},
		{24250080, 2016667},
		{25000080, 2029167},
	}
	for _, c := range cases {
		if got := FreqToARFCN(c.fKHz); got != c.arfcn {
			t.Errorf("FreqToARFCN(%d) = %d, want %d", c.fKHz, got, c.arfcn)
		}
	}
}

func TestARFCNToFreqRoundTrip(t *testing.T) {
	for _, arfcn := range []int{0, 200000, 422410, 599999, 600000, 650000, 2016667, 2100000} {
		f := ARFCNToFreq(arfcn)
		if got := FreqToARFCN(f); got != arfcn {
			t.Errorf("round trip of arfcn %d via %d kHz gave %d", arfcn, f, got)
		}
	}
}

func TestFreqToARFCNInBand(t *testing.T) {
	arfcn, err := FreqToARFCNInBand(3750000, 77)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if arfcn != 650000 {
		t.Errorf("arfcn = %d, want 650000", arfcn)
	}
	if _, err := FreqToARFCNInBand(1000000, 77); !errors.Is(err, ErrOutOfBand) {
		t.Errorf("expected ErrOutOfBand, got %v", err)
	}
}

func TestULFromDLDuplexDistance(t *testing.T) {
	ul, err := ULFromDL(2155000, 66, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ul != 1755000 {
		t.Errorf("ul = %d, want 1755000", ul)
	}
	dl, err := DLFromUL(ul, 66, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dl != 2155000 {
		t.Errorf("dl = %d, want 2155000", dl)
	}
}
