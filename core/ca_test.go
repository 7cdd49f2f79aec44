package core

import (
	"errors"
	"testing"
)

func TestNominalSpacingBand77(t *testing.T) {
	got, err := NominalSpacing(CAPair{Band: 77, Bw1: 50, Bw2: 80, Scs1: 30, Scs2: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 64860 {
		t.Errorf("nominal spacing = %d, want 64860", got)
	}
}

func TestNominalSpacingSymmetric(t *testing.T) {
	a, err := NominalSpacing(CAPair{Band: 77, Bw1: 50, Bw2: 80, Scs1: 30, Scs2: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NominalSpacing(CAPair{Band: 77, Bw1: 80, Bw2: 50, Scs1: 30, Scs2: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("spacing not symmetric: %d vs %d", a, b)
	}
}

func TestNominalSpacingNoGuardbandEntry(t *testing.T) {
	_, err := NominalSpacing(CAPair{Band: 77, Bw1: 50, Bw2: 80, Scs1: 15, Scs2: 15})
	if !errors.Is(err, ErrNoNominalSpacingEntry) {
		t.Errorf("expected ErrNoNominalSpacingEntry, got %v", err)
	}
}

func TestIntraContiguousSpacings(t *testing.T) {
	got, err := IntraContiguousSpacings(CAPair{Band: 77, Bw1: 50, Bw2: 80, Scs1: 30, Scs2: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{64860, 64830, 64800}
	if len(got) != len(want) {
		t.Fatalf("spacings = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("spacings[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i] >= got[i-1] {
			t.Errorf("spacings not strictly decreasing: %v", got)
		}
	}
}
