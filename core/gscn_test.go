package core

import (
	"context"
	"errors"
	"testing"
)

func TestGSCNToFreqSegments(t *testing.T) {
	cases := []struct {
		gscn   int
		raster int
		fKHz   int
	}{
		{5279, 100, 2112050},
		{7499, 30, 3000000},
		{8006, 30, 3730080},
		{8009, 30, 3734400},
		{22256, 120, 24250080},
		{22388, 120, 26531040},
	}
	for _, c := range cases {
		f, err := GSCNToFreq(c.gscn, c.raster)
		if err != nil {
			t.Fatalf("GSCNToFreq(%d): %v", c.gscn, err)
		}
		if f != c.fKHz {
			t.Errorf("GSCNToFreq(%d) = %d, want %d", c.gscn, f, c.fKHz)
		}
	}
}

func TestGSCNToFreqOutOfRange(t *testing.T) {
	if _, err := GSCNToFreq(1, 100); !errors.Is(err, ErrNoSyncRasterSolution) {
		t.Errorf("expected ErrNoSyncRasterSolution, got %v", err)
	}
	if _, err := GSCNToFreq(26640, 120); !errors.Is(err, ErrNoSyncRasterSolution) {
		t.Errorf("expected ErrNoSyncRasterSolution, got %v", err)
	}
}

func TestFreqToGSCNRoundsUp(t *testing.T) {
	g, err := FreqToGSCN(3730020, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g != 8006 {
		t.Errorf("gscn = %d, want 8006", g)
	}
	f, err := GSCNToFreq(g, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f < 3730020 {
		t.Errorf("sync raster point %d below requested %d", f, 3730020)
	}
}

func TestFreqToGSCNLowBandPicksClosestAbove(t *testing.T) {
	g, err := FreqToGSCN(2112000, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g != 5279 {
		t.Errorf("gscn = %d, want 5279", g)
	}
}

func TestAlignGSCNExplicitList(t *testing.T) {
	ctx := context.Background()
	g, err := AlignGSCN(ctx, nil, 6440, 38, 15, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g != 6443 {
		t.Errorf("aligned = %d, want 6443", g)
	}
	g, err = AlignGSCN(ctx, nil, 6440, 38, 15, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g != 6432 {
		t.Errorf("previous = %d, want 6432", g)
	}
	// Past the last entry clamps to the end of the list.
	g, err = AlignGSCN(ctx, nil, 7000, 38, 15, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g != 6543 {
		t.Errorf("clamped = %d, want 6543", g)
	}
}

func TestAlignGSCNSteppedRange(t *testing.T) {
	ctx := context.Background()
	g, err := AlignGSCN(ctx, nil, 8485, 79, 30, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g != 8496 {
		t.Errorf("aligned = %d, want 8496", g)
	}
	g, err = AlignGSCN(ctx, nil, 8485, 79, 30, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g != 8480 {
		t.Errorf("previous = %d, want 8480", g)
	}
}

func TestAlignGSCNUnknownBand(t *testing.T) {
	if _, err := AlignGSCN(context.Background(), nil, 8006, 77, 240, 0); !errors.Is(err, ErrNoSyncRasterSolution) {
		t.Errorf("expected ErrNoSyncRasterSolution, got %v", err)
	}
}
