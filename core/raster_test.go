package core

import (
	"context"
	"errors"
	"testing"
)

func TestAlignChannelBand77(t *testing.T) {
	r, err := AlignChannel(context.Background(), nil, 3750000, 30, 50, 77, 30, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Low != 3323940 || r.Snapped != 3750000 || r.High != 4176060 {
		t.Errorf("range = %+v, want {3323940 3750000 4176060}", r)
	}
}

func TestAlignChannelSnapsToRaster(t *testing.T) {
	r, err := AlignChannel(context.Background(), nil, 3750013, 30, 50, 77, 30, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Snapped != 3750000 {
		t.Errorf("snapped = %d, want 3750000", r.Snapped)
	}
}

func TestAlignChannelClampsToBandEdge(t *testing.T) {
	r, err := AlignChannel(context.Background(), nil, 3000000, 30, 50, 77, 30, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Snapped != r.Low {
		t.Errorf("snapped = %d, want clamp to low %d", r.Snapped, r.Low)
	}
}

func TestAlignChannelUnsupportedBandwidth(t *testing.T) {
	_, err := AlignChannel(context.Background(), nil, 3750000, 30, 7, 77, 30, false)
	if !errors.Is(err, ErrBandwidthNotSupported) {
		t.Errorf("expected ErrBandwidthNotSupported, got %v", err)
	}
}

func TestChannelBandwidth(t *testing.T) {
	cbw, nrb, err := ChannelBandwidth(30, 50, 77)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nrb != 133 || cbw != 47880 {
		t.Errorf("got nrb=%d cbw=%d, want 133/47880", nrb, cbw)
	}
}

func TestMaxLocationAndBW(t *testing.T) {
	if got := MaxLocationAndBW(0, 30, 50, 77); got != 36300 {
		t.Errorf("riv = %d, want 36300", got)
	}
	// 270 RBs crosses the RIV fold at 138.
	if got := MaxLocationAndBW(0, 15, 50, 77); got != 1924 {
		t.Errorf("riv = %d, want 1924", got)
	}
}

func TestBandSpan(t *testing.T) {
	lo, hi, err := BandSpan(77, 30, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lo != 3300000 || hi != 4200000 {
		t.Errorf("span = %d..%d, want 3300000..4200000", lo, hi)
	}
}
