package main

import (
	"context"
	"testing"

	"github.com/signalsfoundry/nr-freqplan/core"
)

func TestRunCarrier(t *testing.T) {
	out, err := runCarrier(context.Background(), core.CarrierOptions{
		Band: 77, Bw: 50, ScsCarrier: 30, ScsSSB: 30, ScsCommon: 30,
		FcChannel: 3750000, PdcchConfigSIB1: 24, OffsetToCarrier: 102,
	})
	if err != nil {
		t.Fatalf("runCarrier: %v", err)
	}
	plan, ok := out.(*core.Params)
	if !ok {
		t.Fatalf("unexpected result type %T", out)
	}
	if plan.ArfcnPointA != 645956 || plan.Gscn != 8006 {
		t.Errorf("plan = arfcn_point_a %d gscn %d, want 645956/8006", plan.ArfcnPointA, plan.Gscn)
	}
}

func TestRunSpacing(t *testing.T) {
	out, err := runSpacing(core.CAPair{Band: 77, Bw1: 50, Bw2: 80, Scs1: 30, Scs2: 30})
	if err != nil {
		t.Fatalf("runSpacing: %v", err)
	}
	res := out.(spacingResult)
	if res.NominalSpacingKHz != 64860 {
		t.Errorf("nominal spacing = %d, want 64860", res.NominalSpacingKHz)
	}
}

func TestRunSSB(t *testing.T) {
	out, err := runSSB(257, 120, 120, "10000000", "10101010", 0, 0)
	if err != nil {
		t.Fatalf("runSSB: %v", err)
	}
	res := out.(ssbResult)
	if res.Pattern != "caseD" || len(res.Candidates) != 4 {
		t.Errorf("result = %+v, want caseD with 4 candidates", res)
	}
}

func TestRunCarrierBadBandwidth(t *testing.T) {
	if _, err := runCarrier(context.Background(), core.CarrierOptions{Band: 77, Bw: 7, ScsCarrier: 30}); err == nil {
		t.Error("expected error for unsupported bandwidth")
	}
}
