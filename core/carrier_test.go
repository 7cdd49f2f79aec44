package core

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func mustPlan(t *testing.T, opts CarrierOptions) *Params {
	t.Helper()
	c, err := NewCarrier(opts)
	if err != nil {
		t.Fatalf("NewCarrier: %v", err)
	}
	p, err := c.Calculate(context.Background())
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	return p
}

func TestCarrierBand77MidChannel(t *testing.T) {
	p := mustPlan(t, CarrierOptions{
		Band:            77,
		Bw:              50,
		ScsCarrier:      30,
		ScsSSB:          30,
		ScsCommon:       30,
		FcChannel:       3750000,
		PdcchConfigSIB1: 24,
		OffsetToCarrier: 102,
	})
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"fc_channel_dl", p.FcChannelDL, 3750000},
		{"fc_channel_dl_low", p.FcChannelDLLow, 3323940},
		{"fc_channel_dl_high", p.FcChannelDLHigh, 4176060},
		{"cbw_dl_nrb", p.CbwDLNrb, 133},
		{"cbw_dl", p.CbwDL, 47880},
		{"gscn", p.Gscn, 8006},
		{"f_ss", p.FSS, 3730080},
		{"arfcn_ssb", p.ArfcnSSB, 648672},
		{"k_ssb", p.Kssb, 4},
		{"k_ssb_max", p.KssbMax, 22},
		{"f_off_ssb_carrier", p.FOffSSBCarrier, 420},
		{"offset_rb", p.OffsetRB, 1},
		{"f_offset_rb", p.FOffsetRB, 360},
		{"fc_dl", p.FcDL, 3738480},
		{"f_point_a", p.FPointA, 3689340},
		{"arfcn_point_a", p.ArfcnPointA, 645956},
		{"arfcn", p.Arfcn, 650000},
		{"offset_to_pa", p.OffsetToPA, 206},
		{"f_shift_up", p.FShiftUp, 0},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
	if p.Duplex != "TDD" || p.FcChannelUL != p.FcChannelDL || p.ArfcnUL != p.Arfcn {
		t.Errorf("TDD UL mismatch: %s ul=%d dl=%d", p.Duplex, p.FcChannelUL, p.FcChannelDL)
	}
	if want := "1111" + strings.Repeat("0", 41); p.FDomainRes != want {
		t.Errorf("f_domain_res = %s, want %s", p.FDomainRes, want)
	}
	if p.FcChannelDLRange != [3]int{3323940, 3750000, 4176060} {
		t.Errorf("fc_channel_dl_range = %v", p.FcChannelDLRange)
	}
	if p.BandDLFRange != [2]int{3300000, 4200000} || p.BandBwDL != 900000 {
		t.Errorf("band_dl_f_range = %v, band_bw_dl = %d", p.BandDLFRange, p.BandBwDL)
	}
}

func TestCarrierShiftsChannelUpForCoresetAlignment(t *testing.T) {
	p := mustPlan(t, CarrierOptions{
		Band:            77,
		Bw:              50,
		ScsCarrier:      30,
		ScsSSB:          30,
		ScsCommon:       30,
		FcChannel:       3750000,
		PdcchConfigSIB1: 164,
	})
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"fc_channel_dl", p.FcChannelDL, 3750420},
		{"gscn", p.Gscn, 8009},
		{"f_ss", p.FSS, 3734400},
		{"arfcn_ssb", p.ArfcnSSB, 648960},
		{"k_ssb", p.Kssb, 0},
		{"f_shift_up", p.FShiftUp, 420},
		{"offset_rb", p.OffsetRB, 12},
		{"f_offset_rb", p.FOffsetRB, 4320},
		{"f_point_a", p.FPointA, 3726480},
		{"arfcn_point_a", p.ArfcnPointA, 648432},
		{"offset_to_pa", p.OffsetToPA, 24},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
	if p.Kssb < 0 || p.Kssb > p.KssbMax {
		t.Errorf("k_ssb %d outside [0, %d]", p.Kssb, p.KssbMax)
	}
}

func TestCalculateIsRepeatable(t *testing.T) {
	c, err := NewCarrier(CarrierOptions{
		Band: 77, Bw: 50, ScsCarrier: 30, ScsSSB: 30, ScsCommon: 30,
		FcChannel: 3750000, PdcchConfigSIB1: 164,
	})
	if err != nil {
		t.Fatalf("NewCarrier: %v", err)
	}
	first, err := c.Calculate(context.Background())
	if err != nil {
		t.Fatalf("first Calculate: %v", err)
	}
	second, err := c.Calculate(context.Background())
	if err != nil {
		t.Fatalf("second Calculate: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Calculate diverged:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestCarrierKssbStaysInRange(t *testing.T) {
	for fc := 3400000; fc <= 4100000; fc += 100010 {
		p := mustPlan(t, CarrierOptions{
			Band: 77, Bw: 50, ScsCarrier: 30, ScsSSB: 30, ScsCommon: 30,
			FcChannel: fc, PdcchConfigSIB1: 24,
		})
		if p.Kssb < 0 || p.Kssb > p.KssbMax {
			t.Errorf("fc %d: k_ssb %d outside [0, %d]", fc, p.Kssb, p.KssbMax)
		}
		if p.FSS < p.FcChannelDL-p.CbwDL/2 || p.FSS > p.FcChannelDL+p.CbwDL/2 {
			t.Errorf("fc %d: ssb center %d outside channel", fc, p.FSS)
		}
	}
}

func TestCarrierFDDComputesUplink(t *testing.T) {
	p := mustPlan(t, CarrierOptions{
		Band:       66,
		Bw:         40,
		ScsCarrier: 30,
		FcChannel:  2155000,
		DisableSSB: true,
	})
	if p.Duplex != "FDD" {
		t.Fatalf("duplex = %s, want FDD", p.Duplex)
	}
	if p.FcChannelUL != 1755000 {
		t.Errorf("fc_channel_ul = %d, want 1755000", p.FcChannelUL)
	}
	if p.Arfcn != 431000 || p.ArfcnUL != 351000 {
		t.Errorf("arfcn dl/ul = %d/%d, want 431000/351000", p.Arfcn, p.ArfcnUL)
	}
	if p.Gscn != -1 || p.ArfcnSSB != -1 {
		t.Errorf("ssb fields should be unset with SSB disabled, got gscn %d", p.Gscn)
	}
}

func TestCarrierSULBand(t *testing.T) {
	p := mustPlan(t, CarrierOptions{
		Band:        80,
		FcChannelUL: 1747500,
	})
	if p.Duplex != "SUL" {
		t.Fatalf("duplex = %s, want SUL", p.Duplex)
	}
	if p.FcChannelUL != 1747500 {
		t.Errorf("fc_channel_ul = %d, want 1747500", p.FcChannelUL)
	}
	if p.FcChannelDL != -1 || p.Gscn != -1 {
		t.Errorf("dl/ssb fields should be unset on SUL, got dl %d gscn %d", p.FcChannelDL, p.Gscn)
	}
	if p.FPointAUL != p.FcUL-49140 {
		t.Errorf("f_point_a_ul = %d, want %d", p.FPointAUL, p.FcUL-49140)
	}
}

func TestCarrierSULRequiresUplinkFrequency(t *testing.T) {
	if _, err := NewCarrier(CarrierOptions{Band: 80}); !errors.Is(err, ErrOutOfBand) {
		t.Errorf("expected ErrOutOfBand, got %v", err)
	}
}

func TestCarrierRejectsUnknownBand(t *testing.T) {
	if _, err := NewCarrier(CarrierOptions{Band: 999}); !errors.Is(err, ErrOutOfBand) {
		t.Errorf("expected ErrOutOfBand, got %v", err)
	}
}

func TestCarrierRejectsUnsupportedBandwidth(t *testing.T) {
	_, err := NewCarrier(CarrierOptions{Band: 77, Bw: 7, ScsCarrier: 30, FcChannel: 3750000})
	if !errors.Is(err, ErrBandwidthNotSupported) {
		t.Errorf("expected ErrBandwidthNotSupported, got %v", err)
	}
}

func TestParamsMapCoversPlan(t *testing.T) {
	p := mustPlan(t, CarrierOptions{
		Band: 77, Bw: 50, ScsCarrier: 30, ScsSSB: 30, ScsCommon: 30,
		FcChannel: 3750000, PdcchConfigSIB1: 24, OffsetToCarrier: 102,
	})
	m := p.Map()
	if len(m) < 40 {
		t.Errorf("plan map has %d entries, want at least 40", len(m))
	}
	if v, ok := p.Get("arfcn_point_a"); !ok || v.(int) != 645956 {
		t.Errorf("Get(arfcn_point_a) = %v, %v", v, ok)
	}
	if _, ok := p.Get("no_such_key"); ok {
		t.Error("Get of unknown key should report absence")
	}
	named := []string{
		"arfcn_point_a", "arfcn_point_a_ul", "arfcn_ssb", "band",
		"band_bw_dl", "band_bw_ul", "band_dl_f_range", "band_ul_f_range",
		"bw", "bw_ssb", "bw_ul", "cbw_dl", "cbw_dl_nrb", "cbw_ul",
		"cbw_ul_nrb", "duplex", "f_domain_res", "f_fc_to_point_a",
		"f_off_to_carrier", "f_offset_rb", "f_point_a", "f_point_a_ul",
		"f_ss", "fc_channel_dl", "fc_channel_dl_low", "fc_channel_dl_high",
		"fc_channel_dl_range", "fc_channel_ul", "fc_channel_ul_low",
		"fc_channel_ul_high", "fc_channel_ul_range", "fc_dl", "fc_ul",
		"freq_raster", "gscn", "k_ssb", "k_ssb_max",
		"max_location_and_bw_dl", "max_location_and_bw_ul",
		"n_rb_coreset0", "n_sym_coreset0", "offset_coreset0_carrier",
		"offset_rb", "offset_to_carrier", "offset_to_pa", "pdcch_cfg_sib1",
		"rb_6_size", "rb_size", "scs_carrier", "scs_carrier_num",
		"scs_common", "scs_common_num", "scs_kssb", "scs_ssb",
		"scs_ssb_num", "ssb_enabled", "ssb_pattern", "use_sync_raster",
	}
	for _, key := range named {
		if _, ok := m[key]; !ok {
			t.Errorf("plan map is missing key %q", key)
		}
	}
	if m["duplex"] != "TDD" || m["pdcch_cfg_sib1"] != 24 {
		t.Errorf("duplex/pdcch_cfg_sib1 = %v/%v", m["duplex"], m["pdcch_cfg_sib1"])
	}
	if m["rb_size"] != 360 || m["rb_6_size"] != 2160 {
		t.Errorf("rb_size/rb_6_size = %v/%v", m["rb_size"], m["rb_6_size"])
	}
	if m["scs_carrier_num"] != 1 || m["ssb_enabled"] != true {
		t.Errorf("scs_carrier_num/ssb_enabled = %v/%v", m["scs_carrier_num"], m["ssb_enabled"])
	}
}

func TestCarrierCommonScsSetsCoresetOffset(t *testing.T) {
	p := mustPlan(t, CarrierOptions{
		Band:            77,
		Bw:              50,
		ScsCarrier:      30,
		ScsSSB:          30,
		ScsCommon:       15,
		FcChannel:       3750000,
		PdcchConfigSIB1: 24,
	})
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"offset_rb", p.OffsetRB, 6},
		{"f_offset_rb", p.FOffsetRB, 1080},
		{"scs_kssb", p.ScsKssb, 15},
		{"gscn", p.Gscn, 8008},
		{"f_ss", p.FSS, 3732960},
		{"f_shift_up", p.FShiftUp, 2220},
		{"fc_channel_dl", p.FcChannelDL, 3752220},
		{"k_ssb", p.Kssb, 0},
		{"offset_to_pa", p.OffsetToPA, 6},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
}

func TestCarrierBitmapKeys(t *testing.T) {
	p := mustPlan(t, CarrierOptions{
		Band: 77, Bw: 50, ScsCarrier: 30, ScsSSB: 30, ScsCommon: 30,
		FcChannel: 3750000, PdcchConfigSIB1: 24, OffsetToCarrier: 100,
	})
	if want := "111" + strings.Repeat("0", 42); p.FDomainRes != want {
		t.Errorf("f_domain_res = %s, want %s", p.FDomainRes, want)
	}
	if want := "1111" + strings.Repeat("0", 41); p.Coreset0FDomainRes != want {
		t.Errorf("coreset0_f_domain_res = %s, want %s", p.Coreset0FDomainRes, want)
	}
}

func TestCarrierFDDUplinkFollowsShift(t *testing.T) {
	p := mustPlan(t, CarrierOptions{
		Band:            66,
		Bw:              40,
		ScsCarrier:      30,
		ScsSSB:          30,
		ScsCommon:       30,
		FcChannel:       2155000,
		PdcchConfigSIB1: 24,
	})
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"gscn", p.Gscn, 5353},
		{"f_ss", p.FSS, 2141050},
		{"arfcn_ssb", p.ArfcnSSB, 428210},
		{"f_shift_up", p.FShiftUp, 900},
		{"k_ssb", p.Kssb, 18},
		{"fc_channel_dl", p.FcChannelDL, 2155900},
		{"arfcn", p.Arfcn, 431180},
		{"fc_channel_ul", p.FcChannelUL, 1755900},
		{"arfcn_ul", p.ArfcnUL, 351180},
		{"f_point_a", p.FPointA, 2136820},
		{"f_point_a_ul", p.FPointAUL, 1736820},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
	if p.FcChannelDL-p.FcChannelUL != 400000 {
		t.Errorf("duplex distance = %d, want 400000", p.FcChannelDL-p.FcChannelUL)
	}
}
