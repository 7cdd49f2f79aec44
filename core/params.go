package core

// Params is the computed frequency plan of a carrier. Frequencies are in
// kHz, channel bandwidths in MHz. Fields that do not apply to the carrier
// direction or duplex mode hold -1 (numbers) or "" (strings). A Params is
// a plain value; Calculate returns a fresh one on every call.
type Params struct {
	Band          int    `json:"band"`
	Duplex        string `json:"duplex"`
	FR            int    `json:"fr"`
	ScsCarrier    int    `json:"scs_carrier"`
	ScsCarrierNum int    `json:"scs_carrier_num"`
	ScsSSB        int    `json:"scs_ssb"`
	ScsSSBNum     int    `json:"scs_ssb_num"`
	ScsCommon     int    `json:"scs_common"`
	ScsCommonNum  int    `json:"scs_common_num"`
	ScsKssb       int    `json:"scs_kssb"`
	Bw            int    `json:"bw"`
	BwUL          int    `json:"bw_ul"`
	CbwDL         int    `json:"cbw_dl"`
	CbwDLNrb      int    `json:"cbw_dl_nrb"`
	CbwUL         int    `json:"cbw_ul"`
	CbwULNrb      int    `json:"cbw_ul_nrb"`
	RBSize        int    `json:"rb_size"`
	RB6Size       int    `json:"rb_6_size"`
	FreqRaster    int    `json:"freq_raster"`

	BandDLFRange [2]int `json:"band_dl_f_range"`
	BandULFRange [2]int `json:"band_ul_f_range"`
	BandBwDL     int    `json:"band_bw_dl"`
	BandBwUL     int    `json:"band_bw_ul"`

	FcChannelDL      int    `json:"fc_channel_dl"`
	FcChannelDLLow   int    `json:"fc_channel_dl_low"`
	FcChannelDLHigh  int    `json:"fc_channel_dl_high"`
	FcChannelDLRange [3]int `json:"fc_channel_dl_range"`
	FcChannelUL      int    `json:"fc_channel_ul"`
	FcChannelULLow   int    `json:"fc_channel_ul_low"`
	FcChannelULHigh  int    `json:"fc_channel_ul_high"`
	FcChannelULRange [3]int `json:"fc_channel_ul_range"`
	FcDL             int    `json:"fc_dl"`
	FcUL             int    `json:"fc_ul"`
	Arfcn            int    `json:"arfcn"`
	ArfcnUL          int    `json:"arfcn_ul"`

	FFcToPointA     int `json:"f_fc_to_point_a"`
	FPointA         int `json:"f_point_a"`
	FPointAUL       int `json:"f_point_a_ul"`
	ArfcnPointA     int `json:"arfcn_point_a"`
	ArfcnPointAUL   int `json:"arfcn_point_a_ul"`
	OffsetToCarrier int `json:"offset_to_carrier"`
	FOffToCarrier   int `json:"f_off_to_carrier"`
	OffsetToPA      int `json:"offset_to_pa"`

	SSBEnabled     bool   `json:"ssb_enabled"`
	Gscn           int    `json:"gscn"`
	FSS            int    `json:"f_ss"`
	ArfcnSSB       int    `json:"arfcn_ssb"`
	BwSSBKHz       int    `json:"bw_ssb"`
	SSBPattern     string `json:"ssb_pattern"`
	Kssb           int    `json:"k_ssb"`
	KssbMax        int    `json:"k_ssb_max"`
	FShiftUp       int    `json:"f_shift_up"`
	FShiftDown     int    `json:"f_shift_down"`
	FOffSSBCarrier int    `json:"f_off_ssb_carrier"`

	OffsetRB              int `json:"offset_rb"`
	FOffsetRB             int `json:"f_offset_rb"`
	OffsetCoreset0Carrier int `json:"offset_coreset0_carrier"`
	NRBCoreset0           int `json:"n_rb_coreset0"`
	NSymCoreset0          int `json:"n_sym_coreset0"`
	Coreset0Pattern       int `json:"coreset0_multiplexing_pattern"`
	Coreset0Index         int `json:"coreset0_index"`
	PdcchCfgSIB1          int `json:"pdcch_cfg_sib1"`
	// FDomainRes is the common-coreset resource bitmap on the BWP grid;
	// Coreset0FDomainRes is the initial bitmap for Coreset0 itself.
	FDomainRes         string `json:"f_domain_res"`
	Coreset0FDomainRes string `json:"coreset0_f_domain_res"`
	MaxLocationAndBwDL int    `json:"max_location_and_bw_dl"`
	MaxLocationAndBwUL int    `json:"max_location_and_bw_ul"`

	UseSyncRaster bool `json:"use_sync_raster"`
}

// Map returns the plan as a flat key/value map using the JSON field names.
func (p *Params) Map() map[string]any {
	return map[string]any{
		"band":                          p.Band,
		"duplex":                        p.Duplex,
		"fr":                            p.FR,
		"scs_carrier":                   p.ScsCarrier,
		"scs_carrier_num":               p.ScsCarrierNum,
		"scs_ssb":                       p.ScsSSB,
		"scs_ssb_num":                   p.ScsSSBNum,
		"scs_common":                    p.ScsCommon,
		"scs_common_num":                p.ScsCommonNum,
		"scs_kssb":                      p.ScsKssb,
		"bw":                            p.Bw,
		"bw_ul":                         p.BwUL,
		"cbw_dl":                        p.CbwDL,
		"cbw_dl_nrb":                    p.CbwDLNrb,
		"cbw_ul":                        p.CbwUL,
		"cbw_ul_nrb":                    p.CbwULNrb,
		"rb_size":                       p.RBSize,
		"rb_6_size":                     p.RB6Size,
		"freq_raster":                   p.FreqRaster,
		"band_dl_f_range":               p.BandDLFRange,
		"band_ul_f_range":               p.BandULFRange,
		"band_bw_dl":                    p.BandBwDL,
		"band_bw_ul":                    p.BandBwUL,
		"fc_channel_dl":                 p.FcChannelDL,
		"fc_channel_dl_low":             p.FcChannelDLLow,
		"fc_channel_dl_high":            p.FcChannelDLHigh,
		"fc_channel_dl_range":           p.FcChannelDLRange,
		"fc_channel_ul":                 p.FcChannelUL,
		"fc_channel_ul_low":             p.FcChannelULLow,
		"fc_channel_ul_high":            p.FcChannelULHigh,
		"fc_channel_ul_range":           p.FcChannelULRange,
		"fc_dl":                         p.FcDL,
		"fc_ul":                         p.FcUL,
		"arfcn":                         p.Arfcn,
		"arfcn_ul":                      p.ArfcnUL,
		"f_fc_to_point_a":               p.FFcToPointA,
		"f_point_a":                     p.FPointA,
		"f_point_a_ul":                  p.FPointAUL,
		"arfcn_point_a":                 p.ArfcnPointA,
		"arfcn_point_a_ul":              p.ArfcnPointAUL,
		"offset_to_carrier":             p.OffsetToCarrier,
		"f_off_to_carrier":              p.FOffToCarrier,
		"offset_to_pa":                  p.OffsetToPA,
		"ssb_enabled":                   p.SSBEnabled,
		"gscn":                          p.Gscn,
		"f_ss":                          p.FSS,
		"arfcn_ssb":                     p.ArfcnSSB,
		"bw_ssb":                        p.BwSSBKHz,
		"ssb_pattern":                   p.SSBPattern,
		"k_ssb":                         p.Kssb,
		"k_ssb_max":                     p.KssbMax,
		"f_shift_up":                    p.FShiftUp,
		"f_shift_down":                  p.FShiftDown,
		"f_off_ssb_carrier":             p.FOffSSBCarrier,
		"offset_rb":                     p.OffsetRB,
		"f_offset_rb":                   p.FOffsetRB,
		"offset_coreset0_carrier":       p.OffsetCoreset0Carrier,
		"n_rb_coreset0":                 p.NRBCoreset0,
		"n_sym_coreset0":                p.NSymCoreset0,
		"coreset0_multiplexing_pattern": p.Coreset0Pattern,
		"coreset0_index":                p.Coreset0Index,
		"pdcch_cfg_sib1":                p.PdcchCfgSIB1,
		"f_domain_res":                  p.FDomainRes,
		"coreset0_f_domain_res":         p.Coreset0FDomainRes,
		"max_location_and_bw_dl":        p.MaxLocationAndBwDL,
		"max_location_and_bw_ul":        p.MaxLocationAndBwUL,
		"use_sync_raster":               p.UseSyncRaster,
	}
}

// Get looks up a single plan value by its JSON field name.
func (p *Params) Get(key string) (any, bool) {
	v, ok := p.Map()[key]
	return v, ok
}
