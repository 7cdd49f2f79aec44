package nrtab

// GlobalRasterSegment is one row of TS 38.104 Table 5.4.2.1-1: the global
// frequency raster piece covering [FreqLowKHz, next segment). ARFCN N maps
// to F = FOffsetKHz + DeltaFGlobalKHz * (N - NRefOffset).
type GlobalRasterSegment struct {
	DeltaFGlobalKHz int
	FOffsetKHz      int
	NRefOffset      int
}

// GlobalRaster lists the three raster segments in increasing frequency
// order: 0-3 GHz at 5 kHz, 3-24.25 GHz at 15 kHz, above at 60 kHz.
var GlobalRaster = [3]GlobalRasterSegment{
	{DeltaFGlobalKHz: 5, FOffsetKHz: 0, NRefOffset: 0},
	{DeltaFGlobalKHz: 15, FOffsetKHz: 3000000, NRefOffset: 600000},
	{DeltaFGlobalKHz: 60, FOffsetKHz: 24250080, NRefOffset: 2016667},
}

// ChannelRaster is one row of TS 38.104 Table 5.4.2.3-1 (FR1) or
// Table 5.4.2.3-2 (FR2): the applicable ARFCN range and step for a band at
// a given raster granularity DeltaFKHz. -1 marks a direction the band does
// not define (SDL/SUL bands).
type ChannelRaster struct {
	Band        int
	DeltaFKHz   int
	ULArfcnLow  int
	ULStep      int
	ULArfcnHigh int
	DLArfcnLow  int
	DLStep      int
	DLArfcnHigh int
}

type rasterKey struct {
	band   int
	deltaF int
}

var channelRaster = map[rasterKey]ChannelRaster{
	{1, 100}:   {1, 100, 384000, 20, 396000, 422000, 20, 434000},
	{2, 100}:   {2, 100, 370000, 20, 382000, 386000, 20, 398000},
	{3, 100}:   {3, 100, 342000, 20, 357000, 361000, 20, 376000},
	{5, 100}:   {5, 100, 164800, 20, 169800, 173800, 20, 178800},
	{7, 100}:   {7, 100, 500000, 20, 514000, 524000, 20, 538000},
	{8, 100}:   {8, 100, 176000, 20, 183000, 185000, 20, 192000},
	{12, 100}:  {12, 100, 139800, 20, 143200, 145800, 20, 149200},
	{13, 100}:  {13, 100, 155400, 20, 157400, 149200, 20, 151200},
	{14, 100}:  {14, 100, 157600, 20, 159600, 151600, 20, 153600},
	{18, 100}:  {18, 100, 163000, 20, 166000, 172000, 20, 175000},
	{20, 100}:  {20, 100, 166400, 20, 172400, 158200, 20, 164200},
	{24, 100}:  {24, 100, 325300, 20, 332100, 305000, 20, 311800},
	{25, 100}:  {25, 100, 370000, 20, 383000, 386000, 20, 399000},
	{26, 100}:  {26, 100, 162800, 20, 169800, 171800, 20, 178800},
	{28, 100}:  {28, 100, 140600, 20, 149600, 151600, 20, 160600},
	{29, 100}:  {29, 100, -1, -1, -1, 143400, 20, 145600},
	{30, 100}:  {30, 100, 461000, 20, 463000, 470000, 20, 472000},
	{34, 100}:  {34, 100, 402000, 20, 405000, 402000, 20, 405000},
	{38, 100}:  {38, 100, 514000, 20, 524000, 514000, 20, 524000},
	{39, 100}:  {39, 100, 376000, 20, 384000, 376000, 20, 384000},
	{40, 100}:  {40, 100, 460000, 20, 480000, 460000, 20, 480000},
	{41, 15}:   {41, 15, 499200, 3, 537999, 499200, 3, 537999},
	{41, 30}:   {41, 30, 499200, 6, 537996, 499200, 6, 537996},
	{46, 15}:   {46, 15, 743334, 1, 795000, 743334, 1, 795000},
	{48, 15}:   {48, 15, 636667, 1, 646666, 636667, 1, 646666},
	{48, 30}:   {48, 30, 636668, 2, 646666, 636668, 2, 646666},
	{50, 100}:  {50, 100, 286400, 20, 303400, 286400, 20, 303400},
	{51, 100}:  {51, 100, 285400, 20, 286400, 285400, 20, 286400},
	{53, 100}:  {53, 100, 496700, 20, 499000, 496700, 20, 499000},
	{65, 100}:  {65, 100, 384000, 20, 402000, 422000, 20, 440000},
	{66, 100}:  {66, 100, 342000, 20, 356000, 422000, 20, 440000},
	{67, 100}:  {67, 100, -1, -1, -1, 147600, 20, 151600},
	{70, 100}:  {70, 100, 339000, 20, 342000, 399000, 20, 404000},
	{71, 100}:  {71, 100, 132600, 20, 139600, 123400, 20, 130400},
	{74, 100}:  {74, 100, 285400, 20, 294000, 295000, 20, 303600},
	{75, 100}:  {75, 100, -1, -1, -1, 286400, 20, 303400},
	{76, 100}:  {76, 100, -1, -1, -1, 285400, 20, 286400},
	{77, 15}:   {77, 15, 620000, 1, 680000, 620000, 1, 680000},
	{77, 30}:   {77, 30, 620000, 2, 680000, 620000, 2, 680000},
	{78, 15}:   {78, 15, 620000, 1, 653333, 620000, 1, 653333},
	{78, 30}:   {78, 30, 620000, 2, 653332, 620000, 2, 653332},
	{79, 15}:   {79, 15, 693334, 1, 733333, 693334, 1, 733333},
	{79, 30}:   {79, 30, 693334, 2, 733332, 693334, 2, 733332},
	{80, 100}:  {80, 100, 342000, 20, 357000, -1, -1, -1},
	{81, 100}:  {81, 100, 176000, 20, 183000, -1, -1, -1},
	{82, 100}:  {82, 100, 166400, 20, 172400, -1, -1, -1},
	{83, 100}:  {83, 100, 140600, 20, 149600, -1, -1, -1},
	{84, 100}:  {84, 100, 384000, 20, 396000, -1, -1, -1},
	{85, 100}:  {85, 100, 139600, 20, 143200, 145600, 20, 149200},
	{86, 100}:  {86, 100, 342000, 20, 356000, -1, -1, -1},
	{89, 100}:  {89, 100, 164800, 20, 169800, -1, -1, -1},
	{90, 15}:   {90, 15, 499200, 3, 537999, 499200, 3, 537999},
	{90, 30}:   {90, 30, 499200, 6, 537996, 499200, 6, 537996},
	{90, 100}:  {90, 100, 499200, 20, 538000, 499200, 20, 538000},
	{91, 100}:  {91, 100, 166400, 20, 172400, 285400, 20, 286400},
	{92, 100}:  {92, 100, 166400, 20, 172400, 286400, 20, 303400},
	{93, 100}:  {93, 100, 176000, 20, 183000, 285400, 20, 286400},
	{94, 100}:  {94, 100, 176000, 20, 183000, 286400, 20, 303400},
	{95, 100}:  {95, 100, 402000, 20, 405000, -1, -1, -1},
	{96, 15}:   {96, 15, 795000, 1, 875000, 795000, 1, 875000},
	{97, 100}:  {97, 100, 460000, 20, 480000, -1, -1, -1},
	{98, 100}:  {98, 100, 376000, 20, 384000, -1, -1, -1},
	{99, 100}:  {99, 100, 325300, 20, 332100, -1, -1, -1},
	{100, 100}: {100, 100, 174880, 20, 176000, 183880, 20, 185000},
	{101, 100}: {101, 100, 380000, 20, 382000, 380000, 20, 382000},
	{102, 15}:  {102, 15, 796334, 1, 828333, 796334, 1, 828333},
	{104, 15}:  {104, 15, 828334, 1, 875000, 828334, 1, 875000},
	{104, 30}:  {104, 30, 828334, 2, 875000, 828334, 2, 875000},
}

var channelRasterFR2 = map[rasterKey]ChannelRaster{
	{257, 60}:  {257, 60, 2054166, 1, 2104165, 2054166, 1, 2104165},
	{257, 120}: {257, 120, 2054167, 2, 2104165, 2054167, 2, 2104165},
	{258, 60}:  {258, 60, 2016667, 1, 2070832, 2016667, 1, 2070832},
	{258, 120}: {258, 120, 2016667, 2, 2070831, 2016667, 2, 2070831},
	{259, 60}:  {259, 60, 2270833, 1, 2337499, 2270833, 1, 2337499},
	{259, 120}: {259, 120, 2270833, 2, 2337499, 2270833, 2, 2337499},
	{260, 60}:  {260, 60, 2229166, 1, 2279165, 2229166, 1, 2279165},
	{260, 120}: {260, 120, 2229167, 2, 2279165, 2229167, 2, 2279165},
	{261, 60}:  {261, 60, 2070833, 1, 2084999, 2070833, 1, 2084999},
	{261, 120}: {261, 120, 2070833, 2, 2084999, 2070833, 2, 2084999},
	{262, 60}:  {262, 60, 2399166, 1, 2415832, 2399166, 1, 2415832},
	{262, 120}: {262, 120, 2399167, 2, 2415831, 2399167, 2, 2415831},
}

// ChannelRasterRow returns the channel raster row for (band, deltaF),
// consulting the FR1 or FR2 table depending on the band.
func ChannelRasterRow(band, deltaFKHz int) (ChannelRaster, bool) {
	if IsFR1(band) {
		r, ok := channelRaster[rasterKey{band, deltaFKHz}]
		return r, ok
	}
	r, ok := channelRasterFR2[rasterKey{band, deltaFKHz}]
	return r, ok
}

// ChannelRasterStep returns the channel raster granularity (delta-F raster)
// in kHz for a band and subcarrier spacing, per the applicability rules of
// TS 38.104 section 5.4.2.3.
func ChannelRasterStep(band, scsKHz int) int {
	switch {
	case band == 41 || band == 48 || band == 77 || band == 78 || band == 79 || band == 90 || band == 104:
		if scsKHz == 15 {
			return 15
		}
		return 30
	case band == 46 || band == 96 || band == 102:
		return 15
	case band >= 257 && band <= 262:
		if scsKHz == 60 {
			return 60
		}
		return 120
	default:
		return 100
	}
}
