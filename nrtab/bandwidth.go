package nrtab

// transmissionBandwidth maps SCS (kHz) -> channel bandwidth (MHz) -> N_RB,
// per TS 38.104 Table 5.3.2-1 (FR1). -1 marks unsupported combinations.
var transmissionBandwidth = map[int]map[int]int{
	15: {5: 25, 10: 52, 15: 79, 20: 106, 25: 133, 30: 160, 40: 216, 50: 270, 60: -1, 70: -1, 80: -1, 90: -1, 100: -1},
	30: {5: 11, 10: 24, 15: 38, 20: 51, 25: 65, 30: 78, 40: 106, 50: 133, 60: 162, 70: 189, 80: 217, 90: 245, 100: 273},
	60: {5: -1, 10: 11, 15: 18, 20: 24, 25: 31, 30: 38, 40: 51, 50: 65, 60: 79, 70: 93, 80: 107, 90: 121, 100: 135},
}

// transmissionBandwidthFR2 is TS 38.104 Table 5.3.2-2.
var transmissionBandwidthFR2 = map[int]map[int]int{
	60:  {50: 66, 100: 132, 200: 264, 400: -1},
	120: {50: 32, 100: 66, 200: 132, 400: 264},
}

// NRB returns the transmission bandwidth configuration N_RB for a channel
// bandwidth (MHz) at the given SCS, or -1 when the combination is not
// defined. fr1 selects the FR1 vs FR2 table.
func NRB(scsKHz, bwMHz int, fr1 bool) int {
	tab := transmissionBandwidth
	if !fr1 {
		tab = transmissionBandwidthFR2
	}
	byBW, ok := tab[scsKHz]
	if !ok {
		return -1
	}
	n, ok := byBW[bwMHz]
	if !ok {
		return -1
	}
	return n
}

// guardbandKHz maps SCS (kHz) -> channel bandwidth (MHz) -> minimum
// guardband in kHz, per TS 38.104 Table 5.3.3-1 (FR1).
var guardbandKHz = map[int]map[int]float64{
	15: {5: 242.5, 10: 312.5, 15: 382.5, 20: 452.5, 25: 522.5, 30: 592.5, 40: 552.5, 50: 692.5, 60: -1, 80: -1, 90: -1, 100: -1},
	30: {5: 505, 10: 665, 15: 645, 20: 805, 25: 785, 30: 945, 40: 905, 50: 1045, 60: 825, 70: 965, 80: 925, 90: 885, 100: 845},
	60: {5: -1, 10: 1010, 15: 990, 20: 1330, 25: 1310, 30: 1290, 40: 1610, 50: 1570, 60: 1530, 80: 1450, 90: 1410, 100: 1370},
}

// guardbandKHzFR2 is TS 38.104 Tables 5.3.3-2 and 5.3.3-3.
var guardbandKHzFR2 = map[int]map[int]float64{
	60:  {50: 1210, 100: 2450, 200: 4930, 400: -1},
	120: {50: 1900, 100: 2420, 200: 4900, 400: 9860},
	240: {50: -1, 100: 3800, 200: 7720, 400: 15560},
}

// GuardbandKHz returns the minimum guardband in kHz for a channel bandwidth
// at the given SCS, or -1 when the combination is not defined.
func GuardbandKHz(scsKHz, bwMHz int, fr1 bool) float64 {
	tab := guardbandKHz
	if !fr1 {
		tab = guardbandKHzFR2
	}
	byBW, ok := tab[scsKHz]
	if !ok {
		return -1
	}
	gb, ok := byBW[bwMHz]
	if !ok {
		return -1
	}
	return gb
}

// supportedBandwidths maps (band, SCS) to the channel bandwidths (MHz) the
// band supports at that SCS, per TS 38.104 Table 5.3.5-1.
var supportedBandwidths = map[rasterKey][]int{
	{1, 15}:   {5, 10, 15, 20, 25, 30, 40, 45, 50},
	{1, 30}:   {10, 15, 20, 25, 30, 40, 45, 50},
	{1, 60}:   {10, 15, 20, 25, 30, 40, 45, 50},
	{2, 15}:   {5, 10, 15, 20, 25, 30, 35, 40},
	{2, 30}:   {10, 15, 20, 25, 30, 35, 40},
	{2, 60}:   {10, 15, 20, 25, 30, 35, 40},
	{3, 15}:   {5, 10, 15, 20, 25, 30, 35, 40, 45, 50},
	{3, 30}:   {10, 15, 20, 25, 30, 35, 40, 45, 50},
	{3, 60}:   {10, 15, 20, 25, 30, 35, 40, 45, 50},
	{5, 15}:   {5, 10, 15, 20, 25},
	{5, 30}:   {10, 15, 20, 25},
	{7, 15}:   {5, 10, 15, 20, 25, 30, 35, 40, 50},
	{7, 30}:   {10, 15, 20, 25, 30, 35, 40, 50},
	{7, 60}:   {10, 15, 20, 25, 30, 35, 40, 50},
	{8, 15}:   {5, 10, 15, 20, 35},
	{8, 30}:   {10, 15, 20, 35},
	{12, 15}:  {5, 10, 15},
	{12, 30}:  {10, 15},
	{13, 15}:  {5, 10},
	{13, 30}:  {10},
	{14, 15}:  {5, 10},
	{14, 30}:  {10},
	{18, 15}:  {5, 10, 15},
	{18, 30}:  {10, 15},
	{20, 15}:  {5, 10, 15, 20},
	{20, 30}:  {10, 15, 20},
	{24, 15}:  {5, 10},
	{24, 30}:  {10},
	{24, 60}:  {10},
	{25, 15}:  {5, 10, 15, 20, 25, 30, 35, 40, 45},
	{25, 30}:  {10, 15, 20, 25, 30, 35, 40, 45},
	{25, 60}:  {10, 15, 20, 25, 30, 35, 40, 45},
	{26, 15}:  {5, 10, 15, 20, 25, 30},
	{26, 30}:  {10, 15, 20, 25, 30},
	{28, 15}:  {5, 10, 15, 20, 25, 30, 40},
	{28, 30}:  {10, 15, 20, 25, 30, 40},
	{29, 15}:  {5, 10},
	{29, 30}:  {10},
	{30, 15}:  {5, 10},
	{30, 30}:  {10},
	{34, 15}:  {5, 10, 15},
	{34, 30}:  {10, 15},
	{34, 60}:  {10, 15},
	{38, 15}:  {5, 10, 15, 20, 25, 30, 40},
	{38, 30}:  {10, 15, 20, 25, 30, 40},
	{38, 60}:  {10, 15, 20, 25, 30, 40},
	{39, 15}:  {5, 10, 15, 20, 25, 30, 40},
	{39, 30}:  {10, 15, 20, 25, 30, 40},
	{39, 60}:  {10, 15, 20, 25, 30, 40},
	{40, 15}:  {5, 10, 15, 20, 25, 30, 40, 50},
	{40, 30}:  {10, 15, 20, 25, 30, 40, 50, 60, 70, 80, 90, 100},
	{40, 60}:  {10, 15, 20, 25, 30, 40, 50, 60, 70, 80, 90, 100},
	{41, 15}:  {5, 10, 15, 20, 25, 30, 35, 40, 45, 50},
	{41, 30}:  {10, 15, 20, 25, 30, 35, 40, 45, 50, 60, 70, 80, 90, 100},
	{41, 60}:  {10, 15, 20, 25, 30, 35, 40, 45, 50, 60, 70, 80, 90, 100},
	{46, 15}:  {10, 20, 40},
	{46, 30}:  {10, 20, 40, 60, 80, 100},
	{46, 60}:  {10, 20, 40, 60, 80, 100},
	{48, 15}:  {5, 10, 15, 20, 30, 40, 50},
	{48, 30}:  {10, 15, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	{48, 60}:  {10, 15, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	{50, 15}:  {5, 10, 15, 20, 30, 40, 50},
	{50, 30}:  {10, 15, 20, 30, 40, 50, 60, 80},
	{50, 60}:  {10, 15, 20, 30, 40, 50, 60, 80},
	{51, 15}:  {5},
	{53, 15}:  {5, 10},
	{53, 30}:  {10},
	{53, 60}:  {10},
	{65, 15}:  {5, 10, 15, 20, 50},
	{65, 30}:  {10, 15, 20, 50},
	{65, 60}:  {10, 15, 20, 50},
	{66, 15}:  {5, 10, 15, 20, 25, 30, 35, 40, 45},
	{66, 30}:  {10, 15, 20, 25, 30, 35, 40, 45},
	{66, 60}:  {10, 15, 20, 25, 30, 35, 40, 45},
	{67, 15}:  {5, 10, 15, 20},
	{67, 30}:  {10, 15, 20},
	{70, 15}:  {5, 10, 15, 20, 25},
	{70, 30}:  {10, 15, 20, 25},
	{70, 60}:  {10, 15, 20, 25},
	{71, 15}:  {5, 10, 15, 20, 25, 30, 35},
	{71, 30}:  {10, 15, 20, 25, 30, 35},
	{74, 15}:  {5, 10, 15, 20},
	{74, 30}:  {10, 15, 20},
	{74, 60}:  {10, 15, 20},
	{75, 15}:  {5, 10, 15, 20, 25, 30, 40, 50},
	{75, 30}:  {10, 15, 20, 25, 30, 40, 50},
	{75, 60}:  {10, 15, 20, 25, 30, 40, 50},
	{76, 15}:  {5},
	{77, 15}:  {10, 15, 20, 25, 30, 40, 50},
	{77, 30}:  {10, 15, 20, 25, 30, 40, 50, 60, 70, 80, 90, 100},
	{77, 60}:  {10, 15, 20, 25, 30, 40, 50, 60, 70, 80, 90, 100},
	{78, 15}:  {10, 15, 20, 25, 30, 40, 50},
	{78, 30}:  {10, 15, 20, 25, 30, 40, 50, 60, 70, 80, 90, 100},
	{78, 60}:  {10, 15, 20, 25, 30, 40, 50, 60, 70, 80, 90, 100},
	{79, 15}:  {10, 20, 30, 40, 50},
	{79, 30}:  {10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	{79, 60}:  {10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	{80, 15}:  {5, 10, 15, 20, 25, 30, 40},
	{80, 30}:  {10, 15, 20, 25, 30, 40},
	{80, 60}:  {10, 15, 20, 25, 30, 40},
	{81, 15}:  {5, 10, 15, 20},
	{81, 30}:  {10, 15, 20},
	{82, 15}:  {5, 10, 15, 20},
	{82, 30}:  {10, 15, 20},
	{83, 15}:  {5, 10, 15, 20, 25, 30, 40},
	{83, 30}:  {10, 15, 20, 25, 30, 40},
	{84, 15}:  {5, 10, 15, 20, 25, 30, 40, 50},
	{84, 30}:  {10, 15, 20, 25, 30, 40, 50},
	{84, 60}:  {10, 15, 20, 25, 30, 40, 50},
	{85, 15}:  {5, 10, 15},
	{85, 30}:  {10, 15},
	{86, 15}:  {5, 10, 15, 20, 40},
	{86, 30}:  {10, 15, 20, 40},
	{86, 60}:  {10, 15, 20, 40},
	{89, 15}:  {5, 10, 15, 20},
	{89, 30}:  {10, 15, 20},
	{90, 15}:  {5, 10, 15, 20, 25, 30, 35, 40, 45, 50},
	{90, 30}:  {10, 15, 20, 25, 30, 35, 40, 45, 50, 60, 70, 80, 90, 100},
	{90, 60}:  {10, 15, 20, 25, 30, 35, 40, 45, 50, 60, 70, 80, 90, 100},
	{91, 15}:  {5, 10},
	{92, 15}:  {5, 10, 15, 20},
	{92, 30}:  {10, 15, 20},
	{93, 15}:  {5, 10},
	{94, 15}:  {5, 10, 15, 20},
	{94, 30}:  {10, 15, 20},
	{95, 15}:  {5, 10, 15},
	{95, 30}:  {10, 15},
	{95, 60}:  {10, 15},
	{96, 15}:  {20, 40},
	{96, 30}:  {20, 40, 60, 80, 100},
	{96, 60}:  {20, 40, 60, 80, 100},
	{97, 15}:  {5, 10, 15, 20, 25, 30, 40, 50},
	{97, 30}:  {10, 15, 20, 25, 30, 40, 50, 60, 70, 80, 90, 100},
	{97, 60}:  {10, 15, 20, 25, 30, 40, 50, 60, 70, 80, 90, 100},
	{98, 15}:  {5, 10, 15, 20, 25, 30, 40},
	{98, 30}:  {10, 15, 20, 25, 30, 40},
	{98, 60}:  {10, 15, 20, 25, 30, 40},
	{99, 15}:  {5, 10},
	{99, 30}:  {10},
	{99, 60}:  {10},
	{100, 15}: {5},
	{101, 15}: {5, 10},
	{101, 30}: {10},
	{102, 15}: {20, 40},
	{102, 30}: {20, 40, 60, 80, 100},
	{102, 60}: {20, 40, 60, 80, 100},
	{104, 15}: {20, 30, 40, 50},
	{104, 30}: {20, 30, 40, 50, 60, 70, 80, 90, 100},
	{104, 60}: {20, 30, 40, 50, 60, 70, 80, 90, 100},
}

// supportedBandwidthsFR2 is TS 38.104 Table 5.3.5-2.
var supportedBandwidthsFR2 = map[rasterKey][]int{
	{257, 60}:  {50, 100, 200},
	{257, 120}: {50, 100, 200, 400},
	{258, 60}:  {50, 100, 200},
	{258, 120}: {50, 100, 200, 400},
	{259, 60}:  {50, 100, 200},
	{259, 120}: {50, 100, 200, 400},
	{260, 60}:  {50, 100, 200},
	{260, 120}: {50, 100, 200, 400},
	{261, 60}:  {50, 100, 200},
	{261, 120}: {50, 100, 200, 400},
	{262, 60}:  {50, 100, 200},
	{262, 120}: {50, 100, 200, 400},
}

// SupportedBandwidths returns the channel bandwidths (MHz) a band supports
// at the given SCS. The returned slice is shared table data and must not be
// mutated.
func SupportedBandwidths(band, scsKHz int) []int {
	if IsFR1(band) {
		return supportedBandwidths[rasterKey{band, scsKHz}]
	}
	return supportedBandwidthsFR2[rasterKey{band, scsKHz}]
}
