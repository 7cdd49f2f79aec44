package nrtab

// Coreset0 is one row of the TS 38.213 section 13 Coreset0 configuration
// tables: multiplexing pattern, RB count, symbol count and the RB offset of
// Coreset0 relative to the SSB grid. OffsetRB can be negative for FR2
// patterns 2 and 3.
type Coreset0 struct {
	Pattern  int
	NRB      int
	NSym     int
	OffsetRB int
}

// coreset0FR1 maps (scsSSB, scsPDCCH) to the Coreset0 rows of TS 38.213
// Tables 13-1 and 13-4, indexed by the upper nibble of pdcch-ConfigSIB1.
var coreset0FR1 = map[rasterKey][]Coreset0{
	{15, 15}: {
		{1, 24, 2, 0},
		{1, 24, 2, 2},
		{1, 24, 2, 4},
		{1, 24, 3, 0},
		{1, 24, 3, 2},
		{1, 24, 3, 4},
		{1, 48, 1, 12},
		{1, 48, 1, 16},
		{1, 48, 2, 12},
		{1, 48, 2, 16},
		{1, 48, 3, 12},
		{1, 48, 3, 16},
		{1, 96, 1, 38},
		{1, 96, 2, 38},
		{1, 96, 3, 38},
	},
	{15, 30}: {
		{1, 24, 2, 5},
		{1, 24, 2, 6},
		{1, 24, 2, 7},
		{1, 24, 2, 8},
		{1, 24, 3, 5},
		{1, 24, 3, 6},
		{1, 24, 3, 7},
		{1, 24, 3, 8},
		{1, 48, 1, 18},
		{1, 48, 1, 20},
		{1, 48, 2, 18},
		{1, 48, 2, 20},
		{1, 48, 3, 18},
		{1, 48, 3, 20},
	},
	{30, 15}: {
		{1, 48, 1, 2},
		{1, 48, 1, 6},
		{1, 48, 2, 2},
		{1, 48, 2, 6},
		{1, 48, 3, 2},
		{1, 48, 3, 6},
		{1, 96, 1, 28},
		{1, 96, 2, 28},
		{1, 96, 3, 28},
	},
	{30, 30}: {
		{1, 24, 2, 0},
		{1, 24, 2, 1},
		{1, 24, 2, 2},
		{1, 24, 2, 3},
		{1, 24, 2, 4},
		{1, 24, 3, 0},
		{1, 24, 3, 1},
		{1, 24, 3, 2},
		{1, 24, 3, 3},
		{1, 24, 3, 4},
		{1, 48, 1, 12},
		{1, 48, 1, 14},
		{1, 48, 1, 16},
		{1, 48, 2, 12},
		{1, 48, 2, 14},
		{1, 48, 2, 16},
	},
}

// coreset0FR1Min40 covers bands whose minimum channel bandwidth is 40 MHz,
// TS 38.213 Tables 13-5 and 13-6.
var coreset0FR1Min40 = map[rasterKey][]Coreset0{
	{30, 15}: {
		{1, 48, 1, 4},
		{1, 48, 2, 4},
		{1, 48, 3, 4},
		{1, 96, 1, 0},
		{1, 96, 1, 56},
		{1, 96, 2, 0},
		{1, 96, 2, 56},
		{1, 96, 3, 0},
		{1, 96, 3, 56},
	},
	{30, 30}: {
		{1, 24, 2, 0},
		{1, 24, 2, 4},
		{1, 24, 3, 0},
		{1, 24, 3, 4},
		{1, 48, 1, 0},
		{1, 48, 1, 28},
		{1, 48, 2, 0},
		{1, 48, 2, 28},
		{1, 48, 3, 0},
		{1, 48, 3, 28},
	},
}

// coreset0FR2 is TS 38.213 Tables 13-7 and 13-8.
var coreset0FR2 = map[rasterKey][]Coreset0{
	{120, 60}: {
		{1, 48, 1, 0},
		{1, 48, 1, 8},
		{1, 48, 2, 0},
		{1, 48, 2, 8},
		{1, 48, 3, 0},
		{1, 48, 3, 8},
		{1, 96, 1, 28},
		{1, 96, 2, 28},
		{2, 48, 1, -41},
		{2, 48, 1, 49},
		{2, 96, 1, -41},
		{2, 96, 1, 97},
	},
	{120, 120}: {
		{1, 24, 2, 0},
		{1, 24, 2, 4},
		{1, 48, 1, 14},
		{1, 48, 2, 14},
		{3, 24, 2, -20},
		{3, 24, 2, 24},
		{3, 48, 2, -20},
		{3, 48, 2, 48},
	},
	{240, 60}: {
		{1, 96, 1, 0},
		{1, 96, 1, 16},
		{1, 96, 2, 0},
		{1, 96, 2, 16},
	},
	{240, 120}: {
		{1, 48, 1, 0},
		{1, 48, 1, 8},
		{1, 48, 2, 0},
		{1, 48, 2, 8},
		{2, 24, 1, -41},
		{2, 24, 1, 25},
		{2, 48, 1, -41},
		{2, 48, 1, 49},
	},
}

// Coreset0Table returns the Coreset0 rows for a numerology combination.
// fr1 selects the FR1 tables, min40 the 40 MHz-minimum-bandwidth variant
// (band n79). A nil result means the combination is not defined.
func Coreset0Table(scsSSBKHz, scsKHz int, fr1, min40 bool) []Coreset0 {
	switch {
	case !fr1:
		return coreset0FR2[rasterKey{scsSSBKHz, scsKHz}]
	case min40:
		return coreset0FR1Min40[rasterKey{scsSSBKHz, scsKHz}]
	default:
		return coreset0FR1[rasterKey{scsSSBKHz, scsKHz}]
	}
}
