// Package nrtab holds the 3GPP standards tables the frequency-plan engine
// consumes: NR operating bands, the global and channel frequency rasters,
// transmission bandwidth configurations, guardbands, the synchronization
// raster and the Coreset0 tables. All data is read-only after package init
// and safe to share without locking.
//
// Frequencies are expressed in kHz throughout; -1 marks an undefined value,
// matching the convention of the source tables.
package nrtab

// Duplex is the duplexing mode of an NR operating band.
type Duplex string

const (
	DuplexFDD Duplex = "FDD"
	DuplexTDD Duplex = "TDD"
	DuplexSDL Duplex = "SDL" // supplementary downlink, no UL range
	DuplexSUL Duplex = "SUL" // supplementary uplink, no DL range
)

// Band is one row of TS 38.104 Table 5.2-1 (FR1) or Table 5.2-2 (FR2).
type Band struct {
	ID        int
	ULLowKHz  int
	ULHighKHz int
	DLLowKHz  int
	DLHighKHz int
	Duplex    Duplex
}

// bands transcribes TS 38.104 Tables 5.2-1 and 5.2-2.
var bands = map[int]Band{
	1:   {1, 1920000, 1980000, 2110000, 2170000, DuplexFDD},
	2:   {2, 1850000, 1910000, 1930000, 1990000, DuplexFDD},
	3:   {3, 1710000, 1785000, 1805000, 1880000, DuplexFDD},
	5:   {5, 824000, 849000, 869000, 894000, DuplexFDD},
	7:   {7, 2500000, 2570000, 2620000, 2690000, DuplexFDD},
	8:   {8, 880000, 915000, 925000, 960000, DuplexFDD},
	12:  {12, 699000, 716000, 729000, 746000, DuplexFDD},
	13:  {13, 777000, 787000, 746000, 756000, DuplexFDD},
	14:  {14, 788000, 798000, 758000, 768000, DuplexFDD},
	18:  {18, 815000, 830000, 860000, 875000, DuplexFDD},
	20:  {20, 832000, 862000, 791000, 821000, DuplexFDD},
	24:  {24, 1626500, 1660500, 1525000, 1559000, DuplexFDD},
	25:  {25, 1850000, 1915000, 1930000, 1995000, DuplexFDD},
	26:  {26, 814000, 849000, 859000, 894000, DuplexFDD},
	28:  {28, 703000, 748000, 758000, 803000, DuplexFDD},
	29:  {29, -1, -1, 717000, 728000, DuplexSDL},
	30:  {30, 2305000, 2315000, 2350000, 2360000, DuplexFDD},
	34:  {34, 2010000, 2025000, 2010000, 2025000, DuplexTDD},
	38:  {38, 2570000, 2620000, 2570000, 2620000, DuplexTDD},
	39:  {39, 1880000, 1920000, 1880000, 1920000, DuplexTDD},
	40:  {40, 2300000, 2400000, 2300000, 2400000, DuplexTDD},
	41:  {41, 2496000, 2690000, 2496000, 2690000, DuplexTDD},
	46:  {46, 5150000, 5925000, 5150000, 5925000, DuplexTDD},
	48:  {48, 3550000, 3700000, 3550000, 3700000, DuplexTDD},
	50:  {50, 1432000, 1517000, 1432000, 1517000, DuplexTDD},
	51:  {51, 1427000, 1432000, 1427000, 1432000, DuplexTDD},
	53:  {53, 2483500, 2495000, 2483500, 2495000, DuplexTDD},
	65:  {65, 1920000, 2010000, 2110000, 2200000, DuplexFDD},
	66:  {66, 1710000, 1780000, 2110000, 2200000, DuplexFDD},
	67:  {67, -1, -1, 738000, 758000, DuplexSDL},
	70:  {70, 1695000, 1710000, 1995000, 2020000, DuplexFDD},
	71:  {71, 663000, 698000, 617000, 652000, DuplexFDD},
	74:  {74, 1427000, 1470000, 1475000, 1518000, DuplexFDD},
	75:  {75, -1, -1, 1432000, 1517000, DuplexSDL},
	76:  {76, -1, -1, 1427000, 1432000, DuplexSDL},
	77:  {77, 3300000, 4200000, 3300000, 4200000, DuplexTDD},
	78:  {78, 3300000, 3800000, 3300000, 3800000, DuplexTDD},
	79:  {79, 4400000, 5000000, 4400000, 5000000, DuplexTDD},
	80:  {80, 1710000, 1785000, -1, -1, DuplexSUL},
	81:  {81, 880000, 915000, -1, -1, DuplexSUL},
	82:  {82, 832000, 862000, -1, -1, DuplexSUL},
	83:  {83, 703000, 748000, -1, -1, DuplexSUL},
	84:  {84, 1920000, 1980000, -1, -1, DuplexSUL},
	85:  {85, 698000, 716000, 728000, 746000, DuplexFDD},
	86:  {86, 1710000, 1780000, -1, -1, DuplexSUL},
	89:  {89, 824000, 849000, -1, -1, DuplexSUL},
	90:  {90, 2496000, 2690000, 2496000, 2690000, DuplexTDD},
	91:  {91, 832000, 862000, 1427000, 1432000, DuplexFDD},
	92:  {92, 832000, 862000, 1432000, 1517000, DuplexFDD},
	93:  {93, 880000, 915000, 1427000, 1432000, DuplexFDD},
	94:  {94, 880000, 915000, 1432000, 1517000, DuplexFDD},
	95:  {95, 2010000, 2025000, -1, -1, DuplexSUL},
	96:  {96, 5925000, 7125000, 5925000, 7125000, DuplexTDD},
	97:  {97, 2300000, 2400000, -1, -1, DuplexSUL},
	98:  {98, 1880000, 1920000, -1, -1, DuplexSUL},
	99:  {99, 1626500, 1660500, -1, -1, DuplexSUL},
	100: {100, 874400, 880000, 919400, 925000, DuplexFDD},
	101: {101, 1900000, 1910000, 1900000, 1910000, DuplexTDD},
	102: {102, 5925000, 6425000, 5925000, 6425000, DuplexTDD},
	104: {104, 6425000, 7125000, 6425000, 7125000, DuplexTDD},
	257: {257, 26500000, 29500000, 26500000, 29500000, DuplexTDD},
	258: {258, 24250000, 27500000, 24250000, 27500000, DuplexTDD},
	259: {259, 39500000, 43500000, 39500000, 43500000, DuplexTDD},
	260: {260, 37000000, 40000000, 37000000, 40000000, DuplexTDD},
	261: {261, 27500000, 28350000, 27500000, 28350000, DuplexTDD},
	262: {262, 47200000, 48200000, 47200000, 48200000, DuplexTDD},
}

// BandByID returns the operating band row for the given band number.
func BandByID(id int) (Band, bool) {
	b, ok := bands[id]
	return b, ok
}

// BandCount returns the number of operating band rows in the tables.
func BandCount() int { return len(bands) }

// BandMode returns the duplex mode for a band, or "" for an unknown band.
func BandMode(id int) Duplex {
	b, ok := bands[id]
	if !ok {
		return ""
	}
	return b.Duplex
}

// IsFR1 reports whether a band belongs to frequency range 1. The check
// follows the channel raster tables: FR1 bands have a 100 kHz or 15 kHz
// raster row, FR2 bands only 60/120 kHz rows.
func IsFR1(band int) bool {
	if _, ok := channelRaster[rasterKey{band, 100}]; ok {
		return true
	}
	_, ok := channelRaster[rasterKey{band, 15}]
	return ok
}
