package nrtab

// SSBPattern identifies the SS/PBCH block time-domain pattern of
// TS 38.213 section 4.1.
type SSBPattern string

const (
	SSBCaseA SSBPattern = "caseA"
	SSBCaseB SSBPattern = "caseB"
	SSBCaseC SSBPattern = "caseC"
	SSBCaseD SSBPattern = "caseD"
	SSBCaseE SSBPattern = "caseE"
)

// SyncRaster is one row of TS 38.104 Table 5.4.3.3-1 (FR1) or
// Table 5.4.3.3-2 (FR2): the GSCN range applicable to a band for a given
// SSB subcarrier spacing. Some bands define an explicit GSCN list instead
// of a min/step/max range; for those GSCNList is non-nil and takes
// precedence.
type SyncRaster struct {
	Band     int
	ScsSSB   int
	Pattern  SSBPattern
	GSCNMin  int
	GSCNStep int
	GSCNMax  int
	GSCNList []int
}

var syncRaster = map[rasterKey]SyncRaster{
	{1, 15}:   {1, 15, SSBCaseA, 5279, 1, 5419, nil},
	{2, 15}:   {2, 15, SSBCaseA, 4829, 1, 4969, nil},
	{3, 15}:   {3, 15, SSBCaseA, 4517, 1, 4693, nil},
	{5, 15}:   {5, 15, SSBCaseA, 2177, 1, 2230, nil},
	{5, 30}:   {5, 30, SSBCaseB, 2183, 1, 2224, nil},
	{7, 15}:   {7, 15, SSBCaseA, 6554, 1, 6718, nil},
	{8, 15}:   {8, 15, SSBCaseA, 2318, 1, 2395, nil},
	{12, 15}:  {12, 15, SSBCaseA, 1828, 1, 1858, nil},
	{13, 15}:  {13, 15, SSBCaseA, 1871, 1, 1885, nil},
	{14, 15}:  {14, 15, SSBCaseA, 1901, 1, 1915, nil},
	{18, 15}:  {18, 15, SSBCaseA, 2156, 1, 2182, nil},
	{20, 15}:  {20, 15, SSBCaseA, 1982, 1, 2047, nil},
	{24, 15}:  {24, 15, SSBCaseA, 3818, 1, 3892, nil},
	{24, 30}:  {24, 30, SSBCaseB, 3824, 1, 3886, nil},
	{25, 15}:  {25, 15, SSBCaseA, 4829, 1, 4981, nil},
	{26, 15}:  {26, 15, SSBCaseA, 2153, 1, 2230, nil},
	{28, 15}:  {28, 15, SSBCaseA, 1901, 1, 2002, nil},
	{29, 15}:  {29, 15, SSBCaseA, 1798, 1, 1813, nil},
	{30, 15}:  {30, 15, SSBCaseA, 5879, 1, 5893, nil},
	{34, 15}:  {34, 15, SSBCaseA, -1, -1, -1, []int{5032, 5043, 5054}},
	{34, 30}:  {34, 30, SSBCaseC, 5036, 1, 5050, nil},
	{38, 15}:  {38, 15, SSBCaseA, -1, -1, -1, []int{6432, 6443, 6457, 6468, 6479, 6493, 6507, 6518, 6532, 6543}},
	{38, 30}:  {38, 30, SSBCaseC, 6437, 1, 6538, nil},
	{39, 15}:  {39, 15, SSBCaseA, -1, -1, -1, []int{4707, 4715, 4718, 4729, 4732, 4743, 4747, 4754, 4761, 4768, 4772, 4782, 4786, 4793}},
	{39, 30}:  {39, 30, SSBCaseC, 4712, 1, 4789, nil},
	{40, 30}:  {40, 30, SSBCaseC, 5762, 1, 5989, nil},
	{41, 15}:  {41, 15, SSBCaseA, 6246, 3, 6717, nil},
	{41, 30}:  {41, 30, SSBCaseC, 6252, 3, 6714, nil},
	{46, 30}:  {46, 30, SSBCaseC, 8993, 1, 9530, []int{8996, 9010, 9024, 9038, 9051, 9065, 9079, 9093, 9107, 9121, 9218, 9232, 9246, 9260, 9274, 9288, 9301, 9315, 9329, 9343, 9357, 9371, 9385, 9402, 9416, 9430, 9444, 9458, 9472, 9485, 9499, 9513}},
	{48, 30}:  {48, 30, SSBCaseC, 7884, 1, 7982, nil},
	{50, 15}:  {50, 30, SSBCaseC, 3590, 1, 3781, nil},
	{51, 15}:  {51, 15, SSBCaseA, 3572, 1, 3574, nil},
	{53, 15}:  {53, 15, SSBCaseA, 6215, 1, 6232, nil},
	{65, 15}:  {65, 15, SSBCaseA, 5279, 1, 5494, nil},
	{66, 15}:  {66, 15, SSBCaseA, 5279, 1, 5494, nil},
	{66, 30}:  {66, 30, SSBCaseB, 5285, 1, 5488, nil},
	{67, 15}:  {67, 15, SSBCaseA, 1850, 1, 1888, nil},
	{70, 15}:  {70, 15, SSBCaseA, 4993, 1, 5044, nil},
	{71, 15}:  {71, 15, SSBCaseA, 1547, 1, 1624, nil},
	{74, 15}:  {74, 15, SSBCaseA, 3692, 1, 3790, nil},
	{75, 15}:  {75, 15, SSBCaseA, 3584, 1, 3787, nil},
	{76, 15}:  {76, 15, SSBCaseA, 3572, 1, 3574, nil},
	{77, 30}:  {77, 30, SSBCaseC, 7711, 1, 8329, nil},
	{78, 30}:  {78, 30, SSBCaseC, 7711, 1, 8051, nil},
	{79, 30}:  {79, 30, SSBCaseC, 8480, 16, 8880, nil},
	{85, 15}:  {85, 15, SSBCaseA, 1826, 1, 1858, nil},
	{90, 15}:  {90, 15, SSBCaseA, 6246, 1, 6717, nil},
	{90, 30}:  {90, 30, SSBCaseC, 6252, 1, 6714, nil},
	{91, 15}:  {91, 15, SSBCaseA, 3572, 1, 3574, nil},
	{92, 15}:  {92, 15, SSBCaseA, 3584, 1, 3787, nil},
	{93, 15}:  {93, 15, SSBCaseA, 3572, 1, 3574, nil},
	{94, 15}:  {94, 15, SSBCaseA, 3584, 1, 3787, nil},
	{96, 30}:  {96, 30, SSBCaseC, 9531, 1, 10363, []int{9548, 9562, 9576, 9590, 9603, 9617, 9631, 9645, 9659, 9673, 9687, 9701, 9714, 9728, 9742, 9756, 9770, 9784, 9798, 9812, 9826, 9840, 9853, 9867, 9881, 9895, 9909, 9923, 9937, 9951, 9964, 9978, 9992, 10006, 10020, 10034, 10048, 10062, 10076, 10090, 10103, 10117, 10131, 10145, 10159, 10173, 10187, 10201, 10214, 10228, 10242, 10256, 10270, 10284, 10298, 10312, 10325, 10339, 10353}},
	{100, 15}: {100, 15, SSBCaseA, 2303, 1, 12307, nil},
	{101, 15}: {101, 15, SSBCaseA, 4754, 1, 14768, nil},
	{101, 30}: {101, 30, SSBCaseC, 4760, 1, 14764, nil},
	{102, 30}: {102, 30, SSBCaseC, 9531, 1, 19877, []int{9535, 9548, 9562, 9576, 9590, 9603, 9617, 9631, 9645, 9659, 9673, 9687, 9701, 9714, 9728, 9742, 9756, 9770, 9784, 9798, 9812, 9826, 9840, 9853, 9867}},
	{104, 30}: {104, 30, SSBCaseC, 9882, 7, 710358, nil},
}

var syncRasterFR2 = map[rasterKey]SyncRaster{
	{257, 120}: {257, 120, SSBCaseD, 22388, 1, 22558, nil},
	{257, 240}: {257, 240, SSBCaseE, 22390, 2, 22556, nil},
	{258, 120}: {258, 120, SSBCaseD, 22257, 1, 22443, nil},
	{258, 240}: {258, 240, SSBCaseE, 22258, 2, 22442, nil},
	{259, 120}: {259, 120, SSBCaseD, 23140, 1, 23369, nil},
	{259, 240}: {259, 240, SSBCaseE, 23142, 2, 23368, nil},
	{260, 120}: {260, 120, SSBCaseD, 22995, 1, 23166, nil},
	{260, 240}: {260, 240, SSBCaseE, 22996, 2, 23164, nil},
	{261, 120}: {261, 120, SSBCaseD, 22446, 1, 22492, nil},
	{261, 240}: {261, 240, SSBCaseE, 22446, 2, 22490, nil},
	{262, 120}: {262, 120, SSBCaseD, 23586, 1, 23641, nil},
	{262, 240}: {262, 240, SSBCaseE, 23588, 2, 23640, nil},
}

// SyncRasterRow returns the sync raster row for (band, scsSSB), consulting
// the FR1 or FR2 table depending on the band.
func SyncRasterRow(band, scsSSBKHz int) (SyncRaster, bool) {
	if IsFR1(band) {
		r, ok := syncRaster[rasterKey{band, scsSSBKHz}]
		return r, ok
	}
	r, ok := syncRasterFR2[rasterKey{band, scsSSBKHz}]
	return r, ok
}
