package terrain

// defaultTable is the built-in terrain table for the map-rendering
// client. The ids match the client's terrain enum; every entry gets a
// placeholder texture until real art replaces it.
var defaultTable = []Record{
	{ID: 0, Name: "deep_ocean", Color: [3]int{11, 30, 61}},
	{ID: 1, Name: "continental_shelf", Color: [3]int{24, 58, 99}},
	{ID: 2, Name: "inland_sea", Color: [3]int{32, 84, 124}},
	{ID: 3, Name: "coral_shelf", Color: [3]int{46, 118, 143}},
	{ID: 4, Name: "hydrothermal_vent_field", Color: [3]int{25, 41, 54}},
	{ID: 5, Name: "tidal_flat", Color: [3]int{121, 125, 102}},
	{ID: 6, Name: "river_delta", Color: [3]int{88, 108, 70}},
	{ID: 7, Name: "mangrove_swamp", Color: [3]int{52, 75, 48}},
	{ID: 8, Name: "freshwater_marsh", Color: [3]int{66, 92, 58}},
	{ID: 9, Name: "floodplain", Color: [3]int{104, 122, 64}},
	{ID: 10, Name: "alluvial_plain", Color: [3]int{126, 138, 74}},
	{ID: 11, Name: "prairie_steppe", Color: [3]int{148, 142, 82}},
	{ID: 12, Name: "mixed_woodland", Color: [3]int{74, 104, 56}},
	{ID: 13, Name: "boreal_taiga", Color: [3]int{48, 78, 62}},
	{ID: 14, Name: "peat_heath", Color: [3]int{92, 82, 58}},
	{ID: 15, Name: "hot_desert_erg", Color: [3]int{194, 162, 102}},
	{ID: 16, Name: "rocky_reg", Color: [3]int{150, 128, 96}},
	{ID: 17, Name: "semi_arid_scrub", Color: [3]int{160, 140, 88}},
	{ID: 18, Name: "salt_flat", Color: [3]int{210, 206, 190}},
	{ID: 19, Name: "oasis_basin", Color: [3]int{92, 140, 88}},
	{ID: 20, Name: "tundra", Color: [3]int{136, 142, 128}},
	{ID: 21, Name: "periglacial_steppe", Color: [3]int{118, 124, 116}},
	{ID: 22, Name: "glacier", Color: [3]int{190, 208, 220}},
	{ID: 23, Name: "seasonal_snowfield", Color: [3]int{214, 222, 228}},
	{ID: 24, Name: "rolling_hills", Color: [3]int{110, 128, 70}},
	{ID: 25, Name: "high_plateau", Color: [3]int{138, 126, 96}},
	{ID: 26, Name: "alpine_mountain", Color: [3]int{130, 130, 136}},
	{ID: 27, Name: "karst_highland", Color: [3]int{142, 136, 118}},
	{ID: 28, Name: "canyon_badlands", Color: [3]int{158, 102, 66}},
	{ID: 29, Name: "active_volcano_slope", Color: [3]int{96, 58, 48}},
	{ID: 30, Name: "basaltic_lava_field", Color: [3]int{54, 48, 46}},
	{ID: 31, Name: "ash_plain", Color: [3]int{108, 104, 100}},
	{ID: 32, Name: "fumarole_basin", Color: [3]int{124, 108, 78}},
	{ID: 33, Name: "impact_crater_field", Color: [3]int{112, 100, 88}},
	{ID: 34, Name: "karst_cavern_mouth", Color: [3]int{84, 76, 68}},
	{ID: 35, Name: "sinkhole_field", Color: [3]int{96, 88, 72}},
	{ID: 36, Name: "aquifer_ceiling", Color: [3]int{58, 70, 84}},
}

// Default returns a copy of the built-in terrain table.
func Default() []Record {
	out := make([]Record, len(defaultTable))
	copy(out, defaultTable)
	return out
}
