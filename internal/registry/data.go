package registry

import "github.com/kisanmitra/cropadvisor/internal/types"

// regionProfiles is the fixed catalog. Soil ranges come from district soil
// survey summaries; crop tiers reflect what is actually grown and marketed
// in each belt.
var regionProfiles = []types.RegionProfile{
	{
		Name:             "Chennai",
		Category:         "coastal",
		PH:               types.Range{Min: 6.8, Max: 8.2, Typical: 7.6},
		Clay:             types.Range{Min: 10, Max: 24, Typical: 16},
		Sand:             types.Range{Min: 55, Max: 80, Typical: 68},
		Silt:             types.Range{Min: 8, Max: 22, Typical: 15},
		OrganicCarbon:    types.Range{Min: 3.0, Max: 8.0, Typical: 5.0},
		Nitrogen:         types.Range{Min: 0.4, Max: 1.0, Typical: 0.6},
		AnnualRainfallMM: 1400,
		Crops: []types.CropEntry{
			{Name: "Coconut", Tier: types.TierExcellent, Season: "Year-round", YieldRange: "80-110 nuts/tree/year", WaterNeed: types.LevelMedium, MarketDemand: types.LevelHigh},
			{Name: "Groundnut", Tier: types.TierGood, Season: "June-September (Kharif)", YieldRange: "8-12 quintals/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelHigh},
			{Name: "Watermelon", Tier: types.TierGood, Season: "January-April (Summer)", YieldRange: "10-14 tonnes/acre", WaterNeed: types.LevelMedium, MarketDemand: types.LevelMedium},
			{Name: "Cashew", Tier: types.TierGood, Season: "Year-round", YieldRange: "3-5 quintals/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelHigh},
			{Name: "Paddy", Tier: types.TierModerate, Season: "October-January (Samba)", YieldRange: "18-22 quintals/acre", WaterNeed: types.LevelHigh, MarketDemand: types.LevelMedium},
		},
	},
	{
		Name:             "Coimbatore",
		Category:         "western",
		PH:               types.Range{Min: 7.0, Max: 8.4, Typical: 7.8},
		Clay:             types.Range{Min: 35, Max: 60, Typical: 48},
		Sand:             types.Range{Min: 15, Max: 35, Typical: 24},
		Silt:             types.Range{Min: 15, Max: 30, Typical: 22},
		OrganicCarbon:    types.Range{Min: 4.0, Max: 9.0, Typical: 6.0},
		Nitrogen:         types.Range{Min: 0.5, Max: 1.2, Typical: 0.8},
		AnnualRainfallMM: 700,
		Crops: []types.CropEntry{
			{Name: "Cotton", Tier: types.TierExcellent, Season: "August-February (Winter)", YieldRange: "8-12 quintals/acre", WaterNeed: types.LevelMedium, MarketDemand: types.LevelHigh},
			{Name: "Sorghum", Tier: types.TierExcellent, Season: "June-September (Kharif)", YieldRange: "10-14 quintals/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelMedium},
			{Name: "Maize", Tier: types.TierGood, Season: "June-September (Kharif)", YieldRange: "20-28 quintals/acre", WaterNeed: types.LevelMedium, MarketDemand: types.LevelHigh},
			{Name: "Sunflower", Tier: types.TierGood, Season: "January-April (Summer)", YieldRange: "6-9 quintals/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelMedium},
			{Name: "Black Gram", Tier: types.TierGood, Season: "October-January (Rabi)", YieldRange: "3-5 quintals/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelMedium},
		},
	},
	{
		Name:             "Thanjavur",
		Category:         "delta",
		PH:               types.Range{Min: 6.2, Max: 7.8, Typical: 7.0},
		Clay:             types.Range{Min: 38, Max: 62, Typical: 50},
		Sand:             types.Range{Min: 10, Max: 28, Typical: 18},
		Silt:             types.Range{Min: 20, Max: 38, Typical: 30},
		OrganicCarbon:    types.Range{Min: 5.0, Max: 11.0, Typical: 7.5},
		Nitrogen:         types.Range{Min: 0.7, Max: 1.5, Typical: 1.0},
		AnnualRainfallMM: 950,
		Crops: []types.CropEntry{
			{Name: "Paddy", Tier: types.TierExcellent, Season: "August-January (Samba)", YieldRange: "22-28 quintals/acre", WaterNeed: types.LevelHigh, MarketDemand: types.LevelHigh},
			{Name: "Sugarcane", Tier: types.TierGood, Season: "December-March (planting)", YieldRange: "38-45 tonnes/acre", WaterNeed: types.LevelHigh, MarketDemand: types.LevelMedium},
			{Name: "Banana", Tier: types.TierGood, Season: "Year-round", YieldRange: "25-35 tonnes/acre", WaterNeed: types.LevelHigh, MarketDemand: types.LevelHigh},
			{Name: "Black Gram", Tier: types.TierGood, Season: "January-April (Summer)", YieldRange: "3-5 quintals/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelMedium},
			{Name: "Coconut", Tier: types.TierModerate, Season: "Year-round", YieldRange: "60-90 nuts/tree/year", WaterNeed: types.LevelMedium, MarketDemand: types.LevelHigh},
		},
	},
	{
		Name:             "Madurai",
		Category:         "southern",
		PH:               types.Range{Min: 6.5, Max: 8.0, Typical: 7.3},
		Clay:             types.Range{Min: 25, Max: 45, Typical: 34},
		Sand:             types.Range{Min: 30, Max: 50, Typical: 40},
		Silt:             types.Range{Min: 15, Max: 32, Typical: 24},
		OrganicCarbon:    types.Range{Min: 3.5, Max: 8.0, Typical: 5.5},
		Nitrogen:         types.Range{Min: 0.5, Max: 1.1, Typical: 0.7},
		AnnualRainfallMM: 850,
		Crops: []types.CropEntry{
			{Name: "Paddy", Tier: types.TierGood, Season: "June-September (Kar)", YieldRange: "18-24 quintals/acre", WaterNeed: types.LevelHigh, MarketDemand: types.LevelHigh},
			{Name: "Cotton", Tier: types.TierGood, Season: "August-February (Winter)", YieldRange: "6-10 quintals/acre", WaterNeed: types.LevelMedium, MarketDemand: types.LevelHigh},
			{Name: "Chilli", Tier: types.TierGood, Season: "June-September (Kharif)", YieldRange: "8-12 quintals/acre", WaterNeed: types.LevelMedium, MarketDemand: types.LevelHigh},
			{Name: "Pearl Millet", Tier: types.TierGood, Season: "June-September (Kharif)", YieldRange: "8-11 quintals/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelLow},
			{Name: "Jasmine", Tier: types.TierModerate, Season: "Year-round", YieldRange: "2-4 tonnes/acre", WaterNeed: types.LevelMedium, MarketDemand: types.LevelHigh},
		},
	},
	{
		Name:             "Salem",
		Category:         "interior",
		PH:               types.Range{Min: 6.0, Max: 7.6, Typical: 6.8},
		Clay:             types.Range{Min: 20, Max: 40, Typical: 30},
		Sand:             types.Range{Min: 35, Max: 58, Typical: 46},
		Silt:             types.Range{Min: 12, Max: 28, Typical: 20},
		OrganicCarbon:    types.Range{Min: 3.0, Max: 7.5, Typical: 5.0},
		Nitrogen:         types.Range{Min: 0.4, Max: 1.0, Typical: 0.65},
		AnnualRainfallMM: 900,
		Crops: []types.CropEntry{
			{Name: "Tapioca", Tier: types.TierExcellent, Season: "June-September (planting)", YieldRange: "12-18 tonnes/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelMedium},
			{Name: "Turmeric", Tier: types.TierGood, Season: "June-September (planting)", YieldRange: "8-12 quintals/acre (cured)", WaterNeed: types.LevelMedium, MarketDemand: types.LevelHigh},
			{Name: "Mango", Tier: types.TierGood, Season: "Year-round (orchard)", YieldRange: "4-7 tonnes/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelHigh},
			{Name: "Sorghum", Tier: types.TierGood, Season: "June-September (Kharif)", YieldRange: "8-12 quintals/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelMedium},
			{Name: "Green Gram", Tier: types.TierModerate, Season: "October-January (Rabi)", YieldRange: "2-4 quintals/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelMedium},
		},
	},
	{
		Name:             "Erode",
		Category:         "western",
		PH:               types.Range{Min: 6.6, Max: 8.2, Typical: 7.4},
		Clay:             types.Range{Min: 22, Max: 42, Typical: 32},
		Sand:             types.Range{Min: 30, Max: 52, Typical: 42},
		Silt:             types.Range{Min: 14, Max: 30, Typical: 22},
		OrganicCarbon:    types.Range{Min: 3.5, Max: 8.5, Typical: 6.0},
		Nitrogen:         types.Range{Min: 0.5, Max: 1.2, Typical: 0.8},
		AnnualRainfallMM: 750,
		Crops: []types.CropEntry{
			{Name: "Turmeric", Tier: types.TierExcellent, Season: "June-September (planting)", YieldRange: "10-14 quintals/acre (cured)", WaterNeed: types.LevelMedium, MarketDemand: types.LevelHigh},
			{Name: "Sugarcane", Tier: types.TierGood, Season: "December-March (planting)", YieldRange: "35-42 tonnes/acre", WaterNeed: types.LevelHigh, MarketDemand: types.LevelMedium},
			{Name: "Banana", Tier: types.TierGood, Season: "Year-round", YieldRange: "22-30 tonnes/acre", WaterNeed: types.LevelHigh, MarketDemand: types.LevelHigh},
			{Name: "Sorghum", Tier: types.TierModerate, Season: "June-September (Kharif)", YieldRange: "8-11 quintals/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelMedium},
		},
	},
	{
		Name:             "Tiruchirappalli",
		Category:         "interior",
		PH:               types.Range{Min: 6.8, Max: 8.3, Typical: 7.6},
		Clay:             types.Range{Min: 24, Max: 46, Typical: 36},
		Sand:             types.Range{Min: 28, Max: 50, Typical: 38},
		Silt:             types.Range{Min: 14, Max: 30, Typical: 22},
		OrganicCarbon:    types.Range{Min: 3.5, Max: 8.0, Typical: 5.5},
		Nitrogen:         types.Range{Min: 0.5, Max: 1.1, Typical: 0.7},
		AnnualRainfallMM: 840,
		Crops: []types.CropEntry{
			{Name: "Banana", Tier: types.TierExcellent, Season: "Year-round", YieldRange: "25-35 tonnes/acre", WaterNeed: types.LevelHigh, MarketDemand: types.LevelHigh},
			{Name: "Paddy", Tier: types.TierGood, Season: "August-January (Samba)", YieldRange: "20-25 quintals/acre", WaterNeed: types.LevelHigh, MarketDemand: types.LevelHigh},
			{Name: "Sorghum", Tier: types.TierGood, Season: "June-September (Kharif)", YieldRange: "9-13 quintals/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelMedium},
			{Name: "Onion", Tier: types.TierModerate, Season: "October-January (Rabi)", YieldRange: "5-8 tonnes/acre", WaterNeed: types.LevelMedium, MarketDemand: types.LevelHigh},
		},
	},
	{
		Name:             "Tirunelveli",
		Category:         "southern",
		PH:               types.Range{Min: 6.4, Max: 8.0, Typical: 7.2},
		Clay:             types.Range{Min: 22, Max: 44, Typical: 32},
		Sand:             types.Range{Min: 32, Max: 54, Typical: 44},
		Silt:             types.Range{Min: 12, Max: 28, Typical: 20},
		OrganicCarbon:    types.Range{Min: 3.0, Max: 7.5, Typical: 5.0},
		Nitrogen:         types.Range{Min: 0.4, Max: 1.0, Typical: 0.6},
		AnnualRainfallMM: 820,
		Crops: []types.CropEntry{
			{Name: "Paddy", Tier: types.TierGood, Season: "October-February (Pishanam)", YieldRange: "18-24 quintals/acre", WaterNeed: types.LevelHigh, MarketDemand: types.LevelHigh},
			{Name: "Banana", Tier: types.TierGood, Season: "Year-round", YieldRange: "20-30 tonnes/acre", WaterNeed: types.LevelHigh, MarketDemand: types.LevelHigh},
			{Name: "Chilli", Tier: types.TierGood, Season: "June-September (Kharif)", YieldRange: "7-11 quintals/acre", WaterNeed: types.LevelMedium, MarketDemand: types.LevelHigh},
			{Name: "Pearl Millet", Tier: types.TierModerate, Season: "June-September (Kharif)", YieldRange: "7-10 quintals/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelLow},
		},
	},
	{
		Name:             "Vellore",
		Category:         "northern",
		PH:               types.Range{Min: 6.3, Max: 7.9, Typical: 7.1},
		Clay:             types.Range{Min: 18, Max: 38, Typical: 28},
		Sand:             types.Range{Min: 38, Max: 60, Typical: 48},
		Silt:             types.Range{Min: 12, Max: 28, Typical: 20},
		OrganicCarbon:    types.Range{Min: 3.0, Max: 7.0, Typical: 4.8},
		Nitrogen:         types.Range{Min: 0.4, Max: 1.0, Typical: 0.6},
		AnnualRainfallMM: 950,
		Crops: []types.CropEntry{
			{Name: "Groundnut", Tier: types.TierExcellent, Season: "June-September (Kharif)", YieldRange: "9-13 quintals/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelHigh},
			{Name: "Paddy", Tier: types.TierGood, Season: "August-January (Samba)", YieldRange: "18-23 quintals/acre", WaterNeed: types.LevelHigh, MarketDemand: types.LevelHigh},
			{Name: "Tomato", Tier: types.TierGood, Season: "October-January (Rabi)", YieldRange: "8-14 tonnes/acre", WaterNeed: types.LevelMedium, MarketDemand: types.LevelHigh},
			{Name: "Sugarcane", Tier: types.TierModerate, Season: "December-March (planting)", YieldRange: "30-38 tonnes/acre", WaterNeed: types.LevelHigh, MarketDemand: types.LevelMedium},
		},
	},
	{
		Name:             "Cuddalore",
		Category:         "coastal",
		PH:               types.Range{Min: 6.5, Max: 8.1, Typical: 7.4},
		Clay:             types.Range{Min: 14, Max: 30, Typical: 22},
		Sand:             types.Range{Min: 45, Max: 70, Typical: 56},
		Silt:             types.Range{Min: 10, Max: 26, Typical: 18},
		OrganicCarbon:    types.Range{Min: 3.5, Max: 8.5, Typical: 5.8},
		Nitrogen:         types.Range{Min: 0.5, Max: 1.1, Typical: 0.7},
		AnnualRainfallMM: 1200,
		Crops: []types.CropEntry{
			{Name: "Cashew", Tier: types.TierExcellent, Season: "Year-round (orchard)", YieldRange: "3-6 quintals/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelHigh},
			{Name: "Paddy", Tier: types.TierGood, Season: "August-January (Samba)", YieldRange: "18-24 quintals/acre", WaterNeed: types.LevelHigh, MarketDemand: types.LevelHigh},
			{Name: "Groundnut", Tier: types.TierGood, Season: "January-April (Summer)", YieldRange: "8-12 quintals/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelHigh},
			{Name: "Sugarcane", Tier: types.TierModerate, Season: "December-March (planting)", YieldRange: "32-40 tonnes/acre", WaterNeed: types.LevelHigh, MarketDemand: types.LevelMedium},
		},
	},
	{
		Name:             "Ramanathapuram",
		Category:         "coastal",
		PH:               types.Range{Min: 7.0, Max: 8.6, Typical: 7.9},
		Clay:             types.Range{Min: 12, Max: 28, Typical: 19},
		Sand:             types.Range{Min: 48, Max: 74, Typical: 62},
		Silt:             types.Range{Min: 8, Max: 24, Typical: 16},
		OrganicCarbon:    types.Range{Min: 2.5, Max: 6.5, Typical: 4.2},
		Nitrogen:         types.Range{Min: 0.3, Max: 0.9, Typical: 0.5},
		AnnualRainfallMM: 820,
		Crops: []types.CropEntry{
			{Name: "Chilli", Tier: types.TierExcellent, Season: "October-February (Rabi)", YieldRange: "8-12 quintals/acre", WaterNeed: types.LevelMedium, MarketDemand: types.LevelHigh},
			{Name: "Pearl Millet", Tier: types.TierGood, Season: "June-September (Kharif)", YieldRange: "7-10 quintals/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelLow},
			{Name: "Coriander", Tier: types.TierGood, Season: "October-January (Rabi)", YieldRange: "3-5 quintals/acre", WaterNeed: types.LevelLow, MarketDemand: types.LevelMedium},
			{Name: "Cotton", Tier: types.TierModerate, Season: "August-February (Winter)", YieldRange: "5-8 quintals/acre", WaterNeed: types.LevelMedium, MarketDemand: types.LevelHigh},
		},
	},
	{
		Name:             "The Nilgiris",
		Category:         "upland",
		PH:               types.Range{Min: 4.5, Max: 6.2, Typical: 5.3},
		Clay:             types.Range{Min: 20, Max: 40, Typical: 30},
		Sand:             types.Range{Min: 30, Max: 52, Typical: 40},
		Silt:             types.Range{Min: 18, Max: 36, Typical: 26},
		OrganicCarbon:    types.Range{Min: 10.0, Max: 25.0, Typical: 16.0},
		Nitrogen:         types.Range{Min: 1.0, Max: 2.4, Typical: 1.6},
		AnnualRainfallMM: 1900,
		Crops: []types.CropEntry{
			{Name: "Tea", Tier: types.TierExcellent, Season: "Year-round (plucking)", YieldRange: "800-1200 kg made tea/acre", WaterNeed: types.LevelHigh, MarketDemand: types.LevelHigh},
			{Name: "Potato", Tier: types.TierExcellent, Season: "April-August (Summer)", YieldRange: "8-12 tonnes/acre", WaterNeed: types.LevelMedium, MarketDemand: types.LevelHigh},
			{Name: "Carrot", Tier: types.TierGood, Season: "Year-round", YieldRange: "6-10 tonnes/acre", WaterNeed: types.LevelMedium, MarketDemand: types.LevelHigh},
			{Name: "Cabbage", Tier: types.TierGood, Season: "Year-round", YieldRange: "10-16 tonnes/acre", WaterNeed: types.LevelMedium, MarketDemand: types.LevelMedium},
			{Name: "Coffee", Tier: types.TierModerate, Season: "Year-round (estate)", YieldRange: "3-5 quintals/acre", WaterNeed: types.LevelMedium, MarketDemand: types.LevelHigh},
		},
	},
}

// regionCentroids is the nearest-neighbor table. Order matters: the first
// minimum wins on a distance tie, so entries must not be reshuffled.
var regionCentroids = []types.Centroid{
	{Name: "Chennai", Region: "Chennai", Lat: 13.0827, Lon: 80.2707},
	{Name: "Coimbatore", Region: "Coimbatore", Lat: 11.0168, Lon: 76.9558},
	{Name: "Thanjavur", Region: "Thanjavur", Lat: 10.7870, Lon: 79.1378},
	{Name: "Madurai", Region: "Madurai", Lat: 9.9252, Lon: 78.1198},
	{Name: "Salem", Region: "Salem", Lat: 11.6643, Lon: 78.1460},
	{Name: "Erode", Region: "Erode", Lat: 11.3410, Lon: 77.7172},
	{Name: "Tiruchirappalli", Region: "Tiruchirappalli", Lat: 10.7905, Lon: 78.7047},
	{Name: "Tirunelveli", Region: "Tirunelveli", Lat: 8.7139, Lon: 77.7567},
	{Name: "Vellore", Region: "Vellore", Lat: 12.9165, Lon: 79.1325},
	{Name: "Cuddalore", Region: "Cuddalore", Lat: 11.7480, Lon: 79.7714},
	{Name: "Ramanathapuram", Region: "Ramanathapuram", Lat: 9.3639, Lon: 78.8395},
	{Name: "Udhagamandalam", Region: "The Nilgiris", Lat: 11.4102, Lon: 76.6950},

	// Sub-region centroids, finer granularity over the same profiles.
	{Name: "Pollachi", Region: "Coimbatore", Lat: 10.6583, Lon: 77.0085},
	{Name: "Mettupalayam", Region: "Coimbatore", Lat: 11.2990, Lon: 76.9366},
	{Name: "Kumbakonam", Region: "Thanjavur", Lat: 10.9602, Lon: 79.3845},
	{Name: "Tambaram", Region: "Chennai", Lat: 12.9249, Lon: 80.1000},
	{Name: "Coonoor", Region: "The Nilgiris", Lat: 11.3530, Lon: 76.7959},
	{Name: "Usilampatti", Region: "Madurai", Lat: 9.9662, Lon: 77.7864},
	{Name: "Mettur", Region: "Salem", Lat: 11.7865, Lon: 77.8008},
	{Name: "Chidambaram", Region: "Cuddalore", Lat: 11.3995, Lon: 79.6936},
	{Name: "Rameswaram", Region: "Ramanathapuram", Lat: 9.2876, Lon: 79.3129},
	{Name: "Ambasamudram", Region: "Tirunelveli", Lat: 8.7037, Lon: 77.4519},
}
