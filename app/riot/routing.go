package riot

import "strings"

// Platform routing serves Summoner-V4 and League-V4; Match-V5 and Account-V1
// ride on a regional cluster instead (americas / europe / asia / sea).
var platformToRegional = map[string]string{
	// Americas cluster
	"NA1": "americas",
	"BR1": "americas",
	"LA1": "americas",
	"LA2": "americas",
	"OC1": "americas",
	// Europe cluster
	"EUW1": "europe",
	"EUN1": "europe",
	"TR1":  "europe",
	"RU":   "europe",
	// Asia cluster
	"KR":  "asia",
	"JP1": "asia",
	// SEA cluster (account routing for some endpoints varies)
	"SG2": "sea",
	"PH2": "sea",
	"TH2": "sea",
	"TW2": "sea",
	"VN2": "sea",
}

// lcuRegionToPlatform maps the short region string the client reports
// (EUW, NA, ...) to the Riot API platform id (EUW1, NA1, ...).
var lcuRegionToPlatform = map[string]string{
	"EUW":  "EUW1",
	"EUNE": "EUN1",
	"NA":   "NA1",
	"BR":   "BR1",
	"LAN":  "LA1",
	"LAS":  "LA2",
	"OCE":  "OC1",
	"KR":   "KR",
	"JP":   "JP1",
	"TR":   "TR1",
	"RU":   "RU",
	"SG":   "SG2",
	"PH":   "PH2",
	"TH":   "TH2",
	"TW":   "TW2",
	"VN":   "VN2",
}

// PlatformToRegional returns the regional cluster a platform belongs to,
// defaulting to europe for unknown platforms.
func PlatformToRegional(platform string) string {
	if regional, ok := platformToRegional[platform]; ok {
		return regional
	}
	return "europe"
}

// PlatformFromLCURegion resolves the region string from the client's
// /riotclient/region-locale payload to an API platform, or "" when unknown.
func PlatformFromLCURegion(region string) string {
	return lcuRegionToPlatform[strings.ToUpper(region)]
}
