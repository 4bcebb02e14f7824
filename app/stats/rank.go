package stats

import (
	"math"
	"strings"
)

var (
	ladderTiers = []string{"IRON", "BRONZE", "SILVER", "GOLD", "PLATINUM", "EMERALD", "DIAMOND"}
	divisions   = []string{"IV", "III", "II", "I"}
)

// NormalizeTier maps the client's placeholder tiers to UNRANKED and
// uppercases everything else.
func NormalizeTier(tier string) string {
	t := strings.ToUpper(strings.TrimSpace(tier))
	switch t {
	case "", "NA", "NONE", "UNRANKED":
		return "UNRANKED"
	}
	return t
}

// titleTier renders a tier for display, e.g. GOLD -> Gold.
func titleTier(tier string) string {
	if tier == "" {
		return ""
	}
	return strings.ToUpper(tier[:1]) + strings.ToLower(tier[1:])
}

// NextRankLabel returns the next step up the ladder from tier/division, or
// "" at the top (Challenger) and for unrecognized input. Apex tiers have no
// divisions, so Master promotes straight to Grandmaster.
func NextRankLabel(tier, division string) string {
	tier = strings.ToUpper(strings.TrimSpace(tier))
	division = strings.ToUpper(strings.TrimSpace(division))

	switch tier {
	case "MASTER":
		return "Grandmaster"
	case "GRANDMASTER":
		return "Challenger"
	case "CHALLENGER":
		return ""
	}

	tierIdx := -1
	for i, t := range ladderTiers {
		if t == tier {
			tierIdx = i
			break
		}
	}
	divIdx := -1
	for i, d := range divisions {
		if d == division {
			divIdx = i
			break
		}
	}
	if tierIdx < 0 || divIdx < 0 {
		return ""
	}

	if divIdx > 0 {
		return titleTier(tier) + " " + divisions[divIdx-1]
	}
	if tier == "DIAMOND" {
		return "Master"
	}
	return titleTier(ladderTiers[tierIdx+1]) + " IV"
}

// GamesToNextDivision estimates wins needed to climb the 100 LP of a
// division at the user's average LP gain, never less than one game.
func GamesToNextDivision(avgLPPerWin int) int {
	if avgLPPerWin < 1 {
		avgLPPerWin = 1
	}
	est := int(math.Ceil(100.0 / float64(avgLPPerWin)))
	if est < 1 {
		est = 1
	}
	return est
}
