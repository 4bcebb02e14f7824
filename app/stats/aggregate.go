package stats

import (
	"sort"

	"github.com/despectus/despectus/app/ddragon"
	"github.com/despectus/despectus/app/riot"
)

// BuildMatchRow extracts the player's row from a fetched match. The second
// return is false when the player did not take part in the match.
func BuildMatchRow(match riot.Match, puuid string, champs map[int]ddragon.Champion, dd *ddragon.Client, version string) (MatchRow, bool) {
	var me *riot.Participant
	for i := range match.Info.Participants {
		if match.Info.Participants[i].PUUID == puuid {
			me = &match.Info.Participants[i]
			break
		}
	}
	if me == nil {
		return MatchRow{}, false
	}

	champ, found := champs[me.ChampionID]
	name := champ.Name
	icon := ""
	if found && champ.ID != "" {
		icon = dd.ChampionIconURL(version, champ.ID)
	}
	if name == "" {
		name = "Unknown champion"
	}

	durationMin := int(match.Info.GameDuration / 60)
	if durationMin < 1 {
		durationMin = 1
	}

	return MatchRow{
		MatchID:      match.Metadata.MatchID,
		Win:          me.Win,
		ChampionName: name,
		ChampionIcon: icon,
		Kills:        me.Kills,
		Deaths:       me.Deaths,
		Assists:      me.Assists,
		CS:           me.TotalMinionsKilled + me.NeutralMinionsKilled,
		Vision:       me.VisionScore,
		DurationMin:  durationMin,
	}, true
}

// ChampionCount is a champion with how often it was played recently.
type ChampionCount struct {
	Name    string
	IconURL string
	Count   int
}

// Summary aggregates the recent match list for the dashboard.
type Summary struct {
	Wins        int
	Losses      int
	Winrate     float64
	AvgKDA      float64
	AvgCS       float64
	AvgDuration float64
	BestKDA     float64
	TopChamps   []ChampionCount
}

// Summarize computes recent-form statistics over the given rows. A nil
// result means there was nothing to aggregate.
func Summarize(rows []MatchRow) *Summary {
	if len(rows) == 0 {
		return nil
	}

	s := &Summary{}
	var kdaSum, csSum, durSum float64
	counts := map[string]*ChampionCount{}

	for _, r := range rows {
		if r.Win {
			s.Wins++
		} else {
			s.Losses++
		}
		kda := r.KDA()
		kdaSum += kda
		if kda > s.BestKDA {
			s.BestKDA = kda
		}
		csSum += float64(r.CS)
		durSum += float64(r.DurationMin)

		if c, ok := counts[r.ChampionName]; ok {
			c.Count++
		} else {
			counts[r.ChampionName] = &ChampionCount{Name: r.ChampionName, IconURL: r.ChampionIcon, Count: 1}
		}
	}

	n := float64(len(rows))
	s.Winrate = float64(s.Wins) / n * 100.0
	s.AvgKDA = kdaSum / n
	s.AvgCS = csSum / n
	s.AvgDuration = durSum / n

	for _, c := range counts {
		s.TopChamps = append(s.TopChamps, *c)
	}
	sort.Slice(s.TopChamps, func(i, j int) bool {
		if s.TopChamps[i].Count != s.TopChamps[j].Count {
			return s.TopChamps[i].Count > s.TopChamps[j].Count
		}
		return s.TopChamps[i].Name < s.TopChamps[j].Name
	})
	if len(s.TopChamps) > 3 {
		s.TopChamps = s.TopChamps[:3]
	}

	return s
}
