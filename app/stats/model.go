package stats

import "fmt"

// RankedSnapshot is the player's current standing in a ranked queue.
type RankedSnapshot struct {
	Queue  string
	Tier   string
	Rank   string
	LP     int
	Wins   int
	Losses int
}

// Games returns the total games played this split.
func (r RankedSnapshot) Games() int {
	return r.Wins + r.Losses
}

// Winrate returns the win percentage, 0 for no games.
func (r RankedSnapshot) Winrate() float64 {
	g := r.Games()
	if g == 0 {
		return 0
	}
	return float64(r.Wins) / float64(g) * 100.0
}

// MatchRow is one recent match from the player's point of view.
type MatchRow struct {
	MatchID      string
	Win          bool
	ChampionName string
	ChampionIcon string
	Kills        int
	Deaths       int
	Assists      int
	CS           int
	Vision       int
	DurationMin  int
}

// KDAString formats kills/deaths/assists for display.
func (m MatchRow) KDAString() string {
	return fmt.Sprintf("%d/%d/%d", m.Kills, m.Deaths, m.Assists)
}

// KDA returns (kills+assists)/deaths with deathless games counted as one death.
func (m MatchRow) KDA() float64 {
	deaths := m.Deaths
	if deaths < 1 {
		deaths = 1
	}
	return float64(m.Kills+m.Assists) / float64(deaths)
}

// CSPerMin returns creep score per minute.
func (m MatchRow) CSPerMin() float64 {
	mins := m.DurationMin
	if mins < 1 {
		mins = 1
	}
	return float64(m.CS) / float64(mins)
}
