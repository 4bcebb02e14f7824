package dashboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/despectus/despectus/app"
	"github.com/despectus/despectus/app/ddragon"
	"github.com/despectus/despectus/app/lcu"
	"github.com/despectus/despectus/app/riot"
	"github.com/despectus/despectus/app/stats"
	"github.com/despectus/despectus/app/updater"
	config "github.com/despectus/despectus/internal"
)

// StaticDataMsg carries the Data Dragon version and champion map fetched
// once at startup.
type StaticDataMsg struct {
	Version string
	Champs  map[int]ddragon.Champion
	Err     error
}

// RefreshResultMsg is the outcome of one full refresh pass. Status is always
// set; the data fields are filled in as far as the pass got.
type RefreshResultMsg struct {
	Status   string
	Platform string
	RiotID   string
	Profile  app.Profile
	Ranked   *stats.RankedSnapshot
	NextRank string
	EstGames int
	Emblem   string
	Matches  []stats.MatchRow
	Summary  *stats.Summary
}

// AutoRefreshTickMsg fires on the configured refresh interval. Gen ties the
// tick to the chain that scheduled it; only the newest chain is honored.
type AutoRefreshTickMsg struct {
	Gen int
}

// WatchTickMsg fires on the short account-swap polling interval.
type WatchTickMsg time.Time

// AccountSwappedMsg signals the logged-in Riot ID changed under us.
type AccountSwappedMsg struct{}

// UpdateCheckMsg reports the result of the GitHub release check.
type UpdateCheckMsg struct {
	Info *updater.UpdateInfo
}

// FetchStaticDataCmd loads the Data Dragon version and champion map.
func FetchStaticDataCmd(dd *ddragon.Client) tea.Cmd {
	return func() tea.Msg {
		version, err := dd.LatestVersion()
		if err != nil {
			return StaticDataMsg{Err: err}
		}
		champs, err := dd.ChampionMap(version)
		if err != nil {
			return StaticDataMsg{Err: err}
		}
		return StaticDataMsg{Version: version, Champs: champs}
	}
}

// AutoRefreshTickCmd schedules the next automatic refresh for the given
// chain generation.
func AutoRefreshTickCmd(seconds, gen int) tea.Cmd {
	if seconds < 30 {
		seconds = 30
	}
	return tea.Tick(time.Duration(seconds)*time.Second, func(time.Time) tea.Msg {
		return AutoRefreshTickMsg{Gen: gen}
	})
}

// WatchTickCmd schedules the next account-swap poll.
func WatchTickCmd() tea.Cmd {
	return tea.Tick(2500*time.Millisecond, func(t time.Time) tea.Msg {
		return WatchTickMsg(t)
	})
}

// CheckAccountSwapCmd peeks at the client's Riot ID and signals when it no
// longer matches the one we last refreshed for.
func CheckAccountSwapCmd(lastRiotID string) tea.Cmd {
	return func() tea.Msg {
		if lastRiotID == "" {
			return nil
		}
		auth, err := lcu.ReadLockfile()
		if err != nil {
			return nil
		}
		me, err := lcu.NewClient(auth).GetChatMe()
		if err != nil {
			return nil
		}
		if rid := me.RiotID(); rid != "" && rid != lastRiotID {
			return AccountSwappedMsg{}
		}
		return nil
	}
}

// CheckUpdateCmd asks GitHub whether a newer release exists.
func CheckUpdateCmd(current string) tea.Cmd {
	return func() tea.Msg {
		info, ok, err := updater.NewClient("despectus", "despectus").Check(current)
		if err != nil || !ok {
			return UpdateCheckMsg{}
		}
		return UpdateCheckMsg{Info: info}
	}
}

// RefreshCmd runs a full refresh pass: local client first, then the Riot API
// when a key is available. Every early exit reports a status instead of
// failing the program.
func RefreshCmd(settings config.Settings, ddVersion string, champs map[int]ddragon.Champion) tea.Cmd {
	return func() tea.Msg {
		auth, err := lcu.ReadLockfile()
		if err != nil {
			return RefreshResultMsg{Status: "League Client not detected (start the client)."}
		}
		client := lcu.NewClient(auth)

		locale, err := client.GetRegionLocale()
		platform := ""
		if err == nil {
			platform = riot.PlatformFromLCURegion(locale.Region)
		}
		if platform == "" {
			return RefreshResultMsg{Status: "Client detected, but region unknown."}
		}

		current, err := client.GetCurrentSummoner()
		if err != nil {
			return RefreshResultMsg{Status: "Client detected, but not logged in."}
		}

		me, err := client.GetChatMe()
		if err != nil || me.RiotID() == "" {
			return RefreshResultMsg{Status: "Client detected, but Riot ID not available yet."}
		}
		riotID := me.RiotID()

		dd := ddragon.NewClient()
		displayName := current.DisplayName
		if displayName == "" {
			displayName = me.GameName
		}
		result := RefreshResultMsg{
			Platform: platform,
			RiotID:   riotID,
			Profile: app.Profile{
				DisplayName: displayName,
				RiotID:      riotID,
				Level:       current.SummonerLevel,
				IconURL:     dd.ProfileIconURL(ddVersion, current.ProfileIconID),
			},
		}

		if ranked, err := client.GetRankedStats(); err == nil {
			if solo, ok := ranked.SoloQueue(); ok {
				tier := stats.NormalizeTier(solo.Tier)
				if tier != "UNRANKED" {
					result.Ranked = &stats.RankedSnapshot{
						Queue:  "RANKED_SOLO_5x5",
						Tier:   tier,
						Rank:   solo.Division,
						LP:     solo.LeaguePoints,
						Wins:   solo.Wins,
						Losses: solo.Losses,
					}
					result.NextRank = stats.NextRankLabel(tier, solo.Division)
					result.EstGames = stats.GamesToNextDivision(settings.AvgLPPerWin)
					result.Emblem = ddragon.RankEmblemURL(tier)
				}
			}
		}

		if settings.APIKey == "" {
			result.Status = "Connected: " + platform + " • " + riotID + " • Missing RIOT_API_KEY"
			return result
		}

		regional := riot.PlatformToRegional(platform)
		rc := riot.NewClient(settings.APIKey)

		acct, err := rc.AccountByRiotID(regional, me.GameName, me.Tag())
		if err != nil || acct.PUUID == "" {
			result.Status = "Account lookup failed for " + riotID
			return result
		}

		matchIDs, err := rc.MatchIDsByPUUID(regional, acct.PUUID, riot.RankedSoloQueueID, 10)
		if err != nil {
			result.Status = err.Error()
			return result
		}

		// Non-nil even with zero matches: a completed pass must replace
		// whatever the previous account left on screen.
		rows := make([]stats.MatchRow, 0, len(matchIDs))
		for _, id := range matchIDs {
			match, err := rc.MatchByID(regional, id)
			if err != nil {
				result.Status = err.Error()
				return result
			}
			if row, ok := stats.BuildMatchRow(match, acct.PUUID, champs, dd, ddVersion); ok {
				rows = append(rows, row)
			}
		}

		result.Matches = rows
		result.Summary = stats.Summarize(rows)
		result.Status = "Connected: " + platform + " • " + riotID
		return result
	}
}
