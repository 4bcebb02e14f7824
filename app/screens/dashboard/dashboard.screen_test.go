package dashboard

import (
	"testing"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/stretchr/testify/assert"

	"github.com/despectus/despectus/app"
	"github.com/despectus/despectus/app/stats"
)

func modelWithHistory() app.Model {
	m := app.Model{
		LastRiotID: "OldAccount#EUW",
		Matches: []stats.MatchRow{
			{MatchID: "EUW1_1", ChampionName: "Yasuo", Win: true},
		},
		Summary:        &stats.Summary{Wins: 1},
		MatchPaginator: paginator.New(),
	}
	m.MatchPaginator.PerPage = MatchesPerPage
	m.MatchPaginator.SetTotalPages(len(m.Matches))
	return m
}

func TestApplyRefreshResultClearsHistoryOnAccountSwap(t *testing.T) {
	m := modelWithHistory()

	// A new account with zero ranked games completes the full pipeline
	// with an empty (non-nil) match list.
	m = ApplyRefreshResult(m, RefreshResultMsg{
		Status:   "Connected: EUW1 • NewAccount#EUW",
		Platform: "EUW1",
		RiotID:   "NewAccount#EUW",
		Matches:  []stats.MatchRow{},
	})

	assert.Empty(t, m.Matches)
	assert.Nil(t, m.Summary)
	assert.Equal(t, "NewAccount#EUW", m.LastRiotID)
	assert.Equal(t, 0, m.MatchPaginator.Page)
}

func TestApplyRefreshResultKeepsDataOnEarlyFailure(t *testing.T) {
	m := modelWithHistory()

	// Client-gone failures carry no platform; stale data stays visible
	// under the updated status line.
	m = ApplyRefreshResult(m, RefreshResultMsg{
		Status: "League Client not detected (start the client).",
	})

	assert.Len(t, m.Matches, 1)
	assert.NotNil(t, m.Summary)
	assert.Equal(t, "OldAccount#EUW", m.LastRiotID)
	assert.Equal(t, "League Client not detected (start the client).", m.StatusMessage)
}

func TestApplyRefreshResultKeepsMatchesWhenKeyMissing(t *testing.T) {
	m := modelWithHistory()

	// Without an API key the pass stops after the LCU phase: Matches is
	// nil, so the previously fetched list survives.
	m = ApplyRefreshResult(m, RefreshResultMsg{
		Status:   "Connected: EUW1 • OldAccount#EUW • Missing RIOT_API_KEY",
		Platform: "EUW1",
		RiotID:   "OldAccount#EUW",
	})

	assert.Len(t, m.Matches, 1)
	assert.NotNil(t, m.Summary)
}
