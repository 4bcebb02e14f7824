package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/despectus/despectus/app"
	"github.com/despectus/despectus/app/screens/dashboard"
	config "github.com/despectus/despectus/internal"
)

func TestStaleAutoRefreshTickIsDropped(t *testing.T) {
	pm := ProgramModel{M: app.Model{
		CurrentScreen:  app.ScreenDashboard,
		DDragonVersion: "15.1.1",
		AutoTickGen:    2,
	}}

	// A tick from a superseded chain must not start a refresh.
	updated, cmd := pm.Update(dashboard.AutoRefreshTickMsg{Gen: 1})
	pm = updated.(ProgramModel)
	assert.False(t, pm.M.Refreshing)
	assert.Nil(t, cmd)

	// The live chain's tick does.
	updated, cmd = pm.Update(dashboard.AutoRefreshTickMsg{Gen: 2})
	pm = updated.(ProgramModel)
	assert.True(t, pm.M.Refreshing)
	assert.NotNil(t, cmd)
}

func TestRefreshResultSupersedesTickChain(t *testing.T) {
	pm := ProgramModel{M: app.Model{
		CurrentScreen: app.ScreenDashboard,
		Settings:      config.DefaultSettings(),
		AutoTickGen:   3,
	}}

	// Each finished refresh re-arms exactly one chain under a new
	// generation, so a manual refresh cannot stack a second one.
	updated, cmd := pm.Update(dashboard.RefreshResultMsg{
		Status: "League Client not detected (start the client).",
	})
	pm = updated.(ProgramModel)
	assert.Equal(t, 4, pm.M.AutoTickGen)
	assert.NotNil(t, cmd)
}
