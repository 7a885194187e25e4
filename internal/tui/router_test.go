package tui

import (
	"errors"
	"testing"

	"github.com/freeside-software/jack/internal/engine"
	"github.com/freeside-software/jack/internal/scores"
	"github.com/freeside-software/jack/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_BuildsEveryTarget(t *testing.T) {
	r := testRouter(&fakeTable{}, &fakeScores{}, nil)

	assert.IsType(t, &MenuScreen{}, r.Build(TargetMenu, Params{}))
	assert.IsType(t, &GameScreen{}, r.Build(TargetGame, Params{}))
	assert.IsType(t, &SettingsScreen{}, r.Build(TargetSettings, Params{}))
	assert.IsType(t, &TutorialScreen{}, r.Build(TargetTutorial, Params{}))
	assert.IsType(t, &HighScoresScreen{}, r.Build(TargetHighScores, Params{}))
	assert.IsType(t, &PlaceholderScreen{}, r.Build(Target("credits"), Params{}))
}

func TestRouter_HighScoresWithoutStoreIsPlaceholder(t *testing.T) {
	r := testRouter(&fakeTable{}, nil, nil)
	assert.IsType(t, &PlaceholderScreen{}, r.Build(TargetHighScores, Params{}))
}

func TestRouter_HighScoresShowsStoreError(t *testing.T) {
	r := testRouter(&fakeTable{}, &fakeScores{err: errors.New("locked")}, nil)
	hs, ok := r.Build(TargetHighScores, Params{}).(*HighScoresScreen)
	require.True(t, ok)
	assert.Contains(t, frame(hs, 100, 20), "locked")
}

func TestRouter_GameUsesSessionSettings(t *testing.T) {
	table := &fakeTable{}
	r := testRouter(table, nil, nil)

	s := settings.Settings{Decks: 2, StartingBankroll: 300, DealerHitsSoft17: true, PlayerName: "Ada"}
	r.Build(TargetMenu, Params{Settings: &s})
	r.Build(TargetGame, Params{})

	require.Len(t, table.opened, 1)
	opts := table.opened[0]
	assert.Equal(t, 2, opts.Decks)
	assert.Equal(t, engine.Dollars(300), opts.Bankroll)
	assert.True(t, opts.DealerHitsSoft17)
	assert.Equal(t, 1, table.shuffles)
}

func TestRouter_ContinueResumesLastBankroll(t *testing.T) {
	table := &fakeTable{}
	r := testRouter(table, nil, nil)

	r.Build(TargetMenu, Params{Bankroll: engine.Dollars(1750), Resume: true})
	r.Build(TargetGame, Params{Resume: true})
	r.Build(TargetGame, Params{})

	require.Len(t, table.opened, 2)
	assert.Equal(t, engine.Dollars(1750), table.opened[0].Bankroll)
	assert.Equal(t, engine.Dollars(settings.Default().StartingBankroll), table.opened[1].Bankroll, "Play starts fresh")
}

func TestRouter_ContinueFallsBackToStore(t *testing.T) {
	table := &fakeTable{}
	store := &fakeScores{sessions: []scores.Session{{Player: "Ada", EndBankroll: engine.Dollars(640)}}}
	r := testRouter(table, store, nil)

	r.Build(TargetGame, Params{Resume: true})
	require.Len(t, table.opened, 1)
	assert.Equal(t, engine.Dollars(640), table.opened[0].Bankroll)
}

func TestRouter_ContinueAfterGoingBrokeStartsFresh(t *testing.T) {
	table := &fakeTable{}
	r := testRouter(table, &fakeScores{}, nil)

	r.Build(TargetMenu, Params{Bankroll: 0, Resume: true})
	r.Build(TargetGame, Params{Resume: true})
	require.Len(t, table.opened, 1)
	assert.Equal(t, engine.Dollars(settings.Default().StartingBankroll), table.opened[0].Bankroll)
}
