package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"railbot/agent"
	"railbot/game"
)

/**
Command Emitter:
- ordering: DISRUPT, its MESSAGE, then AUTOPLACE builds
- empty decision -> exactly WAIT
- ink-out prediction only changes the message text
*/

func TestRender(t *testing.T) {
	t.Run("disruption before builds", func(t *testing.T) {
		d := agent.Decision{
			Disrupt: &agent.DisruptPlan{RegionID: 5},
			Builds: []agent.BuildRequest{
				{FromTown: 3, ToTown: 4, From: game.Coord{X: 3, Y: 4}, To: game.Coord{X: 7, Y: 8}},
				{FromTown: 6, ToTown: 2, From: game.Coord{X: 1, Y: 1}, To: game.Coord{X: 9, Y: 0}},
			},
		}
		require.Equal(t,
			"DISRUPT 5;MESSAGE pressuring region 5;AUTOPLACE 3 4 7 8;AUTOPLACE 1 1 9 0",
			Render(d))
	})

	t.Run("predicted ink-out changes the message", func(t *testing.T) {
		d := agent.Decision{Disrupt: &agent.DisruptPlan{RegionID: 5, PredictInk: true}}
		require.Equal(t, "DISRUPT 5;MESSAGE region 5 reaching ink-out", Render(d))
	})

	t.Run("empty decision renders as WAIT", func(t *testing.T) {
		require.Equal(t, "WAIT", Render(agent.Decision{}))
	})

	t.Run("builds alone need no message", func(t *testing.T) {
		d := agent.Decision{Builds: []agent.BuildRequest{
			{FromTown: 0, ToTown: 1, From: game.Coord{X: 0, Y: 0}, To: game.Coord{X: 2, Y: 0}},
		}}
		require.Equal(t, "AUTOPLACE 0 0 2 0", Render(d))
	})
}
