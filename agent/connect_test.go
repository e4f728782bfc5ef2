package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"railbot/game"
)

/**
Connection Builder:
- happy path: unsatisfied desire -> one request with both endpoints resolved
- idempotence: an active connection in either direction is never re-requested
- budgets: at most one request per source town, at most two per turn
- skips: empty desire lists, unresolvable targets
*/

// townState builds a 10x10 single-region grid and places the given towns.
func townState(t *testing.T, towns []*game.Town) *game.GameState {
	t.Helper()
	tiles := make([]game.TileInit, 100)
	for i := range tiles {
		tiles[i] = game.TileInit{RegionID: 0, Terrain: game.Plains}
	}
	gs, err := game.NewGameState(0, 10, 10, tiles, towns)
	require.NoError(t, err)
	return gs
}

func TestPlanConnections(t *testing.T) {
	t.Run("requests an unsatisfied desire", func(t *testing.T) {
		gs := townState(t, []*game.Town{
			{ID: 3, Coord: game.Coord{X: 3, Y: 4}, DesiredConnections: []int{4}},
			{ID: 4, Coord: game.Coord{X: 7, Y: 8}},
		})

		builds := PlanConnections(gs)
		require.Equal(t, []BuildRequest{{
			FromTown: 3,
			ToTown:   4,
			From:     game.Coord{X: 3, Y: 4},
			To:       game.Coord{X: 7, Y: 8},
		}}, builds)
	})

	t.Run("never re-requests an active connection", func(t *testing.T) {
		gs := townState(t, []*game.Town{
			{ID: 3, Coord: game.Coord{X: 3, Y: 4}, DesiredConnections: []int{4}},
			{ID: 4, Coord: game.Coord{X: 7, Y: 8}},
		})
		// The engine recorded the link in the opposite direction.
		gs.Grid.Tile(game.Coord{X: 3, Y: 4}).ActiveConnections =
			[]game.Connection{{FromID: 4, ToID: 3}}

		require.Empty(t, PlanConnections(gs))
	})

	t.Run("one request per town, next desire moves on", func(t *testing.T) {
		gs := townState(t, []*game.Town{
			{ID: 0, Coord: game.Coord{X: 0, Y: 0}, DesiredConnections: []int{1, 2}},
			{ID: 1, Coord: game.Coord{X: 5, Y: 0}},
			{ID: 2, Coord: game.Coord{X: 0, Y: 5}},
		})

		builds := PlanConnections(gs)
		require.Len(t, builds, 1, "a town attempts at most one new connection per turn")
		require.Equal(t, 1, builds[0].ToTown, "desires are tried in declared order")

		// Once 0-1 is active the second desire gets its turn.
		gs.Grid.Tile(game.Coord{X: 0, Y: 0}).ActiveConnections =
			[]game.Connection{{FromID: 0, ToID: 1}}
		builds = PlanConnections(gs)
		require.Len(t, builds, 1)
		require.Equal(t, 2, builds[0].ToTown)
	})

	t.Run("two requests per turn globally", func(t *testing.T) {
		gs := townState(t, []*game.Town{
			{ID: 0, Coord: game.Coord{X: 0, Y: 0}, DesiredConnections: []int{1}},
			{ID: 1, Coord: game.Coord{X: 5, Y: 0}, DesiredConnections: []int{2}},
			{ID: 2, Coord: game.Coord{X: 0, Y: 5}, DesiredConnections: []int{0}},
		})

		builds := PlanConnections(gs)
		require.Len(t, builds, 2, "build requests are capped at two per turn")
		require.Equal(t, 0, builds[0].FromTown, "towns are scanned in ascending id order")
		require.Equal(t, 1, builds[1].FromTown)
	})

	t.Run("skips empty desires and unknown targets", func(t *testing.T) {
		gs := townState(t, []*game.Town{
			{ID: 0, Coord: game.Coord{X: 0, Y: 0}},
			{ID: 1, Coord: game.Coord{X: 5, Y: 0}, DesiredConnections: []int{42, 2}},
			{ID: 2, Coord: game.Coord{X: 0, Y: 5}},
		})

		builds := PlanConnections(gs)
		require.Len(t, builds, 1)
		require.Equal(t, 2, builds[0].ToTown, "an unresolvable target falls through to the next desire")
	})
}

func TestDecide(t *testing.T) {
	t.Run("empty state yields the empty decision", func(t *testing.T) {
		gs := townState(t, nil)
		d := Decide(gs)
		require.True(t, d.Empty())
	})

	t.Run("combines both selectors", func(t *testing.T) {
		gs := townState(t, []*game.Town{
			{ID: 0, Coord: game.Coord{X: 0, Y: 0}, DesiredConnections: []int{1}},
			{ID: 1, Coord: game.Coord{X: 5, Y: 0}},
		})
		d := Decide(gs)
		require.Nil(t, d.Disrupt, "single-region grid with towns cannot be disrupted")
		require.Len(t, d.Builds, 1)
		require.False(t, d.Empty())
	})
}
