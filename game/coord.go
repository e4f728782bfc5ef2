package game

import "fmt"

// Coord is a position on the grid. Value equality makes it usable as a map
// key for tile and town lookups.
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("%d %d", c.X, c.Y)
}
