package game

import (
	"strconv"
	"strings"
)

// Connection is an established railway link between two towns. The engine
// reports it directionally but reachability is symmetric.
type Connection struct {
	FromID int
	ToID   int
}

// Links reports whether the connection joins towns a and b, in either
// direction.
func (c Connection) Links(a, b int) bool {
	return (c.FromID == a && c.ToID == b) || (c.FromID == b && c.ToID == a)
}

// ParseConnections tokenizes the engine's per-tile connection-list field:
// "x" or "" for none, otherwise comma-separated "from-to" id pairs.
// Malformed tokens are collected in dropped instead of aborting; one corrupt
// token must not lose the rest of the tile's connection set.
func ParseConnections(raw string) (conns []Connection, dropped []string) {
	if raw == "" || raw == "x" {
		return nil, nil
	}
	for _, token := range strings.Split(raw, ",") {
		from, to, ok := strings.Cut(token, "-")
		if !ok {
			dropped = append(dropped, token)
			continue
		}
		fromID, err := strconv.Atoi(from)
		if err != nil {
			dropped = append(dropped, token)
			continue
		}
		toID, err := strconv.Atoi(to)
		if err != nil {
			dropped = append(dropped, token)
			continue
		}
		conns = append(conns, Connection{FromID: fromID, ToID: toID})
	}
	return conns, dropped
}
