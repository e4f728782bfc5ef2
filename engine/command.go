package engine

import (
	"fmt"
	"strings"

	"railbot/agent"
)

// Command is one semicolon-separated unit of a turn's output line.
type Command string

const Wait Command = "WAIT"

func Disrupt(regionID int) Command {
	return Command(fmt.Sprintf("DISRUPT %d", regionID))
}

func Message(text string) Command {
	return Command("MESSAGE " + text)
}

func Autoplace(b agent.BuildRequest) Command {
	return Command(fmt.Sprintf("AUTOPLACE %d %d %d %d", b.From.X, b.From.Y, b.To.X, b.To.Y))
}

// Render serializes a decision into the turn's single output line:
// disruption first (with its diagnostic message), then builds in emission
// order. The empty decision maps to WAIT so the turn always produces
// syntactically valid output.
func Render(d agent.Decision) string {
	var commands []Command
	if d.Disrupt != nil {
		commands = append(commands, Disrupt(d.Disrupt.RegionID))
		if d.Disrupt.PredictInk {
			commands = append(commands, Message(fmt.Sprintf("region %d reaching ink-out", d.Disrupt.RegionID)))
		} else {
			commands = append(commands, Message(fmt.Sprintf("pressuring region %d", d.Disrupt.RegionID)))
		}
	}
	for _, b := range d.Builds {
		commands = append(commands, Autoplace(b))
	}
	if len(commands) == 0 {
		return string(Wait)
	}
	parts := make([]string, len(commands))
	for i, c := range commands {
		parts[i] = string(c)
	}
	return strings.Join(parts, ";")
}
