package engine

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"railbot/agent"
	"railbot/game"
	"railbot/history"
	"railbot/protocol"
)

// Engine drives the turn-lockstep loop: read one snapshot, update the
// state, decide, write one action line. Single-threaded; the state is owned
// by this loop and mutated only in the update step.
type Engine struct {
	State    *game.GameState
	reader   *protocol.Reader
	out      io.Writer
	recorder history.Recorder
	matchID  string
}

func New(state *game.GameState, reader *protocol.Reader, out io.Writer, recorder history.Recorder) *Engine {
	if recorder == nil {
		recorder = history.Nop()
	}
	return &Engine{
		State:    state,
		reader:   reader,
		out:      out,
		recorder: recorder,
		matchID:  uuid.NewString(),
	}
}

// Run loops until the input stream ends. A turn whose snapshot fails to
// apply still answers: the engine degrades to WAIT rather than stalling the
// match, since a single bad turn must never end the match from our side.
func (e *Engine) Run() error {
	log.Info().Int("player", e.State.MyID).Str("match", e.matchID).Msg("match started")
	step := 0
	for {
		update, err := e.reader.ReadTurn(e.State.Grid.Width * e.State.Grid.Height)
		if errors.Is(err, io.EOF) {
			log.Info().Int("turns", step).Msg("input stream closed, match over")
			return nil
		}
		step++

		var decision agent.Decision
		switch {
		case update == nil:
			log.Warn().Err(err).Int("turn", step).Msg("unreadable turn frame, waiting")
		case err != nil:
			log.Warn().Err(err).Int("turn", step).Msg("partial turn frame, waiting")
		default:
			if applyErr := e.State.ApplyTurn(*update); applyErr != nil {
				log.Warn().Err(applyErr).Int("turn", step).Msg("state update failed, waiting")
			} else {
				decision = agent.Decide(e.State)
			}
		}

		line := Render(decision)
		if _, err := fmt.Fprintln(e.out, line); err != nil {
			return fmt.Errorf("write turn %d: %w", step, err)
		}
		log.Info().Int("turn", step).Str("actions", line).Msg("turn complete")
		e.record(step, decision, line)

		// A frame that ended mid-stream cannot be followed by another turn.
		if err != nil && errors.Is(err, io.ErrUnexpectedEOF) {
			return nil
		}
	}
}

func (e *Engine) record(step int, d agent.Decision, line string) {
	rec := history.TurnRecord{
		MatchID:       e.matchID,
		Step:          step,
		MyScore:       e.State.MyScore,
		FoeScore:      e.State.FoeScore,
		DisruptRegion: -1,
		Builds:        formatBuilds(d.Builds),
		Rendered:      line,
	}
	if d.Disrupt != nil {
		rec.DisruptRegion = d.Disrupt.RegionID
		rec.PredictedInk = d.Disrupt.PredictInk
	}
	if err := e.recorder.Record(rec); err != nil {
		log.Warn().Err(err).Int("turn", step).Msg("history record failed")
	}
}

func formatBuilds(builds []agent.BuildRequest) string {
	parts := make([]string, len(builds))
	for i, b := range builds {
		parts[i] = fmt.Sprintf("%d-%d", b.FromTown, b.ToTown)
	}
	return strings.Join(parts, ",")
}
