// Package protocol reads the engine's line-oriented frames: one init frame
// at startup, then one turn frame per turn until EOF.
package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"railbot/game"
)

// Reader consumes frames from the engine's stream.
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{scanner: s}
}

func (r *Reader) line() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}

func (r *Reader) intLine() (int, error) {
	raw, err := r.line()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("expected integer line, got %q", raw)
	}
	return n, nil
}

// InitFrame carries everything needed to build the game state.
type InitFrame struct {
	MyID   int
	Width  int
	Height int
	Tiles  []game.TileInit
	Towns  []*game.Town
}

// ReadInit reads the initialization frame. Init parsing is strict: any
// malformed line is a configuration error and the caller aborts startup.
func (r *Reader) ReadInit() (*InitFrame, error) {
	frame := &InitFrame{}
	var err error
	if frame.MyID, err = r.intLine(); err != nil {
		return nil, fmt.Errorf("player id: %w", err)
	}
	if frame.Width, err = r.intLine(); err != nil {
		return nil, fmt.Errorf("grid width: %w", err)
	}
	if frame.Height, err = r.intLine(); err != nil {
		return nil, fmt.Errorf("grid height: %w", err)
	}

	count := frame.Width * frame.Height
	frame.Tiles = make([]game.TileInit, 0, count)
	for i := 0; i < count; i++ {
		raw, err := r.line()
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		var regionID, terrain int
		if _, err := fmt.Sscan(raw, &regionID, &terrain); err != nil {
			return nil, fmt.Errorf("tile %d: %q: %w", i, raw, err)
		}
		frame.Tiles = append(frame.Tiles, game.TileInit{
			RegionID: regionID,
			Terrain:  game.Terrain(terrain),
		})
	}

	townCount, err := r.intLine()
	if err != nil {
		return nil, fmt.Errorf("town count: %w", err)
	}
	for i := 0; i < townCount; i++ {
		raw, err := r.line()
		if err != nil {
			return nil, fmt.Errorf("town %d: %w", i, err)
		}
		town, err := parseTown(raw)
		if err != nil {
			return nil, fmt.Errorf("town %d: %w", i, err)
		}
		frame.Towns = append(frame.Towns, town)
	}
	return frame, nil
}

func parseTown(raw string) (*game.Town, error) {
	fields := strings.Fields(raw)
	if len(fields) != 4 {
		return nil, fmt.Errorf("expected 4 fields, got %q", raw)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("town id %q", fields[0])
	}
	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("town x %q", fields[1])
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("town y %q", fields[2])
	}
	town := &game.Town{ID: id, Coord: game.Coord{X: x, Y: y}}
	if fields[3] != "x" {
		for _, part := range strings.Split(fields[3], ",") {
			desired, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("desired connection %q", part)
			}
			town.DesiredConnections = append(town.DesiredConnections, desired)
		}
	}
	return town, nil
}

// ReadTurn reads one turn frame of tileCount tiles. It always consumes the
// frame's full line budget so one malformed line cannot shift the framing of
// every later turn; the first error is reported alongside the partial
// update. A stream that ends mid-frame yields io.ErrUnexpectedEOF.
func (r *Reader) ReadTurn(tileCount int) (*game.TurnUpdate, error) {
	update := &game.TurnUpdate{}
	var err error
	if update.MyScore, err = r.intLine(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("my score: %w", err)
	}
	if update.FoeScore, err = r.intLine(); err != nil {
		return nil, unexpected("foe score", err)
	}

	update.Tiles = make([]game.TileUpdate, tileCount)
	var firstErr error
	for i := 0; i < tileCount; i++ {
		raw, err := r.line()
		if err != nil {
			return nil, unexpected(fmt.Sprintf("tile %d", i), err)
		}
		tile, err := parseTileUpdate(raw)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("tile %d: %w", i, err)
		}
		update.Tiles[i] = tile
	}
	return update, firstErr
}

func parseTileUpdate(raw string) (game.TileUpdate, error) {
	fields := strings.Fields(raw)
	if len(fields) != 4 {
		return game.TileUpdate{TracksOwner: game.NoOwner}, fmt.Errorf("expected 4 fields, got %q", raw)
	}
	owner, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.TileUpdate{TracksOwner: game.NoOwner}, fmt.Errorf("owner %q", fields[0])
	}
	instability, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.TileUpdate{TracksOwner: game.NoOwner}, fmt.Errorf("instability %q", fields[1])
	}
	return game.TileUpdate{
		TracksOwner:    owner,
		Instability:    instability,
		Inked:          fields[2] != "0",
		RawConnections: fields[3],
	}, nil
}

func unexpected(context string, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%s: %w", context, err)
}
