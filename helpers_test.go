package protracktor

import (
	"strconv"
	"strings"
	"testing"

	clone "github.com/huandu/go-clone/generic"
)

const testSampleLength = 1000

var testSong = Song{
	Title:         "testsong",
	PositionCount: 1,
	Samples: []Sample{
		{Name: "testins1", Volume: 60, FineTune: 0, Length: testSampleLength, LoopLen: 2, Data: make([]int8, testSampleLength)},
		{Name: "testins2", Volume: 55, FineTune: 0, Length: testSampleLength, LoopLen: 2, Data: make([]int8, testSampleLength)},
	},
}

// newPlayerWithTestPattern builds a one-pattern Song from a small text
// DSL and returns a freshly-constructed Player over it, so effect
// behavior can be exercised one row at a time. Each row is a
// space-separated list of 1 to 4 cells "NOTE,INSTR,FXPARAM", e.g.
// "C-2,01,A04" or "...,..,..." for an empty cell; channels without a
// cell are left empty.
func newPlayerWithTestPattern(t *testing.T, rows ...string) *Player {
	t.Helper()

	var pat Pattern
	for r, row := range rows {
		cols := strings.Fields(row)
		if len(cols) == 0 || len(cols) > 4 {
			t.Fatalf("row %d: want 1 to 4 columns, got %d (%q)", r, len(cols), row)
		}
		for c, col := range cols {
			pat[r][c] = decodeTestCell(t, col)
		}
	}

	song := clone.Clone(testSong)
	song.Patterns = []Pattern{pat}

	player, err := NewPlayer(&song, 48000)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return player
}

// decodeTestCell decodes one "NOTE,INSTR,FXPARAM" group, e.g.
// "C-2,01,A04" -> Event{Note: 13, Sample: 1, Effect: 0xA, FxParam: 0x04}.
func decodeTestCell(t *testing.T, group string) Event {
	t.Helper()

	parts := strings.SplitN(group, ",", 3)
	if len(parts) != 3 {
		t.Fatalf("malformed test cell %q, want NOTE,INSTR,FXPARAM", group)
	}

	var ev Event
	if parts[0] != "..." && parts[0] != "" {
		ev.Note = noteFromString(t, parts[0])
	}
	if parts[1] != ".." && parts[1] != "" {
		v, err := strconv.Atoi(parts[1])
		if err != nil {
			t.Fatalf("bad instrument %q: %v", parts[1], err)
		}
		ev.Sample = v
	}
	if parts[2] != "..." && parts[2] != "" {
		fx, err := strconv.ParseInt(parts[2][0:1], 16, 16)
		if err != nil {
			t.Fatalf("bad effect %q: %v", parts[2], err)
		}
		param, err := strconv.ParseInt(parts[2][1:3], 16, 16)
		if err != nil {
			t.Fatalf("bad effect param %q: %v", parts[2], err)
		}
		ev.Effect = int(fx)
		ev.FxParam = int(param)
	}
	return ev
}

var testNoteNames = [12]string{"C-", "C#", "D-", "D#", "E-", "F-", "F#", "G-", "G#", "A-", "A#", "B-"}

func noteFromString(t *testing.T, s string) int {
	t.Helper()
	if len(s) != 3 {
		t.Fatalf("bad note %q", s)
	}
	name := s[0:2]
	octave := int(s[2] - '0')
	for i, n := range testNoteNames {
		if n == name {
			return (octave-1)*12 + i + 1
		}
	}
	t.Fatalf("unknown note name %q", name)
	return 0
}

// advanceToNextRow drives the player's ticks until curRow changes, so
// a test can inspect the channel/voice state at the start of a row.
func advanceToNextRow(p *Player) {
	startRow, startPos := p.curRow, p.curPos
	for p.curRow == startRow && p.curPos == startPos {
		p.tick()
	}
}
