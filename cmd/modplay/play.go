package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
	"github.com/fatih/color"
	"github.com/gordonklaus/portaudio"

	"github.com/ivarna/protracktor"
	"github.com/ivarna/protracktor/cmd/internal/config"
)

var (
	white   = color.New(color.FgWhite).SprintfFunc()
	cyan    = color.New(color.FgCyan).SprintfFunc()
	magenta = color.New(color.FgMagenta).SprintfFunc()
	yellow  = color.New(color.FgYellow).SprintfFunc()
	green   = color.New(color.FgGreen).SprintfFunc()
)

const (
	escape     = "\x1b["
	hideCursor = escape + "?25l"
	showCursor = escape + "?25h"
)

const (
	audioBufferFrames = 1024
	patternRowsBefore = 4
	patternRowsAfter  = 4
	uiLineCount       = 2 + patternRowsBefore + patternRowsAfter + 1
)

// AudioPlayer wires a Player to a PortAudio stream and a live tracker
// display, and owns the goroutines that drive both.
type AudioPlayer struct {
	player *protracktor.Player
	reverb config.Reverber
	stream *portaudio.Stream

	scratch   []float32
	reverbOut []float32

	uiWriter        io.Writer
	selectedChannel int
	soloChannel     int
	lastPos         protracktor.Position

	ctx            context.Context
	cancelFn       context.CancelFunc
	wg             sync.WaitGroup
	stopOnce       sync.Once
	terminated     bool
	keyboardDoneCh chan struct{}
}

// NewAudioPlayer constructs an AudioPlayer. When noUI is set, tracker
// rendering is discarded but playback still runs.
func NewAudioPlayer(player *protracktor.Player, reverb config.Reverber, noUI bool) *AudioPlayer {
	var uiw io.Writer = os.Stdout
	if noUI {
		uiw = io.Discard
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &AudioPlayer{
		player:         player,
		reverb:         reverb,
		scratch:        make([]float32, audioBufferFrames*2),
		reverbOut:      make([]float32, audioBufferFrames*2),
		uiWriter:       uiw,
		soloChannel:    -1,
		lastPos:        protracktor.Position{Order: -1},
		ctx:            ctx,
		cancelFn:       cancel,
		keyboardDoneCh: make(chan struct{}),
	}
}

// Run starts audio and the UI loop, and blocks until the user quits.
func (ap *AudioPlayer) Run() error {
	if err := ap.setupAudioStream(); err != nil {
		return err
	}
	ap.setupSignalHandlers()
	ap.setupKeyboardHandlers()

	fmt.Fprint(ap.uiWriter, hideCursor)
	fmt.Fprintln(ap.uiWriter, ap.player.Song.Title)

	for {
		select {
		case <-ap.ctx.Done():
			goto exit
		default:
		}

		pos := ap.player.Position()
		if pos.Order != ap.lastPos.Order || pos.Row != ap.lastPos.Row {
			ap.renderUI(pos)
			ap.lastPos = pos
		}
	}

exit:
	fmt.Fprint(ap.uiWriter, showCursor)

	select {
	case <-ap.keyboardDoneCh:
	case <-time.After(500 * time.Millisecond):
	}

	ap.wg.Wait()
	return nil
}

func (ap *AudioPlayer) setupAudioStream() error {
	stream, err := portaudio.OpenDefaultStream(
		0, 2,
		float64(*flagHz),
		audioBufferFrames,
		ap.streamCallback,
	)
	if err != nil {
		return err
	}
	ap.stream = stream

	if err := stream.Start(); err != nil {
		stream.Close()
		return err
	}
	return nil
}

// streamCallback is PortAudio's audio-thread callback; it renders
// straight into the device buffer through the reverb stage.
func (ap *AudioPlayer) streamCallback(out []float32) {
	sc := ap.scratch[:len(out)]
	ap.player.Render(sc)

	ap.reverb.InputSamples(sc)
	ro := ap.reverbOut[:len(out)]
	n := ap.reverb.GetAudio(ro)
	copy(out, ro[:n])
	for i := n; i < len(out); i++ {
		out[i] = 0
	}
}

func (ap *AudioPlayer) setupSignalHandlers() {
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, syscall.SIGINT)

	ap.wg.Add(1)
	go func() {
		defer ap.wg.Done()
		select {
		case <-ap.ctx.Done():
		case <-sigch:
			ap.Stop()
		}
	}()
}

func (ap *AudioPlayer) setupKeyboardHandlers() {
	ap.wg.Add(1)
	go func() {
		defer ap.wg.Done()
		keyboard.Listen(func(key keys.Key) (stop bool, err error) {
			if key.Code == keys.CtrlC || key.Code == keys.Escape {
				ap.Stop()
				return true, nil
			}
			ap.handleKeyPress(key)
			return false, nil
		})
		close(ap.keyboardDoneCh)
	}()
}

func (ap *AudioPlayer) handleKeyPress(key keys.Key) {
	switch key.Code {
	case keys.Left:
		if ap.selectedChannel > 0 {
			ap.selectedChannel--
		}
	case keys.Right:
		if ap.selectedChannel < 3 {
			ap.selectedChannel++
		}
	case keys.Space:
		if ap.player.IsPlaying() {
			ap.player.Stop()
		} else {
			ap.player.Start()
		}
	case keys.RuneKey:
		if len(key.Runes) == 0 {
			return
		}
		switch key.Runes[0] {
		case 'q':
			ap.player.Mute ^= 1 << ap.selectedChannel
		case 's':
			if ap.soloChannel != ap.selectedChannel {
				ap.soloChannel = ap.selectedChannel
				ap.player.Mute = ^(1 << ap.selectedChannel) & 0x0F
			} else {
				ap.soloChannel = -1
				ap.player.Mute = 0
			}
		}
	}
}

// Stop stops and closes the audio stream and restores the terminal
// cursor. It does not end the keyboard listener, which returns on its
// own when Ctrl-C or Escape is pressed.
func (ap *AudioPlayer) Stop() {
	ap.stopOnce.Do(func() {
		ap.cancelFn()

		if ap.stream != nil {
			ap.stream.Stop()
			ap.stream.Close()
		}
		if !ap.terminated {
			ap.terminated = true
		}

		fmt.Fprint(ap.uiWriter, showCursor)
	})
}

func (ap *AudioPlayer) renderUI(pos protracktor.Position) {
	song := ap.player.Song
	fmt.Fprintf(ap.uiWriter, "%s %02X %s %02X/%02X %s %02d %s %3d\n",
		blue("row"), pos.Row,
		blue("pat"), pos.Order, song.PositionCount,
		blue("speed"), pos.Speed,
		blue("bpm"), pos.BPM)

	fmt.Fprint(ap.uiWriter, "        ")
	for i := 0; i < 4; i++ {
		const chanstr = "%2d       "
		if i == ap.selectedChannel {
			fmt.Fprint(ap.uiWriter, green(chanstr, i+1))
			continue
		}
		fmt.Fprintf(ap.uiWriter, chanstr, i+1)
	}
	fmt.Fprintln(ap.uiWriter)

	for i := -patternRowsBefore; i <= patternRowsAfter; i++ {
		ap.renderNoteRow(pos.Order, pos.Row+i, i == 0)
	}

	fmt.Fprintf(ap.uiWriter, escape+"%dF", uiLineCount)
}

func (ap *AudioPlayer) renderNoteRow(order, row int, isCurrent bool) {
	if row < 0 || row >= 64 {
		fmt.Fprintln(ap.uiWriter)
		return
	}
	nd := ap.player.NoteDataFor(order, row)

	if isCurrent {
		fmt.Fprint(ap.uiWriter, ">>> ")
	} else {
		fmt.Fprint(ap.uiWriter, "    ")
	}

	for ni, n := range nd {
		note := n.Note
		if note == "" {
			note = "..."
		}
		fmt.Fprint(ap.uiWriter, white("%s", note), " ", cyan("%2X", n.Instrument), " ", magenta("%X", n.Effect), yellow("%02X", n.FxParam))
		if ni < 3 {
			fmt.Fprint(ap.uiWriter, "|")
		}
	}

	if isCurrent {
		fmt.Fprint(ap.uiWriter, " <<<")
	}
	fmt.Fprintln(ap.uiWriter)
}

var blue = color.New(color.FgHiBlue).SprintfFunc()
