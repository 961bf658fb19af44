// modplay plays a MOD file on the default audio device.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/gordonklaus/portaudio"
	"github.com/spf13/pflag"

	"github.com/ivarna/protracktor"
	"github.com/ivarna/protracktor/cmd/internal/config"
)

var (
	flagHz       = pflag.Int("hz", 48000, "output sample rate in Hz")
	flagStartOrd = pflag.Int("start", 0, "starting order in the song, clamped to song length")
	flagReverb   = pflag.String("reverb", "none", "reverb preset: none, light, medium, silly")
	flagNoUI     = pflag.Bool("no-ui", false, "suppress the live tracker display")
)

func main() {
	log.SetReportTimestamp(false)
	log.SetPrefix("modplay")
	pflag.Parse()

	if pflag.NArg() == 0 {
		log.Fatal("missing MOD filename")
	}

	modF, err := os.ReadFile(pflag.Arg(0))
	if err != nil {
		log.Fatal("reading MOD file", "err", err)
	}

	song, err := protracktor.NewSongFromBytes(modF)
	if err != nil {
		log.Fatal("decoding MOD file", "err", err)
	}

	player, err := protracktor.NewPlayer(song, *flagHz)
	if err != nil {
		log.Fatal("constructing player", "err", err)
	}
	start := *flagStartOrd
	if start > song.PositionCount-1 {
		start = song.PositionCount - 1
	}
	if start < 0 {
		start = 0
	}
	player.SeekTo(start, 0)

	reverb, err := config.ReverbFromFlag(*flagReverb, *flagHz)
	if err != nil {
		log.Fatal(err)
	}

	if err := portaudio.Initialize(); err != nil {
		log.Fatal("initializing portaudio", "err", err)
	}
	defer portaudio.Terminate()

	ap := NewAudioPlayer(player, reverb, *flagNoUI)
	if err := ap.Run(); err != nil {
		log.Fatal(err)
	}
}
