// modwav renders a MOD file to a 16-bit stereo WAVE file.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/ivarna/protracktor"
	"github.com/ivarna/protracktor/cmd/internal/config"
	"github.com/ivarna/protracktor/wav"
)

var (
	flagOut     = pflag.StringP("out", "o", "", "output WAVE file (required)")
	flagHz      = pflag.Int("hz", 48000, "output sample rate in Hz")
	flagSeconds = pflag.Float64("seconds", 120, "maximum seconds to render")
	flagReverb  = pflag.String("reverb", "none", "reverb preset: none, light, medium, silly")
)

func main() {
	log.SetReportTimestamp(false)
	log.SetPrefix("modwav")
	pflag.Parse()

	if pflag.NArg() == 0 {
		log.Fatal("missing MOD filename")
	}
	if *flagOut == "" {
		log.Fatal("missing -out/-o WAVE filename")
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

	reverb, err := config.ReverbFromFlag(*flagReverb, *flagHz)
	if err != nil {
		log.Fatal(err)
	}

	wavF, err := os.Create(*flagOut)
	if err != nil {
		log.Fatal("creating output file", "err", err)
	}
	defer wavF.Close()

	wavW, err := wav.NewWriter(wavF, *flagHz)
	if err != nil {
		log.Fatal("writing WAVE header", "err", err)
	}
	defer wavW.Finish()

	const chunkFrames = 4096
	floatBuf := make([]float32, chunkFrames*2)

	totalFrames := int(*flagSeconds * float64(*flagHz))
	lastOrder := -1
	for rendered := 0; rendered < totalFrames; rendered += chunkFrames {
		n := chunkFrames
		if totalFrames-rendered < n {
			n = totalFrames - rendered
		}

		fb := floatBuf[:n*2]

		player.Render(fb)
		reverb.InputSamples(fb)
		reverb.GetAudio(fb)

		if err := wavW.WriteFloatFrame(fb); err != nil {
			log.Fatal("writing WAVE frame", "err", err)
		}

		if pos := player.Position(); pos.Order != lastOrder {
			log.Info("playing", "order", pos.Order, "of", song.PositionCount)
			lastOrder = pos.Order
		}
	}
}
