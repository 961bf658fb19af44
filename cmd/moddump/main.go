// moddump prints a summary of a MOD file's structure: title, samples,
// pattern order list and pattern/sample counts.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/ivarna/protracktor"
)

func main() {
	log.SetReportTimestamp(false)
	log.SetPrefix("moddump")

	if len(os.Args) < 2 {
		log.Fatal("missing MOD filename")
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal("reading MOD file", "err", err)
	}

	song, err := protracktor.NewSongFromBytes(data)
	if err != nil {
		log.Fatal("decoding MOD file", "err", err)
	}

	fmt.Printf("Title: %q\n", song.Title)
	fmt.Printf("Samples: %d\n", len(song.Samples))
	fmt.Printf("Patterns: %d\n", len(song.Patterns))
	fmt.Printf("Position count: %d\n", song.PositionCount)

	fmt.Println("\nSample table:")
	for i, s := range song.Samples {
		if s.Length == 0 && s.Name == "" {
			continue
		}
		fmt.Printf("  %2d  %-22q  len=%-6d  finetune=%-3d  volume=%-3d  loop=[%d,%d)\n",
			i+1, s.Name, s.Length, s.FineTune, s.Volume, s.LoopStart, s.LoopStart+s.LoopLen)
	}

	fmt.Println("\nOrder list:")
	for i := 0; i < song.PositionCount; i++ {
		fmt.Printf("%3d ", song.Orders[i])
		if (i+1)%16 == 0 {
			fmt.Println()
		}
	}
	fmt.Println()
}
