package protracktor

import "math"

// basePeriods is the canonical Amiga period table for notes C-1 through
// B-5 (as noteName labels note indices 1..60), index 0 is an unused sentinel so that note indices (1-based) can
// index it directly. Values and layout lifted verbatim from the format
// documentation every player in this pack agrees on.
var basePeriods = [61]int{
	0, 1712, 1616, 1525, 1440, 1357, 1281, 1209, 1141, 1077, 1017, 961,
	907, 856, 808, 762, 720, 678, 640, 604, 570, 538, 508, 480,
	453, 428, 404, 381, 360, 339, 320, 302, 285, 269, 254, 240,
	226, 214, 202, 190, 180, 170, 160, 151, 143, 135, 127, 120,
	113, 107, 101, 95, 90, 85, 80, 76, 71, 67, 64, 60, 57,
}

// periodTable holds the finetune-adjusted period for every (finetune,
// note) pair. It is built once at package init and is read-only
// thereafter, so no synchronization is needed when Players share it
// across goroutines that each own a distinct Player (rendering itself
// is still single-threaded, see Player.Render).
var periodTable [16][60]int

// vibratoTable holds fixed-point waveform samples for vibrato/tremolo:
// [waveform][amplitude][phase]. Waveform 0 is the sine, 1 the
// descending ramp and 2 the square; waveform code 3 aliases waveform 0
// at the call site, not in the table itself.
var vibratoTable [3][15][64]int

func init() {
	for ft := 0; ft < 16; ft++ {
		rft := ft
		if rft > 8 {
			rft -= 16
		}
		rft = -rft
		fac := math.Pow(2, float64(rft)/(12*16))
		for i := 0; i < 60; i++ {
			periodTable[ft][i] = int(math.Floor(float64(basePeriods[i+1]) * fac))
		}
	}

	for a := 0; a < 15; a++ {
		scale := float64(a) + 1.5
		for x := 0; x < 64; x++ {
			vibratoTable[0][a][x] = int(math.Floor(scale * math.Sin(float64(x)/32)))
			vibratoTable[1][a][x] = int(math.Floor(scale * (float64(63-x)/31.5 - 1)))
			if x < 32 {
				vibratoTable[2][a][x] = int(math.Floor(scale * 1))
			} else {
				vibratoTable[2][a][x] = int(math.Floor(scale * -1))
			}
		}
	}
}

// waveform fetches a vibrato/tremolo table entry, folding the MOD
// "waveform 3" alias down to waveform 0 per §4.1.
func waveform(wave, amplitude, pos int) int {
	if wave == 3 {
		wave = 0
	}
	return vibratoTable[wave][amplitude][pos]
}
