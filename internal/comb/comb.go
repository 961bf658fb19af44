// Package comb implements a simple comb-filter reverb over interleaved
// stereo float32 audio, fed incrementally from a Player's Render output.
package comb

// Comb is a comb filter reverb that can be fed audio incrementally. It
// does not discard used samples and has no upper bound on memory used,
// trading that for the ability to sit downstream of Player.Render
// without knowing the total song length up front.
type Comb struct {
	delayOffset int // frames
	readPos     int // frame-pairs consumed by GetAudio
	writePos    int // frame-pairs already reverberated
	decay       float32
	audio       []float32
}

// NewComb constructs a comb filter with the given decay and delay. The
// delay is specified in milliseconds and converted to a frame count
// using sampleRate.
func NewComb(decay float32, delayMs, sampleRate int) *Comb {
	return &Comb{
		delayOffset: (delayMs * sampleRate) / 1000,
		decay:       decay,
	}
}

// InputSamples feeds the filter with interleaved stereo frames. Once
// enough frames have accumulated, it reverberates everything it can
// and returns the number of additional float32 values (two per stereo
// frame) still needed to fill the first delay window; it is 0 once
// that window is full.
func (c *Comb) InputSamples(in []float32) int {
	c.audio = append(c.audio, in...)
	if len(c.audio) > c.delayOffset*2 {
		ns := len(c.audio) - (c.delayOffset*2 + c.writePos)
		for i := 0; i < ns; i++ {
			c.audio[i+c.delayOffset*2+c.writePos] += c.audio[i+c.writePos] * c.decay
		}
		c.writePos += ns
	}
	rem := c.delayOffset*2 - len(c.audio)
	if rem < 0 {
		rem = 0
	}
	return rem
}

// GetAudio copies processed float32 values into out and returns how
// many were written; it may be fewer than len(out) if input hasn't
// caught up.
func (c *Comb) GetAudio(out []float32) int {
	wanted := len(out)
	have := len(c.audio) - c.readPos
	if wanted > have {
		wanted = have
	}
	if wanted > 0 {
		copy(out, c.audio[c.readPos:c.readPos+wanted])
		c.readPos += wanted
	}
	return wanted
}
