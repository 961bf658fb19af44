// Package config holds the pieces of command-line configuration shared
// by the protracktor commands.
package config

import (
	"fmt"

	"github.com/ivarna/protracktor/internal/comb"
)

// Reverber is anything that can absorb a stream of interleaved stereo
// float32 frames and hand back a (possibly delayed) reverberated copy.
type Reverber interface {
	InputSamples(in []float32) int
	GetAudio(out []float32) int
}

var _ Reverber = &PassThrough{}
var _ Reverber = &comb.Comb{}

// PassThrough is a Reverber that does nothing to the audio beyond
// buffering it, for when reverb is disabled but the pipeline still
// wants a uniform Reverber to call.
type PassThrough struct {
	audio             []float32
	bufSize           int
	readPos, writePos int
	n                 int
}

// NewPassThrough creates a ring-buffered no-op Reverber of the given
// capacity, in frame pairs.
func NewPassThrough(bufferSize int) *PassThrough {
	return &PassThrough{
		audio:   make([]float32, bufferSize),
		bufSize: bufferSize,
	}
}

func (r *PassThrough) InputSamples(in []float32) int {
	free := r.bufSize - r.n
	n := len(in)
	if n > free {
		n = free
	}
	if n == 0 {
		return 0
	}

	if r.writePos+n >= r.bufSize {
		n1 := r.bufSize - r.writePos
		n2 := n - n1
		copy(r.audio[r.writePos:r.writePos+n1], in[:n1])
		copy(r.audio[:n2], in[n1:n1+n2])
		r.writePos = n2
	} else {
		copy(r.audio[r.writePos:r.writePos+n], in[:n])
		r.writePos += n
	}
	r.n += n

	return n
}

func (r *PassThrough) GetAudio(out []float32) int {
	n := len(out)
	if n > r.n {
		n = r.n
	}
	if n == 0 {
		return 0
	}

	if r.readPos+n > r.bufSize {
		n1 := r.bufSize - r.readPos
		n2 := n - n1
		copy(out[:n1], r.audio[r.readPos:r.readPos+n1])
		copy(out[n1:n], r.audio[:n2])
		r.readPos = n2
	} else {
		copy(out[:n], r.audio[r.readPos:r.readPos+n])
		r.readPos += n
	}
	r.n -= n

	return n
}

// ReverbFromFlag builds a Reverber according to the --reverb flag
// value: "none" (default), "light", "medium" or "silly".
func ReverbFromFlag(reverb string, sampleRate int) (Reverber, error) {
	decay := float32(0.2)
	delayMs := 150
	switch reverb {
	case "medium":
		decay, delayMs = 0.3, 250
	case "silly":
		decay, delayMs = 0.5, 2500
	case "none", "":
		decay = 0
	case "light":
	default:
		return nil, fmt.Errorf("unrecognized reverb setting %q", reverb)
	}

	if decay == 0 {
		return NewPassThrough(10 * 1024), nil
	}
	return comb.NewComb(decay, delayMs, sampleRate), nil
}
