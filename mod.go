package protracktor

import "strings"

// Song is an immutable, fully-decoded 4-channel MOD module: everything
// a Player needs to play it back, and nothing it needs to mutate.
type Song struct {
	Title string

	Orders        [128]byte
	PositionCount int

	Patterns []Pattern
	Samples  []Sample
}

// tag byte sequences at offset 1080 that mark a 31-sample module, per
// §4.4/§6. Any other 4 bytes there (or a file too short to hold them)
// means the legacy 15-sample layout.
var modTags = map[string]bool{
	"M.K.": true,
	"M!K!": true,
	"4TLF": true,
}

// NewSongFromBytes decodes a complete MOD file per §4.4. It never reads
// past len(data), returning an error that matches one of the sentinels
// under errors.Is instead (the bare sentinel for header and pattern
// failures, a wrapped one for a truncated sample body).
func NewSongFromBytes(data []byte) (*Song, error) {
	if len(data) < 20 {
		return nil, ErrInvalidHeader
	}
	title := strings.TrimRight(string(data[0:20]), "\x00")

	numSamples := 15
	tagged := false
	if len(data) >= 1084 && modTags[string(data[1080:1084])] {
		numSamples = 31
		tagged = true
	}

	headerEnd := 20 + numSamples*sampleHeaderSize
	if len(data) < headerEnd+2+128 {
		return nil, ErrInvalidHeader
	}

	samples := make([]Sample, numSamples)
	off := 20
	for i := 0; i < numSamples; i++ {
		s, err := loadSampleHeader(data[off : off+sampleHeaderSize])
		if err != nil {
			return nil, err
		}
		samples[i] = s
		off += sampleHeaderSize
	}

	positionCount := int(data[off])
	off += 2 // position count byte + the unused byte that follows it

	var orders [128]byte
	copy(orders[:], data[off:off+128])
	off += 128

	if tagged {
		off += 4 // the tag bytes already consulted above
	}

	patternCount := 1
	for _, o := range orders {
		if int(o)+1 > patternCount {
			patternCount = int(o) + 1
		}
	}

	patterns := make([]Pattern, patternCount)
	for i := 0; i < patternCount; i++ {
		if off+patternByteSize > len(data) {
			return nil, ErrTruncatedPattern
		}
		p, err := loadPattern(data[off : off+patternByteSize])
		if err != nil {
			return nil, err
		}
		patterns[i] = p
		off += patternByteSize
	}

	for i := range samples {
		body, err := loadSampleBody(data, off, samples[i].Length)
		if err != nil {
			return nil, err
		}
		samples[i].Data = body
		off += samples[i].Length
	}

	return &Song{
		Title:         title,
		Orders:        orders,
		PositionCount: positionCount,
		Patterns:      patterns,
		Samples:       samples,
	}, nil
}
