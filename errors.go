package protracktor

import "errors"

// Sentinel errors returned by the module loader. They describe a
// malformed input file, never a runtime condition in the render path.
var (
	// ErrInvalidHeader is returned when the input is too short to hold a
	// title, sample headers, order count and order list for whichever
	// sample count (15 or 31) the offset-1080 tag check selects. A tag
	// that doesn't match a recognized string is not itself an error -
	// it just means the file has no tag and 15 samples.
	ErrInvalidHeader = errors.New("protracktor: invalid module header")

	// ErrTruncatedPattern is returned when the declared pattern count
	// implies pattern data beyond the end of the file.
	ErrTruncatedPattern = errors.New("protracktor: truncated pattern data")

	// ErrTruncatedSample is returned when a sample's declared length
	// implies PCM data beyond the end of the file.
	ErrTruncatedSample = errors.New("protracktor: truncated sample data")
)
