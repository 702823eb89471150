package cdr

import "errors"

var (
	// ErrSizeOverflow indicates an image dimension does not fit the 16 bit header.
	ErrSizeOverflow = errors.New("image dimension overflow")
	// ErrShortHeader indicates a stream shorter than its 4 byte header.
	ErrShortHeader = errors.New("stream shorter than header")
	// ErrMalformedStream indicates a trailing partial record.
	ErrMalformedStream = errors.New("malformed stream")
	// ErrRecordOutOfBounds indicates a record reaching outside the image.
	ErrRecordOutOfBounds = errors.New("record out of bounds")
	// ErrLevelNotInteger indicates a compression level that is not an integer.
	ErrLevelNotInteger = errors.New("compression level is not an integer")
	// ErrLevelOutOfRange indicates a compression level outside [MinLevel, MaxLevel].
	ErrLevelOutOfRange = errors.New("compression level out of range")
	// ErrUnknownMetric indicates an unsupported distance metric name.
	ErrUnknownMetric = errors.New("unknown metric")
)
