// Package raw provides pipeline components to read and write raw
// PCM byte streams.
//
// Raw streams are headerless: the byte layout is interleaved PCM at a
// caller-declared format, nothing else. Source presents such a stream
// to the pipeline as framed audio samples, Sink drains the pipeline
// into one. Correctness depends entirely on the declared format
// matching the actual byte layout of the stream.
//
// Components only borrow the streams they are bound to. They never
// open or close them, that is the caller's job.
package raw

import (
	"errors"
	"io"
)

// DefaultChunkSize is the number of bytes a Sink pulls from its
// upstream source per step. It holds a whole number of frames for
// every supported format up to 32-bit stereo.
const DefaultChunkSize = 3072

// Stream is a byte stream a Source reads from. Seek is used to map
// sample positions to absolute byte offsets, Size to compute the
// stream length in samples.
type Stream interface {
	io.ReadSeeker
	Size() (int64, error)
}

// Configuration errors. They are always returned synchronously from
// the offending call and are never retried. Any other error escaping
// a component comes unchanged from the underlying stream.
var (
	// ErrStreamNotBound is returned by Init of a source without a stream.
	ErrStreamNotBound = errors.New("source stream is not bound")
	// ErrSinkNotBound is returned by Prepare of a sink without a writer.
	ErrSinkNotBound = errors.New("sink stream is not bound")
	// ErrUpstreamNotBound is returned when a sink has no upstream source.
	ErrUpstreamNotBound = errors.New("upstream source is not bound")
	// ErrBusy is returned on an attempt to init an already busy component.
	ErrBusy = errors.New("component is busy")
	// ErrNotRunning is returned by Pull on an idle source.
	ErrNotRunning = errors.New("component is not running")
	// ErrInvalidRange is returned when the clipped playback range is empty.
	ErrInvalidRange = errors.New("start sample is beyond the end of range")
)
