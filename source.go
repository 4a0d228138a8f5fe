package raw

import (
	"io"

	"github.com/pipelined/raw/signal"
)

// Source reads raw PCM bytes from a stream and presents them to the
// pipeline as framed audio samples of the declared format.
//
// Declared properties are set before Init and are not picked up once
// the source is busy. An optional playback sub-range is declared with
// StartSample and EndSample and is clipped against the stream length
// at Init.
type Source struct {
	// Seekable declares that the bound stream supports meaningful
	// seeks. The flag is advisory: it is consulted by pipeline
	// drivers, Seek itself does not check it.
	Seekable bool
	// StartSample is the first sample of the playback range.
	StartSample int64
	// EndSample is the last sample of the playback range, inclusive.
	// -1 means to the end of the stream.
	EndSample int64
	// Looping declares that the range should be replayed when
	// exhausted. Loop policy belongs to the pipeline driver, the
	// source only reports the range-clipped length.
	Looping bool

	stream Stream
	format signal.Format

	buffer       []byte
	busy         bool
	pos          int64 // bytes pulled since Init, relative to range start
	byteSize     int64
	totalSamples int64
}

// NewSource returns a new source bound to the stream. The format
// cannot be derived from a raw stream and must describe the actual
// byte layout. It is validated at Init.
func NewSource(stream Stream, format signal.Format) *Source {
	return &Source{
		stream:    stream,
		format:    format,
		EndSample: -1,
	}
}

// Init validates the declared configuration, computes the stream
// length in samples, applies the declared playback range and makes
// the source busy. It fails with ErrBusy if the source was already
// initialized and not flushed.
func (s *Source) Init() error {
	if s.stream == nil {
		return ErrStreamNotBound
	}
	if s.busy {
		return ErrBusy
	}
	if err := s.format.Validate(); err != nil {
		return err
	}

	size, err := s.stream.Size()
	if err != nil {
		return err
	}
	frameSize := int64(s.format.FrameSize())
	s.byteSize = size
	s.totalSamples = size / frameSize
	s.pos = 0

	if s.StartSample > 0 {
		if _, err := s.Seek(s.StartSample); err != nil {
			return err
		}
	}
	if s.StartSample > 0 || s.EndSample != -1 {
		// EndSample is inclusive: clip it to the last sample index.
		end := s.EndSample
		if end < 0 || end >= s.totalSamples {
			end = s.totalSamples - 1
		}
		if s.StartSample > end {
			return ErrInvalidRange
		}
		s.totalSamples = end - s.StartSample + 1
		s.byteSize = s.totalSamples * frameSize
	}

	s.busy = true
	return nil
}

// Pull reads up to maxBytes from the stream and returns a view over
// the internal buffer. The view is only valid until the next Pull. A
// short or empty result is not an error, it signals exhaustion of the
// playback range. The buffer grows to the largest requested size and
// is never shrunk.
func (s *Source) Pull(maxBytes int) ([]byte, error) {
	if !s.busy {
		return nil, ErrNotRunning
	}
	if left := s.byteSize - s.pos; int64(maxBytes) > left {
		maxBytes = int(left)
	}
	if maxBytes <= 0 {
		return s.buffer[:0], nil
	}
	if maxBytes > len(s.buffer) {
		s.buffer = make([]byte, maxBytes)
	}
	n, err := s.stream.Read(s.buffer[:maxBytes])
	if err != nil && err != io.EOF {
		return nil, err
	}
	s.pos += int64(n)
	return s.buffer[:n], nil
}

// Flush makes the source idle again. The stream position is left
// untouched, so flush has no seek side effect and is idempotent.
func (s *Source) Flush() error {
	s.busy = false
	return nil
}

// Seek maps the sample index to a byte offset and performs an
// absolute seek on the stream from its beginning. It always reports
// the operation as supported: whether a seek is meaningful for the
// bound stream is declared with the advisory Seekable flag.
func (s *Source) Seek(sample int64) (bool, error) {
	if s.stream == nil {
		return true, ErrStreamNotBound
	}
	_, err := s.stream.Seek(sample*int64(s.format.FrameSize()), io.SeekStart)
	return true, err
}

// Rewind seeks back to the start of the declared playback range.
func (s *Source) Rewind() error {
	_, err := s.Seek(s.StartSample)
	if err != nil {
		return err
	}
	s.pos = 0
	return nil
}

// Loop reports whether the range should be replayed on exhaustion.
func (s *Source) Loop() bool {
	return s.Looping
}

// Format returns the declared sample format.
func (s *Source) Format() signal.Format {
	return s.format
}

// SampleRate returns the declared sample rate.
func (s *Source) SampleRate() int {
	return s.format.SampleRate
}

// NumChannels returns the declared number of channels.
func (s *Source) NumChannels() int {
	return s.format.NumChannels
}

// BitDepth returns the declared bit depth.
func (s *Source) BitDepth() signal.BitDepth {
	return s.format.BitDepth
}

// Size returns the byte size of the playback range. Valid after Init.
func (s *Source) Size() int64 {
	return s.byteSize
}

// Samples returns the length of the playback range in samples. Valid
// after Init.
func (s *Source) Samples() int64 {
	return s.totalSamples
}

// Position returns the number of bytes pulled since Init.
func (s *Source) Position() int64 {
	return s.pos
}
