package raw

import (
	"io"

	"github.com/pipelined/raw/pipe"
	"github.com/pipelined/raw/signal"
)

// Sink pulls raw PCM bytes from an upstream source and writes them
// verbatim to a writer. It is driven step by step: each step is a
// single pull-write iteration.
type Sink struct {
	// ChunkSize is the number of bytes pulled from upstream per step.
	// Set before Prepare, defaults to DefaultChunkSize.
	ChunkSize int

	writer   io.Writer
	upstream pipe.Source
	busy     bool
}

// NewSink returns a new sink that drains upstream into w.
func NewSink(w io.Writer, upstream pipe.Source) *Sink {
	return &Sink{
		ChunkSize: DefaultChunkSize,
		writer:    w,
		upstream:  upstream,
	}
}

// Prepare initializes the upstream source and makes the sink busy.
func (s *Sink) Prepare() error {
	if s.writer == nil {
		return ErrSinkNotBound
	}
	if s.upstream == nil {
		return ErrUpstreamNotBound
	}
	if s.busy {
		return ErrBusy
	}
	if err := s.upstream.Init(); err != nil {
		return err
	}
	s.busy = true
	return nil
}

// Step executes a single pull-write iteration and reports whether
// there is more to do. An idle sink has nothing to do. Abort returns
// immediately: nothing is pulled and nothing is written. A zero-length
// pull means the upstream cannot produce output and signals
// exhaustion to the driver.
func (s *Sink) Step(abort bool) (bool, error) {
	if !s.busy || abort {
		return false, nil
	}
	b, err := s.upstream.Pull(s.ChunkSize)
	if err != nil {
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if _, err := s.writer.Write(b); err != nil {
		return false, err
	}
	return true, nil
}

// Done flushes the upstream source and makes the sink idle. The
// writer is left open.
func (s *Sink) Done() error {
	s.busy = false
	if s.upstream == nil {
		return ErrUpstreamNotBound
	}
	return s.upstream.Flush()
}

// SampleRate returns the sample rate of the upstream source.
func (s *Sink) SampleRate() (int, error) {
	if s.upstream == nil {
		return 0, ErrUpstreamNotBound
	}
	return s.upstream.SampleRate(), nil
}

// NumChannels returns the number of channels of the upstream source.
func (s *Sink) NumChannels() (int, error) {
	if s.upstream == nil {
		return 0, ErrUpstreamNotBound
	}
	return s.upstream.NumChannels(), nil
}

// BitDepth returns the bit depth of the upstream source.
func (s *Sink) BitDepth() (signal.BitDepth, error) {
	if s.upstream == nil {
		return 0, ErrUpstreamNotBound
	}
	return s.upstream.BitDepth(), nil
}
