// Package pipe defines contracts for stages of a pull-based audio
// pipeline and a synchronous runner to drive them.
//
// A pipeline is driven from its sink: the runner repeatedly asks the
// sink to make a step, the sink pulls bytes from its upstream source
// and writes them out. Execution is single-threaded, every call blocks
// until the underlying I/O returns.
package pipe

import (
	"github.com/pipelined/raw/signal"
)

// Source is a stage that produces raw PCM bytes. Pull returns a view
// over the internal buffer of the stage which is only valid until the
// next call to Pull. Implementations should use the following length
// conventions:
//		- len == maxBytes if a full buffer was read;
//		- 0 < len < maxBytes if stage is close to exhaustion;
//		- len == 0 if stage is exhausted.
// Short results are not errors, they signal the end of the stream.
type Source interface {
	Init() error
	Pull(maxBytes int) ([]byte, error)
	Flush() error
	Format
}

// Sink is a stage that consumes raw PCM bytes from its upstream
// source. Step executes a single pull-write iteration and reports
// whether there is more work to do. Abort requested via step argument
// causes the step to return immediately without writing.
type Sink interface {
	Prepare() error
	Step(abort bool) (bool, error)
	Done() error
}

// Format exposes sample properties of a source stage. Raw PCM streams
// carry no header, so these values are the only format information
// available downstream.
type Format interface {
	SampleRate() int
	NumChannels() int
	BitDepth() signal.BitDepth
}

// Looper is implemented by sources that can replay their range. The
// loop policy belongs to the driver: a source only declares the wish
// and knows how to rewind.
type Looper interface {
	Loop() bool
	Rewind() error
}

// Logger is a global interface for pipe loggers.
type Logger interface {
	Debug(...interface{})
	Info(...interface{})
}
