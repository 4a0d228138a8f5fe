// Package mock provides mocks for pipeline stages and allows to
// execute integration tests.
package mock

import (
	"github.com/pipelined/raw/signal"
)

// Source mocks a pipe.Source interface. It produces Limit bytes of a
// deterministic pattern: the value of byte i is i modulo 251, so any
// reordering or loss is visible in assertions.
type Source struct {
	Limit       int
	Rate        int
	NumChans    int
	Depth       signal.BitDepth
	Loops       int
	ErrorOnInit error
	ErrorOnPull error
	Hooks

	produced int
	buffer   []byte
}

// Hooks counts lifecycle calls of a mocked stage.
type Hooks struct {
	Initialized  int
	Flushed      int
	Pulls        int
	Rewinds      int
	ErrorOnFlush error
}

// Init implements pipe.Source.
func (m *Source) Init() error {
	m.Initialized++
	return m.ErrorOnInit
}

// Pull returns the next portion of the pattern.
func (m *Source) Pull(maxBytes int) ([]byte, error) {
	m.Pulls++
	if m.ErrorOnPull != nil {
		return nil, m.ErrorOnPull
	}
	if maxBytes > len(m.buffer) {
		m.buffer = make([]byte, maxBytes)
	}
	n := maxBytes
	if left := m.Limit - m.produced; left < n {
		n = left
	}
	for i := 0; i < n; i++ {
		m.buffer[i] = byte((m.produced + i) % 251)
	}
	m.produced += n
	return m.buffer[:n], nil
}

// Flush implements pipe.Source.
func (m *Source) Flush() error {
	m.Flushed++
	return m.ErrorOnFlush
}

// Loop reports true while configured loops remain.
func (m *Source) Loop() bool {
	return m.Loops > 0
}

// Rewind restarts the pattern and consumes one loop.
func (m *Source) Rewind() error {
	m.Rewinds++
	m.Loops--
	m.produced = 0
	return nil
}

// SampleRate implements pipe.Format.
func (m *Source) SampleRate() int {
	return m.Rate
}

// NumChannels implements pipe.Format.
func (m *Source) NumChannels() int {
	return m.NumChans
}

// BitDepth implements pipe.Format.
func (m *Source) BitDepth() signal.BitDepth {
	return m.Depth
}

// Pattern returns the expected first n bytes produced by a source.
func Pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}
