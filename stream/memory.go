// Package stream provides byte streams for raw pipeline components.
package stream

import (
	"errors"
	"io"
)

// ErrNegativePosition is returned by Seek on an attempt to move
// before the beginning of the stream.
var ErrNegativePosition = errors.New("seek before the beginning of the stream")

// Memory is an in-memory byte stream. It grows on writes past its
// end and can be used both as a sink and, once filled, as a source.
// The zero value is an empty stream ready to use.
type Memory struct {
	data []byte
	pos  int64
}

// NewMemory returns a memory stream over the passed bytes. The slice
// is not copied.
func NewMemory(data []byte) *Memory {
	return &Memory{data: data}
}

// Read reads bytes at the current position.
func (m *Memory) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.pos:])
	m.pos += int64(n)
	return n, nil
}

// Write writes bytes at the current position, extending the stream
// when they reach past its end. A gap left by a seek past the end is
// zero-filled.
func (m *Memory) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.data)) {
		grown := make([]byte, end)
		copy(grown, m.data)
		m.data = grown
	}
	copy(m.data[m.pos:], p)
	m.pos = end
	return len(p), nil
}

// Seek sets the position for the next read or write.
func (m *Memory) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = m.pos + offset
	case io.SeekEnd:
		pos = int64(len(m.data)) + offset
	}
	if pos < 0 {
		return 0, ErrNegativePosition
	}
	m.pos = pos
	return pos, nil
}

// Size returns the stream length in bytes.
func (m *Memory) Size() (int64, error) {
	return int64(len(m.data)), nil
}

// Position returns the current position.
func (m *Memory) Position() int64 {
	return m.pos
}

// Bytes returns the underlying bytes without copying.
func (m *Memory) Bytes() []byte {
	return m.data
}
