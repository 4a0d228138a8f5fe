package signal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pipelined/raw/signal"
)

func TestFormatValidate(t *testing.T) {
	var tests = []struct {
		format   signal.Format
		expected error
	}{
		{
			format: signal.Format{SampleRate: 44100, NumChannels: 2, BitDepth: signal.BitDepth16},
		},
		{
			format: signal.Format{SampleRate: 8000, NumChannels: 1, BitDepth: signal.BitDepth8},
		},
		{
			format:   signal.Format{SampleRate: 0, NumChannels: 2, BitDepth: signal.BitDepth16},
			expected: signal.ErrInvalidSampleRate,
		},
		{
			format:   signal.Format{SampleRate: 44100, NumChannels: 0, BitDepth: signal.BitDepth16},
			expected: signal.ErrInvalidNumChannels,
		},
		{
			format:   signal.Format{SampleRate: 44100, NumChannels: 2, BitDepth: signal.BitDepth(12)},
			expected: signal.ErrUnsupportedBitDepth,
		},
		{
			format:   signal.Format{SampleRate: 44100, NumChannels: 2},
			expected: signal.ErrUnsupportedBitDepth,
		},
	}

	for _, test := range tests {
		err := test.format.Validate()
		assert.Equal(t, test.expected, err)
	}
}

func TestFrameSize(t *testing.T) {
	var tests = []struct {
		channels int
		bitDepth signal.BitDepth
		expected int
	}{
		{1, signal.BitDepth8, 1},
		{2, signal.BitDepth16, 4},
		{2, signal.BitDepth24, 6},
		{6, signal.BitDepth32, 24},
	}

	for _, test := range tests {
		f := signal.Format{SampleRate: 44100, NumChannels: test.channels, BitDepth: test.bitDepth}
		assert.Equal(t, test.expected, f.FrameSize())
	}
}

func TestDurationOf(t *testing.T) {
	f := signal.Format{SampleRate: 44100, NumChannels: 2, BitDepth: signal.BitDepth16}
	assert.Equal(t, time.Second, f.DurationOf(44100))
}

func TestAudio(t *testing.T) {
	f := signal.Format{SampleRate: 44100, NumChannels: 2, BitDepth: signal.BitDepth16}
	af := f.Audio()
	assert.Equal(t, 44100, af.SampleRate)
	assert.Equal(t, 2, af.NumChannels)
}

func TestInts16(t *testing.T) {
	f := signal.Format{SampleRate: 44100, NumChannels: 2, BitDepth: signal.BitDepth16}
	ints := []int{0, 1, -1, 32767, -32768, 256}
	assert.Equal(t, ints, f.Ints(f.Bytes(ints)))
	// little-endian layout
	assert.Equal(t, []byte{0x01, 0x00, 0xFF, 0xFF}, f.Bytes([]int{1, -1}))
}

func TestInts24(t *testing.T) {
	f := signal.Format{SampleRate: 44100, NumChannels: 1, BitDepth: signal.BitDepth24}
	ints := []int{0, 1, -1, 8388607, -8388608}
	assert.Equal(t, ints, f.Ints(f.Bytes(ints)))
}

func TestInts32(t *testing.T) {
	f := signal.Format{SampleRate: 44100, NumChannels: 1, BitDepth: signal.BitDepth32}
	ints := []int{0, 1, -1, 2147483647, -2147483648}
	assert.Equal(t, ints, f.Ints(f.Bytes(ints)))
}

func TestInts8(t *testing.T) {
	f := signal.Format{SampleRate: 44100, NumChannels: 1, BitDepth: signal.BitDepth8}
	// 8-bit samples are unsigned
	ints := []int{0, 1, 128, 255}
	assert.Equal(t, ints, f.Ints(f.Bytes(ints)))
}

func TestIntsIncomplete(t *testing.T) {
	f := signal.Format{SampleRate: 44100, NumChannels: 1, BitDepth: signal.BitDepth16}
	// trailing incomplete sample is dropped
	assert.Equal(t, []int{1}, f.Ints([]byte{0x01, 0x00, 0x02}))
}
