// Package signal describes raw PCM signal formats and converts
// interleaved PCM bytes to and from integer samples.
package signal

import (
	"errors"
	"time"

	"github.com/go-audio/audio"
)

const (
	// BitDepth8 is 8 bit depth.
	BitDepth8 = BitDepth(8)
	// BitDepth16 is 16 bit depth.
	BitDepth16 = BitDepth(16)
	// BitDepth24 is 24 bit depth.
	BitDepth24 = BitDepth(24)
	// BitDepth32 is 32 bit depth.
	BitDepth32 = BitDepth(32)
)

// BitDepth is the size of a single sample value for one channel.
type BitDepth int

// Format describes the layout of a raw PCM byte stream. Raw streams
// carry no header, so the format always comes from the caller and is
// authoritative for everything downstream.
type Format struct {
	SampleRate  int
	NumChannels int
	BitDepth    BitDepth
}

// Validation errors returned by Format.Validate.
var (
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
	ErrInvalidNumChannels  = errors.New("number of channels must be positive")
	ErrUnsupportedBitDepth = errors.New("only 8, 16, 24 and 32 bit depth is supported")
)

// Validate checks that the format describes a decodable byte layout.
func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if f.NumChannels < 1 {
		return ErrInvalidNumChannels
	}
	switch f.BitDepth {
	case BitDepth8, BitDepth16, BitDepth24, BitDepth32:
	default:
		return ErrUnsupportedBitDepth
	}
	return nil
}

// FrameSize returns the byte size of a single frame: one sample per
// channel at a given time instant.
func (f Format) FrameSize() int {
	return f.NumChannels * int(f.BitDepth) / 8
}

// DurationOf returns time duration of passed samples for this format.
func (f Format) DurationOf(samples int64) time.Duration {
	return time.Duration(float64(samples) / float64(f.SampleRate) * float64(time.Second))
}

// Audio returns the format as go-audio format.
func (f Format) Audio() *audio.Format {
	return &audio.Format{
		NumChannels: f.NumChannels,
		SampleRate:  f.SampleRate,
	}
}

// Ints decodes little-endian interleaved PCM bytes into interleaved
// integer samples. 8-bit samples are unsigned, all others are signed.
// A trailing incomplete sample is dropped.
func (f Format) Ints(b []byte) []int {
	sampleSize := int(f.BitDepth) / 8
	ints := make([]int, len(b)/sampleSize)
	for i := range ints {
		ints[i] = decodeSample(b[i*sampleSize:], f.BitDepth)
	}
	return ints
}

// Bytes encodes interleaved integer samples into little-endian
// interleaved PCM bytes.
func (f Format) Bytes(ints []int) []byte {
	sampleSize := int(f.BitDepth) / 8
	b := make([]byte, len(ints)*sampleSize)
	for i, v := range ints {
		encodeSample(b[i*sampleSize:], v, f.BitDepth)
	}
	return b
}

func decodeSample(b []byte, bitDepth BitDepth) int {
	switch bitDepth {
	case BitDepth8:
		return int(b[0])
	case BitDepth16:
		return int(int16(uint16(b[0]) | uint16(b[1])<<8))
	case BitDepth24:
		v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
		// sign extension for 3-byte values
		if v&0x800000 != 0 {
			v |= 0xFF000000
		}
		return int(int32(v))
	default:
		return int(int32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24))
	}
}

func encodeSample(b []byte, v int, bitDepth BitDepth) {
	switch bitDepth {
	case BitDepth8:
		b[0] = byte(v)
	case BitDepth16:
		b[0] = byte(v)
		b[1] = byte(v >> 8)
	case BitDepth24:
		b[0] = byte(v)
		b[1] = byte(v >> 8)
		b[2] = byte(v >> 16)
	default:
		b[0] = byte(v)
		b[1] = byte(v >> 8)
		b[2] = byte(v >> 16)
		b[3] = byte(v >> 24)
	}
}
