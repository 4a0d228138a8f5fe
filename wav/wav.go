// Package wav dumps raw PCM sources into wav files, so that captured
// streams can be inspected with standard tooling.
package wav

import (
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/pipelined/raw"
)

// wav audio format for uncompressed PCM.
const formatPCM = 1

// Encode drains the source and writes its samples to w as a wav
// file. The source must be idle: it is initialized, pulled until
// exhaustion and flushed here. The writer is left open.
func Encode(source *raw.Source, w io.WriteSeeker) error {
	if err := source.Init(); err != nil {
		return err
	}
	defer source.Flush()

	format := source.Format()
	e := wav.NewEncoder(w, format.SampleRate, int(format.BitDepth), format.NumChannels, formatPCM)
	ib := &audio.IntBuffer{
		Format:         format.Audio(),
		SourceBitDepth: int(format.BitDepth),
	}
	for {
		b, err := source.Pull(raw.DefaultChunkSize)
		if err != nil {
			return err
		}
		if len(b) == 0 {
			break
		}
		ib.Data = format.Ints(b)
		if err := e.Write(ib); err != nil {
			return err
		}
	}
	return e.Close()
}
