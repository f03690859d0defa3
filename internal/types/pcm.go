package types

import (
	"fmt"

	"github.com/go-audio/audio"
)

// PCM holds the sample data of the sdta list.
//
// Data contains one value per sample frame. With an sm24 chunk present the
// values are 24-bit ((smpl << 8) | sm24); otherwise they are the raw 16-bit
// smpl values. BitDepth tells which.
type PCM struct {
	Data     []int32
	BitDepth int
}

// SampleBuffer returns the sample data referenced by h as a mono buffer at
// the header's sample rate.
//
// The data is copied; the buffer may be modified freely. ROM samples are not
// stored in the file and cannot be exported.
func (f *File) SampleBuffer(h SampleHeader) (*audio.IntBuffer, error) {
	if h.IsROM() {
		return nil, fmt.Errorf("%s: sample '%s' refers to ROM data", f.Path, h.Name)
	}
	if h.End < h.Start || int64(h.End) > int64(len(f.PCM.Data)) {
		return nil, &IndexOutOfRangeError{
			Path:   f.Path,
			Chunk:  "shdr",
			Field:  "dwEnd",
			Index:  int(h.End),
			Length: len(f.PCM.Data),
			Target: "smpl",
		}
	}

	data := make([]int, h.Frames())
	for i, v := range f.PCM.Data[h.Start:h.End] {
		data[i] = int(v)
	}

	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  int(h.SampleRate),
		},
		Data:           data,
		SourceBitDepth: f.PCM.BitDepth,
	}, nil
}
