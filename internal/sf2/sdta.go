package sf2

import (
	"fmt"
	"slices"

	"github.com/simonhull/soundfont/internal/binary"
	"github.com/simonhull/soundfont/internal/types"
)

// sampleWindow is how many bytes of sample data are pulled through the
// cursor at a time.
const sampleWindow = 1 << 16

// maxSamplePrealloc caps the up-front allocation for sample data.
const maxSamplePrealloc = 1 << 24

// readSampleData decodes the sdta list into a single PCM buffer.
func (d *decoder) readSampleData() (types.PCM, error) {
	remaining, err := d.openList("sdta")
	if err != nil {
		return types.PCM{}, err
	}

	var (
		pcm      types.PCM
		haveSmpl bool
		ext      []byte
		extHdr   binary.ChunkHeader
	)

	err = d.eachSubChunk("sdta", remaining, func(hdr binary.ChunkHeader) error {
		switch hdr.ID {
		case "smpl":
			if haveSmpl {
				return d.formatError(hdr.ID, hdr.Offset, "chunk 'smpl' may only occur once")
			}
			data, err := d.readSamples(hdr)
			if err != nil {
				return err
			}
			pcm = types.PCM{Data: data, BitDepth: 16}
			haveSmpl = true

		case "sm24":
			if ext != nil {
				return d.formatError(hdr.ID, hdr.Offset, "chunk 'sm24' may only occur once")
			}
			b, err := d.readBytes(hdr)
			if err != nil {
				return err
			}
			ext, extHdr = b, hdr

		default:
			return d.formatError(hdr.ID, hdr.Offset, "unexpected chunk '%s' of size %d in list 'sdta'", hdr.ID, hdr.Size)
		}
		return nil
	})
	if err != nil {
		return types.PCM{}, err
	}

	if ext != nil {
		if !haveSmpl {
			d.warn("sdta", extHdr.Offset, "ignoring chunk 'sm24' without 'smpl' data")
			return pcm, nil
		}
		if err := merge24(pcm.Data, ext); err != nil {
			return types.PCM{}, d.formatError("sm24", extHdr.Offset, "%v", err)
		}
		pcm.BitDepth = 24
	}

	return pcm, nil
}

// readSamples decodes a smpl chunk of 16-bit little-endian samples into one
// contiguous buffer, a window at a time.
func (d *decoder) readSamples(hdr binary.ChunkHeader) ([]int32, error) {
	if hdr.Size%2 != 0 {
		return nil, d.formatError(hdr.ID, hdr.Offset, "chunk 'smpl' size %d is not a multiple of 2", hdr.Size)
	}

	n := int(hdr.Size / 2)
	data := make([]int32, 0, min(n, maxSamplePrealloc))

	for len(data) < n {
		k := min(n-len(data), sampleWindow/2)
		b, err := d.c.ReadExact(2*k, "smpl data")
		if err != nil {
			return nil, err
		}
		data = slices.Grow(data, k)
		start := len(data)
		data = data[:start+k]
		binary.DecodeInt16s(data[start:], b)
	}

	return data, nil
}

// readBytes copies a chunk payload out of the cursor a window at a time.
func (d *decoder) readBytes(hdr binary.ChunkHeader) ([]byte, error) {
	n := int(hdr.Size)
	out := make([]byte, 0, min(n, maxSamplePrealloc))

	for len(out) < n {
		b, err := d.c.ReadExact(min(n-len(out), sampleWindow), hdr.ID+" data")
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}

	return out, nil
}

// merge24 combines 16-bit sample values with their sm24 low bytes in place,
// giving 24-bit values (s16 << 8) | s8.
//
// sm24 holds one byte per sample; a single pad byte after an odd number of
// samples is allowed.
func merge24(samples []int32, ext []byte) error {
	if len(ext) != len(samples) && (len(samples)%2 == 0 || len(ext) != len(samples)+1) {
		return fmt.Errorf("sm24 holds %d bytes for %d samples", len(ext), len(samples))
	}

	for i := range samples {
		samples[i] = samples[i]<<8 | int32(ext[i])
	}
	return nil
}
