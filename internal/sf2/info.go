package sf2

import (
	"fmt"

	"github.com/simonhull/soundfont/internal/binary"
	"github.com/simonhull/soundfont/internal/types"
)

// maxTextSize is the largest INFO text field the format allows (ICMT).
const maxTextSize = 65536

// readInfo decodes the INFO list.
func (d *decoder) readInfo() (types.Info, error) {
	remaining, err := d.openList("INFO")
	if err != nil {
		return types.Info{}, err
	}

	var info types.Info
	err = d.eachSubChunk("INFO", remaining, func(hdr binary.ChunkHeader) error {
		switch hdr.ID {
		case "ifil":
			if info.Version != nil {
				return d.duplicate(hdr)
			}
			v, ok, err := d.readVersionTag(hdr)
			if err != nil {
				return err
			}
			if ok {
				info.Version = &v
			}

		case "isng":
			if info.SoundEngine != nil {
				return d.duplicate(hdr)
			}
			t, err := d.readText(hdr)
			if err != nil {
				return err
			}
			if t.Fault {
				t.Value = types.DefaultSoundEngine
			}
			info.SoundEngine = &t

		case "INAM":
			if info.BankName != nil {
				return d.duplicate(hdr)
			}
			t, err := d.readText(hdr)
			if err != nil {
				return err
			}
			info.BankName = &t

		case "iver":
			v, ok, err := d.readVersionTag(hdr)
			if err != nil {
				return err
			}
			if ok {
				info.ROMVersions = append(info.ROMVersions, v)
			}

		case "irom":
			return d.appendText(hdr, &info.ROMNames)
		case "ICRD":
			return d.appendText(hdr, &info.CreationDates)
		case "IENG":
			return d.appendText(hdr, &info.Engineers)
		case "IPRD":
			return d.appendText(hdr, &info.Products)
		case "ICOP":
			return d.appendText(hdr, &info.Copyrights)
		case "ICMT":
			return d.appendText(hdr, &info.Comments)
		case "ISFT":
			return d.appendText(hdr, &info.Tools)

		default:
			return d.formatError(hdr.ID, hdr.Offset, "unexpected chunk '%s' of size %d in list 'INFO'", hdr.ID, hdr.Size)
		}
		return nil
	})
	if err != nil {
		return types.Info{}, err
	}

	if info.Version == nil {
		if !d.cfg.IgnoreErrors {
			return types.Info{}, &types.MissingChunkError{
				Path:   d.c.Path(),
				List:   "INFO",
				Chunks: []string{"ifil"},
			}
		}
		d.warn("INFO", 0, "missing chunk 'ifil'")
	}

	return info, nil
}

// readVersionTag decodes an ifil or iver chunk. ok is false when a lenient
// decode had to skip a chunk too short to hold a version.
func (d *decoder) readVersionTag(hdr binary.ChunkHeader) (v types.VersionTag, ok bool, err error) {
	if hdr.Size != types.VersionTagSize {
		if !d.cfg.IgnoreErrors {
			return v, false, d.formatError(hdr.ID, hdr.Offset, "chunk '%s' has illegal size %d", hdr.ID, hdr.Size)
		}
		d.warn("INFO", hdr.Offset, fmt.Sprintf("chunk '%s' has illegal size %d", hdr.ID, hdr.Size))
		if hdr.Size < types.VersionTagSize {
			return v, false, d.c.Skip(int64(hdr.Size), hdr.ID)
		}
	}

	ch := binary.NewChain(d.c)
	v.Major = binary.ReadChained[uint16](ch, "wMajor")
	v.Minor = binary.ReadChained[uint16](ch, "wMinor")
	if err := ch.Error(); err != nil {
		return v, false, err
	}

	if extra := int64(hdr.Size) - types.VersionTagSize; extra > 0 {
		if err := d.c.Skip(extra, hdr.ID); err != nil {
			return v, false, err
		}
	}
	return v, true, nil
}

// readText decodes a NUL-terminated INFO text chunk. A faulty field keeps
// its raw text but has no Value.
func (d *decoder) readText(hdr binary.ChunkHeader) (types.Text, error) {
	if hdr.Size > maxTextSize {
		return types.Text{}, d.formatError(hdr.ID, hdr.Offset, "text size %d exceeds %d bytes", hdr.Size, maxTextSize)
	}

	s, fault, err := d.c.ZString(int(hdr.Size), hdr.ID)
	if err != nil {
		return types.Text{}, err
	}

	t := types.Text{Raw: s, Fault: fault}
	if !fault {
		t.Value = s
	}
	return t, nil
}

func (d *decoder) appendText(hdr binary.ChunkHeader, dst *[]types.Text) error {
	t, err := d.readText(hdr)
	if err != nil {
		return err
	}
	*dst = append(*dst, t)
	return nil
}

// duplicate reports a second occurrence of a singular INFO field.
func (d *decoder) duplicate(hdr binary.ChunkHeader) error {
	return d.formatError(hdr.ID, hdr.Offset, "chunk '%s' may only occur once", hdr.ID)
}
