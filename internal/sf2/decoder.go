// Package sf2 decodes SoundFont 2 banks.
//
// A bank is a RIFF file with form id "sfbk" holding three LIST chunks in a
// fixed order: INFO (bank metadata), sdta (PCM sample data) and pdta (the
// preset, instrument and sample header arrays). The decoder makes one pass
// over the stream and returns a fully populated *types.File.
package sf2

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/simonhull/soundfont/internal/binary"
	"github.com/simonhull/soundfont/internal/types"
)

// Config controls how strictly the decoder treats questionable input.
type Config struct {
	// Logger receives diagnostics for non-fatal issues. Nil discards them.
	Logger *slog.Logger

	// IgnoreErrors relaxes the size checks on ifil/iver and lets a missing
	// ifil chunk through with a warning.
	IgnoreErrors bool

	// IgnoreIndexOutOfRange downgrades cross-reference bound violations in
	// pdta from errors to warnings.
	IgnoreIndexOutOfRange bool
}

// state is a step of the top-level decode.
type state int

const (
	expectRiff state = iota
	expectForm
	expectInfo
	expectSdta
	expectPdta
	done
)

type decoder struct {
	c        *binary.Cursor
	log      *slog.Logger
	file     *types.File
	cfg      Config
	riffSize uint32
}

// Decode reads a SoundFont bank from r.
//
// A stream that is not a RIFF sfbk container is not an error: Decode returns
// a File with types.FormatUnknown and a warning describing what was found.
// Once the container has identified itself, every structural problem is
// fatal except those Config explicitly relaxes.
func Decode(r io.Reader, path string, cfg Config) (*types.File, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	d := &decoder{
		c:   binary.NewCursor(r, path),
		log: log,
		cfg: cfg,
		file: &types.File{
			Path:   path,
			Format: types.FormatUnknown,
		},
	}

	for st := expectRiff; st != done; {
		next, err := d.step(st)
		if err != nil {
			return nil, err
		}
		st = next
	}

	d.file.Size = d.c.Offset()
	return d.file, nil
}

// step runs one state of the decode and returns the next one.
func (d *decoder) step(st state) (state, error) {
	switch st {
	case expectRiff:
		id, err := d.c.ReadExact(4, "RIFF chunk id")
		var truncErr *types.TruncatedInputError
		if errors.As(err, &truncErr) && errors.Is(err, io.ErrUnexpectedEOF) {
			d.notRecognized(fmt.Sprintf("found only %d bytes - probably not a SoundFont file", truncErr.Got))
			return done, nil
		}
		if err != nil {
			return done, err
		}
		if string(id) != types.RiffID {
			d.notRecognized(fmt.Sprintf("found chunk '%s' - probably not a SoundFont file", printable(id)))
			return done, nil
		}
		size, err := binary.ReadValue[uint32](d.c, "RIFF chunk size")
		if err != nil {
			return done, err
		}
		d.riffSize = size
		return expectForm, nil

	case expectForm:
		form, err := d.c.ReadExact(4, "RIFF form id")
		if err != nil {
			return done, err
		}
		if string(form) != types.FormID {
			d.notRecognized(fmt.Sprintf("found form header '%s' - probably not a SoundFont file", printable(form)))
			return done, nil
		}
		d.file.Format = types.FormatSF2
		return expectInfo, nil

	case expectInfo:
		info, err := d.readInfo()
		if err != nil {
			return done, fmt.Errorf("decode INFO: %w", err)
		}
		d.file.Info = info
		return expectSdta, nil

	case expectSdta:
		pcm, err := d.readSampleData()
		if err != nil {
			return done, fmt.Errorf("decode sdta: %w", err)
		}
		d.file.PCM = pcm
		return expectPdta, nil

	case expectPdta:
		if err := d.readPresetData(); err != nil {
			return done, fmt.Errorf("decode pdta: %w", err)
		}
		d.checkRiffSize()
		return done, nil
	}

	return done, nil
}

// notRecognized records that the stream is some other kind of file.
func (d *decoder) notRecognized(msg string) {
	d.file.Warnings = append(d.file.Warnings, types.Warning{Stage: "riff", Message: msg})
	d.log.Info(msg, "path", d.c.Path())
}

// checkRiffSize compares the declared RIFF size with what the lists used.
func (d *decoder) checkRiffSize() {
	// The RIFF size covers the form id and the lists, not the 8-byte header.
	content := d.c.Offset() - binary.ChunkHeaderSize
	if int64(d.riffSize) != content {
		d.warn("riff", 0, fmt.Sprintf("RIFF size %d does not match %d bytes of content", d.riffSize, content))
	}
}

// warn records a non-fatal issue and logs it.
func (d *decoder) warn(stage string, offset int64, msg string) {
	d.file.Warnings = append(d.file.Warnings, types.Warning{
		Stage:   stage,
		Message: msg,
		Offset:  offset,
	})
	d.log.Warn(msg, "path", d.c.Path(), "stage", stage, "offset", offset)
}

func (d *decoder) formatError(chunk string, offset int64, format string, args ...any) error {
	return &types.FormatError{
		Path:   d.c.Path(),
		Chunk:  chunk,
		Offset: offset,
		Reason: fmt.Sprintf(format, args...),
	}
}

// openList reads a LIST header with the given form id and returns the number
// of payload bytes that follow the form id.
func (d *decoder) openList(form string) (int64, error) {
	hdr, err := d.c.ChunkHeader("LIST chunk")
	if err != nil {
		return 0, err
	}
	if hdr.ID != types.ListID {
		return 0, d.formatError(hdr.ID, hdr.Offset, "expected chunk 'LIST' but found chunk '%s' of size %d", hdr.ID, hdr.Size)
	}
	if hdr.Size < 4 {
		return 0, d.formatError(types.ListID, hdr.Offset, "LIST size %d is too small for a form id", hdr.Size)
	}

	formOffset := d.c.Offset()
	id, err := d.c.FourCC("LIST form id")
	if err != nil {
		return 0, err
	}
	if id != form {
		return 0, d.formatError(types.ListID, formOffset, "expected form '%s' but found '%s'", form, id)
	}

	d.log.Debug("decoding list", "path", d.c.Path(), "form", form, "offset", hdr.Offset, "size", hdr.Size)
	return int64(hdr.Size) - 4, nil
}

// eachSubChunk reads the sub-chunk headers of a list and hands each to fn,
// which must consume exactly the sub-chunk's payload.
func (d *decoder) eachSubChunk(list string, remaining int64, fn func(hdr binary.ChunkHeader) error) error {
	for remaining > 0 {
		if remaining < binary.ChunkHeaderSize {
			return d.formatError(list, d.c.Offset(), "%d trailing bytes are too short for a chunk header", remaining)
		}

		hdr, err := d.c.ChunkHeader(list + " sub-chunk")
		if err != nil {
			return err
		}
		remaining -= binary.ChunkHeaderSize + int64(hdr.Size)
		if remaining < 0 {
			return d.formatError(hdr.ID, hdr.Offset, "chunk of size %d exceeds the length of list '%s'", hdr.Size, list)
		}

		start := d.c.Offset()
		if err := fn(hdr); err != nil {
			return err
		}
		if consumed := d.c.Offset() - start; consumed != int64(hdr.Size) {
			return d.formatError(hdr.ID, hdr.Offset, "decoded %d bytes of a %d byte chunk", consumed, hdr.Size)
		}
	}
	return nil
}

// printable renders a tag for messages without letting control bytes through.
func printable(b []byte) string {
	out := make([]byte, len(b))
	for i, ch := range b {
		if ch < 0x20 || ch > 0x7E {
			ch = '?'
		}
		out[i] = ch
	}
	return string(out)
}
