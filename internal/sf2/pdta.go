package sf2

import (
	"github.com/simonhull/soundfont/internal/binary"
	"github.com/simonhull/soundfont/internal/types"
)

// pdtaChunks lists the sub-chunks of pdta in the order the format lays them out.
var pdtaChunks = [...]string{"phdr", "pbag", "pmod", "pgen", "inst", "ibag", "imod", "igen", "shdr"}

// readPresetData decodes the pdta list into the file's nine record arrays
// and validates the references between them.
func (d *decoder) readPresetData() error {
	remaining, err := d.openList("pdta")
	if err != nil {
		return err
	}

	f := d.file
	seen := make(map[string]int64, len(pdtaChunks))

	err = d.eachSubChunk("pdta", remaining, func(hdr binary.ChunkHeader) error {
		if _, ok := seen[hdr.ID]; ok {
			return d.formatError(hdr.ID, hdr.Offset, "chunk '%s' may only occur once", hdr.ID)
		}

		var err error
		switch hdr.ID {
		case "phdr":
			f.Presets, err = d.readPresetHeaders(hdr)
		case "pbag":
			f.PresetBags, err = d.readZones(hdr, "wGenNdx", "wModNdx")
		case "pmod":
			f.PresetModulators, err = d.readModulators(hdr)
		case "pgen":
			f.PresetGenerators, err = d.readGenerators(hdr)
		case "inst":
			f.Instruments, err = d.readInstruments(hdr)
		case "ibag":
			f.InstrumentBags, err = d.readZones(hdr, "wInstGenNdx", "wInstModNdx")
		case "imod":
			f.InstrumentModulators, err = d.readModulators(hdr)
		case "igen":
			f.InstrumentGenerators, err = d.readGenerators(hdr)
		case "shdr":
			f.Samples, err = d.readSampleHeaders(hdr)
		default:
			return d.formatError(hdr.ID, hdr.Offset, "unknown chunk '%s' of size %d in list 'pdta'", hdr.ID, hdr.Size)
		}
		if err != nil {
			return err
		}

		seen[hdr.ID] = hdr.Offset
		return nil
	})
	if err != nil {
		return err
	}

	var missing []string
	for _, id := range pdtaChunks {
		if _, ok := seen[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return &types.MissingChunkError{
			Path:   d.c.Path(),
			List:   "pdta",
			Chunks: missing,
		}
	}

	return d.checkReferences(seen)
}

// reference is an index field of one pdta array pointing into another.
type reference struct {
	index  func(i int) uint16
	chunk  string
	field  string
	target string
	count  int
	length int
	width  int
	offset int64 // stream offset of the chunk header
}

// recordOffset returns the stream offset of record i of the chunk.
func (ref reference) recordOffset(i int) int64 {
	return ref.offset + binary.ChunkHeaderSize + int64(i*ref.width)
}

// checkReferences verifies every cross-array index against the length of
// the array it points into. offsets maps each pdta tag to the stream offset
// of its chunk header.
func (d *decoder) checkReferences(offsets map[string]int64) error {
	f := d.file
	refs := []reference{
		{
			chunk: "phdr", field: "wPresetBagNdx", target: "pbag",
			count: len(f.Presets), length: len(f.PresetBags),
			index: func(i int) uint16 { return f.Presets[i].PresetBagIndex },
		},
		{
			chunk: "pbag", field: "wGenNdx", target: "pgen",
			count: len(f.PresetBags), length: len(f.PresetGenerators),
			index: func(i int) uint16 { return f.PresetBags[i].GeneratorIndex },
		},
		{
			chunk: "pbag", field: "wModNdx", target: "pmod",
			count: len(f.PresetBags), length: len(f.PresetModulators),
			index: func(i int) uint16 { return f.PresetBags[i].ModulatorIndex },
		},
		{
			chunk: "inst", field: "wInstBagNdx", target: "ibag",
			count: len(f.Instruments), length: len(f.InstrumentBags),
			index: func(i int) uint16 { return f.Instruments[i].InstrumentBagIndex },
		},
		{
			chunk: "ibag", field: "wInstGenNdx", target: "igen",
			count: len(f.InstrumentBags), length: len(f.InstrumentGenerators),
			index: func(i int) uint16 { return f.InstrumentBags[i].GeneratorIndex },
		},
		{
			chunk: "ibag", field: "wInstModNdx", target: "imod",
			count: len(f.InstrumentBags), length: len(f.InstrumentModulators),
			index: func(i int) uint16 { return f.InstrumentBags[i].ModulatorIndex },
		},
	}

	widths := map[string]int{
		"phdr": types.PresetHeaderSize,
		"pbag": types.ZoneSize,
		"inst": types.InstrumentHeaderSize,
		"ibag": types.ZoneSize,
	}
	for _, ref := range refs {
		ref.width, ref.offset = widths[ref.chunk], offsets[ref.chunk]
		if err := d.checkReference(ref); err != nil {
			return err
		}
	}
	return nil
}

// checkReference applies the bound rule to one reference: the last real
// record must point inside the target array, and only the terminal record
// may point at its end.
func (d *decoder) checkReference(ref reference) error {
	if ref.count == 0 {
		return d.formatError(ref.chunk, ref.offset, "chunk '%s' has no terminal record", ref.chunk)
	}

	if ref.count >= 2 {
		if idx := int(ref.index(ref.count - 2)); idx >= ref.length {
			if err := d.indexOutOfRange(ref, ref.count-2, idx); err != nil {
				return err
			}
		}
	}
	if idx := int(ref.index(ref.count - 1)); idx > ref.length {
		return d.indexOutOfRange(ref, ref.count-1, idx)
	}
	return nil
}

// indexOutOfRange reports a bound violation according to the configured policy.
func (d *decoder) indexOutOfRange(ref reference, record, idx int) error {
	offset := ref.recordOffset(record)
	err := &types.IndexOutOfRangeError{
		Path:   d.c.Path(),
		Chunk:  ref.chunk,
		Field:  ref.field,
		Target: ref.target,
		Index:  idx,
		Length: ref.length,
		Offset: offset,
	}
	if !d.cfg.IgnoreIndexOutOfRange {
		return err
	}

	d.warn("pdta", offset, err.Error())
	return nil
}
