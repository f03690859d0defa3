package sf2

import (
	"errors"

	"github.com/simonhull/soundfont/internal/binary"
	"github.com/simonhull/soundfont/internal/types"
)

// maxPrealloc caps how many records are allocated up front from a declared
// chunk size; a lying header then fails on truncation instead of on memory.
const maxPrealloc = 1 << 16

// recordCount checks that a chunk holds a whole number of records of width
// bytes and returns that number.
func (d *decoder) recordCount(hdr binary.ChunkHeader, width int) (int, error) {
	if hdr.Size%uint32(width) != 0 {
		return 0, d.formatError(hdr.ID, hdr.Offset, "chunk '%s' size %d is not a multiple of %d", hdr.ID, hdr.Size, width)
	}
	return int(hdr.Size / uint32(width)), nil
}

// inChunk tags a truncation inside a record array with the chunk it hit.
func inChunk(id string, err error) error {
	var truncErr *types.TruncatedInputError
	if errors.As(err, &truncErr) && truncErr.Chunk == "" {
		truncErr.Chunk = id
	}
	return err
}

// ordering tracks an index field that must not decrease across records.
type ordering struct {
	chunk string
	field string
	prev  uint16
	seen  bool
}

func (o *ordering) check(d *decoder, record int, offset int64, v uint16) error {
	if o.seen && v < o.prev {
		return &types.OrderingViolationError{
			Path:     d.c.Path(),
			Chunk:    o.chunk,
			Field:    o.field,
			Record:   record,
			Offset:   offset,
			Previous: o.prev,
			Current:  v,
		}
	}
	o.prev, o.seen = v, true
	return nil
}

// readPresetHeaders decodes a phdr chunk.
func (d *decoder) readPresetHeaders(hdr binary.ChunkHeader) ([]types.PresetHeader, error) {
	n, err := d.recordCount(hdr, types.PresetHeaderSize)
	if err != nil {
		return nil, err
	}

	presets := make([]types.PresetHeader, 0, min(n, maxPrealloc))
	bags := ordering{chunk: hdr.ID, field: "wPresetBagNdx"}
	ch := binary.NewChain(d.c)

	for i := 0; i < n; i++ {
		offset := d.c.Offset()
		name, _ := ch.ZString(types.NameSize, "achPresetName")
		p := types.PresetHeader{
			Name:           name,
			Preset:         binary.ReadChained[uint16](ch, "wPreset"),
			Bank:           binary.ReadChained[uint16](ch, "wBank"),
			PresetBagIndex: binary.ReadChained[uint16](ch, "wPresetBagNdx"),
			Library:        binary.ReadChained[uint32](ch, "dwLibrary"),
			Genre:          binary.ReadChained[uint32](ch, "dwGenre"),
			Morphology:     binary.ReadChained[uint32](ch, "dwMorphology"),
		}
		if err := ch.Error(); err != nil {
			return nil, inChunk(hdr.ID, err)
		}
		if err := bags.check(d, i, offset, p.PresetBagIndex); err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}

	return presets, nil
}

// readZones decodes a pbag or ibag chunk. Both index fields are checked for
// order independently.
func (d *decoder) readZones(hdr binary.ChunkHeader, genField, modField string) ([]types.Zone, error) {
	n, err := d.recordCount(hdr, types.ZoneSize)
	if err != nil {
		return nil, err
	}

	zones := make([]types.Zone, 0, min(n, maxPrealloc))
	gens := ordering{chunk: hdr.ID, field: genField}
	mods := ordering{chunk: hdr.ID, field: modField}
	ch := binary.NewChain(d.c)

	for i := 0; i < n; i++ {
		offset := d.c.Offset()
		z := types.Zone{
			GeneratorIndex: binary.ReadChained[uint16](ch, genField),
			ModulatorIndex: binary.ReadChained[uint16](ch, modField),
		}
		if err := ch.Error(); err != nil {
			return nil, inChunk(hdr.ID, err)
		}
		if err := gens.check(d, i, offset, z.GeneratorIndex); err != nil {
			return nil, err
		}
		if err := mods.check(d, i, offset, z.ModulatorIndex); err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}

	return zones, nil
}

// readModulators decodes a pmod or imod chunk.
func (d *decoder) readModulators(hdr binary.ChunkHeader) ([]types.Modulator, error) {
	n, err := d.recordCount(hdr, types.ModulatorSize)
	if err != nil {
		return nil, err
	}

	mods := make([]types.Modulator, 0, min(n, maxPrealloc))
	ch := binary.NewChain(d.c)

	for i := 0; i < n; i++ {
		m := types.Modulator{
			SourceOper:       binary.ReadChained[uint16](ch, "sfModSrcOper"),
			DestOper:         binary.ReadChained[uint16](ch, "sfModDestOper"),
			Amount:           binary.ReadChained[int16](ch, "modAmount"),
			AmountSourceOper: binary.ReadChained[uint16](ch, "sfModAmtSrcOper"),
			TransformOper:    binary.ReadChained[uint16](ch, "sfModTransOper"),
		}
		if err := ch.Error(); err != nil {
			return nil, inChunk(hdr.ID, err)
		}
		mods = append(mods, m)
	}

	return mods, nil
}

// readGenerators decodes a pgen or igen chunk.
func (d *decoder) readGenerators(hdr binary.ChunkHeader) ([]types.Generator, error) {
	n, err := d.recordCount(hdr, types.GeneratorSize)
	if err != nil {
		return nil, err
	}

	gens := make([]types.Generator, 0, min(n, maxPrealloc))
	ch := binary.NewChain(d.c)

	for i := 0; i < n; i++ {
		g := types.Generator{
			Oper:   binary.ReadChained[uint16](ch, "sfGenOper"),
			Amount: binary.ReadChained[uint16](ch, "genAmount"),
		}
		if err := ch.Error(); err != nil {
			return nil, inChunk(hdr.ID, err)
		}
		gens = append(gens, g)
	}

	return gens, nil
}

// readInstruments decodes an inst chunk.
func (d *decoder) readInstruments(hdr binary.ChunkHeader) ([]types.InstrumentHeader, error) {
	n, err := d.recordCount(hdr, types.InstrumentHeaderSize)
	if err != nil {
		return nil, err
	}

	insts := make([]types.InstrumentHeader, 0, min(n, maxPrealloc))
	bags := ordering{chunk: hdr.ID, field: "wInstBagNdx"}
	ch := binary.NewChain(d.c)

	for i := 0; i < n; i++ {
		offset := d.c.Offset()
		name, _ := ch.ZString(types.NameSize, "achInstName")
		inst := types.InstrumentHeader{
			Name:               name,
			InstrumentBagIndex: binary.ReadChained[uint16](ch, "wInstBagNdx"),
		}
		if err := ch.Error(); err != nil {
			return nil, inChunk(hdr.ID, err)
		}
		if err := bags.check(d, i, offset, inst.InstrumentBagIndex); err != nil {
			return nil, err
		}
		insts = append(insts, inst)
	}

	return insts, nil
}

// readSampleHeaders decodes an shdr chunk.
func (d *decoder) readSampleHeaders(hdr binary.ChunkHeader) ([]types.SampleHeader, error) {
	n, err := d.recordCount(hdr, types.SampleHeaderSize)
	if err != nil {
		return nil, err
	}

	samples := make([]types.SampleHeader, 0, min(n, maxPrealloc))
	ch := binary.NewChain(d.c)

	for i := 0; i < n; i++ {
		name, _ := ch.ZString(types.NameSize, "achSampleName")
		s := types.SampleHeader{
			Name:            name,
			Start:           binary.ReadChained[uint32](ch, "dwStart"),
			End:             binary.ReadChained[uint32](ch, "dwEnd"),
			StartLoop:       binary.ReadChained[uint32](ch, "dwStartloop"),
			EndLoop:         binary.ReadChained[uint32](ch, "dwEndloop"),
			SampleRate:      binary.ReadChained[uint32](ch, "dwSampleRate"),
			OriginalPitch:   binary.ReadChained[uint8](ch, "byOriginalPitch"),
			PitchCorrection: binary.ReadChained[int8](ch, "chPitchCorrection"),
			SampleLink:      binary.ReadChained[uint16](ch, "wSampleLink"),
			SampleType:      binary.ReadChained[uint16](ch, "sfSampleType"),
		}
		if err := ch.Error(); err != nil {
			return nil, inChunk(hdr.ID, err)
		}
		samples = append(samples, s)
	}

	return samples, nil
}
