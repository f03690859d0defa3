package types

// PresetZones returns the zones of the preset at index i.
//
// The zones run from the preset's PresetBagIndex up to the next header's.
func (f *File) PresetZones(i int) ([]Zone, error) {
	if i < 0 || i >= len(f.Presets)-1 {
		return nil, f.outOfRange("phdr", "preset", i, len(f.Presets)-1, "phdr")
	}
	start, end := f.Presets[i].PresetBagIndex, f.Presets[i+1].PresetBagIndex
	return span(f, f.PresetBags, start, end, "phdr", "wPresetBagNdx", "pbag")
}

// InstrumentZones returns the zones of the instrument at index i.
func (f *File) InstrumentZones(i int) ([]Zone, error) {
	if i < 0 || i >= len(f.Instruments)-1 {
		return nil, f.outOfRange("inst", "instrument", i, len(f.Instruments)-1, "inst")
	}
	start, end := f.Instruments[i].InstrumentBagIndex, f.Instruments[i+1].InstrumentBagIndex
	return span(f, f.InstrumentBags, start, end, "inst", "wInstBagNdx", "ibag")
}

// PresetZoneGenerators returns the generators of the preset zone at index z.
func (f *File) PresetZoneGenerators(z int) ([]Generator, error) {
	if z < 0 || z >= len(f.PresetBags)-1 {
		return nil, f.outOfRange("pbag", "zone", z, len(f.PresetBags)-1, "pbag")
	}
	start, end := f.PresetBags[z].GeneratorIndex, f.PresetBags[z+1].GeneratorIndex
	return span(f, f.PresetGenerators, start, end, "pbag", "wGenNdx", "pgen")
}

// PresetZoneModulators returns the modulators of the preset zone at index z.
func (f *File) PresetZoneModulators(z int) ([]Modulator, error) {
	if z < 0 || z >= len(f.PresetBags)-1 {
		return nil, f.outOfRange("pbag", "zone", z, len(f.PresetBags)-1, "pbag")
	}
	start, end := f.PresetBags[z].ModulatorIndex, f.PresetBags[z+1].ModulatorIndex
	return span(f, f.PresetModulators, start, end, "pbag", "wModNdx", "pmod")
}

// InstrumentZoneGenerators returns the generators of the instrument zone at index z.
func (f *File) InstrumentZoneGenerators(z int) ([]Generator, error) {
	if z < 0 || z >= len(f.InstrumentBags)-1 {
		return nil, f.outOfRange("ibag", "zone", z, len(f.InstrumentBags)-1, "ibag")
	}
	start, end := f.InstrumentBags[z].GeneratorIndex, f.InstrumentBags[z+1].GeneratorIndex
	return span(f, f.InstrumentGenerators, start, end, "ibag", "wInstGenNdx", "igen")
}

// InstrumentZoneModulators returns the modulators of the instrument zone at index z.
func (f *File) InstrumentZoneModulators(z int) ([]Modulator, error) {
	if z < 0 || z >= len(f.InstrumentBags)-1 {
		return nil, f.outOfRange("ibag", "zone", z, len(f.InstrumentBags)-1, "ibag")
	}
	start, end := f.InstrumentBags[z].ModulatorIndex, f.InstrumentBags[z+1].ModulatorIndex
	return span(f, f.InstrumentModulators, start, end, "ibag", "wInstModNdx", "imod")
}

// span returns items[start:end] or an IndexOutOfRangeError. The ordering
// check at decode time guarantees start <= end for a successfully decoded file.
func span[T any](f *File, items []T, start, end uint16, chunk, field, target string) ([]T, error) {
	if int(end) > len(items) || start > end {
		return nil, f.outOfRange(chunk, field, int(end), len(items), target)
	}
	return items[start:end], nil
}

func (f *File) outOfRange(chunk, field string, index, length int, target string) error {
	return &IndexOutOfRangeError{
		Path:   f.Path,
		Chunk:  chunk,
		Field:  field,
		Index:  index,
		Length: max(length, 0),
		Target: target,
	}
}
