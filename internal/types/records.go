package types

// Record widths in bytes, as laid out in the pdta sub-chunks.
const (
	PresetHeaderSize     = 38
	ZoneSize             = 4
	ModulatorSize        = 10
	GeneratorSize        = 4
	InstrumentHeaderSize = 22
	SampleHeaderSize     = 46
	VersionTagSize       = 4

	// NameSize is the width of the achName fields in phdr, inst and shdr.
	NameSize = 20
)

// PercussionBank is the bank number of the General MIDI percussion bank.
const PercussionBank = 128

// PresetHeader is one record of the phdr chunk.
//
// If two headers share Preset and Bank, the first one is the active preset.
// The last record of the array is a terminal sentinel whose PresetBagIndex
// marks the end of the final preset's zones.
type PresetHeader struct {
	Name           string
	Preset         uint16
	Bank           uint16
	PresetBagIndex uint16
	Library        uint32 // reserved
	Genre          uint32 // reserved
	Morphology     uint32 // reserved
}

// IsPercussion reports whether the preset belongs to the percussion bank.
func (p PresetHeader) IsPercussion() bool {
	return p.Bank == PercussionBank
}

// Zone is one record of the pbag or ibag chunk. It points at the first
// generator and modulator of the zone; the next zone's indices bound the range.
type Zone struct {
	GeneratorIndex uint16
	ModulatorIndex uint16
}

// Modulator is one record of the pmod or imod chunk.
type Modulator struct {
	SourceOper       uint16
	DestOper         uint16
	Amount           int16
	AmountSourceOper uint16
	TransformOper    uint16
}

// Generator is one record of the pgen or igen chunk.
//
// Amount is stored raw. Depending on Oper it holds a signed value, a lo/hi
// range pair, or an index; see Int16 and Range.
type Generator struct {
	Oper   uint16
	Amount uint16
}

// Generator operators that structure the preset/instrument/sample hierarchy.
const (
	GenInstrument uint16 = 41
	GenKeyRange   uint16 = 43
	GenVelRange   uint16 = 44
	GenSampleID   uint16 = 53
)

// Int16 returns the amount as a signed value.
func (g Generator) Int16() int16 {
	return int16(g.Amount)
}

// Range returns the amount as a lo/hi byte pair, as used by key and velocity ranges.
func (g Generator) Range() (lo, hi uint8) {
	return uint8(g.Amount), uint8(g.Amount >> 8)
}

// InstrumentHeader is one record of the inst chunk.
type InstrumentHeader struct {
	Name               string
	InstrumentBagIndex uint16
}

// Sample type flags of SampleHeader.SampleType.
const (
	SampleMono   uint16 = 0x0001
	SampleRight  uint16 = 0x0002
	SampleLeft   uint16 = 0x0004
	SampleLinked uint16 = 0x0008
	SampleROM    uint16 = 0x8000
)

// SampleHeader is one record of the shdr chunk. Offsets are sample frame
// indices into the smpl data.
type SampleHeader struct {
	Name            string
	Start           uint32
	End             uint32
	StartLoop       uint32
	EndLoop         uint32
	SampleRate      uint32
	OriginalPitch   uint8
	PitchCorrection int8
	SampleLink      uint16
	SampleType      uint16
}

// Frames returns the number of sample frames between Start and End.
func (s SampleHeader) Frames() int {
	if s.End < s.Start {
		return 0
	}
	return int(s.End - s.Start)
}

// IsROM reports whether the sample lives in a wavetable ROM rather than the file.
func (s SampleHeader) IsROM() bool {
	return s.SampleType&SampleROM != 0
}
