// Package sf2test builds synthetic SoundFont 2 files for tests.
package sf2test

import (
	"bytes"
	"encoding/binary"
)

// Sub is a sub-chunk of a LIST: its tag and raw payload.
type Sub struct {
	ID   string
	Data []byte
}

// Bank describes the three lists of an SF2 file as ordered sub-chunks.
type Bank struct {
	Info []Sub
	Sdta []Sub
	Pdta []Sub
}

// Bytes encodes the bank as a complete RIFF sfbk file.
func (b Bank) Bytes() []byte {
	return Riff("sfbk",
		List("INFO", b.Info...),
		List("sdta", b.Sdta...),
		List("pdta", b.Pdta...),
	)
}

// Chunk encodes one RIFF chunk. The declared size is len(payload).
func Chunk(id string, payload []byte) []byte {
	return ChunkSized(id, uint32(len(payload)), payload)
}

// ChunkSized encodes a chunk with an explicit declared size, which need not
// match the payload.
func ChunkSized(id string, size uint32, payload []byte) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, size)
	buf.Write(payload)
	return buf.Bytes()
}

// List encodes a LIST chunk with the given form id.
func List(form string, subs ...Sub) []byte {
	payload := &bytes.Buffer{}
	payload.WriteString(form)
	for _, s := range subs {
		payload.Write(Chunk(s.ID, s.Data))
	}
	return Chunk("LIST", payload.Bytes())
}

// Riff encodes the outer RIFF chunk around already encoded lists.
func Riff(form string, lists ...[]byte) []byte {
	payload := &bytes.Buffer{}
	payload.WriteString(form)
	for _, l := range lists {
		payload.Write(l)
	}
	return Chunk("RIFF", payload.Bytes())
}

// Without returns subs minus every sub-chunk tagged id.
func Without(subs []Sub, id string) []Sub {
	out := make([]Sub, 0, len(subs))
	for _, s := range subs {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}

// Replace returns subs with the payload of the sub-chunk tagged id swapped for data.
func Replace(subs []Sub, id string, data []byte) []Sub {
	out := make([]Sub, len(subs))
	for i, s := range subs {
		if s.ID == id {
			s.Data = data
		}
		out[i] = s
	}
	return out
}

// ZStr encodes s as a NUL-padded field of width bytes. s is truncated to width.
func ZStr(s string, width int) []byte {
	b := make([]byte, width)
	copy(b, s)
	return b
}

// Text encodes s as an INFO text payload: NUL-terminated and padded to even length.
func Text(s string) []byte {
	n := len(s) + 1
	if n%2 != 0 {
		n++
	}
	return ZStr(s, n)
}

// Version encodes an ifil/iver payload.
func Version(major, minor uint16) []byte {
	return le(major, minor)
}

// PresetHeader encodes one phdr record.
func PresetHeader(name string, preset, bank, bagIndex uint16) []byte {
	return append(ZStr(name, 20), le(preset, bank, bagIndex, uint32(0), uint32(0), uint32(0))...)
}

// Zone encodes one pbag/ibag record.
func Zone(genIndex, modIndex uint16) []byte {
	return le(genIndex, modIndex)
}

// Modulator encodes one pmod/imod record.
func Modulator(src, dest uint16, amount int16, amountSrc, transform uint16) []byte {
	return le(src, dest, amount, amountSrc, transform)
}

// Generator encodes one pgen/igen record.
func Generator(oper, amount uint16) []byte {
	return le(oper, amount)
}

// Instrument encodes one inst record.
func Instrument(name string, bagIndex uint16) []byte {
	return append(ZStr(name, 20), le(bagIndex)...)
}

// SampleHeader encodes one shdr record with the loop spanning the whole sample.
func SampleHeader(name string, start, end, rate uint32, pitch uint8, sampleType uint16) []byte {
	return append(ZStr(name, 20), le(start, end, start, end, rate, pitch, int8(0), uint16(0), sampleType)...)
}

// Samples16 encodes 16-bit little-endian PCM.
func Samples16(vals ...int16) []byte {
	return le(vals)
}

// Concat joins encoded records into one payload.
func Concat(records ...[]byte) []byte {
	return bytes.Join(records, nil)
}

// Minimal returns a well-formed bank with one real record and one terminal
// record in phdr, pbag, inst, ibag and shdr, eight samples of 16-bit data and
// an INFO list with version 2.1, an engine and a bank name.
func Minimal() Bank {
	return Bank{
		Info: []Sub{
			{ID: "ifil", Data: Version(2, 1)},
			{ID: "isng", Data: Text("EMU8000")},
			{ID: "INAM", Data: Text("Test Bank")},
		},
		Sdta: []Sub{
			{ID: "smpl", Data: Samples16(0, 100, -100, 32767, -32768, 1, 2, 3)},
		},
		Pdta: []Sub{
			{ID: "phdr", Data: Concat(
				PresetHeader("Piano", 0, 0, 0),
				PresetHeader("EOP", 0, 0, 1),
			)},
			{ID: "pbag", Data: Concat(Zone(0, 0), Zone(1, 0))},
			{ID: "pmod", Data: Modulator(0, 0, 0, 0, 0)},
			{ID: "pgen", Data: Concat(Generator(41, 0), Generator(0, 0))},
			{ID: "inst", Data: Concat(Instrument("Piano Inst", 0), Instrument("EOI", 1))},
			{ID: "ibag", Data: Concat(Zone(0, 0), Zone(1, 0))},
			{ID: "imod", Data: Modulator(0, 0, 0, 0, 0)},
			{ID: "igen", Data: Concat(Generator(53, 0), Generator(0, 0))},
			{ID: "shdr", Data: Concat(
				SampleHeader("Piano C4", 0, 8, 22050, 60, 1),
				SampleHeader("EOS", 0, 0, 0, 0, 0),
			)},
		},
	}
}

// le encodes values little-endian in order.
func le(values ...any) []byte {
	buf := &bytes.Buffer{}
	for _, v := range values {
		binary.Write(buf, binary.LittleEndian, v)
	}
	return buf.Bytes()
}
