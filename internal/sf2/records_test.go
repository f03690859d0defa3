package sf2

import (
	"errors"
	"strings"
	"testing"

	"github.com/simonhull/soundfont/internal/sf2test"
	"github.com/simonhull/soundfont/internal/types"
)

func TestDecode_RecordSizeNotMultiple(t *testing.T) {
	tests := []struct {
		chunk string
		data  []byte
		want  string
	}{
		{
			chunk: "phdr",
			data:  append(sf2test.Concat(sf2test.PresetHeader("Piano", 0, 0, 0), sf2test.PresetHeader("EOP", 0, 0, 1)), 0),
			want:  "chunk 'phdr' size 77 is not a multiple of 38",
		},
		{
			chunk: "phdr",
			data:  append(sf2test.PresetHeader("EOP", 0, 0, 0), 0),
			want:  "chunk 'phdr' size 39 is not a multiple of 38",
		},
		{
			chunk: "pbag",
			data:  append(sf2test.Concat(sf2test.Zone(0, 0), sf2test.Zone(1, 0)), 0, 0),
			want:  "chunk 'pbag' size 10 is not a multiple of 4",
		},
		{
			chunk: "imod",
			data:  make([]byte, 12),
			want:  "chunk 'imod' size 12 is not a multiple of 10",
		},
		{
			chunk: "shdr",
			data:  make([]byte, 47),
			want:  "chunk 'shdr' size 47 is not a multiple of 46",
		},
	}

	for _, tt := range tests {
		t.Run(tt.chunk, func(t *testing.T) {
			bank := sf2test.Minimal()
			bank.Pdta = sf2test.Replace(bank.Pdta, tt.chunk, tt.data)

			_, err := decode(t, bank.Bytes(), Config{})
			var formatErr *types.FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("expected FormatError, got %T: %v", err, err)
			}
			if formatErr.Chunk != tt.chunk {
				t.Errorf("expected chunk %q, got %q", tt.chunk, formatErr.Chunk)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected %q in %q", tt.want, err.Error())
			}
		})
	}
}

func TestDecode_OrderingViolation(t *testing.T) {
	tests := []struct {
		name  string
		chunk string
		data  []byte
		field string
	}{
		{
			name:  "pbag generator index",
			chunk: "pbag",
			data:  sf2test.Concat(sf2test.Zone(1, 0), sf2test.Zone(0, 0)),
			field: "wGenNdx",
		},
		{
			name:  "ibag modulator index",
			chunk: "ibag",
			data:  sf2test.Concat(sf2test.Zone(0, 1), sf2test.Zone(1, 0)),
			field: "wInstModNdx",
		},
		{
			name:  "phdr bag index",
			chunk: "phdr",
			data:  sf2test.Concat(sf2test.PresetHeader("Piano", 0, 0, 1), sf2test.PresetHeader("EOP", 0, 0, 0)),
			field: "wPresetBagNdx",
		},
		{
			name:  "inst bag index",
			chunk: "inst",
			data:  sf2test.Concat(sf2test.Instrument("Piano Inst", 1), sf2test.Instrument("EOI", 0)),
			field: "wInstBagNdx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank := sf2test.Minimal()
			bank.Pdta = sf2test.Replace(bank.Pdta, tt.chunk, tt.data)

			_, err := decode(t, bank.Bytes(), Config{IgnoreIndexOutOfRange: true})
			var orderErr *types.OrderingViolationError
			if !errors.As(err, &orderErr) {
				t.Fatalf("expected OrderingViolationError, got %T: %v", err, err)
			}
			if orderErr.Chunk != tt.chunk || orderErr.Field != tt.field {
				t.Errorf("expected %s.%s, got %s.%s", tt.chunk, tt.field, orderErr.Chunk, orderErr.Field)
			}
			if orderErr.Record != 1 || orderErr.Previous != 1 || orderErr.Current != 0 {
				t.Errorf("unexpected violation details: %+v", orderErr)
			}
		})
	}
}

func TestDecode_EqualIndicesAreOrdered(t *testing.T) {
	// Zones with no generators repeat the previous index
	bank := sf2test.Minimal()
	bank.Pdta = sf2test.Replace(bank.Pdta, "pbag", sf2test.Concat(
		sf2test.Zone(0, 0), sf2test.Zone(0, 0), sf2test.Zone(1, 0),
	))
	bank.Pdta = sf2test.Replace(bank.Pdta, "phdr", sf2test.Concat(
		sf2test.PresetHeader("Piano", 0, 0, 0), sf2test.PresetHeader("EOP", 0, 0, 2),
	))

	file, err := decode(t, bank.Bytes(), Config{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(file.PresetBags) != 3 {
		t.Errorf("expected 3 preset bags, got %d", len(file.PresetBags))
	}
}

func TestDecode_RecordFields(t *testing.T) {
	bank := sf2test.Minimal()
	bank.Pdta = sf2test.Replace(bank.Pdta, "pmod", sf2test.Concat(
		sf2test.Modulator(0x0502, 48, -960, 0, 2),
		sf2test.Modulator(0, 0, 0, 0, 0),
	))
	bank.Pdta = sf2test.Replace(bank.Pdta, "pbag", sf2test.Concat(sf2test.Zone(0, 0), sf2test.Zone(1, 1)))
	bank.Pdta = sf2test.Replace(bank.Pdta, "phdr", sf2test.Concat(
		sf2test.PresetHeader("Drums", 0, 128, 0),
		sf2test.PresetHeader("EOP", 0, 0, 1),
	))

	file, err := decode(t, bank.Bytes(), Config{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	m := file.PresetModulators[0]
	if m.SourceOper != 0x0502 || m.DestOper != 48 || m.Amount != -960 || m.TransformOper != 2 {
		t.Errorf("unexpected modulator: %+v", m)
	}

	p := file.Presets[0]
	if p.Name != "Drums" || p.Bank != 128 || !p.IsPercussion() {
		t.Errorf("unexpected preset: %+v", p)
	}

	g := file.PresetGenerators[0]
	if g.Oper != types.GenInstrument || g.Amount != 0 {
		t.Errorf("unexpected generator: %+v", g)
	}
}

func TestDecode_FullWidthName(t *testing.T) {
	// A 20-byte name with no NUL is kept whole
	bank := sf2test.Minimal()
	bank.Pdta = sf2test.Replace(bank.Pdta, "inst", sf2test.Concat(
		sf2test.Instrument("ABCDEFGHIJKLMNOPQRST", 0),
		sf2test.Instrument("EOI", 1),
	))

	file, err := decode(t, bank.Bytes(), Config{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got := file.Instruments[0].Name; got != "ABCDEFGHIJKLMNOPQRST" {
		t.Errorf("expected full-width name, got %q", got)
	}
}
