package sf2

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/simonhull/soundfont/internal/sf2test"
	"github.com/simonhull/soundfont/internal/types"
)

func decode(t *testing.T, data []byte, cfg Config) (*types.File, error) {
	t.Helper()
	return Decode(bytes.NewReader(data), "test.sf2", cfg)
}

func TestDecode_Minimal(t *testing.T) {
	data := sf2test.Minimal().Bytes()

	file, err := decode(t, data, Config{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !file.Recognized() {
		t.Fatal("expected file to be recognized")
	}
	if file.Format != types.FormatSF2 {
		t.Errorf("expected FormatSF2, got %v", file.Format)
	}
	if file.Size != int64(len(data)) {
		t.Errorf("expected %d bytes consumed, got %d", len(data), file.Size)
	}
	if len(file.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", file.Warnings)
	}

	lengths := map[string]int{
		"phdr": len(file.Presets),
		"pbag": len(file.PresetBags),
		"inst": len(file.Instruments),
		"ibag": len(file.InstrumentBags),
		"shdr": len(file.Samples),
		"pgen": len(file.PresetGenerators),
		"igen": len(file.InstrumentGenerators),
	}
	for chunk, n := range lengths {
		if n != 2 {
			t.Errorf("expected 2 %s records, got %d", chunk, n)
		}
	}
	if len(file.PresetModulators) != 1 || len(file.InstrumentModulators) != 1 {
		t.Errorf("expected 1 modulator terminal each, got %d and %d",
			len(file.PresetModulators), len(file.InstrumentModulators))
	}

	if file.SampleCount() != 1 {
		t.Errorf("expected sample count 1, got %d", file.SampleCount())
	}
	if file.Presets[0].Name != "Piano" || file.Presets[1].Name != "EOP" {
		t.Errorf("unexpected preset names: %q, %q", file.Presets[0].Name, file.Presets[1].Name)
	}
	if file.Version() != "2.1" {
		t.Errorf("expected version 2.1, got %q", file.Version())
	}
	if file.BankName() != "Test Bank" {
		t.Errorf("expected bank name 'Test Bank', got %q", file.BankName())
	}

	if file.PCM.BitDepth != 16 || len(file.PCM.Data) != 8 {
		t.Fatalf("expected 8 16-bit samples, got %d at %d bits", len(file.PCM.Data), file.PCM.BitDepth)
	}
	if file.PCM.Data[2] != -100 || file.PCM.Data[4] != -32768 {
		t.Errorf("16-bit samples should pass through unscaled: %v", file.PCM.Data)
	}

	s := file.Samples[0]
	if s.Name != "Piano C4" || s.End != 8 || s.SampleRate != 22050 || s.OriginalPitch != 60 {
		t.Errorf("unexpected sample header: %+v", s)
	}
}

func TestDecode_RecordCountMatchesSize(t *testing.T) {
	bank := sf2test.Minimal()
	file, err := decode(t, bank.Bytes(), Config{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	widths := map[string]struct{ n, width int }{
		"phdr": {len(file.Presets), types.PresetHeaderSize},
		"pbag": {len(file.PresetBags), types.ZoneSize},
		"pmod": {len(file.PresetModulators), types.ModulatorSize},
		"pgen": {len(file.PresetGenerators), types.GeneratorSize},
		"inst": {len(file.Instruments), types.InstrumentHeaderSize},
		"ibag": {len(file.InstrumentBags), types.ZoneSize},
		"imod": {len(file.InstrumentModulators), types.ModulatorSize},
		"igen": {len(file.InstrumentGenerators), types.GeneratorSize},
		"shdr": {len(file.Samples), types.SampleHeaderSize},
	}
	for _, sub := range bank.Pdta {
		w := widths[sub.ID]
		if w.n*w.width != len(sub.Data) {
			t.Errorf("%s: %d records x %d bytes != %d", sub.ID, w.n, w.width, len(sub.Data))
		}
	}
}

func TestDecode_NotRIFF(t *testing.T) {
	data := append([]byte("MThd\x06\x00\x00\x00"), make([]byte, 6)...)

	file, err := decode(t, data, Config{})
	if err != nil {
		t.Fatalf("unrecognized input should not be an error: %v", err)
	}
	if file.Recognized() {
		t.Error("expected file not to be recognized")
	}
	if len(file.Warnings) != 1 || !strings.Contains(file.Warnings[0].Message, "MThd") {
		t.Errorf("expected a warning naming the chunk, got %v", file.Warnings)
	}
}

func TestDecode_NotSoundFontForm(t *testing.T) {
	data := sf2test.Riff("WAVE", sf2test.Chunk("fmt ", make([]byte, 16)))

	file, err := decode(t, data, Config{})
	if err != nil {
		t.Fatalf("unrecognized input should not be an error: %v", err)
	}
	if file.Format != types.FormatUnknown {
		t.Errorf("expected FormatUnknown, got %v", file.Format)
	}
	if len(file.Warnings) != 1 || !strings.Contains(file.Warnings[0].Message, "WAVE") {
		t.Errorf("expected a warning naming the form, got %v", file.Warnings)
	}
}

func TestDecode_NotRecognizedIsLogged(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	_, err := decode(t, []byte("OggS\x00\x00\x00\x00"), Config{Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(logBuf.String(), "probably not a SoundFont file") {
		t.Errorf("expected log entry, got %q", logBuf.String())
	}
}

func TestDecode_WrongListOrder(t *testing.T) {
	bank := sf2test.Minimal()
	data := sf2test.Riff("sfbk",
		sf2test.List("sdta", bank.Sdta...),
		sf2test.List("INFO", bank.Info...),
		sf2test.List("pdta", bank.Pdta...),
	)

	_, err := decode(t, data, Config{})
	var formatErr *types.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "expected form 'INFO' but found 'sdta'") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestDecode_ListExpected(t *testing.T) {
	bank := sf2test.Minimal()
	data := sf2test.Riff("sfbk",
		sf2test.List("INFO", bank.Info...),
		sf2test.Chunk("smpl", sf2test.Samples16(1, 2)),
	)

	_, err := decode(t, data, Config{})
	var formatErr *types.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %T: %v", err, err)
	}
	if formatErr.Chunk != "smpl" {
		t.Errorf("expected error to name chunk smpl, got %q", formatErr.Chunk)
	}
}

func TestDecode_Truncated(t *testing.T) {
	data := sf2test.Minimal().Bytes()

	// Cut inside the shdr records
	_, err := decode(t, data[:len(data)-30], Config{})
	var truncErr *types.TruncatedInputError
	if !errors.As(err, &truncErr) {
		t.Fatalf("expected TruncatedInputError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "decode pdta") {
		t.Errorf("expected error to name the section: %v", err)
	}
}

func TestDecode_TooShort(t *testing.T) {
	for _, data := range []string{"", "PK", "RIF"} {
		file, err := decode(t, []byte(data), Config{})
		if err != nil {
			t.Fatalf("%q: expected no error, got %v", data, err)
		}
		if file.Format != types.FormatUnknown {
			t.Errorf("%q: expected FormatUnknown, got %v", data, file.Format)
		}
		want := fmt.Sprintf("found only %d bytes", len(data))
		if len(file.Warnings) != 1 || !strings.Contains(file.Warnings[0].Message, want) {
			t.Errorf("%q: expected warning %q, got %v", data, want, file.Warnings)
		}
	}
}

func TestDecode_TruncatedAfterRiffID(t *testing.T) {
	// Once the RIFF id is seen a short stream is corrupt, not foreign
	_, err := decode(t, []byte("RIFF\x10\x00"), Config{})
	var truncErr *types.TruncatedInputError
	if !errors.As(err, &truncErr) {
		t.Fatalf("expected TruncatedInputError, got %T: %v", err, err)
	}
}

func TestDecode_TruncatedInsideIgen(t *testing.T) {
	data := sf2test.Minimal().Bytes()

	// Stop one byte into the first generator amount
	cut := bytes.Index(data, []byte("igen")) + 8 + 3
	_, err := decode(t, data[:cut], Config{})
	var truncErr *types.TruncatedInputError
	if !errors.As(err, &truncErr) {
		t.Fatalf("expected TruncatedInputError, got %T: %v", err, err)
	}
	if truncErr.Chunk != "igen" || truncErr.What != "genAmount" {
		t.Errorf("expected genAmount in igen, got %s in %q", truncErr.What, truncErr.Chunk)
	}
	if !strings.Contains(err.Error(), "in chunk 'igen'") {
		t.Errorf("expected chunk tag in message: %v", err)
	}
}

func TestDecode_SubChunkOverrunsList(t *testing.T) {
	bank := sf2test.Minimal()

	// A pdta LIST whose size stops short of its last sub-chunk
	payload := []byte("pdta")
	for _, s := range bank.Pdta {
		payload = append(payload, sf2test.Chunk(s.ID, s.Data)...)
	}
	list := sf2test.ChunkSized("LIST", uint32(len(payload)-10), payload)
	data := sf2test.Riff("sfbk",
		sf2test.List("INFO", bank.Info...),
		sf2test.List("sdta", bank.Sdta...),
		list,
	)

	_, err := decode(t, data, Config{})
	var formatErr *types.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "exceeds the length of list 'pdta'") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestDecode_RiffSizeMismatchWarns(t *testing.T) {
	data := sf2test.Minimal().Bytes()
	data = append(data, 0, 0) // trailing bytes not covered by the lists
	binary.LittleEndian.PutUint32(data[4:], uint32(len(data)-8))

	file, err := decode(t, data, Config{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(file.Warnings) != 1 || file.Warnings[0].Stage != "riff" {
		t.Errorf("expected one riff warning, got %v", file.Warnings)
	}
}
