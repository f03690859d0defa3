// Package soundfont decodes SoundFont 2 sound banks.
//
// A SoundFont 2 file is a RIFF container describing MIDI instrument presets,
// their zone hierarchies, synthesis parameters (generators and modulators)
// and the raw PCM sample data they play. soundfont reads the whole file in
// one pass into a File whose arrays mirror the on-disk records.
//
// # Quick Start
//
//	bank, err := soundfont.Open("piano.sf2")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%s (SoundFont %s)\n", bank.BankName(), bank.Version())
//	for h := range bank.SampleHeaders() {
//		fmt.Printf("%s %dHz %d samples\n", h.Name, h.SampleRate, h.Frames())
//	}
//
// # Structure
//
// The bank is split into three lists:
//
//	[File]
//	  ├─ Info    - INFO: version, engine, name, credits
//	  ├─ PCM     - sdta: 16-bit samples, or 24-bit with sm24
//	  └─ pdta    - Presets → PresetBags → PresetGenerators/PresetModulators
//	               Instruments → InstrumentBags → InstrumentGenerators/InstrumentModulators
//	               Samples
//
// Every pdta array ends in a terminal record whose index marks the end of the
// previous record's range; the arrays are kept exactly as stored, terminal
// included. Use PresetZones, InstrumentZones and the zone generator and
// modulator accessors to walk the hierarchy without index arithmetic.
//
// # Error Handling
//
// A stream that is not a RIFF sfbk container is not an error: Open returns a
// File for which Recognized reports false, with a warning naming what was
// found. Structural problems in a SoundFont are fatal and typed:
//
//   - TruncatedInputError: the stream ended inside a field
//   - FormatError: the byte layout is wrong
//   - OrderingViolationError: an index field decreased
//   - MissingChunkError: a required chunk is absent
//   - IndexOutOfRangeError: a cross reference points past its target
//
// Use errors.As to inspect them. WithIgnoreErrors and
// WithIgnoreIndexOutOfRange downgrade the relaxable ones to warnings, which
// are collected in File.Warnings and sent to the logger set by WithLogger.
//
// # Concurrency
//
// A File is immutable once returned and may be read from many goroutines.
// OpenMany decodes several banks in parallel.
package soundfont
