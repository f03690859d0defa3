// Package types provides core data structures for decoded SoundFont banks.
//
// This package defines the File aggregate, the pdta record types, the INFO
// fields and the error taxonomy shared by the decoder and the public API.
package types

import "iter"

// File represents a decoded SoundFont bank.
//
// File is populated in a single pass by the decoder and is not modified
// afterwards; it may be shared between goroutines for reading. It holds no
// file handle.
//
// Every pdta array keeps its terminal sentinel record as the last element,
// so len(Presets) is one more than the number of real presets. The query
// methods (SampleCount, SampleHeaders, PresetHeaders) skip the sentinel.
type File struct {
	Path     string
	Warnings []Warning
	Info     Info
	PCM      PCM

	Presets              []PresetHeader
	PresetBags           []Zone
	PresetModulators     []Modulator
	PresetGenerators     []Generator
	Instruments          []InstrumentHeader
	InstrumentBags       []Zone
	InstrumentModulators []Modulator
	InstrumentGenerators []Generator
	Samples              []SampleHeader

	Format Format
	Size   int64 // bytes consumed from the stream
}

// Recognized reports whether the stream was a RIFF sfbk container.
//
// An unrecognized stream is not an error: the decoder stops early and
// returns a File with FormatUnknown and a warning naming what it found.
func (f *File) Recognized() bool {
	return f.Format == FormatSF2
}

// Version returns the ifil version tag as "major.minor", or "" when absent.
func (f *File) Version() string {
	if f.Info.Version == nil {
		return ""
	}
	return f.Info.Version.String()
}

// SoundEngine returns the wavetable engine the bank was optimized for.
func (f *File) SoundEngine() string {
	if f.Info.SoundEngine == nil || f.Info.SoundEngine.Value == "" {
		return DefaultSoundEngine
	}
	return f.Info.SoundEngine.Value
}

// BankName returns the INAM field, or "" when absent or faulty.
func (f *File) BankName() string {
	if f.Info.BankName == nil {
		return ""
	}
	return f.Info.BankName.Value
}

// Engineers returns all IENG fields joined with ". ".
func (f *File) Engineers() string { return joinTexts(f.Info.Engineers) }

// Copyright returns all ICOP fields joined with ". ".
func (f *File) Copyright() string { return joinTexts(f.Info.Copyrights) }

// Comments returns all ICMT fields joined with ". ".
func (f *File) Comments() string { return joinTexts(f.Info.Comments) }

// CreationDates returns all ICRD fields joined with ". ".
func (f *File) CreationDates() string { return joinTexts(f.Info.CreationDates) }

// Tools returns all ISFT fields joined with ". ".
func (f *File) Tools() string { return joinTexts(f.Info.Tools) }

// Products returns all IPRD fields joined with ". ".
func (f *File) Products() string { return joinTexts(f.Info.Products) }

// ROMNames returns all irom fields joined with ". ".
func (f *File) ROMNames() string { return joinTexts(f.Info.ROMNames) }

// SampleCount returns the number of sample headers, excluding the sentinel.
func (f *File) SampleCount() int {
	return max(len(f.Samples)-1, 0)
}

// SampleHeaders iterates over the sample headers, excluding the sentinel.
func (f *File) SampleHeaders() iter.Seq[SampleHeader] {
	return func(yield func(SampleHeader) bool) {
		for i := 0; i < f.SampleCount(); i++ {
			if !yield(f.Samples[i]) {
				return
			}
		}
	}
}

// PresetHeaders iterates over the preset headers with their indices,
// excluding the sentinel.
func (f *File) PresetHeaders() iter.Seq2[int, PresetHeader] {
	return func(yield func(int, PresetHeader) bool) {
		for i := 0; i < len(f.Presets)-1; i++ {
			if !yield(i, f.Presets[i]) {
				return
			}
		}
	}
}
