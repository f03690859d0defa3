package types

import (
	"fmt"
	"strings"
)

// TruncatedInputError is returned when the stream ends before a requested field.
type TruncatedInputError struct {
	Err    error
	Path   string
	Chunk  string // enclosing chunk tag, empty outside a record array
	What   string
	Offset int64
	Want   int
	Got    int
}

func (e *TruncatedInputError) Error() string {
	if e.Chunk != "" {
		return fmt.Sprintf("%s: truncated input at offset %d while reading %s in chunk '%s': want %d bytes, got %d",
			e.Path, e.Offset, e.What, e.Chunk, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: truncated input at offset %d while reading %s: want %d bytes, got %d",
		e.Path, e.Offset, e.What, e.Want, e.Got)
}

// Unwrap returns the underlying I/O error.
func (e *TruncatedInputError) Unwrap() error {
	return e.Err
}

// FormatError is returned when the byte layout violates the SoundFont 2 format:
// bad form ids, non-ASCII tags, record size mismatches, unknown sub-chunks.
type FormatError struct {
	Path   string
	Chunk  string
	Reason string
	Offset int64
}

func (e *FormatError) Error() string {
	if e.Chunk == "" {
		return fmt.Sprintf("%s: format error at offset %d: %s", e.Path, e.Offset, e.Reason)
	}
	return fmt.Sprintf("%s: format error in chunk '%s' at offset %d: %s", e.Path, e.Chunk, e.Offset, e.Reason)
}

// OrderingViolationError is returned when an index field decreases across
// consecutive records.
type OrderingViolationError struct {
	Path     string
	Chunk    string
	Field    string
	Record   int
	Offset   int64
	Previous uint16
	Current  uint16
}

func (e *OrderingViolationError) Error() string {
	return fmt.Sprintf("%s: chunk '%s' record %d at offset %d: %s values are not monotonically increasing (%d after %d)",
		e.Path, e.Chunk, e.Record, e.Offset, e.Field, e.Current, e.Previous)
}

// MissingChunkError is returned when a structurally required sub-chunk is absent.
type MissingChunkError struct {
	Path   string
	List   string
	Chunks []string
}

func (e *MissingChunkError) Error() string {
	quoted := make([]string, len(e.Chunks))
	for i, c := range e.Chunks {
		quoted[i] = "'" + c + "'"
	}
	return fmt.Sprintf("%s: list '%s' is missing required chunk %s", e.Path, e.List, strings.Join(quoted, ", "))
}

// IndexOutOfRangeError is returned when a cross-section index points past the
// end of the array it refers to.
type IndexOutOfRangeError struct {
	Path   string
	Chunk  string
	Field  string
	Target string
	Index  int
	Length int
	Offset int64 // stream offset of the offending record, 0 outside decoding
}

func (e *IndexOutOfRangeError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("%s: chunk '%s' at offset %d: %s %d is outside the %d records of '%s'",
			e.Path, e.Chunk, e.Offset, e.Field, e.Index, e.Length, e.Target)
	}
	return fmt.Sprintf("%s: chunk '%s': %s %d is outside the %d records of '%s'",
		e.Path, e.Chunk, e.Field, e.Index, e.Length, e.Target)
}

// Warning represents a non-fatal issue encountered during decoding.
//
// Warnings indicate problems that don't prevent decoding but may indicate
// corrupted or unusual data. Examples include:
//   - Cross-references past the end of an array in lenient mode
//   - A missing version tag in lenient mode
//   - An sm24 chunk without smpl data
//
// Warnings are collected in File.Warnings during decoding.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "riff", "INFO", "sdta", "pdta"

	// Warning message
	Message string

	// Stream offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
