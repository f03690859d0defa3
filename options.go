package soundfont

import "log/slog"

// Option configures behavior when decoding SoundFont banks.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	bank, err := soundfont.Open("bank.sf2",
//	    soundfont.WithIgnoreIndexOutOfRange(),
//	    soundfont.WithLogger(slog.Default()),
//	)
type Option func(*openOptions)

// openOptions holds configuration for decoding.
type openOptions struct {
	ignoreErrors          bool // Relax ifil/iver size and presence checks
	ignoreIndexOutOfRange bool // Downgrade cross-reference violations to warnings
	strictParsing         bool // Fail on any warning
	ignoreWarnings        bool // Drop collected warnings
	logger                *slog.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		ignoreErrors:          false,
		ignoreIndexOutOfRange: false,
		strictParsing:         false,
		ignoreWarnings:        false,
		logger:                nil, // Discard
	}
}

// WithIgnoreErrors relaxes the checks on the version chunks.
//
// By default an ifil or iver chunk whose size is not 4 bytes, or a bank
// without an ifil chunk, fails the decode. With this option the decoder
// records a warning instead; a missing or unreadable ifil leaves
// File.Version empty.
func WithIgnoreErrors() Option {
	return func(o *openOptions) {
		o.ignoreErrors = true
	}
}

// WithIgnoreIndexOutOfRange downgrades cross-reference violations to warnings.
//
// Some banks in the wild carry a last zone or preset whose index points one
// record too far. By default that is an IndexOutOfRangeError. With this
// option the violation is logged and recorded in File.Warnings and decoding
// continues; the zone accessors still refuse to slice past the arrays.
//
// Example:
//
//	bank, err := soundfont.Open("old.sf2", soundfont.WithIgnoreIndexOutOfRange())
func WithIgnoreIndexOutOfRange() Option {
	return func(o *openOptions) {
		o.ignoreIndexOutOfRange = true
	}
}

// WithLogger sets the destination for decoder diagnostics.
//
// Warnings are logged at slog.LevelWarn, an unrecognized stream at
// slog.LevelInfo and list boundaries at slog.LevelDebug. By default
// diagnostics are discarded; they are always collected in File.Warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		o.logger = logger
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// This includes the "not a SoundFont" outcome: with strict parsing, a file
// that is not a RIFF sfbk container fails to open.
//
// Example:
//
//	bank, err := soundfont.Open("bank.sf2", soundfont.WithStrictParsing())
//	// err != nil if ANY issue is encountered
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// File.Warnings will always be empty. Diagnostics still reach the logger.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}
