package soundfont

import (
	"github.com/simonhull/soundfont/internal/types"
)

// TruncatedInputError is an alias to types.TruncatedInputError.
// Re-exporting from internal/types to maintain public API.
type TruncatedInputError = types.TruncatedInputError

// FormatError is an alias to types.FormatError.
// Re-exporting from internal/types to maintain public API.
type FormatError = types.FormatError

// OrderingViolationError is an alias to types.OrderingViolationError.
// Re-exporting from internal/types to maintain public API.
type OrderingViolationError = types.OrderingViolationError

// MissingChunkError is an alias to types.MissingChunkError.
// Re-exporting from internal/types to maintain public API.
type MissingChunkError = types.MissingChunkError

// IndexOutOfRangeError is an alias to types.IndexOutOfRangeError.
// Re-exporting from internal/types to maintain public API.
type IndexOutOfRangeError = types.IndexOutOfRangeError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to maintain public API.
type Warning = types.Warning
