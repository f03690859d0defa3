package soundfont

import (
	"github.com/simonhull/soundfont/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to maintain public API.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatSF2     = types.FormatSF2
)

// Generator operators and sample type flags.
const (
	GenInstrument = types.GenInstrument
	GenKeyRange   = types.GenKeyRange
	GenVelRange   = types.GenVelRange
	GenSampleID   = types.GenSampleID

	SampleMono   = types.SampleMono
	SampleRight  = types.SampleRight
	SampleLeft   = types.SampleLeft
	SampleLinked = types.SampleLinked
	SampleROM    = types.SampleROM

	PercussionBank     = types.PercussionBank
	DefaultSoundEngine = types.DefaultSoundEngine
)
