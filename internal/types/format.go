package types

// Format represents the detected container format.
type Format int

const (
	// FormatUnknown is reported when the stream is not a RIFF sfbk file.
	FormatUnknown Format = iota // Unknown
	// FormatSF2 represents SoundFont 2 banks.
	FormatSF2 // SoundFont 2
)

// String returns the display name of the format.
func (f Format) String() string {
	switch f {
	case FormatSF2:
		return "SoundFont 2"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatSF2:
		return []string{".sf2"}
	case FormatUnknown:
		return nil
	default:
		return nil
	}
}

// RIFF identifiers of a SoundFont 2 file.
const (
	RiffID = "RIFF"
	ListID = "LIST"
	FormID = "sfbk"
)
