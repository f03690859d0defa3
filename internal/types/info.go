package types

import (
	"fmt"
	"strings"
)

// DefaultSoundEngine is substituted when the isng field is empty or unterminated.
const DefaultSoundEngine = "EMU8000"

// VersionTag is an ifil or iver record: Major is left of the decimal point,
// Minor right of it.
type VersionTag struct {
	Major uint16
	Minor uint16
}

// String returns the version as "major.minor".
func (v VersionTag) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Text is a decoded INFO text field.
//
// Raw keeps whatever was read; Value is empty when the field was faulty
// (unterminated or empty), except for the sound engine which falls back to
// DefaultSoundEngine.
type Text struct {
	Value string
	Raw   string
	Fault bool
}

// Info holds the INFO list of a SoundFont bank.
//
// Version, SoundEngine and BankName are singular; all slices are repeatable
// fields kept in file order.
type Info struct {
	Version     *VersionTag
	SoundEngine *Text
	BankName    *Text

	ROMNames      []Text
	ROMVersions   []VersionTag
	CreationDates []Text
	Engineers     []Text
	Products      []Text
	Copyrights    []Text
	Comments      []Text
	Tools         []Text
}

// joinTexts joins the usable values of texts with ". ".
func joinTexts(texts []Text) string {
	parts := make([]string, 0, len(texts))
	for _, t := range texts {
		if t.Value != "" {
			parts = append(parts, t.Value)
		}
	}
	return strings.Join(parts, ". ")
}
