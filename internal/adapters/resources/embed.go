package resources

import "embed"

// embeddedSounds holds the built-in effects: click, pop and chime
//
//go:embed sounds/*.wav
var embeddedSounds embed.FS

// Embedded returns a source over the built-in sound effects
func Embedded() *FSSource {
	return NewFSSource(embeddedSounds, "sounds")
}
