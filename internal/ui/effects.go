package ui

import (
	"github.com/renato0307/chime/internal/domain"
)

// EffectPlayer plays a preloaded sound effect.
// *services.SoundEffectRegistry satisfies it.
type EffectPlayer interface {
	Play(d domain.Descriptor)
}
