package ports

import "github.com/renato0307/chime/internal/domain"

// AudioSystem is the platform sound capability: it turns resources into
// playable handles, plays them and disposes of them
type AudioSystem interface {
	// CreateHandle registers a sound resource and returns a playable handle
	CreateHandle(resource domain.Resource) (domain.Handle, error)

	// Play starts playback of a handle without waiting for it to finish
	Play(handle domain.Handle)

	// Dispose releases a handle; it must not be played afterwards
	Dispose(handle domain.Handle) error
}

// ResourceSource locates sound resources by descriptor
type ResourceSource interface {
	// Locate resolves a descriptor to a resource inside the source.
	// A missing resource is reported as a *domain.SoundError of kind
	// domain.ErrResourceNotFound.
	Locate(descriptor domain.Descriptor) (domain.Resource, error)
}

// SoundCatalog lists the sounds available in a resource source
type SoundCatalog interface {
	ResourceSource

	// List returns every available descriptor sorted by identifier
	List() ([]domain.Descriptor, error)
}
