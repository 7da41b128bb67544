package domain

import (
	"fmt"
	"io/fs"
	"strings"
)

// Descriptor identifies a sound resource by base name and file extension
type Descriptor struct {
	Name      string
	Extension string
}

// NewDescriptor creates a Descriptor
func NewDescriptor(name, extension string) Descriptor {
	return Descriptor{Name: name, Extension: extension}
}

// ID returns the composite identifier "name.extension" used as the registry key
func (d Descriptor) ID() string {
	return d.Name + "." + d.Extension
}

// String implements fmt.Stringer
func (d Descriptor) String() string {
	return d.ID()
}

// ParseDescriptor splits "name.extension" on the last dot.
// Both parts must be non-empty.
func ParseDescriptor(id string) (Descriptor, error) {
	idx := strings.LastIndex(id, ".")
	if idx <= 0 || idx == len(id)-1 {
		return Descriptor{}, fmt.Errorf("invalid sound identifier %q: expected name.extension", id)
	}
	return Descriptor{Name: id[:idx], Extension: id[idx+1:]}, nil
}

// ParseDescriptors parses a list of identifiers, stopping at the first invalid one
func ParseDescriptors(ids []string) ([]Descriptor, error) {
	descriptors := make([]Descriptor, 0, len(ids))
	for _, id := range ids {
		d, err := ParseDescriptor(id)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}

// Handle is an opaque token owned by the audio system for a loaded sound
type Handle uint32

// Resource is a descriptor resolved to a location inside a resource source
type Resource struct {
	Descriptor Descriptor
	FS         fs.FS
	Location   string
}

// Open opens the resource for reading
func (r Resource) Open() (fs.File, error) {
	if r.FS == nil {
		return nil, fmt.Errorf("resource %s has no filesystem", r.Descriptor.ID())
	}
	return r.FS.Open(r.Location)
}
