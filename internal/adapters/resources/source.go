package resources

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/renato0307/chime/internal/domain"
)

// SupportedExtensions lists the audio file extensions a catalog will list
var SupportedExtensions = map[string]bool{
	"aif":  true,
	"aiff": true,
	"caf":  true,
	"mp3":  true,
	"oga":  true,
	"ogg":  true,
	"wav":  true,
}

// IsSupported reports whether a descriptor's extension is a known audio format
func IsSupported(d domain.Descriptor) bool {
	return SupportedExtensions[strings.ToLower(d.Extension)]
}

// FSSource implements ports.SoundCatalog over an fs.FS
type FSSource struct {
	dir  string // Backing OS directory, empty for non-directory filesystems
	fsys fs.FS
	root string
}

// NewFSSource creates a source that looks up sounds under root inside fsys
func NewFSSource(fsys fs.FS, root string) *FSSource {
	if root == "" {
		root = "."
	}
	return &FSSource{fsys: fsys, root: root}
}

// NewDirSource creates a source over an OS directory
func NewDirSource(dir string) *FSSource {
	return &FSSource{dir: dir, fsys: os.DirFS(dir), root: "."}
}

// Dir returns the backing OS directory, or "" when the source is not directory based
func (s *FSSource) Dir() string {
	return s.dir
}

// Locate resolves name.extension inside the source root
func (s *FSSource) Locate(d domain.Descriptor) (domain.Resource, error) {
	location := path.Join(s.root, d.ID())
	if !fs.ValidPath(location) || strings.Contains(d.ID(), "/") {
		return domain.Resource{}, domain.NewSoundError(domain.ErrResourceNotFound, d,
			fmt.Errorf("invalid resource path %q", location))
	}

	info, err := fs.Stat(s.fsys, location)
	if err != nil {
		return domain.Resource{}, domain.NewSoundError(domain.ErrResourceNotFound, d, err)
	}
	if info.IsDir() {
		return domain.Resource{}, domain.NewSoundError(domain.ErrResourceNotFound, d,
			fmt.Errorf("%s is a directory", location))
	}

	return domain.Resource{
		Descriptor: d,
		FS:         s.fsys,
		Location:   location,
	}, nil
}

// List returns the descriptors of every supported audio file in the source root
func (s *FSSource) List() ([]domain.Descriptor, error) {
	entries, err := fs.ReadDir(s.fsys, s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read sounds directory: %w", err)
	}

	var descriptors []domain.Descriptor
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		d, err := domain.ParseDescriptor(entry.Name())
		if err != nil || !IsSupported(d) {
			continue
		}
		descriptors = append(descriptors, d)
	}

	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].ID() < descriptors[j].ID()
	})
	return descriptors, nil
}
