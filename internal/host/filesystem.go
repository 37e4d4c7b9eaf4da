package host

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/attaebra/familytv/internal/constants"
	"github.com/attaebra/familytv/internal/interfaces"
)

// OSFilesystem resolves special:// paths onto real directories.
type OSFilesystem struct {
	// Roots maps a special root name (home, profile) to a directory.
	Roots map[string]string
}

// Ensure OSFilesystem implements the Filesystem interface.
var _ interfaces.Filesystem = (*OSFilesystem)(nil)

// NewOSFilesystem creates a filesystem with the given home and profile roots.
func NewOSFilesystem(homeRoot, profileRoot string) *OSFilesystem {
	return &OSFilesystem{
		Roots: map[string]string{
			constants.SpecialHome:    homeRoot,
			constants.SpecialProfile: profileRoot,
		},
	}
}

// TranslatePath turns special://<root>/rest into <dir>/rest.
// Paths without the special scheme, or with an unknown root, are returned unchanged.
func (f *OSFilesystem) TranslatePath(path string) string {
	rest, ok := strings.CutPrefix(path, constants.SpecialScheme)
	if !ok {
		return path
	}

	root, tail, _ := strings.Cut(rest, "/")
	dir, ok := f.Roots[root]
	if !ok || dir == "" {
		return path
	}

	translated := filepath.Join(dir, filepath.FromSlash(tail))
	// Keep the trailing separator the host returns for directories
	if strings.HasSuffix(tail, "/") {
		translated += string(filepath.Separator)
	}
	return translated
}

// Exists reports whether path exists.
func (f *OSFilesystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Mkdirs creates path and any missing parents.
func (f *OSFilesystem) Mkdirs(path string) error {
	return os.MkdirAll(path, 0o755)
}
