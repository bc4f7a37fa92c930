package crossplane

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// FileSystem is the seam the parser reads configuration files through, so
// include expansion can be exercised against fixtures without touching the
// host file system.
type FileSystem interface {
	Open(name string) (io.ReadCloser, error)
	Glob(pattern string) ([]string, error)
}

type osFS struct{}

func (osFS) Open(name string) (io.ReadCloser, error) { return os.Open(name) }

func (osFS) Glob(pattern string) ([]string, error) { return filepath.Glob(pattern) }

// OSFileSystem reads from the host file system. It is the default when
// ParseOptions.FS is nil.
var OSFileSystem FileSystem = osFS{}

// MapFS is an in-memory FileSystem keyed by file path.
type MapFS map[string]string

func (m MapFS) Open(name string) (io.ReadCloser, error) {
	body, ok := m[name]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func (m MapFS) Glob(pattern string) ([]string, error) {
	var names []string
	for name := range m {
		ok, err := path.Match(pattern, name)
		if err != nil {
			return nil, err
		}
		if ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
