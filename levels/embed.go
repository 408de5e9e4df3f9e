// Package levels holds the bundled level files. A file with the same name
// under ./levels on disk takes precedence over the embedded copy.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Dir is where edited levels are saved and looked up first.
const Dir = "levels"

// Load returns the raw JSON for a level by name ("1-1", "1-1.json" or
// "levels/1-1.json").
func Load(name string) ([]byte, error) {
	clean := Clean(name)
	if data, err := os.ReadFile(DiskPath(clean)); err == nil {
		return data, nil
	}
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	return data, nil
}

// Names lists every level available on disk or embedded, without the
// extension.
func Names() []string {
	seen := make(map[string]bool)
	if entries, err := fs.ReadDir(LevelsFS, "."); err == nil {
		for _, e := range entries {
			seen[strings.TrimSuffix(e.Name(), ".json")] = true
		}
	}
	if entries, err := os.ReadDir(Dir); err == nil {
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
				seen[strings.TrimSuffix(e.Name(), ".json")] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Clean reduces a level name or path to its file name with extension.
func Clean(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, Dir+"/")
	s = filepath.Base(s)
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}

func DiskPath(clean string) string {
	return filepath.Join(Dir, clean)
}

// Trim reduces a level name or path to its bare name ("1-1").
func Trim(name string) string {
	return strings.TrimSuffix(Clean(name), ".json")
}
