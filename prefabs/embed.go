package prefabs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var embedded embed.FS

// Source reads prefab specs and room event scripts. Files under Dir on disk
// shadow the ones in FS, so edits are visible without a rebuild.
type Source struct {
	Dir string
	FS  fs.FS
}

// Default overlays ./prefabs on the embedded copies.
var Default = Source{Dir: "prefabs", FS: embedded}

// Spec reads a spec file such as "camera.yaml" or "prefabs/camera.yaml".
func (s Source) Spec(name string) ([]byte, error) {
	return s.read(specPath(name))
}

// Script reads the script of a room event. name may be the bare event name
// ("sign") or a path to the script file.
func (s Source) Script(name string) ([]byte, error) {
	return s.read(scriptPath(name))
}

func (s Source) HasScript(name string) bool {
	_, err := s.Script(name)
	return err == nil
}

func (s Source) read(rel string) ([]byte, error) {
	if rel == "" {
		return nil, fmt.Errorf("prefabs: empty name")
	}
	if s.Dir != "" {
		if data, err := os.ReadFile(filepath.Join(s.Dir, filepath.FromSlash(rel))); err == nil {
			return data, nil
		}
	}
	if s.FS == nil {
		return nil, fmt.Errorf("prefabs: %s: %w", rel, fs.ErrNotExist)
	}
	return fs.ReadFile(s.FS, rel)
}

func Load(name string) ([]byte, error) { return Default.Spec(name) }

func LoadScript(name string) ([]byte, error) { return Default.Script(name) }

func HasScript(name string) bool { return Default.HasScript(name) }

func specPath(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimPrefix(filepath.ToSlash(name), "prefabs/")
}

// scriptPath maps an event name or a script path to scripts/<name>.tengo.
func scriptPath(name string) string {
	if name == "" {
		return ""
	}
	s := strings.TrimPrefix(filepath.ToSlash(name), "prefabs/")
	s = strings.TrimPrefix(s, "scripts/")
	if path.Ext(s) != scriptExt {
		s += scriptExt
	}
	return path.Join("scripts", s)
}
