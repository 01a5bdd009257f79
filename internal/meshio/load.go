package meshio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chazu/lignin-slicer/internal/geom"
)

// Load reads a mesh file, dispatching on its extension: ".stl" to LoadSTL,
// ".3mf" to LoadMesh3MF. Any other extension is an error — format sniffing
// from content alone is deliberately not attempted beyond LoadSTL's own
// ASCII/binary detection, since STL and 3MF share no reliable byte-level
// signature to disambiguate them.
func Load(path string) (*geom.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		return LoadSTL(f)
	case ".3mf":
		return LoadMesh3MF(f)
	default:
		return nil, fmt.Errorf("meshio: unsupported mesh file extension %q (want .stl or .3mf)", filepath.Ext(path))
	}
}
