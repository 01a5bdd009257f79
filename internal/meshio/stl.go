// Package meshio loads triangle meshes from STL and 3MF files into
// internal/geom.Mesh values. Loading is entirely outside the geometric
// core: the core only ever sees the finished geom.Mesh, never a
// file or a reader.
package meshio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chazu/lignin-slicer/internal/geom"
	"github.com/pkg/errors"
)

const binaryHeaderSize = 80

// LoadSTL reads either binary or ASCII STL from r and returns a geom.Mesh.
// Format is sniffed the standard way: an ASCII STL begins with the literal
// bytes "solid"; anything else is treated as binary. Vertices are
// deduplicated within geom.Epsilon during construction so triangles that
// share an edge in the source file end up sharing vertex indices too — the
// plane intersector's robustness against exactly-on-plane vertices depends
// on adjacent triangles presenting identical coordinates.
func LoadSTL(r io.Reader) (*geom.Mesh, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	peek, err := br.Peek(5)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "meshio: reading STL header")
	}
	if string(peek) == "solid" {
		// Ambiguous: some binary STL files also start with "solid" in
		// their 80-byte header. Buffer the whole thing and try ASCII
		// first; fall back to binary if ASCII parsing finds no facets.
		all, err := io.ReadAll(br)
		if err != nil {
			return nil, errors.Wrap(err, "meshio: reading STL")
		}
		tris, asciiErr := parseASCIISTL(bytes.NewReader(all))
		if asciiErr == nil && (len(tris) > 0 || len(all) < binaryHeaderSize+4) {
			return buildMesh(tris)
		}
		tris, err = parseBinarySTL(bytes.NewReader(all))
		if err != nil {
			return nil, err
		}
		return buildMesh(tris)
	}

	tris, err := parseBinarySTL(br)
	if err != nil {
		return nil, err
	}
	return buildMesh(tris)
}

type rawTriangle struct {
	normal geom.Vector3
	v      [3]geom.Point3
}

func parseBinarySTL(r io.Reader) ([]rawTriangle, error) {
	var header [binaryHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, errors.Wrap(err, "meshio: reading binary STL header")
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, errors.Wrap(err, "meshio: reading binary STL triangle count")
	}

	tris := make([]rawTriangle, count)
	var rec [50]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			return nil, errors.Wrapf(err, "meshio: reading binary STL triangle %d", i)
		}
		buf := bytes.NewReader(rec[:])
		var floats [12]float32
		if err := binary.Read(buf, binary.LittleEndian, &floats); err != nil {
			return nil, errors.Wrapf(err, "meshio: decoding binary STL triangle %d", i)
		}
		t := rawTriangle{
			normal: geom.Vector3{X: float64(floats[0]), Y: float64(floats[1]), Z: float64(floats[2])},
		}
		for j := 0; j < 3; j++ {
			base := 3 + j*3
			t.v[j] = geom.Point3{X: float64(floats[base]), Y: float64(floats[base+1]), Z: float64(floats[base+2])}
		}
		tris[i] = t
	}
	return tris, nil
}

func parseASCIISTL(r io.Reader) ([]rawTriangle, error) {
	scanner := bufio.NewScanner(r)
	var tris []rawTriangle
	var cur rawTriangle
	vertCount := 0
	inFacet := false

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				n, err := parseFloats3(fields[2:5])
				if err != nil {
					return nil, errors.Wrap(err, "meshio: parsing facet normal")
				}
				cur.normal = geom.Vector3{X: n[0], Y: n[1], Z: n[2]}
			}
			inFacet = true
			vertCount = 0
		case "vertex":
			if !inFacet || len(fields) < 4 {
				continue
			}
			v, err := parseFloats3(fields[1:4])
			if err != nil {
				return nil, errors.Wrap(err, "meshio: parsing vertex")
			}
			if vertCount < 3 {
				cur.v[vertCount] = geom.Point3{X: v[0], Y: v[1], Z: v[2]}
				vertCount++
			}
		case "endfacet":
			if vertCount == 3 {
				tris = append(tris, cur)
			}
			cur = rawTriangle{}
			inFacet = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "meshio: scanning ASCII STL")
	}
	return tris, nil
}

func parseFloats3(fields []string) ([3]float64, error) {
	var out [3]float64
	for i, f := range fields[:3] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return out, fmt.Errorf("invalid float %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}

// WriteSTL emits mesh as ASCII STL: one facet per triangle, each with its
// stored normal and three vertices, in the same line-oriented Fprintf style
// the G-code emitter uses rather than building an intermediate document.
func WriteSTL(w io.Writer, mesh *geom.Mesh, name string) error {
	if _, err := fmt.Fprintf(w, "solid %s\n", name); err != nil {
		return errors.Wrap(err, "meshio: writing STL header")
	}
	for _, t := range mesh.Triangles {
		n := t.Normal
		if _, err := fmt.Fprintf(w, "  facet normal %g %g %g\n", n.X, n.Y, n.Z); err != nil {
			return errors.Wrap(err, "meshio: writing facet normal")
		}
		if _, err := fmt.Fprintf(w, "    outer loop\n"); err != nil {
			return errors.Wrap(err, "meshio: writing outer loop")
		}
		for corner := 0; corner < 3; corner++ {
			v := mesh.Vertex(t, corner)
			if _, err := fmt.Fprintf(w, "      vertex %g %g %g\n", v.X, v.Y, v.Z); err != nil {
				return errors.Wrap(err, "meshio: writing vertex")
			}
		}
		if _, err := fmt.Fprintf(w, "    endloop\n  endfacet\n"); err != nil {
			return errors.Wrap(err, "meshio: writing endfacet")
		}
	}
	if _, err := fmt.Fprintf(w, "endsolid %s\n", name); err != nil {
		return errors.Wrap(err, "meshio: writing STL footer")
	}
	return nil
}

// buildMesh deduplicates vertices within geom.Epsilon and constructs the
// final geom.Mesh, validating finiteness and index ranges via geom.NewMesh.
func buildMesh(tris []rawTriangle) (*geom.Mesh, error) {
	dedup := newVertexDedup()
	triangles := make([]geom.Triangle, 0, len(tris))
	for _, t := range tris {
		var idx [3]int
		for j := 0; j < 3; j++ {
			idx[j] = dedup.indexOf(t.v[j])
		}
		triangles = append(triangles, geom.Triangle{V: idx, Normal: t.normal})
	}
	return geom.NewMesh(dedup.vertices, triangles)
}
