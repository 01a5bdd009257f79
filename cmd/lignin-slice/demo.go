package main

import (
	"fmt"
	"os"

	"github.com/chazu/lignin-slicer/internal/fixture"
	"github.com/chazu/lignin-slicer/internal/geom"
	"github.com/chazu/lignin-slicer/internal/meshio"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func demoCmd() *cobra.Command {
	var shape string
	var x, y, z float64
	var outputPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a procedurally generated shape to disk as STL, no mesh file required",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(shape, x, y, z, outputPath)
		},
	}

	cmd.Flags().StringVar(&shape, "shape", "box", "shape to generate: box or cylinder")
	cmd.Flags().Float64Var(&x, "x", 20, "box width in mm, or cylinder height")
	cmd.Flags().Float64Var(&y, "y", 20, "box depth in mm, or cylinder radius")
	cmd.Flags().Float64Var(&z, "z", 20, "box height in mm, ignored for cylinder")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "demo.stl", "path to write the resulting STL")

	return cmd
}

func runDemo(shape string, x, y, z float64, outputPath string) error {
	var mesh *geom.Mesh
	var err error

	switch shape {
	case "box":
		mesh, err = fixture.Box(x, y, z)
	case "cylinder":
		mesh, err = fixture.Cylinder(x, y)
	default:
		return fmt.Errorf("unknown demo shape %q (want box or cylinder)", shape)
	}
	if err != nil {
		return errors.Wrapf(err, "generating %s fixture", shape)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", outputPath)
	}
	defer out.Close()

	if err := meshio.WriteSTL(out, mesh, shape); err != nil {
		return errors.Wrap(err, "writing STL")
	}
	fmt.Printf("wrote %d triangles to %s\n", len(mesh.Triangles), outputPath)
	return nil
}
