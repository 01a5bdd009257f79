package main

import (
	"fmt"

	"github.com/chazu/lignin-slicer/internal/meshio"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <mesh-file>",
		Short: "Load a mesh and report whether it is well-formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
	return cmd
}

func runValidate(meshPath string) error {
	mesh, err := meshio.Load(meshPath)
	if err != nil {
		return errors.Wrapf(err, "loading mesh %s", meshPath)
	}
	if mesh.IsEmpty() {
		return fmt.Errorf("mesh %s has no triangles", meshPath)
	}
	b := mesh.Bounds
	if b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y || b.Max.Z <= b.Min.Z {
		return fmt.Errorf("mesh %s has a degenerate bounding box (zero extent on at least one axis)", meshPath)
	}

	fmt.Printf("%s is valid: %d triangles, %d vertices\n", meshPath, len(mesh.Triangles), len(mesh.Vertices))
	return nil
}
