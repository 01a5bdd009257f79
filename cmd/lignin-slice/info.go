package main

import (
	"fmt"

	"github.com/chazu/lignin-slicer/internal/meshio"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func infoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <mesh-file>",
		Short: "Print triangle count and bounding box for a mesh file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
	return cmd
}

func runInfo(meshPath string) error {
	mesh, err := meshio.Load(meshPath)
	if err != nil {
		return errors.Wrapf(err, "loading mesh %s", meshPath)
	}

	fmt.Printf("file: %s\n", meshPath)
	fmt.Printf("triangles: %d\n", len(mesh.Triangles))
	fmt.Printf("vertices: %d\n", len(mesh.Vertices))

	if mesh.IsEmpty() {
		fmt.Println("mesh has no geometry")
		return nil
	}

	b := mesh.Bounds
	fmt.Printf("bounds: (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	fmt.Printf("dimensions: %.3f x %.3f x %.3f mm\n",
		b.Max.X-b.Min.X, b.Max.Y-b.Min.Y, b.Max.Z-b.Min.Z)
	return nil
}
