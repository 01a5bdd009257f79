package main

import (
	"os"

	"github.com/chazu/lignin-slicer/internal/config"
	"github.com/chazu/lignin-slicer/internal/gcodegen"
	"github.com/chazu/lignin-slicer/internal/logging"
	"github.com/chazu/lignin-slicer/internal/meshio"
	"github.com/chazu/lignin-slicer/internal/slicepipeline"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func sliceCmd() *cobra.Command {
	var configPath, outputPath string

	cmd := &cobra.Command{
		Use:   "slice <mesh-file>",
		Short: "Slice an STL or 3MF mesh and write G-code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlice(args[0], configPath, outputPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a print profile TOML file (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "out.gcode", "path to write the resulting G-code")
	cmd.MarkFlagRequired("config")

	return cmd
}

func runSlice(meshPath, configPath, outputPath string) error {
	job := logging.NewJob()

	profile, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "loading print profile")
	}

	mesh, err := meshio.Load(meshPath)
	if err != nil {
		return errors.Wrapf(err, "loading mesh %s", meshPath)
	}
	job.Infof("loaded mesh with %d triangles", len(mesh.Triangles))

	stack, err := slicepipeline.Slice(mesh, profile.Core(), slicepipeline.WithLayerProgress(func(i int) {
		job.Infof("layer %d complete", i)
	}))
	if err != nil {
		return errors.Wrap(err, "slicing mesh")
	}
	for _, w := range stack.Warnings() {
		job.Warnf("%s", w.String())
	}
	job.Infof("sliced %d layers", len(stack.Layers))

	out, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", outputPath)
	}
	defer out.Close()

	program, err := gcodegen.Write(out, stack, profile)
	if err != nil {
		return errors.Wrap(err, "writing G-code")
	}
	job.Infof("wrote %d lines across %d layers to %s", program.Lines, program.Layers, outputPath)
	return nil
}
