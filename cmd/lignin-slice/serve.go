package main

import (
	"github.com/chazu/lignin-slicer/internal/config"
	"github.com/chazu/lignin-slicer/internal/gcodegen"
	"github.com/chazu/lignin-slicer/internal/geom"
	"github.com/chazu/lignin-slicer/internal/logging"
	"github.com/chazu/lignin-slicer/internal/meshio"
	"github.com/chazu/lignin-slicer/internal/preview"
	"github.com/chazu/lignin-slicer/internal/slicepipeline"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var addr, configPath, meshPath string

	cmd := &cobra.Command{
		Use:   "serve <mesh-file>",
		Short: "Slice a mesh in the background and serve its progress over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meshPath = args[0]
			return runServe(meshPath, configPath, addr)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a print profile TOML file (required)")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to serve on")
	cmd.MarkFlagRequired("config")

	return cmd
}

func runServe(meshPath, configPath, addr string) error {
	job := logging.NewJob()

	profile, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "loading print profile")
	}
	mesh, err := meshio.Load(meshPath)
	if err != nil {
		return errors.Wrapf(err, "loading mesh %s", meshPath)
	}

	registry := preview.NewRegistry()
	server := preview.NewServer(registry)

	previewJob := registry.Start(*profile, estimateLayerCount(mesh, profile))
	job.Infof("job %s: serving progress on %s, watch /jobs/%s", previewJob.ID, addr, previewJob.ID)

	go func() {
		stack, err := slicepipeline.Slice(mesh, profile.Core(), slicepipeline.WithLayerProgress(func(i int) {
			registry.Advance(previewJob.ID)
		}))
		if err != nil {
			registry.Finish(previewJob.ID, nil, nil, err)
			job.Fatalf("slicing job %s: %v", previewJob.ID, err)
			return
		}

		buf := &discardWriter{}
		program, gerr := gcodegen.Write(buf, stack, profile)
		registry.Finish(previewJob.ID, stack, &program, gerr)
		job.Infof("job %s: finished, %d lines emitted", previewJob.ID, program.Lines)
	}()

	return server.ListenAndServe(addr)
}

// estimateLayerCount gives the HTTP status endpoint a rough layer count
// before slicing starts, by dividing the mesh's vertical extent by the
// configured layer height. The orchestrator's own zSchedule is the source
// of truth once slicing finishes; this is only for an early progress bar.
func estimateLayerCount(mesh *geom.Mesh, profile *config.PrintProfile) int {
	if mesh.IsEmpty() || profile.LayerHeight <= 0 {
		return 0
	}
	extent := mesh.Bounds.Max.Z - mesh.Bounds.Min.Z
	if extent <= 0 {
		return 0
	}
	return int(extent/profile.LayerHeight) + 1
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
