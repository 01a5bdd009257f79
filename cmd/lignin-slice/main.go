// Command lignin-slice turns an STL or 3MF mesh into G-code.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lignin-slice",
		Short: "Slice triangle meshes into layer-by-layer G-code",
	}
	root.AddCommand(sliceCmd())
	root.AddCommand(demoCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(infoCmd())
	root.AddCommand(validateCmd())
	return root
}
