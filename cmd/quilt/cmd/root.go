package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/phanxgames/quilt"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "quilt",
	Short:         "Inspect texture-atlas manifests",
	Long:          "Inspect TexturePacker JSON and Starling XML atlas manifests: list entry names in case-insensitive sorted order, filter by prefix, and show per-entry region, trim frame, and rotation details.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "quilt:", err)
	}
	return err
}

func init() {
	rootCmd.AddCommand(namesCmd)
	rootCmd.AddCommand(infoCmd)
}

// loadManifest reads and parses a manifest file, choosing the parser by file
// extension, and indexes the records in a metadata-only atlas.
func loadManifest(path string) (*quilt.Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []quilt.RegionRecord
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		records, err = quilt.ParseTexturePackerJSON(data)
	case ".xml":
		records, err = quilt.ParseStarlingXML(data)
	default:
		return nil, fmt.Errorf("unsupported manifest extension %q (want .json or .xml)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	return quilt.NewAtlas(nil, records), nil
}
