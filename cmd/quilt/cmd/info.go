package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <manifest> <name>",
	Short: "Show one entry's region, frame, and rotation",
	Args:  cobra.ExactArgs(2),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	atlas, err := loadManifest(args[0])
	if err != nil {
		return err
	}
	name := args[1]

	region, ok := atlas.Region(name)
	if !ok {
		return fmt.Errorf("no entry named %q in %s", name, args[0])
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "name:    %s\n", name)
	fmt.Fprintf(out, "region:  x=%g y=%g w=%g h=%g\n", region.X, region.Y, region.Width, region.Height)
	if frame, ok := atlas.Frame(name); ok {
		fmt.Fprintf(out, "frame:   x=%g y=%g w=%g h=%g\n", frame.X, frame.Y, frame.Width, frame.Height)
	} else {
		fmt.Fprintf(out, "frame:   none (untrimmed)\n")
	}
	fmt.Fprintf(out, "rotated: %t\n", atlas.Rotation(name))
	return nil
}
