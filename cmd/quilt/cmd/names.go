package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var namesPrefix string

var namesCmd = &cobra.Command{
	Use:   "names <manifest>",
	Short: "List entry names in sorted order",
	Long:  "List every entry name in the manifest, case-insensitively sorted. With --prefix, only names beginning with the given literal (case-sensitive) prefix are shown.",
	Args:  cobra.ExactArgs(1),
	RunE:  runNames,
}

func init() {
	namesCmd.Flags().StringVar(&namesPrefix, "prefix", "", "only list names beginning with this prefix")
}

func runNames(cmd *cobra.Command, args []string) error {
	atlas, err := loadManifest(args[0])
	if err != nil {
		return err
	}
	for _, name := range atlas.Names(namesPrefix, nil) {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
