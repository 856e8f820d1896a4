// quilt inspects texture-atlas manifests: sorted name listings, prefix
// filtering, and per-entry region/frame/rotation details.
package main

import (
	"os"

	"github.com/phanxgames/quilt/cmd/quilt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
