package quilt

import (
	"fmt"
	"log"
)

// globalDebug gates the package's diagnostic checks and stderr logging.
// Off by default; flip it with SetDebug during development.
var globalDebug bool

// SetDebug enables or disables debug diagnostics: Texture lookup misses are
// logged, and using an Atlas after Dispose panics with a descriptive message
// instead of misbehaving silently.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugLogMiss logs a failed Texture lookup to stderr in debug mode.
func debugLogMiss(name string) {
	if globalDebug {
		log.Printf("quilt: atlas texture %q not found", name)
	}
}

// debugCheckDisposed panics when an operation touches a disposed Atlas.
// Only called in debug mode; release builds skip this entirely and
// use-after-dispose is a caller contract violation.
func debugCheckDisposed(a *Atlas, op string) {
	if a.disposed {
		panic(fmt.Sprintf("quilt debug: %s on disposed atlas", op))
	}
}
