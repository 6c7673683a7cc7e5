// Package log prints diagnostics to stderr when TOUCH_VERBOSE is set.
package log

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
)

// VerboseEnvVar enables Info and Dump output when non-empty.
const VerboseEnvVar = "TOUCH_VERBOSE"

func enabled() bool {
	return os.Getenv(VerboseEnvVar) != ""
}

func Info(msg ...any) {
	if enabled() {
		fmt.Fprintln(os.Stderr, msg...)
	}
}

// Dump pretty-prints values to stderr, e.g. a resolved plan.
func Dump(v ...any) {
	if enabled() {
		spew.Fdump(os.Stderr, v...)
	}
}
