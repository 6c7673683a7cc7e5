package test

import (
	"os"
	"testing"
	"time"

	"github.com/dansimau/touch/pkg/testutil"
	"github.com/dansimau/touch/pkg/touchcli"
	"gotest.tools/v3/assert"
)

// runTouch runs the CLI in-process and returns its exit code and stderr.
func runTouch(t *testing.T, args ...string) (exitCode int, stderr string) {
	t.Helper()

	_, stderr, err := testutil.CaptureOutput(func() {
		exitCode = touchcli.Run(args...)
	})
	assert.NilError(t, err)

	return exitCode, stderr
}

func mustNotExist(t *testing.T, path string) {
	t.Helper()

	_, err := os.Stat(path)
	assert.Assert(t, os.IsNotExist(err), "expected %s not to exist: %v", path, err)
}

func localTime(s string) time.Time {
	tm, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local)
	if err != nil {
		panic(err)
	}

	return tm
}
