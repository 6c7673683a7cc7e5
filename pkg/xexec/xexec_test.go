package xexec_test

import (
	"bytes"
	"errors"
	"os/exec"
	"testing"

	"github.com/dansimau/touch/pkg/xexec"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"
)

func TestString_QuotesArgs(t *testing.T) {
	t.Parallel()

	cmd := xexec.Command("touch", "-d", "2020-01-01T00:00:00", "my file.txt")
	assert.Equal(t, cmd.String(), "touch -d 2020-01-01T00:00:00 'my file.txt'")
}

func TestRun_CapturesStderrOnExitError(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer

	err := xexec.Command("sh", "-c", "echo oops >&2; exit 3").
		WithStdout(nil).
		WithStderr(&stderr).
		Run()

	ee := &exec.ExitError{}
	assert.Assert(t, errors.As(err, &ee))
	assert.Equal(t, ee.ExitCode(), 3)
	assert.Assert(t, cmp.Contains(string(ee.Stderr), "oops"))
	assert.Assert(t, cmp.Contains(stderr.String(), "oops"))
}
