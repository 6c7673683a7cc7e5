// Package testutil holds helpers shared by the touch test suites.
package testutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/dansimau/touch/pkg/touch"
)

// CaptureOutput temporarily overrides os.Stdout and os.Stderr, runs fn and
// returns what was written. If fn calls os.Exit the streams are not restored.
func CaptureOutput(fn func()) (stdout string, stderr string, err error) {
	prevStdout := os.Stdout
	prevStderr := os.Stderr

	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return "", "", err
	}

	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		stdoutR.Close()
		stdoutW.Close()

		return "", "", err
	}

	os.Stdout = stdoutW
	os.Stderr = stderrW

	defer func() {
		os.Stdout = prevStdout
		os.Stderr = prevStderr
	}()

	type captured struct {
		out string
		err error
	}

	drain := func(r io.Reader, c chan<- captured) {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, r)
		c <- captured{out: buf.String(), err: err}
	}

	stdoutC := make(chan captured, 1)
	stderrC := make(chan captured, 1)

	go drain(stdoutR, stdoutC)
	go drain(stderrR, stderrC)

	fn()

	stdoutW.Close()
	stderrW.Close()

	outRes := <-stdoutC
	errRes := <-stderrC

	stdoutR.Close()
	stderrR.Close()

	if outRes.err != nil {
		return outRes.out, errRes.out, outRes.err
	}

	return outRes.out, errRes.out, errRes.err
}

// WithEnv clears the current environment and sets it to the provided vars. It
// returns a function to restore the env to its previous values.
func WithEnv(vars ...string) func() {
	prevEnv := os.Environ()
	os.Clearenv()

	for _, v := range vars {
		os.Setenv(parseEnvVar(v))
	}

	return func() {
		os.Clearenv()
		for _, v := range prevEnv {
			os.Setenv(parseEnvVar(v))
		}
	}
}

// WithTempWorkingDir runs fn with the working directory switched to a fresh
// temporary directory, which is removed when the test ends.
func WithTempWorkingDir(t *testing.T, fn func()) {
	t.Helper()

	prevDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	defer os.Chdir(prevDir)

	fn()
}

// MustCreateWithTimes writes an empty file at path and sets its access and
// modification times.
func MustCreateWithTimes(t *testing.T, path string, atime, mtime time.Time) {
	t.Helper()

	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := os.Chtimes(path, atime, mtime); err != nil {
		t.Fatal(err)
	}
}

// MustStatTimes returns the access and modification times of path.
func MustStatTimes(t *testing.T, path string) touch.TimestampPair {
	t.Helper()

	pair, err := touch.StatTimes(path)
	if err != nil {
		t.Fatal(err)
	}

	return pair
}

// parseEnvVar parses an env var string e.g. "foo=bar" and returns the
// key/value components. It panics if the input string is invalid.
func parseEnvVar(s string) (key, value string) {
	// Empty strings are possible in the go stdlib to represent deleted or
	// duplicate values.
	if s == "" {
		return "", ""
	}

	k, v, ok := strings.Cut(s, "=")
	if !ok {
		panic(fmt.Sprintf("invalid env var: %s", s))
	}

	return k, v
}
