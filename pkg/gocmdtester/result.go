package gocmdtester

import "strings"

// Result holds the output and exit code from running the binary.
type Result struct {
	stdout   string
	stderr   string
	exitCode int

	// err is set when the binary could not be started or exited non-zero.
	err error
}

func (r *Result) Stdout() string {
	return r.stdout
}

func (r *Result) Stderr() string {
	return r.stderr
}

func (r *Result) ExitCode() int {
	return r.exitCode
}

func (r *Result) Err() error {
	return r.err
}

// Success reports a zero exit code.
func (r *Result) Success() bool {
	return r.err == nil && r.exitCode == 0
}

func (r *Result) StdoutContains(s string) bool {
	return strings.Contains(r.stdout, s)
}

func (r *Result) StderrContains(s string) bool {
	return strings.Contains(r.stderr, s)
}
