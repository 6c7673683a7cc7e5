// Package xexec wraps exec.Cmd so that the commands the test harness runs
// (go build, the touch binary) can be echoed and their stderr kept on the
// returned error.
package xexec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
	"gopkg.in/alessio/shellescape.v1"
)

// VerboseEnvVar makes every command print itself before running, like sh -x.
const VerboseEnvVar = "XEXEC_VERBOSE"

type Cmd struct {
	*exec.Cmd

	verbose bool
}

// Command creates a command whose output goes to the current process's
// stdout/stderr unless overridden.
func Command(args ...string) *Cmd {
	c := &Cmd{Cmd: exec.Command(args[0], args[1:]...)}
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	c.verbose = os.Getenv(VerboseEnvVar) != ""

	return c
}

// String returns the command line quoted so it can be pasted into a shell.
func (c *Cmd) String() string {
	quotedArgs := make([]string, 0, len(c.Args))
	for _, arg := range c.Args {
		quotedArgs = append(quotedArgs, shellescape.Quote(arg))
	}

	return strings.Join(quotedArgs, " ")
}

func (c *Cmd) debugPrintCmd() {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintf(os.Stderr, "\033[1;30m+ %s\033[0m\n", c.String())
	} else {
		fmt.Fprintf(os.Stderr, "+ %s\n", c.String())
	}
}

// Run is like exec.Cmd.Run but always records stderr on the returned
// *exec.ExitError.
func (c *Cmd) Run() error {
	if c.verbose {
		c.debugPrintCmd()
	}

	var stderr bytes.Buffer

	if c.Stderr != nil {
		c.Stderr = io.MultiWriter(&stderr, c.Stderr)
	} else {
		c.Stderr = &stderr
	}

	if err := c.Cmd.Run(); err != nil {
		ee := &exec.ExitError{}
		if errors.As(err, &ee) {
			ee.Stderr = stderr.Bytes()
		}

		return err
	}

	return nil
}
