// Package gocmdtester compiles a Go main package once per test binary and
// runs it as a subprocess, so tests can assert on real exit codes and output.
package gocmdtester

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dansimau/touch/pkg/xexec"
)

// cache stores compiled binaries keyed by absolute package directory.
var cache sync.Map // map[string]*binary

type binary struct {
	once sync.Once
	path string
	dir  string
	err  error
}

// CmdTester runs a compiled binary with a fixed set of options.
type CmdTester struct {
	t          *testing.T
	binaryPath string
	runConfig  *runConfig
}

// FromPath returns a CmdTester for the main package in mainPkgDir, compiling
// it on first use. Later calls for the same directory reuse the binary but
// get their own options.
//
//	tester := gocmdtester.FromPath(t, "../cmd/touch",
//	    gocmdtester.WithWorkingDir(t.TempDir()))
//	result := tester.Run("-c", "missing.txt")
func FromPath(t *testing.T, mainPkgDir string, opts ...Option) *CmdTester {
	t.Helper()

	absDir, err := filepath.Abs(mainPkgDir)
	if err != nil {
		t.Fatalf("failed to resolve package path: %v", err)
	}

	v, _ := cache.LoadOrStore(absDir, &binary{})
	bin := v.(*binary)

	bin.once.Do(func() {
		bin.dir, bin.path, bin.err = compile(absDir)
	})

	if bin.err != nil {
		t.Fatal(bin.err)
	}

	cfg := &runConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return &CmdTester{
		t:          t,
		binaryPath: bin.path,
		runConfig:  cfg,
	}
}

func compile(absDir string) (dir, binaryPath string, err error) {
	dir, err = os.MkdirTemp("", "gocmdtester-bin-")
	if err != nil {
		return "", "", fmt.Errorf("failed to create temp directory for binary: %w", err)
	}

	binaryPath = filepath.Join(dir, filepath.Base(absDir))

	if err := xexec.Command("go", "build", "-o", binaryPath, ".").
		WithWorkingDir(absDir).
		Run(); err != nil {
		_ = os.RemoveAll(dir)

		return "", "", fmt.Errorf("failed to compile %s: %w", absDir, err)
	}

	return dir, binaryPath, nil
}

// CleanupAll removes every compiled binary. Call it from TestMain after
// m.Run.
func CleanupAll() error {
	var errs []error

	cache.Range(func(key, value any) bool {
		bin := value.(*binary)
		if bin.dir != "" {
			if err := os.RemoveAll(bin.dir); err != nil {
				errs = append(errs, err)
			}
		}

		cache.Delete(key)

		return true
	})

	return errors.Join(errs...)
}

// BinaryPath returns the path to the compiled binary.
func (ct *CmdTester) BinaryPath() string {
	return ct.binaryPath
}

// Run executes the binary with args and captures its output.
func (ct *CmdTester) Run(args ...string) *Result {
	ct.t.Helper()

	env := os.Environ()
	for k, v := range ct.runConfig.env {
		env = append(env, k+"="+v)
	}

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd := xexec.Command(append([]string{ct.binaryPath}, args...)...).
		WithEnvVars(env).
		WithStdout(&stdoutBuf).
		WithStderr(&stderrBuf)

	if ct.runConfig.workingDir != "" {
		cmd.WithWorkingDir(ct.runConfig.workingDir)
	}

	exitCode := 0

	err := cmd.Run()
	if err != nil {
		exitErr := &exec.ExitError{}
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
	}

	return &Result{
		stdout:   stdoutBuf.String(),
		stderr:   stderrBuf.String(),
		exitCode: exitCode,
		err:      err,
	}
}
