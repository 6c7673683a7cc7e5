// Package touchcli provides the command-line interface for touch.
package touchcli

import (
	"errors"
	"fmt"
	"os"

	"github.com/dansimau/touch/pkg/log"
	"github.com/dansimau/touch/pkg/touch"
)

// Run executes the program with the specified arguments and returns the code
// the process should exit with.
func Run(args ...string) (exitCode int) {
	inv, err := ParseArgs(args)
	if err != nil {
		usageErr := &UsageError{}
		if errors.As(err, &usageErr) {
			if usageErr.Help {
				fmt.Fprint(os.Stderr, usageErr.Usage)
				return 0
			}

			fmt.Fprintf(os.Stderr, "%s\n\n%s", usageErr, usageErr.Usage)

			return 1
		}

		return printError(userError(err))
	}

	if inv.ShowVersion {
		fmt.Println(versionString())
		return 0
	}

	if err := execute(inv); err != nil {
		return printError(err)
	}

	return 0
}

func execute(inv Invocation) error {
	cfg, err := ReadConfig(inv.ConfigPath)
	if err != nil {
		return NewError(err.Error())
	}

	inv = inv.withConfig(cfg)

	if inv.Verbose {
		if err := os.Setenv(log.VerboseEnvVar, "1"); err != nil {
			return NewError("failed to set " + log.VerboseEnvVar + " environment variable")
		}
	}

	t := touch.New(clockSource)

	if inv.DryRun {
		plan, err := t.Plan(inv.Options)
		if err != nil {
			return userError(err)
		}

		log.Dump(plan)
		renderPlan(os.Stdout, plan)

		return nil
	}

	return userError(t.Touch(inv.Options))
}

// userError turns failures the user can act on into an Error so they are
// printed without a stack trace.
func userError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, touch.ErrInvalidTimeFormat) ||
		errors.Is(err, touch.ErrReferenceFileUnavailable) ||
		errors.Is(err, touch.ErrIO) {
		return NewError(err.Error())
	}

	return err
}

func printError(err error) int {
	cliErr := &Error{}
	if errors.As(err, &cliErr) {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	} else {
		// unexpected error so print stack trace, if there is one
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
	}

	return 1
}
