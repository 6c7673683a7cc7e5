package touchcli

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dansimau/touch/pkg/touch"
	"github.com/jessevdk/go-flags"
)

type touchFlags struct {
	AccessOnly       bool    `description:"Change only the access time"                              short:"a"`
	NoCreate         bool    `description:"Do not create the file if it does not exist"              short:"c"`
	Date             *string `description:"Use TIME (YYYY-MM-DDTHH:MM:SS) instead of the current time" short:"d" value-name:"TIME"`
	ModificationOnly bool    `description:"Change only the modification time"                        short:"m"`
	Reference        *string `description:"Use this file's times instead of the current time"        short:"r" value-name:"FILE"`
	Time             *string `description:"Same as -d"                                               short:"t" value-name:"TIME"`

	Verbose bool   `description:"Verbose output"                              long:"verbose" short:"v"`
	DryRun  bool   `description:"Don't make any changes, just show what will happen" long:"dry-run"`
	Config  string `description:"Path to config file"                         long:"config"  value-name:"PATH"`
	Version bool   `description:"Print version and exit"                      long:"version"`

	Args struct {
		File []string `positional-arg-name:"FILE"`
	} `positional-args:"yes"`
}

// Invocation is the immutable result of parsing the command line.
type Invocation struct {
	Options touch.Options

	Verbose     bool
	DryRun      bool
	ConfigPath  string
	ShowVersion bool
}

func newParser(f *touchFlags) *flags.Parser {
	parser := flags.NewParser(f, flags.HelpFlag)
	parser.Name = "touch"
	parser.Usage = "[OPTIONS] FILE"

	return parser
}

func usageText(parser *flags.Parser) string {
	var buf bytes.Buffer
	parser.WriteHelp(&buf)

	return buf.String()
}

// ParseArgs maps raw arguments (without the program name) to an Invocation.
// It has no side effects. Argument problems are returned as *UsageError.
func ParseArgs(args []string) (Invocation, error) {
	f := touchFlags{}
	parser := newParser(&f)

	if _, err := parser.ParseArgs(args); err != nil {
		flagsErr := &flags.Error{}
		if errors.As(err, &flagsErr) {
			return Invocation{}, &UsageError{
				msg:   flagsErr.Message,
				Usage: usageText(parser),
				Help:  flagsErr.Type == flags.ErrHelp,
			}
		}

		return Invocation{}, err
	}

	inv := Invocation{
		Verbose:     f.Verbose,
		DryRun:      f.DryRun,
		ConfigPath:  f.Config,
		ShowVersion: f.Version,
	}

	if f.Version {
		return inv, nil
	}

	switch len(f.Args.File) {
	case 0:
		return Invocation{}, &UsageError{msg: "the required argument `FILE` was not provided", Usage: usageText(parser)}
	case 1:
	default:
		return Invocation{}, &UsageError{msg: "only one FILE may be given", Usage: usageText(parser)}
	}

	explicit := f.Date
	if explicit == nil {
		explicit = f.Time
	}

	if explicit != nil && *explicit == "" {
		return Invocation{}, fmt.Errorf("%w: empty time", touch.ErrInvalidTimeFormat)
	}

	if f.Reference != nil && *f.Reference == "" {
		return Invocation{}, fmt.Errorf("%w: empty path", touch.ErrReferenceFileUnavailable)
	}

	inv.Options = touch.Options{
		TargetPath:       f.Args.File[0],
		AccessOnly:       f.AccessOnly,
		ModificationOnly: f.ModificationOnly,
		NoCreate:         f.NoCreate,
	}

	if explicit != nil {
		inv.Options.ExplicitTime = *explicit
	}

	if f.Reference != nil {
		inv.Options.ReferencePath = *f.Reference
	}

	return inv, nil
}

// withConfig applies config defaults. Flags can only switch settings on, so
// a default of true cannot be overridden from the command line.
func (inv Invocation) withConfig(cfg *Config) Invocation {
	if cfg.NoCreate {
		inv.Options.NoCreate = true
	}

	if cfg.Verbose {
		inv.Verbose = true
	}

	return inv
}
