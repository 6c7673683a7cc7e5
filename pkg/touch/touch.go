// Package touch implements the timestamp-update logic of touch(1): resolving
// the access and modification times to set, deciding whether a missing target
// gets created, and writing the selected timestamps.
package touch

import (
	"errors"
	"fmt"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/dansimau/touch/pkg/fsutil"
	"github.com/dansimau/touch/pkg/log"
)

// TimeFormat is the layout accepted for explicit times (-d and -t). Times are
// interpreted in the local time zone.
const TimeFormat = "2006-01-02T15:04:05"

var (
	ErrInvalidTimeFormat        = errors.New("invalid time format")
	ErrReferenceFileUnavailable = errors.New("reference file unavailable")
	ErrIO                       = errors.New("cannot touch file")
)

// Options describes a single touch invocation. The zero value touches nothing;
// TargetPath must be set.
type Options struct {
	TargetPath string

	// AccessOnly excludes the modification time from the update.
	AccessOnly bool

	// ModificationOnly excludes the access time from the update.
	ModificationOnly bool

	// NoCreate turns a missing target into a silent no-op.
	NoCreate bool

	// ExplicitTime, when non-empty, is a TimeFormat string used for both
	// timestamps. It takes precedence over ReferencePath.
	ExplicitTime string

	// ReferencePath, when non-empty, names a file whose timestamps are copied.
	ReferencePath string
}

// TimestampPair holds the access and modification times to apply.
type TimestampPair struct {
	Access       time.Time
	Modification time.Time
}

// Equal reports whether both timestamps match to the nanosecond.
func (p TimestampPair) Equal(other TimestampPair) bool {
	return p.Access.Equal(other.Access) && p.Modification.Equal(other.Modification)
}

type Toucher struct {
	resolver *Resolver
}

// New returns a Toucher that takes the current time from c.
func New(c clock.Clock) *Toucher {
	return &Toucher{resolver: NewResolver(c)}
}

// Touch runs opts against the filesystem using the wall clock.
func Touch(opts Options) error {
	return New(clock.NewClock()).Touch(opts)
}

// Touch resolves the timestamps for opts, creates the target if allowed and
// writes the selected timestamps. Resolution errors abort before anything on
// disk is changed.
func (t *Toucher) Touch(opts Options) error {
	plan, err := t.Plan(opts)
	if err != nil {
		return err
	}

	if plan.Decision == SkipSilently {
		log.Info("touch:", opts.TargetPath, "does not exist, not creating")
		return nil
	}

	return Apply(opts.TargetPath, plan.Pair, opts.AccessOnly, opts.ModificationOnly)
}

// targetExists wraps fsutil.FileExists so that stat failures other than
// "does not exist" are reported as ErrIO.
func targetExists(path string) (bool, error) {
	exists, err := fsutil.FileExists(path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return exists, nil
}
