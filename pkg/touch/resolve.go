package touch

import (
	"fmt"
	"runtime"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/dansimau/touch/pkg/log"
)

// Resolver turns Options into a concrete TimestampPair.
type Resolver struct {
	clock clock.Clock
}

func NewResolver(c clock.Clock) *Resolver {
	return &Resolver{clock: c}
}

// Resolve picks the timestamps to apply. The first matching source wins:
// ExplicitTime, then ReferencePath, then the current time. The same pair is
// returned regardless of AccessOnly/ModificationOnly; slot selection happens
// in Apply.
func (r *Resolver) Resolve(opts Options) (TimestampPair, error) {
	switch {
	case opts.ExplicitTime != "":
		t, err := ParseTime(opts.ExplicitTime)
		if err != nil {
			return TimestampPair{}, err
		}

		log.Info("touch: using explicit time", t.Format(time.RFC3339))

		return TimestampPair{Access: t, Modification: t}, nil

	case opts.ReferencePath != "":
		if !accessTimeSupported {
			return TimestampPair{}, fmt.Errorf("%w: access times cannot be read on %s", ErrReferenceFileUnavailable, runtime.GOOS)
		}

		pair, err := StatTimes(opts.ReferencePath)
		if err != nil {
			return TimestampPair{}, fmt.Errorf("%w: %w", ErrReferenceFileUnavailable, err)
		}

		log.Info("touch: using times from", opts.ReferencePath)

		return pair, nil
	}

	now := r.clock.Now()

	return TimestampPair{Access: now, Modification: now}, nil
}

// ParseTime parses s as a TimeFormat string in the local time zone.
func ParseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimeFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DDTHH:MM:SS)", ErrInvalidTimeFormat, s)
	}

	return t, nil
}
