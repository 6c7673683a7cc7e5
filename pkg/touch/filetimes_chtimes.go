//go:build !linux && !darwin && !freebsd && !openbsd

package touch

import (
	"fmt"
	"math"
	"os"
	"time"
)

var (
	minChtimesTime = time.Unix(0, math.MinInt64)
	maxChtimesTime = time.Unix(0, math.MaxInt64)
)

// chtimes is os.Chtimes with the excluded slot passed as the zero time.
// os.Chtimes converts through UnixNano, so times it cannot represent are
// rejected rather than wrapped.
func chtimes(path string, pair TimestampPair, slots Slots) error {
	var atime, mtime time.Time

	if slots.Has(AccessSlot) {
		if err := checkChtimesRange(pair.Access); err != nil {
			return &os.PathError{Op: "chtimes", Path: path, Err: err}
		}

		atime = pair.Access
	}

	if slots.Has(ModificationSlot) {
		if err := checkChtimesRange(pair.Modification); err != nil {
			return &os.PathError{Op: "chtimes", Path: path, Err: err}
		}

		mtime = pair.Modification
	}

	return os.Chtimes(path, atime, mtime)
}

func checkChtimesRange(t time.Time) error {
	if t.Before(minChtimesTime) || t.After(maxChtimesTime) {
		return fmt.Errorf("time %s out of range", t.Format(TimeFormat))
	}

	return nil
}
