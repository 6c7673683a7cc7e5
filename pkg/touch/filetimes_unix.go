//go:build linux || darwin || freebsd || openbsd

package touch

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// accessTimeSupported reports whether StatTimes returns the real access time.
const accessTimeSupported = true

// StatTimes returns the access and modification times of path, following
// symlinks.
func StatTimes(path string) (TimestampPair, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return TimestampPair{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}

	return TimestampPair{
		Access:       time.Unix(st.Atim.Unix()),
		Modification: time.Unix(st.Mtim.Unix()),
	}, nil
}

// setTimes writes the selected slots with one utimensat call; the excluded
// slot is passed as UTIME_OMIT.
func setTimes(path string, pair TimestampPair, slots Slots) error {
	ts, err := timespecs(pair, slots)
	if err != nil {
		return &os.PathError{Op: "utimensat", Path: path, Err: err}
	}

	if err := unix.UtimesNanoAt(unix.AT_FDCWD, path, ts, 0); err != nil {
		return &os.PathError{Op: "utimensat", Path: path, Err: err}
	}

	return nil
}

// timespecs converts the selected slots from seconds and nanoseconds
// separately, so dates outside the int64 nanosecond range (before 1678 or
// after 2262) keep their value. ERANGE means the host time_t cannot hold it.
func timespecs(pair TimestampPair, slots Slots) ([]unix.Timespec, error) {
	ts := []unix.Timespec{
		{Nsec: unix.UTIME_OMIT},
		{Nsec: unix.UTIME_OMIT},
	}

	if slots.Has(AccessSlot) {
		spec, err := unix.TimeToTimespec(pair.Access)
		if err != nil {
			return nil, err
		}

		ts[0] = spec
	}

	if slots.Has(ModificationSlot) {
		spec, err := unix.TimeToTimespec(pair.Modification)
		if err != nil {
			return nil, err
		}

		ts[1] = spec
	}

	return ts, nil
}
