//go:build !linux && !darwin && !freebsd && !openbsd && !windows

package touch

import "os"

// accessTimeSupported is false here: there is no portable way to read the
// access time, so -r is refused instead of copying the wrong value.
const accessTimeSupported = false

// StatTimes returns the modification time in both slots on platforms where
// the access time is not exposed through a common stat structure.
func StatTimes(path string) (TimestampPair, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return TimestampPair{}, err
	}

	return TimestampPair{Access: fi.ModTime(), Modification: fi.ModTime()}, nil
}

func setTimes(path string, pair TimestampPair, slots Slots) error {
	return chtimes(path, pair, slots)
}
