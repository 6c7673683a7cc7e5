package touch

import (
	"os"
	"syscall"
	"time"
)

const accessTimeSupported = true

// StatTimes returns the access and modification times of path.
func StatTimes(path string) (TimestampPair, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return TimestampPair{}, err
	}

	attr, ok := fi.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return TimestampPair{Access: fi.ModTime(), Modification: fi.ModTime()}, nil
	}

	return TimestampPair{
		Access:       time.Unix(0, attr.LastAccessTime.Nanoseconds()),
		Modification: time.Unix(0, attr.LastWriteTime.Nanoseconds()),
	}, nil
}

func setTimes(path string, pair TimestampPair, slots Slots) error {
	return chtimes(path, pair, slots)
}
