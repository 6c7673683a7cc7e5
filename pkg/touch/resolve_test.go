package touch_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/dansimau/touch/pkg/testutil"
	"github.com/dansimau/touch/pkg/touch"
	testifyassert "github.com/stretchr/testify/assert"
	"gotest.tools/v3/assert"
)

var fixedNow = time.Date(2023, 6, 15, 12, 30, 45, 0, time.Local)

func TestResolve_ExplicitTime(t *testing.T) {
	t.Parallel()

	r := touch.NewResolver(fakeclock.NewFakeClock(fixedNow))

	for _, s := range []string{"2020-01-01T00:00:00", "1999-12-31T23:59:59", "2038-01-19T03:14:08"} {
		want, err := time.ParseInLocation(touch.TimeFormat, s, time.Local)
		assert.NilError(t, err)

		pair, err := r.Resolve(touch.Options{TargetPath: "x", ExplicitTime: s})
		assert.NilError(t, err)
		assert.Assert(t, pair.Access.Equal(want), s)
		assert.Assert(t, pair.Modification.Equal(want), s)
	}
}

func TestResolve_ExplicitTime_Invalid(t *testing.T) {
	t.Parallel()

	r := touch.NewResolver(fakeclock.NewFakeClock(fixedNow))

	for _, s := range []string{
		"2020-01-01 00:00:00",
		"2020-01-01",
		"2020-13-01T00:00:00",
		"2020-01-01T00:00:00Z",
		"yesterday",
	} {
		_, err := r.Resolve(touch.Options{TargetPath: "x", ExplicitTime: s})
		assert.Assert(t, errors.Is(err, touch.ErrInvalidTimeFormat), "%q: %v", s, err)
	}
}

func TestResolve_ExplicitTimeWinsOverReference(t *testing.T) {
	t.Parallel()

	ref := filepath.Join(t.TempDir(), "ref.txt")
	testutil.MustCreateWithTimes(t, ref, time.Unix(1_000_000_000, 0), time.Unix(1_100_000_000, 0))

	r := touch.NewResolver(fakeclock.NewFakeClock(fixedNow))

	pair, err := r.Resolve(touch.Options{
		TargetPath:    "x",
		ExplicitTime:  "2020-01-01T00:00:00",
		ReferencePath: ref,
	})
	assert.NilError(t, err)

	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)
	assert.Assert(t, pair.Equal(touch.TimestampPair{Access: want, Modification: want}))
}

func TestResolve_ReferenceFile(t *testing.T) {
	t.Parallel()

	ref := filepath.Join(t.TempDir(), "ref.txt")
	atime := time.Unix(1_000_000_000, 123_456_789)
	mtime := time.Unix(1_100_000_000, 0)
	testutil.MustCreateWithTimes(t, ref, atime, mtime)

	r := touch.NewResolver(fakeclock.NewFakeClock(fixedNow))

	pair, err := r.Resolve(touch.Options{TargetPath: "x", ReferencePath: ref})
	assert.NilError(t, err)
	assert.Assert(t, pair.Equal(testutil.MustStatTimes(t, ref)))
	assert.Assert(t, pair.Modification.Equal(mtime))
}

func TestResolve_ReferenceFileMissing(t *testing.T) {
	t.Parallel()

	r := touch.NewResolver(fakeclock.NewFakeClock(fixedNow))

	_, err := r.Resolve(touch.Options{TargetPath: "x", ReferencePath: filepath.Join(t.TempDir(), "nope")})
	assert.Assert(t, errors.Is(err, touch.ErrReferenceFileUnavailable), err)
	assert.Assert(t, errors.Is(err, fs.ErrNotExist), err)
}

func TestResolve_Now(t *testing.T) {
	t.Parallel()

	pair, err := touch.NewResolver(fakeclock.NewFakeClock(fixedNow)).Resolve(touch.Options{TargetPath: "x"})
	assert.NilError(t, err)
	assert.Assert(t, pair.Equal(touch.TimestampPair{Access: fixedNow, Modification: fixedNow}))

	pair, err = touch.NewResolver(clock.NewClock()).Resolve(touch.Options{TargetPath: "x"})
	assert.NilError(t, err)
	testifyassert.WithinDuration(t, time.Now(), pair.Access, 2*time.Second)
	testifyassert.WithinDuration(t, time.Now(), pair.Modification, 2*time.Second)
}
