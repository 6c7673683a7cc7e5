package touch_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dansimau/touch/pkg/testutil"
	"github.com/dansimau/touch/pkg/touch"
	"gotest.tools/v3/assert"
)

var (
	priorAccess       = time.Unix(1_200_000_000, 0)
	priorModification = time.Unix(1_300_000_000, 0)
	newPair           = touch.TimestampPair{
		Access:       time.Unix(1_400_000_000, 0),
		Modification: time.Unix(1_500_000_000, 0),
	}
)

func existingFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "target.txt")
	testutil.MustCreateWithTimes(t, path, priorAccess, priorModification)

	return path
}

func TestApply_BothSlots(t *testing.T) {
	t.Parallel()

	path := existingFile(t)

	assert.NilError(t, touch.Apply(path, newPair, false, false))

	got := testutil.MustStatTimes(t, path)
	assert.Assert(t, got.Equal(newPair), "%+v", got)
}

func TestApply_AccessOnly(t *testing.T) {
	t.Parallel()

	path := existingFile(t)

	assert.NilError(t, touch.Apply(path, newPair, true, false))

	got := testutil.MustStatTimes(t, path)
	assert.Assert(t, got.Access.Equal(newPair.Access), "%+v", got)
	assert.Assert(t, got.Modification.Equal(priorModification), "%+v", got)
}

func TestApply_ModificationOnly(t *testing.T) {
	t.Parallel()

	path := existingFile(t)

	assert.NilError(t, touch.Apply(path, newPair, false, true))

	got := testutil.MustStatTimes(t, path)
	assert.Assert(t, got.Access.Equal(priorAccess), "%+v", got)
	assert.Assert(t, got.Modification.Equal(newPair.Modification), "%+v", got)
}

func TestApply_BothRestrictionFlagsLeaveTimesUnchanged(t *testing.T) {
	t.Parallel()

	path := existingFile(t)

	assert.NilError(t, touch.Apply(path, newPair, true, true))

	got := testutil.MustStatTimes(t, path)
	assert.Assert(t, got.Equal(touch.TimestampPair{Access: priorAccess, Modification: priorModification}), "%+v", got)
}

func TestApply_CreatesMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "new.txt")

	assert.NilError(t, touch.Apply(path, newPair, false, false))

	fi, err := os.Stat(path)
	assert.NilError(t, err)
	assert.Assert(t, fi.Mode().IsRegular())
	assert.Equal(t, fi.Size(), int64(0))
	assert.Assert(t, testutil.MustStatTimes(t, path).Equal(newPair))
}

func TestApply_KeepsContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.txt")
	assert.NilError(t, os.WriteFile(path, []byte("hello"), 0o644))

	assert.NilError(t, touch.Apply(path, newPair, false, false))

	b, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Equal(t, string(b), "hello")
}

func TestApply_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := map[string]string{
		"directory":      dir,
		"missing parent": filepath.Join(dir, "missing", "file.txt"),
	}

	for name, path := range tests {
		err := touch.Apply(path, newPair, false, false)
		assert.Assert(t, errors.Is(err, touch.ErrIO), "%s: %v", name, err)

		pathErr := &os.PathError{}
		assert.Assert(t, errors.As(err, &pathErr), "%s: %v", name, err)
	}
}
