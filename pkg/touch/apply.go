package touch

import (
	"fmt"
	"os"
	"strings"

	"github.com/dansimau/touch/pkg/log"
)

// Slots is the set of timestamps written by Apply.
type Slots uint8

const (
	AccessSlot Slots = 1 << iota
	ModificationSlot

	NoSlots   Slots = 0
	BothSlots       = AccessSlot | ModificationSlot
)

// SelectSlots maps the restriction flags to the slots that get written. Each
// flag excludes the other timestamp, so setting both excludes everything.
func SelectSlots(accessOnly, modificationOnly bool) Slots {
	slots := NoSlots

	if !accessOnly {
		slots |= AccessSlot
	}

	if !modificationOnly {
		slots |= ModificationSlot
	}

	return slots
}

func (s Slots) Has(slot Slots) bool {
	return s&slot == slot
}

func (s Slots) String() string {
	if s == NoSlots {
		return "none"
	}

	names := []string{}
	if s.Has(AccessSlot) {
		names = append(names, "access")
	}

	if s.Has(ModificationSlot) {
		names = append(names, "modification")
	}

	return strings.Join(names, "+")
}

// Apply opens path for writing, creating it if needed, then writes the slots
// selected by accessOnly and modificationOnly from pair in a single call.
//
// Note that Apply always creates a missing file; callers honouring NoCreate
// must consult Admit first.
func Apply(path string, pair TimestampPair, accessOnly, modificationOnly bool) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o666)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	slots := SelectSlots(accessOnly, modificationOnly)
	if slots == NoSlots {
		log.Info("touch: both -a and -m given, leaving timestamps of", path, "unchanged")
		return nil
	}

	log.Info("touch: setting", slots.String(), "time of", path)

	if err := setTimes(path, pair, slots); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}
