package touch

import "fmt"

// Plan describes what Touch would do for a set of options without touching
// the filesystem.
type Plan struct {
	Target   string
	Exists   bool
	Decision Decision
	Pair     TimestampPair
	Slots    Slots

	// Current holds the target's timestamps when it exists.
	Current *TimestampPair
}

// Plan resolves the timestamps and the creation decision for opts. It reads
// from the filesystem but never writes to it.
func (t *Toucher) Plan(opts Options) (Plan, error) {
	pair, err := t.resolver.Resolve(opts)
	if err != nil {
		return Plan{}, err
	}

	exists, err := targetExists(opts.TargetPath)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{
		Target:   opts.TargetPath,
		Exists:   exists,
		Decision: Admit(opts, exists),
		Pair:     pair,
		Slots:    SelectSlots(opts.AccessOnly, opts.ModificationOnly),
	}

	if exists {
		current, err := StatTimes(opts.TargetPath)
		if err != nil {
			return Plan{}, fmt.Errorf("%w: %w", ErrIO, err)
		}

		plan.Current = &current
	}

	return plan, nil
}
