package touch

// Decision is the outcome of the creation policy.
type Decision int

const (
	// Proceed means the target is (or will be) created and its timestamps
	// written.
	Proceed Decision = iota

	// SkipSilently means nothing is created or written and the invocation
	// still succeeds.
	SkipSilently
)

func (d Decision) String() string {
	switch d {
	case Proceed:
		return "proceed"
	case SkipSilently:
		return "skip"
	default:
		return "unknown"
	}
}

// Admit decides whether the touch goes ahead. Only a missing target combined
// with NoCreate is skipped.
func Admit(opts Options, exists bool) Decision {
	if opts.NoCreate && !exists {
		return SkipSilently
	}

	return Proceed
}
