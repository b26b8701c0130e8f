package core

// CheckpointEntry binds a validator factory to the height, per network,
// at which it becomes active. A negative height means "never active on
// that network" (§4.5).
type CheckpointEntry[T any] struct {
	Version    string
	MainHeight int64
	TestHeight int64
	AltHeight  int64
	Factory    func() T
}

func (e CheckpointEntry[T]) activationFor(network Network) int64 {
	switch network {
	case NetworkTest:
		return e.TestHeight
	case NetworkAlt:
		return e.AltHeight
	default:
		return e.MainHeight
	}
}

// CheckpointRegistry maps (height, network) to the checkpoint entry whose
// activation height is the rightmost one not exceeding height (C5). It is
// the single permitted way a kind's rule set changes over time; entries
// are immutable value objects constructed once and reused.
type CheckpointRegistry[T any] struct {
	entries []CheckpointEntry[T]
}

// NewCheckpointRegistry builds a registry from entries in ascending
// logical version order (not necessarily ascending activation height per
// network, since test/alt nets may reorder activations relative to main).
func NewCheckpointRegistry[T any](entries ...CheckpointEntry[T]) *CheckpointRegistry[T] {
	return &CheckpointRegistry[T]{entries: entries}
}

// Instance selects and constructs the validator active at height on
// network. It returns false if no entry has a non-negative activation at
// or below height.
func (r *CheckpointRegistry[T]) Instance(network Network, height Height) (T, bool) {
	var zero T
	if r == nil {
		return zero, false
	}
	h := int64(height)
	bestIdx := -1
	bestActivation := int64(-1)
	for i, e := range r.entries {
		a := e.activationFor(network)
		if a < 0 || a > h {
			continue
		}
		if bestIdx == -1 || a >= bestActivation {
			bestIdx = i
			bestActivation = a
		}
	}
	if bestIdx == -1 {
		return zero, false
	}
	return r.entries[bestIdx].Factory(), true
}
