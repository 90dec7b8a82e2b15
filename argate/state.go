package argate

import (
	"sync/atomic"

	"github.com/npillmayer/arabicfix/arfix"
)

// Snapshot is an immutable view of the runtime configuration.
type Snapshot struct {
	Options arfix.Options
	Enabled bool // global enable switch, flipped by the toggle command
}

// State holds the current Snapshot. It is safe for concurrent use; every
// reader observes either the snapshot before or after an update.
type State struct {
	snap atomic.Pointer[Snapshot]
}

// NewState creates a state with the given options and the fix enabled.
func NewState(opts arfix.Options) *State {
	st := &State{}
	st.snap.Store(&Snapshot{Options: opts, Enabled: true})
	return st
}

// Load returns the current snapshot.
func (st *State) Load() Snapshot {
	return *st.snap.Load()
}

// SetOptions replaces the options as a whole. The enable switch is kept.
func (st *State) SetOptions(opts arfix.Options) {
	st.update(func(s Snapshot) Snapshot {
		s.Options = opts
		return s
	})
	tracer().Infof("options set to %v", opts)
}

// SetEnabled sets the global enable switch.
func (st *State) SetEnabled(on bool) {
	st.update(func(s Snapshot) Snapshot {
		s.Enabled = on
		return s
	})
}

// Toggle flips the global enable switch and returns its new value.
func (st *State) Toggle() bool {
	s := st.update(func(s Snapshot) Snapshot {
		s.Enabled = !s.Enabled
		return s
	})
	tracer().Infof("arabic fix enabled = %v", s.Enabled)
	return s.Enabled
}

func (st *State) update(f func(Snapshot) Snapshot) Snapshot {
	for {
		old := st.snap.Load()
		next := f(*old)
		if st.snap.CompareAndSwap(old, &next) {
			return next
		}
	}
}
