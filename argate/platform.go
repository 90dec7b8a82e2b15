package argate

import (
	"errors"
)

// PlatformClassifier tells whether a sender uses the alternate client profile
// the platform filter is about (e.g., Bedrock clients connected through a
// proxy). Implementations may fail if their backing service is not available.
type PlatformClassifier interface {
	IsOnFilteredPlatform(senderID string) (bool, error)
}

// ErrPlatformUnavailable may be returned by classifiers which have no backing
// service to ask.
var ErrPlatformUnavailable = errors.New("platform classification unavailable")

// NoPlatform is the default classifier. Nobody is on the filtered platform.
type NoPlatform struct{}

// IsOnFilteredPlatform is part of interface PlatformClassifier.
func (NoPlatform) IsOnFilteredPlatform(string) (bool, error) {
	return false, nil
}

// ClassifierFunc adapts a function to interface PlatformClassifier.
type ClassifierFunc func(senderID string) (bool, error)

// IsOnFilteredPlatform is part of interface PlatformClassifier.
func (f ClassifierFunc) IsOnFilteredPlatform(senderID string) (bool, error) {
	return f(senderID)
}

// PlatformSet is a static classifier: senders with IDs in the set are on the
// filtered platform.
type PlatformSet map[string]struct{}

// NewPlatformSet creates a PlatformSet from a list of sender IDs.
func NewPlatformSet(ids ...string) PlatformSet {
	set := make(PlatformSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// IsOnFilteredPlatform is part of interface PlatformClassifier.
func (set PlatformSet) IsOnFilteredPlatform(senderID string) (bool, error) {
	_, ok := set[senderID]
	return ok, nil
}

// onFilteredPlatform asks pc and fails open: errors and panics of the
// classifier result in false.
func onFilteredPlatform(pc PlatformClassifier, senderID string) (on bool) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("platform classifier panicked for %q: %v", senderID, r)
			on = false
		}
	}()
	on, err := pc.IsOnFilteredPlatform(senderID)
	if err != nil {
		tracer().Errorf("platform lookup for %q failed: %v", senderID, err)
		return false
	}
	return on
}
