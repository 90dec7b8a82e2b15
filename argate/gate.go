package argate

import (
	"slices"

	"github.com/npillmayer/arabicfix/arfix"
	"github.com/npillmayer/arabicfix/arscript"
)

// Permissions checked by this module.
const (
	PermBypass = "arabicfix.bypass" // messages of the holder are never changed
	PermAdmin  = "arabicfix.admin"  // may reload and toggle
)

// Sender is the author of a chat message or an administrative command.
type Sender interface {
	ID() string
	HasPermission(perm string) bool
}

// Player is a plain Sender with a fixed set of permissions.
type Player struct {
	Name        string
	Permissions []string
}

// ID is part of interface Sender.
func (p Player) ID() string {
	return p.Name
}

// HasPermission is part of interface Sender.
func (p Player) HasPermission(perm string) bool {
	return slices.Contains(p.Permissions, perm)
}

// Decision is the outcome of a gate check.
type Decision int8

// Decisions, in the order the gate checks for them.
const (
	PassDisabled Decision = iota // fix is switched off
	PassBypass                   // sender holds the bypass permission
	PassPlatform                 // platform filter on, sender not on filtered platform
	PassNoArabic                 // Arabic-only and no Arabic script in message
	Transformed                  // message handed to arfix.Fix
)

var decisionNames = [...]string{
	"pass:disabled", "pass:bypass", "pass:platform", "pass:no-arabic", "transformed",
}

func (d Decision) String() string {
	if d < 0 || int(d) >= len(decisionNames) {
		return "<invalid>"
	}
	return decisionNames[d]
}

// Gate decides whether messages get fixed.
type Gate struct {
	state    *State
	platform PlatformClassifier
}

// NewGate creates a gate reading from state. If platform is nil, NoPlatform
// is used.
func NewGate(state *State, platform PlatformClassifier) *Gate {
	if platform == nil {
		platform = NoPlatform{}
	}
	return &Gate{state: state, platform: platform}
}

// State returns the state the gate reads from.
func (g *Gate) State() *State {
	return g.state
}

// Decide checks whether msg of sender should be fixed, using the options of snap.
func (g *Gate) Decide(snap Snapshot, sender Sender, msg string) Decision {
	if !snap.Enabled {
		return PassDisabled
	}
	if sender != nil && sender.HasPermission(PermBypass) {
		return PassBypass
	}
	if snap.Options.PlatformFilter {
		id := ""
		if sender != nil {
			id = sender.ID()
		}
		if !onFilteredPlatform(g.platform, id) {
			return PassPlatform
		}
	}
	if snap.Options.ApplyOnlyIfArabic && !arscript.ContainsArabic(msg) {
		return PassNoArabic
	}
	return Transformed
}

// Process returns the message as it should be delivered, together with the
// decision taken. Process never fails; at worst msg is returned unchanged.
func (g *Gate) Process(sender Sender, msg string) (string, Decision) {
	snap := g.state.Load()
	d := g.Decide(snap, sender, msg)
	tracer().Debugf("gate decision for %q: %s", msg, d)
	if d != Transformed {
		return msg, d
	}
	return arfix.Fix(msg, snap.Options), d
}
