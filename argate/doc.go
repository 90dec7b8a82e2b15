/*
Package argate decides whether a chat message is handed to the Arabic fix at
all, and holds the runtime state the decision depends on.

[State] stores the current [arfix.Options] together with the global enable
switch as one immutable [Snapshot]. Readers load a snapshot once per message;
administrative updates swap in a new snapshot atomically. No locks are held
while a message is processed.

[Gate] checks, in this order: the enable switch, the sender's bypass
permission, the platform filter and the Arabic-only switch. The first check
which fails lets the message pass unchanged.

The platform check asks a [PlatformClassifier]. Classifiers may be backed by
an optional integration which is not always present; errors (and panics) of a
classifier count as "not on the filtered platform".

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package argate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arabicfix.gate'
func tracer() tracing.Trace {
	return tracing.Select("arabicfix.gate")
}
