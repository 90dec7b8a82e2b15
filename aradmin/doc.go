/*
Package aradmin implements the administrative command of the Arabic chat fix.

The command is named "arabicfix" and knows two sub-commands:

	/arabicfix reload   re-read the configuration
	/arabicfix toggle   switch the fix on or off for everybody

Both require permission "arabicfix.admin". Without arguments, or with an
unknown sub-command, a usage line is sent back. Replies use the legacy '§'
colour codes of the chat host and are localized; Arabic is the default.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package aradmin

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arabicfix.admin'
func tracer() tracing.Trace {
	return tracing.Select("arabicfix.admin")
}
