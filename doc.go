/*
Package arabicfix makes Arabic chat messages readable on clients which
render text strictly left-to-right.

Such clients show Arabic letters in reverse order. The fix is to reverse a
message before it is sent, so that the client's wrong rendering shows it the
right way round. Embedded Latin words, handles, URLs and numbers would then
come out mirrored as well. They are isolated with an ARABIC LETTER MARK
(U+061C) before reversal, and the whole message is optionally wrapped in
RIGHT-TO-LEFT MARKs (U+200F).

The work is split into packages:

▪︎ arscript detects Arabic script and classifies LTR run characters.

▪︎ arfix holds the text pipeline: digit mapping, LTR run isolation,
code-point reversal and direction wrapping.

▪︎ argate decides per message whether the pipeline runs, and holds the
runtime state (options and the enable switch).

▪︎ arconf reads the YAML configuration and watches it for changes.

▪︎ aradmin implements the administrative 'arabicfix' command.

This package ties them together as a [Plugin] for a chat host, which
delivers [ChatEvent]s and commands.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package arabicfix

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arabicfix'
func tracer() tracing.Trace {
	return tracing.Select("arabicfix")
}
