/*
Package arfix reorders mixed Arabic/Latin chat text for display by clients
which do not implement the Unicode bidirectional algorithm.

The entry point is [Fix]. It composes four steps, each exported on its own:

  - [MapDigits] converts ASCII digits to Eastern Arabic-Indic digits (optional),
  - [IsolateLTRRuns] puts an Arabic Letter Mark in front of every embedded
    left-to-right run,
  - [ReverseCodepoints] reverses the text code-point by code-point,
  - [WrapDirection] surrounds the result with Right-to-Left Marks (optional).

Digit conversion happens before run isolation. Converted digits are no longer
members of the LTR class (see package arscript) and therefore are not isolated
but reversed like Arabic letters.

All functions are pure and may be called concurrently. They work on runes,
not on bytes; invalid UTF-8 bytes are carried through as opaque units.
Reversal does not respect grapheme clusters: combining marks end up in front
of their base characters.

Hosts which process text as streams may use [NewTransformer], which adapts
[Fix] to golang.org/x/text/transform.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package arfix

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arabicfix.fix'
func tracer() tracing.Trace {
	return tracing.Select("arabicfix.fix")
}

// Directional formatting characters inserted by the pipeline.
const (
	ALM = '\u061C' // ARABIC LETTER MARK
	RLM = '\u200F' // RIGHT-TO-LEFT MARK
)
