/*
Package arconf reads the configuration of the Arabic chat fix.

The configuration is a flat YAML document with four boolean keys:

	apply_only_if_arabic: true        # only touch messages containing Arabic script
	wrap_with_direction_marks: true   # surround fixed messages with RLM
	convert_to_eastern_digits: false  # 0-9 → ٠-٩
	only_bedrock_players: false       # only fix messages of alternate-client players

Missing keys take their default values. [SaveDefault] writes a commented
default file if none exists yet; [Watcher] calls back whenever the file has
been written, so hosts may reload without an explicit command.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package arconf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arabicfix.config'
func tracer() tracing.Trace {
	return tracing.Select("arabicfix.config")
}
