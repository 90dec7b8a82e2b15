package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/arabicfix/arconf"
	"github.com/npillmayer/arabicfix/arfix"
	"github.com/npillmayer/arabicfix/argate"
	"github.com/thatisuday/commando"
)

func runFixCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	input, err := parseInput(args["text"], flags["codepoints"], os.Stdin)
	if err != nil {
		fatalf("%v", err)
	}
	opts := arfix.DefaultOptions()
	if path := mustFlagString(flags["config"], "config"); path != "" {
		if opts, err = arconf.Load(path); err != nil {
			fatalf("%v", err)
		}
	}
	opts = fixOptions(opts,
		mustFlagBool(flags["digits"], "digits"),
		mustFlagBool(flags["no-wrap"], "no-wrap"),
		mustFlagBool(flags["always"], "always"),
	)
	gate := argate.NewGate(argate.NewState(opts), nil)
	out, d := gate.Process(nil, input)
	fmt.Println(out)
	if mustFlagBool(flags["verbose"], "verbose") {
		fmt.Printf("Options: %s\n", opts)
		fmt.Printf("Decision: %s\n", d)
		fmt.Printf("Input:  %s\n", formatCodepoints(input))
		fmt.Printf("Output: %s\n", formatCodepoints(out))
	}
}

// fixOptions applies command line switches to opts. The platform filter is
// always off, as there is no sender.
func fixOptions(opts arfix.Options, digits, noWrap, always bool) arfix.Options {
	if digits {
		opts.ConvertDigits = true
	}
	if noWrap {
		opts.WrapWithDirectionMarks = false
	}
	if always {
		opts.ApplyOnlyIfArabic = false
	}
	opts.PlatformFilter = false
	return opts
}
