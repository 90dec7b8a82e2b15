package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/arabicfix/arconf"
	"github.com/thatisuday/commando"
)

func runConfigCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	path := strings.TrimSpace(args["file"].Value)
	if path == "" {
		fatalf("configuration file path is required")
	}
	if mustFlagBool(flags["init"], "init") {
		created, err := arconf.SaveDefault(path)
		if err != nil {
			fatalf("%v", err)
		}
		if created {
			fmt.Printf("Wrote default configuration to %s\n", path)
		} else {
			fmt.Printf("Keeping existing configuration %s\n", path)
		}
	}
	opts, err := arconf.Load(path)
	if err != nil {
		fatalf("%v", err)
	}
	data, err := arconf.Marshal(opts)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("# effective options of %s\n%s", path, data)
	if mustFlagBool(flags["verbose"], "verbose") {
		fmt.Printf("# %s\n", opts)
	}
}
