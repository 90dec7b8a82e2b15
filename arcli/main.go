/*
Command arcli is an interactive chat host for ArabicChatFix.

Every line typed is sent as a chat message by the current sender and
printed the way other participants would receive it, together with the
decision taken and a table of the resulting code-points. Lines starting
with a slash are commands:

	/arabicfix [reload|toggle]   administrative command of the plugin
	/as <name> [perm,...]        continue as another sender
	/status                      show current options
	/help [topic]                help on commands or marks
	/quit                        leave

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/arabicfix"
	"github.com/npillmayer/arabicfix/arconf"
	"github.com/npillmayer/arabicfix/argate"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
)

// tracer traces with key 'arabicfix.cli'
func tracer() tracing.Trace {
	return tracing.Select("arabicfix.cli")
}

var traceKeys = []string{
	"arabicfix",
	"arabicfix.cli",
	"arabicfix.fix",
	"arabicfix.gate",
	"arabicfix.config",
	"arabicfix.admin",
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Info"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	config := flag.String("config", arconf.DefaultFileName, "Configuration file, created if missing")
	sender := flag.String("sender", "steve", "Name of the sender")
	perms := flag.String("perms", "", "Comma separated permissions of the sender")
	bedrock := flag.String("bedrock", "", "Comma separated senders on the filtered platform")
	watch := flag.Bool("watch", false, "Reload configuration on change")
	lang := flag.String("lang", "ar", "Language of command replies")
	flag.Parse()
	setTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the ArabicChatFix chat host")
	//
	// set up plugin
	tag, err := language.Parse(*lang)
	if err != nil {
		tracer().Errorf("invalid language %q: %v", *lang, err)
		os.Exit(2)
	}
	platform := argate.NewPlatformSet(splitList(*bedrock)...)
	plugin, err := arabicfix.New(*config, platform, tag)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	//
	// set up REPL
	repl, err := readline.New("")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	defer repl.Close()
	intp := &Intp{plugin: plugin, repl: repl}
	intp.become(*sender, splitList(*perms))
	if *watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := plugin.Watch(ctx); err != nil {
				tracer().Errorf(err.Error())
			}
		}()
		pterm.Info.Printf("Watching %s for changes\n", *config)
	}
	//
	// start receiving messages
	pterm.Info.Println("Quit with <ctrl>D or /quit")
	switch *tlevel {
	case "Debug":
		setTraceLevel(tracing.LevelDebug)
	case "Info":
		setTraceLevel(tracing.LevelInfo)
	case "Error":
		setTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// splitList splits a comma separated list, dropping empty entries.
func splitList(s string) []string {
	var list []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
