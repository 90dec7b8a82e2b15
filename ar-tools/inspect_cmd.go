package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/npillmayer/arabicfix/arfix"
	"github.com/npillmayer/arabicfix/arscript"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/runenames"
)

func runInspectCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	input, err := parseInput(args["text"], flags["codepoints"], os.Stdin)
	if err != nil {
		fatalf("%v", err)
	}
	if input == "" {
		fatalf("nothing to inspect")
	}
	pterm.DefaultTable.WithHasHeader().WithData(inspectRows(input)).Render()
	runs := arfix.LTRRuns(input)
	fmt.Printf("Arabic: %v, LTR runs: %d\n", arscript.ContainsArabic(input), len(runs))
	for _, run := range runs {
		fmt.Printf("  [%d:%d] %s\n", run.Start, run.End, input[run.Start:run.End])
	}
}

// inspectRows tabulates the code-points of s, starting with a header row.
// Positions are byte offsets.
func inspectRows(s string) [][]string {
	data := [][]string{
		{"Pos", "Code", "Name", "Bidi", "Block", "LTR"},
	}
	for pos, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[pos:]); size == 1 {
				data = append(data, []string{fmt.Sprintf("%d", pos), fmt.Sprintf("0x%02X", s[pos]),
					"<invalid UTF-8>", "", "", ""})
				continue
			}
		}
		block := ""
		if b, ok := arscript.BlockOf(r); ok {
			block = b.String()
		}
		ltr := ""
		if arscript.IsLTR(r) {
			ltr = "yes"
		}
		data = append(data, []string{
			fmt.Sprintf("%d", pos),
			fmt.Sprintf("%U", r),
			runeName(r),
			bidiClass(r).String(),
			block,
			ltr,
		})
	}
	return data
}

func runeName(r rune) string {
	if name := runenames.Name(r); name != "" {
		return name
	}
	return "<unnamed>"
}

func bidiClass(r rune) bidi.Class {
	props, _ := bidi.LookupRune(r)
	return props.Class()
}
