package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/arabicfix/arconf"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("ar-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for testing the Arabic chat fix and inspecting bidi text.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("fix").
		SetDescription("Fix a chat message for left-to-right clients and print the result.\n" +
			"Quote the message if it contains commas; '-' reads it from stdin.").
		SetShortDescription("fix a message").
		AddArgument("text...", "message to fix", "").
		AddFlag("digits,d", "convert ASCII digits to Eastern Arabic-Indic digits", commando.Bool, nil).
		AddFlag("no-wrap,n", "do not wrap the result in RIGHT-TO-LEFT MARKs", commando.Bool, nil).
		AddFlag("always,a", "fix messages without Arabic script, too", commando.Bool, nil).
		AddFlag("config,f", "take options from configuration file", commando.String, "-").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+0627,U+0644)", commando.String, "-").
		AddFlag("verbose,V", "print options, decision and code-points", commando.Bool, nil).
		SetAction(runFixCommand)

	commando.
		Register("inspect").
		SetDescription("Print a table of the code-points of a message: name, bidi class, Arabic block and LTR run class.").
		SetShortDescription("inspect code-points").
		AddArgument("text...", "message to inspect", "").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+0627,U+0644)", commando.String, "-").
		SetAction(runInspectCommand)

	commando.
		Register("config").
		SetDescription("Print the options in effect for a configuration file.").
		SetShortDescription("configuration").
		AddArgument("file", "configuration file path", arconf.DefaultFileName).
		AddFlag("init,i", "write the default configuration if the file does not exist", commando.Bool, nil).
		AddFlag("verbose,V", "print options in short form", commando.Bool, nil).
		SetAction(runConfigCommand)

	commando.Parse(nil)
}

// parseInput returns the message to work on: either the text argument, the
// code-points given by flag, or stdin for text "-".
func parseInput(textArg commando.ArgValue, cpFlag commando.FlagValue, stdin io.Reader) (string, error) {
	cp, err := cpFlag.GetString()
	if err != nil {
		return "", fmt.Errorf("invalid --codepoints flag: %w", err)
	}
	cp = strings.TrimSpace(cp)
	if cp == "-" {
		cp = ""
	}
	if cp != "" {
		runes, err := parseCodepoints(cp)
		if err != nil {
			return "", err
		}
		return string(runes), nil
	}
	if textArg.Value == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("cannot read message: %w", err)
		}
		return strings.TrimRight(string(b), "\r\n"), nil
	}
	return textArg.Value, nil
}

func parseCodepoints(spec string) ([]rune, error) {
	tokens := splitCSVSpace(spec)
	runes := make([]rune, 0, len(tokens))
	for _, token := range tokens {
		r, err := parseCodepointToken(token)
		if err != nil {
			return nil, err
		}
		runes = append(runes, r)
	}
	return runes, nil
}

func parseCodepointToken(token string) (rune, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errors.New("empty codepoint token")
	}
	hex := token
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", token, err)
	}
	if u > 0x10ffff {
		return 0, fmt.Errorf("codepoint %q out of range", token)
	}
	return rune(u), nil
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// formatCodepoints prints s as a space separated list of code-points.
func formatCodepoints(s string) string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("%U", r))
	}
	return strings.Join(parts, " ")
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	if s = strings.TrimSpace(s); s == "-" {
		return ""
	}
	return s
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "ar-tools: "+format+"\n", args...)
	os.Exit(1)
}
