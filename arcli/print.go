package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/arabicfix/arfix"
	"github.com/npillmayer/arabicfix/arscript"
	"github.com/pterm/pterm"
)

// legacyColors maps the host's '§' colour codes to terminal colours.
var legacyColors = map[rune]pterm.Color{
	'0': pterm.FgBlack,
	'1': pterm.FgBlue,
	'2': pterm.FgGreen,
	'3': pterm.FgCyan,
	'4': pterm.FgRed,
	'5': pterm.FgMagenta,
	'6': pterm.FgYellow,
	'7': pterm.FgGray,
	'8': pterm.FgDarkGray,
	'9': pterm.FgLightBlue,
	'a': pterm.FgLightGreen,
	'b': pterm.FgLightCyan,
	'c': pterm.FgLightRed,
	'd': pterm.FgLightMagenta,
	'e': pterm.FgLightYellow,
	'f': pterm.FgWhite,
	'r': pterm.FgDefault,
}

// renderLegacy replaces '§' colour codes in s by terminal colours.
// Formatting codes (bold, italic, ...) are dropped.
func renderLegacy(s string) string {
	var sb strings.Builder
	color := pterm.FgDefault
	var seg strings.Builder
	flush := func() {
		if seg.Len() > 0 {
			sb.WriteString(color.Sprint(seg.String()))
			seg.Reset()
		}
	}
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '§' || i+1 == len(rs) {
			seg.WriteRune(rs[i])
			continue
		}
		flush()
		i++
		if c, ok := legacyColors[unicode.ToLower(rs[i])]; ok {
			color = c
		}
	}
	flush()
	return sb.String()
}

// codepointRows lists the code-points of s, one row per rune, with a header.
func codepointRows(s string) [][]string {
	data := [][]string{
		{"Pos", "Code", "Class"},
	}
	pos := 0
	for _, r := range s {
		data = append(data, []string{
			fmt.Sprintf("%d", pos),
			fmt.Sprintf("%U", r),
			classOf(r),
		})
		pos++
	}
	return data
}

func classOf(r rune) string {
	switch r {
	case arfix.ALM:
		return "ALM"
	case arfix.RLM:
		return "RLM"
	case unicode.ReplacementChar:
		return "invalid"
	}
	if b, ok := arscript.BlockOf(r); ok {
		return b.String()
	}
	if arscript.IsLTR(r) {
		return "LTR"
	}
	return "-"
}

func printCodepoints(s string) {
	if s == "" {
		return
	}
	pterm.DefaultTable.WithHasHeader().WithData(codepointRows(s)).Render()
}
