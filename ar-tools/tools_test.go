package main

import (
	"testing"

	"github.com/npillmayer/arabicfix/arfix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCodepoints(t *testing.T) {
	runes, err := parseCodepoints("U+0645, 0x0631 u+062D\t62A")
	require.NoError(t, err)
	assert.Equal(t, []rune{0x0645, 0x0631, 0x062d, 0x062a}, runes)
	for _, bad := range []string{"U+XYZ", "0x110000", "U+"} {
		_, err := parseCodepoints(bad)
		assert.Error(t, err, bad)
	}
	_, err = parseCodepointToken("  ")
	assert.Error(t, err)
}

func TestFormatCodepoints(t *testing.T) {
	assert.Equal(t, "U+200F U+0061 U+061C", formatCodepoints("\u200Fa\u061C"))
	assert.Equal(t, "", formatCodepoints(""))
}

func TestFixOptions(t *testing.T) {
	opts := fixOptions(arfix.DefaultOptions(), true, true, true)
	assert.Equal(t, arfix.Options{ConvertDigits: true}, opts)
	loaded := arfix.Options{ApplyOnlyIfArabic: true, PlatformFilter: true}
	assert.Equal(t, arfix.Options{ApplyOnlyIfArabic: true}, fixOptions(loaded, false, false, false),
		"platform filter is meaningless without a sender")
}

func TestInspectRows(t *testing.T) {
	rows := inspectRows("a\u0645\u061C\xff")
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Pos", "Code", "Name", "Bidi", "Block", "LTR"}, rows[0])
	assert.Equal(t, []string{"0", "U+0061", "LATIN SMALL LETTER A", "L", "", "yes"}, rows[1])
	assert.Equal(t, []string{"1", "U+0645", "ARABIC LETTER MEEM", "AL", "Arabic", ""}, rows[2])
	assert.Equal(t, "ARABIC LETTER MARK", rows[3][2])
	assert.Equal(t, "AL", rows[3][3])
	assert.Equal(t, []string{"5", "0xFF", "<invalid UTF-8>", "", "", ""}, rows[4])
}
