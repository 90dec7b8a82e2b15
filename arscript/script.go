package arscript

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Block identifies one of the Arabic Unicode blocks recognized by this package.
type Block int8

// Arabic blocks, in code-point order.
const (
	BlockArabic Block = iota
	BlockArabicSupplement
	BlockArabicExtendedA
	BlockPresentationFormsA
	BlockPresentationFormsB
)

var blockNames = [...]string{
	"Arabic",
	"Arabic Supplement",
	"Arabic Extended-A",
	"Arabic Presentation Forms-A",
	"Arabic Presentation Forms-B",
}

func (b Block) String() string {
	if b < 0 || int(b) >= len(blockNames) {
		return "<none>"
	}
	return blockNames[b]
}

// BlockTables holds one range table per Arabic block, indexed by Block.
var BlockTables = [...]*unicode.RangeTable{
	{R16: []unicode.Range16{{Lo: 0x0600, Hi: 0x06ff, Stride: 1}}},
	{R16: []unicode.Range16{{Lo: 0x0750, Hi: 0x077f, Stride: 1}}},
	{R16: []unicode.Range16{{Lo: 0x08a0, Hi: 0x08ff, Stride: 1}}},
	{R16: []unicode.Range16{{Lo: 0xfb50, Hi: 0xfdff, Stride: 1}}},
	{R16: []unicode.Range16{{Lo: 0xfe70, Hi: 0xfeff, Stride: 1}}},
}

// Arabic is the union of all BlockTables.
var Arabic = rangetable.Merge(BlockTables[:]...)

// IsArabic reports whether r lies in one of the Arabic blocks.
func IsArabic(r rune) bool {
	return unicode.Is(Arabic, r)
}

// ContainsArabic reports whether at least one code-point of s is Arabic
// script. The scan stops at the first match. Invalid UTF-8 is never Arabic.
func ContainsArabic(s string) bool {
	for _, r := range s {
		if IsArabic(r) {
			return true
		}
	}
	return false
}

// BlockOf returns the Arabic block r belongs to. If r is not Arabic script,
// false is returned.
func BlockOf(r rune) (Block, bool) {
	for b, table := range BlockTables {
		if unicode.Is(table, r) {
			return Block(b), true
		}
	}
	return -1, false
}

// LTR is the class of code-points which may form an embedded left-to-right run:
// ASCII letters and digits, plus the punctuation found in handles, hashtags,
// URLs and numbers.
var LTR = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: '#', Hi: '#', Stride: 1},
		{Lo: '+', Hi: '+', Stride: 1},
		{Lo: '-', Hi: '/', Stride: 1}, // - . /
		{Lo: '0', Hi: ':', Stride: 1}, // digits and ':'
		{Lo: '@', Hi: 'Z', Stride: 1},
		{Lo: '_', Hi: '_', Stride: 1},
		{Lo: 'a', Hi: 'z', Stride: 1},
	},
	LatinOffset: 7,
}

// IsLTR reports whether r belongs to the LTR run class. Eastern Arabic-Indic
// digits are not part of the class.
func IsLTR(r rune) bool {
	if r >= 0x80 {
		return false
	}
	return unicode.Is(LTR, r)
}
