/*
Package arscript classifies code-points for the Arabic chat fix.

It answers two questions about single runes: does a rune belong to one of the
Arabic Unicode blocks handled by [ContainsArabic], and may a rune be part of
an embedded left-to-right run (see [IsLTR]). Both are total, side-effect free
predicates and safe for concurrent use.

Only the following blocks are considered Arabic script:

	U+0600–U+06FF  Arabic
	U+0750–U+077F  Arabic Supplement
	U+08A0–U+08FF  Arabic Extended-A
	U+FB50–U+FDFF  Arabic Presentation Forms-A
	U+FE70–U+FEFF  Arabic Presentation Forms-B

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package arscript
