package aradmin

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	msgUsage        = "usage"
	msgNoPermission = "no permission"
	msgReloaded     = "reloaded"
	msgReloadFailed = "reload failed: %v"
	msgEnabled      = "enabled"
	msgDisabled     = "disabled"
)

// Languages lists the languages replies are available in. The first one is
// the fallback.
var Languages = []language.Tag{language.Arabic, language.English}

var replies = map[language.Tag]map[string]string{
	language.Arabic: {
		msgUsage:        "§aArabicChatFix: §f/arabicfix reload أو /arabicfix toggle",
		msgNoPermission: "§cما عندك صلاحية.",
		msgReloaded:     "§aتم إعادة تحميل الإعدادات.",
		msgReloadFailed: "§cفشل تحميل الإعدادات: %v",
		msgEnabled:      "§eArabicChatFix §aمفعل§e.",
		msgDisabled:     "§eArabicChatFix §cموقّف§e.",
	},
	language.English: {
		msgUsage:        "§aArabicChatFix: §f/arabicfix reload or /arabicfix toggle",
		msgNoPermission: "§cYou do not have permission.",
		msgReloaded:     "§aConfiguration reloaded.",
		msgReloadFailed: "§cCould not reload configuration: %v",
		msgEnabled:      "§eArabicChatFix §aenabled§e.",
		msgDisabled:     "§eArabicChatFix §cdisabled§e.",
	},
}

var (
	replyCatalog = buildCatalog()
	matcher      = language.NewMatcher(Languages)
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(Languages[0]))
	for tag, msgs := range replies {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err) // static content
			}
		}
	}
	return b
}

// printerFor returns a printer for the supported language closest to lang.
func printerFor(lang language.Tag) *message.Printer {
	_, inx, _ := matcher.Match(lang)
	return message.NewPrinter(Languages[inx], message.Catalog(replyCatalog))
}
