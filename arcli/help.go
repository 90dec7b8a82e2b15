package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	topic := ""
	if len(op.args) > 0 {
		topic = op.args[0]
	}
	help(topic)
	return nil, false
}

func help(topic string) {
	tracer().Debugf("help %v", topic)
	switch strings.ToLower(topic) {
	case "marks", "mark", "alm", "rlm":
		pterm.Info.Println("Direction Marks")
		pterm.Println(`
	Messages are reversed before they are sent, as the receiving
	clients render everything left-to-right.
	Latin words, handles, URLs and numbers are preceded by an
	ARABIC LETTER MARK (U+061C) before reversal:
	+--------+----------------------------------+
	| ALM    | U+061C, before every LTR run     |
	| RLM    | U+200F, around the whole message |
	+--------+----------------------------------+
	The code-point table printed after each message shows where
	the marks went.
	`)
	case "arabicfix", "admin":
		pterm.Info.Println("Administrative Command")
		pterm.Println(`
	/arabicfix reload   re-read the configuration file
	/arabicfix toggle   switch the fix on or off
	Both need permission 'arabicfix.admin'. Senders holding
	'arabicfix.bypass' never have their messages changed.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	<text>                    send a chat message
	/arabicfix [sub-command]  plugin command, see '/help arabicfix'
	/as <name> [perm,...]     continue as another sender
	/status                   show current options
	/help [marks|arabicfix]   this text or a topic
	/quit                     leave
	`)
	}
}
