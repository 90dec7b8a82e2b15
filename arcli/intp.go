package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/arabicfix"
	"github.com/npillmayer/arabicfix/argate"
	"github.com/pterm/pterm"
)

// hostSender is the sender typing into the REPL.
type hostSender struct {
	argate.Player
}

// SendMessage is part of interface aradmin.CommandSender.
func (s *hostSender) SendMessage(msg string) {
	pterm.Println(renderLegacy(msg))
}

// Intp is our interpreter object
type Intp struct {
	plugin *arabicfix.Plugin
	repl   *readline.Instance
	sender *hostSender
}

func (intp *Intp) String() string {
	if intp == nil || intp.sender == nil {
		return "()"
	}
	if len(intp.sender.Permissions) == 0 {
		return fmt.Sprintf("( %s )", intp.sender.Name)
	}
	return fmt.Sprintf("( %s %v )", intp.sender.Name, intp.sender.Permissions)
}

// become switches to another sender.
func (intp *Intp) become(name string, perms []string) {
	intp.sender = &hostSender{Player: argate.Player{Name: name, Permissions: perms}}
	if intp.repl != nil {
		intp.repl.SetPrompt(name + " > ")
	}
	tracer().Infof("sending as %s", intp)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if !strings.HasPrefix(line, "/") {
			intp.chat(line)
			continue
		}
		cmd := parseCommand(line)
		err, quit := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// chat sends line as a chat message and shows what arrives.
func (intp *Intp) chat(line string) {
	ev := &arabicfix.ChatEvent{Sender: intp.sender, Message: line}
	d, _ := intp.plugin.OnChat(ev)
	pterm.Printf("<%s> %s\n", intp.sender.Name, ev.Message)
	pterm.Info.Printf("decision: %s\n", d)
	printCodepoints(ev.Message)
}

// --- Commands ---------------------------------------------------------

// Op is a parsed command line.
type Op struct {
	code int
	name string
	args []string
}

const (
	QUIT int = iota
	HELP
	AS
	STATUS
	PLUGIN // everything else is handed to the plugin
)

var opMap = map[string]int{
	"quit":   QUIT,
	"exit":   QUIT,
	"help":   HELP,
	"as":     AS,
	"status": STATUS,
}

func parseCommand(line string) *Op {
	fields := strings.Fields(strings.TrimPrefix(line, "/"))
	if len(fields) == 0 {
		return &Op{code: HELP}
	}
	op := &Op{name: fields[0], args: fields[1:]}
	code, ok := opMap[strings.ToLower(op.name)]
	if !ok {
		code = PLUGIN
	}
	op.code = code
	tracer().Debugf("parsed command: %v", fields)
	return op
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:   quitOp,
	HELP:   helpOp,
	AS:     asOp,
	STATUS: statusOp,
	PLUGIN: pluginOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		return fmt.Errorf("unknown command code: %d", op.code), false
	}
	return f(intp, op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	return nil, true
}

func asOp(intp *Intp, op *Op) (error, bool) {
	if len(op.args) == 0 {
		return fmt.Errorf("usage: /as <name> [perm,...]"), false
	}
	var perms []string
	if len(op.args) > 1 {
		perms = splitList(strings.Join(op.args[1:], ","))
	}
	intp.become(op.args[0], perms)
	pterm.Info.Printf("now sending as %s\n", intp)
	return nil, false
}

func statusOp(intp *Intp, op *Op) (error, bool) {
	snap := intp.plugin.State().Load()
	data := [][]string{
		{"Setting", "Value"},
		{"enabled", fmt.Sprintf("%v", snap.Enabled)},
		{"apply_only_if_arabic", fmt.Sprintf("%v", snap.Options.ApplyOnlyIfArabic)},
		{"wrap_with_direction_marks", fmt.Sprintf("%v", snap.Options.WrapWithDirectionMarks)},
		{"convert_to_eastern_digits", fmt.Sprintf("%v", snap.Options.ConvertDigits)},
		{"only_bedrock_players", fmt.Sprintf("%v", snap.Options.PlatformFilter)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func pluginOp(intp *Intp, op *Op) (error, bool) {
	if !intp.plugin.OnCommand(intp.sender, op.name, op.args) {
		return fmt.Errorf("unknown command /%s, try /help", op.name), false
	}
	return nil, false
}
