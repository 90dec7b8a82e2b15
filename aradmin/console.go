package aradmin

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/npillmayer/arabicfix/arfix"
	"github.com/npillmayer/arabicfix/argate"
)

// CommandName is the name of the administrative command.
const CommandName = "arabicfix"

// ErrNoLoader is returned by Reload for consoles without a configuration source.
var ErrNoLoader = errors.New("no configuration source")

// CommandSender is a sender which can receive replies.
type CommandSender interface {
	argate.Sender
	SendMessage(msg string)
}

// OptionsLoader provides fresh options on reload.
type OptionsLoader interface {
	Load() (arfix.Options, error)
}

// Console executes administrative commands against a runtime state.
type Console struct {
	state   *argate.State
	loader  OptionsLoader
	printer *message.Printer
}

// NewConsole creates a console which replies in the supported language
// closest to lang.
func NewConsole(state *argate.State, loader OptionsLoader, lang language.Tag) *Console {
	return &Console{
		state:   state,
		loader:  loader,
		printer: printerFor(lang),
	}
}

// Execute runs command name with args for sender. It returns false if name is
// not the name of this command, leaving it to other handlers.
func (c *Console) Execute(sender CommandSender, name string, args []string) bool {
	if !strings.EqualFold(name, CommandName) {
		return false
	}
	if len(args) == 0 {
		c.reply(sender, msgUsage)
		return true
	}
	switch strings.ToLower(args[0]) {
	case "reload":
		if !c.authorized(sender, "reload") {
			return true
		}
		c.reload(sender)
	case "toggle":
		if !c.authorized(sender, "toggle") {
			return true
		}
		if c.state.Toggle() {
			c.reply(sender, msgEnabled)
		} else {
			c.reply(sender, msgDisabled)
		}
	default:
		c.reply(sender, msgUsage)
	}
	return true
}

// Reload loads new options into the state. On error the previous options
// are kept.
func (c *Console) Reload() error {
	if c.loader == nil {
		return ErrNoLoader
	}
	opts, err := c.loader.Load()
	if err != nil {
		tracer().Errorf("reload failed: %v", err)
		return err
	}
	c.state.SetOptions(opts)
	return nil
}

func (c *Console) reload(sender CommandSender) {
	if err := c.Reload(); err != nil {
		c.reply(sender, msgReloadFailed, err)
		return
	}
	tracer().Infof("configuration reloaded by %s", sender.ID())
	c.reply(sender, msgReloaded)
}

func (c *Console) authorized(sender CommandSender, sub string) bool {
	if sender.HasPermission(argate.PermAdmin) {
		return true
	}
	tracer().Infof("%s may not %s", sender.ID(), sub)
	c.reply(sender, msgNoPermission)
	return false
}

func (c *Console) reply(sender CommandSender, key message.Reference, args ...interface{}) {
	sender.SendMessage(c.printer.Sprintf(key, args...))
}
