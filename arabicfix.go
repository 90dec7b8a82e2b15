package arabicfix

import (
	"context"

	"golang.org/x/text/language"

	"github.com/npillmayer/arabicfix/aradmin"
	"github.com/npillmayer/arabicfix/arconf"
	"github.com/npillmayer/arabicfix/arfix"
	"github.com/npillmayer/arabicfix/argate"
)

// ChatEvent is a chat message on its way from a sender to the other
// participants. A handler may replace Message; Cancelled events will not be
// delivered by the host.
type ChatEvent struct {
	Sender    argate.Sender
	Message   string
	Cancelled bool
}

// Plugin connects the fix to a chat host.
type Plugin struct {
	state   *argate.State
	gate    *argate.Gate
	console *aradmin.Console
	config  string // path of the configuration file, may be empty
}

// New creates a plugin configured from the YAML file at configPath. If the
// file does not exist, it is created with default settings first.
// Platform may be nil if no platform filtering is available. Replies to
// administrative commands are given in the supported language closest to lang.
func New(configPath string, platform argate.PlatformClassifier, lang language.Tag) (*Plugin, error) {
	if _, err := arconf.SaveDefault(configPath); err != nil {
		return nil, err
	}
	src := arconf.Source{Path: configPath}
	opts, err := src.Load()
	if err != nil {
		return nil, err
	}
	p := newPlugin(opts, platform, src, lang)
	p.config = configPath
	tracer().Infof("ArabicChatFix enabled.")
	return p, nil
}

// NewWithOptions creates a plugin without a configuration file. Reloading is
// not possible for it.
func NewWithOptions(opts arfix.Options, platform argate.PlatformClassifier, lang language.Tag) *Plugin {
	p := newPlugin(opts, platform, nil, lang)
	tracer().Infof("ArabicChatFix enabled.")
	return p
}

func newPlugin(opts arfix.Options, platform argate.PlatformClassifier,
	loader aradmin.OptionsLoader, lang language.Tag) *Plugin {
	//
	state := argate.NewState(opts)
	return &Plugin{
		state:   state,
		gate:    argate.NewGate(state, platform),
		console: aradmin.NewConsole(state, loader, lang),
	}
}

// State returns the runtime state of the plugin.
func (p *Plugin) State() *argate.State {
	return p.state
}

// OnChat fixes the message of ev in place, if the gate lets it through.
// Cancelled events are left alone and reported as not handled.
func (p *Plugin) OnChat(ev *ChatEvent) (d argate.Decision, handled bool) {
	if ev == nil || ev.Cancelled {
		return d, false
	}
	ev.Message, d = p.gate.Process(ev.Sender, ev.Message)
	return d, true
}

// OnCommand executes an administrative command. It returns false if name
// is not a command of this plugin.
func (p *Plugin) OnCommand(sender aradmin.CommandSender, name string, args []string) bool {
	return p.console.Execute(sender, name, args)
}

// Reload re-reads the configuration file.
func (p *Plugin) Reload() error {
	return p.console.Reload()
}

// Watch reloads the configuration whenever the file changes, until ctx is
// cancelled. It returns arconf.ErrNoConfigPath for plugins created by
// NewWithOptions.
func (p *Plugin) Watch(ctx context.Context) error {
	w, err := arconf.NewWatcher(p.config, func() {
		if err := p.Reload(); err == nil {
			tracer().Infof("configuration reloaded after change of %s", p.config)
		}
	})
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

// Disable switches the fix off.
func (p *Plugin) Disable() {
	p.state.SetEnabled(false)
	tracer().Infof("ArabicChatFix disabled.")
}
