package keymap

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/andyrewlee/marquee/internal/config"
)

// Action identifies a configurable keybinding.
type Action string

const (
	ActionQuit   Action = "quit"
	ActionPause  Action = "pause"
	ActionCopy   Action = "copy"
	ActionReload Action = "reload"
	ActionTheme  Action = "theme"
	ActionBorder Action = "border"
	ActionHelp   Action = "help"
)

type bindingDef struct {
	action Action
	keys   []string
	desc   string
}

var defaults = []bindingDef{
	{action: ActionQuit, keys: []string{"q", "ctrl+c"}, desc: "quit"},
	{action: ActionPause, keys: []string{"space", "p"}, desc: "pause"},
	{action: ActionCopy, keys: []string{"y"}, desc: "copy"},
	{action: ActionReload, keys: []string{"r"}, desc: "reload"},
	{action: ActionTheme, keys: []string{"t"}, desc: "theme"},
	{action: ActionBorder, keys: []string{"b"}, desc: "border"},
	{action: ActionHelp, keys: []string{"?"}, desc: "help"},
}

// KeyMap defines all keybindings for the application.
type KeyMap struct {
	Quit   key.Binding
	Pause  key.Binding
	Copy   key.Binding
	Reload key.Binding
	Theme  key.Binding
	Border key.Binding
	Help   key.Binding
}

// New builds a keymap from defaults, applying any user overrides.
func New(cfg config.KeyMapConfig) KeyMap {
	b := make(map[Action]key.Binding, len(defaults))
	for _, def := range defaults {
		b[def.action] = bindingFromDef(cfg, def)
	}
	return KeyMap{
		Quit:   b[ActionQuit],
		Pause:  b[ActionPause],
		Copy:   b[ActionCopy],
		Reload: b[ActionReload],
		Theme:  b[ActionTheme],
		Border: b[ActionBorder],
		Help:   b[ActionHelp],
	}
}

func bindingFromDef(cfg config.KeyMapConfig, def bindingDef) key.Binding {
	keys, ok := cfg.BindingFor(string(def.action))
	if !ok || len(keys) == 0 {
		keys = def.keys
	}
	helpKey := strings.Join(keys, "/")
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKey, def.desc),
	)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Reload, k.Copy},
		{k.Theme, k.Border, k.Help, k.Quit},
	}
}

// PrimaryKey returns the first key in the binding, if present.
func PrimaryKey(binding key.Binding) string {
	keys := binding.Keys()
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}
