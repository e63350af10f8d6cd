package input

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// defaultKeybindsYAML ships the keybind set applied when
// session storage holds no `dullahan.keybinds` entry (spec §6.2).
const defaultKeybindsYAML = `
- "ctrl+shift+c=copy_to_clipboard"
- "ctrl+shift+v=paste_from_clipboard"
- "performable:ctrl+c=copy_to_clipboard"
- "ctrl+shift+l=clear_screen"
- "ctrl+shift+r=reset_terminal"
- "ctrl+shift+t=new_window"
- "ctrl+shift+w=close_window"
- "ctrl+shift+a=select_all"
- "escape=clear_selection"
- "shift+pageup=scroll:up,page"
- "shift+pagedown=scroll:down,page"
- "ctrl+shift+1=switch_window:1"
- "ctrl+shift+2=switch_window:2"
- "ctrl+tab=cycle_window:next"
- "ctrl+shift+tab=cycle_window:prev"
- "alt+left=focus_pane:left"
- "alt+right=focus_pane:right"
- "alt+up=focus_pane:up"
- "alt+down=focus_pane:down"
- "ctrl+shift+f=toggle_fullscreen"
- "ctrl+comma=open_settings"
`

// LoadDefaultKeybinds parses the bundled default keybind set.
func LoadDefaultKeybinds() ([]Keybind, []error) {
	var entries []string
	if err := yaml.Unmarshal([]byte(defaultKeybindsYAML), &entries); err != nil {
		return nil, []error{fmt.Errorf("input: decode default keybinds: %w", err)}
	}
	return ParseKeybindSet(entries)
}

// ParseKeybindSet parses a `dullahan.keybinds`-style list of keybind
// strings. A malformed entry is skipped, its error collected, and
// loading continues with the rest (spec §7 KEYBIND_PARSE_ERROR: "the
// offending entry is skipped; others continue to load").
func ParseKeybindSet(entries []string) ([]Keybind, []error) {
	var out []Keybind
	var errs []error
	for _, s := range entries {
		kb, err := ParseKeybind(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, kb)
	}
	return out, errs
}
