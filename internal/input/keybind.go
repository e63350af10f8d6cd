package input

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Modifiers is the four-flag modifier state a keybind or key event
// carries (spec §4.4 "all four modifier flags must match exactly").
type Modifiers struct {
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool
}

// Keybind is one parsed entry from a keybind-config string.
type Keybind struct {
	Performable bool
	Mods        Modifiers
	Key         string
	Action      Action
	Raw         string // the source string, for logging/round-trip tests
}

var modifierAliases = map[string]string{
	"ctrl": "ctrl", "control": "ctrl",
	"alt": "alt", "opt": "alt", "option": "alt",
	"shift": "shift",
	"meta": "meta", "super": "meta", "cmd": "meta", "command": "meta", "win": "meta", "windows": "meta",
}

var specialKeyNames = map[string]string{
	"enter": "enter", "return": "enter",
	"space":  "space",
	"tab":    "tab",
	"escape": "escape", "esc": "escape",
	"up": "up", "arrowup": "up",
	"down": "down", "arrowdown": "down",
	"left": "left", "arrowleft": "left",
	"right": "right", "arrowright": "right",
	"pageup": "pageup", "pagedown": "pagedown",
	"home": "home", "end": "end",
	"plus": "+", "minus": "-", "equals": "=", "comma": ",", "period": ".",
	"slash": "/", "backslash": "\\", "semicolon": ";", "quote": "'",
	"backquote": "`", "bracketleft": "[", "bracketright": "]",
}

func init() {
	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf("f%d", i)
		specialKeyNames[name] = name
	}
}

// canonicalKey normalizes a key token per spec §4.4: single printable
// characters are lowercased; recognized special names resolve to their
// canonical form; any other multi-character token is accepted verbatim.
func canonicalKey(token string) string {
	lower := strings.ToLower(token)
	if len([]rune(token)) == 1 {
		r := []rune(token)[0]
		if unicode.IsLetter(r) {
			return lower
		}
		return token
	}
	if canon, ok := specialKeyNames[lower]; ok {
		return canon
	}
	return token
}

// ParseKeybind parses one "[performable:]mod+...+key=action[:param]"
// entry (spec §4.4).
func ParseKeybind(s string) (Keybind, error) {
	kb := Keybind{Raw: s}
	rest := s

	if strings.HasPrefix(rest, "performable:") {
		kb.Performable = true
		rest = rest[len("performable:"):]
	}

	eq := strings.IndexByte(rest, '=')
	if eq < 0 {
		return Keybind{}, fmt.Errorf("input: keybind %q missing '='", s)
	}
	chord, actionPart := rest[:eq], rest[eq+1:]
	if chord == "" {
		return Keybind{}, fmt.Errorf("input: keybind %q has empty chord", s)
	}

	tokens := strings.Split(chord, "+")
	key := tokens[len(tokens)-1]
	if key == "" {
		return Keybind{}, fmt.Errorf("input: keybind %q has empty key token", s)
	}
	for _, tok := range tokens[:len(tokens)-1] {
		mod, ok := modifierAliases[strings.ToLower(tok)]
		if !ok {
			return Keybind{}, fmt.Errorf("input: keybind %q has unknown modifier %q", s, tok)
		}
		switch mod {
		case "ctrl":
			kb.Mods.Ctrl = true
		case "alt":
			kb.Mods.Alt = true
		case "shift":
			kb.Mods.Shift = true
		case "meta":
			kb.Mods.Meta = true
		}
	}
	kb.Key = canonicalKey(key)

	action, err := parseAction(actionPart)
	if err != nil {
		return Keybind{}, fmt.Errorf("input: keybind %q: %w", s, err)
	}
	kb.Action = action

	return kb, nil
}

func parseAction(s string) (Action, error) {
	name, param, hasParam := strings.Cut(s, ":")
	kind := ActionKind(name)
	if !knownActions[kind] {
		return Action{}, fmt.Errorf("unknown action %q", name)
	}

	a := Action{Kind: kind}
	switch kind {
	case ActionSendText:
		if !hasParam {
			return Action{}, fmt.Errorf("send_text requires a :text param")
		}
		text, err := unescapeLiteral(param)
		if err != nil {
			return Action{}, err
		}
		a.Text = text
	case ActionScroll:
		if !hasParam {
			return Action{}, fmt.Errorf("scroll requires a :direction,amount param")
		}
		dir, amt, ok := strings.Cut(param, ",")
		if !ok {
			return Action{}, fmt.Errorf("scroll param %q must be direction,amount", param)
		}
		a.Direction = Direction(dir)
		a.Amount = ScrollAmount(amt)
		if !validScrollAmount(a.Amount) {
			return Action{}, fmt.Errorf("unknown scroll amount %q", amt)
		}
	case ActionSwitchWindow:
		if !hasParam {
			return Action{}, fmt.Errorf("switch_window requires a :index param")
		}
		idx, err := strconv.Atoi(param)
		if err != nil {
			return Action{}, fmt.Errorf("switch_window index %q: %w", param, err)
		}
		a.Index = idx
	case ActionCycleWindow:
		if !hasParam {
			return Action{}, fmt.Errorf("cycle_window requires a :direction param")
		}
		a.Direction = Direction(param)
	case ActionFocusPane:
		if !hasParam {
			return Action{}, fmt.Errorf("focus_pane requires a :direction param")
		}
		a.Direction = Direction(param)
	default:
		if hasParam {
			return Action{}, fmt.Errorf("action %q does not take a param", name)
		}
	}
	return a, nil
}

func validScrollAmount(a ScrollAmount) bool {
	switch a {
	case ScrollLine, ScrollHalfPage, ScrollPage, ScrollTop, ScrollBottom:
		return true
	}
	return false
}

// Format renders a Keybind back to its source grammar, the inverse
// ParseKeybind relies on for spec §8 invariant 7 (only guaranteed
// round-trip stable for non-alias tokens, e.g. canonical key/modifier
// spellings and non-abbreviated action names).
func Format(kb Keybind) string {
	var b strings.Builder
	if kb.Performable {
		b.WriteString("performable:")
	}
	if kb.Mods.Ctrl {
		b.WriteString("ctrl+")
	}
	if kb.Mods.Alt {
		b.WriteString("alt+")
	}
	if kb.Mods.Shift {
		b.WriteString("shift+")
	}
	if kb.Mods.Meta {
		b.WriteString("meta+")
	}
	b.WriteString(kb.Key)
	b.WriteByte('=')
	b.WriteString(string(kb.Action.Kind))
	if p := formatActionParam(kb.Action); p != "" {
		b.WriteByte(':')
		b.WriteString(p)
	}
	return b.String()
}

func formatActionParam(a Action) string {
	switch a.Kind {
	case ActionSendText:
		return escapeLiteral(a.Text)
	case ActionScroll:
		return string(a.Direction) + "," + string(a.Amount)
	case ActionSwitchWindow:
		return strconv.Itoa(a.Index)
	case ActionCycleWindow, ActionFocusPane:
		return string(a.Direction)
	default:
		return ""
	}
}

// Matches reports whether a Keybind fires for the given chord, per
// spec §4.4's match rule: all four modifier flags compared exactly;
// the key compared case-insensitively only when it is a single
// character.
func (kb Keybind) Matches(mods Modifiers, key string) bool {
	if kb.Mods != mods {
		return false
	}
	if len([]rune(kb.Key)) == 1 {
		return strings.EqualFold(kb.Key, key)
	}
	return kb.Key == key
}
