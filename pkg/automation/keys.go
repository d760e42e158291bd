package automation

import (
	"sort"
	"strings"
)

// namedKeys is the set of multi-character key symbols the backend accepts.
// Single printable characters are always valid and bypass this table.
var namedKeys = map[string]struct{}{
	"backspace": {}, "delete": {}, "enter": {}, "tab": {}, "esc": {},
	"up": {}, "down": {}, "right": {}, "left": {},
	"home": {}, "end": {}, "pageup": {}, "pagedown": {},
	"f1": {}, "f2": {}, "f3": {}, "f4": {}, "f5": {}, "f6": {},
	"f7": {}, "f8": {}, "f9": {}, "f10": {}, "f11": {}, "f12": {},
	"f13": {}, "f14": {}, "f15": {}, "f16": {}, "f17": {}, "f18": {},
	"f19": {}, "f20": {}, "f21": {}, "f22": {}, "f23": {}, "f24": {},
	"cmd": {}, "ctrl": {}, "alt": {}, "shift": {},
	"lctrl": {}, "rctrl": {}, "lshift": {}, "rshift": {}, "lalt": {}, "ralt": {},
	"capslock": {}, "space": {}, "insert": {}, "printscreen": {}, "menu": {},
	"numlock": {}, "scrolllock": {},
	"num0": {}, "num1": {}, "num2": {}, "num3": {}, "num4": {},
	"num5": {}, "num6": {}, "num7": {}, "num8": {}, "num9": {},
	"num_lock": {}, "num.": {}, "num+": {}, "num-": {}, "num*": {}, "num/": {},
	"audio_mute": {}, "audio_vol_down": {}, "audio_vol_up": {},
	"audio_play": {}, "audio_stop": {}, "audio_pause": {},
	"audio_prev": {}, "audio_next": {},
	"lights_mon_up": {}, "lights_mon_down": {},
}

// keyAliases maps common caller spellings onto backend symbols.
var keyAliases = map[string]string{
	"return":    "enter",
	"escape":    "esc",
	"control":   "ctrl",
	"option":    "alt",
	"command":   "cmd",
	"win":       "cmd",
	"super":     "cmd",
	"meta":      "cmd",
	"pgup":      "pageup",
	"pgdn":      "pagedown",
	"page_up":   "pageup",
	"page_down": "pagedown",
	"del":       "delete",
	"ins":       "insert",
	"back":      "backspace",
	"caps_lock": "capslock",
	"prtsc":     "printscreen",
}

// NormalizeKey validates a caller-supplied key name and returns the backend
// symbol for it. The second return is false for names the backend cannot map.
func NormalizeKey(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := keyAliases[key]; ok {
		key = alias
	}
	if len(key) == 1 {
		// Any single printable character is typed literally.
		r := rune(key[0])
		if r > ' ' && r <= '~' {
			return key, true
		}
		return "", false
	}
	if _, ok := namedKeys[key]; ok {
		return key, true
	}
	return "", false
}

// KnownKeys returns the sorted list of named key symbols, for diagnostics.
func KnownKeys() []string {
	keys := make([]string, 0, len(namedKeys))
	for k := range namedKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
