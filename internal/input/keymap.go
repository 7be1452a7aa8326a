package input

import (
	"fmt"
	"sort"
	"strings"
)

// modifierOrder fixes the order of modifiers in a normalized key.
var modifierOrder = []string{"ctrl", "alt", "shift"}

// Keymap binds key strings such as "ctrl+z" to action names.
type Keymap struct {
	bindings map[string]string
}

// NewKeymap creates a keymap from key -> action pairs.
func NewKeymap(bindings map[string]string) (*Keymap, error) {
	k := &Keymap{bindings: make(map[string]string, len(bindings))}
	for keys, action := range bindings {
		if err := k.Bind(keys, action); err != nil {
			return nil, err
		}
	}
	return k, nil
}

// Bind adds or replaces a binding.
func (k *Keymap) Bind(keys, action string) error {
	norm, err := NormalizeKey(keys)
	if err != nil {
		return err
	}
	if action == "" {
		return fmt.Errorf("binding %q: empty action", keys)
	}
	k.bindings[norm] = action
	return nil
}

// Lookup returns the action bound to keys.
func (k *Keymap) Lookup(keys string) (Action, bool) {
	norm, err := NormalizeKey(keys)
	if err != nil {
		return Action{}, false
	}
	name, ok := k.bindings[norm]
	if !ok {
		return Action{}, false
	}
	return Action{Name: name, Source: SourceKeyboard}, true
}

// Keys returns the bound keys in sorted order.
func (k *Keymap) Keys() []string {
	keys := make([]string, 0, len(k.bindings))
	for key := range k.bindings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// NormalizeKey lowercases a key string and orders its modifiers.
// "Shift+Ctrl+Z" becomes "ctrl+shift+z".
func NormalizeKey(keys string) (string, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(keys)), "+")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return "", fmt.Errorf("invalid key %q", keys)
	}

	base := parts[len(parts)-1]
	mods := make(map[string]bool, len(parts)-1)
	for _, p := range parts[:len(parts)-1] {
		switch p {
		case "ctrl", "alt", "shift":
			mods[p] = true
		case "control":
			mods["ctrl"] = true
		case "meta", "option":
			mods["alt"] = true
		default:
			return "", fmt.Errorf("invalid modifier %q in key %q", p, keys)
		}
	}

	var b strings.Builder
	for _, m := range modifierOrder {
		if mods[m] {
			b.WriteString(m)
			b.WriteByte('+')
		}
	}
	b.WriteString(base)
	return b.String(), nil
}
