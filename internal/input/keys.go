// Package input turns keyboard edges, reported by key name, into match events
// according to the configured bindings.
package input

import (
	"fmt"
	"strings"
)

// keyNames are the names the keyboard backend reports. Lookups are case
// insensitive; the canonical spelling is what Label returns.
var keyNames = func() map[string]string {
	names := []string{
		"Space", "Enter", "Escape", "Tab", "Backspace",
		"ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight",
		"ShiftLeft", "ShiftRight", "ControlLeft", "ControlRight", "AltLeft", "AltRight",
		"NumpadEnter", "NumpadAdd", "NumpadSubtract",
		"Home", "End", "PageUp", "PageDown",
	}
	for c := 'A'; c <= 'Z'; c++ {
		names = append(names, string(c))
	}
	for d := 0; d <= 9; d++ {
		names = append(names, fmt.Sprintf("Digit%d", d), fmt.Sprintf("Numpad%d", d))
	}

	m := make(map[string]string, len(names))
	for _, n := range names {
		m[strings.ToLower(n)] = n
	}
	return m
}()

// Canonical returns the canonical spelling of name and whether it is known.
func Canonical(name string) (string, bool) {
	c, ok := keyNames[strings.ToLower(name)]
	return c, ok
}
