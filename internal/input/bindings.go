package input

import (
	"errors"
	"fmt"

	"pong/internal/loader/schema"
	"pong/internal/match"
)

var ErrUnknownKey = errors.New("unknown key name")

type UnknownKeyError struct {
	Field string
	Name  string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("%s: unknown key name %q", e.Field, e.Name)
}

func (e *UnknownKeyError) Unwrap() error {
	return ErrUnknownKey
}

// Bindings resolves key names to match keys.
type Bindings struct {
	byName  map[string]match.Key
	byMatch map[match.Key]string
}

// NewBindings validates every configured name and builds the lookup tables.
// Duplicates are reported by schema validation; they are rejected here too
// since two spellings of one key ("w" and "W") only collide after
// canonicalisation.
func NewBindings(cfg schema.KeyBindings) (*Bindings, error) {
	actions := []match.Key{match.P1Up, match.P1Down, match.P2Up, match.P2Down, match.Confirm, match.Quit}

	b := &Bindings{
		byName:  make(map[string]match.Key, len(actions)),
		byMatch: make(map[match.Key]string, len(actions)),
	}
	for i, field := range cfg.Fields() {
		name, ok := Canonical(field.Key)
		if !ok {
			return nil, &UnknownKeyError{Field: field.Field, Name: field.Key}
		}
		if prev, dup := b.byName[name]; dup {
			return nil, &schema.DuplicateBindingError{Key: name, First: "keys." + prev.String(), Second: field.Field}
		}
		b.byName[name] = actions[i]
		b.byMatch[actions[i]] = name
	}
	return b, nil
}

// Lookup returns the action bound to a key name, or match.KeyUnknown.
func (b *Bindings) Lookup(name string) match.Key {
	c, ok := Canonical(name)
	if !ok {
		return match.KeyUnknown
	}
	if k, ok := b.byName[c]; ok {
		return k
	}
	return match.KeyUnknown
}

// Label is the key name bound to an action, for on-screen prompts.
func (b *Bindings) Label(k match.Key) string {
	return b.byMatch[k]
}

// Translate converts one frame of key edges into ordered match events.
// Keys released without being pressed this frame go first so a held key that
// is swapped for its opposite ends up moving. A key both pressed and released
// within the frame is a tap and yields Down followed by Up. Unbound keys are
// dropped.
func (b *Bindings) Translate(pressed, released []string) []match.Event {
	if len(pressed) == 0 && len(released) == 0 {
		return nil
	}

	down := make(map[match.Key]bool, len(pressed))
	for _, name := range pressed {
		if k := b.Lookup(name); k != match.KeyUnknown {
			down[k] = true
		}
	}

	events := make([]match.Event, 0, len(pressed)+len(released))
	var taps []match.Key
	for _, name := range released {
		k := b.Lookup(name)
		if k == match.KeyUnknown {
			continue
		}
		if down[k] {
			taps = append(taps, k)
			continue
		}
		events = append(events, match.Up(k))
	}
	for _, name := range pressed {
		if k := b.Lookup(name); k != match.KeyUnknown {
			events = append(events, match.Down(k))
		}
	}
	for _, k := range taps {
		events = append(events, match.Up(k))
	}
	return events
}
