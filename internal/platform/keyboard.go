// Package platform binds the game to ebiten: the window loop, drawing,
// keyboard edges and wav playback.
package platform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard collects the key edges of the current tick as key names.
type Keyboard struct {
	keys     []ebiten.Key
	pressed  []string
	released []string
}

// Edges returns the names of keys pressed and released since the previous
// tick. The slices are reused on the next call.
func (k *Keyboard) Edges() (pressed, released []string) {
	k.pressed = k.collect(k.pressed[:0], inpututil.AppendJustPressedKeys)
	k.released = k.collect(k.released[:0], inpututil.AppendJustReleasedKeys)
	return k.pressed, k.released
}

func (k *Keyboard) collect(dst []string, appendKeys func([]ebiten.Key) []ebiten.Key) []string {
	k.keys = appendKeys(k.keys[:0])
	for _, key := range k.keys {
		dst = append(dst, key.String())
	}
	return dst
}
