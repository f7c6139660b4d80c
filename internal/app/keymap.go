package app

import (
	"github.com/eiannone/keyboard"

	"goxviet/internal/keys"
)

var namedKeys = map[keyboard.Key]keys.Code{
	keyboard.KeyBackspace:  keys.KeyBackspace,
	keyboard.KeyBackspace2: keys.KeyBackspace,
	keyboard.KeyTab:        keys.KeyTab,
	keyboard.KeyEnter:      keys.KeyEnter,
	keyboard.KeyEsc:        keys.KeyEsc,
	keyboard.KeySpace:      keys.KeySpace,
	keyboard.KeyArrowUp:    keys.KeyUp,
	keyboard.KeyArrowDown:  keys.KeyDown,
	keyboard.KeyArrowLeft:  keys.KeyLeft,
	keyboard.KeyArrowRight: keys.KeyRight,
	keyboard.KeyHome:       keys.KeyHome,
	keyboard.KeyEnd:        keys.KeyEnd,
	keyboard.KeyPgup:       keys.KeyPageUp,
	keyboard.KeyPgdn:       keys.KeyPageDown,
	keyboard.KeyInsert:     keys.KeyInsert,
	keyboard.KeyDelete:     keys.KeyDelete,
}

var ctrlLetters = [...]keys.Code{
	keys.KeyA, keys.KeyB, keys.KeyC, keys.KeyD, keys.KeyE, keys.KeyF, keys.KeyG,
	keys.KeyH, keys.KeyI, keys.KeyJ, keys.KeyK, keys.KeyL, keys.KeyM, keys.KeyN,
	keys.KeyO, keys.KeyP, keys.KeyQ, keys.KeyR, keys.KeyS, keys.KeyT, keys.KeyU,
	keys.KeyV, keys.KeyW, keys.KeyX, keys.KeyY, keys.KeyZ,
}

// translateEvent maps a terminal key event to the keystroke that produced
// it on a US layout. Events with no such keystroke report false.
func translateEvent(ev keyboard.KeyEvent) (keys.Keystroke, bool) {
	if ev.Rune != 0 {
		return keys.FromRune(ev.Rune)
	}
	if ev.Key == keyboard.KeyCtrlSpace {
		return keys.Keystroke{Code: keys.KeySpace, Ctrl: true}, true
	}
	if code, ok := namedKeys[ev.Key]; ok {
		return keys.Keystroke{Code: code}, true
	}
	if ev.Key >= keyboard.KeyCtrlA && ev.Key <= keyboard.KeyCtrlZ {
		return keys.Keystroke{Code: ctrlLetters[ev.Key-keyboard.KeyCtrlA], Ctrl: true}, true
	}
	return keys.Keystroke{}, false
}

func isQuit(k keys.Keystroke) bool {
	return k.Ctrl && k.Code == keys.KeyC
}
