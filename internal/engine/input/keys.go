package input

import "fmt"

// Key is a physical key the editor understands.
type Key int

const (
	KeyUnknown Key = iota

	KeyI
	KeyO
	KeyP
	KeyH
	KeyJ
	KeyK
	KeyL
	KeyC
	KeyT
	KeyF
	KeyN
	KeyB
	KeyR
	KeyW
	KeyA
	KeyS
	KeyD

	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyZoomIn
	KeyZoomOut
	KeyEscape
	KeyF12
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",
	KeyI:       "I",
	KeyO:       "O",
	KeyP:       "P",
	KeyH:       "H",
	KeyJ:       "J",
	KeyK:       "K",
	KeyL:       "L",
	KeyC:       "C",
	KeyT:       "T",
	KeyF:       "F",
	KeyN:       "N",
	KeyB:       "B",
	KeyR:       "R",
	KeyW:       "W",
	KeyA:       "A",
	KeyS:       "S",
	KeyD:       "D",
	KeyZoomIn:  "+",
	KeyZoomOut: "-",
	KeyEscape:  "Escape",
	KeyF12:     "F12",
}

func (k Key) String() string {
	if d, ok := k.Digit(); ok {
		return fmt.Sprintf("%d", d)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Digit returns the number on a digit key (1-9).
func (k Key) Digit() (int, bool) {
	if k >= Key1 && k <= Key9 {
		return int(k-Key1) + 1, true
	}
	return 0, false
}

// DigitKey returns the key for digit d (1-9), or KeyUnknown.
func DigitKey(d int) Key {
	if d < 1 || d > 9 {
		return KeyUnknown
	}
	return Key1 + Key(d-1)
}
