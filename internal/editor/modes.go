package editor

import "fmt"

// Mode is the input mode of the editor. Modes are mutually exclusive;
// keyframe recording (Animating) is a flag layered on ModeSelecting.
type Mode int

const (
	ModeIdle Mode = iota
	ModeInserting
	ModeSelecting
	ModeColorPicking
	ModeDeleting

	// modeAny matches every mode in the binding table.
	modeAny Mode = -1
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeInserting:
		return "inserting"
	case ModeSelecting:
		return "selecting"
	case ModeColorPicking:
		return "color-picking"
	case ModeDeleting:
		return "deleting"
	case modeAny:
		return "any"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
