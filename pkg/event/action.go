package event

// GameAction is one of the discrete commands an input source may deliver
// to the engine. Unrecognized input maps to ActionUnknown, which the
// engine treats as a no-op.
type GameAction int

const (
	ActionUnknown GameAction = iota
	ActionRotateCCW
	ActionRotateCW
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionPause
	ActionQuit
)

func (a GameAction) String() string {
	switch a {
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionRotateCW:
		return "RotateCW"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
