package mines

type Command int8

const (
	None Command = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	ToggleFlag
	Reveal
	Quit
)

func (c Command) String() string {
	switch c {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case ToggleFlag:
		return "flag"
	case Reveal:
		return "reveal"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}
