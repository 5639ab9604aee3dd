package war

// Winner identifies which side took a battle
type Winner uint8

const (
	Tie Winner = iota
	Left
	Right
)

// String returns the winner name
func (w Winner) String() string {
	switch w {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Tie"
	}
}

// Initial returns the first letter of the winner name
func (w Winner) Initial() byte {
	return w.String()[0]
}
