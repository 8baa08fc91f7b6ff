package hand

// HandName enumerates the categories of poker hands ordered from weakest to strongest.
type HandName uint8

const (
	Nothing HandName = iota
	OnePair
	TwoPair
	ThreeKind
	Straight
	Flush
	FullHouse
	FourKind
	StraightFlush
)

// Names lists every category from weakest to strongest
var Names = [...]HandName{
	Nothing,
	OnePair,
	TwoPair,
	ThreeKind,
	Straight,
	Flush,
	FullHouse,
	FourKind,
	StraightFlush,
}

// Ordinal returns the strength of the category; higher is stronger.
func (n HandName) Ordinal() int {
	return int(n)
}

// String returns a human-readable category name.
func (n HandName) String() string {
	switch n {
	case Nothing:
		return "Nothing"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so log and JSON fields carry
// the readable name.
func (n HandName) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}
