package betting

import (
	"encoding/json"
	"fmt"
)

// Street is one of the four betting phases of a hand
type Street int

// Street constants
const (
	PreFlop Street = iota
	Flop
	Turn
	River
)

// Streets in the order they are played
var Streets = []Street{PreFlop, Flop, Turn, River}

func (s Street) String() string {
	switch s {
	case PreFlop:
		return "pre-flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	}

	panic(fmt.Sprintf("unknown street: %d", s))
}

// BoardSize returns how many community cards are showing during the street
func (s Street) BoardSize() int {
	switch s {
	case PreFlop:
		return 0
	case Flop:
		return 3
	case Turn:
		return 4
	}

	return 5
}

// MarshalJSON encodes the street by name
func (s Street) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
