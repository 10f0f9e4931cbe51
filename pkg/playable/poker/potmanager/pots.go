package potmanager

import "encoding/json"

// Pot is a snapshot of a pot
// Amount is the pot's value as computed on its own. Pots overlap: a side pot's chips are also counted in
// every pot with a higher level. Layer is what the pot actually paid once the lower pots were paid
type Pot struct {
	Amount int
	// Cap is the all-in wager that opened the pot, nil for the base pot
	Cap       *int
	Threshold int
	Members   []Participant
	Layer     int
	Winners   []Participant
}

type potJSON struct {
	Amount    int      `json:"amount"`
	Cap       *int     `json:"cap"`
	Threshold int      `json:"threshold"`
	Members   []string `json:"members"`
	Layer     int      `json:"layer"`
	Winners   []string `json:"winners"`
}

// IsBase returns true if the pot has no all-in cap
func (p Pot) IsBase() bool {
	return p.Cap == nil
}

// Level returns the wager a player needs to be a member
func (p Pot) Level() int {
	if p.Cap != nil {
		return *p.Cap
	}

	return p.Threshold
}

// MarshalJSON provides custom marshalling
func (p Pot) MarshalJSON() ([]byte, error) {
	return json.Marshal(potJSON{
		Amount:    p.Amount,
		Cap:       p.Cap,
		Threshold: p.Threshold,
		Members:   participantIDs(p.Members),
		Layer:     p.Layer,
		Winners:   participantIDs(p.Winners),
	})
}

// Pots is a collection of pots
type Pots []*Pot

// Total returns the combined total of the chips the pots paid out
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Layer
	}

	return total
}
