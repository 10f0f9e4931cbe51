package potmanager

import (
	"sort"
)

// Resolver chooses the winners among the contenders of a pot
// Contenders never include folded players. Ties return every tied contender
type Resolver interface {
	Winners(contenders []Participant) ([]Participant, error)
}

// ResolverFunc adapts a function to a Resolver
type ResolverFunc func(contenders []Participant) ([]Participant, error)

// Winners calls f
func (f ResolverFunc) Winners(contenders []Participant) ([]Participant, error) {
	return f(contenders)
}

type tier struct {
	strength     int
	participants []Participant
}

// WinManager groups participants into tiers of equal hand strength
type WinManager map[int]*tier

// NewWinManager returns an empty WinManager
func NewWinManager() WinManager {
	return make(WinManager)
}

// AddParticipant places the participant in the tier for handStrength
func (w WinManager) AddParticipant(p Participant, handStrength int) {
	t, ok := w[handStrength]
	if !ok {
		t = &tier{
			strength:     handStrength,
			participants: make([]Participant, 0),
		}
	}

	t.participants = append(t.participants, p)
	w[handStrength] = t
}

// GetSortedTiers returns the tiers from strongest to weakest
func (w WinManager) GetSortedTiers() [][]Participant {
	tiers := make([]*tier, 0, len(w))
	for _, tier := range w {
		tiers = append(tiers, tier)
	}

	sort.Sort(sort.Reverse(sortByStrength(tiers)))

	tieredParticipants := make([][]Participant, len(tiers))
	for i, t := range tiers {
		tieredParticipants[i] = t.participants
	}

	return tieredParticipants
}

// Best returns the strongest tier, or nil if nobody was added
func (w WinManager) Best() []Participant {
	tiers := w.GetSortedTiers()
	if len(tiers) == 0 {
		return nil
	}

	return tiers[0]
}

type sortByStrength []*tier

func (s sortByStrength) Len() int {
	return len(s)
}

func (s sortByStrength) Less(i, j int) bool {
	return s[i].strength < s[j].strength
}

func (s sortByStrength) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
