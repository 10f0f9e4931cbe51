package potmanager

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// ErrNoContenders is an error when every member of a funded pot has folded
var ErrNoContenders = errors.New("pot has no contenders")

// ErrAlreadySettled is an error when Settle is called twice for the same hand
var ErrAlreadySettled = errors.New("pots were already settled")

type pot struct {
	amount int
	// cap is nil for the base pot
	cap       *int
	threshold int
	// owner is the all-in participant who opened the pot
	owner   Participant
	members []Participant
	layer   int
	winners []Participant
}

func (p *pot) level() int {
	if p.cap != nil {
		return *p.cap
	}

	return p.threshold
}

// Settlement is the outcome of paying every pot
type Settlement struct {
	Payouts map[string]int
	// Remainder is what was lost to uneven splits
	Remainder int
	Pots      Pots
}

// PotManager keeps track of the all-in pots of a hand and pays them out at showdown
type PotManager struct {
	logger       logrus.FieldLogger
	participants []Participant
	pots         []*pot
	settled      bool
}

// New returns a PotManager for the participants dealt into the hand
func New(logger logrus.FieldLogger, participants []Participant) *PotManager {
	p := make([]Participant, len(participants))
	copy(p, participants)

	return &PotManager{
		logger:       logger,
		participants: p,
		pots:         make([]*pot, 0),
	}
}

// OpenAllInPot opens a pot capped at the all-in participant's wager
// Returns false if the participant isn't all-in or already has a pot
func (p *PotManager) OpenAllInPot(pt Participant) bool {
	if !pt.IsAllIn() {
		return false
	}

	for _, existing := range p.pots {
		if existing.owner == pt {
			return false
		}
	}

	allInWager := pt.Wager()
	newPot := &pot{
		cap:   &allInWager,
		owner: pt,
	}
	p.calculateAllInPot(newPot)
	p.pots = append(p.pots, newPot)

	p.logger.WithFields(logrus.Fields{
		"player": pt.ID(),
		"cap":    allInWager,
		"pot":    newPot.amount,
	}).Debug("opened all-in pot")

	return true
}

// CanAnyoneStillBet returns true if a side pot for an all-in participant is meaningful:
// at least two participants can still bet, or the wagers are not all equal
func (p *PotManager) CanAnyoneStillBet() bool {
	if len(p.participants) == 0 {
		return false
	}

	stillBetting := 0
	unequal := false
	wager := p.participants[0].Wager()
	for _, pt := range p.participants {
		if !pt.IsAllIn() && !pt.IsFolded() {
			stillBetting++
		}

		if pt.Wager() != wager {
			unequal = true
		}
	}

	return stillBetting >= 2 || unequal
}

// OpenAllInPotsIfNecessary opens a pot for every all-in participant who doesn't have one yet, as long as a side
// pot is meaningful. Returns the number of pots opened
func (p *PotManager) OpenAllInPotsIfNecessary() int {
	opened := 0
	for _, pt := range p.participants {
		if pt.IsFolded() || !pt.IsAllIn() {
			continue
		}

		if p.CanAnyoneStillBet() && p.OpenAllInPot(pt) {
			opened++
		}
	}

	return opened
}

// calculateAllInPot recomputes the pot from scratch, capping every wager at the all-in level
func (p *PotManager) calculateAllInPot(ap *pot) {
	ap.amount = 0
	ap.members = make([]Participant, 0, len(p.participants))
	for _, pt := range p.participants {
		ap.amount += min(pt.Wager(), *ap.cap)

		if isContending(pt) && pt.Wager() >= *ap.cap {
			ap.members = append(ap.members, pt)
		}
	}
}

// basePot is formed from every wager, and only those who matched the highest contending wager can win it
func (p *PotManager) basePot() *pot {
	threshold := 0
	for _, pt := range p.participants {
		if isContending(pt) && pt.Wager() > threshold {
			threshold = pt.Wager()
		}
	}

	bp := &pot{
		threshold: threshold,
		members:   make([]Participant, 0, len(p.participants)),
	}

	for _, pt := range p.participants {
		bp.amount += pt.Wager()
		if isContending(pt) && pt.Wager() >= threshold {
			bp.members = append(bp.members, pt)
		}
	}

	return bp
}

// TotalWagered returns every chip the participants put in
func (p *PotManager) TotalWagered() int {
	total := 0
	for _, pt := range p.participants {
		total += pt.Wager()
	}

	return total
}

// Settle creates the base pot, sorts the pots from the smallest level to the largest, and pays each one to
// its winners. Paying a pot removes its value from every other pot, since each pot was computed on its own
func (p *PotManager) Settle(resolver Resolver) (*Settlement, error) {
	if p.settled {
		return nil, ErrAlreadySettled
	}

	p.OpenAllInPotsIfNecessary()
	for _, ap := range p.pots {
		p.calculateAllInPot(ap)
	}

	// the base pot goes last so it sorts after an all-in pot at the same level
	p.pots = append(p.pots, p.basePot())
	sort.SliceStable(p.pots, func(i, j int) bool {
		return p.pots[i].level() < p.pots[j].level()
	})

	// amounts get decremented during payout
	amounts := make([]int, len(p.pots))
	for i, pt := range p.pots {
		amounts[i] = pt.amount
	}

	payouts := make(map[string]int)
	remainder := 0
	for i, current := range p.pots {
		value := amounts[i]
		if value <= 0 {
			continue
		}

		winners, err := p.winners(current, resolver)
		if err != nil {
			return nil, fmt.Errorf("pot %d: %w", i, err)
		}

		share := value / len(winners)
		for _, winner := range winners {
			winner.Win(share)
			payouts[winner.ID()] += share

			p.logger.WithFields(logrus.Fields{
				"player": winner.ID(),
				"pot":    i,
				"amount": share,
			}).Info("won pot")
		}

		remainder += value - share*len(winners)
		current.layer = value
		current.winners = winners

		for j := range amounts {
			amounts[j] -= value
		}
	}

	total := p.TotalWagered()
	paid := 0
	for _, amount := range payouts {
		paid += amount
	}

	if paid+remainder != total {
		panic(fmt.Sprintf("paid %d with %d remaining, but %d was wagered", paid, remainder, total))
	}

	p.settled = true
	return &Settlement{
		Payouts:   payouts,
		Remainder: remainder,
		Pots:      p.Pots(),
	}, nil
}

// winners returns the contenders of the pot who take it
// A lone contender wins without comparing hands
func (p *PotManager) winners(current *pot, resolver Resolver) ([]Participant, error) {
	contenders := make([]Participant, 0, len(current.members))
	for _, pt := range current.members {
		if isContending(pt) {
			contenders = append(contenders, pt)
		}
	}

	switch len(contenders) {
	case 0:
		return nil, ErrNoContenders
	case 1:
		return contenders, nil
	}

	winners, err := resolver.Winners(contenders)
	if err != nil {
		return nil, err
	}

	if len(winners) == 0 {
		return nil, ErrNoContenders
	}

	return winners, nil
}

// Pots returns a snapshot of the pots
// Before Settle is called only the all-in pots exist
func (p *PotManager) Pots() Pots {
	pots := make(Pots, len(p.pots))
	for i, pt := range p.pots {
		var allInCap *int
		if pt.cap != nil {
			c := *pt.cap
			allInCap = &c
		}

		members := make([]Participant, len(pt.members))
		copy(members, pt.members)

		pots[i] = &Pot{
			Amount:    pt.amount,
			Cap:       allInCap,
			Threshold: pt.threshold,
			Members:   members,
			Layer:     pt.layer,
			Winners:   pt.winners,
		}
	}

	return pots
}

// Clear removes every pot
func (p *PotManager) Clear() {
	p.pots = make([]*pot, 0)
	p.settled = false
}
