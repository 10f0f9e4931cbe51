package ledger

import (
	"errors"
	"fmt"

	"github.com/thoas/go-funk"
)

// ErrPlayerNotFound is an error when a player with a provided ID is not seated
var ErrPlayerNotFound = errors.New("player not found")

// ErrDuplicatePlayer is an error when a player with the same ID is already seated
var ErrDuplicatePlayer = errors.New("player is already seated")

// Ledger keeps track of every seated player for the lifetime of the table
// Players who go broke stay seated but are no longer dealt in
type Ledger struct {
	seated []*Player
	active []*Player

	// raiser is the player everybody else must respond to, if any
	raiser *Player
}

// New returns a ledger with the players seated in order
func New(players ...*Player) *Ledger {
	l := &Ledger{
		seated: make([]*Player, 0, len(players)),
		active: make([]*Player, 0, len(players)),
	}

	for _, p := range players {
		if err := l.Seat(p); err != nil {
			panic(err)
		}
	}

	return l
}

// Seat adds a player to the end of the table
// Players with an empty stack are seated but are not dealt in
func (l *Ledger) Seat(p *Player) error {
	if _, err := l.Find(p.ID()); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.ID())
	}

	l.seated = append(l.seated, p)
	if p.Stack() > 0 {
		l.active = append(l.active, p)
	}

	return nil
}

// Find returns the seated player with the ID
func (l *Ledger) Find(id string) (*Player, error) {
	for _, p := range l.seated {
		if p.ID() == id {
			return p, nil
		}
	}

	return nil, ErrPlayerNotFound
}

// Seated returns every player that ever sat down, in seat order
func (l *Ledger) Seated() []*Player {
	seated := make([]*Player, len(l.seated))
	copy(seated, l.seated)
	return seated
}

// Active returns the players who are dealt into hands, in seat order
func (l *Ledger) Active() []*Player {
	active := make([]*Player, len(l.active))
	copy(active, l.active)
	return active
}

// ActiveIDs returns the IDs of the active players in seat order
func (l *Ledger) ActiveIDs() []string {
	return funk.Map(l.active, func(p *Player) string {
		return p.ID()
	}).([]string)
}

// Contesting returns the active players who haven't folded this hand
func (l *Ledger) Contesting() []*Player {
	return funk.Filter(l.active, func(p *Player) bool {
		return !p.IsFolded()
	}).([]*Player)
}

// CanActCount returns how many players can still call, fold, or raise
func (l *Ledger) CanActCount() int {
	count := 0
	for _, p := range l.active {
		if p.CanAct() {
			count++
		}
	}

	return count
}

// HighestWager returns the largest wager of the hand
func (l *Ledger) HighestWager() int {
	highest := 0
	for _, p := range l.active {
		if p.Wager() > highest {
			highest = p.Wager()
		}
	}

	return highest
}

// TotalWagered returns the sum of every wager this hand, folded players included
func (l *Ledger) TotalWagered() int {
	total := 0
	for _, p := range l.active {
		total += p.Wager()
	}

	return total
}

// TotalChips returns every chip on the table, in stacks or in wagers
func (l *Ledger) TotalChips() int {
	total := 0
	for _, p := range l.seated {
		total += p.Stack() + p.Wager()
	}

	return total
}

// SetRaiser marks p as the player the rest of the table must respond to
// Any previous raiser is cleared
func (l *Ledger) SetRaiser(p *Player) {
	if p.IsFolded() || !funk.Contains(l.active, p) {
		panic(fmt.Sprintf("player %s cannot hold the raise", p.ID()))
	}

	l.raiser = p
}

// ClearRaiser removes the raise marker
func (l *Ledger) ClearRaiser() {
	l.raiser = nil
}

// Raiser returns the player holding the raise, or nil
func (l *Ledger) Raiser() *Player {
	return l.raiser
}

// IsRaiser returns true if p holds the raise
func (l *Ledger) IsRaiser(p *Player) bool {
	return l.raiser != nil && l.raiser == p
}

// ResetForHand zeroes the wager and restores the status of every active player
// Broke players were reset when RemoveBroke dropped them
func (l *Ledger) ResetForHand() {
	for _, p := range l.active {
		p.resetForHand()
	}

	l.raiser = nil
}

// RemoveBroke drops players with an empty stack from the active set and returns them
// Their wager of the last hand is gone, so it is zeroed along with the rest of their hand
func (l *Ledger) RemoveBroke() []*Player {
	broke := make([]*Player, 0)
	active := make([]*Player, 0, len(l.active))
	for _, p := range l.active {
		if p.Stack() == 0 {
			p.resetForHand()
			if l.raiser == p {
				l.raiser = nil
			}

			broke = append(broke, p)
			continue
		}

		active = append(active, p)
	}

	l.active = active
	return broke
}
