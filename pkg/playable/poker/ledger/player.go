package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"holdem-table/pkg/deck"
)

// Status is where a player stands in the current hand
type Status int

// Status constants
const (
	Active Status = iota
	Folded
	AllIn
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Folded:
		return "folded"
	case AllIn:
		return "all-in"
	}

	panic(fmt.Sprintf("unknown status: %d", s))
}

// Player is a seat at the table
// stack is what the player has behind, wager is what they have put in during the current hand
type Player struct {
	id     string
	name   string
	stack  int
	wager  int
	status Status
	hole   deck.Hand
}

type playerJSON struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Stack  int    `json:"stack"`
	Wager  int    `json:"wager"`
	Status string `json:"status"`
}

// NewPlayer returns a new player. An empty id is replaced by a random UUID
func NewPlayer(id, name string, stack int) *Player {
	if id == "" {
		id = uuid.New().String()
	}

	if stack < 0 {
		stack = 0
	}

	return &Player{
		id:     id,
		name:   name,
		stack:  stack,
		status: Active,
		hole:   make(deck.Hand, 0, 2),
	}
}

// ID returns the identity of the player
func (p *Player) ID() string {
	return p.id
}

// Name returns the display name
func (p *Player) Name() string {
	return p.name
}

// Stack returns the chips the player has behind
func (p *Player) Stack() int {
	return p.stack
}

// Wager returns the chips the player has put in this hand
func (p *Player) Wager() int {
	return p.wager
}

// Status returns the player's status for the hand
func (p *Player) Status() Status {
	return p.status
}

// IsFolded returns true if the player folded this hand
func (p *Player) IsFolded() bool {
	return p.status == Folded
}

// IsAllIn returns true if the player has no chips behind
func (p *Player) IsAllIn() bool {
	return p.status == AllIn
}

// CanAct returns true if the player can still call, fold, or raise
func (p *Player) CanAct() bool {
	return p.status == Active
}

// Hole returns the player's private cards
func (p *Player) Hole() deck.Hand {
	return p.hole
}

// SetHole replaces the player's private cards
func (p *Player) SetHole(cards deck.Hand) {
	p.hole = cards
}

// Bet moves chips from the stack to the wager and returns the amount moved
// Asking for more than the stack holds puts the player all-in instead
func (p *Player) Bet(amount int) int {
	if !p.CanAct() || amount <= 0 {
		return 0
	}

	if amount >= p.stack {
		amount = p.stack
		p.status = AllIn
	}

	p.stack -= amount
	p.wager += amount
	return amount
}

// CallTo brings the wager up to level
func (p *Player) CallTo(level int) int {
	return p.Bet(level - p.wager)
}

// Fold freezes the wager for the rest of the hand
func (p *Player) Fold() {
	if p.CanAct() {
		p.status = Folded
	}
}

// Win credits the stack
func (p *Player) Win(amount int) {
	p.stack += amount
}

// resetForHand is called before the deal
func (p *Player) resetForHand() {
	p.wager = 0
	p.status = Active
	p.hole = make(deck.Hand, 0, 2)
}

func (p *Player) String() string {
	if p.name != "" {
		return p.name
	}

	return p.id
}

// MarshalJSON encodes the player's public state
func (p *Player) MarshalJSON() ([]byte, error) {
	return json.Marshal(playerJSON{
		ID:     p.id,
		Name:   p.name,
		Stack:  p.stack,
		Wager:  p.wager,
		Status: p.status.String(),
	})
}
