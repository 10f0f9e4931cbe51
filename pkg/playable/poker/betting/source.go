package betting

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"holdem-table/pkg/deck"
	"holdem-table/pkg/playable/poker/action"
	"holdem-table/pkg/playable/poker/ledger"
)

// ErrScriptExhausted is an error when a Script has no decision left for a player
var ErrScriptExhausted = errors.New("no scripted decision left")

// Decision is a player's answer to the current bet
// Amount is only read for a raise, and is the amount on top of the highest wager
type Decision struct {
	Action action.Action
	Amount int
}

// Call returns a call decision
func Call() Decision {
	return Decision{Action: action.Call}
}

// Fold returns a fold decision
func Fold() Decision {
	return Decision{Action: action.Fold}
}

// Raise returns a decision to raise by amount
func Raise(amount int) Decision {
	return Decision{Action: action.Raise, Amount: amount}
}

func (d Decision) String() string {
	if d.Action == action.Raise {
		return fmt.Sprintf("%s %d", d.Action, d.Amount)
	}

	return d.Action.String()
}

// Context is what a player sees when asked for a decision
type Context struct {
	Street       Street
	HighestWager int
	Wager        int
	Stack        int
	Board        deck.Hand
}

// ToCall returns the chips the player needs to match the highest wager
func (c Context) ToCall() int {
	return c.HighestWager - c.Wager
}

// Source asks a player for a decision
// Decide blocks until the player answers or ctx is done
type Source interface {
	Decide(ctx context.Context, p *ledger.Player, bc Context) (Decision, error)
}

// SourceFunc adapts a function to a Source
type SourceFunc func(ctx context.Context, p *ledger.Player, bc Context) (Decision, error)

// Decide calls f
func (f SourceFunc) Decide(ctx context.Context, p *ledger.Player, bc Context) (Decision, error) {
	return f(ctx, p, bc)
}

// Script replays queued decisions per player ID
type Script struct {
	mu        sync.Mutex
	decisions map[string][]Decision
}

// NewScript returns a Script with the queued decisions
func NewScript(decisions map[string][]Decision) *Script {
	s := &Script{decisions: make(map[string][]Decision)}
	for id, queue := range decisions {
		s.Push(id, queue...)
	}

	return s
}

// Push queues more decisions for a player
func (s *Script) Push(id string, decisions ...Decision) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.decisions[id] = append(s.decisions[id], decisions...)
}

// Remaining returns how many decisions are still queued for a player
func (s *Script) Remaining(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.decisions[id])
}

// Decide pops the next decision queued for the player
func (s *Script) Decide(ctx context.Context, p *ledger.Player, _ Context) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.decisions[p.ID()]
	if len(queue) == 0 {
		return Decision{}, fmt.Errorf("%w: %s", ErrScriptExhausted, p.ID())
	}

	s.decisions[p.ID()] = queue[1:]
	return queue[0], nil
}
