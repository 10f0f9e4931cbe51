package betting

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"holdem-table/pkg/deck"
	"holdem-table/pkg/playable/poker/action"
	"holdem-table/pkg/playable/poker/ledger"
	"holdem-table/pkg/playable/poker/potmanager"
)

// PotNotifier is told when players go all-in during a round
type PotNotifier interface {
	OpenAllInPot(p potmanager.Participant) bool
	OpenAllInPotsIfNecessary() int
}

// Observer is called after every decision is applied
// wager is the player's wager once the decision was applied
type Observer func(p *ledger.Player, a action.Action, wager int)

// Round negotiates one street of betting
type Round struct {
	ledger   *ledger.Ledger
	pots     PotNotifier
	source   Source
	logger   logrus.FieldLogger
	observer Observer
}

// NewRound returns a betting round engine for the ledger
func NewRound(logger logrus.FieldLogger, l *ledger.Ledger, pots PotNotifier, source Source) *Round {
	return &Round{
		ledger: l,
		pots:   pots,
		source: source,
		logger: logger,
	}
}

// SetObserver registers a callback for every applied decision
func (r *Round) SetObserver(o Observer) {
	r.observer = o
}

// Run polls the players until a full pass goes by without a raise
// playersInRound is the number of players who can still put chips in. The updated count is returned for the
// next street.
// When playersInRound is 1 or less nobody is asked to bet, except a player whose wager is below the highest
// wager: that player is still asked to call or fold, otherwise the round could never be settled.
func (r *Round) Run(ctx context.Context, street Street, board deck.Hand, playersInRound int) (int, error) {
	defer r.ledger.ClearRaiser()

	logger := r.logger.WithField("street", street.String())

	for pass := 1; ; pass++ {
		raised := false
		for _, p := range r.ledger.Active() {
			if !r.needsDecision(p, playersInRound) {
				continue
			}

			if err := ctx.Err(); err != nil {
				return playersInRound, err
			}

			highest := r.ledger.HighestWager()
			d, err := r.source.Decide(ctx, p, Context{
				Street:       street,
				HighestWager: highest,
				Wager:        p.Wager(),
				Stack:        p.Stack(),
				Board:        board,
			})
			if err != nil {
				return playersInRound, fmt.Errorf("decision for %s: %w", p.ID(), err)
			}

			applied := r.apply(p, d, highest)
			if applied == action.Raise {
				raised = true
			}

			if applied == action.Fold || p.IsAllIn() {
				playersInRound--
			}

			logger.WithFields(logrus.Fields{
				"player": p.ID(),
				"action": applied,
				"wager":  p.Wager(),
				"pass":   pass,
			}).Debug("decision")

			if r.observer != nil {
				r.observer(p, applied, p.Wager())
			}
		}

		r.pots.OpenAllInPotsIfNecessary()

		if !raised {
			if !r.isSettled() {
				panic("betting round ended with a player short of the highest wager")
			}

			return playersInRound, nil
		}
	}
}

// needsDecision returns true if the player has to be asked
func (r *Round) needsDecision(p *ledger.Player, playersInRound int) bool {
	if !p.CanAct() || r.ledger.IsRaiser(p) {
		return false
	}

	return p.Wager() < r.ledger.HighestWager() || playersInRound > 1
}

// apply mutates the ledger and returns the action that actually happened
// A raise that doesn't lift the highest wager counts as a call
func (r *Round) apply(p *ledger.Player, d Decision, highest int) action.Action {
	switch d.Action {
	case action.Fold:
		p.Fold()
		return action.Fold
	case action.Raise:
		if d.Amount <= 0 {
			break
		}

		p.Bet(highest - p.Wager() + d.Amount)
		if p.Wager() <= highest {
			return action.Call
		}

		r.ledger.SetRaiser(p)
		if p.IsAllIn() {
			r.pots.OpenAllInPot(p)
		}

		return action.Raise
	}

	p.CallTo(highest)
	return action.Call
}

// isSettled returns true if every player who can act has matched the highest wager
func (r *Round) isSettled() bool {
	highest := r.ledger.HighestWager()
	for _, p := range r.ledger.Active() {
		if p.CanAct() && p.Wager() != highest {
			return false
		}
	}

	return true
}
