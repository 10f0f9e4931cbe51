// Package handrank ranks seven-card hold'em hands
package handrank

import (
	"errors"
	"fmt"

	"github.com/paulhankin/poker"

	"holdem-table/pkg/deck"
)

// ErrIncompleteHand is returned when hole and board cards do not add up to seven
var ErrIncompleteHand = errors.New("a hand needs two hole cards and five board cards")

// Rank is the strength of a hand. A higher rank beats a lower one
type Rank int16

// Ranker ranks a player's hole cards against the community board
type Ranker interface {
	RankHand(hole, board deck.Hand) (Rank, error)
}

// Evaluator is the default Ranker
type Evaluator struct{}

// RankHand returns the rank of the best five cards out of hole and board
func (Evaluator) RankHand(hole, board deck.Hand) (Rank, error) {
	cards, err := sevenCards(hole, board)
	if err != nil {
		return 0, err
	}

	return Rank(poker.Eval7(&cards)), nil
}

// Compare returns -1 if a is weaker than b, 1 if a is stronger and 0 on a tie
func Compare(a, b Rank) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// Describe returns a human readable name of the hand, i.e., "two pair, tens and nines"
func Describe(hole, board deck.Hand) (string, error) {
	cards, err := sevenCards(hole, board)
	if err != nil {
		return "", err
	}

	return poker.Describe(cards[:])
}

func sevenCards(hole, board deck.Hand) ([7]poker.Card, error) {
	var cards [7]poker.Card
	if len(hole)+len(board) != 7 {
		return cards, ErrIncompleteHand
	}

	for i, card := range append(board.Clone(), hole...) {
		c, err := toPokerCard(card)
		if err != nil {
			return cards, fmt.Errorf("invalid card %s: %w", deck.CardToString(card), err)
		}

		cards[i] = c
	}

	return cards, nil
}

// toPokerCard maps our suits onto club, diamond, heart, spade (0-3) and ranks onto ace-low 1-13
func toPokerCard(card *deck.Card) (poker.Card, error) {
	var c poker.Card
	var suit uint8
	switch card.Suit {
	case deck.Clubs:
		suit = 0
	case deck.Diamonds:
		suit = 1
	case deck.Hearts:
		suit = 2
	case deck.Spades:
		suit = 3
	default:
		return c, fmt.Errorf("unknown suit: %s", card.Suit)
	}

	rank := card.Rank
	if rank == deck.Ace {
		rank = 1
	}

	return poker.MakeCard(poker.Suit(suit), poker.Rank(rank))
}
