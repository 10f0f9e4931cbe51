package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 52, deck.CardsLeft())

	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, *deck.Cards[0])

	assert.Equal(t, Card{Rank: 14, Suit: Spades}, *deck.Cards[51])

	const unshuffled = "79441517e1184e0e3c37383d2f7bc54996872dd8"
	assert.Equal(t, unshuffled, deck.HashCode())

	_, _ = deck.DealRandomCards(5)
	assert.NotEqual(t, unshuffled, deck.HashCode())

	deck.Reset()
	assert.Equal(t, unshuffled, deck.HashCode())
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	if !deck.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if deck.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := deck.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	card, err := deck.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEndOfDeck {
		t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
	}

	deck.Reset()
	assert.True(t, deck.CanDraw(52), "expected Reset() to restore the deck")
}

func TestDeck_DealRandomCards(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.SetGenerator(rand.New(rand.NewSource(7))) // nolint:gosec

	seen := make(Hand, 0, 52)
	for i := 0; i < 26; i++ {
		hand, err := d.DealRandomCards(2)
		a.NoError(err)
		a.Equal(2, len(hand))

		for _, card := range hand {
			a.False(seen.HasCard(card), "card %s dealt twice", card)
			a.False(Hand(d.Cards).HasCard(card), "card %s still in the deck", card)
			seen.AddCard(card)
		}
	}

	a.Equal(0, d.CardsLeft())

	hand, err := d.DealRandomCards(1)
	a.Equal(ErrEndOfDeck, err)
	a.Nil(hand)

	d.Reset()
	a.Equal(52, d.CardsLeft())
}

func TestDeck_RemoveCard(t *testing.T) {
	a := assert.New(t)
	d := New()
	a.True(d.RemoveCard(CardFromString("5s")))
	a.False(d.RemoveCard(CardFromString("5s")))
	a.Equal(51, len(d.Cards))

	a.True(d.RemoveCard(CardFromString("5c")))
	a.False(d.RemoveCard(CardFromString("5c")))
	a.Equal(50, len(d.Cards))
}
