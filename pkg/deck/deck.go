package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"holdem-table/internal/rng"
)

// ErrEndOfDeck is an error when more cards are requested than are left in the deck
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards  []*Card `json:"cards"`
	picker rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. Random deals use crypto/rand unless SetGenerator is called
func New() *Deck {
	d := &Deck{
		picker: rng.Crypto{},
	}

	d.buildDeck()
	return d
}

// SetGenerator overrides the random number generator DealRandomCards picks with
func (d *Deck) SetGenerator(g rng.Generator) {
	d.picker = g
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Reset restores the full 52 cards in unshuffled order
func (d *Deck) Reset() {
	d.buildDeck()
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// DealRandomCards removes n cards picked at random from anywhere in the deck
func (d *Deck) DealRandomCards(n int) (Hand, error) {
	if !d.CanDraw(n) {
		return nil, ErrEndOfDeck
	}

	hand := make(Hand, 0, n)
	for i := 0; i < n; i++ {
		index := d.picker.Intn(len(d.Cards))
		hand.AddCard(d.Cards[index])
		d.Cards = append(d.Cards[:index], d.Cards[index+1:]...)
	}

	return hand, nil
}

// RemoveCard takes a specific card out of the deck
// Returns false if the card was already dealt
func (d *Deck) RemoveCard(card *Card) bool {
	for i, c := range d.Cards {
		if c.Equal(card) {
			d.Cards = append(d.Cards[:i], d.Cards[i+1:]...)
			return true
		}
	}

	return false
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
