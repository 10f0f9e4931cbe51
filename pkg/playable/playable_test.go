package playable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"holdem-table/pkg/deck"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage("", "test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Nil(t, lm.PlayerIDs)
	assert.False(t, lm.Time.Before(before))
	assert.False(t, time.Now().Before(lm.Time))
	assert.Nil(t, lm.Cards)
	assert.NotEmpty(t, lm.UUID)
}

func TestSimpleLogMessage_withPlayerID(t *testing.T) {
	lm := SimpleLogMessage("p1", "test %d", 4)
	assert.Equal(t, "test 4", lm.Message)
	assert.Equal(t, []string{"p1"}, lm.PlayerIDs)
}

func TestCardsLogMessage(t *testing.T) {
	a := assert.New(t)

	cards := deck.CardsFromString("14s,13s")
	lm := CardsLogMessage("p1", cards, "shows %s", "a pair")
	a.Equal("shows a pair", lm.Message)
	a.Equal("14s,13s", deck.CardsToString(lm.Cards))

	cards[0] = deck.CardFromString("2c")
	a.Equal("14s,13s", deck.CardsToString(lm.Cards), "cards are copied")
}

func TestSimpleLogMessageSlice(t *testing.T) {
	lms := SimpleLogMessageSlice("", "test %d", 38)
	assert.Equal(t, 1, len(lms))
	assert.Equal(t, "test 38", lms[0].Message)
}
