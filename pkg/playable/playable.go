package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"holdem-table/pkg/deck"
)

// LogMessage is the format a hand narrates itself in
// If PlayerIDs is empty, it's a general statement, otherwise the message reads like "{player} did X, Y, Z"
type LogMessage struct {
	UUID      string       `json:"uuid"`
	PlayerIDs []string     `json:"playerIds"`
	Cards     []*deck.Card `json:"cards"`
	Message   string       `json:"message"`
	Time      time.Time    `json:"time"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerID string, format string, a ...interface{}) *LogMessage {
	var playerIDs []string
	if playerID != "" {
		playerIDs = []string{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// CardsLogMessage returns a new LogMessage that shows cards
func CardsLogMessage(playerID string, cards deck.Hand, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage(playerID, format, a...)
	lm.Cards = cards.Clone()
	return lm
}

// SimpleLogMessageSlice returns a single log message
func SimpleLogMessageSlice(playerID string, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(playerID, format, a...)}
}
