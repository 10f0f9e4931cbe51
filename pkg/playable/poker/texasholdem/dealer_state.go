package texasholdem

import (
	"encoding/json"
)

// DealerState represents where the table is within a hand
type DealerState int

// constants for DealerState
const (
	DealerStateInit DealerState = iota
	DealerStateDeal
	DealerStatePreFlopBettingRound
	DealerStateDealFlop
	DealerStateFlopBettingRound
	DealerStateDealTurn
	DealerStateTurnBettingRound
	DealerStateDealRiver
	DealerStateFinalBettingRound
	DealerStateShowdown
	DealerStateCleanup
)

func (d DealerState) String() string {
	switch d {
	case DealerStateInit:
		return "init"
	case DealerStateDeal:
		return "deal"
	case DealerStatePreFlopBettingRound:
		return "pre-flop-betting-round"
	case DealerStateDealFlop:
		return "deal-flop"
	case DealerStateFlopBettingRound:
		return "flop-betting-round"
	case DealerStateDealTurn:
		return "deal-turn"
	case DealerStateTurnBettingRound:
		return "turn-betting-round"
	case DealerStateDealRiver:
		return "deal-river"
	case DealerStateFinalBettingRound:
		return "final-betting-round"
	case DealerStateShowdown:
		return "showdown"
	case DealerStateCleanup:
		return "cleanup"
	}

	return ""
}

// MarshalJSON encodes JSON
func (d DealerState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(d),
		Name: d.String(),
	})
}

// inProgress returns true if a hand was started but never cleaned up
func (d DealerState) inProgress() bool {
	return d != DealerStateInit && d != DealerStateCleanup
}
