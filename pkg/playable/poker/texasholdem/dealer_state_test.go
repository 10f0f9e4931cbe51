package texasholdem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDealerState_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("init", DealerStateInit.String())
	a.Equal("deal", DealerStateDeal.String())
	a.Equal("pre-flop-betting-round", DealerStatePreFlopBettingRound.String())
	a.Equal("deal-flop", DealerStateDealFlop.String())
	a.Equal("flop-betting-round", DealerStateFlopBettingRound.String())
	a.Equal("deal-turn", DealerStateDealTurn.String())
	a.Equal("turn-betting-round", DealerStateTurnBettingRound.String())
	a.Equal("deal-river", DealerStateDealRiver.String())
	a.Equal("final-betting-round", DealerStateFinalBettingRound.String())
	a.Equal("showdown", DealerStateShowdown.String())
	a.Equal("cleanup", DealerStateCleanup.String())
	a.Equal("", DealerState(-1).String())
}

func TestDealerState_MarshalJSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(DealerStateShowdown)
	a.NoError(err)
	a.Equal(`{"id":9,"name":"showdown"}`, string(b))
}

func TestDealerState_inProgress(t *testing.T) {
	a := assert.New(t)
	a.False(DealerStateInit.inProgress())
	a.False(DealerStateCleanup.inProgress())
	a.True(DealerStateDeal.inProgress())
	a.True(DealerStateShowdown.inProgress())
}
