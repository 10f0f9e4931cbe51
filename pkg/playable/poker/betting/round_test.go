package betting

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"holdem-table/pkg/playable/poker/action"
	"holdem-table/pkg/playable/poker/ledger"
	"holdem-table/pkg/playable/poker/potmanager"
)

type roundFixture struct {
	ledger *ledger.Ledger
	pots   *potmanager.PotManager
	script *Script
	round  *Round
}

func newRoundFixture(script map[string][]Decision, players ...*ledger.Player) *roundFixture {
	logger, _ := test.NewNullLogger()
	l := ledger.New(players...)

	participants := make([]potmanager.Participant, 0, len(players))
	for _, p := range l.Active() {
		participants = append(participants, p)
	}

	pm := potmanager.New(logger, participants)
	s := NewScript(script)

	return &roundFixture{
		ledger: l,
		pots:   pm,
		script: s,
		round:  NewRound(logger, l, pm, s),
	}
}

func TestRound_Run_everyoneCalls(t *testing.T) {
	a := assert.New(t)

	p1 := ledger.NewPlayer("p1", "", 100)
	p2 := ledger.NewPlayer("p2", "", 100)
	p3 := ledger.NewPlayer("p3", "", 100)
	f := newRoundFixture(map[string][]Decision{
		"p1": {Call()},
		"p2": {Call()},
		"p3": {Call()},
	}, p1, p2, p3)

	p2.Bet(2)
	p3.Bet(5)

	n, err := f.round.Run(context.Background(), PreFlop, nil, 3)
	a.NoError(err)
	a.Equal(3, n)
	a.Equal(5, p1.Wager())
	a.Equal(5, p2.Wager())
	a.Equal(5, p3.Wager())
	a.Equal(0, f.script.Remaining("p3"), "the big blind gets the option")
}

func TestRound_Run_reRaises(t *testing.T) {
	a := assert.New(t)

	p1 := ledger.NewPlayer("p1", "", 100)
	p2 := ledger.NewPlayer("p2", "", 100)
	f := newRoundFixture(map[string][]Decision{
		"p1": {Raise(10), Raise(10)},
		"p2": {Raise(10), Call(), Call()},
	}, p1, p2)

	n, err := f.round.Run(context.Background(), Flop, nil, 2)
	a.NoError(err)
	a.Equal(2, n)
	a.Equal(30, p1.Wager())
	a.Equal(30, p2.Wager())
	a.Equal(0, f.script.Remaining("p1"))
	a.Equal(0, f.script.Remaining("p2"))
	a.Nil(f.ledger.Raiser(), "the raise marker is cleared after the round")
}

func TestRound_Run_terminatesAfterManyRaises(t *testing.T) {
	a := assert.New(t)

	const raises = 25
	p1Script := make([]Decision, 0, raises+1)
	p2Script := make([]Decision, 0, raises)
	for i := 0; i < raises; i++ {
		p1Script = append(p1Script, Raise(1))
		p2Script = append(p2Script, Raise(1))
	}
	p1Script = append(p1Script, Call())

	p1 := ledger.NewPlayer("p1", "", 100)
	p2 := ledger.NewPlayer("p2", "", 100)
	f := newRoundFixture(map[string][]Decision{
		"p1": p1Script,
		"p2": p2Script,
	}, p1, p2)

	n, err := f.round.Run(context.Background(), Turn, nil, 2)
	a.NoError(err)
	a.Equal(2, n)
	a.Equal(2*raises, p1.Wager())
	a.Equal(2*raises, p2.Wager())
}

func TestRound_Run_fold(t *testing.T) {
	a := assert.New(t)

	p1 := ledger.NewPlayer("p1", "", 100)
	p2 := ledger.NewPlayer("p2", "", 100)
	p3 := ledger.NewPlayer("p3", "", 100)
	f := newRoundFixture(map[string][]Decision{
		"p1": {Raise(10)},
		"p2": {Fold()},
		"p3": {Call(), Call()},
	}, p1, p2, p3)

	n, err := f.round.Run(context.Background(), River, nil, 3)
	a.NoError(err)
	a.Equal(2, n)
	a.True(p2.IsFolded())
	a.Equal(0, p2.Wager())
	a.Equal(10, p3.Wager())
	a.Equal([]*ledger.Player{p1, p3}, f.ledger.Contesting())
}

func TestRound_Run_allInRaiseOpensPot(t *testing.T) {
	a := assert.New(t)

	p1 := ledger.NewPlayer("p1", "", 20)
	p2 := ledger.NewPlayer("p2", "", 100)
	p3 := ledger.NewPlayer("p3", "", 100)
	f := newRoundFixture(map[string][]Decision{
		"p1": {Raise(50)},
		"p2": {Call(), Call()},
		"p3": {Call(), Call()},
	}, p1, p2, p3)

	n, err := f.round.Run(context.Background(), PreFlop, nil, 3)
	a.NoError(err)
	a.Equal(2, n)
	a.True(p1.IsAllIn())
	a.Equal(20, p2.Wager())
	a.Equal(20, p3.Wager())

	pots := f.pots.Pots()
	if a.Equal(1, len(pots)) {
		a.Equal(20, *pots[0].Cap)
	}
}

func TestRound_Run_shortCircuit(t *testing.T) {
	a := assert.New(t)

	p1 := ledger.NewPlayer("p1", "", 10)
	p2 := ledger.NewPlayer("p2", "", 100)
	f := newRoundFixture(map[string][]Decision{
		"p2": {Call()},
	}, p1, p2)

	p1.Bet(10)
	p2.Bet(5)

	n, err := f.round.Run(context.Background(), PreFlop, nil, 1)
	a.NoError(err)
	a.Equal(1, n)
	a.Equal(10, p2.Wager(), "a player who owes chips is still asked")

	// nobody left to bet against
	n, err = f.round.Run(context.Background(), Flop, nil, n)
	a.NoError(err)
	a.Equal(1, n)
}

func TestRound_Run_nonPositiveRaiseIsCall(t *testing.T) {
	a := assert.New(t)

	p1 := ledger.NewPlayer("p1", "", 100)
	p2 := ledger.NewPlayer("p2", "", 100)
	f := newRoundFixture(map[string][]Decision{
		"p1": {Raise(0)},
		"p2": {Raise(-5)},
	}, p1, p2)

	p2.Bet(5)

	var seen []action.Action
	f.round.SetObserver(func(p *ledger.Player, act action.Action, wager int) {
		seen = append(seen, act)
	})

	n, err := f.round.Run(context.Background(), PreFlop, nil, 2)
	a.NoError(err)
	a.Equal(2, n)
	a.Equal(5, p1.Wager())
	a.Equal(5, p2.Wager())
	a.Equal([]action.Action{action.Call, action.Call}, seen)
}

func TestRound_Run_errors(t *testing.T) {
	a := assert.New(t)

	p1 := ledger.NewPlayer("p1", "", 100)
	p2 := ledger.NewPlayer("p2", "", 100)
	f := newRoundFixture(map[string][]Decision{
		"p1": {Call()},
	}, p1, p2)

	_, err := f.round.Run(context.Background(), PreFlop, nil, 2)
	a.ErrorIs(err, ErrScriptExhausted)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = f.round.Run(ctx, PreFlop, nil, 2)
	a.ErrorIs(err, context.Canceled)
}

func TestRound_Run_sourceSeesContext(t *testing.T) {
	a := assert.New(t)

	logger, _ := test.NewNullLogger()
	p1 := ledger.NewPlayer("p1", "", 100)
	p2 := ledger.NewPlayer("p2", "", 100)
	l := ledger.New(p1, p2)
	pm := potmanager.New(logger, []potmanager.Participant{p1, p2})

	p2.Bet(5)

	var contexts []Context
	source := SourceFunc(func(ctx context.Context, p *ledger.Player, bc Context) (Decision, error) {
		contexts = append(contexts, bc)
		return Call(), nil
	})

	_, err := NewRound(logger, l, pm, source).Run(context.Background(), Flop, nil, 2)
	a.NoError(err)
	if a.Equal(2, len(contexts)) {
		a.Equal(Flop, contexts[0].Street)
		a.Equal(5, contexts[0].HighestWager)
		a.Equal(0, contexts[0].Wager)
		a.Equal(100, contexts[0].Stack)
		a.Equal(5, contexts[0].ToCall())
		a.Equal(0, contexts[1].ToCall())
	}
}

func TestStreet(t *testing.T) {
	a := assert.New(t)
	a.Equal("pre-flop", PreFlop.String())
	a.Equal("river", River.String())
	a.Equal(3, Flop.BoardSize())
	a.Equal(5, River.BoardSize())
	a.Equal([]Street{PreFlop, Flop, Turn, River}, Streets)
	a.Panics(func() { _ = Street(7).String() })
}
