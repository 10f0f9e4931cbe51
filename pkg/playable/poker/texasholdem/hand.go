package texasholdem

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdem-table/pkg/deck"
	"holdem-table/pkg/handrank"
	"holdem-table/pkg/playable"
	"holdem-table/pkg/playable/poker/action"
	"holdem-table/pkg/playable/poker/betting"
	"holdem-table/pkg/playable/poker/blind"
	"holdem-table/pkg/playable/poker/ledger"
	"holdem-table/pkg/playable/poker/potmanager"
)

// hand holds what only lives for a single hand
type hand struct {
	id     string
	logger logrus.FieldLogger
	log    []*playable.LogMessage
	ranks  map[string]handrank.Rank
}

func (h *hand) addLog(lm ...*playable.LogMessage) {
	h.log = append(h.log, lm...)
}

// HandResult is what happened during a hand
type HandResult struct {
	HandID    string                 `json:"handId"`
	Payouts   map[string]int         `json:"payouts"`
	Remainder int                    `json:"remainder"`
	Pots      potmanager.Pots        `json:"pots"`
	Community deck.Hand              `json:"community"`
	Broke     []string               `json:"broke"`
	Log       []*playable.LogMessage `json:"log"`
}

// bettingStates maps each street to the states that deal it and bet on it
var bettingStates = map[betting.Street][2]DealerState{
	betting.PreFlop: {DealerStateDeal, DealerStatePreFlopBettingRound},
	betting.Flop:    {DealerStateDealFlop, DealerStateFlopBettingRound},
	betting.Turn:    {DealerStateDealTurn, DealerStateTurnBettingRound},
	betting.River:   {DealerStateDealRiver, DealerStateFinalBettingRound},
}

// PlayHand plays one hand from the blinds to the cleanup
// A hand left unfinished by an error is abandoned before the next one starts
func (t *Table) PlayHand(ctx context.Context) (*HandResult, error) {
	t.ResetTable()

	if t.IsOver() {
		return nil, ErrNotEnoughPlayers
	}

	handID := uuid.New().String()
	t.hand = &hand{
		id:     handID,
		logger: t.logger.WithField("hand", handID),
		log:    make([]*playable.LogMessage, 0),
		ranks:  make(map[string]handrank.Rank),
	}

	t.dealerState = DealerStateInit
	chipsBefore := t.ledger.TotalChips()

	active := t.ledger.Active()
	participants := make([]potmanager.Participant, len(active))
	for i, p := range active {
		participants[i] = p
	}

	t.potManager = potmanager.New(t.hand.logger, participants)
	t.blinds.Initialize(t.ledger.ActiveIDs())
	t.collectBlinds()

	round := betting.NewRound(t.hand.logger, t.ledger, t.potManager, t.source)
	round.SetObserver(func(p *ledger.Player, a action.Action, wager int) {
		t.hand.addLog(playable.SimpleLogMessage(p.ID(), "%s", a.LogMessage(wager)))
	})

	playersInRound := t.ledger.CanActCount()
	for _, street := range betting.Streets {
		if len(t.ledger.Contesting()) <= 1 {
			break
		}

		states := bettingStates[street]
		t.dealerState = states[0]
		if err := t.deal(street); err != nil {
			return nil, err
		}

		t.dealerState = states[1]

		var err error
		playersInRound, err = round.Run(ctx, street, t.Community(), playersInRound)
		if err != nil {
			return nil, fmt.Errorf("%s betting: %w", street, err)
		}
	}

	t.dealerState = DealerStateShowdown
	wagered := t.ledger.TotalWagered()
	settlement, err := t.potManager.Settle(t.resolver())
	if err != nil {
		return nil, fmt.Errorf("showdown: %w", err)
	}

	paid := 0
	for _, amount := range settlement.Payouts {
		paid += amount
	}

	if paid+settlement.Remainder != wagered {
		panic(fmt.Sprintf("paid %d with %d left over from %d wagered", paid, settlement.Remainder, wagered))
	}

	for _, id := range t.ledger.ActiveIDs() {
		if amount, ok := settlement.Payouts[id]; ok {
			t.hand.addLog(playable.SimpleLogMessage(id, "won ${%d}", amount))
		}
	}

	result := &HandResult{
		HandID:    handID,
		Payouts:   settlement.Payouts,
		Remainder: settlement.Remainder,
		Pots:      settlement.Pots,
		Community: t.Community(),
		Log:       t.hand.log,
	}

	result.Broke = t.cleanup()

	if chipsAfter := t.ledger.TotalChips() + settlement.Remainder; chipsAfter != chipsBefore {
		panic(fmt.Sprintf("the table had %d chips before the hand and %d after", chipsBefore, chipsAfter))
	}

	return result, nil
}

// collectBlinds takes each blind from its holder
// A holder who can't cover the blind goes all-in
func (t *Table) collectBlinds() {
	for _, b := range t.blinds.Blinds() {
		if b.Amount == 0 || b.Holder == "" {
			continue
		}

		p, err := t.ledger.Find(b.Holder)
		if err != nil {
			panic(fmt.Sprintf("blind holder %s is not seated", b.Holder))
		}

		paid := p.Bet(b.Amount)
		t.hand.logger.WithFields(logrus.Fields{
			"player": p.ID(),
			"blind":  string(b.Role),
			"amount": paid,
		}).Debug("posted blind")
		t.hand.addLog(playable.SimpleLogMessage(p.ID(), "posted the %s blind of ${%d}", b.Role, paid))
	}
}

// deal hands out the cards of the street
func (t *Table) deal(street betting.Street) error {
	if street == betting.PreFlop {
		for _, p := range t.ledger.Active() {
			cards, err := t.deck.DealRandomCards(2)
			if err != nil {
				return err
			}

			p.SetHole(cards)
		}

		t.hand.addLog(playable.SimpleLogMessage("", "dealt two cards to each player"))
		return nil
	}

	cards, err := t.deck.DealRandomCards(street.BoardSize() - len(t.community))
	if err != nil {
		return err
	}

	t.community = append(t.community, cards...)
	t.hand.logger.WithFields(logrus.Fields{
		"street": street.String(),
		"cards":  cards.String(),
	}).Debug("dealt community cards")
	t.hand.addLog(playable.CardsLogMessage("", cards, "dealt the %s", street))

	return nil
}

// resolver ranks the contenders of a pot against the board
// Ranks are kept for the rest of the hand since a player can contend for several pots
func (t *Table) resolver() potmanager.Resolver {
	return potmanager.ResolverFunc(func(contenders []potmanager.Participant) ([]potmanager.Participant, error) {
		wm := potmanager.NewWinManager()
		for _, c := range contenders {
			rank, err := t.rank(c.ID())
			if err != nil {
				return nil, err
			}

			wm.AddParticipant(c, int(rank))
		}

		return wm.Best(), nil
	})
}

func (t *Table) rank(id string) (handrank.Rank, error) {
	if rank, ok := t.hand.ranks[id]; ok {
		return rank, nil
	}

	p, err := t.ledger.Find(id)
	if err != nil {
		return 0, err
	}

	rank, err := t.ranker.RankHand(p.Hole(), t.community)
	if err != nil {
		return 0, fmt.Errorf("could not rank hand of %s: %w", id, err)
	}

	t.hand.ranks[id] = rank

	msg := "shows"
	if description, err := handrank.Describe(p.Hole(), t.community); err == nil {
		msg = fmt.Sprintf("shows %s", description)
	}

	t.hand.addLog(playable.CardsLogMessage(id, p.Hole(), "%s", msg))
	return rank, nil
}

// BlindHolder returns the player holding the role, or nil before the first hand
func (t *Table) BlindHolder(role blind.Role) *ledger.Player {
	p, err := t.ledger.Find(t.blinds.Holder(role))
	if err != nil {
		return nil
	}

	return p
}
