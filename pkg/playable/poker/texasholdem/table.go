package texasholdem

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"holdem-table/internal/rng"
	"holdem-table/pkg/deck"
	"holdem-table/pkg/handrank"
	"holdem-table/pkg/playable/poker/betting"
	"holdem-table/pkg/playable/poker/blind"
	"holdem-table/pkg/playable/poker/ledger"
	"holdem-table/pkg/playable/poker/potmanager"
)

// ErrNotEnoughPlayers is an error when a hand is started with less than two active players
var ErrNotEnoughPlayers = errors.New("there must be at least two players with chips")

// ErrHandInProgress is an error when the table is changed while a hand is being played
var ErrHandInProgress = errors.New("a hand is in progress")

// Options configures the blinds of the table
type Options struct {
	BigBlind   int
	SmallBlind int
	DonorBlind int

	// BlindIncreaseEvery is the number of hands between blind increases, 0 never increases them
	BlindIncreaseEvery int
	BigBlindIncrease   int
	SmallBlindIncrease int

	// Seed makes random deals repeatable, 0 uses crypto/rand
	Seed int64
}

// DefaultOptions returns the default options for the table
func DefaultOptions() Options {
	return Options{
		BigBlind:           5,
		SmallBlind:         2,
		DonorBlind:         0,
		BlindIncreaseEvery: 5,
		BigBlindIncrease:   5,
		SmallBlindIncrease: 2,
	}
}

func validateOptions(opts Options) error {
	if opts.BigBlind < 0 || opts.SmallBlind < 0 || opts.DonorBlind < 0 {
		return errors.New("blinds must be >= 0")
	}

	if opts.SmallBlind > opts.BigBlind {
		return errors.New("small blind must not be more than the big blind")
	}

	if opts.BlindIncreaseEvery < 0 || opts.BigBlindIncrease < 0 || opts.SmallBlindIncrease < 0 {
		return errors.New("blind increases must be >= 0")
	}

	return nil
}

// Table is a game of No Limit Texas Hold'em played one hand at a time
type Table struct {
	logger      logrus.FieldLogger
	options     Options
	deck        *deck.Deck
	ledger      *ledger.Ledger
	blinds      *blind.Rotation
	source      betting.Source
	ranker      handrank.Ranker
	dealerState DealerState
	community   deck.Hand
	potManager  *potmanager.PotManager
	handsPlayed int

	// hand is the hand being played, nil between hands
	hand *hand
}

// NewTable returns a table with the players seated in order
func NewTable(logger logrus.FieldLogger, opts Options, source betting.Source, ranker handrank.Ranker, players ...*ledger.Player) (*Table, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	d := deck.New()
	d.SetGenerator(rng.Seeded(opts.Seed))

	l := ledger.New()
	for _, p := range players {
		if err := l.Seat(p); err != nil {
			return nil, err
		}
	}

	return &Table{
		logger:      logger,
		options:     opts,
		deck:        d,
		ledger:      l,
		blinds:      blind.NewRotation(opts.BigBlind, opts.SmallBlind, opts.DonorBlind),
		source:      source,
		ranker:      ranker,
		dealerState: DealerStateInit,
		community:   make(deck.Hand, 0, 5),
	}, nil
}

// AddPlayer seats a player at the end of the table
func (t *Table) AddPlayer(p *ledger.Player) error {
	if t.dealerState.inProgress() {
		return ErrHandInProgress
	}

	return t.ledger.Seat(p)
}

// Players returns every seated player, broke players included
func (t *Table) Players() []*ledger.Player {
	return t.ledger.Seated()
}

// Active returns the players who will be dealt into the next hand
func (t *Table) Active() []*ledger.Player {
	return t.ledger.Active()
}

// Find returns the seated player with the ID
func (t *Table) Find(id string) (*ledger.Player, error) {
	return t.ledger.Find(id)
}

// HandsPlayed returns the number of hands that were cleaned up
func (t *Table) HandsPlayed() int {
	return t.handsPlayed
}

// DealerState returns where the table is within the current hand
func (t *Table) DealerState() DealerState {
	return t.dealerState
}

// Community returns the board cards dealt so far
func (t *Table) Community() deck.Hand {
	return t.community.Clone()
}

// Blinds returns the current blinds
func (t *Table) Blinds() []blind.Blind {
	return t.blinds.Blinds()
}

// Pots returns the pots of the hand in progress
func (t *Table) Pots() potmanager.Pots {
	if t.potManager == nil {
		return potmanager.Pots{}
	}

	return t.potManager.Pots()
}

// Deck returns the deck the table deals from
func (t *Table) Deck() *deck.Deck {
	return t.deck
}

// TotalChips returns every chip on the table
func (t *Table) TotalChips() int {
	return t.ledger.TotalChips()
}

// IsOver returns true if fewer than two players have chips left
func (t *Table) IsOver() bool {
	return len(t.ledger.Active()) < 2
}

// ResetTable abandons the hand in progress
// Every wager goes back to the player who made it, and the blinds don't move
func (t *Table) ResetTable() {
	if !t.dealerState.inProgress() {
		return
	}

	for _, p := range t.ledger.Active() {
		p.Win(p.Wager())
	}

	t.logger.WithField("state", t.dealerState.String()).Warn("abandoned hand")

	t.deck.Reset()
	t.community = make(deck.Hand, 0, 5)
	if t.potManager != nil {
		t.potManager.Clear()
	}

	t.potManager = nil
	t.hand = nil
	t.ledger.ResetForHand()
	t.dealerState = DealerStateInit
}

// cleanup prepares the table for the next hand
func (t *Table) cleanup() []string {
	t.dealerState = DealerStateCleanup

	// every wager was paid out by the settlement
	t.ledger.ResetForHand()
	broke := t.ledger.RemoveBroke()
	brokeIDs := make([]string, len(broke))
	for i, p := range broke {
		brokeIDs[i] = p.ID()
		t.hand.logger.WithField("player", p.ID()).Info("player is out of chips")
	}

	t.deck.Reset()
	t.community = make(deck.Hand, 0, 5)
	t.blinds.Rotate(t.ledger.ActiveIDs())

	t.handsPlayed++
	if every := t.options.BlindIncreaseEvery; every > 0 && t.handsPlayed%every == 0 {
		t.blinds.Increase(t.options.BigBlindIncrease, t.options.SmallBlindIncrease)
		t.hand.logger.WithFields(logrus.Fields{
			"big":   t.blinds.Amount(blind.Big),
			"small": t.blinds.Amount(blind.Small),
		}).Info("blinds increased")
	}

	t.potManager.Clear()
	t.potManager = nil
	t.hand = nil

	return brokeIDs
}

func (t *Table) String() string {
	return fmt.Sprintf("table with %d active players after %d hands", len(t.ledger.Active()), t.handsPlayed)
}
