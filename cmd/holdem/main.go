package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"holdem-table/internal/config"
	"holdem-table/internal/util"
	"holdem-table/pkg/handrank"
	"holdem-table/pkg/playable/poker/ledger"
	"holdem-table/pkg/playable/poker/texasholdem"
)

var players = flag.String("players", ",", "comma separated player names, blank names get a random one")
var hands = flag.Int("hands", 0, "the number of hands to play, 0 plays until one player has every chip")

func main() {
	flag.Parse()
	setupLogger()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}

	cfg := config.Instance()

	names := strings.Split(*players, ",")
	seats := make([]*ledger.Player, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			name = util.GetRandomName()
		}

		seats[i] = ledger.NewPlayer("", name, cfg.Table.StartingStack)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := newConsole(bufio.NewReader(os.Stdin), logrus.StandardLogger())
	tbl, err := texasholdem.NewTable(logrus.StandardLogger(), tableOptions(cfg), c, handrank.Evaluator{}, seats...)
	if err != nil {
		logrus.WithError(err).Fatal("could not create the table")
	}

	c.table = tbl

	for played := 0; *hands == 0 || played < *hands; played++ {
		if tbl.IsOver() {
			break
		}

		result, err := tbl.PlayHand(ctx)
		if err != nil {
			logrus.WithError(err).Error("hand abandoned")
			tbl.ResetTable()
			break
		}

		printResult(tbl, result)
	}

	printStandings(tbl)
}

func tableOptions(cfg config.Config) texasholdem.Options {
	return texasholdem.Options{
		BigBlind:           cfg.Table.BigBlind,
		SmallBlind:         cfg.Table.SmallBlind,
		DonorBlind:         cfg.Table.DonorBlind,
		BlindIncreaseEvery: cfg.Table.BlindIncreaseEvery,
		BigBlindIncrease:   cfg.Table.BigBlindIncrease,
		SmallBlindIncrease: cfg.Table.SmallBlindIncrease,
		Seed:               cfg.Table.Seed,
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	format := config.Instance().Log.Format
	if env := os.Getenv("LOG_FORMAT"); env != "" {
		format = env
	}

	if strings.ToLower(format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
