package main

import (
	"bufio"
	"context"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"holdem-table/pkg/playable/poker/action"
	"holdem-table/pkg/playable/poker/betting"
	"holdem-table/pkg/playable/poker/ledger"
	"holdem-table/pkg/playable/poker/texasholdem"
)

// console asks the player at the keyboard for every decision
type console struct {
	reader *bufio.Reader
	logger logrus.FieldLogger
	table  *texasholdem.Table
}

func newConsole(reader *bufio.Reader, logger logrus.FieldLogger) *console {
	return &console{
		reader: reader,
		logger: logger,
	}
}

// Decide prompts until the input is one of the three actions
func (c *console) Decide(ctx context.Context, p *ledger.Player, bc betting.Context) (betting.Decision, error) {
	if c.table != nil {
		printState(c.table, p, bc)
	}

	for {
		if err := ctx.Err(); err != nil {
			return betting.Decision{}, err
		}

		answer, err := c.getInput(pterm.Sprintf("%s, [1] call ${%d} [2] fold [3] raise", p, bc.ToCall()))
		if err != nil {
			return betting.Decision{}, err
		}

		a, err := action.FromString(answer)
		if err != nil {
			c.logger.WithField("player", p.ID()).Warn(err.Error())
			pterm.Error.Println("Please choose 1, 2 or 3")
			continue
		}

		if a != action.Raise {
			return betting.Decision{Action: a}, nil
		}

		amount, err := c.getAmount(ctx)
		if err != nil {
			return betting.Decision{}, err
		}

		return betting.Raise(amount), nil
	}
}

// getAmount prompts until the input is a whole number
func (c *console) getAmount(ctx context.Context) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		answer, err := c.getInput("Raise by")
		if err != nil {
			return 0, err
		}

		amount, err := strconv.Atoi(answer)
		if err != nil {
			c.logger.WithError(err).Warn("invalid raise amount")
			pterm.Error.Println("Please enter a number")
			continue
		}

		return amount, nil
	}
}

func (c *console) getInput(question string) (string, error) {
	pterm.Printf("%s: ", question)
	str, err := c.reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(str), nil
}
