package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"holdem-table/pkg/deck"
	"holdem-table/pkg/playable/poker/betting"
	"holdem-table/pkg/playable/poker/blind"
	"holdem-table/pkg/playable/poker/ledger"
	"holdem-table/pkg/playable/poker/texasholdem"
)

// printState renders the other players, the board and the acting player's hand
func printState(tbl *texasholdem.Table, acting *ledger.Player, bc betting.Context) {
	var others []pterm.Panel
	for _, p := range tbl.Active() {
		if p == acting {
			continue
		}

		others = append(others, pterm.Panel{Data: playerBox(tbl, p, false)})
	}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		others,
		{{Data: boardBox(tbl, bc)}},
		{{Data: playerBox(tbl, acting, true)}},
	}).Render()
}

func playerBox(tbl *texasholdem.Table, p *ledger.Player, acting bool) string {
	padding := 4
	if acting {
		padding = 10
	}

	box := pterm.DefaultBox.WithLeftPadding(padding).WithRightPadding(padding).WithTopPadding(1).WithBottomPadding(1)

	var status string
	switch p.Status() {
	case ledger.Folded:
		status = pterm.LightRed("Folded")
	case ledger.AllIn:
		status = pterm.LightYellow("All-in")
	default:
		status = pterm.LightGreen("Active")
	}

	var roles []string
	for _, role := range blind.Roles {
		if holder := tbl.BlindHolder(role); holder == p {
			roles = append(roles, string(role))
		}
	}

	body := fmt.Sprintf("%s %s\nWager: %d\nStack: %d", status, strings.Join(roles, " "), p.Wager(), p.Stack())
	if acting {
		body += "\n" + pterm.BgGreen.Sprint(cardsString(p.Hole()))
	}

	return box.WithTitle(p.String()).WithTitleTopLeft().Sprint(body)
}

func boardBox(tbl *texasholdem.Table, bc betting.Context) string {
	board := cardsString(bc.Board)
	if board == "" {
		board = "no cards"
	}

	pots := make([]string, 0)
	for i, pot := range tbl.Pots() {
		pots = append(pots, fmt.Sprintf("Pot %d: %d", i, pot.Amount))
	}

	return pterm.DefaultBox.WithTitle(pterm.LightYellow("|" + strings.ToUpper(bc.Street.String()) + "|")).
		WithTitleTopCenter().
		Sprintf("%s\nHighest wager: %d\n%s", board, bc.HighestWager, strings.Join(pots, " | "))
}

func printResult(tbl *texasholdem.Table, result *texasholdem.HandResult) {
	lines := make([]string, 0, len(result.Log))
	for _, lm := range result.Log {
		who := ""
		if len(lm.PlayerIDs) > 0 {
			if p, err := tbl.Find(lm.PlayerIDs[0]); err == nil {
				who = pterm.LightCyan(p.String()) + " "
			}
		}

		line := who + lm.Message
		if len(lm.Cards) > 0 {
			line += " " + cardsString(lm.Cards)
		}

		lines = append(lines, line)
	}

	if result.Remainder > 0 {
		lines = append(lines, fmt.Sprintf("%d chips could not be split evenly", result.Remainder))
	}

	for _, id := range result.Broke {
		if p, err := tbl.Find(id); err == nil {
			lines = append(lines, pterm.LightRed(p.String()+" is out of chips"))
		}
	}

	pterm.DefaultBox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().
		WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1).
		Println(strings.Join(lines, "\n"))
}

func printStandings(tbl *texasholdem.Table) {
	data := pterm.TableData{{"Player", "Stack"}}
	for _, p := range tbl.Players() {
		data = append(data, []string{p.String(), fmt.Sprintf("%d", p.Stack())})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
	}

	pterm.Info.Printfln("%d hands played", tbl.HandsPlayed())
}

func cardsString(cards deck.Hand) string {
	s := make([]string, len(cards))
	for i, card := range cards {
		s[i] = card.String()
	}

	return strings.Join(s, " - ")
}
