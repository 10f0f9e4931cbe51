package action

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Action represents a decision a player can make when it's their turn
type Action string

// action constants
const (
	Call  Action = "call"
	Fold  Action = "fold"
	Raise Action = "raise"
)

var allowedActions = map[Action]bool{
	Call:  true,
	Fold:  true,
	Raise: true,
}

// menu is the numbered prompt order
var menu = []Action{Call, Fold, Raise}

// FromString returns an action for the given string
// The menu number (1 call, 2 fold, 3 raise) is accepted as well as the name
func FromString(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, a := range menu {
		if s == fmt.Sprintf("%d", i+1) {
			return a, nil
		}
	}

	if _, ok := allowedActions[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a {
	case Call:
		return "Call"
	case Fold:
		return "Fold"
	case Raise:
		return "Raise"
	}

	panic("unknown action")
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

// LogMessage returns a message formatted for the log
// amount is the player's wager after the action
func (a Action) LogMessage(amount int) string {
	switch a {
	case Fold:
		return "folded"
	case Call:
		return fmt.Sprintf("called ${%d}", amount)
	case Raise:
		return fmt.Sprintf("raised to ${%d}", amount)
	}

	return ""
}
