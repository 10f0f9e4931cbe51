package potmanager

// Participant provides an interface for reading a player's wager and paying out winnings
type Participant interface {
	ID() string
	Wager() int
	IsFolded() bool
	IsAllIn() bool
	Win(amount int)
}

// isContending returns true if the participant can still win chips
func isContending(p Participant) bool {
	return !p.IsFolded()
}

func participantIDs(participants []Participant) []string {
	ids := make([]string, len(participants))
	for i, p := range participants {
		ids[i] = p.ID()
	}

	return ids
}
