package blind

import (
	"fmt"

	"github.com/thoas/go-funk"
)

// Role is a rotating seat marker
type Role string

// Role constants
const (
	Big   Role = "big"
	Small Role = "small"
	// Donor sits one seat before the small blind and pays nothing
	Donor Role = "donor"
)

// Roles in the order they are assigned from the last seat backwards
var Roles = []Role{Big, Small, Donor}

// Blind binds a chip amount to the player currently holding the role
type Blind struct {
	Role   Role   `json:"role"`
	Amount int    `json:"amount"`
	Holder string `json:"holder"`
}

// Rotation tracks the three blinds around the table
// Holders are stored by player ID so the rotation survives players leaving
type Rotation struct {
	blinds map[Role]*Blind
}

// NewRotation returns an unassigned rotation with the starting amounts
func NewRotation(big, small, donor int) *Rotation {
	return &Rotation{
		blinds: map[Role]*Blind{
			Big:   {Role: Big, Amount: big},
			Small: {Role: Small, Amount: small},
			Donor: {Role: Donor, Amount: donor},
		},
	}
}

// IsInitialized returns true once the blinds have holders
func (r *Rotation) IsInitialized() bool {
	return r.blinds[Big].Holder != ""
}

// Initialize assigns the blinds for the first hand
// The last seat is the big blind, the one before it the small blind, and the one before that the donor.
// With only two players, the small blind is also the donor. Does nothing if already assigned or with fewer
// than two players
func (r *Rotation) Initialize(seats []string) {
	n := len(seats)
	if n <= 1 || r.IsInitialized() {
		return
	}

	r.blinds[Big].Holder = seats[n-1]
	r.blinds[Small].Holder = seats[n-2]
	r.blinds[Donor].Holder = seats[max(0, n-3)]
}

// Rotate moves each blind to the next seat
// Each holder is looked up by identity first since seats shrink as players go broke.
// A holder no longer seated is treated as sitting at the first seat
func (r *Rotation) Rotate(seats []string) {
	n := len(seats)
	if n == 0 || !r.IsInitialized() {
		return
	}

	for _, role := range Roles {
		b := r.blinds[role]
		index := funk.IndexOfString(seats, b.Holder)
		if index < 0 {
			index = 0
		}

		b.Holder = seats[(index+1)%n]
	}
}

// Increase raises the big and small blind amounts
func (r *Rotation) Increase(big, small int) {
	r.blinds[Big].Amount += big
	r.blinds[Small].Amount += small
}

// Holder returns the ID of the player holding the role
func (r *Rotation) Holder(role Role) string {
	return r.get(role).Holder
}

// Amount returns the chips the role must post
func (r *Rotation) Amount(role Role) int {
	return r.get(role).Amount
}

// Blinds returns a copy of every blind
func (r *Rotation) Blinds() []Blind {
	blinds := make([]Blind, len(Roles))
	for i, role := range Roles {
		blinds[i] = *r.blinds[role]
	}

	return blinds
}

func (r *Rotation) get(role Role) *Blind {
	b, ok := r.blinds[role]
	if !ok {
		panic(fmt.Sprintf("unknown blind role: %s", role))
	}

	return b
}
