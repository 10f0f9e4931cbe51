package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(5)] = true
	}

	a.True(found[0])
	a.True(found[4])
	a.False(found[5])
}

func TestSeeded(t *testing.T) {
	a := assert.New(t)

	a.IsType(Crypto{}, Seeded(0))

	g1, g2 := Seeded(42), Seeded(42)
	for i := 0; i < 10; i++ {
		a.Equal(g1.Intn(100), g2.Intn(100))
	}
}
