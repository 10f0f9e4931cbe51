package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-table/internal/util"
)

func TestInstance(t *testing.T) {
	defer util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("HOLDEM_TABLE_SMALL_BLIND", "4")()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal("text", cfg.Log.Format, "defaults survive a partial file")
	a.Equal(250, cfg.Table.StartingStack)
	a.Equal(10, cfg.Table.BigBlind)
	a.Equal(4, cfg.Table.SmallBlind)
	a.Equal(int64(42), cfg.Table.Seed)
	a.Equal(5, cfg.Table.BlindIncreaseEvery)

	// ensure that it's only loaded once
	_ = os.Setenv("HOLDEM_TABLE_SMALL_BLIND", "3")
	// ensure we aren't using a pointer
	cfg.Table.SmallBlind = 1
	cfg = Instance()
	a.Equal(4, cfg.Table.SmallBlind)
}

func TestLoad_missingFile(t *testing.T) {
	defer util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/missing.yaml")()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal(100, cfg.Table.StartingStack)
	a.Equal(5, cfg.Table.BigBlind)
	a.Equal(2, cfg.Table.SmallBlind)
	a.Equal("info", cfg.Log.Level)
}

func TestLoad_badEnv(t *testing.T) {
	defer util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("HOLDEM_TABLE_BIG_BLIND", "lots")()

	assert.Error(t, Load())
}
