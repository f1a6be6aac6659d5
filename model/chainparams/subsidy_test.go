package chainparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FortuneBlockTeam/fortuneblock/model/script"
	"github.com/FortuneBlockTeam/fortuneblock/util/amount"
)

func TestGetBlockSubsidySchedule(t *testing.T) {
	params := &MainNetParams
	interval := params.SubsidyHalvingInterval

	// prevHeight keys the schedule: the subsidy applies to the block at
	// prevHeight+1
	assert.Equal(t, 500*amount.COIN, GetBlockSubsidy(0, 0, params))
	assert.Equal(t, 500*amount.COIN, GetBlockSubsidy(0, interval-2, params))
	assert.Equal(t, 250*amount.COIN, GetBlockSubsidy(0, interval-1, params))
	assert.Equal(t, 250*amount.COIN, GetBlockSubsidy(0, 2*interval-2, params))
	assert.Equal(t, 125*amount.COIN, GetBlockSubsidy(0, 2*interval-1, params))
}

func TestGetBlockSubsidyIgnoresBits(t *testing.T) {
	params := &MainNetParams
	assert.Equal(t, GetBlockSubsidy(0x1d00ffff, 10, params), GetBlockSubsidy(0x207fffff, 10, params))
}

func TestGetBlockSubsidyExhausts(t *testing.T) {
	params := RegressionNetParams
	params.SubsidyHalvingInterval = 1

	assert.Equal(t, amount.Amount(0), GetBlockSubsidy(0, 64*params.SubsidyHalvingInterval, &params))

	var total amount.Amount
	for prev := int32(0); prev < 70; prev++ {
		total += GetBlockSubsidy(0, prev, &params)
	}
	assert.Less(t, int64(total), int64(1000*amount.COIN), "the emission converges")
}

func TestGenesisSwapTableIntegrity(t *testing.T) {
	require.NotEmpty(t, GenesisSwapTable)

	seen := make(map[string]struct{}, len(GenesisSwapTable))
	for _, entry := range GenesisSwapTable {
		assert.Positive(t, int64(entry.Value), "entry %s", entry.Address)
		assert.Equal(t, byte('F'), entry.Address[0], "entry %s", entry.Address)
		_, dup := seen[entry.Address]
		assert.False(t, dup, "duplicate address %s", entry.Address)
		seen[entry.Address] = struct{}{}

		addr, err := script.AddressFromString(entry.Address)
		require.NoError(t, err, "entry %s", entry.Address)
		assert.Equal(t, MainNetParams.PubKeyHashAddressVer, addr.Version())
	}
}
