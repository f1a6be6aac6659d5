package chainparams

import (
	"math"
	"math/big"

	"github.com/FortuneBlockTeam/fortuneblock/util"
	"github.com/FortuneBlockTeam/fortuneblock/util/amount"
)

// FortuneRewardStructure is one range of the fortune payment schedule:
// blocks up to and including BlockHeight pay Percentage of the block
// reward. A BlockHeight of math.MaxInt32 marks the unbounded terminal
// range.
type FortuneRewardStructure struct {
	BlockHeight int32
	Percentage  int64
}

// FutureRewardShare splits a future style block reward between miner,
// smartnodes and founder in ten thousandths.
type FutureRewardShare struct {
	SmartnodePart int64
	MinerPart     int64
	FounderPart   int64
}

type Params struct {
	Name string

	// Address encoding versions.
	PubKeyHashAddressVer byte
	ScriptHashAddressVer byte

	// Proof of work.
	PowLimit                     *big.Int
	TargetTimespan               int64
	TargetTimePerBlock           int64
	FPowAllowMinDifficultyBlocks bool
	FPowNoRetargeting            bool

	SubsidyHalvingInterval int32
	GenesisBlockReward     amount.Amount
	GenesisHash            *util.Hash

	SmartnodePaymentsStartBlock int32

	FortuneRewardStructures []FortuneRewardStructure
	FortuneStartBlock       int32
	FortuneDefaultAddress   string

	FutureRewardShare FutureRewardShare
}

// mainPowLimit is ~uint256(0) >> 8.
var mainPowLimit = mustParseBigHex("00ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
var regPowLimit = mustParseBigHex("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

func mustParseBigHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("bad pow limit constant " + s)
	}
	return v
}

// DefaultFortuneAddress receives the fortune payment when the derived
// lucky height falls outside the chain.
const DefaultFortuneAddress = "FkqwU8tUU6U41PuGTPUqy93hML4QtCDPDX"

var MainNetParams = Params{
	Name:                         "mainnet",
	PubKeyHashAddressVer:         36,
	ScriptHashAddressVer:         16,
	PowLimit:                     mainPowLimit,
	TargetTimespan:               24 * 60 * 60,
	TargetTimePerBlock:           2 * 60,
	FPowAllowMinDifficultyBlocks: false,
	FPowNoRetargeting:            false,
	SubsidyHalvingInterval:       260000,
	GenesisBlockReward:           500 * amount.COIN,
	GenesisHash:                  util.HashFromString("797e33f0bf25e510d9405f06f008e6bfe9c8b5b6a6ae2328f48c7f1bce98bbb4"),
	SmartnodePaymentsStartBlock:  5000,
	FortuneRewardStructures: []FortuneRewardStructure{
		{BlockHeight: math.MaxInt32, Percentage: 5},
	},
	FortuneStartBlock:     0,
	FortuneDefaultAddress: DefaultFortuneAddress,
	FutureRewardShare:     FutureRewardShare{SmartnodePart: 8000, MinerPart: 2000, FounderPart: 0},
}

var TestNetParams = Params{
	Name:                         "testnet",
	PubKeyHashAddressVer:         95,
	ScriptHashAddressVer:         19,
	PowLimit:                     mainPowLimit,
	TargetTimespan:               24 * 60 * 60,
	TargetTimePerBlock:           2 * 60,
	FPowAllowMinDifficultyBlocks: true,
	FPowNoRetargeting:            false,
	SubsidyHalvingInterval:       210240,
	GenesisBlockReward:           500 * amount.COIN,
	SmartnodePaymentsStartBlock:  1000,
	FortuneRewardStructures: []FortuneRewardStructure{
		{BlockHeight: math.MaxInt32, Percentage: 5},
	},
	FortuneStartBlock:     0,
	FortuneDefaultAddress: "",
	FutureRewardShare:     FutureRewardShare{SmartnodePart: 8000, MinerPart: 2000, FounderPart: 0},
}

var RegressionNetParams = Params{
	Name:                         "regtest",
	PubKeyHashAddressVer:         140,
	ScriptHashAddressVer:         19,
	PowLimit:                     regPowLimit,
	TargetTimespan:               24 * 60 * 60,
	TargetTimePerBlock:           2 * 60,
	FPowAllowMinDifficultyBlocks: true,
	FPowNoRetargeting:            true,
	SubsidyHalvingInterval:       150,
	GenesisBlockReward:           500 * amount.COIN,
	SmartnodePaymentsStartBlock:  1000,
	FortuneRewardStructures: []FortuneRewardStructure{
		{BlockHeight: math.MaxInt32, Percentage: 5},
	},
	FortuneStartBlock:     0,
	FortuneDefaultAddress: "",
	FutureRewardShare:     FutureRewardShare{SmartnodePart: 8000, MinerPart: 2000, FounderPart: 0},
}

// ActiveNetParams is the network the process runs on. SelectNetwork
// switches it during startup.
var ActiveNetParams = &MainNetParams

// SelectNetwork resolves a network name from configuration to its
// parameters and makes it active.
func SelectNetwork(name string) *Params {
	switch name {
	case "testnet":
		ActiveNetParams = &TestNetParams
	case "regtest":
		ActiveNetParams = &RegressionNetParams
	default:
		ActiveNetParams = &MainNetParams
	}
	return ActiveNetParams
}
