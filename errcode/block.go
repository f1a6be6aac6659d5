package errcode

import (
	"fmt"
)

type BlockErr int

const BlockBase BlockErr = 4000

const (
	ErrBlockNoTx BlockErr = BlockBase + iota
	ErrBlockFirstTxNotCoinbase
	ErrBlockMultipleCoinbase
	ErrBlockOversize
	ErrBlockSigOpsOverflow
	ErrBlockTxNotFinal
	ErrBlockBadMerkleRoot
	ErrBlockBadTime
	ErrBlockHighHash
)

var blockErrToString = map[BlockErr]string{
	ErrBlockNoTx:               "block has no transactions",
	ErrBlockFirstTxNotCoinbase: "first transaction is not a coinbase",
	ErrBlockMultipleCoinbase:   "block has more than one coinbase",
	ErrBlockOversize:           "block exceeds the maximum serialized size",
	ErrBlockSigOpsOverflow:     "block exceeds the maximum signature operation count",
	ErrBlockTxNotFinal:         "block contains a non final transaction",
	ErrBlockBadMerkleRoot:      "merkle root does not commit to the block transactions",
	ErrBlockBadTime:            "block time is below the median of the previous blocks",
	ErrBlockHighHash:           "block hash does not satisfy the claimed target",
}

func (be BlockErr) String() string {
	if s, ok := blockErrToString[be]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", be)
}
