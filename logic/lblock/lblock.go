package lblock

import (
	"github.com/FortuneBlockTeam/fortuneblock/errcode"
	"github.com/FortuneBlockTeam/fortuneblock/log"
	"github.com/FortuneBlockTeam/fortuneblock/logic/ltx"
	"github.com/FortuneBlockTeam/fortuneblock/logic/merkleroot"
	"github.com/FortuneBlockTeam/fortuneblock/model/block"
	"github.com/FortuneBlockTeam/fortuneblock/model/blockindex"
	"github.com/FortuneBlockTeam/fortuneblock/model/chainparams"
	"github.com/FortuneBlockTeam/fortuneblock/model/consensus"
	"github.com/FortuneBlockTeam/fortuneblock/model/pow"
)

// CheckBlock runs the context independent checks on a block.
func CheckBlock(pblock *block.Block, checkHeader, checkMerkle bool) error {
	if pblock.Checked {
		return nil
	}
	bh := pblock.Header

	if checkHeader {
		p := new(pow.Pow)
		blkHash := bh.GetHash()
		if !p.CheckProofOfWork(&blkHash, bh.Bits, chainparams.ActiveNetParams) {
			log.Debug("bad proof of work for block %s", blkHash.String())
			return errcode.NewError(errcode.ErrBlockHighHash, "high-hash")
		}
	}

	mutated := false
	if checkMerkle {
		computedRoot := merkleroot.BlockMerkleRoot(pblock.Txs, &mutated)
		if !bh.MerkleRoot.IsEqual(&computedRoot) {
			return errcode.New(errcode.ErrBlockBadMerkleRoot)
		}
		// Merkle tree malleability (CVE-2012-2459): repeated
		// transaction runs keep the root while invalidating the block.
		if mutated {
			return errcode.NewError(errcode.ErrBlockBadMerkleRoot, "bad-txns-duplicate")
		}
	}

	if len(pblock.Txs) == 0 {
		return errcode.New(errcode.ErrBlockNoTx)
	}
	if !pblock.Txs[0].IsCoinBase() {
		return errcode.New(errcode.ErrBlockFirstTxNotCoinbase)
	}
	for _, transaction := range pblock.Txs[1:] {
		if transaction.IsCoinBase() {
			return errcode.New(errcode.ErrBlockMultipleCoinbase)
		}
	}

	if pblock.EncodeSize() > consensus.MaxBlockSize {
		return errcode.New(errcode.ErrBlockOversize)
	}

	sigOps := 0
	for _, transaction := range pblock.Txs {
		sigOps += transaction.GetSigOpCount()
	}
	if sigOps > consensus.MaxBlockSigOps {
		return errcode.New(errcode.ErrBlockSigOpsOverflow)
	}

	pblock.Checked = true
	return nil
}

// ContextualCheckBlock verifies the block against its position in the
// chain: time finality of every transaction and header time sanity.
func ContextualCheckBlock(pblock *block.Block, indexPrev *blockindex.BlockIndex) error {
	height := int32(0)
	lockTimeCutoff := int64(pblock.Header.GetBlockTime())
	if indexPrev != nil {
		height = indexPrev.Height + 1
		medianTimePast := indexPrev.GetMedianTimePast()
		if pblock.Header.GetBlockTime() <= medianTimePast {
			return errcode.New(errcode.ErrBlockBadTime)
		}
		lockTimeCutoff = medianTimePast
	}

	for _, transaction := range pblock.Txs {
		if err := ltx.ContextualCheckTransaction(transaction, height, lockTimeCutoff); err != nil {
			return err
		}
	}
	return nil
}
