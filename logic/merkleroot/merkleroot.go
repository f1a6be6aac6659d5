package merkleroot

import (
	"github.com/FortuneBlockTeam/fortuneblock/model/tx"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

// Constant space merkle root calculator, limited to 2^32 leaves.
//
// inner holds eagerly computed subtree hashes indexed by tree level,
// 0 being the leaves. When count is 25 (11001 binary), inner[4] is the
// hash of the first 16 leaves, inner[3] of the next 8, and inner[0]
// the last leaf. Other entries are undefined.
func merkleComputation(leaves []util.Hash, root *util.Hash, pmutated *bool) {
	if len(leaves) == 0 {
		if pmutated != nil {
			*pmutated = false
		}
		if root != nil {
			*root = util.Hash{}
		}
		return
	}
	mutated := false
	count := uint32(0)
	var inner [32]util.Hash

	// First process all leaves into inner values.
	for int(count) < len(leaves) {
		h := leaves[count]
		count++
		level := 0
		// For each of the lower bits in count that are 0, an inner
		// value existed before this leaf and needs combining.
		for ; (count & (uint32(1) << uint(level))) == 0; level++ {
			if inner[level].IsEqual(&h) {
				mutated = true
			}
			h = combine(&inner[level], &h)
		}
		inner[level] = h
	}

	// Sweep the rightmost branch to reduce odd levels to the top value.
	level := 0
	for ; (count & (uint32(1) << uint(level))) == 0; level++ {
	}
	h := inner[level]
	for count != (uint32(1) << uint(level)) {
		// h is an inner value that is not the top. Combine it with
		// itself, the rule for odd levels in the tree.
		h = combine(&h, &h)
		count += uint32(1) << uint(level)
		level++
		for ; (count & (uint32(1) << uint(level))) == 0; level++ {
			h = combine(&inner[level], &h)
		}
	}
	if pmutated != nil {
		*pmutated = mutated
	}
	if root != nil {
		*root = h
	}
}

func combine(left, right *util.Hash) util.Hash {
	tmp := make([]byte, 0, util.Hash256Size*2)
	tmp = append(tmp, left[:]...)
	tmp = append(tmp, right[:]...)
	return util.DoubleSha256Hash(tmp)
}

// ComputeMerkleRoot returns the merkle root of leaves. When mutated is
// non nil it reports whether a duplicated subtree was seen, the CVE
// 2012 2459 malleability condition.
func ComputeMerkleRoot(leaves []util.Hash, mutated *bool) util.Hash {
	var hash util.Hash
	merkleComputation(leaves, &hash, mutated)
	return hash
}

// BlockMerkleRoot computes the merkle root over the transaction list
// of a block.
func BlockMerkleRoot(txs []*tx.Tx, mutated *bool) util.Hash {
	leaves := make([]util.Hash, len(txs))
	for i := 0; i < len(txs); i++ {
		leaves[i] = txs[i].GetHash()
	}
	return ComputeMerkleRoot(leaves, mutated)
}
