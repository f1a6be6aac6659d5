package merkleroot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FortuneBlockTeam/fortuneblock/model/outpoint"
	"github.com/FortuneBlockTeam/fortuneblock/model/script"
	"github.com/FortuneBlockTeam/fortuneblock/model/tx"
	"github.com/FortuneBlockTeam/fortuneblock/model/txin"
	"github.com/FortuneBlockTeam/fortuneblock/model/txout"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

func hashOf(b byte) util.Hash {
	return util.DoubleSha256Hash([]byte{b})
}

func TestComputeMerkleRootEmpty(t *testing.T) {
	root := ComputeMerkleRoot(nil, nil)
	assert.True(t, root.IsNull())
}

func TestComputeMerkleRootSingleLeaf(t *testing.T) {
	leaf := hashOf(0x01)
	root := ComputeMerkleRoot([]util.Hash{leaf}, nil)
	assert.True(t, root.IsEqual(&leaf), "a single leaf is its own root")
}

func TestComputeMerkleRootTwoLeaves(t *testing.T) {
	a, b := hashOf(0x01), hashOf(0x02)
	root := ComputeMerkleRoot([]util.Hash{a, b}, nil)

	concat := append(a.GetCloneBytes(), b.GetCloneBytes()...)
	want := util.DoubleSha256Hash(concat)
	assert.True(t, root.IsEqual(&want))
}

func TestComputeMerkleRootOddCountDuplicatesLast(t *testing.T) {
	a, b, c := hashOf(0x01), hashOf(0x02), hashOf(0x03)

	// three leaves hash like four with the last one repeated
	root3 := ComputeMerkleRoot([]util.Hash{a, b, c}, nil)
	root4 := ComputeMerkleRoot([]util.Hash{a, b, c, c}, nil)
	assert.True(t, root3.IsEqual(&root4))
}

func TestComputeMerkleRootOrderMatters(t *testing.T) {
	a, b := hashOf(0x01), hashOf(0x02)
	ab := ComputeMerkleRoot([]util.Hash{a, b}, nil)
	ba := ComputeMerkleRoot([]util.Hash{b, a}, nil)
	assert.False(t, ab.IsEqual(&ba))
}

func TestComputeMerkleRootDetectsMutation(t *testing.T) {
	a, b, c := hashOf(0x01), hashOf(0x02), hashOf(0x03)

	mutated := false
	ComputeMerkleRoot([]util.Hash{a, b, c, c}, &mutated)
	assert.True(t, mutated, "a repeated trailing pair is the malleability pattern")

	mutated = true
	ComputeMerkleRoot([]util.Hash{a, b, c}, &mutated)
	assert.False(t, mutated)
}

func TestBlockMerkleRoot(t *testing.T) {
	txs := make([]*tx.Tx, 3)
	for i := range txs {
		txn := tx.NewTx(0, tx.TxVersion)
		prevOut := outpoint.OutPoint{Hash: hashOf(byte(0x10 + i)), Index: 0}
		txn.AddTxIn(txin.NewTxIn(&prevOut, script.NewScriptRaw([]byte{0x51}), txin.SequenceFinal))
		txn.AddTxOut(txout.NewTxOut(1000, script.NewScriptRaw([]byte{0x51})))
		txs[i] = txn
	}

	leaves := make([]util.Hash, len(txs))
	for i, txn := range txs {
		leaves[i] = txn.GetHash()
	}
	want := ComputeMerkleRoot(leaves, nil)
	got := BlockMerkleRoot(txs, nil)
	require.True(t, got.IsEqual(&want))
}
