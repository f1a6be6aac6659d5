package ltx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FortuneBlockTeam/fortuneblock/errcode"
	"github.com/FortuneBlockTeam/fortuneblock/model/outpoint"
	"github.com/FortuneBlockTeam/fortuneblock/model/script"
	"github.com/FortuneBlockTeam/fortuneblock/model/tx"
	"github.com/FortuneBlockTeam/fortuneblock/model/txin"
	"github.com/FortuneBlockTeam/fortuneblock/model/txout"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

func lockTimeTx(lockTime uint32, sequence uint32) *tx.Tx {
	txn := tx.NewTx(lockTime, tx.TxVersion)
	prevOut := outpoint.OutPoint{Hash: util.DoubleSha256Hash([]byte("prev")), Index: 0}
	txn.AddTxIn(txin.NewTxIn(&prevOut, script.NewScriptRaw([]byte{0x51}), sequence))
	txn.AddTxOut(txout.NewTxOut(1000, script.NewScriptRaw([]byte{0x51})))
	return txn
}

func TestContextualCheckTransaction(t *testing.T) {
	t.Run("zero locktime is final", func(t *testing.T) {
		txn := lockTimeTx(0, 0)
		assert.NoError(t, ContextualCheckTransaction(txn, 100, 1693000000))
	})

	t.Run("height locktime below the block height is final", func(t *testing.T) {
		txn := lockTimeTx(99, 0)
		assert.NoError(t, ContextualCheckTransaction(txn, 100, 1693000000))
	})

	t.Run("height locktime at the block height is not final", func(t *testing.T) {
		txn := lockTimeTx(100, 0)
		err := ContextualCheckTransaction(txn, 100, 1693000000)
		require.Error(t, err)
		assert.True(t, errcode.IsErrorCode(err, errcode.RejectTx))
	})

	t.Run("final sequences disable the locktime", func(t *testing.T) {
		txn := lockTimeTx(100, txin.SequenceFinal)
		assert.NoError(t, ContextualCheckTransaction(txn, 100, 1693000000))
	})

	t.Run("time locktime compares against the cutoff", func(t *testing.T) {
		cutoff := int64(1693000000)
		early := lockTimeTx(uint32(cutoff-1), 0)
		assert.NoError(t, ContextualCheckTransaction(early, 100, cutoff))

		late := lockTimeTx(uint32(cutoff), 0)
		assert.Error(t, ContextualCheckTransaction(late, 100, cutoff))
	})
}

type blockingOracle struct {
	blocked util.Hash
}

func (o blockingOracle) IsTxSafeForMining(txHash util.Hash) bool {
	return txHash != o.blocked
}

func TestSafetyOracle(t *testing.T) {
	txn := lockTimeTx(0, 0)
	hash := txn.GetHash()

	assert.True(t, IsTxSafeForMining(hash), "the default oracle allows everything")

	SetSafetyOracle(blockingOracle{blocked: hash})
	defer SetSafetyOracle(nil)

	assert.False(t, IsTxSafeForMining(hash))
	assert.True(t, IsTxSafeForMining(util.DoubleSha256Hash([]byte("other"))))

	SetSafetyOracle(nil)
	assert.True(t, IsTxSafeForMining(hash), "a nil oracle restores the default")
}
