package ltx

import (
	"sync"

	"github.com/FortuneBlockTeam/fortuneblock/errcode"
	"github.com/FortuneBlockTeam/fortuneblock/log"
	"github.com/FortuneBlockTeam/fortuneblock/model/tx"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

// ContextualCheckTransaction verifies the transaction is final for a
// block at nBlockHeight with the given lock time cutoff.
func ContextualCheckTransaction(txn *tx.Tx, nBlockHeight int32, nLockTimeCutoff int64) error {
	if !txn.IsFinal(nBlockHeight, nLockTimeCutoff) {
		hash := txn.GetHash()
		log.Debug("txn is not final, hash: %s", hash.String())
		return errcode.NewError(errcode.RejectTx, "bad-txns-nonfinal")
	}
	return nil
}

// SafetyOracle reports whether a transaction is safe to mine with
// respect to the finality or locking subsystem, e.g. it does not
// conflict with an already locked alternative spend.
type SafetyOracle interface {
	IsTxSafeForMining(txHash util.Hash) bool
}

// alwaysSafe is the default oracle used when no locking subsystem is
// wired in.
type alwaysSafe struct{}

func (alwaysSafe) IsTxSafeForMining(util.Hash) bool { return true }

var (
	oracleMtx    sync.RWMutex
	safetyOracle SafetyOracle = alwaysSafe{}
)

// SetSafetyOracle installs the finality oracle consulted during block
// assembly.
func SetSafetyOracle(oracle SafetyOracle) {
	oracleMtx.Lock()
	defer oracleMtx.Unlock()
	if oracle == nil {
		safetyOracle = alwaysSafe{}
		return
	}
	safetyOracle = oracle
}

// IsTxSafeForMining consults the installed finality oracle.
func IsTxSafeForMining(txHash util.Hash) bool {
	oracleMtx.RLock()
	defer oracleMtx.RUnlock()
	return safetyOracle.IsTxSafeForMining(txHash)
}
