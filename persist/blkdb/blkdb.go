// Package blkdb persists block headers and their coinbase payout
// scripts so the in-memory chain, which the lucky-payment lookup walks,
// can be rebuilt at startup.
package blkdb

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldberrors "github.com/syndtr/goleveldb/leveldb/errors"

	"github.com/FortuneBlockTeam/fortuneblock/log"
	"github.com/FortuneBlockTeam/fortuneblock/model/block"
	"github.com/FortuneBlockTeam/fortuneblock/model/blockindex"
	"github.com/FortuneBlockTeam/fortuneblock/model/chain"
	"github.com/FortuneBlockTeam/fortuneblock/model/script"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

const (
	indexKeyPrefix = 'b'
	tipKey         = 't'

	maxPayeeScriptSize = 10000
)

// BlockTreeDB stores one record per block index plus the current tip
// hash.
type BlockTreeDB struct {
	db *leveldb.DB
}

func NewBlockTreeDB(path string) (*BlockTreeDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "blkdb: open %s", path)
	}
	return &BlockTreeDB{db: db}, nil
}

func (btd *BlockTreeDB) Close() error {
	return btd.db.Close()
}

func indexKey(hash *util.Hash) []byte {
	key := make([]byte, 0, 1+util.Hash256Size)
	key = append(key, indexKeyPrefix)
	return append(key, hash[:]...)
}

// WriteBlockIndex stores one index record: header, height and the
// coinbase payout script.
func (btd *BlockTreeDB) WriteBlockIndex(bi *blockindex.BlockIndex) error {
	buf := bytes.NewBuffer(make([]byte, 0, 128))
	if err := bi.Header.Encode(buf); err != nil {
		return err
	}
	if err := util.WriteUint32(buf, uint32(bi.Height)); err != nil {
		return err
	}
	var payee []byte
	if bi.CoinbasePayee != nil {
		payee = bi.CoinbasePayee.GetData()
	}
	if err := util.WriteVarBytes(buf, payee); err != nil {
		return err
	}

	hash := bi.GetBlockHash()
	return btd.db.Put(indexKey(hash), buf.Bytes(), nil)
}

// ReadBlockIndex loads the record for hash; (nil, nil) when absent.
func (btd *BlockTreeDB) ReadBlockIndex(hash *util.Hash) (*blockindex.BlockIndex, error) {
	raw, err := btd.db.Get(indexKey(hash), nil)
	if err == ldberrors.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	reader := bytes.NewReader(raw)
	header := block.NewBlockHeader()
	if err := header.Decode(reader); err != nil {
		return nil, errors.Wrap(err, "blkdb: corrupt index record")
	}
	height, err := util.ReadUint32(reader)
	if err != nil {
		return nil, err
	}
	payee, err := util.ReadVarBytes(reader, maxPayeeScriptSize)
	if err != nil {
		return nil, err
	}

	bi := blockindex.NewBlockIndex(header)
	bi.Height = int32(height)
	if len(payee) > 0 {
		bi.CoinbasePayee = script.NewScriptRaw(payee)
	}
	return bi, nil
}

func (btd *BlockTreeDB) WriteTipHash(hash *util.Hash) error {
	return btd.db.Put([]byte{tipKey}, hash[:], nil)
}

func (btd *BlockTreeDB) ReadTipHash() (*util.Hash, error) {
	raw, err := btd.db.Get([]byte{tipKey}, nil)
	if err == ldberrors.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	hash := new(util.Hash)
	hash.SetBytes(raw)
	return hash, nil
}

// SaveChain writes every index on the active chain and the tip hash.
func (btd *BlockTreeDB) SaveChain(c *chain.Chain) error {
	tip := c.Tip()
	if tip == nil {
		return nil
	}
	for bi := tip; bi != nil; bi = bi.Prev {
		if err := btd.WriteBlockIndex(bi); err != nil {
			return err
		}
	}
	return btd.WriteTipHash(tip.GetBlockHash())
}

// LoadChain rebuilds the active chain from the stored tip backwards,
// wiring Prev pointers, and installs it into c. An empty store leaves
// the chain untouched.
func (btd *BlockTreeDB) LoadChain(c *chain.Chain) error {
	tipHash, err := btd.ReadTipHash()
	if err != nil {
		return err
	}
	if tipHash == nil {
		log.Info("blkdb: no stored chain, starting fresh")
		return nil
	}

	tip, err := btd.ReadBlockIndex(tipHash)
	if err != nil {
		return err
	}
	if tip == nil {
		return errors.Errorf("blkdb: tip record %s missing", tipHash.String())
	}

	walk := tip
	for walk.Height > 0 {
		prev, err := btd.ReadBlockIndex(&walk.Header.HashPrevBlock)
		if err != nil {
			return err
		}
		if prev == nil {
			return errors.Errorf("blkdb: broken chain at height %d", walk.Height)
		}
		walk.Prev = prev
		c.AddToIndexMap(walk)
		walk = prev
	}
	c.AddToIndexMap(walk)
	c.SetTip(tip)
	log.Info("blkdb: loaded chain at height %d, tip %s", tip.Height, tipHash.String())
	return nil
}
