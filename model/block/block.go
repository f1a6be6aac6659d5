package block

import (
	"io"

	"github.com/FortuneBlockTeam/fortuneblock/model/tx"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

type Block struct {
	Header BlockHeader
	Txs    []*tx.Tx

	Checked bool
}

func NewBlock() *Block {
	return &Block{}
}

func (bl *Block) GetBlockHeader() BlockHeader {
	return bl.Header
}

func (bl *Block) SetNull() {
	bl.Header = BlockHeader{}
	bl.Txs = nil
	bl.Checked = false
}

func (bl *Block) EncodeSize() uint32 {
	size := bl.Header.EncodeSize() + util.VarIntSerializeSize(uint64(len(bl.Txs)))
	for _, transaction := range bl.Txs {
		size += transaction.EncodeSize()
	}
	return size
}

func (bl *Block) Encode(writer io.Writer) error {
	if err := bl.Header.Encode(writer); err != nil {
		return err
	}
	if err := util.WriteVarInt(writer, uint64(len(bl.Txs))); err != nil {
		return err
	}
	for _, transaction := range bl.Txs {
		if err := transaction.Encode(writer); err != nil {
			return err
		}
	}
	return nil
}

func (bl *Block) SerializeSize() uint32 {
	return bl.EncodeSize()
}

func (bl *Block) Serialize(writer io.Writer) error {
	return bl.Encode(writer)
}

func (bl *Block) GetHash() util.Hash {
	return bl.Header.GetHash()
}
