package block

import (
	"bytes"
	"fmt"
	"io"

	"github.com/FortuneBlockTeam/fortuneblock/util"
)

const blockHeaderLength = 16 + util.Hash256Size*2

type BlockHeader struct {
	Version       int32
	HashPrevBlock util.Hash
	MerkleRoot    util.Hash
	Time          uint32
	Bits          uint32
	Nonce         uint32
}

func NewBlockHeader() *BlockHeader {
	return &BlockHeader{}
}

func (bh *BlockHeader) IsNull() bool {
	return bh.Bits == 0
}

func (bh *BlockHeader) GetBlockTime() int64 {
	return int64(bh.Time)
}

func (bh *BlockHeader) EncodeSize() uint32 {
	return blockHeaderLength
}

func (bh *BlockHeader) Encode(writer io.Writer) error {
	if err := util.WriteUint32(writer, uint32(bh.Version)); err != nil {
		return err
	}
	if _, err := writer.Write(bh.HashPrevBlock[:]); err != nil {
		return err
	}
	if _, err := writer.Write(bh.MerkleRoot[:]); err != nil {
		return err
	}
	if err := util.WriteUint32(writer, bh.Time); err != nil {
		return err
	}
	if err := util.WriteUint32(writer, bh.Bits); err != nil {
		return err
	}
	return util.WriteUint32(writer, bh.Nonce)
}

func (bh *BlockHeader) Decode(reader io.Reader) error {
	version, err := util.ReadUint32(reader)
	if err != nil {
		return err
	}
	bh.Version = int32(version)
	if _, err := io.ReadFull(reader, bh.HashPrevBlock[:]); err != nil {
		return err
	}
	if _, err := io.ReadFull(reader, bh.MerkleRoot[:]); err != nil {
		return err
	}
	if bh.Time, err = util.ReadUint32(reader); err != nil {
		return err
	}
	if bh.Bits, err = util.ReadUint32(reader); err != nil {
		return err
	}
	bh.Nonce, err = util.ReadUint32(reader)
	return err
}

func (bh *BlockHeader) SerializeSize() uint32 {
	return bh.EncodeSize()
}

func (bh *BlockHeader) Serialize(writer io.Writer) error {
	return bh.Encode(writer)
}

// GetHash returns the double sha256 of the serialized header.
func (bh *BlockHeader) GetHash() util.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, blockHeaderLength))
	if err := bh.Encode(buf); err != nil {
		return util.HashZero
	}
	return util.DoubleSha256Hash(buf.Bytes())
}

func (bh *BlockHeader) String() string {
	hash := bh.GetHash()
	return fmt.Sprintf("BlockHeader ( hash: %s, ver: %d, prev: %s, merkle: %s, time: %d, bits: %x, nonce: %d )",
		hash.String(), bh.Version, bh.HashPrevBlock.String(), bh.MerkleRoot.String(), bh.Time, bh.Bits, bh.Nonce)
}
