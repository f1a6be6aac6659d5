package outpoint

import (
	"fmt"
	"io"
	"math"

	"github.com/FortuneBlockTeam/fortuneblock/util"
)

type OutPoint struct {
	Hash  util.Hash
	Index uint32
}

func NewOutPoint(hash util.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  hash,
		Index: index,
	}
}

// NewDefaultOutPoint returns the null prevout used by coinbase inputs.
func NewDefaultOutPoint() *OutPoint {
	return &OutPoint{
		Hash:  util.HashZero,
		Index: math.MaxUint32,
	}
}

func (outPoint *OutPoint) EncodeSize() uint32 {
	return util.Hash256Size + 4
}

func (outPoint *OutPoint) Encode(writer io.Writer) error {
	if _, err := writer.Write(outPoint.Hash[:]); err != nil {
		return err
	}
	return util.WriteUint32(writer, outPoint.Index)
}

func (outPoint *OutPoint) SerializeSize() uint32 {
	return outPoint.EncodeSize()
}

func (outPoint *OutPoint) Serialize(writer io.Writer) error {
	return outPoint.Encode(writer)
}

// IsNull reports whether the outpoint is the coinbase null prevout.
func (outPoint *OutPoint) IsNull() bool {
	if outPoint == nil {
		return true
	}
	return outPoint.Index == math.MaxUint32 && outPoint.Hash.IsNull()
}

func (outPoint *OutPoint) String() string {
	return fmt.Sprintf("OutPoint ( hash: %s, index: %d )", outPoint.Hash.String(), outPoint.Index)
}
