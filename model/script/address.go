package script

import (
	"github.com/pkg/errors"

	"github.com/FortuneBlockTeam/fortuneblock/model/opcodes"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

// Address is a parsed base58check address holding a 20 byte key or
// script hash.
type Address struct {
	hash160 [util.Hash160Size]byte
	version byte
}

func (addr *Address) Version() byte {
	return addr.version
}

func (addr *Address) Hash160() []byte {
	return addr.hash160[:]
}

func (addr *Address) String() string {
	return util.Base58EncodeCheck(addr.hash160[:], addr.version)
}

// AddressFromString decodes a base58check address.
func AddressFromString(addressStr string) (*Address, error) {
	payload, version, err := util.Base58DecodeCheck(addressStr)
	if err != nil {
		return nil, errors.Wrapf(err, "decode address %s", addressStr)
	}
	if len(payload) != util.Hash160Size {
		return nil, errors.Errorf("address %s payload is %d bytes, want %d",
			addressStr, len(payload), util.Hash160Size)
	}
	addr := &Address{version: version}
	copy(addr.hash160[:], payload)
	return addr, nil
}

func AddressFromHash160(hash160 []byte, version byte) (*Address, error) {
	if len(hash160) != util.Hash160Size {
		return nil, errors.Errorf("hash160 is %d bytes, want %d",
			len(hash160), util.Hash160Size)
	}
	addr := &Address{version: version}
	copy(addr.hash160[:], hash160)
	return addr, nil
}

// PayToPubKeyHashScript builds the canonical p2pkh output script for
// the address.
func (addr *Address) PayToPubKeyHashScript() *Script {
	s := NewEmptyScript()
	s.PushOpCode(opcodes.OP_DUP)
	s.PushOpCode(opcodes.OP_HASH160)
	s.PushData(addr.hash160[:])
	s.PushOpCode(opcodes.OP_EQUALVERIFY)
	s.PushOpCode(opcodes.OP_CHECKSIG)
	return s
}
