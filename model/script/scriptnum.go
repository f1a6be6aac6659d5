package script

type ScriptNum struct {
	Value int64
}

func NewScriptNum(v int64) *ScriptNum {
	return &ScriptNum{Value: v}
}

// Serialize encodes the number as a minimal little endian byte slice
// with a sign bit in the top bit of the last byte.
func (scriptNum *ScriptNum) Serialize() (bytes []byte) {
	if scriptNum.Value == 0 {
		return nil
	}

	negative := scriptNum.Value < 0
	absoluteValue := scriptNum.Value
	if negative {
		absoluteValue = -absoluteValue
	}
	for absoluteValue > 0 {
		bytes = append(bytes, byte(absoluteValue&0xff))
		absoluteValue >>= 8
	}

	// If the most significant byte already has its high bit set, an
	// extra byte carries the sign instead.
	if bytes[len(bytes)-1]&0x80 != 0 {
		extraByte := byte(0x00)
		if negative {
			extraByte = 0x80
		}
		bytes = append(bytes, extraByte)
	} else if negative {
		bytes[len(bytes)-1] |= 0x80
	}

	return bytes
}
