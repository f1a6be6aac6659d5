package util

import (
	"bytes"
	"crypto/sha256"
	"errors"
)

const (
	alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

var (
	// ErrBadChecksum represents the checksum of data is not right
	ErrBadChecksum = errors.New("invalid format: bad checksum")
	// ErrInvalidFormat represents the encoded string format is not right
	ErrInvalidFormat = errors.New("invalid format: version and/or checksum bytes missing")
	// ErrInvalidCharacter represents the character of string is invalid
	ErrInvalidCharacter = errors.New("invalid character")
)

var alphabetLookupTable = func() [256]byte {
	var table [256]byte
	for i := range table {
		table[i] = 255
	}
	for i := 0; i < len(alphabet); i++ {
		table[alphabet[i]] = byte(i)
	}
	return table
}()

func checksum(data []byte) []byte {
	hash := sha256.Sum256(data)
	hash = sha256.Sum256(hash[:])
	return hash[:4]
}

// Base58EncodeCheck is used for encoding addresses
// see https://en.bitcoin.it/wiki/Base58Check_encoding
func Base58EncodeCheck(data []byte, version byte) string {
	b := make([]byte, 0, 1+len(data)+4)
	b = append(append(b, version), data...)
	return Base58Encode(append(b, checksum(b)...))
}

// Base58DecodeCheck is used for decoding addresses
// see https://en.bitcoin.it/wiki/Base58Check_encoding
func Base58DecodeCheck(str string) ([]byte, byte, error) {
	data, err := Base58Decode(str)
	if err != nil {
		return nil, 0, err
	}

	ndata := len(data)

	// version + data + checksum
	if ndata < 5 {
		return nil, 0, ErrInvalidFormat
	}

	if !bytes.Equal(checksum(data[:ndata-4]), data[ndata-4:]) {
		return nil, 0, ErrBadChecksum
	}

	return data[1 : ndata-4], data[0], nil
}

// Base58Encode uses the constant size algorithm from
// https://github.com/trezor/trezor-crypto/blob/master/base58.c#L152
func Base58Encode(data []byte) string {
	ndata := len(data)
	zcount := 0

	for zcount < ndata && data[zcount] == 0 {
		zcount++
	}

	// log(256,10)/log(58,10)
	size := (ndata-zcount)*137/100 + 1
	high := size - 1
	j := size - 1
	i := zcount
	buf := make([]byte, size)

	for ; i < ndata; i++ {
		carry := uint32(data[i])

		for j = size - 1; j > high || carry != 0; j-- {
			carry += 256 * uint32(buf[j])
			buf[j] = byte(carry % 58)
			carry /= 58
		}

		high = j
	}

	for j = 0; j < size && buf[j] == 0; j++ {
	}

	b58 := make([]byte, size-j+zcount)

	for i = 0; i < zcount; i++ {
		b58[i] = alphabet[0]
	}

	for i = zcount; j < size; i++ {
		b58[i] = alphabet[buf[j]]
		j++
	}

	return string(b58)
}

// Base58Decode is the inverse of Base58Encode.
func Base58Decode(str string) ([]byte, error) {
	nstr := len(str)
	zcount := 0

	for zcount < nstr && str[zcount] == alphabet[0] {
		zcount++
	}

	// log(58, 10)/log(256, 10)
	size := (nstr-zcount)*733/1000 + 1
	high := size - 1
	j := size - 1
	i := zcount
	buf := make([]byte, size)

	for ; i < nstr; i++ {
		carry := uint32(alphabetLookupTable[str[i]])
		if carry == 255 {
			return nil, ErrInvalidCharacter
		}

		for j = size - 1; j > high || carry != 0; j-- {
			carry += 58 * uint32(buf[j])
			buf[j] = byte(carry % 256)
			carry /= 256
		}

		high = j
	}

	for j = 0; j < size && buf[j] == 0; j++ {
	}

	b256 := make([]byte, size-j+zcount)

	for i = 0; i < zcount; i++ {
		b256[i] = 0
	}

	for i = zcount; j < size; i++ {
		b256[i] = buf[j]
		j++
	}

	return b256, nil
}
