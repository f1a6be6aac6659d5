package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase58RoundTrip(t *testing.T) {
	payloads := [][]byte{
		{0x00},
		{0x00, 0x00, 0x01},
		{0xde, 0xad, 0xbe, 0xef},
		bytes.Repeat([]byte{0xff}, 20),
	}
	for _, p := range payloads {
		encoded := Base58Encode(p)
		decoded, err := Base58Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, p, decoded)
	}
}

func TestBase58DecodeRejectsBadAlphabet(t *testing.T) {
	for _, s := range []string{"0invalid", "contains l", "I", "O0"} {
		_, err := Base58Decode(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestBase58CheckRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0x42}, Hash160Size)

	encoded := Base58EncodeCheck(payload, 36)
	assert.Equal(t, byte('F'), encoded[0], "version 36 addresses start with F")

	decoded, version, err := Base58DecodeCheck(encoded)
	require.NoError(t, err)
	assert.Equal(t, byte(36), version)
	assert.Equal(t, payload, decoded)
}

func TestBase58CheckDetectsCorruption(t *testing.T) {
	payload := bytes.Repeat([]byte{0x42}, Hash160Size)
	encoded := Base58EncodeCheck(payload, 36)

	// flip one character to another alphabet member
	corrupted := []byte(encoded)
	if corrupted[5] == 'x' {
		corrupted[5] = 'y'
	} else {
		corrupted[5] = 'x'
	}
	_, _, err := Base58DecodeCheck(string(corrupted))
	assert.Error(t, err)
}

func TestBase58CheckRejectsShortInput(t *testing.T) {
	_, _, err := Base58DecodeCheck("1")
	assert.Error(t, err)
}
