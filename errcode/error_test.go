package errcode

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewCarriesModuleAndCode(t *testing.T) {
	err := New(ErrRewardOverdraft)

	pe, ok := err.(ProjectError)
	assert.True(t, ok)
	assert.Equal(t, "reward", pe.Module)
	assert.Equal(t, int(ErrRewardOverdraft), pe.Code)
	assert.Equal(t, ErrRewardOverdraft.String(), pe.Desc)
}

func TestNewErrorOverridesDescription(t *testing.T) {
	err := NewError(ErrBlockSizeTooSmall, "max size 500 below floor")

	pe := err.(ProjectError)
	assert.Equal(t, "mining", pe.Module)
	assert.Equal(t, "max size 500 below floor", pe.Desc)
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrNoMiningAddress)

	assert.True(t, IsErrorCode(err, ErrNoMiningAddress))
	assert.False(t, IsErrorCode(err, ErrTemplateStale))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrNoMiningAddress))
	assert.False(t, IsErrorCode(nil, ErrNoMiningAddress))
}

func TestCodeRangesAreDisjoint(t *testing.T) {
	assert.NotEqual(t, int(MiningBase), int(RewardBase))
	assert.False(t, IsErrorCode(New(ErrRewardOverdraft), ErrBlockSizeTooSmall))
}

func TestUnknownCodeString(t *testing.T) {
	assert.Contains(t, MiningErr(2999).String(), "Unknown code")
}
