package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAsset(t *testing.T) {
	assert.Equal(t, NativeAsset(), ParseAsset(""))
	assert.Equal(t, NativeAsset(), ParseAsset(EmptyAddress))
	assert.Equal(t, NativeAsset(), ParseAsset("0x0000000000000000000000000000000000000000"))

	usdc := Address("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	parsed := ParseAsset(usdc)
	assert.Equal(t, AssetKindFungible, parsed.Kind)
	assert.Equal(t, usdc.ToLower(), parsed.Token)
}

func TestAssetKey(t *testing.T) {
	assert.Equal(t, "native", NativeAsset().Key())
	assert.Equal(t,
		"0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48",
		FungibleAsset("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48").Key(),
	)
}

func TestAssetValid(t *testing.T) {
	assert.True(t, NativeAsset().Valid())
	assert.True(t, FungibleAsset("0xabc").Valid())
	assert.False(t, Asset{Kind: "bogus"}.Valid())
	assert.False(t, Asset{}.Valid())
}

func TestAssetEquals(t *testing.T) {
	assert.True(t, NativeAsset().Equals(ParseAsset(EmptyAddress)))
	assert.True(t, FungibleAsset("0xABC").Equals(FungibleAsset("0xabc")))
	assert.False(t, NativeAsset().Equals(FungibleAsset("0xabc")))
}
