package domain

type AssetKind string

const (
	AssetKindNative   AssetKind = "native"
	AssetKindFungible AssetKind = "fungible"
)

// Asset is the closed variant of things a bid can be paid in: the
// chain's native asset or a registered fungible token. Components
// consume Asset instead of sprinkling zero-address checks around.
type Asset struct {
	Kind  AssetKind `bson:"kind" json:"kind"`
	Token Address   `bson:"token,omitempty" json:"token,omitempty"`
}

func NativeAsset() Asset {
	return Asset{Kind: AssetKindNative}
}

func FungibleAsset(token Address) Asset {
	return Asset{Kind: AssetKindFungible, Token: token.ToLower()}
}

// ParseAsset maps the wire conventions onto the variant. An omitted
// token and the zero address both mean the native asset, matching the
// bid call sites that leave the asset argument out for native bids.
func ParseAsset(token Address) Asset {
	if token.IsEmpty() || token.Equals(EmptyAddress) {
		return NativeAsset()
	}
	return FungibleAsset(token)
}

func (a Asset) IsNative() bool {
	return a.Kind == AssetKindNative
}

// Valid reports whether Kind is one of the closed variants. Records
// decoded from storage or the wire may carry anything.
func (a Asset) Valid() bool {
	switch a.Kind {
	case AssetKindNative, AssetKindFungible:
		return true
	}
	return false
}

// Key returns a stable identifier usable as a ledger/bson key.
func (a Asset) Key() string {
	if a.IsNative() {
		return string(AssetKindNative)
	}
	return a.Token.ToLowerStr()
}

func (a Asset) Equals(b Asset) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.IsNative() {
		return true
	}
	return a.Token.Equals(b.Token)
}
