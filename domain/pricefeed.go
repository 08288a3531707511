package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bidhaus/goauction/base/ctx"
)

// PriceFeed binds an asset to the oracle aggregator quoting it.
// Re-registering the same asset overwrites the previous binding, that
// is the only update path.
type PriceFeed struct {
	AssetKey    string    `bson:"assetKey"`
	Asset       Asset     `bson:"asset"`
	FeedAddress Address   `bson:"feedAddress"`
	UpdatedBy   Address   `bson:"updatedBy"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

type PriceFeedRepo interface {
	FindOne(ctx.Ctx, Asset) (*PriceFeed, error)
	Upsert(ctx.Ctx, *PriceFeed) error
}

// PriceFeedUsecase is the feed registry plus the bid normalizer built
// on top of it.
type PriceFeedUsecase interface {
	// SetFeed registers or overwrites the feed binding for asset.
	// Only operators may call it.
	SetFeed(c ctx.Ctx, operator Address, asset Asset, feed Address) error

	// FeedFor resolves the feed bound to asset, ErrNoPriceFeed when unset.
	FeedFor(c ctx.Ctx, asset Asset) (*PriceFeed, error)

	// Normalize converts an (asset, amount) pair into the common
	// comparison value: amount * quote / 10^(quote decimals), both read
	// from the aggregator the asset's feed points at.
	Normalize(c ctx.Ctx, asset Asset, amount decimal.Decimal) (decimal.Decimal, error)
}
