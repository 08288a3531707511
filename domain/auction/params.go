package auction

import (
	"github.com/shopspring/decimal"

	"github.com/bidhaus/goauction/domain"
)

type CreateAuctionParams struct {
	InstanceRef  domain.InstanceRef
	Seller       domain.Address
	Duration     int64 // seconds
	ReservePrice decimal.Decimal // native base units
	Collection   domain.Address
	TokenId      domain.TokenId
}

type PlaceBidParams struct {
	InstanceRef domain.InstanceRef
	AuctionId   int64
	Bidder      domain.Address
	Asset       domain.Asset
	Amount      decimal.Decimal
}

type EndAuctionParams struct {
	InstanceRef domain.InstanceRef
	AuctionId   int64
	Caller      domain.Address
}
