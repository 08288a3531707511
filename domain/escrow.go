package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bidhaus/goauction/base/ctx"
)

// EscrowRecord tracks what the vault holds for one auction: the item
// leg from creation to settlement and the funds leg for the current
// highest bid.
type EscrowRecord struct {
	InstanceRef   InstanceRef          `bson:"instanceRef"`
	AuctionId     int64                `bson:"auctionId"`
	Collection    Address              `bson:"collection"`
	TokenId       TokenId              `bson:"tokenId"`
	ItemHeld      bool                 `bson:"itemHeld"`
	PledgedBidder Address              `bson:"pledgedBidder,omitempty"`
	PledgedAsset  *Asset               `bson:"pledgedAsset,omitempty"`
	PledgedAmount primitive.Decimal128 `bson:"pledgedAmount,omitempty"`
	CreatedAt     time.Time            `bson:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt"`
}

type EscrowRepo interface {
	FindOne(c ctx.Ctx, instanceRef InstanceRef, auctionId int64) (*EscrowRecord, error)
	Upsert(c ctx.Ctx, record *EscrowRecord) error
}

// EscrowUsecase moves items and funds in and out of the vault. Every
// operation either fully succeeds or fails with no state change;
// failures surface as ErrTransferFailed and are never retried here.
type EscrowUsecase interface {
	// HoldItem pulls the item from seller into the vault. Seller must
	// have granted custody rights to the engine operator beforehand.
	HoldItem(c ctx.Ctx, instanceRef InstanceRef, auctionId int64, seller Address, collection Address, tokenId TokenId) error

	// ReleaseItem hands the held item to its final recipient.
	ReleaseItem(c ctx.Ctx, instanceRef InstanceRef, auctionId int64, to Address) error

	// RecoverItem pulls a just-released item back into the vault when
	// settlement aborts after the item moved but before the funds did.
	RecoverItem(c ctx.Ctx, instanceRef InstanceRef, auctionId int64, from Address) error

	// Pledge pulls a bidder's funds into the vault, gated by a prior
	// approve on the bidder's side.
	Pledge(c ctx.Ctx, instanceRef InstanceRef, auctionId int64, from Address, asset Asset, amount decimal.Decimal) error

	// Refund returns previously pledged funds to an outbid bidder.
	Refund(c ctx.Ctx, instanceRef InstanceRef, auctionId int64, to Address, asset Asset, amount decimal.Decimal) error

	// Forward pays the pledged funds out to the seller at settlement.
	Forward(c ctx.Ctx, instanceRef InstanceRef, auctionId int64, to Address, asset Asset, amount decimal.Decimal) error
}
