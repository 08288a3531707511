package auction

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/domain"
)

type State string

const (
	StateCreated State = "created"
	StateActive  State = "active"
	StateEnded   State = "ended"
)

// Bid is the current highest bid. NormalizedValue is the cross-asset
// comparison value computed at acceptance time and is strictly
// increasing across the auction's accepted bids.
type Bid struct {
	Bidder          domain.Address       `bson:"bidder"`
	Asset           domain.Asset         `bson:"asset"`
	RawAmount       primitive.Decimal128 `bson:"rawAmount"`
	NormalizedValue primitive.Decimal128 `bson:"normalizedValue"`
	PlacedAt        time.Time            `bson:"placedAt"`
}

func (b *Bid) RawAmountDecimal() (decimal.Decimal, error) {
	return domain.FromDecimal128(b.RawAmount)
}

func (b *Bid) NormalizedValueDecimal() (decimal.Decimal, error) {
	return domain.FromDecimal128(b.NormalizedValue)
}

// Auction is one instance-scoped auction record. Activity is a derived
// predicate over [StartTime, StartTime+Duration), not a stored state.
type Auction struct {
	InstanceRef  domain.InstanceRef   `bson:"instanceRef"`
	AuctionId    int64                `bson:"auctionId"`
	Seller       domain.Address       `bson:"seller"`
	Collection   domain.Address       `bson:"collection"`
	TokenId      domain.TokenId       `bson:"tokenId"`
	StartTime    time.Time            `bson:"startTime"`
	Duration     int64                `bson:"duration"` // seconds
	EndAt        time.Time            `bson:"endAt"`
	ReservePrice primitive.Decimal128 `bson:"reservePrice"`
	HighestBid   *Bid                 `bson:"highestBid,omitempty"`
	Ended        bool                 `bson:"ended"`
	Settled      bool                 `bson:"settled"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}

func (a *Auction) EndTime() time.Time {
	if !a.EndAt.IsZero() {
		return a.EndAt
	}
	return a.StartTime.Add(time.Duration(a.Duration) * time.Second)
}

// IsActive reports whether now falls inside the bidding window.
func (a *Auction) IsActive(now time.Time) bool {
	if a.Ended {
		return false
	}
	return !now.Before(a.StartTime) && now.Before(a.EndTime())
}

// StateAt derives the lifecycle state from the stored flags and the clock.
func (a *Auction) StateAt(now time.Time) State {
	if a.Ended {
		return StateEnded
	}
	if a.IsActive(now) {
		return StateActive
	}
	return StateCreated
}

func (a *Auction) ReservePriceDecimal() (decimal.Decimal, error) {
	return domain.FromDecimal128(a.ReservePrice)
}

// Counter carries the per-instance monotonic auction id.
type Counter struct {
	InstanceRef domain.InstanceRef `bson:"instanceRef"`
	NextId      int64              `bson:"nextId"`
}

type Repo interface {
	FindOne(c ctx.Ctx, instanceRef domain.InstanceRef, auctionId int64) (*Auction, error)
	Insert(c ctx.Ctx, auction *Auction) error
	Search(c ctx.Ctx, instanceRef domain.InstanceRef, offset, limit int) ([]*Auction, error)
	Count(c ctx.Ctx, instanceRef domain.InstanceRef) (int, error)

	// NextAuctionId atomically reserves the next sequential id for the
	// instance.
	NextAuctionId(c ctx.Ctx, instanceRef domain.InstanceRef) (int64, error)

	// SetHighestBid replaces the highest bid, guarded on the auction
	// still being open. ErrAlreadyEnded when the guard misses.
	SetHighestBid(c ctx.Ctx, instanceRef domain.InstanceRef, auctionId int64, bid *Bid) error

	// MarkEnded flips ended+settled exactly once, guarded on
	// ended == false. ErrAlreadyEnded when the auction already ended.
	MarkEnded(c ctx.Ctx, instanceRef domain.InstanceRef, auctionId int64) error

	// UnmarkEnded reopens an auction whose settlement transfers failed
	// after MarkEnded committed.
	UnmarkEnded(c ctx.Ctx, instanceRef domain.InstanceRef, auctionId int64) error

	// SearchExpired lists auctions whose window elapsed but are not
	// ended yet, used by the expiry sweeper.
	SearchExpired(c ctx.Ctx, before time.Time, limit int) ([]*Auction, error)
}

// Engine is one logic version of the auction state machine. Every
// instance resolves its Engine through the beacon on each call, so a
// beacon upgrade changes behavior for all instances at once.
type Engine interface {
	Version() string

	CreateAuction(c ctx.Ctx, p *CreateAuctionParams) (*Auction, error)
	PlaceBid(c ctx.Ctx, p *PlaceBidParams) (*Auction, error)
	EndAuction(c ctx.Ctx, p *EndAuctionParams) (*Auction, error)

	GetAuction(c ctx.Ctx, instanceRef domain.InstanceRef, auctionId int64) (*Auction, error)
	ListAuctions(c ctx.Ctx, instanceRef domain.InstanceRef, offset, limit int) ([]*Auction, error)
}
