package usecase

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/keylock"
	"github.com/bidhaus/goauction/base/log"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/domain/auction"
)

type impl struct {
	auctions auction.Repo
	feeds    domain.PriceFeedUsecase
	escrow   domain.EscrowUsecase
	items    domain.ItemUsecase
	events   domain.EventRepo
	locks    *keylock.KeyLock
	now      func() time.Time
}

// every logic version serializes on the same per-auction locks, an
// in-flight V1 call and a V2 call on one auction must not interleave
// around an upgrade
var auctionLocks = keylock.New()

// New builds the V1 auction engine. All state transitions of one
// auction are serialized through a per-auction keylock, mongo guards
// are the backstop against writers outside this process.
func New(auctions auction.Repo, feeds domain.PriceFeedUsecase, escrow domain.EscrowUsecase, items domain.ItemUsecase, events domain.EventRepo) auction.Engine {
	return &impl{
		auctions: auctions,
		feeds:    feeds,
		escrow:   escrow,
		items:    items,
		events:   events,
		locks:    auctionLocks,
		now:      time.Now,
	}
}

func (im *impl) Version() string {
	return "V1.0"
}

func (im *impl) CreateAuction(c ctx.Ctx, p *auction.CreateAuctionParams) (*auction.Auction, error) {
	if p.Duration <= 0 || p.ReservePrice.IsNegative() ||
		p.Seller.IsEmpty() || p.Collection.IsEmpty() || p.TokenId == "" {
		return nil, domain.ErrInvalidParameters
	}

	owner, err := im.items.OwnerOf(c, p.Collection, p.TokenId)
	if err != nil {
		return nil, err
	}
	if !owner.Equals(p.Seller) {
		return nil, domain.ErrNotItemOwner
	}

	auctionId, err := im.auctions.NextAuctionId(c, p.InstanceRef)
	if err != nil {
		return nil, err
	}

	if err := im.escrow.HoldItem(c, p.InstanceRef, auctionId, p.Seller, p.Collection, p.TokenId); err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": p.Collection,
			"tokenId":    p.TokenId,
		}).Error("escrow.HoldItem failed")
		return nil, err
	}

	now := im.now()
	a := &auction.Auction{
		InstanceRef:  p.InstanceRef,
		AuctionId:    auctionId,
		Seller:       p.Seller.ToLower(),
		Collection:   p.Collection.ToLower(),
		TokenId:      p.TokenId,
		StartTime:    now,
		Duration:     p.Duration,
		EndAt:        now.Add(time.Duration(p.Duration) * time.Second),
		ReservePrice: domain.MustDecimal128(p.ReservePrice),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := im.auctions.Insert(c, a); err != nil {
		c.WithField("err", err).Error("auctions.Insert failed")
		// hand the item back, the auction never came to exist
		if rErr := im.escrow.ReleaseItem(c, p.InstanceRef, auctionId, p.Seller); rErr != nil {
			c.WithField("err", rErr).Error("escrow.ReleaseItem failed")
		}
		return nil, err
	}

	im.emit(c, domain.EventAuctionCreated, p.InstanceRef, bson.M{
		"auctionId":    auctionId,
		"seller":       a.Seller,
		"collection":   a.Collection,
		"tokenId":      a.TokenId,
		"reservePrice": p.ReservePrice.String(),
	})
	return a, nil
}

func (im *impl) PlaceBid(c ctx.Ctx, p *auction.PlaceBidParams) (*auction.Auction, error) {
	unlock := im.locks.Lock(lockKey(p.InstanceRef, p.AuctionId))
	defer unlock()

	a, err := im.auctions.FindOne(c, p.InstanceRef, p.AuctionId)
	if err != nil {
		return nil, err
	}

	now := im.now()
	if !a.IsActive(now) {
		return nil, domain.ErrAuctionNotActive
	}
	if p.Bidder.IsEmpty() || !p.Amount.IsPositive() {
		return nil, domain.ErrInvalidParameters
	}

	normalized, err := im.feeds.Normalize(c, p.Asset, p.Amount)
	if err != nil {
		return nil, err
	}

	if a.HighestBid != nil {
		prev, err := a.HighestBid.NormalizedValueDecimal()
		if err != nil {
			return nil, err
		}
		if !normalized.GreaterThan(prev) {
			return nil, domain.ErrBidTooLow
		}
	} else {
		reserve, err := a.ReservePriceDecimal()
		if err != nil {
			return nil, err
		}
		// the reserve is native-denominated, put it on the same value
		// scale before comparing
		reserveValue, err := im.feeds.Normalize(c, domain.NativeAsset(), reserve)
		if err != nil {
			return nil, err
		}
		if normalized.LessThan(reserveValue) {
			return nil, domain.ErrBidTooLow
		}
	}

	if err := im.escrow.Pledge(c, p.InstanceRef, p.AuctionId, p.Bidder, p.Asset, p.Amount); err != nil {
		return nil, err
	}

	bid := &auction.Bid{
		Bidder:          p.Bidder.ToLower(),
		Asset:           p.Asset,
		RawAmount:       domain.MustDecimal128(p.Amount),
		NormalizedValue: domain.MustDecimal128(normalized),
		PlacedAt:        now,
	}
	if err := im.auctions.SetHighestBid(c, p.InstanceRef, p.AuctionId, bid); err != nil {
		c.WithField("err", err).Error("auctions.SetHighestBid failed")
		if rErr := im.escrow.Refund(c, p.InstanceRef, p.AuctionId, p.Bidder, p.Asset, p.Amount); rErr != nil {
			c.WithField("err", rErr).Error("escrow.Refund failed")
		}
		return nil, err
	}

	// refund strictly after the new bid is committed
	if prev := a.HighestBid; prev != nil {
		if err := im.refundPrevious(c, p, prev); err != nil {
			return nil, err
		}
	}

	im.emit(c, domain.EventNewBid, p.InstanceRef, bson.M{
		"auctionId":       p.AuctionId,
		"bidder":          bid.Bidder,
		"asset":           p.Asset.Key(),
		"amount":          p.Amount.String(),
		"normalizedValue": normalized.String(),
	})

	a.HighestBid = bid
	a.UpdatedAt = now
	return a, nil
}

// refundPrevious returns the displaced bidder's pledge. When the refund
// cannot be made the replacement is rolled back as a whole so the
// displaced bidder never loses custody of their funds.
func (im *impl) refundPrevious(c ctx.Ctx, p *auction.PlaceBidParams, prev *auction.Bid) error {
	prevAmount, err := prev.RawAmountDecimal()
	if err != nil {
		return err
	}
	err = im.escrow.Refund(c, p.InstanceRef, p.AuctionId, prev.Bidder, prev.Asset, prevAmount)
	if err == nil {
		return nil
	}
	c.WithFields(log.Fields{
		"err":       err,
		"auctionId": p.AuctionId,
		"bidder":    prev.Bidder,
	}).Error("escrow.Refund failed")

	if rErr := im.auctions.SetHighestBid(c, p.InstanceRef, p.AuctionId, prev); rErr != nil {
		c.WithField("err", rErr).Error("auctions.SetHighestBid failed")
	}
	if rErr := im.escrow.Refund(c, p.InstanceRef, p.AuctionId, p.Bidder, p.Asset, p.Amount); rErr != nil {
		c.WithField("err", rErr).Error("escrow.Refund failed")
	}
	return domain.ErrTransferFailed
}

func (im *impl) EndAuction(c ctx.Ctx, p *auction.EndAuctionParams) (*auction.Auction, error) {
	unlock := im.locks.Lock(lockKey(p.InstanceRef, p.AuctionId))
	defer unlock()

	a, err := im.auctions.FindOne(c, p.InstanceRef, p.AuctionId)
	if err != nil {
		return nil, err
	}
	if a.Ended {
		return nil, domain.ErrAlreadyEnded
	}
	if im.now().Before(a.EndTime()) {
		return nil, domain.ErrAuctionNotExpired
	}

	// the guard makes the settlement below run at most once
	if err := im.auctions.MarkEnded(c, p.InstanceRef, p.AuctionId); err != nil {
		return nil, err
	}

	data := bson.M{"auctionId": p.AuctionId}
	if win := a.HighestBid; win != nil {
		amount, err := win.RawAmountDecimal()
		if err != nil {
			im.reopen(c, p)
			return nil, err
		}
		if err := im.escrow.ReleaseItem(c, p.InstanceRef, p.AuctionId, win.Bidder); err != nil {
			c.WithField("err", err).Error("escrow.ReleaseItem failed")
			im.reopen(c, p)
			return nil, err
		}
		if err := im.escrow.Forward(c, p.InstanceRef, p.AuctionId, a.Seller, win.Asset, amount); err != nil {
			c.WithField("err", err).Error("escrow.Forward failed")
			// settlement aborts as a whole, take the item back and
			// reopen so a later end runs both transfers again
			if rErr := im.escrow.RecoverItem(c, p.InstanceRef, p.AuctionId, win.Bidder); rErr != nil {
				c.WithField("err", rErr).Error("escrow.RecoverItem failed")
			}
			im.reopen(c, p)
			return nil, domain.ErrTransferFailed
		}
		data["winner"] = win.Bidder
		data["finalNormalizedValue"] = win.NormalizedValue.String()
	} else {
		if err := im.escrow.ReleaseItem(c, p.InstanceRef, p.AuctionId, a.Seller); err != nil {
			c.WithField("err", err).Error("escrow.ReleaseItem failed")
			im.reopen(c, p)
			return nil, err
		}
	}

	im.emit(c, domain.EventAuctionEnded, p.InstanceRef, data)

	a.Ended = true
	a.Settled = true
	a.UpdatedAt = im.now()
	return a, nil
}

// reopen undoes MarkEnded after a failed settlement so no auction stays
// ended with undistributed item or funds.
func (im *impl) reopen(c ctx.Ctx, p *auction.EndAuctionParams) {
	if err := im.auctions.UnmarkEnded(c, p.InstanceRef, p.AuctionId); err != nil {
		c.WithFields(log.Fields{
			"err":         err,
			"instanceRef": p.InstanceRef,
			"auctionId":   p.AuctionId,
		}).Error("auctions.UnmarkEnded failed")
	}
}

func (im *impl) GetAuction(c ctx.Ctx, instanceRef domain.InstanceRef, auctionId int64) (*auction.Auction, error) {
	return im.auctions.FindOne(c, instanceRef, auctionId)
}

func (im *impl) ListAuctions(c ctx.Ctx, instanceRef domain.InstanceRef, offset, limit int) ([]*auction.Auction, error) {
	return im.auctions.Search(c, instanceRef, offset, limit)
}

// emit records the side effect, a failed write is logged but never
// fails the operation that produced it.
func (im *impl) emit(c ctx.Ctx, typ domain.EventType, instanceRef domain.InstanceRef, data bson.M) {
	event := &domain.Event{
		Type:        typ,
		InstanceRef: instanceRef,
		EmittedAt:   im.now(),
		Data:        data,
	}
	if err := im.events.Insert(c, event); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"type": typ,
		}).Error("events.Insert failed")
	}
}

func lockKey(instanceRef domain.InstanceRef, auctionId int64) string {
	return fmt.Sprintf("%s:%d", instanceRef, auctionId)
}
