package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/log"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/domain/auction"
	"github.com/bidhaus/goauction/service/query"
)

type auctionMongoRepo struct {
	q query.Mongo
}

func NewAuctionRepo(q query.Mongo) auction.Repo {
	return &auctionMongoRepo{
		q: q,
	}
}

func (r *auctionMongoRepo) FindOne(ctx bCtx.Ctx, instanceRef domain.InstanceRef, auctionId int64) (*auction.Auction, error) {
	a := &auction.Auction{}
	qry := bson.M{"instanceRef": instanceRef, "auctionId": auctionId}
	if err := r.q.FindOne(ctx, domain.TableAuctions, qry, a); err == query.ErrNotFound {
		return nil, domain.ErrAuctionNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return a, nil
}

func (r *auctionMongoRepo) Insert(ctx bCtx.Ctx, a *auction.Auction) error {
	if err := r.q.Insert(ctx, domain.TableAuctions, a); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *auctionMongoRepo) Search(ctx bCtx.Ctx, instanceRef domain.InstanceRef, offset, limit int) ([]*auction.Auction, error) {
	res := []*auction.Auction{}
	qry := bson.M{"instanceRef": instanceRef}
	if err := r.q.Search(ctx, domain.TableAuctions, offset, limit, "auctionId", qry, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *auctionMongoRepo) Count(ctx bCtx.Ctx, instanceRef domain.InstanceRef) (int, error) {
	qry := bson.M{"instanceRef": instanceRef}
	cnt, err := r.q.Count(ctx, domain.TableAuctions, qry)
	if err != nil {
		ctx.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return cnt, nil
}

// NextAuctionId reserves ids through an atomic counter document, one
// per instance, so ids are sequential within an instance.
func (r *auctionMongoRepo) NextAuctionId(ctx bCtx.Ctx, instanceRef domain.InstanceRef) (int64, error) {
	counter := &auction.Counter{}
	qry := bson.M{"instanceRef": instanceRef}
	if err := r.q.Increment(ctx, domain.TableAuctionCounters, qry, counter, "nextId", int64(1)); err != nil {
		ctx.WithFields(log.Fields{
			"err":         err,
			"instanceRef": instanceRef,
		}).Error("q.Increment failed")
		return 0, err
	}
	return counter.NextId, nil
}

func (r *auctionMongoRepo) SetHighestBid(ctx bCtx.Ctx, instanceRef domain.InstanceRef, auctionId int64, bid *auction.Bid) error {
	selector := bson.M{
		"instanceRef": instanceRef,
		"auctionId":   auctionId,
		"ended":       false,
	}
	updater := bson.M{
		"$set": bson.M{
			"highestBid": bid,
			"updatedAt":  time.Now(),
		},
	}
	if err := r.q.CustomPatch(ctx, domain.TableAuctions, selector, updater, false); err == query.ErrNotFound {
		return domain.ErrAlreadyEnded
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":         err,
			"instanceRef": instanceRef,
			"auctionId":   auctionId,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

// MarkEnded flips the ended flag exactly once, the guard loses against
// a concurrent settle and surfaces ErrAlreadyEnded.
func (r *auctionMongoRepo) MarkEnded(ctx bCtx.Ctx, instanceRef domain.InstanceRef, auctionId int64) error {
	selector := bson.M{
		"instanceRef": instanceRef,
		"auctionId":   auctionId,
		"ended":       false,
	}
	updater := bson.M{
		"$set": bson.M{
			"ended":     true,
			"settled":   true,
			"updatedAt": time.Now(),
		},
	}
	if err := r.q.CustomPatch(ctx, domain.TableAuctions, selector, updater, false); err == query.ErrNotFound {
		return domain.ErrAlreadyEnded
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":         err,
			"instanceRef": instanceRef,
			"auctionId":   auctionId,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

// UnmarkEnded reopens an auction whose settlement aborted after the
// ended flag committed, so the transfers can run again later.
func (r *auctionMongoRepo) UnmarkEnded(ctx bCtx.Ctx, instanceRef domain.InstanceRef, auctionId int64) error {
	selector := bson.M{
		"instanceRef": instanceRef,
		"auctionId":   auctionId,
		"ended":       true,
	}
	updater := bson.M{
		"$set": bson.M{
			"ended":     false,
			"settled":   false,
			"updatedAt": time.Now(),
		},
	}
	if err := r.q.CustomPatch(ctx, domain.TableAuctions, selector, updater, false); err == query.ErrNotFound {
		return domain.ErrAuctionNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":         err,
			"instanceRef": instanceRef,
			"auctionId":   auctionId,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (r *auctionMongoRepo) SearchExpired(ctx bCtx.Ctx, before time.Time, limit int) ([]*auction.Auction, error) {
	res := []*auction.Auction{}
	qry := bson.M{
		"ended": false,
		"endAt": bson.M{"$lt": before},
	}
	if err := r.q.Search(ctx, domain.TableAuctions, 0, limit, "endAt", qry, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
