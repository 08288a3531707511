package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/log"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/service/query"
)

type priceFeedMongoRepo struct {
	q query.Mongo
}

func NewPriceFeedRepo(q query.Mongo) domain.PriceFeedRepo {
	return &priceFeedMongoRepo{
		q: q,
	}
}

func (r *priceFeedMongoRepo) FindOne(ctx bCtx.Ctx, asset domain.Asset) (*domain.PriceFeed, error) {
	feed := &domain.PriceFeed{}
	qry := bson.M{"assetKey": asset.Key()}
	if err := r.q.FindOne(ctx, domain.TablePriceFeeds, qry, feed); err == query.ErrNotFound {
		return nil, domain.ErrNoPriceFeed
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return feed, nil
}

func (r *priceFeedMongoRepo) Upsert(ctx bCtx.Ctx, feed *domain.PriceFeed) error {
	selector := bson.M{"assetKey": feed.AssetKey}
	if err := r.q.Upsert(ctx, domain.TablePriceFeeds, selector, feed); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"assetKey": feed.AssetKey,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
