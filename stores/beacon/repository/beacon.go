package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/log"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/domain/beacon"
	"github.com/bidhaus/goauction/service/query"
)

type beaconMongoRepo struct {
	q query.Mongo
}

func NewBeaconRepo(q query.Mongo) beacon.Repo {
	return &beaconMongoRepo{
		q: q,
	}
}

func (r *beaconMongoRepo) Current(ctx bCtx.Ctx) (domain.LogicRef, error) {
	b := &beacon.Beacon{}
	qry := bson.M{"name": beacon.DefaultName}
	if err := r.q.FindOne(ctx, domain.TableBeacons, qry, b); err == query.ErrNotFound {
		return "", domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return "", err
	}
	return b.LogicRef, nil
}

func (r *beaconMongoRepo) Upgrade(ctx bCtx.Ctx, by domain.Address, ref domain.LogicRef) error {
	selector := bson.M{"name": beacon.DefaultName}
	b := &beacon.Beacon{
		Name:      beacon.DefaultName,
		LogicRef:  ref,
		UpdatedBy: by.ToLower(),
		UpdatedAt: time.Now(),
	}
	if err := r.q.Upsert(ctx, domain.TableBeacons, selector, b); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"logicRef": ref,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
