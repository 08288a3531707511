package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/domain/beacon"
	"github.com/bidhaus/goauction/service/query"
)

type instanceMongoRepo struct {
	q query.Mongo
}

func NewInstanceRepo(q query.Mongo) beacon.InstanceRepo {
	return &instanceMongoRepo{
		q: q,
	}
}

func (r *instanceMongoRepo) FindOne(ctx bCtx.Ctx, ref domain.InstanceRef) (*beacon.Instance, error) {
	instance := &beacon.Instance{}
	qry := bson.M{"ref": ref}
	if err := r.q.FindOne(ctx, domain.TableInstances, qry, instance); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return instance, nil
}

func (r *instanceMongoRepo) Insert(ctx bCtx.Ctx, instance *beacon.Instance) error {
	if err := r.q.Insert(ctx, domain.TableInstances, instance); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *instanceMongoRepo) Search(ctx bCtx.Ctx, offset, limit int) ([]*beacon.Instance, error) {
	res := []*beacon.Instance{}
	if err := r.q.Search(ctx, domain.TableInstances, offset, limit, "createdAt", bson.M{}, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *instanceMongoRepo) Count(ctx bCtx.Ctx) (int, error) {
	cnt, err := r.q.Count(ctx, domain.TableInstances, bson.M{})
	if err != nil {
		ctx.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return cnt, nil
}
