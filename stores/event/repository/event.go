package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/service/query"
)

type eventMongoRepo struct {
	q query.Mongo
}

func NewEventRepo(q query.Mongo) domain.EventRepo {
	return &eventMongoRepo{
		q: q,
	}
}

func (r *eventMongoRepo) Insert(ctx bCtx.Ctx, event *domain.Event) error {
	if err := r.q.Insert(ctx, domain.TableEvents, event); err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *eventMongoRepo) Search(ctx bCtx.Ctx, instanceRef domain.InstanceRef, offset, limit int) ([]*domain.Event, error) {
	res := []*domain.Event{}
	qry := bson.M{}
	if len(instanceRef) > 0 {
		qry["instanceRef"] = instanceRef
	}
	if err := r.q.Search(ctx, domain.TableEvents, offset, limit, "-emittedAt", qry, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
