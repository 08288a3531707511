package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/service/query"
)

type operatorMongoRepo struct {
	q query.Mongo
}

func NewOperatorRepo(q query.Mongo) domain.OperatorRepo {
	return &operatorMongoRepo{
		q: q,
	}
}

func (r *operatorMongoRepo) FindOne(ctx bCtx.Ctx, address domain.Address) (*domain.Operator, error) {
	operator := &domain.Operator{}
	qry := bson.M{"address": address.ToLower()}
	if err := r.q.FindOne(ctx, domain.TableOperators, qry, operator); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return operator, nil
}

func (r *operatorMongoRepo) Insert(ctx bCtx.Ctx, operator *domain.Operator) error {
	if err := r.q.Insert(ctx, domain.TableOperators, operator); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *operatorMongoRepo) Remove(ctx bCtx.Ctx, address domain.Address) error {
	qry := bson.M{"address": address.ToLower()}
	if err := r.q.Remove(ctx, domain.TableOperators, qry); err != nil && err != query.ErrNotFound {
		ctx.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}
