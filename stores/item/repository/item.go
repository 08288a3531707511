package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/log"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/service/query"
)

type itemMongoRepo struct {
	q query.Mongo
}

func NewItemRepo(q query.Mongo) domain.ItemRepo {
	return &itemMongoRepo{
		q: q,
	}
}

func (r *itemMongoRepo) FindOne(ctx bCtx.Ctx, collection domain.Address, tokenId domain.TokenId) (*domain.Item, error) {
	item := &domain.Item{}
	qry := bson.M{"collection": collection.ToLower(), "tokenId": tokenId}
	if err := r.q.FindOne(ctx, domain.TableItems, qry, item); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return item, nil
}

func (r *itemMongoRepo) Insert(ctx bCtx.Ctx, item *domain.Item) error {
	if err := r.q.Insert(ctx, domain.TableItems, item); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

// SetOwner transfers ownership guarded on the expected current owner,
// clearing any single-item approval in the same update.
func (r *itemMongoRepo) SetOwner(ctx bCtx.Ctx, collection domain.Address, tokenId domain.TokenId, from, to domain.Address) error {
	selector := bson.M{
		"collection": collection.ToLower(),
		"tokenId":    tokenId,
		"owner":      from.ToLower(),
	}
	updater := bson.M{
		"$set": bson.M{
			"owner":     to.ToLower(),
			"approved":  "",
			"updatedAt": time.Now(),
		},
	}
	if err := r.q.CustomPatch(ctx, domain.TableItems, selector, updater, false); err == query.ErrNotFound {
		return domain.ErrNotItemOwner
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"tokenId":    tokenId,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (r *itemMongoRepo) SetApproved(ctx bCtx.Ctx, collection domain.Address, tokenId domain.TokenId, approved domain.Address) error {
	selector := bson.M{"collection": collection.ToLower(), "tokenId": tokenId}
	updater := bson.M{
		"$set": bson.M{
			"approved":  approved.ToLower(),
			"updatedAt": time.Now(),
		},
	}
	if err := r.q.CustomPatch(ctx, domain.TableItems, selector, updater, false); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (r *itemMongoRepo) FindApproval(ctx bCtx.Ctx, collection domain.Address, owner, operator domain.Address) (*domain.ItemApproval, error) {
	approval := &domain.ItemApproval{}
	qry := bson.M{
		"collection": collection.ToLower(),
		"owner":      owner.ToLower(),
		"operator":   operator.ToLower(),
	}
	if err := r.q.FindOne(ctx, domain.TableItemApprovals, qry, approval); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return approval, nil
}

func (r *itemMongoRepo) UpsertApproval(ctx bCtx.Ctx, approval *domain.ItemApproval) error {
	selector := bson.M{
		"collection": approval.Collection,
		"owner":      approval.Owner,
		"operator":   approval.Operator,
	}
	if err := r.q.Upsert(ctx, domain.TableItemApprovals, selector, approval); err != nil {
		ctx.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
