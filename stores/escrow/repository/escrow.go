package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/log"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/service/query"
)

type escrowMongoRepo struct {
	q query.Mongo
}

func NewEscrowRepo(q query.Mongo) domain.EscrowRepo {
	return &escrowMongoRepo{
		q: q,
	}
}

func (r *escrowMongoRepo) FindOne(ctx bCtx.Ctx, instanceRef domain.InstanceRef, auctionId int64) (*domain.EscrowRecord, error) {
	record := &domain.EscrowRecord{}
	qry := bson.M{"instanceRef": instanceRef, "auctionId": auctionId}
	if err := r.q.FindOne(ctx, domain.TableEscrowRecords, qry, record); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return record, nil
}

func (r *escrowMongoRepo) Upsert(ctx bCtx.Ctx, record *domain.EscrowRecord) error {
	selector := bson.M{"instanceRef": record.InstanceRef, "auctionId": record.AuctionId}
	if err := r.q.Upsert(ctx, domain.TableEscrowRecords, selector, record); err != nil {
		ctx.WithFields(log.Fields{
			"err":         err,
			"instanceRef": record.InstanceRef,
			"auctionId":   record.AuctionId,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
