package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/log"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/service/query"
)

type fungibleMongoRepo struct {
	q query.Mongo
}

func NewFungibleRepo(q query.Mongo) domain.FungibleRepo {
	return &fungibleMongoRepo{
		q: q,
	}
}

func (r *fungibleMongoRepo) BalanceOf(ctx bCtx.Ctx, asset domain.Asset, owner domain.Address) (decimal.Decimal, error) {
	balance := &domain.Balance{}
	qry := bson.M{"assetKey": asset.Key(), "owner": owner.ToLower()}
	if err := r.q.FindOne(ctx, domain.TableBalances, qry, balance); err == query.ErrNotFound {
		return decimal.Zero, nil
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return decimal.Zero, err
	}
	return domain.FromDecimal128(balance.Amount)
}

func (r *fungibleMongoRepo) AllowanceOf(ctx bCtx.Ctx, asset domain.Asset, owner, spender domain.Address) (decimal.Decimal, error) {
	allowance := &domain.Allowance{}
	qry := bson.M{"assetKey": asset.Key(), "owner": owner.ToLower(), "spender": spender.ToLower()}
	if err := r.q.FindOne(ctx, domain.TableAllowances, qry, allowance); err == query.ErrNotFound {
		return decimal.Zero, nil
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return decimal.Zero, err
	}
	return domain.FromDecimal128(allowance.Amount)
}

func (r *fungibleMongoRepo) Credit(ctx bCtx.Ctx, asset domain.Asset, owner domain.Address, amount decimal.Decimal) error {
	inc, err := domain.ToDecimal128(amount)
	if err != nil {
		return err
	}
	selector := bson.M{"assetKey": asset.Key(), "owner": owner.ToLower()}
	updater := bson.M{
		"$inc": bson.M{"amount": inc},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	if err := r.q.CustomPatch(ctx, domain.TableBalances, selector, updater, true); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"assetKey": asset.Key(),
			"owner":    owner,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

// Debit is a conditional single-document update: the selector requires
// the balance to cover amount, so a miss means insufficient funds and
// nothing is written.
func (r *fungibleMongoRepo) Debit(ctx bCtx.Ctx, asset domain.Asset, owner domain.Address, amount decimal.Decimal) error {
	floor, err := domain.ToDecimal128(amount)
	if err != nil {
		return err
	}
	dec, err := domain.ToDecimal128(amount.Neg())
	if err != nil {
		return err
	}
	selector := bson.M{
		"assetKey": asset.Key(),
		"owner":    owner.ToLower(),
		"amount":   bson.M{"$gte": floor},
	}
	updater := bson.M{
		"$inc": bson.M{"amount": dec},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	if err := r.q.CustomPatch(ctx, domain.TableBalances, selector, updater, false); err == query.ErrNotFound {
		return domain.ErrInsufficientBalance
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"assetKey": asset.Key(),
			"owner":    owner,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (r *fungibleMongoRepo) SetAllowance(ctx bCtx.Ctx, asset domain.Asset, owner, spender domain.Address, amount decimal.Decimal) error {
	value, err := domain.ToDecimal128(amount)
	if err != nil {
		return err
	}
	selector := bson.M{"assetKey": asset.Key(), "owner": owner.ToLower(), "spender": spender.ToLower()}
	allowance := &domain.Allowance{
		AssetKey:  asset.Key(),
		Owner:     owner.ToLower(),
		Spender:   spender.ToLower(),
		Amount:    value,
		UpdatedAt: time.Now(),
	}
	if err := r.q.Upsert(ctx, domain.TableAllowances, selector, allowance); err != nil {
		ctx.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *fungibleMongoRepo) DebitAllowance(ctx bCtx.Ctx, asset domain.Asset, owner, spender domain.Address, amount decimal.Decimal) error {
	floor, err := domain.ToDecimal128(amount)
	if err != nil {
		return err
	}
	dec, err := domain.ToDecimal128(amount.Neg())
	if err != nil {
		return err
	}
	selector := bson.M{
		"assetKey": asset.Key(),
		"owner":    owner.ToLower(),
		"spender":  spender.ToLower(),
		"amount":   bson.M{"$gte": floor},
	}
	updater := bson.M{
		"$inc": bson.M{"amount": dec},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	if err := r.q.CustomPatch(ctx, domain.TableAllowances, selector, updater, false); err == query.ErrNotFound {
		return domain.ErrInsufficientAllowance
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"assetKey": asset.Key(),
			"owner":    owner,
			"spender":  spender,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}
