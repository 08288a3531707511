package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/log"
	"github.com/bidhaus/goauction/domain"
)

type impl struct {
	records  domain.EscrowRepo
	wallet   domain.FungibleUsecase
	items    domain.ItemUsecase
	executor domain.Address
}

// New wires the vault. executor is the ledger account acting on behalf
// of the engine, sellers and bidders grant it transfer rights before
// creating or bidding.
func New(records domain.EscrowRepo, wallet domain.FungibleUsecase, items domain.ItemUsecase, executor domain.Address) domain.EscrowUsecase {
	return &impl{
		records:  records,
		wallet:   wallet,
		items:    items,
		executor: executor,
	}
}

func (im *impl) HoldItem(c ctx.Ctx, instanceRef domain.InstanceRef, auctionId int64, seller domain.Address, collection domain.Address, tokenId domain.TokenId) error {
	if err := im.items.TransferFrom(c, im.executor, seller, domain.EscrowVaultAddress, collection, tokenId); err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"tokenId":    tokenId,
			"seller":     seller,
		}).Error("items.TransferFrom failed")
		// seller never granted custody rights to the executor
		if err == domain.ErrUnauthorized {
			return err
		}
		return domain.ErrTransferFailed
	}

	record := &domain.EscrowRecord{
		InstanceRef: instanceRef,
		AuctionId:   auctionId,
		Collection:  collection.ToLower(),
		TokenId:     tokenId,
		ItemHeld:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := im.records.Upsert(c, record); err != nil {
		c.WithField("err", err).Error("records.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) ReleaseItem(c ctx.Ctx, instanceRef domain.InstanceRef, auctionId int64, to domain.Address) error {
	record, err := im.records.FindOne(c, instanceRef, auctionId)
	if err != nil {
		return err
	}
	if !record.ItemHeld {
		return domain.ErrTransferFailed
	}

	if err := im.items.TransferFrom(c, domain.EscrowVaultAddress, domain.EscrowVaultAddress, to, record.Collection, record.TokenId); err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": record.Collection,
			"tokenId":    record.TokenId,
			"to":         to,
		}).Error("items.TransferFrom failed")
		return domain.ErrTransferFailed
	}

	record.ItemHeld = false
	record.UpdatedAt = time.Now()
	if err := im.records.Upsert(c, record); err != nil {
		c.WithField("err", err).Error("records.Upsert failed")
		return err
	}
	return nil
}

// RecoverItem pulls an already-released item back into the vault when
// settlement aborts midway, so a later end can run the transfers again.
func (im *impl) RecoverItem(c ctx.Ctx, instanceRef domain.InstanceRef, auctionId int64, from domain.Address) error {
	record, err := im.records.FindOne(c, instanceRef, auctionId)
	if err != nil {
		return err
	}

	if err := im.items.TransferFrom(c, from, from, domain.EscrowVaultAddress, record.Collection, record.TokenId); err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": record.Collection,
			"tokenId":    record.TokenId,
			"from":       from,
		}).Error("items.TransferFrom failed")
		return domain.ErrTransferFailed
	}

	record.ItemHeld = true
	record.UpdatedAt = time.Now()
	if err := im.records.Upsert(c, record); err != nil {
		c.WithField("err", err).Error("records.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) Pledge(c ctx.Ctx, instanceRef domain.InstanceRef, auctionId int64, from domain.Address, asset domain.Asset, amount decimal.Decimal) error {
	if err := im.wallet.TransferFrom(c, asset, im.executor, from, domain.EscrowVaultAddress, amount); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"assetKey": asset.Key(),
			"from":     from,
		}).Error("wallet.TransferFrom failed")
		if err == domain.ErrInsufficientBalance || err == domain.ErrInsufficientAllowance {
			return err
		}
		return domain.ErrTransferFailed
	}

	record, err := im.records.FindOne(c, instanceRef, auctionId)
	if err != nil {
		return err
	}
	record.PledgedBidder = from.ToLower()
	record.PledgedAsset = &asset
	record.PledgedAmount = domain.MustDecimal128(amount)
	record.UpdatedAt = time.Now()
	if err := im.records.Upsert(c, record); err != nil {
		c.WithField("err", err).Error("records.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) Refund(c ctx.Ctx, instanceRef domain.InstanceRef, auctionId int64, to domain.Address, asset domain.Asset, amount decimal.Decimal) error {
	record, err := im.records.FindOne(c, instanceRef, auctionId)
	if err != nil {
		return err
	}

	if err := im.payOut(c, to, asset, amount); err != nil {
		return err
	}

	// clear the pledge leg only when it is the one being returned, a
	// displaced bidder's refund must not erase the new leader's pledge
	if record.PledgedBidder.Equals(to) && record.PledgedAsset != nil && record.PledgedAsset.Equals(asset) {
		record.PledgedBidder = ""
		record.PledgedAsset = nil
		record.PledgedAmount = domain.MustDecimal128(decimal.Zero)
		record.UpdatedAt = time.Now()
		if err := im.records.Upsert(c, record); err != nil {
			c.WithField("err", err).Error("records.Upsert failed")
			return err
		}
	}
	return nil
}

func (im *impl) Forward(c ctx.Ctx, instanceRef domain.InstanceRef, auctionId int64, to domain.Address, asset domain.Asset, amount decimal.Decimal) error {
	record, err := im.records.FindOne(c, instanceRef, auctionId)
	if err != nil {
		return err
	}

	if err := im.payOut(c, to, asset, amount); err != nil {
		return err
	}

	record.PledgedBidder = ""
	record.PledgedAsset = nil
	record.PledgedAmount = domain.MustDecimal128(decimal.Zero)
	record.UpdatedAt = time.Now()
	if err := im.records.Upsert(c, record); err != nil {
		c.WithField("err", err).Error("records.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) payOut(c ctx.Ctx, to domain.Address, asset domain.Asset, amount decimal.Decimal) error {
	if err := im.wallet.Transfer(c, asset, domain.EscrowVaultAddress, to, amount); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"assetKey": asset.Key(),
			"to":       to,
		}).Error("wallet.Transfer failed")
		return domain.ErrTransferFailed
	}
	return nil
}
