package usecase

import (
	"time"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/log"
	"github.com/bidhaus/goauction/domain"
)

type impl struct {
	items    domain.ItemRepo
	operator domain.OperatorUsecase
}

func New(items domain.ItemRepo, operator domain.OperatorUsecase) domain.ItemUsecase {
	return &impl{
		items:    items,
		operator: operator,
	}
}

func (im *impl) OwnerOf(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	item, err := im.items.FindOne(c, collection, tokenId)
	if err != nil {
		return "", err
	}
	return item.Owner, nil
}

func (im *impl) Approve(c ctx.Ctx, caller domain.Address, collection domain.Address, tokenId domain.TokenId, approved domain.Address) error {
	item, err := im.items.FindOne(c, collection, tokenId)
	if err != nil {
		return err
	}
	if !item.Owner.Equals(caller) {
		if ok, err := im.isApprovedForAll(c, collection, item.Owner, caller); err != nil {
			return err
		} else if !ok {
			return domain.ErrUnauthorized
		}
	}
	return im.items.SetApproved(c, collection, tokenId, approved)
}

func (im *impl) SetApprovalForAll(c ctx.Ctx, owner domain.Address, collection domain.Address, operator domain.Address, approved bool) error {
	if owner.Equals(operator) {
		return domain.ErrInvalidParameters
	}
	approval := &domain.ItemApproval{
		Collection: collection.ToLower(),
		Owner:      owner.ToLower(),
		Operator:   operator.ToLower(),
		Approved:   approved,
		UpdatedAt:  time.Now(),
	}
	return im.items.UpsertApproval(c, approval)
}

func (im *impl) IsApprovedOrOwner(c ctx.Ctx, spender domain.Address, collection domain.Address, tokenId domain.TokenId) (bool, error) {
	item, err := im.items.FindOne(c, collection, tokenId)
	if err != nil {
		return false, err
	}
	if item.Owner.Equals(spender) || item.Approved.Equals(spender) && !item.Approved.IsEmpty() {
		return true, nil
	}
	return im.isApprovedForAll(c, collection, item.Owner, spender)
}

func (im *impl) TransferFrom(c ctx.Ctx, caller, from, to domain.Address, collection domain.Address, tokenId domain.TokenId) error {
	if to.IsEmpty() {
		return domain.ErrInvalidParameters
	}
	if ok, err := im.IsApprovedOrOwner(c, caller, collection, tokenId); err != nil {
		return err
	} else if !ok {
		return domain.ErrUnauthorized
	}
	if err := im.items.SetOwner(c, collection, tokenId, from, to); err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"tokenId":    tokenId,
			"from":       from,
			"to":         to,
		}).Error("items.SetOwner failed")
		return err
	}
	return nil
}

func (im *impl) Mint(c ctx.Ctx, operator domain.Address, collection domain.Address, tokenId domain.TokenId, owner domain.Address) error {
	if ok, err := im.operator.IsOperator(c, operator); err != nil {
		c.WithField("err", err).Error("operator.IsOperator failed")
		return err
	} else if !ok {
		return domain.ErrUnauthorized
	}
	item := &domain.Item{
		Collection: collection.ToLower(),
		TokenId:    tokenId,
		Owner:      owner.ToLower(),
		MintedAt:   time.Now(),
		UpdatedAt:  time.Now(),
	}
	return im.items.Insert(c, item)
}

func (im *impl) isApprovedForAll(c ctx.Ctx, collection domain.Address, owner, operator domain.Address) (bool, error) {
	approval, err := im.items.FindApproval(c, collection, owner, operator)
	if err != nil {
		return false, err
	}
	return approval != nil && approval.Approved, nil
}
