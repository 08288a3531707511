package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/log"
	"github.com/bidhaus/goauction/domain"
)

type impl struct {
	wallet   domain.FungibleRepo
	operator domain.OperatorUsecase
}

func New(wallet domain.FungibleRepo, operator domain.OperatorUsecase) domain.FungibleUsecase {
	return &impl{
		wallet:   wallet,
		operator: operator,
	}
}

func (im *impl) BalanceOf(c ctx.Ctx, asset domain.Asset, owner domain.Address) (decimal.Decimal, error) {
	return im.wallet.BalanceOf(c, asset, owner)
}

func (im *impl) Approve(c ctx.Ctx, asset domain.Asset, owner, spender domain.Address, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domain.ErrInvalidParameters
	}
	return im.wallet.SetAllowance(c, asset, owner, spender, amount)
}

func (im *impl) Transfer(c ctx.Ctx, asset domain.Asset, from, to domain.Address, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidParameters
	}

	if err := im.wallet.Debit(c, asset, from, amount); err != nil {
		return err
	}
	if err := im.wallet.Credit(c, asset, to, amount); err != nil {
		// put the debited funds back, the transfer must be all or nothing
		if cerr := im.wallet.Credit(c, asset, from, amount); cerr != nil {
			c.WithFields(log.Fields{
				"err":      cerr,
				"assetKey": asset.Key(),
				"owner":    from,
			}).Error("compensating credit failed")
		}
		return domain.ErrTransferFailed
	}
	return nil
}

func (im *impl) TransferFrom(c ctx.Ctx, asset domain.Asset, spender, owner, to domain.Address, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidParameters
	}

	if err := im.wallet.DebitAllowance(c, asset, owner, spender, amount); err != nil {
		return err
	}
	if err := im.Transfer(c, asset, owner, to, amount); err != nil {
		// restore the consumed allowance
		if aerr := im.restoreAllowance(c, asset, owner, spender, amount); aerr != nil {
			c.WithFields(log.Fields{
				"err":      aerr,
				"assetKey": asset.Key(),
				"owner":    owner,
				"spender":  spender,
			}).Error("restore allowance failed")
		}
		return err
	}
	return nil
}

func (im *impl) Mint(c ctx.Ctx, operator domain.Address, asset domain.Asset, to domain.Address, amount decimal.Decimal) error {
	if ok, err := im.operator.IsOperator(c, operator); err != nil {
		c.WithField("err", err).Error("operator.IsOperator failed")
		return err
	} else if !ok {
		return domain.ErrUnauthorized
	}
	if !amount.IsPositive() {
		return domain.ErrInvalidParameters
	}
	return im.wallet.Credit(c, asset, to, amount)
}

func (im *impl) restoreAllowance(c ctx.Ctx, asset domain.Asset, owner, spender domain.Address, amount decimal.Decimal) error {
	current, err := im.wallet.AllowanceOf(c, asset, owner, spender)
	if err != nil {
		return err
	}
	return im.wallet.SetAllowance(c, asset, owner, spender, current.Add(amount))
}
