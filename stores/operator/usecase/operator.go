package usecase

import (
	"time"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/log"
	"github.com/bidhaus/goauction/domain"
)

type impl struct {
	operators domain.OperatorRepo
	// admins come from config and are operators from boot, they seed
	// the first stored grants.
	admins []domain.Address
}

func New(operators domain.OperatorRepo, admins []domain.Address) domain.OperatorUsecase {
	lowered := make([]domain.Address, 0, len(admins))
	for _, a := range admins {
		lowered = append(lowered, a.ToLower())
	}
	return &impl{
		operators: operators,
		admins:    lowered,
	}
}

func (im *impl) IsOperator(c ctx.Ctx, address domain.Address) (bool, error) {
	for _, admin := range im.admins {
		if admin.Equals(address) {
			return true, nil
		}
	}

	if _, err := im.operators.FindOne(c, address); err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

func (im *impl) Add(c ctx.Ctx, caller domain.Address, address domain.Address) error {
	if err := im.requireOperator(c, caller); err != nil {
		return err
	}
	if address.IsEmpty() {
		return domain.ErrInvalidParameters
	}

	operator := &domain.Operator{
		Address:   address.ToLower(),
		GrantedBy: caller.ToLower(),
		CreatedAt: time.Now(),
	}
	if err := im.operators.Insert(c, operator); err != nil && err != domain.ErrConflict {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("operators.Insert failed")
		return err
	}
	return nil
}

func (im *impl) Remove(c ctx.Ctx, caller domain.Address, address domain.Address) error {
	if err := im.requireOperator(c, caller); err != nil {
		return err
	}
	return im.operators.Remove(c, address)
}

func (im *impl) requireOperator(c ctx.Ctx, caller domain.Address) error {
	ok, err := im.IsOperator(c, caller)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnauthorized
	}
	return nil
}
