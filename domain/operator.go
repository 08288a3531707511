package domain

import (
	"time"

	"github.com/bidhaus/goauction/base/ctx"
)

// Operator is an address allowed to call the administrative surface:
// feed registration, beacon upgrades, mint helpers.
type Operator struct {
	Address   Address   `bson:"address"`
	GrantedBy Address   `bson:"grantedBy"`
	CreatedAt time.Time `bson:"createdAt"`
}

type OperatorRepo interface {
	FindOne(c ctx.Ctx, address Address) (*Operator, error)
	Insert(c ctx.Ctx, operator *Operator) error
	Remove(c ctx.Ctx, address Address) error
}

type OperatorUsecase interface {
	IsOperator(c ctx.Ctx, address Address) (bool, error)
	Add(c ctx.Ctx, caller Address, address Address) error
	Remove(c ctx.Ctx, caller Address, address Address) error
}
