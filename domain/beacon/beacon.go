package beacon

import (
	"time"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/domain/auction"
)

// Beacon is the single shared pointer to the active logic version.
// There is exactly one live document.
type Beacon struct {
	Name      string          `bson:"name"`
	LogicRef  domain.LogicRef `bson:"logicRef"`
	UpdatedBy domain.Address  `bson:"updatedBy,omitempty"`
	UpdatedAt time.Time       `bson:"updatedAt"`
}

// DefaultName identifies the singleton beacon document.
const DefaultName = "auction-engine"

// Instance associates a created engine instance with its creator. The
// instance itself holds no logic, only partitioned state keyed by Ref.
type Instance struct {
	Ref       domain.InstanceRef `bson:"ref"`
	Creator   domain.Address     `bson:"creator"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type Repo interface {
	// Current returns the live logic ref, ErrNotFound before the first
	// upgrade seeds it.
	Current(c ctx.Ctx) (domain.LogicRef, error)

	// Upgrade atomically overwrites the live logic ref.
	Upgrade(c ctx.Ctx, by domain.Address, ref domain.LogicRef) error
}

type InstanceRepo interface {
	FindOne(c ctx.Ctx, ref domain.InstanceRef) (*Instance, error)
	Insert(c ctx.Ctx, instance *Instance) error
	Search(c ctx.Ctx, offset, limit int) ([]*Instance, error)
	Count(c ctx.Ctx) (int, error)
}

// Resolver hands out the engine matching the beacon's current logic
// ref. Resolution happens fresh on every call, never cached.
type Resolver interface {
	Resolve(c ctx.Ctx) (auction.Engine, error)
}

// FactoryUsecase creates beacon-bound instances and performs the mass
// upgrade. UpgradeAll is one beacon write regardless of instance count.
type FactoryUsecase interface {
	Resolver

	CreateInstance(c ctx.Ctx, creator domain.Address) (*Instance, error)
	GetInstance(c ctx.Ctx, ref domain.InstanceRef) (*Instance, error)
	Instances(c ctx.Ctx, offset, limit int) ([]*Instance, error)

	Current(c ctx.Ctx) (domain.LogicRef, error)
	UpgradeAll(c ctx.Ctx, operator domain.Address, ref domain.LogicRef) error
}
