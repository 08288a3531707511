package usecase

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/log"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/domain/auction"
	"github.com/bidhaus/goauction/domain/beacon"
)

type impl struct {
	beacons   beacon.Repo
	instances beacon.InstanceRepo
	operator  domain.OperatorUsecase
	events    domain.EventRepo
	// engines is the logic registry, fixed at boot. The beacon document
	// selects which entry is live.
	engines      map[domain.LogicRef]auction.Engine
	defaultLogic domain.LogicRef
}

func New(beacons beacon.Repo, instances beacon.InstanceRepo, operator domain.OperatorUsecase, events domain.EventRepo, engines map[domain.LogicRef]auction.Engine, defaultLogic domain.LogicRef) beacon.FactoryUsecase {
	return &impl{
		beacons:      beacons,
		instances:    instances,
		operator:     operator,
		events:       events,
		engines:      engines,
		defaultLogic: defaultLogic,
	}
}

// Resolve reads the beacon on every call, so all instances observe a
// new logic version from the very next request after an upgrade.
func (im *impl) Resolve(c ctx.Ctx) (auction.Engine, error) {
	ref, err := im.Current(c)
	if err != nil {
		return nil, err
	}
	engine, ok := im.engines[ref]
	if !ok {
		c.WithField("logicRef", ref).Error("logic ref not registered")
		return nil, domain.ErrUnknownLogic
	}
	return engine, nil
}

func (im *impl) CreateInstance(c ctx.Ctx, creator domain.Address) (*beacon.Instance, error) {
	if creator.IsEmpty() {
		return nil, domain.ErrInvalidParameters
	}

	instance := &beacon.Instance{
		Ref:       domain.InstanceRef(uuid.New().String()),
		Creator:   creator.ToLower(),
		CreatedAt: time.Now(),
	}
	if err := im.instances.Insert(c, instance); err != nil {
		c.WithField("err", err).Error("instances.Insert failed")
		return nil, err
	}

	im.emit(c, domain.EventInstanceCreated, instance.Ref, bson.M{
		"instanceRef": instance.Ref,
		"creator":     instance.Creator,
	})
	return instance, nil
}

func (im *impl) GetInstance(c ctx.Ctx, ref domain.InstanceRef) (*beacon.Instance, error) {
	return im.instances.FindOne(c, ref)
}

func (im *impl) Instances(c ctx.Ctx, offset, limit int) ([]*beacon.Instance, error) {
	return im.instances.Search(c, offset, limit)
}

func (im *impl) Current(c ctx.Ctx) (domain.LogicRef, error) {
	ref, err := im.beacons.Current(c)
	if err == domain.ErrNotFound {
		return im.defaultLogic, nil
	} else if err != nil {
		return "", err
	}
	return ref, nil
}

// UpgradeAll repoints the beacon, one write regardless of how many
// instances exist.
func (im *impl) UpgradeAll(c ctx.Ctx, operator domain.Address, ref domain.LogicRef) error {
	isOperator, err := im.operator.IsOperator(c, operator)
	if err != nil {
		return err
	}
	if !isOperator {
		return domain.ErrUnauthorized
	}
	if _, ok := im.engines[ref]; !ok {
		return domain.ErrUnknownLogic
	}

	if err := im.beacons.Upgrade(c, operator, ref); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"logicRef": ref,
		}).Error("beacons.Upgrade failed")
		return err
	}

	im.emit(c, domain.EventBeaconUpgraded, "", bson.M{
		"newLogicRef": ref,
	})
	return nil
}

func (im *impl) emit(c ctx.Ctx, typ domain.EventType, instanceRef domain.InstanceRef, data bson.M) {
	event := &domain.Event{
		Type:        typ,
		InstanceRef: instanceRef,
		EmittedAt:   time.Now(),
		Data:        data,
	}
	if err := im.events.Insert(c, event); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"type": typ,
		}).Error("events.Insert failed")
	}
}
