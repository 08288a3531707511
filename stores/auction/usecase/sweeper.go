package usecase

import (
	"time"

	"github.com/bidhaus/goauction/base/backoff"
	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/log"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/domain/auction"
	"github.com/bidhaus/goauction/domain/beacon"
)

const sweepBatchSize = 100

// Sweeper settles auctions whose window elapsed without anyone calling
// the end operation. It goes through the beacon like every other
// caller, so an upgrade also applies to sweeps.
type Sweeper struct {
	auctions auction.Repo
	resolver beacon.Resolver
	interval time.Duration
	now      func() time.Time
}

func NewSweeper(auctions auction.Repo, resolver beacon.Resolver, interval time.Duration) *Sweeper {
	return &Sweeper{
		auctions: auctions,
		resolver: resolver,
		interval: interval,
		now:      time.Now,
	}
}

func (s *Sweeper) Run(c ctx.Ctx) {
	bo := backoff.NewExponential(time.Second, time.Minute)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.Done():
			return
		case <-ticker.C:
			if err := s.sweepOnce(c); err != nil {
				if err := bo.Backoff(c); err != nil {
					return
				}
			} else {
				bo.Reset()
			}
		}
	}
}

func (s *Sweeper) sweepOnce(c ctx.Ctx) error {
	expired, err := s.auctions.SearchExpired(c, s.now(), sweepBatchSize)
	if err != nil {
		c.WithField("err", err).Error("auctions.SearchExpired failed")
		return err
	}

	for _, a := range expired {
		engine, err := s.resolver.Resolve(c)
		if err != nil {
			c.WithField("err", err).Error("resolver.Resolve failed")
			return err
		}

		if _, err := engine.EndAuction(c, &auction.EndAuctionParams{
			InstanceRef: a.InstanceRef,
			AuctionId:   a.AuctionId,
		}); err != nil && err != domain.ErrAlreadyEnded {
			// keep going, one stuck settlement must not block the rest
			c.WithFields(log.Fields{
				"err":         err,
				"instanceRef": a.InstanceRef,
				"auctionId":   a.AuctionId,
			}).Error("engine.EndAuction failed")
		}
	}
	return nil
}
