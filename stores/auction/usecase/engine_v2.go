package usecase

import (
	"time"

	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/domain/auction"
)

// implV2 is the upgraded logic. The state machine is unchanged so V1
// records keep working after an upgrade, only the reported version
// moves.
type implV2 struct {
	*impl
}

func NewV2(auctions auction.Repo, feeds domain.PriceFeedUsecase, escrow domain.EscrowUsecase, items domain.ItemUsecase, events domain.EventRepo) auction.Engine {
	return &implV2{
		impl: &impl{
			auctions: auctions,
			feeds:    feeds,
			escrow:   escrow,
			items:    items,
			events:   events,
			locks:    auctionLocks,
			now:      time.Now,
		},
	}
}

func (im *implV2) Version() string {
	return "V2.0"
}
