package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/domain/auction"
	mockRepo "github.com/bidhaus/goauction/domain/auction/mocks"
)

type fixedResolver struct {
	engine auction.Engine
}

func (r *fixedResolver) Resolve(c ctx.Ctx) (auction.Engine, error) {
	return r.engine, nil
}

type sweeperSuite struct {
	suite.Suite
	mockAuctions *mockRepo.Repo
	mockEngine   *mockRepo.Engine
	subject      *Sweeper
}

func TestSweeper(t *testing.T) {
	suite.Run(t, new(sweeperSuite))
}

func (t *sweeperSuite) SetupTest() {
	t.mockAuctions = &mockRepo.Repo{}
	t.mockEngine = &mockRepo.Engine{}
	t.subject = &Sweeper{
		auctions: t.mockAuctions,
		resolver: &fixedResolver{engine: t.mockEngine},
		interval: time.Second,
		now:      func() time.Time { return frozen },
	}
}

func (t *sweeperSuite) TestSweepSettlesExpired() {
	expired := []*auction.Auction{
		{InstanceRef: "inst-1", AuctionId: 1},
		{InstanceRef: "inst-2", AuctionId: 5},
	}

	t.mockAuctions.On("SearchExpired", mockCtx, frozen, sweepBatchSize).Return(expired, nil)
	t.mockEngine.On("EndAuction", mockCtx, &auction.EndAuctionParams{InstanceRef: "inst-1", AuctionId: 1}).Return(&auction.Auction{}, nil)
	t.mockEngine.On("EndAuction", mockCtx, &auction.EndAuctionParams{InstanceRef: "inst-2", AuctionId: 5}).Return(&auction.Auction{}, nil)

	t.NoError(t.subject.sweepOnce(mockCtx))
	t.mockEngine.AssertExpectations(t.T())
}

func (t *sweeperSuite) TestSweepToleratesRacedSettlement() {
	expired := []*auction.Auction{
		{InstanceRef: "inst-1", AuctionId: 1},
		{InstanceRef: "inst-1", AuctionId: 2},
	}

	t.mockAuctions.On("SearchExpired", mockCtx, frozen, sweepBatchSize).Return(expired, nil)
	t.mockEngine.On("EndAuction", mockCtx, &auction.EndAuctionParams{InstanceRef: "inst-1", AuctionId: 1}).
		Return(nil, domain.ErrAlreadyEnded)
	t.mockEngine.On("EndAuction", mockCtx, &auction.EndAuctionParams{InstanceRef: "inst-1", AuctionId: 2}).
		Return(&auction.Auction{}, nil)

	t.NoError(t.subject.sweepOnce(mockCtx))
	t.mockEngine.AssertExpectations(t.T())
}
